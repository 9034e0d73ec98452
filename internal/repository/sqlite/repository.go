package sqlite

import (
	"context"
	"database/sql"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database. Its contents vanish with
// the last connection, so the sequence never outlives the session.
const MemoryDSN = ":memory:"

// SQLiteRepository keeps the task sequence in a SQLite database
type SQLiteRepository struct {
	db *sql.DB
}

// New opens a session-scoped in-memory database and applies the schema
func New() (*SQLiteRepository, error) {
	return Open(MemoryDSN)
}

// Open creates a repository on the given data source name
func Open(dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// every new connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Append inserts the task after every existing one
func (r *SQLiteRepository) Append(ctx context.Context, task domain.Task) error {
	row := FromDomain(task)
	query := `INSERT INTO tasks (task_name, deadline_days) VALUES (?, ?)`
	_, err := ExecuteWithLastInsertID(ctx, r.db, query, row.TaskName, row.DeadlineDays)
	return err
}

// RemoveByName deletes every task with the given name
func (r *SQLiteRepository) RemoveByName(ctx context.Context, name string) (int, error) {
	query := `DELETE FROM tasks WHERE task_name = ?`
	removed, err := ExecuteWithRowsAffected(ctx, r.db, query, name)
	if err != nil {
		return 0, err
	}
	return int(removed), nil
}

// List returns the tasks in insertion order
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT id, task_name, deadline_days FROM tasks ORDER BY id ASC`
	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}
	return ToDomainTasks(rows), nil
}
