// Package store owns the ordered task list of one session and the two
// operations that change it.
package store

import (
	"context"

	log "github.com/sirupsen/logrus"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository"
	"todo-list/internal/validation"
)

// InvalidInputMessage is the user-facing reason every rejected add carries
const InvalidInputMessage = "Please provide a valid task and deadline."

// TaskListStore holds the authoritative task sequence. It is synchronous
// and expects a single caller at a time.
type TaskListStore struct {
	repo          repository.Repository
	taskValidator *validation.TaskValidator
	logger        *log.Logger
}

// New creates a store over the given sequence backend
func New(repo repository.Repository, logger *log.Logger) *TaskListStore {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &TaskListStore{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
		logger:        logger,
	}
}

// AddTask appends a task with the given name and deadline. An empty name or
// a deadline that is not positive fails with an invalid input error and
// leaves the sequence untouched.
func (s *TaskListStore) AddTask(ctx context.Context, name string, deadlineDays int) (domain.Task, error) {
	if err := s.taskValidator.ValidateTaskForCreation(name, deadlineDays); err != nil {
		entry := s.logger.WithFields(log.Fields{
			"name":          name,
			"deadline_days": deadlineDays,
		})
		if ve, ok := err.(*validation.ValidationError); ok {
			entry = entry.WithField("reason", ve.GetUserFriendlyMessage())
		}
		entry.Debug("rejected task")
		return domain.Task{}, errors.NewInvalidInputError(InvalidInputMessage, err)
	}

	task := domain.NewTask(name, deadlineDays)
	if err := s.repo.Append(ctx, task); err != nil {
		return domain.Task{}, err
	}

	s.logger.WithFields(log.Fields{
		"name":          task.Name,
		"deadline_days": task.DeadlineDays,
	}).Debug("task added")
	return task, nil
}

// CompleteTask removes every task named name and returns how many were
// removed. No match is not an error.
func (s *TaskListStore) CompleteTask(ctx context.Context, name string) (int, error) {
	removed, err := s.repo.RemoveByName(ctx, name)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(log.Fields{
		"name":    name,
		"removed": removed,
	}).Debug("task completed")
	return removed, nil
}

// Tasks returns the sequence in display order
func (s *TaskListStore) Tasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}

// Len returns the number of tasks on the list
func (s *TaskListStore) Len(ctx context.Context) (int, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// Close releases the sequence backend
func (s *TaskListStore) Close() error {
	return s.repo.Close()
}
