// Package repository defines where a session's ordered task sequence is kept.
package repository

import (
	"context"

	"todo-list/internal/domain"
)

// Repository stores the ordered task sequence for one session.
// Implementations must return tasks in insertion order.
type Repository interface {
	// Append adds the task at the end of the sequence
	Append(ctx context.Context, task domain.Task) error

	// RemoveByName deletes every task with exactly this name and reports how many went
	RemoveByName(ctx context.Context, name string) (int, error)

	// List returns a snapshot of the sequence
	List(ctx context.Context) ([]domain.Task, error)

	Close() error
}
