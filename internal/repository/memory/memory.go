// Package memory keeps the task sequence in a plain slice.
package memory

import (
	"context"

	"todo-list/internal/domain"
)

// Repository is a slice-backed task sequence. It is not safe for concurrent
// use; callers serialize access.
type Repository struct {
	tasks []domain.Task
}

// New creates an empty sequence
func New() *Repository {
	return &Repository{}
}

// Append adds the task at the end
func (r *Repository) Append(_ context.Context, task domain.Task) error {
	r.tasks = append(r.tasks, task)
	return nil
}

// RemoveByName filters out every task named name, keeping the order of the rest
func (r *Repository) RemoveByName(_ context.Context, name string) (int, error) {
	kept := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if task.Name != name {
			kept = append(kept, task)
		}
	}
	removed := len(r.tasks) - len(kept)
	r.tasks = kept
	return removed, nil
}

// List returns a copy so callers cannot mutate the sequence
func (r *Repository) List(_ context.Context) ([]domain.Task, error) {
	tasks := make([]domain.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}

// Close drops the sequence
func (r *Repository) Close() error {
	r.tasks = nil
	return nil
}
