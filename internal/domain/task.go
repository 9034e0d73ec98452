package domain

import "fmt"

// Task represents one to-do item in the domain model.
// This is a pure domain model without storage or presentation concerns.
type Task struct {
	Name         string `json:"name"`
	DeadlineDays int    `json:"deadlineDays"`
}

// NewTask creates a new Task with the given name and deadline in days.
func NewTask(name string, deadlineDays int) Task {
	return Task{
		Name:         name,
		DeadlineDays: deadlineDays,
	}
}

// String returns the task for display purposes.
func (t Task) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, FormatDeadline(t.DeadlineDays))
}

// FormatDeadline renders a deadline count with its unit.
func FormatDeadline(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
