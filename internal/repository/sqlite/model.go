package sqlite

import "todo-list/internal/domain"

// Task is a row of the tasks table. ID only fixes the display order.
type Task struct {
	ID           int64
	TaskName     string
	DeadlineDays int
}

// FromDomain converts a domain task into a row ready for insert
func FromDomain(task domain.Task) *Task {
	return &Task{
		TaskName:     task.Name,
		DeadlineDays: task.DeadlineDays,
	}
}

// ToDomain drops the storage ID
func (t *Task) ToDomain() domain.Task {
	return domain.NewTask(t.TaskName, t.DeadlineDays)
}

// ToDomainTasks converts rows to domain tasks, keeping their order
func ToDomainTasks(rows []*Task) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.ToDomain())
	}
	return tasks
}
