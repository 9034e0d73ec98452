package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/app"
)

// ListCommand handles the list command
type ListCommand struct {
	session      *app.Session
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(a *App) *ListCommand {
	return &ListCommand{
		session:      a.session,
		out:          a.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints one numbered line per task in display order
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.session.Tasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks on the list.")
		return nil
	}
	for i, task := range tasks {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, task)
	}
	return nil
}
