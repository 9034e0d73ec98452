package cli

import (
	"context"
	"strings"

	"todo-list/internal/app"
	"todo-list/internal/errors"
	"todo-list/internal/form"
)

// AddCommand handles the add command
type AddCommand struct {
	session      *app.Session
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(a *App) *AddCommand {
	return &AddCommand{
		session:      a.session,
		errorHandler: NewErrorHandler(),
	}
}

// Execute fills the pending input from "<days> <task name...>" and submits
// it. A rejected task is reported by its notification, not as an error.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("usage: add <days> <task name>", nil)
	}

	c.session.HandleChange(form.FieldDeadline, args[0])
	c.session.HandleChange(form.FieldTask, strings.Join(args[1:], " "))

	if _, err := c.session.Submit(ctx); err != nil {
		if c.errorHandler.IsInvalidInputError(err) {
			return nil
		}
		return c.errorHandler.Handle("add task", err)
	}
	return nil
}
