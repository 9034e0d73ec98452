package cli

import (
	"context"
	"strings"

	"todo-list/internal/app"
	"todo-list/internal/errors"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	session      *app.Session
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(a *App) *CompleteCommand {
	return &CompleteCommand{
		session:      a.session,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes every task named by the joined arguments
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("usage: complete <task name>", nil)
	}

	if _, err := c.session.CompleteTask(ctx, strings.Join(args, " ")); err != nil {
		return c.errorHandler.Handle("complete task", err)
	}
	return nil
}
