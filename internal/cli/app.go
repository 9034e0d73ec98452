package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"todo-list/internal/app"
)

// App runs line commands against one session and prints to out
type App struct {
	session  *app.Session
	out      io.Writer
	timeout  time.Duration
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance over a session
func NewApp(session *app.Session, out io.Writer, timeout time.Duration) *App {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	a := &App{
		session: session,
		out:     out,
		timeout: timeout,
	}
	a.registry = NewCommandRegistry(a)
	return a
}

// Run executes one command line, already split into words, and prints the
// notifications it raised
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	err := a.registry.Execute(ctx, args[0], args[1:])
	a.printNotifications()
	return err
}

// printNotifications writes every visible notification once, then dismisses it
func (a *App) printNotifications() {
	for _, n := range a.session.Notifications() {
		fmt.Fprintln(a.out, n.String())
		a.session.DismissNotification(n.ID)
	}
}
