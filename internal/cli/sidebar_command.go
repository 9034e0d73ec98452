package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/app"
)

// SidebarCommand toggles the sidebar
type SidebarCommand struct {
	session *app.Session
	out     io.Writer
}

// NewSidebarCommand creates a new sidebar command handler
func NewSidebarCommand(a *App) *SidebarCommand {
	return &SidebarCommand{session: a.session, out: a.out}
}

// Execute runs the sidebar command
func (c *SidebarCommand) Execute(_ context.Context, _ []string) error {
	if !c.session.SidebarEnabled() {
		fmt.Fprintln(c.out, "Sidebar is disabled.")
		return nil
	}
	if c.session.ToggleSidebar() {
		fmt.Fprintln(c.out, "Sidebar opened.")
	} else {
		fmt.Fprintln(c.out, "Sidebar closed.")
	}
	return nil
}
