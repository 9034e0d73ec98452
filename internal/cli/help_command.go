package cli

import (
	"context"
	"fmt"
	"io"
)

// HelpCommand prints the shell usage
type HelpCommand struct {
	out      io.Writer
	registry *CommandRegistry
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(out io.Writer, registry *CommandRegistry) *HelpCommand {
	return &HelpCommand{out: out, registry: registry}
}

// Execute runs the help command
func (c *HelpCommand) Execute(_ context.Context, _ []string) error {
	fmt.Fprintln(c.out, c.registry.GetUsage())
	return nil
}
