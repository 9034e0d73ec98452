package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"todo-list/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(a *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("add", NewAddCommand(a))
	registry.Register("complete", NewCompleteCommand(a))
	registry.Register("list", NewListCommand(a))
	registry.Register("sidebar", NewSidebarCommand(a))
	registry.Register("help", NewHelpCommand(a.out, registry))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError(fmt.Sprintf("unknown command %q, type \"help\" for a list", commandName), nil)
	}
	return command.Execute(ctx, args)
}

// Names returns the registered command names in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns the usage string for the shell
func (r *CommandRegistry) GetUsage() string {
	lines := []string{
		"usage:",
		"  add <days> <task name>   add a task due in <days> days",
		"  complete <task name>     remove every task with this name",
		"  list                     show the task list",
		"  sidebar                  toggle the sidebar",
		"  help                     show this message",
		"  quit                     leave the shell",
	}
	return strings.Join(lines, "\n")
}
