package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const shellPrompt = "> "

// RunShell reads one command per line from in until "quit", end of input
// or ctx is cancelled. Command errors are printed and the shell carries on.
func (a *App) RunShell(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	errorHandler := NewErrorHandler()
	fmt.Fprintln(a.out, `To-do list shell. Type "help" for commands.`)
	for {
		fmt.Fprint(a.out, shellPrompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(a.out)
				return <-readErr
			}
			line = l
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		if err := a.Run(ctx, fields); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", errorHandler.HandleSimple(err))
		}
	}
}
