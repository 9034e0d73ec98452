package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"todo-list/internal/app"
	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/server"
	"todo-list/internal/tui"
)

// pageLogFile receives log records while the interactive page is showing
const pageLogFile = "todo-debug.log"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	logger *log.Logger

	in     io.Reader
	out    io.Writer
	logOut io.Writer

	runTUI func(ctx context.Context, session *app.Session, opts tui.Options) error
}

// NewRootCommand creates the root cobra command with global flags. Commands
// read from in and print to out; log records go to logOut.
func NewRootCommand(in io.Reader, out, logOut io.Writer) *RootCommand {
	root := &RootCommand{
		in:     in,
		out:    out,
		logOut: logOut,
		runTUI: tui.Run,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A small to-do list with deadlines",
		Long: `todo keeps a list of tasks, each with a deadline in days.

Run without a command it opens the interactive page when attached to a
terminal and a line shell otherwise.

EXAMPLES:
  todo                                     # Interactive page or shell
  todo shell                               # Line shell: add 3 Write report
  todo serve --addr :9090                  # HTTP API on port 9090

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > todo.toml > defaults

    TODO_CONFIG                            Config file (default: ./todo.toml)
    TODO_STORE_BACKEND                     memory or sqlite (default: memory)
    TODO_NOTIFICATION_LIFE                 Notification lifetime (default: 3s)
    TODO_NOTIFICATION_MAX                  Visible notifications (default: 5)
    TODO_SERVER_ADDR                       HTTP listen address (default: :8080)
    TODO_APP_TIMEOUT                       Per-operation timeout (default: 60s)
    TODO_APP_VERBOSE                       Enable debug logging (default: false)
    TODO_APP_SIDEBAR                       Enable the sidebar (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.interactive() {
				return root.runPage(cmd.Context())
			}
			return root.runShell(cmd.Context())
		},
	}
	root.cmd.SetIn(in)
	root.cmd.SetOut(out)
	root.cmd.SetErr(logOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs sets the arguments used instead of os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration resolved for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "TOML config file (overrides TODO_CONFIG)")
	flags.String("backend", "", "Task list backend: memory or sqlite (overrides TODO_STORE_BACKEND)")
	flags.Duration("notification-life", 0, "Notification lifetime (overrides TODO_NOTIFICATION_LIFE)")
	flags.Int("notification-max", 0, "Maximum visible notifications (overrides TODO_NOTIFICATION_MAX)")
	flags.Duration("app-timeout", 0, "Per-operation timeout (overrides TODO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging (overrides TODO_APP_VERBOSE)")
	flags.Bool("sidebar", false, "Enable the sidebar (overrides TODO_APP_SIDEBAR)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Manage the list from a line shell",
		Long: `Read one command per line until "quit" or end of input.

Example session:
  > add 3 Write report
  [success] Task Added: Task "Write report" with a deadline of 3 days was added.
  > list
  1. Write report (3 days)
  > complete Write report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runShell(cmd.Context())
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runPage(cmd.Context())
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task list over HTTP",
		Long: `Serve a JSON API for the task list:

  GET    /api/tasks
  POST   /api/tasks              {"name": "Write report", "deadlineDays": 3}
  DELETE /api/tasks/{name}
  GET    /api/notifications
  DELETE /api/notifications/{id}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
				r.config.Server.Addr = addr
				if err := r.config.Validate(); err != nil {
					return err
				}
			}
			return r.runServer(cmd.Context())
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides TODO_SERVER_ADDR)")

	r.cmd.AddCommand(shellCmd, tuiCmd, serveCmd)
}

// loadConfig resolves the configuration and the logger for this run
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.WithConfigFile(path)
	}

	cfg, err := loader.LoadWithOverrides(overridesFromFlags(cmd))
	if err != nil {
		return err
	}

	r.config = cfg
	r.logger = logging.New(r.logOut, cfg.Application.Verbose)
	r.logger.WithFields(log.Fields{
		"backend": cfg.Store.Backend,
		"command": cmd.Name(),
	}).Debug("configuration loaded")
	return nil
}

// overridesFromFlags collects the flags given explicitly on the command line
func overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		overrides.StoreBackend = &backend
	}
	if flags.Changed("notification-life") {
		life, _ := flags.GetDuration("notification-life")
		overrides.NotificationLife = &life
	}
	if flags.Changed("notification-max") {
		max, _ := flags.GetInt("notification-max")
		overrides.NotificationMax = &max
	}
	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}
	if flags.Changed("sidebar") {
		sidebar, _ := flags.GetBool("sidebar")
		overrides.Sidebar = &sidebar
	}

	return overrides
}

// interactive reports whether both ends of the command are a terminal
func (r *RootCommand) interactive() bool {
	return isTerminal(r.in) && isTerminal(r.out)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *RootCommand) runShell(ctx context.Context) error {
	return r.withSession(func(session *app.Session) error {
		return NewApp(session, r.out, r.config.Application.Timeout).RunShell(ctx, r.in)
	})
}

func (r *RootCommand) runPage(ctx context.Context) error {
	restore, err := r.redirectLogForPage()
	if err != nil {
		return err
	}
	defer restore()

	return r.withSession(func(session *app.Session) error {
		return r.runTUI(ctx, session, tui.Options{Timeout: r.config.Application.Timeout})
	})
}

// redirectLogForPage keeps log records off the alternate screen while the
// page is showing. Debug runs log to a file in the temp dir instead.
func (r *RootCommand) redirectLogForPage() (func(), error) {
	if !r.config.Application.Verbose && !logging.DebugEnabled() {
		r.logger.SetOutput(io.Discard)
		return func() { r.logger.SetOutput(r.logOut) }, nil
	}

	f, err := tea.LogToFile(filepath.Join(os.TempDir(), pageLogFile), "todo")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	r.logger.SetOutput(f)
	return func() {
		r.logger.SetOutput(r.logOut)
		f.Close()
	}, nil
}

func (r *RootCommand) runServer(ctx context.Context) error {
	return r.withSession(func(session *app.Session) error {
		srv := server.New(session, server.Options{
			Addr:    r.config.Server.Addr,
			Timeout: r.config.Application.Timeout,
		}, r.logger)
		return srv.Run(ctx)
	})
}

// withSession opens a session on the configured backend for the duration of fn
func (r *RootCommand) withSession(fn func(session *app.Session) error) error {
	session, err := app.NewFromConfig(r.config, r.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			r.logger.WithError(err).Warn("failed to close task list")
		}
	}()

	if err := fn(session); err != nil {
		return fmt.Errorf("todo: %w", err)
	}
	return nil
}
