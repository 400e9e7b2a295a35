package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/termgrid/internal/config"
	"github.com/andyrewlee/termgrid/internal/feed"
	"github.com/andyrewlee/termgrid/internal/logging"
	"github.com/andyrewlee/termgrid/internal/perf"
)

// Version is reported by --version.
var Version = "0.1.0"

var (
	cliStdout io.Writer = os.Stdout
	cliStderr io.Writer = os.Stderr
	cliStdin  io.Reader = os.Stdin
)

// Run executes the termgrid CLI. It returns a process exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := buildRootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	perf.Flush("exit")
	_ = logging.Close()
	if err != nil {
		if exitErr, ok := err.(exitError); ok {
			return exitErr.code
		}
		fmt.Fprintln(cliStderr, err)
		return 1
	}
	return 0
}

// exitError lets commands return a specific exit code without printing an error.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit with code %d", e.code)
}

// globalFlags holds flags shared by every subcommand. Zero sizes defer to
// the config file.
type globalFlags struct {
	width      int
	height     int
	scrollback int
	configPath string
	logLevel   string
}

// env is the resolved state handed to subcommands.
type env struct {
	flags globalFlags
	cfg   *config.Config
}

func buildRootCommand() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "termgrid",
		Short: "Feed text streams into a terminal buffer with scrollback",
		Long: `termgrid - a terminal text buffer with scrollback

Commands:
  termgrid dump [file]        Feed a file or stdin and print the screen
  termgrid run -- cmd ...     Run a command under a PTY and print the screen
  termgrid follow <file>      Tail a growing file into the buffer
  termgrid view [file]        Browse a file's screen and scrollback
  termgrid config show|init   Inspect or write the config file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}
	root.Version = Version
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(cliStdout)
	root.SetErr(cliStderr)

	pf := root.PersistentFlags()
	pf.IntVar(&e.flags.width, "width", 0, "buffer width in columns (default from config)")
	pf.IntVar(&e.flags.height, "height", 0, "buffer height in rows (default from config)")
	pf.IntVar(&e.flags.scrollback, "scrollback", 0, "maximum scrollback lines (default from config)")
	pf.StringVar(&e.flags.configPath, "config", "", "config file path (default ~/.termgrid/config.json)")
	pf.StringVar(&e.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(buildDumpCommand(e))
	root.AddCommand(buildRunCommand(e))
	root.AddCommand(buildFollowCommand(e))
	root.AddCommand(buildViewCommand(e))
	root.AddCommand(buildConfigCommand(e))

	return root
}

// setup loads the config, applies flag overrides and starts logging.
func (e *env) setup(cmd *cobra.Command) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}
	switch {
	case e.flags.configPath != "":
		paths.ConfigPath = e.flags.configPath
	case os.Getenv("TERMGRID_CONFIG") != "":
		paths.ConfigPath = os.Getenv("TERMGRID_CONFIG")
	}
	cfg, err := config.LoadFrom(paths)
	if err != nil {
		return fmt.Errorf("load config %s: %w", paths.ConfigPath, err)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Buffer.Width = e.flags.width
	}
	if flags.Changed("height") {
		cfg.Buffer.Height = e.flags.height
	}
	if flags.Changed("scrollback") {
		cfg.Buffer.MaxScrollback = e.flags.scrollback
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = e.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Paths.LogsRoot, cfg.LogLevel()); err != nil {
		fmt.Fprintf(cliStderr, "warning: logging disabled: %v\n", err)
	}
	if cfg.Perf.Enabled {
		perf.SetEnabled(true)
	}
	logging.Info("termgrid %s: %s %dx%d scrollback=%d", Version, cmd.Name(), cfg.Buffer.Width, cfg.Buffer.Height, cfg.Buffer.MaxScrollback)

	e.cfg = cfg
	return nil
}

// newSession builds a session sized and styled by the config.
func (e *env) newSession(mode feed.Mode) *feed.Session {
	s := feed.NewSession(e.cfg.NewBuffer())
	s.SetTabWidth(e.cfg.Buffer.TabWidth)
	s.SetMode(mode)
	return s
}
