package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/viserio/monolog-bridge/config"
	"github.com/viserio/monolog-bridge/core"
	"github.com/viserio/monolog-bridge/handler"
	"github.com/viserio/monolog-bridge/term"
)

// Options configures the console bridge attached to a command tree
type Options struct {
	// Channel names the logical stream in every rendered line
	// (default "app")
	Channel string
	// ConfigFile optionally points at a YAML file loaded before the
	// flags are evaluated; explicit flags win over the file.
	ConfigFile string
	// Overrides replaces default verbosity thresholds (see handler.VerbosityMap)
	Overrides handler.VerbosityMap
	// Buffered collects all output and emits it once after the
	// command has finished
	Buffered bool
	// ErrSplit routes records at Error severity and above to the
	// command's error stream
	ErrSplit bool
}

// Console is the wiring built for one command run. Its fields are
// populated when the command's lifecycle starts (PersistentPreRun) and
// stay valid until the process exits.
type Console struct {
	Out      *term.Output
	Err      *term.Output
	Buffered *term.BufferedOutput
	Handler  *handler.ConsoleHandler

	prevLogger *slog.Logger
}

// Flush emits any buffered output. It is called from the command's
// PersistentPostRun hook; commands that fail before that hook fires
// can call it themselves (typically via defer in main).
func (c *Console) Flush() error {
	if c.Buffered == nil {
		return nil
	}
	return c.Buffered.Flush()
}

// AddFlags registers the verbosity flags on the command:
// -q/--quiet, -v (repeatable up to -vvv) and --no-ansi.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("quiet", "q", false, "only show errors")
	cmd.PersistentFlags().CountP("verbose", "v", "increase verbosity (-v, -vv, -vvv)")
	cmd.PersistentFlags().Bool("no-ansi", false, "disable colored output")
}

// VerbosityFromFlags maps the -q/-v flags to a verbosity
func VerbosityFromFlags(cmd *cobra.Command) core.Verbosity {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return core.VerbosityQuiet
	}
	count, _ := cmd.Flags().GetCount("verbose")
	switch {
	case count <= 0:
		return core.VerbosityNormal
	case count == 1:
		return core.VerbosityVerbose
	case count == 2:
		return core.VerbosityVeryVerbose
	default:
		return core.VerbosityDebug
	}
}

// Setup attaches the console bridge to the root command's lifecycle.
//
// When the command starts (PersistentPreRun) the bridge builds the
// output sinks on the command's streams, wraps them in a console
// handler and installs it as the slog default logger, so every log
// record emitted by anything running during the command, including
// hooks registered by other parties before or after this call, is
// routed through the same gate and formatter. When the command ends
// (PersistentPostRun) buffered output is flushed exactly once and the
// previous slog default is restored.
func Setup(root *cobra.Command, opts Options) *Console {
	if opts.Channel == "" {
		opts.Channel = "app"
	}
	console := &Console{}

	AddFlags(root)

	prevPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := console.start(cmd, opts); err != nil {
			return err
		}
		if prevPreRun != nil {
			return prevPreRun(cmd, args)
		}
		return nil
	}

	prevPostRun := root.PersistentPostRunE
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if prevPostRun != nil {
			if err := prevPostRun(cmd, args); err != nil {
				return err
			}
		}
		return console.finish()
	}

	return console
}

// start builds the sinks and handler and installs the slog default
func (c *Console) start(cmd *cobra.Command, opts Options) error {
	c.Out = term.NewOutput(cmd.OutOrStdout(), core.VerbosityNormal)

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return fmt.Errorf("console config: %w", err)
		}
		if err := cfg.Apply(c.Out); err != nil {
			return fmt.Errorf("console config: %w", err)
		}
		if len(opts.Overrides) == 0 {
			if m, err := cfg.VerbosityMap(); err == nil && m != nil {
				opts.Overrides = m
			}
		}
	}

	// Explicit flags win over the config file
	if cmd.Flags().Changed("quiet") || cmd.Flags().Changed("verbose") || opts.ConfigFile == "" {
		c.Out.SetVerbosity(VerbosityFromFlags(cmd))
	}
	if noAnsi, _ := cmd.Flags().GetBool("no-ansi"); noAnsi {
		c.Out.SetDecorated(false)
	}

	var sink term.Sink = c.Out
	if opts.Buffered {
		c.Buffered = term.NewBufferedOutput(c.Out)
		sink = c.Buffered
	}

	cfg := handler.ConsoleConfig{
		Output:    sink,
		Overrides: opts.Overrides,
	}
	if opts.ErrSplit {
		c.Err = term.NewOutput(cmd.ErrOrStderr(), c.Out.Verbosity())
		cfg.ErrOutput = c.Err
	}
	c.Handler = handler.NewConsoleHandler(cfg)

	c.prevLogger = slog.Default()
	slog.SetDefault(slog.New(handler.NewSlogHandler(c.Handler, opts.Channel)))
	return nil
}

// finish flushes buffered output and restores the previous slog default
func (c *Console) finish() error {
	if c.prevLogger != nil {
		slog.SetDefault(c.prevLogger)
		c.prevLogger = nil
	}
	return c.Flush()
}
