package cli_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/viserio/monolog-bridge/cli"
	"github.com/viserio/monolog-bridge/core"
	"github.com/viserio/monolog-bridge/handler"
)

// newTestCommand builds a root command with one subcommand whose run
// function emits log records through the default slog logger.
func newTestCommand(run func(cmd *cobra.Command)) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	root := &cobra.Command{Use: "demo", SilenceUsage: true, SilenceErrors: true}
	root.SetOut(&out)
	root.SetErr(&errOut)

	sub := &cobra.Command{
		Use: "work",
		RunE: func(cmd *cobra.Command, args []string) error {
			run(cmd)
			return nil
		},
	}
	root.AddCommand(sub)
	return root, &out, &errOut
}

func TestSetup_RoutesRunLogsThroughGate(t *testing.T) {
	root, out, _ := newTestCommand(func(cmd *cobra.Command) {
		slog.Info("hidden at normal")
		slog.Warn("visible warning")
	})
	cli.Setup(root, cli.Options{})

	root.SetArgs([]string{"work"})
	require.NoError(t, root.Execute())

	output := out.String()
	require.NotContains(t, output, "hidden at normal")
	require.Contains(t, output, "WARNING   [app] visible warning")
}

func TestSetup_VerbosityFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		visible bool
	}{
		{"default hides info", []string{"work"}, false},
		{"-v still hides info", []string{"work", "-v"}, false},
		{"-vv shows info", []string{"work", "-vv"}, true},
		{"-vvv shows info", []string{"work", "-vvv"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out, _ := newTestCommand(func(cmd *cobra.Command) {
				slog.Info("an info record")
			})
			cli.Setup(root, cli.Options{})

			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())

			if tt.visible {
				require.Contains(t, out.String(), "an info record")
			} else {
				require.NotContains(t, out.String(), "an info record")
			}
		})
	}
}

func TestSetup_QuietFlag(t *testing.T) {
	root, out, _ := newTestCommand(func(cmd *cobra.Command) {
		slog.Warn("a warning")
		slog.Error("an error")
	})
	cli.Setup(root, cli.Options{})

	root.SetArgs([]string{"work", "--quiet"})
	require.NoError(t, root.Execute())

	require.NotContains(t, out.String(), "a warning")
	require.Contains(t, out.String(), "an error")
}

func TestSetup_DebugVerbosityUsesDetailedLayout(t *testing.T) {
	root, out, _ := newTestCommand(func(cmd *cobra.Command) {
		slog.Info("debugging", "step", 1)
	})
	cli.Setup(root, cli.Options{})

	root.SetArgs([]string{"work", "-vvv"})
	require.NoError(t, root.Execute())

	// Detailed layout: context on its own line
	require.Contains(t, out.String(), "debugging\n{\"step\":1}\n[]")
}

func TestSetup_BufferedFlushesAtCommandEnd(t *testing.T) {
	var sawDuringRun string

	root, out, _ := newTestCommand(nil)
	console := cli.Setup(root, cli.Options{Buffered: true})

	// Replace the run body so it can observe the output mid-run
	sub, _, err := root.Find([]string{"work"})
	require.NoError(t, err)
	sub.RunE = func(cmd *cobra.Command, args []string) error {
		slog.Error("emitted during run")
		sawDuringRun = out.String()
		return nil
	}

	root.SetArgs([]string{"work"})
	require.NoError(t, root.Execute())

	// Nothing reached the stream while the command ran; everything
	// arrived in one flush afterwards.
	require.Empty(t, sawDuringRun)
	require.Contains(t, out.String(), "emitted during run")
	require.Zero(t, console.Buffered.Len())
}

func TestSetup_HooksFromOtherPartiesAreRouted(t *testing.T) {
	root, out, _ := newTestCommand(func(cmd *cobra.Command) {})
	cli.Setup(root, cli.Options{})

	// A later party wraps the pre-run hook and logs from it
	prev := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := prev(cmd, args); err != nil {
			return err
		}
		slog.Warn("from a foreign hook")
		return nil
	}

	root.SetArgs([]string{"work"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "WARNING   [app] from a foreign hook")
}

func TestSetup_ErrSplit(t *testing.T) {
	root, out, errOut := newTestCommand(func(cmd *cobra.Command) {
		slog.Warn("to stdout")
		slog.Error("to stderr")
	})
	cli.Setup(root, cli.Options{ErrSplit: true})

	root.SetArgs([]string{"work"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "to stdout")
	require.NotContains(t, out.String(), "to stderr")
	require.Contains(t, errOut.String(), "to stderr")
}

func TestSetup_ConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbosity: very-verbose\n"), 0o644))

	// Config alone opens the stream up to Info
	root, out, _ := newTestCommand(func(cmd *cobra.Command) {
		slog.Info("from config verbosity")
	})
	cli.Setup(root, cli.Options{ConfigFile: path})
	root.SetArgs([]string{"work"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "from config verbosity")

	// An explicit --quiet flag beats the config file
	root2, out2, _ := newTestCommand(func(cmd *cobra.Command) {
		slog.Info("should not appear")
	})
	cli.Setup(root2, cli.Options{ConfigFile: path})
	root2.SetArgs([]string{"work", "--quiet"})
	require.NoError(t, root2.Execute())
	require.NotContains(t, out2.String(), "should not appear")
}

func TestSetup_BrokenConfigFileFailsWrapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbosity: blaring\n"), 0o644))

	root, _, _ := newTestCommand(func(cmd *cobra.Command) {})
	cli.Setup(root, cli.Options{ConfigFile: path})
	root.SetArgs([]string{"work"})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "console config:")
}

func TestSetup_RestoresPreviousLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	root, _, _ := newTestCommand(func(cmd *cobra.Command) {
		require.NotSame(t, prev, slog.Default())
	})
	cli.Setup(root, cli.Options{})

	root.SetArgs([]string{"work"})
	require.NoError(t, root.Execute())

	require.Same(t, prev, slog.Default())
}

func TestSetup_OverridesReachTheGate(t *testing.T) {
	root, out, _ := newTestCommand(func(cmd *cobra.Command) {
		slog.Info("opened up by override")
	})
	cli.Setup(root, cli.Options{
		Overrides: handler.VerbosityMap{core.VerbosityNormal: core.SeverityInfo},
	})

	root.SetArgs([]string{"work"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "opened up by override")
}

func TestVerbosityFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x", Run: func(*cobra.Command, []string) {}}
	cli.AddFlags(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"-vv"}))
	require.Equal(t, core.VerbosityVeryVerbose, cli.VerbosityFromFlags(cmd))

	cmd2 := &cobra.Command{Use: "x", Run: func(*cobra.Command, []string) {}}
	cli.AddFlags(cmd2)
	require.NoError(t, cmd2.ParseFlags([]string{"--quiet"}))
	require.Equal(t, core.VerbosityQuiet, cli.VerbosityFromFlags(cmd2))
}
