package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/viserio/monolog-bridge/cli"
	"github.com/viserio/monolog-bridge/config"
	"github.com/viserio/monolog-bridge/core"
)

var version = "dev"

func main() {
	root, console := newRootCmd()
	defer console.Flush()

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, *cli.Console) {
	var configFile string

	root := &cobra.Command{
		Use:          "monobridge",
		Short:        "Demo of the console logging bridge",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML console config (watched for changes)")

	console := cli.Setup(root, cli.Options{
		Channel:  "app",
		ErrSplit: true,
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(newEmitCmd(console, &configFile))

	return root, console
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("monobridge " + version)
		},
	}
}

// newEmitCmd logs one record per severity so the gate and formatter
// can be observed at the different -v levels.
func newEmitCmd(console *cli.Console, configFile *string) *cobra.Command {
	var repeat int
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Emit sample records at every severity",
		RunE: func(cmd *cobra.Command, args []string) error {
			core.StartCoarseClock()

			if *configFile != "" {
				if err := config.Watch(cmd.Context(), *configFile, console.Out); err != nil {
					return err
				}
				slog.Debug("watching console config", "path", *configFile)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			for i := 0; i < repeat; i++ {
				slog.Debug("debug record", "iteration", i)
				slog.Info("info record", "iteration", i)
				slog.Log(ctx, slog.LevelInfo+2, "notice record")
				slog.Warn("warning record")
				slog.Error("error record")

				if i < repeat-1 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(interval):
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&repeat, "repeat", 1, "how many rounds of records to emit")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "pause between rounds")
	return cmd
}
