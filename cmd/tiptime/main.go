// Command tiptime serves and runs the tip calculator.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tiptime/internal/config"
	"tiptime/internal/observability"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand wires the subcommands. Configuration is loaded before any of
// them runs and shared through cfg.
func newRootCommand() *cobra.Command {
	var configPath string
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:          "tiptime",
		Short:        "Tip calculator service and CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded

			return observability.InitLogger(cfg.Environment)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.SyncLogger()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config file path")

	rootCmd.AddCommand(
		serveCommand(cfg),
		calcCommand(cfg),
		sessionCommand(cfg),
	)

	return rootCmd
}

// logFailure logs err and returns it wrapped with msg.
func logFailure(ctx context.Context, msg string, err error) error {
	observability.LoggerWithTrace(ctx).Error(msg, zap.Error(err))
	return fmt.Errorf("%s: %w", msg, err)
}
