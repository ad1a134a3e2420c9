package commands

import (
	"context"

	"github.com/ncobase/taskbridge/config"
	"github.com/ncobase/taskbridge/logging/logger"
	"github.com/ncobase/taskbridge/version"
	"github.com/spf13/cobra"
)

// app is the state shared by subcommands after the root pre-run.
type app struct {
	cfg     *config.Config
	cleanup func()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), cleanup: func() {}}
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "taskbridge",
		Short:         "Filter, mutation and response contracts for task automation scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, configPath)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.cleanup()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default searches ./taskbridge.yaml)")

	// Add subcommands
	rootCmd.AddCommand(
		newFilterCommand(a),
		newMutationCommand(a),
		newUnwrapCommand(a),
		newProjectionCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	cleanup, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	a.cleanup = cleanup
	logger.StdLogger().SetVersion(version.GetVersionInfo().Version)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = logger.EnsureRequestID(ctx)
	cmd.SetContext(ctx)
	return nil
}
