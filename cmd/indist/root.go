package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
	run        runFile
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "indist",
		Short:         "Find indistinguishable trials in CSV data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rf, err := loadRunFile(opts.configPath)
			if err != nil {
				return err
			}
			opts.run = rf
			if !cmd.Flags().Changed("log-level") && rf.LogLevel != nil {
				opts.logLevel = *rf.LogLevel
			}

			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML run file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(adjacencyCmd(opts))
	root.AddCommand(clustersCmd(opts))
	root.AddCommand(thresholdsCmd(opts))

	return root
}
