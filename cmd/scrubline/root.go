package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbose bool

	ctx := newCommandContext(&configFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:           "scrubline",
		Short:         "Scroll-scrubbed page animation previewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				ctx.installLogger(cmd.ErrOrStderr(), slog.LevelInfo)
				return nil
			}
			file, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			level, err := file.LogLevel()
			if err != nil {
				return err
			}
			ctx.installLogger(cmd.ErrOrStderr(), level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine diagnostics at debug level")

	rootCmd.AddCommand(newTraceCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newTermCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
