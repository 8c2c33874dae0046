package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/scrubline/internal/termview"
)

func newTermCommand(ctx *commandContext) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Render the page in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.sceneConfig(variant)
			if err != nil {
				return err
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return termview.Run(runCtx, screen, cfg)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "Built-in variant ("+variantNames()+")")
	return cmd
}

