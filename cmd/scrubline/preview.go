package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/scrubline"
	"github.com/phanxgames/scrubline/internal/config"
)

type previewOptions struct {
	variant       string
	overlay       bool
	debug         bool
	script        string
	screenshotDir string
}

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open the page in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.sceneConfig(opts.variant)
			if err != nil {
				return err
			}
			file, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			scene, err := newPreviewScene(cfg, file, opts)
			if err != nil {
				return err
			}
			rc := scrubline.RunConfig{
				Title:   file.Window.Title,
				Width:   file.Window.Width,
				Height:  file.Window.Height,
				Overlay: opts.overlay,
				Debug:   opts.debug,
			}
			slog.Info("opening preview", "variant", cfg.Name, "config", ctx.path, "config_exists", ctx.exists)
			return scrubline.Run(scene, rc)
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "Built-in variant ("+variantNames()+")")
	cmd.Flags().BoolVar(&opts.overlay, "overlay", false, "Show frame rate and engine counters")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable scene debug mode")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON test script to replay; the window closes when it finishes")
	cmd.Flags().StringVar(&opts.screenshotDir, "screenshots", "", "Directory for script screenshots")
	return cmd
}

// newPreviewScene builds a scene with the configured font and, when a script
// is given, a test runner that ends the run once every step has executed.
func newPreviewScene(cfg scrubline.Config, file *config.File, opts previewOptions) (*scrubline.Scene, error) {
	var font scrubline.Font
	if path := file.Headline.FontPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		ttf, err := scrubline.LoadTTFFont(data, cfg.FontSize)
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", path, err)
		}
		font = ttf
	}

	scene, err := scrubline.NewScene(cfg, font)
	if err != nil {
		return nil, err
	}
	if opts.screenshotDir != "" {
		scene.ScreenshotDir = opts.screenshotDir
	}
	if opts.script == "" {
		return scene, nil
	}

	data, err := os.ReadFile(opts.script)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	runner, err := scrubline.LoadTestScript(data)
	if err != nil {
		return nil, err
	}
	scene.SetTestRunner(runner)
	scene.SetUpdateFunc(func() error {
		if runner.Done() {
			return ebiten.Termination
		}
		return nil
	})
	return scene, nil
}
