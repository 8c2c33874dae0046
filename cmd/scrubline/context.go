package main

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/phanxgames/scrubline"
	"github.com/phanxgames/scrubline/internal/config"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	file       *config.File
	path       string
	exists     bool
	configErr  error
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.File, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		file, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.file, c.path, c.exists = file, resolved, exists
	})
	return c.file, c.configErr
}

// sceneConfig returns the preset named by variant, or the loaded file's
// scene when variant is empty.
func (c *commandContext) sceneConfig(variant string) (scrubline.Config, error) {
	if name := strings.TrimSpace(variant); name != "" {
		return scrubline.VariantByName(name)
	}
	file, err := c.ensureConfig()
	if err != nil {
		return scrubline.Config{}, err
	}
	return file.ToConfig()
}

// installLogger routes CLI and engine logs to w. --verbose lowers the level
// to debug regardless of the configured level.
func (c *commandContext) installLogger(w io.Writer, level slog.Level) {
	if c.verbose != nil && *c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	scrubline.SetLogger(logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func variantNames() string {
	names := make([]string, 0, 3)
	for name := range scrubline.Variants() {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
