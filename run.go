package scrubline

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig sets up the window for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Overlay shows frame rate and engine counters.
	Overlay bool
	// Debug enables per-frame debug logging.
	Debug bool
}

// Run opens a resizable window and drives s until the window is closed or
// the update callback returns an error.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	if cfg.Title == "" {
		cfg.Title = "scrubline: " + s.cfg.Name
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	s.SetOverlay(cfg.Overlay)
	s.SetDebugMode(cfg.Debug)
	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run %s: %w", s.cfg.Name, err)
	}
	return nil
}
