package scrubline

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlay prints frame rate and engine counters in the top-left corner.
type overlay struct {
	enabled bool
	elapsed float32
	line    string
}

// SetOverlay shows or hides the stats overlay.
func (s *Scene) SetOverlay(enabled bool) {
	s.overlay.enabled = enabled
}

// update refreshes the overlay text about twice a second.
func (o *overlay) update(dt float32, s *Scene) {
	if !o.enabled {
		return
	}
	o.elapsed += dt
	if o.line != "" && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	st := s.engine.Stats()
	o.line = fmt.Sprintf("FPS: %.1f  TPS: %.1f\nscroll: %.0f  car: %.2f  gen: %d\napplied: %d  stale: %d  not ready: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.viewport.ScrollY, s.engine.CarProgress(s.viewport.ScrollY), s.engine.Generation(),
		st.Applied, st.DroppedStale, st.DroppedNotReady)
}

func (o *overlay) draw(screen *ebiten.Image) {
	if !o.enabled || o.line == "" {
		return
	}
	ebitenutil.DebugPrint(screen, o.line)
}
