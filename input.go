package scrubline

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// pointerState tracks the primary pointer between frames.
type pointerState struct {
	x, y    float64
	down    bool
	touchID ebiten.TouchID
	touch   bool
	seen    bool
}

// keyScrollSpeed is the arrow-key scroll speed in pixels per second.
const keyScrollSpeed = 900

// pageScrollDuration is how long a PageUp/PageDown/Home/End jump takes.
const pageScrollDuration = 0.45

// processInput is called from Scene.Update to handle scroll and pointer
// input. Injected events take precedence: while any are queued, real input
// is ignored so scripted runs are deterministic.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processWheel()
	s.processKeys()
	s.processMousePointer()
	s.processTouchScroll()
}

func (s *Scene) processWheel() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		s.viewport.ScrollBy(-dy * s.WheelStep)
	}
}

func (s *Scene) processKeys() {
	dt := 1.0 / float64(ebiten.TPS())
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		s.viewport.ScrollBy(keyScrollSpeed * dt)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		s.viewport.ScrollBy(-keyScrollSpeed * dt)
	}

	page := s.viewport.Height * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.viewport.ScrollTo(s.viewport.ScrollY+page, pageScrollDuration, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.viewport.ScrollTo(s.viewport.ScrollY-page, pageScrollDuration, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.viewport.ScrollTo(0, pageScrollDuration, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.viewport.ScrollTo(s.viewport.MaxScroll(), pageScrollDuration, ease.OutCubic)
	}
}

// processMousePointer feeds cursor movement to the hero tilt.
func (s *Scene) processMousePointer() {
	if s.ptr.touch {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if s.ptr.seen && x == s.ptr.x && y == s.ptr.y {
		return
	}
	s.ptr.x, s.ptr.y, s.ptr.seen = x, y, true
	s.samplePointer(x, y)
}

// processTouchScroll turns a one-finger vertical drag into document scroll.
func (s *Scene) processTouchScroll() {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) == 0 {
		if s.ptr.touch {
			s.ptr.touch = false
			s.ptr.down = false
		}
		return
	}
	tid := ids[0]
	tx, ty := ebiten.TouchPosition(tid)
	x, y := float64(tx), float64(ty)
	if !s.ptr.down || s.ptr.touchID != tid {
		s.pointerDown(x, y)
		s.ptr.touch = true
		s.ptr.touchID = tid
		return
	}
	s.pointerMove(x, y)
}

// pointerDown starts a drag at screen position (x, y).
func (s *Scene) pointerDown(x, y float64) {
	s.ptr.down = true
	s.ptr.x, s.ptr.y, s.ptr.seen = x, y, true
	s.samplePointer(x, y)
}

// pointerMove updates the pointer; while down, vertical movement scrolls the
// document the way a touch drag does.
func (s *Scene) pointerMove(x, y float64) {
	if s.ptr.down {
		s.viewport.ScrollBy(s.ptr.y - y)
	}
	s.ptr.x, s.ptr.y, s.ptr.seen = x, y, true
	s.samplePointer(x, y)
}

// pointerUp ends a drag.
func (s *Scene) pointerUp(x, y float64) {
	s.ptr.down = false
	s.ptr.x, s.ptr.y, s.ptr.seen = x, y, true
	s.samplePointer(x, y)
}
