package scrubline

// syntheticKind identifies an injected input event.
type syntheticKind uint8

const (
	injectScroll syntheticKind = iota
	injectScrollTo
	injectPointerMove
	injectPointerDown
	injectPointerUp
	injectResize
)

// syntheticEvent is a single injected input event. Coordinates are in
// screen space, matching real cursor input.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectScroll queues a scroll by dy pixels (positive scrolls down). The
// event is consumed on the next frame's input pass.
func (s *Scene) InjectScroll(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectScroll, y: dy})
}

// InjectScrollTo queues an immediate jump to document offset y.
func (s *Scene) InjectScrollTo(y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectScrollTo, y: y})
}

// InjectSwipe queues a scroll of dy pixels spread evenly over frames frames,
// the way a wheel or trackpad gesture arrives. Minimum frames is 1.
func (s *Scene) InjectSwipe(dy float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	step := dy / float64(frames)
	for i := 0; i < frames; i++ {
		s.InjectScroll(step)
	}
}

// InjectPointerMove queues a pointer move to screen position (x, y).
func (s *Scene) InjectPointerMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectPointerMove, x: x, y: y})
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate frames, and a release at (toX, toY). Vertical
// drag distance scrolls the document. Minimum frames is 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectPointerDown, x: fromX, y: fromY})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectPointerMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectPointerUp, x: toX, y: toY})
}

// InjectResize queues a viewport resize to w x h. Once applied the size
// holds against Layout until ClearSizeOverride.
func (s *Scene) InjectResize(w, h float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectResize, x: w, y: h})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case injectScroll:
		s.viewport.ScrollBy(evt.y)
	case injectScrollTo:
		s.viewport.SetScroll(evt.y)
	case injectPointerMove:
		s.pointerMove(evt.x, evt.y)
	case injectPointerDown:
		s.pointerDown(evt.x, evt.y)
	case injectPointerUp:
		if s.ptr.down {
			s.pointerMove(evt.x, evt.y)
		}
		s.pointerUp(evt.x, evt.y)
	case injectResize:
		s.sizeOverride = Vec2{X: evt.x, Y: evt.y}
		s.Resize(evt.x, evt.y)
	}
	return true
}
