package scrubline

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport is the vertical window onto the document. ScrollY is the document
// offset of the viewport's top edge and is kept within [0, MaxScroll].
type Viewport struct {
	ScrollY float64
	// Height is the visible height in pixels.
	Height float64
	// ContentHeight is the full document height in pixels.
	ContentHeight float64

	scrollTween *gween.Tween
	changed     bool
}

// MaxScroll returns the largest valid ScrollY.
func (v *Viewport) MaxScroll() float64 {
	m := v.ContentHeight - v.Height
	if m < 0 {
		return 0
	}
	return m
}

// ScrollBy moves the viewport by dy pixels immediately, cancelling any
// running ScrollTo.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.setScroll(v.ScrollY + dy)
}

// SetScroll jumps to y immediately, cancelling any running ScrollTo.
func (v *Viewport) SetScroll(y float64) {
	v.scrollTween = nil
	v.setScroll(y)
}

// ScrollTo animates the viewport to y over duration seconds. The target is
// clamped to the scrollable range.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = v.clamp(y)
	if duration <= 0 {
		v.SetScroll(y)
		return
	}
	v.scrollTween = gween.New(float32(v.ScrollY), float32(y), duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// update advances a running ScrollTo and reports whether ScrollY changed
// since the previous update.
func (v *Viewport) update(dt float32) bool {
	if v.scrollTween != nil {
		val, done := v.scrollTween.Update(dt)
		v.setScroll(float64(val))
		if done {
			v.scrollTween = nil
		}
	}
	changed := v.changed
	v.changed = false
	return changed
}

// Resize sets the visible and document heights and re-clamps ScrollY.
func (v *Viewport) Resize(height, contentHeight float64) {
	v.Height = height
	v.ContentHeight = contentHeight
	v.setScroll(v.ScrollY)
	v.changed = true
}

func (v *Viewport) setScroll(y float64) {
	y = v.clamp(y)
	if y != v.ScrollY {
		v.ScrollY = y
		v.changed = true
	}
}

func (v *Viewport) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if m := v.MaxScroll(); y > m {
		return m
	}
	return y
}
