package scrubline

// ScrollProgress converts a scroll offset into normalized progress through a
// pinned region: clamp((scrollY-regionTop)/regionHeight, 0, 1). The result is
// monotone in scrollY and saturates at both ends. A region with no height
// behaves as a step at regionTop.
func ScrollProgress(regionTop, regionHeight, scrollY float64) float64 {
	if regionHeight <= 0 {
		if scrollY < regionTop {
			return 0
		}
		return 1
	}
	return clamp01((scrollY - regionTop) / regionHeight)
}

// PinnedRegion is a span of the document that is held at the top of the
// viewport while its progress sweeps from 0 to 1.
type PinnedRegion struct {
	Top    float64 // document Y where pinning starts
	Height float64 // scroll distance over which the region stays pinned
}

// Progress returns the region's progress at scrollY.
func (r PinnedRegion) Progress(scrollY float64) float64 {
	return ScrollProgress(r.Top, r.Height, scrollY)
}

// ScreenY returns where the region's top edge is drawn in the viewport. Before
// the region is reached it scrolls in normally, while its progress is inside
// (0, 1) it stays at 0, and afterwards it scrolls out.
func (r PinnedRegion) ScreenY(scrollY float64) float64 {
	held := scrollY - r.Top
	if held < 0 {
		held = 0
	}
	if held > r.Height {
		held = r.Height
	}
	return r.Top - scrollY + held
}

// ScrollTrigger is a scroll window expressed as offsets from a region's top,
// in the style of "top+=400 top" / "top+=600 top". An End of zero means the
// region's bottom edge.
type ScrollTrigger struct {
	Start float64
	End   float64
}

// Bounds returns the trigger's absolute document span for region r.
func (t ScrollTrigger) Bounds(r PinnedRegion) (start, length float64) {
	end := t.End
	if end == 0 {
		end = r.Height
	}
	return r.Top + t.Start, end - t.Start
}

// Progress returns the trigger's progress at scrollY for region r.
func (t ScrollTrigger) Progress(r PinnedRegion, scrollY float64) float64 {
	start, length := t.Bounds(r)
	return ScrollProgress(start, length, scrollY)
}

// ScrollSample is one scroll reading tagged with the geometry generation it
// was produced against.
type ScrollSample struct {
	ScrollY    float64
	Generation uint64
}

// PointerSample is one pointer offset tagged with its geometry generation.
type PointerSample struct {
	Offset     Vec2
	Generation uint64
}

// PointerSource converts client pointer coordinates into an offset from the
// center of a rectangle, nominally in [-0.5, 0.5] per axis.
//
// With Clamp == 0 values pass through unbounded, so a fast move that leaves
// the rectangle produces offsets beyond ±0.5. A positive Clamp bounds each
// axis to [-Clamp, Clamp].
type PointerSource struct {
	Clamp float64
}

// Sample maps (clientX, clientY) inside rect to a centered offset. A rect
// with no area yields the zero offset.
func (s PointerSource) Sample(rect Rect, clientX, clientY float64) Vec2 {
	if rect.Width <= 0 || rect.Height <= 0 {
		return Vec2{}
	}
	off := Vec2{
		X: (clientX-rect.X)/rect.Width - 0.5,
		Y: (clientY-rect.Y)/rect.Height - 0.5,
	}
	if s.Clamp > 0 {
		off.X = clampAbs(off.X, s.Clamp)
		off.Y = clampAbs(off.Y, s.Clamp)
	}
	return off
}

func clampAbs(v, limit float64) float64 {
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return v
}
