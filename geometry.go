package scrubline

// Geometry is the measured layout the engine maps progress against. It is
// produced by a Probe, treated as immutable, and fully replaced (never
// patched) on every resize. The zero value is NotReady.
type Geometry struct {
	// ContainerWidth is the track container's width in pixels.
	ContainerWidth float64
	// TargetWidth is the car's rendered width in pixels.
	TargetWidth float64
	// HeadlineLeft is the headline's left edge relative to the container.
	HeadlineLeft float64
	// LetterOffsets holds each letter's left edge relative to the headline,
	// in source order.
	LetterOffsets []float64
	// Region is the pinned scroll region driving the track.
	Region PinnedRegion
	// Viewport is the visible area size; cards are placed in percentages of it.
	Viewport Vec2

	// Generation identifies the install this geometry belongs to. The probe
	// leaves it zero; Engine.Install assigns it.
	Generation uint64
}

// NotReady is the sentinel returned when layout cannot be measured yet.
var NotReady = Geometry{}

// Ready reports whether g can drive the engine: the container and car have
// width and letter offsets are non-decreasing left to right.
func (g Geometry) Ready() bool {
	if g.ContainerWidth <= 0 || g.TargetWidth <= 0 {
		return false
	}
	for i := 1; i < len(g.LetterOffsets); i++ {
		if g.LetterOffsets[i] < g.LetterOffsets[i-1] {
			return false
		}
	}
	return true
}

// EndX returns where the car's left edge ends at progress 1.
func (g Geometry) EndX(mode TrackMode) float64 {
	if mode == TrackExit {
		return g.ContainerWidth + g.TargetWidth
	}
	return g.ContainerWidth - g.TargetWidth
}

// Probe measures Geometry from the scene graph. All fields are optional; a
// missing node or zero size makes Measure return NotReady.
type Probe struct {
	Track    *Node // container the car drives across
	Car      *Node
	// Headline is a child of Track whose children are the letter nodes, in
	// source order.
	Headline *Node
	// Viewport is the current window size.
	Viewport Vec2
	// RegionTop is the document Y where pinning starts.
	RegionTop float64
	// RegionScreens is the pinned scroll distance in viewport heights.
	RegionScreens float64
}

// Measure reads the current layout. It never panics and performs no
// mutation; nodes are read through their local fields only, so two calls
// without an intervening layout change return identical values.
func (p *Probe) Measure() Geometry {
	if p == nil || p.Track == nil || p.Car == nil {
		return NotReady
	}
	if p.Track.IsDisposed() || p.Car.IsDisposed() {
		return NotReady
	}
	cw, _ := nodeDimensions(p.Track)
	tw, _ := nodeDimensions(p.Car)
	cw *= p.Track.ScaleX
	tw *= p.Car.ScaleX
	if cw <= 0 || tw <= 0 {
		return NotReady
	}

	g := Geometry{
		ContainerWidth: cw,
		TargetWidth:    tw,
		Viewport:       p.Viewport,
		Region: PinnedRegion{
			Top:    p.RegionTop,
			Height: p.RegionScreens * p.Viewport.Y,
		},
	}

	if h := p.Headline; h != nil && !h.IsDisposed() {
		g.HeadlineLeft = h.X
		letters := h.Children()
		if len(letters) > 0 {
			g.LetterOffsets = make([]float64, len(letters))
			for i, l := range letters {
				// Layout position only: transforms applied by the sink
				// (scale, lift) do not move a letter's reveal threshold.
				g.LetterOffsets[i] = l.X - l.PivotX
			}
		}
	}

	if !g.Ready() {
		return NotReady
	}
	return g
}
