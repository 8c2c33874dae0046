package scrubline

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGB builds an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, sizes and pointer offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// TargetKind identifies what an AnimatedTarget draws.
type TargetKind uint8

const (
	TargetCar    TargetKind = iota // the moving car sprite
	TargetTrail                    // highlight rectangle anchored at the track's left edge
	TargetLetter                   // one character of the reveal headline
	TargetCard                     // one statistic card
	TargetHero                     // pointer-tilted hero block above the track
)

var targetKindNames = [...]string{"car", "trail", "letter", "card", "hero"}

func (k TargetKind) String() string {
	if int(k) < len(targetKindNames) {
		return targetKindNames[k]
	}
	return "unknown"
}

// TrackMode selects where the car stops at progress 1.
type TrackMode uint8

const (
	TrackEdgeStop TrackMode = iota // car stops flush with the right edge
	TrackExit                      // car drives fully out of the container
)

// CardMode selects how the four statistic cards animate.
type CardMode uint8

const (
	CardsFade    CardMode = iota // each card fades in at its corner on its own scroll window
	CardsExplode                 // all cards fly from the center to their corners in lockstep
)

// RevealMode selects how a letter moves between its hidden and visible style.
type RevealMode uint8

const (
	RevealInstant RevealMode = iota // styles switch on the tick the threshold is crossed
	RevealTween                     // a fixed-duration tween runs, independent of scroll
)

func (m RevealMode) String() string {
	if m == RevealTween {
		return "tween"
	}
	return "instant"
}

// RevealState is the per-letter result of the reveal evaluator.
type RevealState uint8

const (
	Hidden RevealState = iota
	Visible
)

func (s RevealState) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Result reports what the engine did with an input sample.
type Result uint8

const (
	Applied         Result = iota // sample was mapped and styles were emitted
	DroppedNotReady               // no valid geometry is installed
	DroppedStale                  // sample was produced against an older geometry
)

var resultNames = [...]string{"applied", "not-ready", "stale"}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
