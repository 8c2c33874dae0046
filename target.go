package scrubline

import "strconv"

// StyleField is a bitmask naming the style properties a target declares.
// Sinks only write the fields present in Style.Fields.
type StyleField uint16

const (
	FieldX StyleField = 1 << iota
	FieldY
	FieldWidth
	FieldOpacity
	FieldScale
	FieldRotation
	FieldBlur
	FieldTilt
)

// Style is the visual state computed for one target.
type Style struct {
	X, Y     float64 // translation in pixels
	Width    float64 // pixels; trail only
	Opacity  float64
	Scale    float64
	Rotation float64 // degrees
	Blur     float64 // radius in pixels
	TiltX    float64 // degrees around the horizontal axis
	TiltY    float64 // degrees around the vertical axis

	Fields StyleField
}

// Has reports whether f is part of the declared schema.
func (s Style) Has(f StyleField) bool {
	return s.Fields&f != 0
}

// neutralLetter is the Visible letter style.
var neutralLetter = Style{Opacity: 1, Scale: 1}

// LerpStyle interpolates every numeric field from a to b at progress p along
// e. The result declares the union of both schemas.
func LerpStyle(a, b Style, p float64, e Easing) Style {
	t := e.At(p)
	if t <= 0 {
		a.Fields |= b.Fields
		return a
	}
	if t >= 1 {
		b.Fields |= a.Fields
		return b
	}
	return Style{
		X:        a.X + (b.X-a.X)*t,
		Y:        a.Y + (b.Y-a.Y)*t,
		Width:    a.Width + (b.Width-a.Width)*t,
		Opacity:  a.Opacity + (b.Opacity-a.Opacity)*t,
		Scale:    a.Scale + (b.Scale-a.Scale)*t,
		Rotation: a.Rotation + (b.Rotation-a.Rotation)*t,
		Blur:     a.Blur + (b.Blur-a.Blur)*t,
		TiltX:    a.TiltX + (b.TiltX-a.TiltX)*t,
		TiltY:    a.TiltY + (b.TiltY-a.TiltY)*t,
		Fields:   a.Fields | b.Fields,
	}
}

// AnimatedTarget is one declaratively animated element: a start and end
// style, the curve between them, and the scroll window that drives it.
// Targets belong to a TargetSet and stop receiving updates once that set is
// revoked.
type AnimatedTarget struct {
	ID      string
	Kind    TargetKind
	Index   int // position among targets of the same kind
	Start   Style
	End     Style
	Interp  Easing
	Trigger ScrollTrigger

	set *TargetSet
}

// At returns the target's style at progress p.
func (t *AnimatedTarget) At(p float64) Style {
	return LerpStyle(t.Start, t.End, p, t.Interp)
}

// Generation returns the geometry generation the target was built against.
func (t *AnimatedTarget) Generation() uint64 {
	if t.set == nil {
		return 0
	}
	return t.set.Generation
}

// Revoked reports whether the target's set has been replaced or torn down.
func (t *AnimatedTarget) Revoked() bool {
	return t.set == nil || t.set.revoked
}

// TargetSet is every target built against one Geometry. Revoking the set
// disables all of its targets at once.
type TargetSet struct {
	Generation uint64
	Geometry   Geometry

	// EndX is the car's translation at progress 1.
	EndX float64
	// Lead is TrailLead * car width: how far the sweep point sits ahead of
	// the car's left edge.
	Lead float64

	Car     *AnimatedTarget
	Trail   *AnimatedTarget
	Letters []*AnimatedTarget
	Cards   []*AnimatedTarget
	Hero    *AnimatedTarget // nil unless the hero is enabled

	revoked bool
}

// Revoked reports whether the set has been revoked.
func (s *TargetSet) Revoked() bool {
	return s == nil || s.revoked
}

func (s *TargetSet) revoke() {
	if s != nil {
		s.revoked = true
	}
}

// All returns every target in emission order.
func (s *TargetSet) All() []*AnimatedTarget {
	out := make([]*AnimatedTarget, 0, 3+len(s.Letters)+len(s.Cards))
	out = append(out, s.Trail, s.Car)
	out = append(out, s.Letters...)
	out = append(out, s.Cards...)
	if s.Hero != nil {
		out = append(out, s.Hero)
	}
	return out
}

// Target ids used by the engine and sinks.
const (
	CarID   = "car"
	TrailID = "trail"
	HeroID  = "hero"
)

// LetterID returns the sink id for the i-th headline letter.
func LetterID(i int) string {
	return "letter/" + strconv.Itoa(i)
}

// CardID returns the sink id for a card placement.
func CardID(p CardPlacement) string {
	return "card/" + p.ID
}

// BuildTargets constructs the target set for g. It is a pure function of its
// inputs: every pixel value the targets close over comes from g. It returns
// nil when g is not ready.
func BuildTargets(g Geometry, cfg Config) *TargetSet {
	if !g.Ready() {
		return nil
	}
	set := &TargetSet{
		Generation: g.Generation,
		Geometry:   g,
		EndX:       g.EndX(cfg.Track),
		Lead:       cfg.TrailLead * g.TargetWidth,
	}

	set.Car = &AnimatedTarget{
		ID:      CarID,
		Kind:    TargetCar,
		Start:   Style{X: 0, Fields: FieldX},
		End:     Style{X: set.EndX, Fields: FieldX},
		Interp:  cfg.CarEasing,
		Trigger: cfg.CarTrigger,
		set:     set,
	}
	set.Trail = &AnimatedTarget{
		ID:      TrailID,
		Kind:    TargetTrail,
		Start:   Style{Width: set.Lead, Fields: FieldWidth},
		End:     Style{Width: set.EndX + set.Lead, Fields: FieldWidth},
		Interp:  cfg.CarEasing,
		Trigger: cfg.CarTrigger,
		set:     set,
	}

	visible := neutralLetter
	visible.Fields = cfg.HiddenLetter.Fields | FieldOpacity
	hidden := cfg.HiddenLetter
	hidden.Fields = visible.Fields
	set.Letters = make([]*AnimatedTarget, len(g.LetterOffsets))
	for i := range g.LetterOffsets {
		set.Letters[i] = &AnimatedTarget{
			ID:     LetterID(i),
			Kind:   TargetLetter,
			Index:  i,
			Start:  hidden,
			End:    visible,
			Interp: cfg.RevealEasing,
			set:    set,
		}
	}

	set.Cards = make([]*AnimatedTarget, len(cfg.Placements))
	for i, p := range cfg.Placements {
		set.Cards[i] = buildCard(g, cfg, i, p, set)
	}

	if cfg.Hero.Enabled {
		set.Hero = &AnimatedTarget{
			ID:     HeroID,
			Kind:   TargetHero,
			Start:  Style{Opacity: 1, Fields: FieldY | FieldOpacity},
			End:    Style{Y: -cfg.Hero.Rise, Opacity: 0, Fields: FieldY | FieldOpacity},
			Interp: cfg.Hero.Easing,
			set:    set,
		}
	}
	return set
}

// buildCard resolves a placement against the viewport. Card X/Y are the
// card's center in viewport pixels.
func buildCard(g Geometry, cfg Config, i int, p CardPlacement, set *TargetSet) *AnimatedTarget {
	rest := Style{
		X:        p.Corner.Left / 100 * g.Viewport.X,
		Y:        p.Corner.Top / 100 * g.Viewport.Y,
		Opacity:  p.Opacity,
		Scale:    p.Scale,
		Rotation: p.Rotation,
	}
	t := &AnimatedTarget{
		ID:     CardID(p),
		Kind:   TargetCard,
		Index:  i,
		Interp: cfg.CardEasing,
		set:    set,
	}
	switch cfg.Cards {
	case CardsExplode:
		start := cfg.CardStart
		start.X = g.Viewport.X / 2
		start.Y = g.Viewport.Y / 2
		start.Fields |= FieldX | FieldY | FieldOpacity | FieldScale | FieldRotation
		rest.Fields = start.Fields
		t.Start, t.End = start, rest
		t.Trigger = cfg.CardTrigger
	default:
		start := rest
		start.Opacity = cfg.CardStart.Opacity
		start.Fields = FieldX | FieldY | FieldOpacity
		rest.Fields = start.Fields
		t.Start, t.End = start, rest
		t.Trigger = p.Window
	}
	return t
}
