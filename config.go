package scrubline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPlacementTable is returned when a card placement table does not form a
// symmetric four-corner layout.
var ErrPlacementTable = errors.New("scrubline: invalid card placement table")

// Corner is a card's resting position as percentages of the viewport.
type Corner struct {
	Top  float64
	Left float64
}

// CardPlacement describes one statistic card and where it comes to rest.
type CardPlacement struct {
	ID    string
	Value string // large figure, e.g. "58%"
	Label string // caption under the figure
	Color Color  // card background

	Corner   Corner
	Scale    float64
	Rotation float64 // degrees
	Opacity  float64

	// Window is the card's own fade window, used in CardsFade mode.
	Window ScrollTrigger
}

// HeroConfig drives the hero block above the pinned region: it tilts toward
// the pointer and rises out as the intro spacer scrolls away.
type HeroConfig struct {
	Enabled bool
	// Rise is how far the hero moves up (pixels) by the time the pinned
	// region reaches the top of the viewport.
	Rise float64
	// MaxTilt is the tilt in degrees at a pointer offset of 0.5.
	MaxTilt float64
	// Parallax is the translation in pixels at a pointer offset of 0.5.
	Parallax float64
	// PointerClamp bounds the pointer offset per axis; zero leaves it unbounded.
	PointerClamp float64
	Easing       Easing
}

// Config is the declarative description of one page variant.
type Config struct {
	Name string

	Headline  string
	LetterGap float64 // extra spacing between letters, in pixels
	FontSize  float64

	CarWidth  float64
	CarHeight float64
	Track     TrackMode
	// TrailLead is the fraction of the car width the sweep point sits ahead
	// of the car's left edge.
	TrailLead  float64
	CarEasing  Easing
	CarTrigger ScrollTrigger

	Reveal         RevealMode
	RevealDuration float32 // seconds, RevealTween only
	RevealEasing   Easing
	// HiddenLetter is the style a letter takes while Hidden. The visible
	// style is neutral: full opacity, no offset, scale 1, no blur.
	HiddenLetter Style

	Cards       CardMode
	CardEasing  Easing
	CardTrigger ScrollTrigger // explosion window, CardsExplode only
	CardStart   Style         // common start for the explosion
	Placements  []CardPlacement

	Hero HeroConfig

	// RegionScreens is the pinned scroll distance in viewport heights.
	RegionScreens float64
}

// DefaultPlacements returns the statistic cards: two on the left column, two
// on the right, two on the top row and two on the bottom row.
func DefaultPlacements() []CardPlacement {
	return []CardPlacement{
		placement("pickup", "58%", "Increase in pick up point use", RGB(0xde, 0xf5, 0x4f), 20, 15, 400),
		placement("calls", "23%", "Decreased in customer phone calls", RGB(0x6a, 0xc9, 0xff), 80, 15, 600),
		placement("pickup-repeat", "27%", "Increase in pick up point use", RGB(0x33, 0x33, 0x33), 20, 85, 800),
		placement("calls-repeat", "40%", "Decreased in customer phone calls", RGB(0xfa, 0x73, 0x28), 80, 85, 1000),
	}
}

// placement builds a card resting at (top, left) percent whose fade window
// spans 200px starting fadeAt pixels into the region.
func placement(id, value, label string, bg Color, top, left, fadeAt float64) CardPlacement {
	return CardPlacement{
		ID:      id,
		Value:   value,
		Label:   label,
		Color:   bg,
		Corner:  Corner{Top: top, Left: left},
		Scale:   1,
		Opacity: 1,
		Window:  ScrollTrigger{Start: fadeAt, End: fadeAt + 200},
	}
}

// VariantEdgeStop is the first iteration: linear scrub, the car stops at the
// right edge, letters snap visible and cards fade in one after another.
func VariantEdgeStop() Config {
	return Config{
		Name:          "edge-stop",
		Headline:      "WELCOME ITZFIZZ",
		LetterGap:     4.8,
		FontSize:      96,
		CarWidth:      150,
		CarHeight:     200,
		Track:         TrackEdgeStop,
		TrailLead:     0.5,
		CarEasing:     Linear,
		Reveal:        RevealInstant,
		RevealEasing:  Linear,
		HiddenLetter:  Style{Opacity: 0, Fields: FieldOpacity},
		Cards:         CardsFade,
		CardEasing:    Linear,
		CardStart:     Style{Opacity: 0, Scale: 1, Fields: FieldOpacity},
		Placements:    DefaultPlacements(),
		RegionScreens: 2,
	}
}

// VariantExit is the second iteration: the car leaves the track, letters
// tween in from a displaced blurred state, and the cards explode outward.
func VariantExit() Config {
	cfg := VariantEdgeStop()
	cfg.Name = "exit"
	cfg.Track = TrackExit
	cfg.TrailLead = 0.4
	cfg.Reveal = RevealTween
	cfg.RevealDuration = 0.35
	cfg.RevealEasing, _ = EasingByName("power2.out")
	cfg.HiddenLetter = Style{
		Y:       24,
		Opacity: 0,
		Scale:   0.8,
		Blur:    8,
		Fields:  FieldY | FieldOpacity | FieldScale | FieldBlur,
	}
	cfg.Cards = CardsExplode
	cfg.CardTrigger = ScrollTrigger{Start: 400}
	cfg.CardStart = Style{
		Opacity: 0,
		Scale:   0.2,
		Fields:  FieldX | FieldY | FieldOpacity | FieldScale | FieldRotation,
	}
	cfg.Hero = HeroConfig{
		Enabled:  true,
		Rise:     120,
		MaxTilt:  12,
		Parallax: 24,
		Easing:   Linear,
	}
	return cfg
}

// VariantExitEased is the third iteration: VariantExit with eased car and
// card phases.
func VariantExitEased() Config {
	cfg := VariantExit()
	cfg.Name = "exit-eased"
	cfg.CarEasing, _ = EasingByName("power1.inOut")
	cfg.CardEasing, _ = EasingByName("power2.out")
	cfg.Hero.Easing, _ = EasingByName("sine.out")
	return cfg
}

// Variants returns the presets keyed by name.
func Variants() map[string]Config {
	m := make(map[string]Config, 3)
	for _, cfg := range []Config{VariantEdgeStop(), VariantExit(), VariantExitEased()} {
		m[cfg.Name] = cfg
	}
	return m
}

// VariantByName returns the preset with the given name.
func VariantByName(name string) (Config, error) {
	cfg, ok := Variants()[strings.TrimSpace(name)]
	if !ok {
		return Config{}, fmt.Errorf("scrubline: unknown variant %q", name)
	}
	return cfg, nil
}

// Validate checks the parts of a Config the engine relies on.
func (c Config) Validate() error {
	if c.CarWidth <= 0 {
		return fmt.Errorf("scrubline: car width must be positive, got %v", c.CarWidth)
	}
	if c.TrailLead < 0 || c.TrailLead > 1 {
		return fmt.Errorf("scrubline: trail lead must be in [0, 1], got %v", c.TrailLead)
	}
	if c.RegionScreens <= 0 {
		return fmt.Errorf("scrubline: region screens must be positive, got %v", c.RegionScreens)
	}
	if c.Reveal == RevealTween && c.RevealDuration <= 0 {
		return fmt.Errorf("scrubline: tween reveal needs a positive duration")
	}
	if err := ValidatePlacements(c.Placements); err != nil {
		return err
	}
	return nil
}

// ValidatePlacements checks that the table has four cards on pairwise distinct
// corners, split two and two across exactly two columns and two rows.
func ValidatePlacements(ps []CardPlacement) error {
	if len(ps) != 4 {
		return fmt.Errorf("%w: want 4 cards, got %d", ErrPlacementTable, len(ps))
	}
	lefts := make(map[float64]int, 2)
	tops := make(map[float64]int, 2)
	seen := make(map[Corner]string, 4)
	ids := make(map[string]bool, 4)
	for _, p := range ps {
		if p.ID == "" {
			return fmt.Errorf("%w: card without id", ErrPlacementTable)
		}
		if ids[p.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrPlacementTable, p.ID)
		}
		ids[p.ID] = true
		if other, dup := seen[p.Corner]; dup {
			return fmt.Errorf("%w: %q and %q share corner %+v", ErrPlacementTable, other, p.ID, p.Corner)
		}
		seen[p.Corner] = p.ID
		lefts[p.Corner.Left]++
		tops[p.Corner.Top]++
	}
	if len(lefts) != 2 || len(tops) != 2 {
		return fmt.Errorf("%w: cards must use two columns and two rows", ErrPlacementTable)
	}
	for _, n := range lefts {
		if n != 2 {
			return fmt.Errorf("%w: columns must hold two cards each", ErrPlacementTable)
		}
	}
	for _, n := range tops {
		if n != 2 {
			return fmt.Errorf("%w: rows must hold two cards each", ErrPlacementTable)
		}
	}
	return nil
}
