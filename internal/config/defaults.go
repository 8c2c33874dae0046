package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrubline"
)

const (
	defaultWindowTitle  = "scrubline"
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
	defaultLogLevel     = "info"
)

// Default returns the edge-stop variant as a File.
func Default() File {
	return FromConfig(scrubline.VariantEdgeStop())
}

// FromConfig converts a preset into its file form.
func FromConfig(cfg scrubline.Config) File {
	f := File{
		Variant: cfg.Name,
		Headline: Headline{
			Text:      cfg.Headline,
			LetterGap: cfg.LetterGap,
			FontSize:  cfg.FontSize,
		},
		Car: Car{
			Width:     cfg.CarWidth,
			Height:    cfg.CarHeight,
			Track:     trackName(cfg.Track),
			TrailLead: cfg.TrailLead,
			Easing:    cfg.CarEasing.Name,
		},
		Reveal: Reveal{
			Mode:     cfg.Reveal.String(),
			Duration: float64(cfg.RevealDuration),
			Easing:   cfg.RevealEasing.Name,
		},
		Cards: Cards{
			Mode:   cardModeName(cfg.Cards),
			Easing: cfg.CardEasing.Name,
			Start:  cfg.CardTrigger.Start,
		},
		Hero: Hero{
			Enabled:      cfg.Hero.Enabled,
			Rise:         cfg.Hero.Rise,
			MaxTilt:      cfg.Hero.MaxTilt,
			Parallax:     cfg.Hero.Parallax,
			PointerClamp: cfg.Hero.PointerClamp,
			Easing:       cfg.Hero.Easing.Name,
		},
		Region: Region{Screens: cfg.RegionScreens},
		Window: Window{
			Title:  defaultWindowTitle,
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		Logging: Logging{Level: defaultLogLevel},
	}
	for _, p := range cfg.Placements {
		f.Cards.Placements = append(f.Cards.Placements, Placement{
			ID:     p.ID,
			Value:  p.Value,
			Label:  p.Label,
			Color:  hexColor(p.Color),
			Top:    p.Corner.Top,
			Left:   p.Corner.Left,
			FadeAt: p.Window.Start,
		})
	}
	return f
}

// ToConfig resolves names and colors into a scrubline.Config. The variant
// supplies everything the file format does not carry, such as the hidden
// letter style and the explosion start state.
func (f File) ToConfig() (scrubline.Config, error) {
	cfg, err := scrubline.VariantByName(f.Variant)
	if err != nil {
		return scrubline.Config{}, err
	}

	cfg.Headline = f.Headline.Text
	cfg.LetterGap = f.Headline.LetterGap
	cfg.FontSize = f.Headline.FontSize

	cfg.CarWidth = f.Car.Width
	cfg.CarHeight = f.Car.Height
	if cfg.Track, err = parseTrack(f.Car.Track); err != nil {
		return scrubline.Config{}, err
	}
	cfg.TrailLead = f.Car.TrailLead
	if cfg.CarEasing, err = easing("car.easing", f.Car.Easing); err != nil {
		return scrubline.Config{}, err
	}

	if cfg.Reveal, err = parseReveal(f.Reveal.Mode); err != nil {
		return scrubline.Config{}, err
	}
	cfg.RevealDuration = float32(f.Reveal.Duration)
	if cfg.RevealEasing, err = easing("reveal.easing", f.Reveal.Easing); err != nil {
		return scrubline.Config{}, err
	}

	if cfg.Cards, err = parseCardMode(f.Cards.Mode); err != nil {
		return scrubline.Config{}, err
	}
	if cfg.CardEasing, err = easing("cards.easing", f.Cards.Easing); err != nil {
		return scrubline.Config{}, err
	}
	cfg.CardTrigger = scrubline.ScrollTrigger{Start: f.Cards.Start}
	if cfg.Cards == scrubline.CardsExplode {
		cfg.CardStart = scrubline.VariantExit().CardStart
	}

	cfg.Placements = cfg.Placements[:0:0]
	for i, p := range f.Cards.Placements {
		c, err := parseColor(p.Color)
		if err != nil {
			return scrubline.Config{}, fmt.Errorf("cards.placement[%d].color: %w", i, err)
		}
		cfg.Placements = append(cfg.Placements, scrubline.CardPlacement{
			ID:      p.ID,
			Value:   p.Value,
			Label:   p.Label,
			Color:   c,
			Corner:  scrubline.Corner{Top: p.Top, Left: p.Left},
			Scale:   1,
			Opacity: 1,
			Window:  scrubline.ScrollTrigger{Start: p.FadeAt, End: p.FadeAt + 200},
		})
	}

	cfg.Hero = scrubline.HeroConfig{
		Enabled:      f.Hero.Enabled,
		Rise:         f.Hero.Rise,
		MaxTilt:      f.Hero.MaxTilt,
		Parallax:     f.Hero.Parallax,
		PointerClamp: f.Hero.PointerClamp,
	}
	if cfg.Hero.Easing, err = easing("hero.easing", f.Hero.Easing); err != nil {
		return scrubline.Config{}, err
	}
	cfg.RegionScreens = f.Region.Screens
	return cfg, nil
}

func easing(field, name string) (scrubline.Easing, error) {
	e, err := scrubline.EasingByName(name)
	if err != nil {
		return scrubline.Easing{}, fmt.Errorf("%s: %w", field, err)
	}
	return e, nil
}

func trackName(m scrubline.TrackMode) string {
	if m == scrubline.TrackExit {
		return "exit"
	}
	return "edge-stop"
}

func parseTrack(s string) (scrubline.TrackMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edge-stop":
		return scrubline.TrackEdgeStop, nil
	case "exit":
		return scrubline.TrackExit, nil
	}
	return 0, fmt.Errorf("car.track must be \"edge-stop\" or \"exit\", got %q", s)
}

func parseReveal(s string) (scrubline.RevealMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "instant":
		return scrubline.RevealInstant, nil
	case "tween":
		return scrubline.RevealTween, nil
	}
	return 0, fmt.Errorf("reveal.mode must be \"instant\" or \"tween\", got %q", s)
}

func cardModeName(m scrubline.CardMode) string {
	if m == scrubline.CardsExplode {
		return "explode"
	}
	return "fade"
}

func parseCardMode(s string) (scrubline.CardMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fade":
		return scrubline.CardsFade, nil
	case "explode":
		return scrubline.CardsExplode, nil
	}
	return 0, fmt.Errorf("cards.mode must be \"fade\" or \"explode\", got %q", s)
}

// parseColor accepts "#rrggbb" and the color names tcell knows.
func parseColor(s string) (scrubline.Color, error) {
	c := tcell.GetColor(strings.TrimSpace(s))
	if c == tcell.ColorDefault || !c.Valid() {
		return scrubline.Color{}, fmt.Errorf("unknown color %q", s)
	}
	r, g, b := c.RGB()
	return scrubline.RGB(uint8(r), uint8(g), uint8(b)), nil
}

func hexColor(c scrubline.Color) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5))
}
