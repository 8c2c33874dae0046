package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/scrubline"
)

//go:embed sample_config.toml
var sampleConfig string

// Headline configures the revealed text.
type Headline struct {
	Text      string  `toml:"text"`
	LetterGap float64 `toml:"letter_gap"`
	FontSize  float64 `toml:"font_size"`
	FontPath  string  `toml:"font_path"`
}

// Car configures the car and the trail behind it.
type Car struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Track     string  `toml:"track"` // "edge-stop" or "exit"
	TrailLead float64 `toml:"trail_lead"`
	Easing    string  `toml:"easing"`
}

// Reveal configures how letters appear.
type Reveal struct {
	Mode     string  `toml:"mode"` // "instant" or "tween"
	Duration float64 `toml:"duration"`
	Easing   string  `toml:"easing"`
}

// Placement is one statistic card.
type Placement struct {
	ID     string  `toml:"id"`
	Value  string  `toml:"value"`
	Label  string  `toml:"label"`
	Color  string  `toml:"color"` // "#rrggbb" or a color name
	Top    float64 `toml:"top"`
	Left   float64 `toml:"left"`
	FadeAt float64 `toml:"fade_at"`
}

// Cards configures the statistic cards.
type Cards struct {
	Mode       string      `toml:"mode"` // "fade" or "explode"
	Easing     string      `toml:"easing"`
	Start      float64     `toml:"start"`
	Placements []Placement `toml:"placement"`
}

// Hero configures the pointer-tilted block above the track.
type Hero struct {
	Enabled      bool    `toml:"enabled"`
	Rise         float64 `toml:"rise"`
	MaxTilt      float64 `toml:"max_tilt"`
	Parallax     float64 `toml:"parallax"`
	PointerClamp float64 `toml:"pointer_clamp"`
	Easing       string  `toml:"easing"`
}

// Region configures the pinned scroll region.
type Region struct {
	Screens float64 `toml:"screens"`
}

// Window configures the preview window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Logging configures diagnostics.
type Logging struct {
	Level string `toml:"level"`
}

// File is the on-disk configuration.
//
// Sections:
//   - Headline: text, letter spacing and font
//   - Car: size, track mode, trail lead and easing
//   - Reveal: instant or tweened letter reveal
//   - Cards: fade or explode, and the four placements
//   - Hero: pointer tilt and rise-out
//   - Region: pinned scroll length
//   - Window: preview window size
//   - Logging: log level
type File struct {
	Variant  string   `toml:"variant"`
	Headline Headline `toml:"headline"`
	Car      Car      `toml:"car"`
	Reveal   Reveal   `toml:"reveal"`
	Cards    Cards    `toml:"cards"`
	Hero     Hero     `toml:"hero"`
	Region   Region   `toml:"region"`
	Window   Window   `toml:"window"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/scrubline/config.toml")
}

// Load locates, parses and validates a configuration file. With an empty
// path it tries ~/.config/scrubline/config.toml and then ./scrubline.toml. A
// missing file is not an error: the default variant is returned and exists
// is false.
func Load(path string) (*File, string, bool, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}
	if !exists {
		f := Default()
		return &f, resolved, false, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", false, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, "", false, err
	}
	return f, resolved, true, nil
}

// Parse decodes TOML data on top of the variant the data names.
func Parse(data []byte) (*File, error) {
	var head struct {
		Variant string `toml:"variant"`
		Cards   struct {
			Placements []Placement `toml:"placement"`
		} `toml:"cards"`
	}
	if err := toml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	base := Default()
	if v := strings.TrimSpace(head.Variant); v != "" {
		cfg, err := scrubline.VariantByName(v)
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		base = FromConfig(cfg)
	}
	// A placement table in the file replaces the variant's table.
	if len(head.Cards.Placements) > 0 {
		base.Cards.Placements = nil
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&base); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("parse config: %s", strict.String())
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return &base, nil
}

// Encode renders f as TOML.
func (f File) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("scrubline.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// SampleConfig returns the annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
