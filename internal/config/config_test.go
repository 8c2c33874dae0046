package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/scrubline"
	"github.com/phanxgames/scrubline/internal/config"
)

func TestSampleConfigParses(t *testing.T) {
	f, err := config.Parse([]byte(config.SampleConfig()))
	if err != nil {
		t.Fatalf("sample config: %v", err)
	}
	cfg, err := f.ToConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Track != scrubline.TrackExit || cfg.Cards != scrubline.CardsExplode {
		t.Errorf("modes = %v/%v", cfg.Track, cfg.Cards)
	}
	if len(cfg.Placements) != 4 {
		t.Fatalf("placements = %d, want 4", len(cfg.Placements))
	}
	if got := cfg.Placements[0].Color; got != scrubline.RGB(0xde, 0xf5, 0x4f) {
		t.Errorf("first card color = %+v", got)
	}
	if cfg.RevealEasing.Name != "power2.out" {
		t.Errorf("reveal easing = %q", cfg.RevealEasing.Name)
	}
}

func TestEmptyFileIsDefaultVariant(t *testing.T) {
	f, err := config.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.ToConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := scrubline.VariantEdgeStop()
	if cfg.Name != want.Name || cfg.Headline != want.Headline || cfg.TrailLead != want.TrailLead {
		t.Errorf("cfg = %s/%q/%v", cfg.Name, cfg.Headline, cfg.TrailLead)
	}
	if len(cfg.Placements) != 4 {
		t.Errorf("placements = %d", len(cfg.Placements))
	}
}

func TestOverridesKeepVariant(t *testing.T) {
	f, err := config.Parse([]byte(`
variant = "exit-eased"

[headline]
text = "HELLO"

[car]
trail_lead = 0.25
`))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.ToConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Headline != "HELLO" || cfg.TrailLead != 0.25 {
		t.Errorf("overrides lost: %q %v", cfg.Headline, cfg.TrailLead)
	}
	if cfg.CarEasing.Name != "power1.inOut" {
		t.Errorf("variant easing lost: %q", cfg.CarEasing.Name)
	}
	if cfg.Reveal != scrubline.RevealTween {
		t.Error("variant reveal mode lost")
	}
}

func TestPlacementTableReplaced(t *testing.T) {
	_, err := config.Parse([]byte(`
[[cards.placement]]
id = "only"
top = 20
left = 15
color = "#ffffff"
`))
	if !errors.Is(err, scrubline.ErrPlacementTable) {
		t.Fatalf("err = %v, want ErrPlacementTable", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"bad toml":       `variant = `,
		"unknown field":  "[car]\nspeed = 3\n",
		"unknown easing": "[car]\neasing = \"bounce.out\"\n",
		"unknown track":  "[car]\ntrack = \"loop\"\n",
		"bad variant":    `variant = "nope"`,
		"bad color":      "[[cards.placement]]\nid = \"a\"\ncolor = \"notacolor\"\n",
		"bad level":      "[logging]\nlevel = \"loud\"\n",
		"bad window":     "[window]\nwidth = 0\n",
		"empty headline": "[headline]\ntext = \"\"\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Parse([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestUnknownEasingWrapped(t *testing.T) {
	_, err := config.Parse([]byte("[reveal]\neasing = \"elastic.in\"\n"))
	if !errors.Is(err, scrubline.ErrUnknownEasing) {
		t.Errorf("err = %v, want ErrUnknownEasing", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.toml")
	f, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("missing file reported as existing")
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if f.Variant != "edge-stop" {
		t.Errorf("variant = %q", f.Variant)
	}
}

func TestCreateSampleAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scrubline.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatal(err)
	}
	f, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || f.Variant != "exit" {
		t.Errorf("exists=%v variant=%q", exists, f.Variant)
	}
	lvl, err := f.LogLevel()
	if err != nil || lvl != slog.LevelInfo {
		t.Errorf("level = %v, %v", lvl, err)
	}
}

func TestLoadDefaultPathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	_, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("expected no config in temp HOME")
	}
	if want := filepath.Join(home, ".config", "scrubline", "config.toml"); resolved != want {
		t.Errorf("resolved = %q, want %q", resolved, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	f := config.FromConfig(scrubline.VariantExit())
	data, err := f.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `variant = 'exit'`) && !strings.Contains(string(data), `variant = "exit"`) {
		t.Errorf("encoded config missing variant:\n%s", data)
	}
	back, err := config.Parse(data)
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, data)
	}
	if back.Car.TrailLead != f.Car.TrailLead || len(back.Cards.Placements) != 4 {
		t.Errorf("round trip lost data: %+v", back.Car)
	}
}

func TestLoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Error("expected error reading a directory")
	}
}
