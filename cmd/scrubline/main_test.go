package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/scrubline"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "missing.toml")
	}
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestConfigSample(t *testing.T) {
	out, _, err := runCLI(t, []string{"config", "sample"}, "")
	if err != nil {
		t.Fatalf("config sample: %v", err)
	}
	requireContains(t, out, `variant = "exit"`)
	requireContains(t, out, "[[cards.placement]]")
}

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Variant: exit")
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateMissingFile(t *testing.T) {
	out, _, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "Variant: edge-stop")
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[car]\neasing = \"wobble\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLI(t, []string{"trace", "--mono"}, path); err == nil {
		t.Fatal("expected error for unknown easing")
	}
}

func TestTraceTable(t *testing.T) {
	out, _, err := runCLI(t, []string{"trace", "--variant", "edge-stop", "--mono", "--steps", "2"}, "")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	requireContains(t, out, "edge-stop  1200x800  end x 1050.0")
	requireContains(t, out, "525.0")
	requireContains(t, out, "1050.0")
	requireContains(t, out, "15/15")
	requireContains(t, out, "applied")
}

func TestTraceRejectsBadFlags(t *testing.T) {
	if _, _, err := runCLI(t, []string{"trace", "--steps", "0"}, ""); err == nil {
		t.Error("expected error for --steps 0")
	}
	if _, _, err := runCLI(t, []string{"trace", "--width", "0"}, ""); err == nil {
		t.Error("expected error for zero width")
	}
	if _, _, err := runCLI(t, []string{"trace", "--variant", "nope"}, ""); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestTraceFramesMonotone(t *testing.T) {
	cfg := scrubline.VariantExit()
	font := scrubline.MonoFont{Advance: 50, Height: 90}
	g := traceGeometry(cfg, font, 1200, 800)
	rows := traceFrames(cfg, g, 8)
	if len(rows) != 9 {
		t.Fatalf("rows = %d, want 9", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].carX < rows[i-1].carX || rows[i].trail < rows[i-1].trail {
			t.Errorf("row %d: car/trail decreased", i)
		}
		if rows[i].visible < rows[i-1].visible {
			t.Errorf("row %d: visible letters decreased while scrolling forward", i)
		}
	}
	last := rows[len(rows)-1]
	if math.Abs(last.carX-g.EndX(cfg.Track)) > 1e-9 {
		t.Errorf("final carX = %v, want %v", last.carX, g.EndX(cfg.Track))
	}
	if last.visible != last.letters {
		t.Errorf("visible = %d of %d at progress 1", last.visible, last.letters)
	}
	if math.Abs(last.cards-1) > 1e-9 {
		t.Errorf("cards = %v, want 1 once the explosion completes", last.cards)
	}
}

func TestTableStylePlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	if isTerminal(&buf) {
		t.Error("buffer reported as terminal")
	}
	out := renderTable([]string{"A", "B"}, [][]string{{"1"}}, []columnAlignment{alignLeft, alignRight}, tableStyle(&buf))
	requireContains(t, out, "| A")
}
