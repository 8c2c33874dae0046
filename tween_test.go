package scrubline

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenRevealReachesTarget(t *testing.T) {
	style := Style{Y: 24, Opacity: 0, Scale: 0.8, Blur: 8}
	to := Style{Opacity: 1, Scale: 1}

	g := TweenReveal(&style, to, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(style.Opacity-0.5) > 0.01 {
		t.Errorf("Opacity = %f, want ~0.5", style.Opacity)
	}
	if math.Abs(style.Y-12) > 0.01 {
		t.Errorf("Y = %f, want ~12", style.Y)
	}

	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if style.Y != 0 || style.Opacity != 1 || style.Scale != 1 || style.Blur != 0 {
		t.Errorf("style = %+v, want exact target", style)
	}
}

func TestTweenRevealSkipsEqualFields(t *testing.T) {
	style := Style{Opacity: 0, Scale: 1}
	g := TweenReveal(&style, Style{Opacity: 1, Scale: 1}, 0.5, ease.Linear)
	if g.count != 1 {
		t.Errorf("count = %d, want 1", g.count)
	}
}

func TestTweenRevealNothingToDo(t *testing.T) {
	style := Style{Opacity: 1, Scale: 1}
	g := TweenReveal(&style, style, 0.5, ease.Linear)
	if !g.Done {
		t.Error("empty group should start Done")
	}
	g.Update(0.1)
	if style.Opacity != 1 {
		t.Error("done group wrote to its fields")
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	style := Style{}
	g := TweenReveal(&style, Style{Opacity: 1}, 0.5, ease.OutCubic)

	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}
	if style.Opacity != 1 {
		t.Errorf("Opacity = %v, want exactly 1", style.Opacity)
	}
}
