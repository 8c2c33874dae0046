package scrubline

import "testing"

func TestScrollProgress(t *testing.T) {
	tests := []struct {
		name           string
		top, height, y float64
		want           float64
	}{
		{"before", 100, 1000, 0, 0},
		{"at top", 100, 1000, 100, 0},
		{"middle", 100, 1000, 600, 0.5},
		{"end", 100, 1000, 1100, 1},
		{"past end", 100, 1000, 5000, 1},
		{"zero height before", 100, 0, 99, 0},
		{"zero height at", 100, 0, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollProgress(tt.top, tt.height, tt.y); got != tt.want {
				t.Errorf("ScrollProgress = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollProgressMonotone(t *testing.T) {
	prev := -1.0
	for y := -200.0; y <= 1400; y += 7 {
		p := ScrollProgress(0, 1000, y)
		if p < prev {
			t.Fatalf("progress decreased at y=%v", y)
		}
		prev = p
	}
}

func TestPinnedRegionScreenY(t *testing.T) {
	r := PinnedRegion{Top: 800, Height: 1600}
	tests := []struct {
		scroll, want float64
	}{
		{0, 800},
		{400, 400},
		{800, 0},
		{1600, 0},
		{2400, 0},
		{2600, -200},
	}
	for _, tt := range tests {
		if got := r.ScreenY(tt.scroll); got != tt.want {
			t.Errorf("ScreenY(%v) = %v, want %v", tt.scroll, got, tt.want)
		}
	}
}

func TestScrollTriggerBounds(t *testing.T) {
	r := PinnedRegion{Top: 800, Height: 1600}

	start, length := ScrollTrigger{}.Bounds(r)
	if start != 800 || length != 1600 {
		t.Errorf("default bounds = (%v, %v), want (800, 1600)", start, length)
	}

	start, length = ScrollTrigger{Start: 400, End: 600}.Bounds(r)
	if start != 1200 || length != 200 {
		t.Errorf("window bounds = (%v, %v), want (1200, 200)", start, length)
	}

	tr := ScrollTrigger{Start: 400, End: 600}
	if got := tr.Progress(r, 1300); got != 0.5 {
		t.Errorf("Progress mid-window = %v, want 0.5", got)
	}
}

func TestPointerSourceUnclamped(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 200, Height: 100}
	var src PointerSource

	if got := src.Sample(rect, 100, 50); got != (Vec2{}) {
		t.Errorf("center = %+v, want zero", got)
	}
	if got := src.Sample(rect, 200, 0); got != (Vec2{X: 0.5, Y: -0.5}) {
		t.Errorf("corner = %+v", got)
	}
	// Outside the rect the offset keeps growing.
	if got := src.Sample(rect, 400, 50); got.X != 1.5 {
		t.Errorf("outside X = %v, want 1.5", got.X)
	}
}

func TestPointerSourceClamped(t *testing.T) {
	rect := Rect{Width: 200, Height: 100}
	src := PointerSource{Clamp: 0.5}
	got := src.Sample(rect, 400, -100)
	if got.X != 0.5 || got.Y != -0.5 {
		t.Errorf("clamped = %+v, want (0.5, -0.5)", got)
	}
}

func TestPointerSourceZeroRect(t *testing.T) {
	var src PointerSource
	if got := src.Sample(Rect{Width: 0, Height: 100}, 10, 10); got != (Vec2{}) {
		t.Errorf("zero-width rect = %+v, want zero", got)
	}
}
