package scrubline

import (
	"errors"
	"math"
	"sort"
	"testing"
)

func TestEasingByNameAliases(t *testing.T) {
	for _, name := range []string{"", "none", "linear", "Linear", " none "} {
		e, err := EasingByName(name)
		if err != nil {
			t.Fatalf("EasingByName(%q): %v", name, err)
		}
		if !e.IsLinear() {
			t.Errorf("EasingByName(%q) is not linear", name)
		}
	}
}

func TestEasingByNameUnknown(t *testing.T) {
	_, err := EasingByName("elastic.out")
	if !errors.Is(err, ErrUnknownEasing) {
		t.Fatalf("err = %v, want ErrUnknownEasing", err)
	}
}

func TestEasingEndpointsExact(t *testing.T) {
	for _, name := range EasingNames() {
		e, err := EasingByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := e.At(0); got != 0 {
			t.Errorf("%s.At(0) = %v", name, got)
		}
		if got := e.At(1); got != 1 {
			t.Errorf("%s.At(1) = %v", name, got)
		}
		if got := e.At(-3); got != 0 {
			t.Errorf("%s.At(-3) = %v", name, got)
		}
		if got := e.At(7); got != 1 {
			t.Errorf("%s.At(7) = %v", name, got)
		}
	}
}

func TestEasingMonotone(t *testing.T) {
	const samples = 200000
	for _, name := range EasingNames() {
		e, _ := EasingByName(name)
		prevAt, prevX := 0.0, 0.0
		for i := 1; i <= samples; i++ {
			p := float64(i) / samples
			v := e.At(p)
			if v < prevAt || v < 0 || v > 1 {
				t.Fatalf("%s.At(%v) = %v after %v", name, p, v, prevAt)
			}
			x := Lerp(0, 1350, p, e)
			if x < prevX {
				t.Fatalf("%s: Lerp(0, 1350, %v) = %v < %v", name, p, x, prevX)
			}
			prevAt, prevX = v, x
		}
	}
}

// Walk consecutive float32 inputs where expanded out-polynomials used to
// round backwards.
func TestEasingMonotoneAdjacentFloats(t *testing.T) {
	windows := [][2]float32{{0.01, 0.01005}, {0.4995, 0.5005}, {0.947, 0.949}, {0.999, 1}}
	for _, name := range EasingNames() {
		e, _ := EasingByName(name)
		for _, w := range windows {
			prev := e.At(float64(w[0]))
			for q := math.Nextafter32(w[0], 2); q <= w[1]; q = math.Nextafter32(q, 2) {
				v := e.At(float64(q))
				if v < prev {
					t.Fatalf("%s decreases at %v: %v < %v", name, q, v, prev)
				}
				prev = v
			}
		}
	}
}

func TestEasingNamesSorted(t *testing.T) {
	names := EasingNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	if len(names) != len(easings) {
		t.Errorf("got %d names, want %d", len(names), len(easings))
	}
}

func TestLerpEndpoints(t *testing.T) {
	e, _ := EasingByName("power2.inOut")
	if got := Lerp(3, 1050, 0, e); got != 3 {
		t.Errorf("Lerp at 0 = %v, want 3", got)
	}
	if got := Lerp(3, 1050, 1, e); got != 1050 {
		t.Errorf("Lerp at 1 = %v, want 1050", got)
	}
	if got := Lerp(0, 1050, 0.5, Linear); got != 525 {
		t.Errorf("linear Lerp at 0.5 = %v, want 525", got)
	}
}

func TestEasingFuncLinearFallback(t *testing.T) {
	fn := Linear.Func()
	if fn == nil {
		t.Fatal("Func returned nil for Linear")
	}
	if got := fn(0.5, 0, 1, 1); got != 0.5 {
		t.Errorf("linear func(0.5) = %v", got)
	}
}
