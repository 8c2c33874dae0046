package scrubline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEasing is returned by EasingByName for names not in the registry.
var ErrUnknownEasing = errors.New("scrubline: unknown easing")

// Easing maps normalized progress to eased progress. The zero value is the
// identity curve (linear scrub).
type Easing struct {
	Name string
	fn   ease.TweenFunc
}

// Linear is the identity easing.
var Linear = Easing{Name: "none"}

// NewEasing wraps a gween easing function. Scrubbed phases assume fn is
// monotone non-decreasing over [0, 1]; elastic, back and bounce curves are
// not and will make the car reverse mid-scroll.
func NewEasing(name string, fn ease.TweenFunc) Easing {
	return Easing{Name: name, fn: fn}
}

// unit evaluates an ease-in curve over [0, 1], clamped to [0, 1] since the
// gween expo curves are offset by 0.001.
func unit(in ease.TweenFunc, p float32) float32 {
	v := in(p, 0, 1, 1)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// mirror builds the ease-out counterpart of an ease-in curve as
// 1 - in(1 - p). The expanded Out* polynomials in gween round backwards in
// float32; this form cannot.
func mirror(in ease.TweenFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return b + c*(1-unit(in, 1-t/d))
	}
}

// inOut joins an ease-in half and its mirrored ease-out half at p = 0.5.
func inOut(in ease.TweenFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		p := t / d
		if p < 0.5 {
			return b + c*(unit(in, 2*p)/2)
		}
		return b + c*(1-unit(in, 2-2*p)/2)
	}
}

// easings holds the named monotone curves available to configs.
var easings = map[string]ease.TweenFunc{
	"none":         nil,
	"linear":       nil,
	"power1.in":    ease.InQuad,
	"power1.out":   mirror(ease.InQuad),
	"power1.inOut": inOut(ease.InQuad),
	"power2.in":    ease.InCubic,
	"power2.out":   mirror(ease.InCubic),
	"power2.inOut": inOut(ease.InCubic),
	"power3.in":    ease.InQuart,
	"power3.out":   mirror(ease.InQuart),
	"power3.inOut": inOut(ease.InQuart),
	"power4.in":    ease.InQuint,
	"power4.out":   mirror(ease.InQuint),
	"power4.inOut": inOut(ease.InQuint),
	"sine.in":      ease.InSine,
	"sine.out":     mirror(ease.InSine),
	"sine.inOut":   inOut(ease.InSine),
	"expo.in":      ease.InExpo,
	"expo.out":     mirror(ease.InExpo),
	"expo.inOut":   inOut(ease.InExpo),
	"circ.in":      ease.InCirc,
	"circ.out":     mirror(ease.InCirc),
	"circ.inOut":   inOut(ease.InCirc),
}

// EasingByName looks up a named curve. Lookup is case-sensitive except for
// the "none"/"linear" aliases; an empty name yields Linear.
func EasingByName(name string) (Easing, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "none") || strings.EqualFold(name, "linear") {
		return Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return Linear, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return Easing{Name: name, fn: fn}, nil
}

// EasingNames returns the registered curve names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLinear reports whether e is the identity curve.
func (e Easing) IsLinear() bool {
	return e.fn == nil
}

// Func returns the gween function for fixed-duration tweens. The identity
// curve maps to ease.Linear.
func (e Easing) Func() ease.TweenFunc {
	if e.fn == nil {
		return ease.Linear
	}
	return e.fn
}

// At returns the eased value for progress p. p is clamped to [0, 1], the
// endpoints are returned exactly, and the result stays inside [0, 1] (the
// expo curves overshoot by 0.001 otherwise).
func (e Easing) At(p float64) float64 {
	p = clamp01(p)
	if e.fn == nil || p == 0 || p == 1 {
		return p
	}
	return clamp01(float64(e.fn(float32(p), 0, 1, 1)))
}

// Lerp interpolates from -> to at progress p along e. Lerp(a, b, 0, e) == a
// and Lerp(a, b, 1, e) == b exactly.
func Lerp(from, to, p float64, e Easing) float64 {
	t := e.At(p)
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return from + (to-from)*t
}
