package scrubline

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously over a fixed
// duration, independent of scroll. Call Update(dt) each frame; the group
// writes values into its fields directly.
//
// There is no global animation manager; the engine owns its groups and a new
// group for the same fields supersedes the old one.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	ends   [4]float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. Finished fields land exactly on their end values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			*g.fields[i] = g.ends[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone
}

// add registers one field if its value has to change.
func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	if *field == to {
		return
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.ends[g.count] = to
	g.count++
}

// TweenReveal creates a TweenGroup that moves the reveal fields of style
// (Y, Opacity, Scale, Blur) toward to over duration seconds. Fields that
// already match are skipped; a group with nothing to animate starts Done.
func TweenReveal(style *Style, to Style, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&style.Y, to.Y, duration, fn)
	g.add(&style.Opacity, to.Opacity, duration, fn)
	g.add(&style.Scale, to.Scale, duration, fn)
	g.add(&style.Blur, to.Blur, duration, fn)
	if g.count == 0 {
		g.Done = true
	}
	return g
}
