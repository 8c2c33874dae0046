package scrubline

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurFilter applies a Kawase-style blur using downscale/upscale passes.
// No Kage shader is needed; bilinear filtering during DrawImage does the work.
type blurFilter struct {
	temps []*ebiten.Image
	op    ebiten.DrawImageOptions
}

// blurPasses returns the number of halving passes for a radius.
func blurPasses(radius float64) int {
	if radius <= 1 {
		return 0
	}
	return max(int(math.Ceil(math.Log2(radius))), 1)
}

// apply renders src into dst blurred by roughly radius pixels. dst must be
// the same size as src.
func (f *blurFilter) apply(src, dst *ebiten.Image, radius float64) {
	op := &f.op
	passes := blurPasses(radius)
	if passes == 0 {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(src, op)
		return
	}

	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	current := src
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		t := f.temps[i]
		if t == nil || t.Bounds().Dx() != w || t.Bounds().Dy() != h {
			if t != nil {
				t.Deallocate()
			}
			t = ebiten.NewImage(w, h)
			f.temps[i] = t
		} else {
			t.Clear()
		}
		f.scaleInto(current, t)
		current = t
	}

	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.scaleInto(current, f.temps[i])
		current = f.temps[i]
	}

	f.scaleInto(current, dst)
}

// scaleInto draws src stretched over dst with linear filtering.
func (f *blurFilter) scaleInto(src, dst *ebiten.Image) {
	op := &f.op
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sb, db := src.Bounds(), dst.Bounds()
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}
