package scrubline

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// renderer draws a node tree straight to an ebiten image. It owns the
// scratch images used for blurred subtrees and is reused across frames.
type renderer struct {
	white     *ebiten.Image
	op        ebiten.DrawImageOptions
	textOp    text.DrawOptions
	blur      blurFilter
	layer     *ebiten.Image // subtree rendered before blurring
	blurred   *ebiten.Image
	drawCalls int
}

func (r *renderer) whitePixel() *ebiten.Image {
	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(ColorWhite.toRGBA())
	}
	return r.white
}

func geoM(m affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.a)
	g.SetElement(1, 0, m.b)
	g.SetElement(0, 1, m.c)
	g.SetElement(1, 1, m.d)
	g.SetElement(0, 2, m.tx)
	g.SetElement(1, 2, m.ty)
	return g
}

// scaleColor sets cs to tint by c at the given alpha.
func scaleColor(cs *ebiten.ColorScale, c Color, alpha float64) {
	a := c.A * alpha
	cs.Reset()
	cs.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
}

// draw renders n and its visible descendants into dst. World transforms must
// be current.
func (r *renderer) draw(dst *ebiten.Image, n *Node) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	if n.Blur > 1 {
		r.drawBlurred(dst, n)
		return
	}
	r.drawNode(dst, n)
}

// drawNode draws n itself, then its children in ZIndex order.
func (r *renderer) drawNode(dst *ebiten.Image, n *Node) {
	switch n.Type {
	case NodeTypeSprite:
		r.drawSprite(dst, n)
	case NodeTypeText:
		r.drawText(dst, n)
	}

	if len(n.children) == 0 {
		return
	}
	target := dst
	if n.Clip {
		if clip, ok := clipRect(n, dst.Bounds()); ok {
			target = dst.SubImage(clip).(*ebiten.Image)
		} else {
			return
		}
	}
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	for _, child := range n.sortedChildren {
		r.draw(target, child)
	}
}

func (r *renderer) drawSprite(dst *ebiten.Image, n *Node) {
	w, h := nodeDimensions(n)
	if w <= 0 || h <= 0 {
		return
	}
	op := &r.op
	op.GeoM.Reset()
	op.GeoM.Scale(w, h)
	op.GeoM.Concat(geoM(n.world))
	scaleColor(&op.ColorScale, n.Color, n.worldAlpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(r.whitePixel(), op)
	r.drawCalls++
}

func (r *renderer) drawText(dst *ebiten.Image, n *Node) {
	tb := n.TextBlock
	if tb == nil || tb.Content == "" {
		return
	}
	f, ok := tb.Font.(*TTFFont)
	if !ok {
		return
	}
	op := &r.textOp
	op.GeoM = geoM(n.world)
	op.LineSpacing = f.LineHeight()
	c := tb.Color
	c.R *= n.Color.R
	c.G *= n.Color.G
	c.B *= n.Color.B
	scaleColor(&op.ColorScale, c, n.worldAlpha*n.Color.A)
	text.Draw(dst, tb.Content, f.Face(), op)
	r.drawCalls++
}

// drawBlurred renders the subtree of n to an offscreen layer, blurs it, and
// composites the result onto dst.
func (r *renderer) drawBlurred(dst *ebiten.Image, n *Node) {
	b := dst.Bounds()
	r.layer = ensureImage(r.layer, b.Dx(), b.Dy())
	r.blurred = ensureImage(r.blurred, b.Dx(), b.Dy())
	r.layer.Clear()
	r.blurred.Clear()

	// dst may be a sub-image; shift so the layer starts at its origin.
	origin := b.Min
	ox, oy := float64(origin.X), float64(origin.Y)
	shiftSubtree(n, -ox, -oy)
	r.drawNode(r.layer, n)
	shiftSubtree(n, ox, oy)

	r.blur.apply(r.layer, r.blurred, n.Blur)

	op := &r.op
	op.GeoM.Reset()
	op.GeoM.Translate(ox, oy)
	op.ColorScale.Reset()
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(r.blurred, op)
	r.drawCalls++
}

// shiftSubtree translates the world transforms of n and its descendants.
func shiftSubtree(n *Node, dx, dy float64) {
	n.world = n.world.translated(dx, dy)
	for _, c := range n.children {
		shiftSubtree(c, dx, dy)
	}
}

// ensureImage returns img if it already has size w x h, or a new image.
func ensureImage(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(max(w, 1), max(h, 1))
}

// clipRect returns the screen rectangle covered by n's Width x Height, which
// is assumed axis-aligned, intersected with bounds.
func clipRect(n *Node, bounds image.Rectangle) (image.Rectangle, bool) {
	x0, y0 := n.LocalToWorld(0, 0)
	x1, y1 := n.LocalToWorld(n.Width, n.Height)
	r := image.Rect(
		int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))),
	).Intersect(bounds)
	return r, !r.Empty()
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node.
// Uses insertion sort: zero allocations, stable, and O(n) when already sorted.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}
