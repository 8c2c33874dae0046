package scrubline

import "math"

// affine is a 2D affine matrix mapping (x, y) to
// (a*x + c*y + tx, b*x + d*y + ty).
type affine struct {
	a, b, c, d float64
	tx, ty     float64
}

var identity = affine{a: 1, d: 1}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// then returns the transform that applies m first and n second.
func (m affine) then(n affine) affine {
	return affine{
		a:  n.a*m.a + n.c*m.b,
		b:  n.b*m.a + n.d*m.b,
		c:  n.a*m.c + n.c*m.d,
		d:  n.b*m.c + n.d*m.d,
		tx: n.a*m.tx + n.c*m.ty + n.tx,
		ty: n.b*m.tx + n.d*m.ty + n.ty,
	}
}

// apply maps a point through m.
func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.tx, m.b*x + m.d*y + m.ty
}

// translated returns m followed by a translation.
func (m affine) translated(dx, dy float64) affine {
	m.tx += dx
	m.ty += dy
	return m
}

// local builds a node's transform relative to its parent: the pivot moves to
// the origin, then scale, skew and rotation apply about it, and the result is
// placed at (X, Y).
func (n *Node) local() affine {
	m := affine{a: n.ScaleX, d: n.ScaleY, tx: -n.PivotX * n.ScaleX, ty: -n.PivotY * n.ScaleY}
	if n.SkewX != 0 || n.SkewY != 0 {
		tx, ty := math.Tan(n.SkewX), math.Tan(n.SkewY)
		m = m.then(affine{a: 1, b: ty, c: tx, d: 1})
	}
	if n.Rotation != 0 {
		sin, cos := math.Sincos(n.Rotation)
		m = m.then(affine{a: cos, b: sin, c: -sin, d: cos})
	}
	return m.translated(n.X, n.Y)
}

// updateWorldTransform refreshes world matrices and alpha below n. Clean
// subtrees under a clean parent keep their cached values.
func updateWorldTransform(n *Node, parent affine, parentAlpha float64, parentMoved bool) {
	moved := n.transformDirty || parentMoved
	if moved {
		n.world = n.local().then(parent)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.world, n.worldAlpha, moved)
	}
}

// SetPosition moves the node within its parent.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.transformDirty = true
}

// SetScale sets both scale factors.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.transformDirty = true
}

// SetPivot sets the local point that scale and rotation are applied about.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX, n.PivotY = px, py
	n.transformDirty = true
}

// MarkDirty flags the node for recomputation after fields were written
// directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldPosition returns where the node's local origin landed on the last
// update.
func (n *Node) WorldPosition() (x, y float64) {
	return n.world.tx, n.world.ty
}

// LocalToWorld maps a point in the node's space to screen space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.world.apply(lx, ly)
}
