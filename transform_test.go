package scrubline

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestLocalTransformPivotCentered(t *testing.T) {
	// A letter laid out the way the scene does it: pivot at its center,
	// position at offset+w/2.
	n := NewContainer("letter")
	n.SetPivot(20, 30)
	n.SetPosition(60, 30)
	x, y := n.local().apply(0, 0)
	assertNear(t, "left", x, 40)
	assertNear(t, "top", y, 0)

	// Scaling about the pivot keeps the center in place.
	n.SetScale(0.8, 0.8)
	cx, cy := n.local().apply(20, 30)
	assertNear(t, "center x", cx, 60)
	assertNear(t, "center y", cy, 30)
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("card")
	n.Rotation = math.Pi / 2
	x, y := n.local().apply(1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestLocalTransformSkew(t *testing.T) {
	n := NewContainer("hero")
	n.SkewX = math.Pi / 4
	x, _ := n.local().apply(0, 10)
	assertNear(t, "skewed x", x, 10)
}

func TestAffineThenOrder(t *testing.T) {
	scale := affine{a: 2, d: 2}
	shift := identity.translated(10, 0)

	x, _ := scale.then(shift).apply(1, 0)
	assertNear(t, "scale then shift", x, 12)
	x, _ = shift.then(scale).apply(1, 0)
	assertNear(t, "shift then scale", x, 22)
}

func TestWorldTransformParentChild(t *testing.T) {
	stage := NewContainer("stage")
	track := NewContainer("track")
	car := NewContainer("car")
	stage.AddChild(track)
	track.AddChild(car)
	stage.SetPosition(0, -200)
	track.SetPosition(0, 300)
	car.SetPosition(525, 0)

	updateWorldTransform(stage, identity, 1, false)
	x, y := car.WorldPosition()
	assertNear(t, "car x", x, 525)
	assertNear(t, "car y", y, 100)

	wx, wy := car.LocalToWorld(5, 10)
	assertNear(t, "world x", wx, 530)
	assertNear(t, "world y", wy, 110)
}

func TestAlphaPropagation(t *testing.T) {
	parent := NewContainer("cards")
	child := NewContainer("card")
	parent.AddChild(child)
	parent.Alpha = 0.5
	child.Alpha = 0.5
	updateWorldTransform(parent, identity, 1, false)
	assertNear(t, "worldAlpha", child.worldAlpha, 0.25)
}

func TestDirtyFlagRecomputes(t *testing.T) {
	parent := NewContainer("stage")
	child := NewContainer("car")
	parent.AddChild(child)
	updateWorldTransform(parent, identity, 1, false)

	// Writing a field without MarkDirty is not picked up.
	child.X = 50
	updateWorldTransform(parent, identity, 1, false)
	if x, _ := child.WorldPosition(); x != 0 {
		t.Fatalf("clean node recomputed: x = %v", x)
	}

	child.MarkDirty()
	updateWorldTransform(parent, identity, 1, false)
	if x, _ := child.WorldPosition(); x != 50 {
		t.Errorf("dirty node not recomputed: x = %v", x)
	}

	// Moving the parent moves the clean child too.
	parent.SetPosition(0, 10)
	updateWorldTransform(parent, identity, 1, false)
	if _, y := child.WorldPosition(); y != 10 {
		t.Errorf("child y = %v, want 10", y)
	}
}
