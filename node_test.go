package scrubline

import "testing"

func TestNewRectDefaults(t *testing.T) {
	n := NewRect("track", 1200, 200, RGB(0x1e, 0x1e, 0x1e))
	if n.Type != NodeTypeSprite {
		t.Errorf("Type = %v, want sprite", n.Type)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 || n.Alpha != 1 || !n.Visible {
		t.Errorf("defaults not applied: %+v", n)
	}
	if w, h := nodeDimensions(n); w != 1200 || h != 200 {
		t.Errorf("dimensions = %v x %v", w, h)
	}
}

func TestDisposeDetachesFromParent(t *testing.T) {
	cards := NewContainer("cards")
	a, b := NewContainer("a"), NewContainer("b")
	cards.AddChild(a)
	cards.AddChild(b)
	a.Dispose()
	if cards.NumChildren() != 1 || cards.Children()[0] != b {
		t.Errorf("children after dispose = %d", cards.NumChildren())
	}
	if a.Parent != nil {
		t.Error("disposed node kept its parent")
	}
}

func TestTextDimensions(t *testing.T) {
	n := NewText("letter", "W", MonoFont{Advance: 40, Height: 60})
	if w, h := nodeDimensions(n); w != 40 || h != 60 {
		t.Errorf("dimensions = %v x %v, want 40 x 60", w, h)
	}
	empty := NewText("letter", "", MonoFont{Advance: 40, Height: 60})
	if w, _ := nodeDimensions(empty); w != 0 {
		t.Errorf("empty text width = %v", w)
	}
}

func TestAddChildReparents(t *testing.T) {
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	a.AddChild(c)
	b.AddChild(c)
	if c.Parent != b || a.NumChildren() != 0 || b.NumChildren() != 1 {
		t.Errorf("reparent failed: parent=%v a=%d b=%d", c.Parent.Name, a.NumChildren(), b.NumChildren())
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a, b := NewContainer("a"), NewContainer("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestRemoveChildren(t *testing.T) {
	p := NewContainer("cards")
	for i := 0; i < 4; i++ {
		p.AddChild(NewContainer("card"))
	}
	kids := append([]*Node(nil), p.Children()...)
	p.RemoveChildren()
	if p.NumChildren() != 0 {
		t.Fatalf("NumChildren = %d", p.NumChildren())
	}
	for _, k := range kids {
		if k.Parent != nil {
			t.Error("child still has a parent")
		}
	}
}

func TestDisposeRecursive(t *testing.T) {
	root := NewContainer("root")
	track := NewContainer("track")
	car := NewContainer("car")
	root.AddChild(track)
	track.AddChild(car)

	track.Dispose()
	if !track.IsDisposed() || !car.IsDisposed() {
		t.Error("subtree not disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed node still attached")
	}
	track.Dispose() // no-op
}

func TestDebugDisposedPanics(t *testing.T) {
	globalDebug = true
	defer func() { globalDebug = false }()

	n := NewContainer("gone")
	n.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding a disposed node in debug mode")
		}
	}()
	NewContainer("parent").AddChild(n)
}

func TestZIndexOrdering(t *testing.T) {
	p := NewContainer("track")
	car, trail, head := NewContainer("car"), NewContainer("trail"), NewContainer("head")
	car.ZIndex, trail.ZIndex, head.ZIndex = 10, 1, 5
	p.AddChild(car)
	p.AddChild(trail)
	p.AddChild(head)

	rebuildSortedChildren(p)
	got := []string{p.sortedChildren[0].Name, p.sortedChildren[1].Name, p.sortedChildren[2].Name}
	want := []string{"trail", "head", "car"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	trail.SetZIndex(20)
	if p.childrenSorted {
		t.Error("SetZIndex should invalidate sort")
	}
}
