package scrubline

import "testing"

func testGeometry() Geometry {
	return Geometry{
		ContainerWidth: 1200,
		TargetWidth:    150,
		HeadlineLeft:   100,
		LetterOffsets:  []float64{0, 40},
		Region:         PinnedRegion{Top: 0, Height: 1050},
		Viewport:       Vec2{X: 1200, Y: 800},
		Generation:     1,
	}
}

func TestBuildTargetsNotReady(t *testing.T) {
	if set := BuildTargets(NotReady, VariantEdgeStop()); set != nil {
		t.Error("expected nil set for NotReady geometry")
	}
}

func TestBuildTargetsEdgeStop(t *testing.T) {
	set := BuildTargets(testGeometry(), VariantEdgeStop())
	if set == nil {
		t.Fatal("nil set")
	}
	if set.EndX != 1050 {
		t.Errorf("EndX = %v, want 1050", set.EndX)
	}
	if set.Lead != 75 {
		t.Errorf("Lead = %v, want 75", set.Lead)
	}
	if got := set.Car.At(0.5).X; got != 525 {
		t.Errorf("car at 0.5 = %v, want 525", got)
	}
	if got := set.Trail.At(0.5).Width; got != 600 {
		t.Errorf("trail at 0.5 = %v, want 600", got)
	}
	if len(set.Letters) != 2 || len(set.Cards) != 4 {
		t.Fatalf("letters=%d cards=%d", len(set.Letters), len(set.Cards))
	}
	if set.Hero != nil {
		t.Error("edge-stop should have no hero")
	}
	for _, tgt := range set.All() {
		if tgt.Generation() != 1 {
			t.Errorf("%s generation = %d, want 1", tgt.ID, tgt.Generation())
		}
		if tgt.Revoked() {
			t.Errorf("%s revoked on a fresh set", tgt.ID)
		}
	}
}

func TestBuildTargetsLetterSchema(t *testing.T) {
	set := BuildTargets(testGeometry(), VariantExit())
	l := set.Letters[1]
	if l.ID != LetterID(1) || l.Index != 1 || l.Kind != TargetLetter {
		t.Errorf("letter = %+v", l)
	}
	if l.Start.Fields != l.End.Fields {
		t.Errorf("start/end schemas differ: %b vs %b", l.Start.Fields, l.End.Fields)
	}
	if !l.End.Has(FieldBlur) || l.End.Blur != 0 || l.End.Opacity != 1 || l.End.Scale != 1 {
		t.Errorf("visible style = %+v", l.End)
	}
	if l.Start.Blur != 8 || l.Start.Y != 24 || l.Start.Opacity != 0 {
		t.Errorf("hidden style = %+v", l.Start)
	}
}

func TestBuildTargetsFadeCards(t *testing.T) {
	cfg := VariantEdgeStop()
	set := BuildTargets(testGeometry(), cfg)
	c := set.Cards[0]
	if c.Trigger != cfg.Placements[0].Window {
		t.Errorf("fade card trigger = %+v, want own window", c.Trigger)
	}
	start, end := c.At(0), c.At(1)
	if start.X != 180 || start.Y != 160 || end.X != 180 || end.Y != 160 {
		t.Errorf("fade card should stay at its corner: %+v -> %+v", start, end)
	}
	if start.Opacity != 0 || end.Opacity != 1 {
		t.Errorf("fade opacity %v -> %v, want 0 -> 1", start.Opacity, end.Opacity)
	}
}

func TestBuildTargetsExplodeCards(t *testing.T) {
	set := BuildTargets(testGeometry(), VariantExit())
	wantRest := [][2]float64{{180, 160}, {180, 640}, {1020, 160}, {1020, 640}}
	for i, c := range set.Cards {
		s := c.At(0)
		if s.X != 600 || s.Y != 400 || s.Scale != 0.2 || s.Opacity != 0 {
			t.Errorf("card %d start = %+v, want center at scale 0.2", i, s)
		}
		e := c.At(1)
		if e.X != wantRest[i][0] || e.Y != wantRest[i][1] || e.Scale != 1 || e.Opacity != 1 {
			t.Errorf("card %d rest = %+v, want %v", i, e, wantRest[i])
		}
		if c.Trigger != (ScrollTrigger{Start: 400}) {
			t.Errorf("card %d trigger = %+v", i, c.Trigger)
		}
	}
}

func TestLerpStyleUnionFields(t *testing.T) {
	a := Style{X: 0, Fields: FieldX}
	b := Style{Opacity: 1, Fields: FieldOpacity}
	got := LerpStyle(a, b, 0.5, Linear)
	if got.Fields != FieldX|FieldOpacity {
		t.Errorf("fields = %b", got.Fields)
	}
	if got.Opacity != 0.5 {
		t.Errorf("opacity = %v, want 0.5", got.Opacity)
	}
	if LerpStyle(a, b, 0, Linear).Fields != FieldX|FieldOpacity {
		t.Error("endpoint should carry the union schema")
	}
}

func TestTargetSetRevoke(t *testing.T) {
	set := BuildTargets(testGeometry(), VariantExit())
	set.revoke()
	for _, tgt := range set.All() {
		if !tgt.Revoked() {
			t.Errorf("%s not revoked", tgt.ID)
		}
	}
	var nilSet *TargetSet
	if !nilSet.Revoked() {
		t.Error("nil set should report revoked")
	}
}
