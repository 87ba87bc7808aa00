package core

import "testing"

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}

	if !a.Overlaps(Rect{X: 1, Y: 1, W: 2, H: 2}) {
		t.Error("expected overlapping rects to overlap")
	}
	if a.Overlaps(Rect{X: 3, Y: 0, W: 2, H: 2}) {
		t.Error("expected disjoint rects not to overlap")
	}
	// Touching edges share zero area and must not count.
	if a.Overlaps(Rect{X: 2, Y: 0, W: 2, H: 2}) {
		t.Error("edge-touching rects must not overlap")
	}
	if a.Overlaps(Rect{X: 0, Y: 2, W: 2, H: 2}) {
		t.Error("corner-touching rects must not overlap")
	}
}

func TestRectOverlapsZeroArea(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	degenerate := Rect{X: 0.5, Y: 0.5, W: 0, H: 1}
	negative := Rect{X: 0.5, Y: 0.5, W: -0.5, H: 1}

	if a.Overlaps(degenerate) || degenerate.Overlaps(a) {
		t.Error("zero-area rect must never overlap")
	}
	if a.Overlaps(negative) || negative.Overlaps(a) {
		t.Error("negative-area rect must never overlap")
	}
}

func TestRectFromPoints(t *testing.T) {
	r := RectFromPoints(Point{X: 10, Y: 20}, Point{X: 4, Y: 6})
	want := Rect{X: 4, Y: 6, W: 6, H: 14}
	if r != want {
		t.Errorf("expected normalized rect %v, got %v", want, r)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !r.Contains(Point{X: 0, Y: 0}) {
		t.Error("near edge should be inside")
	}
	if r.Contains(Point{X: 10, Y: 5}) {
		t.Error("far edge should be outside")
	}
}

func TestCollisionRectShrink(t *testing.T) {
	o := &GridObject{Position: GridPoint{X: 3, Y: 4}, Width: 2, Height: 2}
	got := o.CollisionRect()
	want := Rect{X: 3, Y: 4, W: 1.5, H: 1.5}
	if got != want {
		t.Errorf("expected collision rect %v, got %v", want, got)
	}
}

func TestCollidesUsesShrunkRect(t *testing.T) {
	a := &GridObject{Position: GridPoint{X: 0, Y: 0}, Width: 2, Height: 2}
	b := &GridObject{Position: GridPoint{X: 1, Y: 1}, Width: 2, Height: 2}
	c := &GridObject{Position: GridPoint{X: 2, Y: 0}, Width: 2, Height: 2}

	if !a.Collides(b) {
		t.Error("offset-by-one 2x2 objects must collide")
	}
	// Visual rects touch, but collision rects (shrunk by 0.5) do not.
	if a.Collides(c) {
		t.Error("adjacent 2x2 objects must not collide")
	}
}

func TestCloneAndDuplicate(t *testing.T) {
	o := NewGridObject(2, 3, Color{R: 1, G: 2, B: 3, A: 255})
	o.Label = "hut"

	clone := o.Clone()
	if clone == o {
		t.Fatal("clone must be a distinct value")
	}
	if *clone != *o {
		t.Errorf("clone must be value-equal: %+v vs %+v", *clone, *o)
	}

	dup := o.Duplicate()
	if dup.ID == o.ID {
		t.Error("duplicate must get a fresh identity")
	}
	dup.ID = o.ID
	if *dup != *o {
		t.Error("duplicate must match in everything except identity")
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	o := &GridObject{Width: 1, Height: 4}
	o.Rotate()
	if o.Width != 4 || o.Height != 1 {
		t.Errorf("expected 4x1 after rotate, got %gx%g", o.Width, o.Height)
	}
}

func TestWithAlphaDoesNotMutate(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 255}
	faded := c.WithAlpha(128)
	if faded.A != 128 {
		t.Errorf("expected alpha 128, got %d", faded.A)
	}
	if c.A != 255 {
		t.Error("WithAlpha must not mutate the receiver")
	}
}
