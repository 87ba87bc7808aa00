// Package scene holds the placed objects of a layout, the selection, and the
// collision rules that keep placed objects from overlapping.
package scene

import (
	"layed/core"
	"layed/grid"
)

// Scene is the ordered collection of placed objects plus the selected subset.
// Insertion order is z-order: later objects win hit tests and draw on top.
type Scene struct {
	objects  []*core.GridObject
	selected map[string]bool // Object ID -> selected; always a subset of placed
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		selected: make(map[string]bool),
	}
}

// Objects returns the placed objects in insertion order.
// The slice is shared; callers must not reorder or resize it.
func (s *Scene) Objects() []*core.GridObject {
	return s.objects
}

// Len returns the number of placed objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// SetObjects replaces the whole placed set, clearing the selection.
// Used when a layout is loaded or a new file is started.
func (s *Scene) SetObjects(objects []*core.GridObject) {
	s.objects = objects
	s.selected = make(map[string]bool)
}

// Clear removes every object and the selection.
func (s *Scene) Clear() {
	s.SetObjects(nil)
}

// anyCollision reports whether the candidate's collision rect intersects any
// object in the group.
func anyCollision(candidate *core.GridObject, group []*core.GridObject) bool {
	for _, o := range group {
		if candidate.Collides(o) {
			return true
		}
	}
	return false
}

// CanPlace reports whether the candidate fits without colliding with any
// placed object.
func (s *Scene) CanPlace(candidate *core.GridObject) bool {
	return !anyCollision(candidate, s.objects)
}

// Place appends a copy of the candidate to the scene if it does not collide
// with any placed object. A colliding candidate leaves the scene untouched
// and returns false; this is a normal negative result, not an error.
func (s *Scene) Place(candidate *core.GridObject) bool {
	if !s.CanPlace(candidate) {
		return false
	}
	s.objects = append(s.objects, candidate.Clone())
	return true
}

// Remove deletes the object from the placed set and the selection.
func (s *Scene) Remove(o *core.GridObject) bool {
	for i, placed := range s.objects {
		if placed == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			delete(s.selected, o.ID)
			return true
		}
	}
	return false
}

// HitTest returns the last placed object whose visual screen rectangle
// contains the point, or nil. The full visual footprint responds, not the
// shrunk collision rect, so visually overlapping neighbours each answer at
// their true rendered area.
func (s *Scene) HitTest(m *grid.Mapper, p core.Point) *core.GridObject {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if m.ScreenRect(s.objects[i]).Contains(p) {
			return s.objects[i]
		}
	}
	return nil
}

// PlanMove computes the positions the group would occupy after shifting by
// (dx, dy) cells, refusing if any member would collide with an object in
// others. Members of the group never block each other. The group is not
// mutated; on ok the caller commits the returned positions.
func PlanMove(group, others []*core.GridObject, dx, dy int) ([]core.GridPoint, bool) {
	moved := make([]core.GridPoint, len(group))
	for i, o := range group {
		moved[i] = o.Position.Add(dx, dy)
		probe := o.Clone()
		probe.Position = moved[i]
		if anyCollision(probe, others) {
			return nil, false
		}
	}
	return moved, true
}

// MoveSelection shifts every selected object by (dx, dy) cells, all or
// nothing: if any member would collide with an unselected object, nothing
// moves and false is returned.
func (s *Scene) MoveSelection(dx, dy int) bool {
	group := s.Selected()
	if len(group) == 0 {
		return false
	}
	others := make([]*core.GridObject, 0, len(s.objects)-len(group))
	for _, o := range s.objects {
		if !s.selected[o.ID] {
			others = append(others, o)
		}
	}
	positions, ok := PlanMove(group, others, dx, dy)
	if !ok {
		return false
	}
	for i, o := range group {
		o.Position = positions[i]
	}
	return true
}

// MoveAll shifts every placed object by (dx, dy) cells without any collision
// checking. Moving the whole layout cannot introduce new overlaps between its
// members, so the no-overlap invariant is preserved trivially.
func (s *Scene) MoveAll(dx, dy int) {
	for _, o := range s.objects {
		o.Position = o.Position.Add(dx, dy)
	}
}

// Normalize shifts all placed objects so the minimum position equals border
// in both axes. Used to pin the layout's top-left before saving or exporting.
func (s *Scene) Normalize(border int) {
	if len(s.objects) == 0 {
		return
	}
	minX, minY := s.objects[0].Position.X, s.objects[0].Position.Y
	for _, o := range s.objects[1:] {
		if o.Position.X < minX {
			minX = o.Position.X
		}
		if o.Position.Y < minY {
			minY = o.Position.Y
		}
	}
	s.MoveAll(border-minX, border-minY)
}

// Bounds returns the grid-space bounding rectangle of all placed objects.
// An empty scene yields the zero rect.
func (s *Scene) Bounds() core.Rect {
	if len(s.objects) == 0 {
		return core.Rect{}
	}
	r := s.objects[0].GridRect()
	minX, minY := r.X, r.Y
	maxX, maxY := r.X+r.W, r.Y+r.H
	for _, o := range s.objects[1:] {
		g := o.GridRect()
		if g.X < minX {
			minX = g.X
		}
		if g.Y < minY {
			minY = g.Y
		}
		if g.X+g.W > maxX {
			maxX = g.X + g.W
		}
		if g.Y+g.H > maxY {
			maxY = g.Y + g.H
		}
	}
	return core.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
