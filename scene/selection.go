package scene

import "layed/core"

// Select marks a placed object as selected.
func (s *Scene) Select(o *core.GridObject) {
	s.selected[o.ID] = true
}

// Deselect removes the object from the selection.
func (s *Scene) Deselect(o *core.GridObject) {
	delete(s.selected, o.ID)
}

// ToggleSelect flips the object's selection state.
func (s *Scene) ToggleSelect(o *core.GridObject) {
	if s.selected[o.ID] {
		delete(s.selected, o.ID)
	} else {
		s.selected[o.ID] = true
	}
}

// IsSelected reports whether the object is currently selected.
func (s *Scene) IsSelected(o *core.GridObject) bool {
	return s.selected[o.ID]
}

// ClearSelection empties the selection without touching placed objects.
func (s *Scene) ClearSelection() {
	s.selected = make(map[string]bool)
}

// Selected returns the selected objects in insertion order.
func (s *Scene) Selected() []*core.GridObject {
	var out []*core.GridObject
	for _, o := range s.objects {
		if s.selected[o.ID] {
			out = append(out, o)
		}
	}
	return out
}

// SelectionCount returns the number of selected objects.
func (s *Scene) SelectionCount() int {
	return len(s.selected)
}

// SelectionSnapshot returns a copy of the selected ID set, taken at the start
// of a selection-rectangle gesture so each pointer move can recompute the
// selection from a stable baseline.
func (s *Scene) SelectionSnapshot() map[string]bool {
	snap := make(map[string]bool, len(s.selected))
	for id := range s.selected {
		snap[id] = true
	}
	return snap
}

// RestoreSelection replaces the selection with a previously taken snapshot,
// dropping any IDs that no longer name a placed object.
func (s *Scene) RestoreSelection(snapshot map[string]bool) {
	s.selected = make(map[string]bool, len(snapshot))
	for _, o := range s.objects {
		if snapshot[o.ID] {
			s.selected[o.ID] = true
		}
	}
}
