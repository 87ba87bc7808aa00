package editor

import (
	"fmt"

	"layed/core"
)

// dragThreshold is how far, in screen units per axis, the pointer must travel
// from the press position before an armed drag state activates.
const dragThreshold = 1

// HandlePointerDown processes a pointer press.
func (s *Session) HandlePointerDown(ev PointerEvent) {
	s.pointer = ev.Pos
	left := ev.Buttons&ButtonLeft != 0
	right := ev.Buttons&ButtonRight != 0
	switch {
	case left && right:
		s.dragStart = ev.Pos
		s.setState(StateDragAllStart)
	case left:
		s.handleLeftDown(ev)
	}
	s.invalidateView()
}

func (s *Session) handleLeftDown(ev PointerEvent) {
	if s.current != nil {
		// Stamp the pending object. Collision refusal keeps it pending
		// and leaves the scene exactly as it was.
		s.current.Position = s.mapper.ScreenToGridFloor(ev.Pos)
		if s.scene.Place(s.current) {
			// Fresh identity so repeated stamping never duplicates IDs.
			s.current = s.current.Duplicate()
		}
		return
	}
	hit := s.scene.HitTest(s.mapper, ev.Pos)
	s.hit = hit
	if hit != nil && ev.Clicks > 1 {
		// Double-click detaches a copy for re-placement.
		s.current = hit.Duplicate()
		return
	}
	if hit == nil {
		s.dragStart = ev.Pos
		s.setState(StateSelectionRectStart)
		return
	}
	if !ev.Mods.SelectHeld() {
		s.dragStart = ev.Pos
		if s.scene.IsSelected(hit) {
			s.setState(StateDragSelectionStart)
		} else {
			s.setState(StateDragSingleStart)
		}
	}
}

// HandlePointerMove processes pointer motion, with or without held buttons.
func (s *Session) HandlePointerMove(ev PointerEvent) {
	s.pointer = ev.Pos
	if s.current != nil && s.state == StateStandard {
		s.current.Position = s.mapper.ScreenToGridFloor(ev.Pos)
	}
	// Promote armed states once the pointer travels past the drag threshold.
	if s.pastThreshold(ev.Pos) {
		switch s.state {
		case StateSelectionRectStart:
			s.selectionRect = core.RectFromPoints(s.dragStart, ev.Pos)
			s.selectionBase = s.scene.SelectionSnapshot()
			s.setState(StateSelectionRect)
		case StateDragSelectionStart:
			s.setState(StateDragSelection)
		case StateDragSingleStart:
			s.scene.ClearSelection()
			if s.hit != nil {
				s.scene.Select(s.hit)
			}
			s.setState(StateDragSelection)
		case StateDragAllStart:
			s.setState(StateDragAll)
		}
	}
	switch s.state {
	case StateSelectionRect:
		s.updateSelectionRect(ev)
	case StateDragSelection:
		if dx, dy := s.gridDelta(ev.Pos); dx != 0 || dy != 0 {
			if s.scene.MoveSelection(dx, dy) {
				s.advanceDragStart(dx, dy)
			}
		}
	case StateDragAll:
		if dx, dy := s.gridDelta(ev.Pos); dx != 0 || dy != 0 {
			// Whole-layout drag deliberately skips collision checks.
			s.scene.MoveAll(dx, dy)
			s.advanceDragStart(dx, dy)
		}
	}
	s.invalidateView()
}

func (s *Session) updateSelectionRect(ev PointerEvent) {
	s.selectionRect = core.RectFromPoints(s.dragStart, ev.Pos)
	if ev.Mods.SelectHeld() {
		// Toggle against the selection as it was when the gesture began:
		// covered objects flip, everything else keeps its original state.
		s.scene.RestoreSelection(s.selectionBase)
		for _, o := range s.scene.Objects() {
			if s.mapper.ScreenRect(o).Overlaps(s.selectionRect) {
				s.scene.ToggleSelect(o)
			}
		}
		return
	}
	s.scene.ClearSelection()
	for _, o := range s.scene.Objects() {
		if s.mapper.ScreenRect(o).Overlaps(s.selectionRect) {
			s.scene.Select(o)
		}
	}
}

// HandlePointerUp processes a button release. ev.Buttons carries the buttons
// that were released.
func (s *Session) HandlePointerUp(ev PointerEvent) {
	s.pointer = ev.Pos
	left := ev.Buttons&ButtonLeft != 0
	right := ev.Buttons&ButtonRight != 0
	middle := ev.Buttons&ButtonMiddle != 0

	switch {
	case s.state == StateDragAll || s.state == StateDragAllStart:
		if left || right {
			s.setState(StateStandard)
		}
	case middle:
		if s.current != nil {
			s.current.Rotate()
		}
	case right:
		s.handleRightUp(ev)
	case left:
		s.handleLeftUp(ev)
	}
	s.invalidateView()
}

func (s *Session) handleRightUp(ev PointerEvent) {
	if s.current != nil {
		s.current = nil
		s.notifier.Status("placement cancelled")
		return
	}
	if s.state != StateStandard {
		return
	}
	if hit := s.scene.HitTest(s.mapper, ev.Pos); hit != nil {
		s.scene.Remove(hit)
	} else if !ev.Mods.SelectHeld() {
		s.scene.ClearSelection()
	}
}

func (s *Session) handleLeftUp(ev PointerEvent) {
	defer func() {
		s.selectionRect = core.Rect{}
		s.selectionBase = nil
		s.setState(StateStandard)
	}()
	if s.current != nil {
		// Placement already happened on the press.
		return
	}
	switch s.state {
	case StateSelectionRect, StateDragSelection:
		// Selection was finalized incrementally during the drag.
		return
	}
	hit := s.scene.HitTest(s.mapper, ev.Pos)
	if !ev.Mods.SelectHeld() {
		s.scene.ClearSelection()
	}
	if hit != nil {
		s.scene.ToggleSelect(hit)
	}
}

// HandleWheel adjusts the zoom, one cell-size step per wheel notch.
// The interaction state is unaffected.
func (s *Session) HandleWheel(ev WheelEvent) {
	s.mapper.AdjustCellSize(ev.Delta)
	s.invalidateView()
}

// HandleKey processes an abstract key-down event.
func (s *Session) HandleKey(ev KeyEvent) {
	switch ev.Key {
	case KeyDelete:
		removed := s.scene.Selected()
		for _, o := range removed {
			s.scene.Remove(o)
		}
		s.scene.ClearSelection()
		if len(removed) > 0 {
			s.notifier.Status(fmt.Sprintf("deleted %d objects", len(removed)))
		}
		s.invalidateView()
	}
}

func (s *Session) pastThreshold(p core.Point) bool {
	d := p.Sub(s.dragStart)
	return d.X > dragThreshold || d.X < -dragThreshold ||
		d.Y > dragThreshold || d.Y < -dragThreshold
}

// gridDelta quantizes the accumulated screen delta since dragStart to whole
// cells.
func (s *Session) gridDelta(p core.Point) (int, int) {
	d := s.mapper.ScreenToGridRound(p.Sub(s.dragStart))
	return d.X, d.Y
}

// advanceDragStart moves the drag reference by the screen equivalent of an
// applied grid delta, so fractional pointer travel carries into the next
// move event instead of being lost.
func (s *Session) advanceDragStart(dx, dy int) {
	s.dragStart = s.dragStart.Add(s.mapper.GridToScreen(core.GridPoint{X: dx, Y: dy}))
}
