package editor

import (
	"fmt"

	"layed/core"
	"layed/grid"
	"layed/scene"
)

// Session owns the state of one editing session: the scene of placed objects,
// the coordinate mapper, the single pending "current object" and the pointer
// state machine. All event handling is synchronous and single-threaded; a
// handler runs to completion and ends by requesting invalidation rather than
// drawing anything itself.
type Session struct {
	scene  *scene.Scene
	mapper *grid.Mapper

	// Interaction state
	state   State
	current *core.GridObject // Pending placement following the pointer, nil when none

	// Drag bookkeeping
	dragStart     core.Point      // Reference point for drag deltas, advanced as deltas commit
	pointer       core.Point      // Last seen pointer position
	hit           *core.GridObject // Object under the pointer at the last pointer-down
	selectionRect core.Rect       // Live rubber-band rectangle, zero when inactive
	selectionBase map[string]bool // Selection snapshot at rubber-band start

	notifier   Notifier
	invalidate func() // Redraw request sink, may be nil
}

// NewSession creates a session with an empty scene at the default zoom.
func NewSession(notifier Notifier) *Session {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Session{
		scene:    scene.New(),
		mapper:   grid.NewMapper(),
		state:    StateStandard,
		notifier: notifier,
	}
}

// Scene returns the session's object store.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Mapper returns the session's coordinate mapper.
func (s *Session) Mapper() *grid.Mapper {
	return s.mapper
}

// State returns the current interaction state.
func (s *Session) State() State {
	return s.state
}

// Current returns the pending placement object, or nil.
func (s *Session) Current() *core.GridObject {
	return s.current
}

// SelectionRect returns the live rubber-band rectangle and whether one is
// active.
func (s *Session) SelectionRect() (core.Rect, bool) {
	return s.selectionRect, s.state == StateSelectionRect
}

// OnInvalidate registers the callback invoked whenever handled input changed
// something worth redrawing.
func (s *Session) OnInvalidate(fn func()) {
	s.invalidate = fn
}

// SetCurrentObject makes a copy of obj the pending placement, positioned at
// the cell under the pointer. Passing nil cancels any pending placement.
func (s *Session) SetCurrentObject(obj *core.GridObject) {
	if obj == nil {
		s.current = nil
	} else {
		s.current = obj.Duplicate()
		s.current.Position = s.mapper.ScreenToGridFloor(s.pointer)
	}
	s.invalidateView()
}

// NewFile discards all placed objects, the selection and any pending
// placement, returning the session to its initial state. The zoom is kept.
func (s *Session) NewFile() {
	s.scene.Clear()
	s.current = nil
	s.state = StateStandard
	s.selectionRect = core.Rect{}
	s.selectionBase = nil
	s.notifier.Status("new layout")
	s.invalidateView()
}

// ReplaceObjects swaps in a freshly loaded object list. Callers must only
// invoke this after a load fully succeeded, so a failed load never clears or
// corrupts the previous layout.
func (s *Session) ReplaceObjects(objects []*core.GridObject) {
	s.scene.SetObjects(objects)
	s.current = nil
	s.state = StateStandard
	s.notifier.Status(fmt.Sprintf("loaded %d objects", len(objects)))
	s.invalidateView()
}

// ResetZoom restores the default cell size.
func (s *Session) ResetZoom() {
	s.mapper.Reset()
	s.invalidateView()
}

// Normalize shifts the layout so its minimum position equals border in both
// axes.
func (s *Session) Normalize(border int) {
	s.scene.Normalize(border)
	s.invalidateView()
}

func (s *Session) invalidateView() {
	if s.invalidate != nil {
		s.invalidate()
	}
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.state = state
	s.notifier.Status(state.String())
}
