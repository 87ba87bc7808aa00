package editor

// State represents the current interaction mode of the pointer state machine.
// The *Start states are armed on pointer-down and promote to their active
// counterpart once the pointer moves past the drag threshold.
type State int

const (
	StateStandard           State = iota // Idle, placing or clicking
	StateSelectionRectStart              // Left press on empty space
	StateSelectionRect                   // Rubber-band selection active
	StateDragSelectionStart              // Left press on an already-selected object
	StateDragSingleStart                 // Left press on an unselected object
	StateDragSelection                   // Dragging the selected group
	StateDragAllStart                    // Left and right pressed together
	StateDragAll                         // Dragging the whole layout
)

// String returns the state name for display.
func (s State) String() string {
	switch s {
	case StateStandard:
		return "STANDARD"
	case StateSelectionRectStart:
		return "SELECTION-RECT-START"
	case StateSelectionRect:
		return "SELECTION-RECT"
	case StateDragSelectionStart:
		return "DRAG-SELECTION-START"
	case StateDragSingleStart:
		return "DRAG-SINGLE-START"
	case StateDragSelection:
		return "DRAG-SELECTION"
	case StateDragAllStart:
		return "DRAG-ALL-START"
	case StateDragAll:
		return "DRAG-ALL"
	default:
		return "UNKNOWN"
	}
}
