package editor

import "layed/core"

// Button is a bitmask of pointer buttons. On pointer-down events it carries
// the buttons held; on pointer-up events it carries the buttons released.
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModControl Modifier = 1 << iota
	ModShift
)

// SelectHeld reports whether a modifier-select key (Control or Shift, either)
// is held.
func (m Modifier) SelectHeld() bool {
	return m&(ModControl|ModShift) != 0
}

// Key identifies the keyboard keys the interaction core reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyDelete
)

// PointerEvent is an abstract pointer-down, pointer-move or pointer-up event.
// The frontend translates its toolkit's events into this form.
type PointerEvent struct {
	Pos     core.Point
	Buttons Button
	Mods    Modifier
	Clicks  int // Click count on pointer-down; > 1 means double-click
}

// WheelEvent is a pointer wheel movement, 100 units per notch.
type WheelEvent struct {
	Delta int
}

// KeyEvent is an abstract key-down event.
type KeyEvent struct {
	Key  Key
	Mods Modifier
}
