// Package render builds an abstract draw-command sequence from a session.
// The commands carry no toolkit types; any graphics stack (or an exporter)
// can execute them in order.
package render

import "layed/core"

// Op identifies the kind of a draw command.
type Op int

const (
	OpRect Op = iota
	OpLine
	OpEllipse
	OpText
	OpImage
)

// Command is one drawing primitive. Which fields are meaningful depends on
// the Op; commands execute in slice order, so later commands draw on top.
type Command struct {
	Op Op

	Rect     core.Rect  // OpRect, OpImage, and the bounding box of OpEllipse
	From, To core.Point // OpLine endpoints
	At       core.Point // OpText anchor (top-left)
	Text     string     // OpText content
	Image    string     // OpImage icon reference, resolved by the executor

	Fill        core.Color // Zero alpha means no fill
	Stroke      core.Color // Zero alpha means no outline
	StrokeWidth float64
}
