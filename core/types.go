// Package core contains the fundamental types used throughout the layed editor.
package core

import "github.com/google/uuid"

// Point represents a screen-space coordinate in continuous pixel units.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// GridPoint represents a grid-space cell coordinate, independent of zoom.
type GridPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the grid point shifted by (dx, dy) cells.
func (g GridPoint) Add(dx, dy int) GridPoint {
	return GridPoint{X: g.X + dx, Y: g.Y + dy}
}

// Rect represents an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// RectFromPoints builds a normalized rectangle spanning two corner points.
func RectFromPoints(a, b Point) Rect {
	x, y := a.X, a.Y
	if b.X < x {
		x = b.X
	}
	if b.Y < y {
		y = b.Y
	}
	w := a.X - b.X
	if w < 0 {
		w = -w
	}
	h := a.Y - b.Y
	if h < 0 {
		h = -h
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Overlaps reports whether two rectangles share interior area.
// Touching edges do not count, and a rectangle with no area never overlaps.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains checks if a point is inside the rectangle (half-open on the far edges).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Color represents an RGBA color. Alpha is only ever overridden transiently
// while rendering a pending placement; the stored value is never mutated.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// WithAlpha returns a copy of the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// GridObject represents a rectangular object placed on the grid.
type GridObject struct {
	ID       string    `json:"id"`
	Position GridPoint `json:"position"` // Top-left cell
	Width    float64   `json:"width"`    // Grid units
	Height   float64   `json:"height"`   // Grid units
	Radius   float64   `json:"radius"`   // Influence radius in grid units, < 0.5 means none
	Color    Color     `json:"color"`
	Label    string    `json:"label,omitempty"`
	Icon     string    `json:"icon,omitempty"` // Opaque icon reference, resolved by the frontend
}

// NewGridObject creates an object with a fresh identity at the origin.
func NewGridObject(width, height float64, color Color) *GridObject {
	return &GridObject{
		ID:     uuid.NewString(),
		Width:  width,
		Height: height,
		Color:  color,
	}
}

// GridRect returns the object's visual footprint in grid units.
func (o *GridObject) GridRect() Rect {
	return Rect{
		X: float64(o.Position.X),
		Y: float64(o.Position.Y),
		W: o.Width,
		H: o.Height,
	}
}

// CollisionRect returns the footprint used for overlap checks: the visual
// rectangle shrunk by half a cell in each dimension. The shrink tolerates
// rendering padding without treating it as a real collision.
func (o *GridObject) CollisionRect() Rect {
	return Rect{
		X: float64(o.Position.X),
		Y: float64(o.Position.Y),
		W: o.Width - 0.5,
		H: o.Height - 0.5,
	}
}

// Collides reports whether the collision rectangles of two objects intersect.
func (o *GridObject) Collides(other *GridObject) bool {
	return o.CollisionRect().Overlaps(other.CollisionRect())
}

// Rotate swaps the object's width and height in place.
func (o *GridObject) Rotate() {
	o.Width, o.Height = o.Height, o.Width
}

// Clone returns a value-equal copy sharing the same identity.
func (o *GridObject) Clone() *GridObject {
	c := *o
	return &c
}

// Duplicate returns a copy with a fresh identity, for re-placement.
func (o *GridObject) Duplicate() *GridObject {
	c := *o
	c.ID = uuid.NewString()
	return &c
}
