// Package grid maps between continuous screen space and discrete grid cells.
package grid

import (
	"math"

	"layed/core"
	"layed/geometry"
)

// Cell size bounds in pixels per cell. Part of the public contract.
const (
	MinCellSize     = 8
	MaxCellSize     = 100
	DefaultCellSize = 20
)

// Mapper converts between screen space and grid space. The only state is the
// current cell size; changing it never moves or resizes stored grid values.
type Mapper struct {
	cell int
}

// NewMapper returns a mapper at the default cell size.
func NewMapper() *Mapper {
	return &Mapper{cell: DefaultCellSize}
}

// CellSize returns the current cell size in pixels.
func (m *Mapper) CellSize() int {
	return m.cell
}

// SetCellSize sets the cell size, silently clamping to [MinCellSize, MaxCellSize].
func (m *Mapper) SetCellSize(px int) {
	m.cell = geometry.Clamp(px, MinCellSize, MaxCellSize)
}

// AdjustCellSize shifts the cell size by a wheel delta, one step per 100 units.
func (m *Mapper) AdjustCellSize(wheelDelta int) {
	m.SetCellSize(m.cell + wheelDelta/100)
}

// Reset restores the default cell size.
func (m *Mapper) Reset() {
	m.cell = DefaultCellSize
}

// ScreenToGridFloor returns the cell containing the screen point.
func (m *Mapper) ScreenToGridFloor(p core.Point) core.GridPoint {
	g := float64(m.cell)
	return core.GridPoint{
		X: int(math.Floor(p.X / g)),
		Y: int(math.Floor(p.Y / g)),
	}
}

// ScreenToGridRound snaps the screen point to the nearest cell corner.
// Used to quantize drag deltas to whole cells.
func (m *Mapper) ScreenToGridRound(p core.Point) core.GridPoint {
	g := float64(m.cell)
	return core.GridPoint{
		X: int(math.Round(p.X / g)),
		Y: int(math.Round(p.Y / g)),
	}
}

// GridToScreen converts a grid point to its screen-space position.
func (m *Mapper) GridToScreen(p core.GridPoint) core.Point {
	g := float64(m.cell)
	return core.Point{X: float64(p.X) * g, Y: float64(p.Y) * g}
}

// Length converts a scalar grid length (a size or radius) to screen units.
func (m *Mapper) Length(l float64) float64 {
	return l * float64(m.cell)
}

// ScreenRect returns the visual screen-space rectangle of an object.
// Hit testing and selection use this full footprint, not the collision rect.
func (m *Mapper) ScreenRect(o *core.GridObject) core.Rect {
	p := m.GridToScreen(o.Position)
	return core.Rect{X: p.X, Y: p.Y, W: m.Length(o.Width), H: m.Length(o.Height)}
}
