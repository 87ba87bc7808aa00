package scene

import (
	"layed/core"
	"layed/geometry"
	"layed/grid"
)

// MinInfluenceRadius is the smallest radius, in grid units, that produces an
// influence zone. Anything below it draws no circle and influences nothing.
const MinInfluenceRadius = 0.5

// HasInfluence reports whether the object carries a usable influence radius.
func HasInfluence(o *core.GridObject) bool {
	return o.Radius >= MinInfluenceRadius
}

// InfluenceCircle returns the screen-space center and radius of the object's
// influence zone. The ok result is false when the radius is below the
// threshold and no circle should be drawn or evaluated.
func InfluenceCircle(m *grid.Mapper, o *core.GridObject) (center core.Point, radius float64, ok bool) {
	if !HasInfluence(o) {
		return core.Point{}, 0, false
	}
	return m.ScreenRect(o).Center(), m.Length(o.Radius), true
}

// Influenced returns the placed objects whose visual-rect centers fall inside
// the source object's influence circle, the circle boundary counting as
// inside. The result is recomputed from current positions on every call; the
// scene is never mutated. The relation is not symmetric: with differing radii
// one object can influence another without being influenced back.
func (s *Scene) Influenced(m *grid.Mapper, src *core.GridObject) []*core.GridObject {
	center, radius, ok := InfluenceCircle(m, src)
	if !ok {
		return nil
	}
	r2 := radius * radius
	var out []*core.GridObject
	for _, o := range s.objects {
		c := m.ScreenRect(o).Center()
		if geometry.SquaredDistance(center.X, center.Y, c.X, c.Y) <= r2 {
			out = append(out, o)
		}
	}
	return out
}
