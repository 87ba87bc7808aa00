package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layed/core"
	"layed/grid"
)

func TestInfluenceIsAsymmetric(t *testing.T) {
	s := New()
	m := grid.NewMapper()

	// Two 1x1 objects with centers 2 cells apart; only A has a radius.
	a := obj(0, 0, 1, 1)
	a.Radius = 3
	b := obj(2, 0, 1, 1)
	require.True(t, s.Place(a))
	require.True(t, s.Place(b))
	placedA, placedB := s.Objects()[0], s.Objects()[1]

	influenced := s.Influenced(m, placedA)
	assert.Contains(t, influenced, placedB, "A's radius covers B's center")

	assert.Empty(t, s.Influenced(m, placedB), "B has no radius and influences nothing")
}

func TestInfluenceBoundaryCountsAsInside(t *testing.T) {
	s := New()
	m := grid.NewMapper()

	a := obj(0, 0, 1, 1)
	a.Radius = 2
	b := obj(2, 0, 1, 1) // Center exactly 2 cells from a's center
	require.True(t, s.Place(a))
	require.True(t, s.Place(b))

	influenced := s.Influenced(m, s.Objects()[0])
	assert.Contains(t, influenced, s.Objects()[1])
}

func TestTinyRadiusHasNoInfluence(t *testing.T) {
	m := grid.NewMapper()

	for _, r := range []float64{0, 0.25, 0.49} {
		o := obj(0, 0, 1, 1)
		o.Radius = r
		assert.False(t, HasInfluence(o), "radius %g", r)
		_, _, ok := InfluenceCircle(m, o)
		assert.False(t, ok, "radius %g must yield no circle", r)
	}
}

func TestInfluenceCircleGeometry(t *testing.T) {
	m := grid.NewMapper() // 20px cells
	o := obj(0, 0, 2, 2)
	o.Radius = 3

	center, radius, ok := InfluenceCircle(m, o)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 20, Y: 20}, center, "circle sits on the visual-rect center")
	assert.Equal(t, 60.0, radius, "radius converts to screen units")
}

func TestInfluenceQueryHasNoSideEffects(t *testing.T) {
	s := New()
	m := grid.NewMapper()

	a := obj(0, 0, 2, 2)
	a.Radius = 5
	require.True(t, s.Place(a))
	require.True(t, s.Place(obj(4, 0, 2, 2)))

	before := make([]core.GridObject, s.Len())
	for i, o := range s.Objects() {
		before[i] = *o
	}

	src := s.Objects()[0]
	first := s.Influenced(m, src)

	// Positions changed between calls must be picked up: the query is
	// recomputed from current state, never cached.
	s.MoveAll(10, 0)
	second := s.Influenced(m, src)
	assert.Equal(t, len(first), len(second))

	s.MoveAll(-10, 0)
	for i, o := range s.Objects() {
		assert.Equal(t, before[i], *o, "influence query must not mutate objects")
	}
}
