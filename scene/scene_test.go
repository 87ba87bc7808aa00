package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layed/core"
	"layed/grid"
)

func obj(x, y int, w, h float64) *core.GridObject {
	o := core.NewGridObject(w, h, core.Color{R: 100, G: 100, B: 100, A: 255})
	o.Position = core.GridPoint{X: x, Y: y}
	return o
}

// assertNoOverlaps checks the scene-wide invariant: no two placed objects'
// collision rectangles intersect.
func assertNoOverlaps(t *testing.T, s *Scene) {
	t.Helper()
	objects := s.Objects()
	for i, a := range objects {
		for _, b := range objects[i+1:] {
			assert.False(t, a.Collides(b), "placed objects %v and %v overlap", a.Position, b.Position)
		}
	}
}

func TestPlaceRejectsCollision(t *testing.T) {
	s := New()
	require.True(t, s.Place(obj(0, 0, 2, 2)))

	// Collision rects (0,0,1.5,1.5) and (1,1,1.5,1.5) overlap.
	assert.False(t, s.Place(obj(1, 1, 2, 2)))
	assert.Equal(t, 1, s.Len())

	// Collision rects (0,0,1.5,1.5) and (2,0,1.5,1.5) do not.
	assert.True(t, s.Place(obj(2, 0, 2, 2)))
	assert.Equal(t, 2, s.Len())
	assertNoOverlaps(t, s)
}

func TestPlaceAppendsCopy(t *testing.T) {
	s := New()
	candidate := obj(0, 0, 2, 2)
	require.True(t, s.Place(candidate))

	placed := s.Objects()[0]
	assert.NotSame(t, candidate, placed, "store must hold a copy, not the pending object")
	assert.Equal(t, *candidate, *placed, "the copy must be value-equal")

	// Moving the candidate afterwards must not affect the placed copy.
	candidate.Position = core.GridPoint{X: 9, Y: 9}
	assert.Equal(t, core.GridPoint{X: 0, Y: 0}, placed.Position)
}

func TestPlaceIdempotentSafe(t *testing.T) {
	s := New()
	require.True(t, s.Place(obj(0, 0, 2, 2)))
	before := s.Len()

	colliding := obj(0, 0, 2, 2)
	for i := 0; i < 3; i++ {
		assert.False(t, s.Place(colliding))
	}
	assert.Equal(t, before, s.Len(), "colliding placement must never change the store")
}

func TestRemoveKeepsSelectionSubset(t *testing.T) {
	s := New()
	require.True(t, s.Place(obj(0, 0, 2, 2)))
	placed := s.Objects()[0]
	s.Select(placed)
	require.Equal(t, 1, s.SelectionCount())

	assert.True(t, s.Remove(placed))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.SelectionCount(), "removal must drop the object from the selection too")

	assert.False(t, s.Remove(placed), "removing twice reports false")
}

func TestHitTestLastWinsAndUsesVisualRect(t *testing.T) {
	s := New()
	m := grid.NewMapper() // 20px cells

	// Two 2x2 objects whose visual rects touch at x=2: both hit-test at
	// their true rendered footprint even though collision rects are shrunk.
	require.True(t, s.Place(obj(0, 0, 2, 2)))
	require.True(t, s.Place(obj(2, 0, 2, 2)))
	first, second := s.Objects()[0], s.Objects()[1]

	assert.Same(t, first, s.HitTest(m, core.Point{X: 10, Y: 10}))
	assert.Same(t, second, s.HitTest(m, core.Point{X: 50, Y: 10}))
	assert.Nil(t, s.HitTest(m, core.Point{X: 10, Y: 100}))

	// The shared edge at x=40 belongs to the later object: its half-open
	// visual rect starts there, and later insertions win.
	assert.Same(t, second, s.HitTest(m, core.Point{X: 40, Y: 10}))
}

func TestMoveSelectionAllOrNothing(t *testing.T) {
	s := New()
	require.True(t, s.Place(obj(0, 0, 2, 2)))
	require.True(t, s.Place(obj(0, 3, 2, 2)))
	require.True(t, s.Place(obj(4, 0, 2, 2))) // Unselected blocker

	a, b := s.Objects()[0], s.Objects()[1]
	s.Select(a)
	s.Select(b)

	// Moving right by 2 would land a on the blocker: nothing may move.
	assert.False(t, s.MoveSelection(2, 0))
	assert.Equal(t, core.GridPoint{X: 0, Y: 0}, a.Position)
	assert.Equal(t, core.GridPoint{X: 0, Y: 3}, b.Position)

	// Moving down clears everything: both move.
	assert.True(t, s.MoveSelection(0, 3))
	assert.Equal(t, core.GridPoint{X: 0, Y: 3}, a.Position)
	assert.Equal(t, core.GridPoint{X: 0, Y: 6}, b.Position)
	assertNoOverlaps(t, s)
}

func TestMoveSelectionGroupMembersDoNotBlockEachOther(t *testing.T) {
	s := New()
	require.True(t, s.Place(obj(0, 0, 2, 2)))
	require.True(t, s.Place(obj(2, 0, 2, 2)))
	a, b := s.Objects()[0], s.Objects()[1]
	s.Select(a)
	s.Select(b)

	// a moves into the cell b vacates; only the unselected complement can block.
	assert.True(t, s.MoveSelection(2, 0))
	assert.Equal(t, core.GridPoint{X: 2, Y: 0}, a.Position)
	assert.Equal(t, core.GridPoint{X: 4, Y: 0}, b.Position)
	assertNoOverlaps(t, s)
}

func TestPlanMoveDoesNotMutate(t *testing.T) {
	group := []*core.GridObject{obj(0, 0, 2, 2)}
	others := []*core.GridObject{obj(2, 0, 2, 2)}

	positions, ok := PlanMove(group, others, 0, 5)
	require.True(t, ok)
	assert.Equal(t, []core.GridPoint{{X: 0, Y: 5}}, positions)
	assert.Equal(t, core.GridPoint{X: 0, Y: 0}, group[0].Position, "planning must not move anything")

	_, ok = PlanMove(group, others, 1, 0)
	assert.False(t, ok)
	assert.Equal(t, core.GridPoint{X: 0, Y: 0}, group[0].Position)
}

func TestMoveAllSkipsCollisionChecks(t *testing.T) {
	s := New()
	require.True(t, s.Place(obj(0, 0, 2, 2)))
	require.True(t, s.Place(obj(4, 4, 2, 2)))

	s.MoveAll(-10, -10)
	assert.Equal(t, core.GridPoint{X: -10, Y: -10}, s.Objects()[0].Position)
	assert.Equal(t, core.GridPoint{X: -6, Y: -6}, s.Objects()[1].Position)
	assertNoOverlaps(t, s)
}

func TestNormalize(t *testing.T) {
	s := New()
	require.True(t, s.Place(obj(5, 9, 2, 2)))
	require.True(t, s.Place(obj(8, 3, 2, 2)))

	s.Normalize(1)
	assert.Equal(t, core.GridPoint{X: 2, Y: 7}, s.Objects()[0].Position)
	assert.Equal(t, core.GridPoint{X: 5, Y: 1}, s.Objects()[1].Position)

	// Already-normalized layouts are untouched.
	s.Normalize(1)
	assert.Equal(t, core.GridPoint{X: 2, Y: 7}, s.Objects()[0].Position)
}

func TestBounds(t *testing.T) {
	s := New()
	assert.Equal(t, core.Rect{}, s.Bounds())

	require.True(t, s.Place(obj(1, 1, 2, 2)))
	require.True(t, s.Place(obj(4, 5, 2, 3)))
	assert.Equal(t, core.Rect{X: 1, Y: 1, W: 5, H: 7}, s.Bounds())
}

func TestSelectionSnapshotRestore(t *testing.T) {
	s := New()
	require.True(t, s.Place(obj(0, 0, 2, 2)))
	require.True(t, s.Place(obj(3, 0, 2, 2)))
	a, b := s.Objects()[0], s.Objects()[1]

	s.Select(a)
	snap := s.SelectionSnapshot()

	s.Select(b)
	s.Deselect(a)
	s.RestoreSelection(snap)

	assert.True(t, s.IsSelected(a))
	assert.False(t, s.IsSelected(b))

	// Snapshot entries for since-removed objects are dropped silently.
	s.Remove(a)
	s.RestoreSelection(snap)
	assert.Equal(t, 0, s.SelectionCount())
}
