package wfc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gowfc/internal/arena"
)

func newTestConstrainer(n, v, cap int) (*Wave, *Queue, *Constrainer) {
	a := arena.New()
	w := NewWave(a, n, v)
	q := NewQueue(a, cap)
	return w, q, NewConstrainer(w, q)
}

func TestExcludePushesOnCollapseTransition(t *testing.T) {
	w, q, c := newTestConstrainer(2, 2, 2)
	c.Exclude(0, 1) // leaves only value 0 possible
	require.True(t, w.IsCollapsed(0))
	require.False(t, q.Empty())
	require.Equal(t, 0, q.Pop())
}

func TestExcludeNoPushWithoutCollapse(t *testing.T) {
	w, q, c := newTestConstrainer(1, 4, 1)
	c.Exclude(0, 3) // still 3 values left
	require.False(t, w.IsCollapsed(0))
	require.True(t, q.Empty())
}

func TestOnlyRestrictsToExactSet(t *testing.T) {
	w, _, c := newTestConstrainer(1, 4, 1)
	c.Only(0, 1, 2)
	require.Equal(t, 2, w.Entropy(0))
	require.True(t, w.Mask(0).Has(1))
	require.True(t, w.Mask(0).Has(2))
	require.False(t, w.Mask(0).Has(0))
}

func TestIncludeNoOpOnCollapsedCell(t *testing.T) {
	w, _, c := newTestConstrainer(1, 4, 1)
	c.Only(0, 1) // collapse to {1}
	require.True(t, w.IsCollapsed(0))

	c.Include(0, 2) // must be a no-op per spec.md §9
	require.True(t, w.IsCollapsed(0))
	require.Equal(t, 1, w.Entropy(0))
	require.False(t, w.Mask(0).Has(2))
}

func TestIncludeAppliesOnNonCollapsedCell(t *testing.T) {
	w, _, c := newTestConstrainer(1, 4, 1)
	c.Exclude(0, 0, 1, 2, 3) // now empty
	require.True(t, w.IsContradicted(0))

	c.Include(0, 2)
	require.True(t, w.Mask(0).Has(2))
}

func TestExcludeIntoContradictionDoesNotPush(t *testing.T) {
	w, q, c := newTestConstrainer(1, 1, 1)
	c.Exclude(0, 0) // only value is 0; excluding it empties the domain
	require.True(t, w.IsContradicted(0))
	require.True(t, q.Empty(), "transitions into contradiction must never be queued")
}

func TestWallsThenReincludeNearFloorsPattern(t *testing.T) {
	// Grounded on spec.md §9's dungeon-demo initial-state rule: exclude a
	// value everywhere, then re-include it only where still legal. A cell
	// collapsed before the re-include pass must not be reopened by it.
	w, _, c := newTestConstrainer(3, 3, 3)
	const wall = 0
	for i := 0; i < 3; i++ {
		c.Exclude(i, wall)
	}
	for i := 0; i < 3; i++ {
		require.False(t, w.Mask(i).Has(wall))
	}

	c.Only(1, 1) // collapse cell 1 to a single non-wall value
	require.True(t, w.IsCollapsed(1))

	for i := 0; i < 3; i++ {
		c.Include(i, wall)
	}
	require.True(t, w.Mask(0).Has(wall))
	require.True(t, w.Mask(2).Has(wall))
	require.False(t, w.Mask(1).Has(wall), "collapsed cell must not be reopened")
}
