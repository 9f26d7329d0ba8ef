package wfc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gowfc/internal/arena"
)

func TestNewWaveStartsFull(t *testing.T) {
	a := arena.New()
	w := NewWave(a, 4, 9)
	for i := 0; i < 4; i++ {
		require.Equal(t, 9, w.Entropy(i))
		require.False(t, w.IsCollapsed(i))
		require.False(t, w.IsContradicted(i))
	}
	require.False(t, w.IsFullyCollapsed())
	require.False(t, w.HasContradiction())
}

func TestCollapseToSingleton(t *testing.T) {
	a := arena.New()
	w := NewWave(a, 2, 4)
	w.Collapse(0, MaskFor(2))
	require.True(t, w.IsCollapsed(0))
	require.Equal(t, 2, w.VariableID(0))
	require.False(t, w.IsCollapsed(1))
}

func TestCollapseToEmptyIsContradiction(t *testing.T) {
	a := arena.New()
	w := NewWave(a, 1, 4)
	w.Collapse(0, MaskFor(9)) // disjoint from {0,1,2,3}
	require.True(t, w.IsContradicted(0))
	require.True(t, w.HasContradiction())
}

func TestEnable(t *testing.T) {
	a := arena.New()
	w := NewWave(a, 1, 4)
	w.Collapse(0, MaskFor(1))
	w.Enable(0, MaskFor(3))
	require.Equal(t, 2, w.Entropy(0))
	require.True(t, w.Mask(0).Has(1))
	require.True(t, w.Mask(0).Has(3))
}

func TestCloneIsIndependent(t *testing.T) {
	a := arena.New()
	w := NewWave(a, 3, 4)
	clone := w.Clone(a)
	clone.Collapse(0, MaskFor(1))

	require.True(t, clone.IsCollapsed(0))
	require.False(t, w.IsCollapsed(0), "mutating the clone must not affect the parent")
}

func TestCopyFromRestoresParent(t *testing.T) {
	a := arena.New()
	w := NewWave(a, 2, 4)
	clone := w.Clone(a)
	clone.Collapse(0, MaskFor(1))
	clone.Collapse(1, MaskFor(2))

	w.CopyFrom(clone)
	require.True(t, w.IsCollapsed(0))
	require.True(t, w.IsCollapsed(1))
	require.Equal(t, 1, w.VariableID(0))
	require.Equal(t, 2, w.VariableID(1))
}

func TestWaveOverSixtyFourVariables(t *testing.T) {
	a := arena.New()
	w := NewWave(a, 2, 130)
	require.Equal(t, 130, w.Entropy(0))
	w.Collapse(0, MaskFor(129))
	require.True(t, w.IsCollapsed(0))
	require.Equal(t, 129, w.VariableID(0))
	require.Equal(t, 130, w.Entropy(1), "collapsing cell 0 must not affect cell 1")
}
