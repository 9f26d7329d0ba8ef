package wfc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumIDMap(t *testing.T) {
	m := NewEnumIDMap([]string{"A", "B", "C"})
	require.Equal(t, 3, m.Size())
	require.Equal(t, "A", m.ValueOf(0))
	require.Equal(t, "C", m.ValueOf(2))

	idx, ok := m.IndexOf("B")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = m.IndexOf("Z")
	require.False(t, ok)

	require.True(t, m.Has("A"))
	require.False(t, m.Has("Z"))
}

func TestEnumIDMapDuplicatePanics(t *testing.T) {
	require.Panics(t, func() {
		NewEnumIDMap([]string{"A", "A"})
	})
}

func TestRangeIDMap(t *testing.T) {
	m := NewRangeIDMap(5, 9) // values 5,6,7,8
	require.Equal(t, 4, m.Size())
	require.Equal(t, 5, m.ValueOf(0))
	require.Equal(t, 8, m.ValueOf(3))

	idx, ok := m.IndexOf(7)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = m.IndexOf(9)
	require.False(t, ok)
	require.True(t, m.Has(5))
	require.False(t, m.Has(100))
}

func TestRangeIDMapEmptyRange(t *testing.T) {
	m := NewRangeIDMap(3, 3)
	require.Equal(t, 0, m.Size())
	require.False(t, m.Has(3))
}
