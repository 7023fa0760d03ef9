package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groupsearch/puzzle"
)

func TestMovesPushAndSlice(t *testing.T) {
	var m puzzle.Moves
	m.Push(1)
	m.Push(2)
	m.Push(3)
	require.Equal(t, []uint8{1, 2, 3}, m.Slice())
}

func TestMovesPushOverflowPanics(t *testing.T) {
	var m puzzle.Moves
	for i := 0; i < puzzle.MaxMoves; i++ {
		m.Push(0)
	}
	require.Panics(t, func() { m.Push(0) })
}

func TestMovesEqual(t *testing.T) {
	var a, b puzzle.Moves
	a.Push(1)
	a.Push(2)
	b.Push(1)
	b.Push(2)
	require.True(t, a.Equal(b))
	b.Push(3)
	require.False(t, a.Equal(b))
}

func TestConcat(t *testing.T) {
	var a, b puzzle.Moves
	a.Push(1)
	a.Push(2)
	b.Push(3)
	c := puzzle.Concat(a, b)
	require.Equal(t, []uint8{1, 2, 3}, c.Slice())
}

func TestMovesString(t *testing.T) {
	names := []string{"U", "D", "L"}
	var m puzzle.Moves
	m.Push(0)
	m.Push(2)
	require.Equal(t, "(U L)", puzzle.MovesString(names, m))

	var empty puzzle.Moves
	require.Equal(t, "()", puzzle.MovesString(names, empty))
}

func TestFlagHas(t *testing.T) {
	f := puzzle.FlagSolution | puzzle.FlagOptimum
	require.True(t, f.Has(puzzle.FlagSolution))
	require.True(t, f.Has(puzzle.FlagOptimum))
	require.False(t, f.Has(puzzle.FlagEnd))
}
