package combine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groupsearch/combine"
	"github.com/katalvlaran/groupsearch/internal/refsolve"
	"github.com/katalvlaran/groupsearch/pdb"
	"github.com/katalvlaran/groupsearch/puzzle"
)

func runToOptimum[S0, S1 comparable, C any](cs *combine.Search[S0, S1, C]) (puzzle.Flag, puzzle.Moves) {
	for {
		f, moves := cs.Next()
		if f.Has(puzzle.FlagEnd) {
			return f, moves
		}
		if f.Has(puzzle.FlagSolution) && f.Has(puzzle.FlagOptimum) {
			return f, moves
		}
	}
}

func TestCombineFindsOptimalTotal(t *testing.T) {
	const n = 40
	parity := refsolve.NewParity(n)
	_, err := pdb.Build[uint64, int64](parity, 1, nil)
	require.NoError(t, err)
	evenCyclic := refsolve.NewEvenCyclic(n)
	_, err = pdb.Build[uint64, int64](evenCyclic, 2, nil)
	require.NoError(t, err)

	// super-space move table shared by both phases, matching their
	// BaseIndex mappings: [0]=+1 [1]=-1 (phase0), [2]=+2 [3]=-2 (phase1).
	superBase := []int64{1, int64(n) - 1, 2, int64(n) - 2}
	modN := func(x int64) int64 {
		x %= int64(n)
		if x < 0 {
			x += int64(n)
		}
		return x
	}

	for a := int64(0); a < n; a += 3 {
		cs := combine.New[uint64, uint64, int64](parity, evenCyclic, a, puzzle.MaxMoves, nil)
		f, moves := runToOptimum(cs)
		require.True(t, f.Has(puzzle.FlagSolution), "cube %d", a)
		require.True(t, f.Has(puzzle.FlagOptimum), "cube %d", a)

		b := a
		for _, m := range moves.Slice() {
			b = modN(b + superBase[m])
		}
		require.Equal(t, int64(0), b, "combined moves do not reach identity for cube %d", a)
	}
}

func TestCombineIdentityRootSolvesImmediately(t *testing.T) {
	const n = 20
	parity := refsolve.NewParity(n)
	_, err := pdb.Build[uint64, int64](parity, 1, nil)
	require.NoError(t, err)
	evenCyclic := refsolve.NewEvenCyclic(n)
	_, err = pdb.Build[uint64, int64](evenCyclic, 1, nil)
	require.NoError(t, err)

	cs := combine.New[uint64, uint64, int64](parity, evenCyclic, int64(0), puzzle.MaxMoves, nil)
	f, moves := runToOptimum(cs)
	require.True(t, f.Has(puzzle.FlagSolution|puzzle.FlagOptimum))
	require.Equal(t, uint8(0), moves.N)
}
