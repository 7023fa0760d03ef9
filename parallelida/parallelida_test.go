package parallelida_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groupsearch/internal/refsolve"
	"github.com/katalvlaran/groupsearch/parallelida"
	"github.com/katalvlaran/groupsearch/pdb"
	"github.com/katalvlaran/groupsearch/puzzle"
	"github.com/katalvlaran/groupsearch/schedule"
)

func applyMoves(s *refsolve.Cyclic, a int64, moves puzzle.Moves) int64 {
	b := a
	for _, m := range moves.Slice() {
		b = s.Multiply(b, s.Base()[m])
	}
	return b
}

func TestRunFindsOptimalAcrossPolicies(t *testing.T) {
	const n = 31
	s := refsolve.NewCyclic(n)
	_, err := pdb.Build[uint64, int64](s, 3, nil)
	require.NoError(t, err)

	for _, policy := range []schedule.Policy{schedule.Simple{}, schedule.Linear{}, schedule.Best{}} {
		for a := int64(0); a < n; a += 5 {
			cfg := parallelida.Config{NThread: 4, MaxMoves: puzzle.MaxMoves, BFSCount: 4, Policy: policy}
			f, moves := parallelida.Run[uint64, int64](s, a, cfg)
			require.True(t, f.Has(puzzle.FlagSolution), "policy %s cube %d", policy.Name(), a)
			require.True(t, f.Has(puzzle.FlagOptimum), "policy %s cube %d", policy.Name(), a)

			want := uint64(a)
			if uint64(a) > n-uint64(a) {
				want = n - uint64(a)
			}
			require.Equal(t, uint8(want), moves.N, "policy %s cube %d", policy.Name(), a)
			require.True(t, s.IsStart(s.CubeToState(applyMoves(s, a, moves))))
		}
	}
}

func TestRunEndsWhenUnreachableWithinBound(t *testing.T) {
	const n = 13
	s := refsolve.NewCyclic(n)
	_, err := pdb.Build[uint64, int64](s, 2, nil)
	require.NoError(t, err)

	cfg := parallelida.Config{NThread: 2, MaxMoves: 2, BFSCount: 2}
	f, _ := parallelida.Run[uint64, int64](s, int64(6), cfg) // true distance min(6,7)=6 > 2
	require.True(t, f.Has(puzzle.FlagEnd))
	require.False(t, f.Has(puzzle.FlagSolution))
}

func TestRunHandlesIdentityRoot(t *testing.T) {
	const n = 17
	s := refsolve.NewCyclic(n)
	_, err := pdb.Build[uint64, int64](s, 1, nil)
	require.NoError(t, err)

	cfg := parallelida.Config{NThread: 3, MaxMoves: puzzle.MaxMoves, BFSCount: 4}
	f, moves := parallelida.Run[uint64, int64](s, int64(0), cfg)
	require.True(t, f.Has(puzzle.FlagSolution|puzzle.FlagOptimum))
	require.Equal(t, uint8(0), moves.N)
}
