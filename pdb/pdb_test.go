package pdb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groupsearch/bitgrid"
	"github.com/katalvlaran/groupsearch/internal/refsolve"
	"github.com/katalvlaran/groupsearch/pdb"
)

func TestBuildCyclicExactDistances(t *testing.T) {
	const n = 37
	s := refsolve.NewCyclic(n)
	stats, err := pdb.Build[uint64, int64](s, 4, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(n), stats.TotalCountDistinct)
	require.Equal(t, uint64(n), stats.TotalCount)

	grid := s.Grid()
	for i := uint64(0); i < n; i++ {
		want := i
		if i > n-i {
			want = n - i
		}
		require.Equal(t, want%3, grid.Get(i), "state %d", i)
		require.NotEqual(t, uint64(bitgrid.Sentinel), grid.Get(i))
	}
}

func TestBuildReflectiveMatchesCyclicDistances(t *testing.T) {
	const n = 41
	cyclic := refsolve.NewCyclic(n)
	_, err := pdb.Build[uint64, int64](cyclic, 3, nil)
	require.NoError(t, err)

	reflective := refsolve.NewReflective(n)
	_, err = pdb.Build[uint64, int64](reflective, 3, nil)
	require.NoError(t, err)

	for i := uint64(0); i < n; i++ {
		require.Equal(t, cyclic.Grid().Get(i), reflective.Grid().Get(i), "state %d", i)
	}
}

func TestGetDistanceCyclic(t *testing.T) {
	const n = 29
	s := refsolve.NewCyclic(n)
	_, err := pdb.Build[uint64, int64](s, 2, nil)
	require.NoError(t, err)

	for i := uint64(0); i < n; i++ {
		want := i
		if i > n-i {
			want = n - i
		}
		dist, hint := pdb.GetDistance[uint64, int64](s, i)
		require.Equal(t, want, dist, "state %d", i)
		require.Equal(t, dist, hint)
	}
}

func TestGetDistanceHintMatchesGetDistance(t *testing.T) {
	const n = 50
	s := refsolve.NewCyclic(n)
	_, err := pdb.Build[uint64, int64](s, 4, nil)
	require.NoError(t, err)

	for i := uint64(0); i < n; i++ {
		neighbor := (i + 1) % n
		dNeighbor, _ := pdb.GetDistance[uint64, int64](s, neighbor)
		dWant, _ := pdb.GetDistance[uint64, int64](s, i)
		dGot, newHint := pdb.GetDistanceHint[uint64, int64](s, i, dNeighbor)
		require.Equal(t, dWant, dGot, "state %d via hint from neighbor %d", i, neighbor)
		require.Equal(t, dGot, newHint)
	}
}

func TestBuildRejectsBadArgs(t *testing.T) {
	s := refsolve.NewCyclic(5)
	_, err := pdb.Build[uint64, int64](nil, 1, nil)
	require.ErrorIs(t, err, pdb.ErrNilSolver)

	_, err = pdb.Build[uint64, int64](s, 0, nil)
	require.ErrorIs(t, err, pdb.ErrBadThreadCount)
}

func TestBuildIsConcurrencyAgnostic(t *testing.T) {
	const n = 97
	results := make([][3]uint64, 0, 3)
	for _, threads := range []int{1, 2, 8} {
		s := refsolve.NewCyclic(n)
		stats, err := pdb.Build[uint64, int64](s, threads, nil)
		require.NoError(t, err)
		results = append(results, [3]uint64{stats.TotalCountDistinct, stats.TotalCount, s.Grid().Get(13)})
	}
	for _, r := range results[1:] {
		require.Equal(t, results[0], r)
	}
}
