package pdb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groupsearch/internal/refsolve"
	"github.com/katalvlaran/groupsearch/pdb"
)

// graphBFS computes ground-truth distances from state 0 over adj by a
// plain queue-based breadth-first search, independent of
// bitgrid/pdb's atomic-grid forward/backward sweep, so it can serve as
// a cross-check oracle for pdb.Build without sharing any code with it.
func graphBFS(n uint64, adj func(uint64) []uint64) []uint64 {
	const unvisited = ^uint64(0)
	dist := make([]uint64, n)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[0] = 0
	queue := []uint64{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj(u) {
			if dist[v] == unvisited {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// TestBuildMatchesIndependentGraphBFS cross-checks pdb.Build's atomic-grid
// distances against a plain breadth-first search over the same Cayley
// graph, computed by an oracle that shares no code with pdb's own
// forward/backward frontier sweep.
func TestBuildMatchesIndependentGraphBFS(t *testing.T) {
	const n = 23
	s := refsolve.NewCyclic(n)
	_, err := pdb.Build[uint64, int64](s, 2, nil)
	require.NoError(t, err)

	want := graphBFS(n, s.Adj)
	for i := uint64(0); i < n; i++ {
		dist, _ := pdb.GetDistance[uint64, int64](s, i)
		require.Equal(t, want[i], dist, "state %d", i)
	}
}
