package bitgrid_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groupsearch/bitgrid"
)

func TestFillAndGet(t *testing.T) {
	g := bitgrid.New(100)
	g.Fill(bitgrid.Sentinel)
	for i := uint64(0); i < g.Size(); i++ {
		require.Equal(t, uint64(bitgrid.Sentinel), g.Get(i), "cell %d", i)
	}
}

func TestCASTransitionsOnce(t *testing.T) {
	g := bitgrid.New(64)
	g.Fill(bitgrid.Sentinel)

	require.True(t, g.CAS(10, bitgrid.Sentinel, 1))
	require.Equal(t, uint64(1), g.Get(10))

	// Second CAS from the stale old value must fail.
	require.False(t, g.CAS(10, bitgrid.Sentinel, 2))
	require.Equal(t, uint64(1), g.Get(10))
}

func TestCASPreservesNeighboringCells(t *testing.T) {
	g := bitgrid.New(32)
	g.Fill(bitgrid.Sentinel)

	require.True(t, g.CAS(0, bitgrid.Sentinel, 0))
	require.True(t, g.CAS(1, bitgrid.Sentinel, 2))
	require.True(t, g.CAS(31, bitgrid.Sentinel, 1))

	require.Equal(t, uint64(0), g.Get(0))
	require.Equal(t, uint64(2), g.Get(1))
	require.Equal(t, uint64(1), g.Get(31))
	for i := uint64(2); i < 31; i++ {
		require.Equal(t, uint64(bitgrid.Sentinel), g.Get(i))
	}
}

// TestCASConcurrentExactlyOnce exercises the at-most-once CAS contract
// under real goroutine contention on a single word.
func TestCASConcurrentExactlyOnce(t *testing.T) {
	g := bitgrid.New(32)
	g.Fill(bitgrid.Sentinel)

	const attempts = 200
	var wins sync.WaitGroup
	var winCount int
	var mu sync.Mutex
	wins.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wins.Done()
			if g.CAS(5, bitgrid.Sentinel, 1) {
				mu.Lock()
				winCount++
				mu.Unlock()
			}
		}()
	}
	wins.Wait()
	require.Equal(t, 1, winCount, "exactly one CAS should transition the cell")
	require.Equal(t, uint64(1), g.Get(5))
}

func TestLoadWordMatchesNumWords(t *testing.T) {
	g := bitgrid.New(65)
	require.Equal(t, uint64(3), g.NumWords())
	g.Fill(1)
	for w := uint64(0); w < g.NumWords(); w++ {
		word := g.LoadWord(w)
		for k := uint(0); k < 32; k++ {
			require.Equal(t, uint64(1), (word>>(k*2))&0x3)
		}
	}
}
