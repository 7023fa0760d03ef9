package pdb

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/groupsearch/bitgrid"
	"github.com/katalvlaran/groupsearch/internal/xsync"
	"github.com/katalvlaran/groupsearch/puzzle"
)

// residueMask picks out the low bit of every 2-bit cell.
const residueMask = 0x5555555555555555

// wordHasValue reports whether any of the 32 cells packed into word
// equals v (v in 0..3). v*residueMask replicates v's 2-bit pattern
// into every cell without carrying into neighboring cells, since
// residueMask's set bits are 2 apart and v occupies at most 2 low
// bits. XORing that against word zeroes exactly the matching cells;
// ORing each cell with its own right shift and masking to the low bit
// yields 0 only for cells that were zeroed, i.e. that matched v.
func wordHasValue(word, v uint64) bool {
	diff := word ^ (v * residueMask)
	allNonzero := (diff | (diff >> 1)) & residueMask
	return allNonzero != residueMask
}

// LayerStat records one completed BFS depth layer.
type LayerStat struct {
	Depth         uint64
	CountDistinct uint64
	Count         uint64
	Forward       bool
	Elapsed       time.Duration
}

// Stats summarizes a completed Build call.
type Stats struct {
	Depths             []LayerStat
	TotalCountDistinct uint64
	TotalCount         uint64
	TotalTime          time.Duration
}

// Build fills solver.Grid() with D[i] = distance(i) mod 3 for every
// state reachable from solver's start states, using nThread worker
// goroutines per layer. It must be called at most once per grid: it
// begins by overwriting the whole grid with bitgrid.Sentinel.
//
// logger receives one Info line per completed depth layer plus a final
// summary line; pass nil to use slog.Default().
func Build[S comparable, C any](s puzzle.Solver[S, C], nThread int, logger *slog.Logger) (Stats, error) {
	if s == nil {
		return Stats{}, ErrNilSolver
	}
	if nThread <= 0 {
		return Stats{}, ErrBadThreadCount
	}
	grid := s.Grid()
	n := s.NState()
	if grid == nil || grid.Size() != n {
		return Stats{}, ErrGridSizeMismatch
	}
	if logger == nil {
		logger = slog.Default()
	}

	t0 := time.Now()
	grid.Fill(bitgrid.Sentinel)
	bounds := xsync.SplitWords(n, uint64(nThread))

	start := s.CubeToState(s.Identity())
	iStart := s.StateToInt(start)
	countStart := setMulti(s, s.Alt(start, iStart), bitgrid.Sentinel, 0)
	if countStart == 0 {
		panic("pdb: identity state already occupied on a freshly filled grid")
	}

	var stats Stats
	stats.Depths = append(stats.Depths, LayerStat{Depth: 0, CountDistinct: 1, Count: countStart})
	totalDistinct := uint64(1)
	totalCount := countStart
	var countM3 [3]uint64
	countM3[0] = countStart

	for depth := uint64(1); totalCount != n; depth++ {
		layerStart := time.Now()
		p := (depth - 1) % 3
		q := depth % 3
		forward := countM3[p] <= n-totalCount

		results := make([][2]uint64, nThread)
		xsync.FanOut(uint64(nThread), func(t uint64) {
			lo, hi := bounds[t], bounds[t+1]
			var d, c uint64
			if forward {
				d, c = forwardScan(s, lo, hi, p, q)
			} else {
				d, c = backwardScan(s, lo, hi, p, q)
			}
			results[t] = [2]uint64{d, c}
		})

		var distinct, count uint64
		for _, r := range results {
			distinct += r[0]
			count += r[1]
		}
		if count == 0 {
			panic(fmt.Sprintf("pdb: depth %d found no new states but %d of %d remain unvisited; Adj/Alt is likely disconnected or inconsistent", depth, n-totalCount, n))
		}

		totalDistinct += distinct
		totalCount += count
		countM3[depth%3] += count
		elapsed := time.Since(layerStart)

		stats.Depths = append(stats.Depths, LayerStat{
			Depth: depth, CountDistinct: distinct, Count: count, Forward: forward, Elapsed: elapsed,
		})
		logger.Info("pdb: layer complete",
			"depth", depth, "count_distinct", distinct, "count", count,
			"forward", forward, "remaining", n-totalCount, "elapsed", elapsed)
	}

	stats.TotalCountDistinct = totalDistinct
	stats.TotalCount = totalCount
	stats.TotalTime = time.Since(t0)
	logger.Info("pdb: build complete",
		"total_count_distinct", stats.TotalCountDistinct,
		"total_count", stats.TotalCount,
		"elapsed", stats.TotalTime)
	return stats, nil
}

// setMulti attempts to transition every index in orbit from old to
// new. It CAS's orbit[0] first; if that fails (another goroutine
// already claimed the orbit) it returns 0 without touching the rest.
// If it succeeds, every remaining index in the orbit is expected to
// still hold old, since orbits are disjoint and only ever discovered
// once a shared neighbor reaches them. It returns len(orbit) on
// success, 0 on contention.
func setMulti[S comparable, C any](s puzzle.Solver[S, C], orbit []uint64, old, new uint64) uint64 {
	if len(orbit) == 0 {
		panic("pdb: Alt returned an empty symmetry orbit")
	}
	g := s.Grid()
	if !g.CAS(orbit[0], old, new) {
		return 0
	}
	for _, idx := range orbit[1:] {
		if !g.CAS(idx, old, new) {
			panic("pdb: symmetry orbit is not disjoint from another orbit (Alt is inconsistent)")
		}
	}
	return uint64(len(orbit))
}

// forwardScan scans the previous layer (residue p) within [lo, hi) and
// expands each of its states' unvisited neighbors into the current
// layer (residue q). Appropriate when the previous layer is small
// relative to the remaining unvisited set.
func forwardScan[S comparable, C any](s puzzle.Solver[S, C], lo, hi, p, q uint64) (distinct, count uint64) {
	grid := s.Grid()
	for wordStart := lo; wordStart < hi; wordStart += 32 {
		word := grid.LoadWord(wordStart / 32)
		if !wordHasValue(word, p) {
			continue
		}
		end := min(wordStart+32, hi)
		for i := wordStart; i < end; i++ {
			if grid.Get(i) != p {
				continue
			}
			a := s.IntToState(i)
			for _, b := range s.Adj(a) {
				j := s.StateToInt(b)
				if grid.Get(j) != bitgrid.Sentinel {
					continue
				}
				orbit := s.Alt(b, j)
				if c := setMulti(s, orbit, bitgrid.Sentinel, q); c > 0 {
					distinct++
					count += c
				}
			}
		}
	}
	return distinct, count
}

// backwardScan scans the unvisited cells (Sentinel) within [lo, hi)
// and tests whether any of their neighbors belongs to the previous
// layer (residue p); if so the cell joins the current layer (residue
// q). Appropriate once the previous layer has grown larger than the
// remaining unvisited set, since it is cheaper to scan the (smaller)
// unvisited remainder than the (larger) frontier.
func backwardScan[S comparable, C any](s puzzle.Solver[S, C], lo, hi, p, q uint64) (distinct, count uint64) {
	grid := s.Grid()
	for wordStart := lo; wordStart < hi; wordStart += 32 {
		word := grid.LoadWord(wordStart / 32)
		if !wordHasValue(word, bitgrid.Sentinel) {
			continue
		}
		end := min(wordStart+32, hi)
		for i := wordStart; i < end; i++ {
			if grid.Get(i) != bitgrid.Sentinel {
				continue
			}
			a := s.IntToState(i)
			for _, b := range s.Adj(a) {
				j := s.StateToInt(b)
				if grid.Get(j) != p {
					continue
				}
				orbit := s.Alt(a, i)
				if c := setMulti(s, orbit, bitgrid.Sentinel, q); c > 0 {
					distinct++
					count += c
				}
				break
			}
		}
	}
	return distinct, count
}
