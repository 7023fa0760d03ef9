package pdb

import (
	"fmt"

	"github.com/katalvlaran/groupsearch/puzzle"
)

// GetDistance recovers the exact distance of state a from a built
// pattern database grid by walking downhill one step at a time: at
// each state it looks for a neighbor whose residue is one less (mod
// 3) than the current state's, until it reaches a start state. It
// returns the distance and a hint suitable for a later
// GetDistanceHint call on a state known to be near a.
//
// It panics if the walk gets stuck, which only happens if the grid
// was not built by Build for this solver or Adj/IsStart are
// inconsistent with it.
func GetDistance[S comparable, C any](s puzzle.Solver[S, C], a S) (dist uint64, hint uint64) {
	grid := s.Grid()
	b := a
	i := s.StateToInt(b)
	var depth uint64
	for !s.IsStart(b) {
		want := (grid.Get(i) + 2) % 3 // residue one step closer to the start
		next, found := stepDownhill(s, b, want)
		if !found {
			panic(fmt.Sprintf("pdb: GetDistance stuck at state with residue %d; grid was not built for this solver", grid.Get(i)))
		}
		b = next
		i = s.StateToInt(b)
		depth++
	}
	return depth, depth
}

func stepDownhill[S comparable, C any](s puzzle.Solver[S, C], b S, want uint64) (S, bool) {
	grid := s.Grid()
	for _, c := range s.Adj(b) {
		if grid.Get(s.StateToInt(c)) == want {
			return c, true
		}
	}
	var zero S
	return zero, false
}

// GetDistanceHint recovers the exact distance of state a in O(1) given
// a hint: a previously computed exact distance of a state known to be
// within 1 move of a (for example, a's predecessor along a search
// path). It returns the recovered distance and that same value as the
// next hint.
//
// It panics if no distance within {hint-1, hint, hint+1} is congruent
// to a's residue, which means hint was not actually adjacent to a.
func GetDistanceHint[S comparable, C any](s puzzle.Solver[S, C], a S, hint uint64) (dist uint64, newHint uint64) {
	residue := s.Grid().Get(s.StateToInt(a))
	d := resolveResidue(residue, hint)
	return d, d
}

// resolveResidue picks the unique d in {hint-1, hint, hint+1} (clamped
// to d >= 0) with d mod 3 == residue. Exactly one such d exists when
// hint is a genuine distance of a neighboring state.
func resolveResidue(residue, hint uint64) uint64 {
	for _, delta := range [3]int64{0, -1, 1} {
		d := int64(hint) + delta
		if d < 0 {
			continue
		}
		if uint64(d)%3 == residue {
			return uint64(d)
		}
	}
	panic(fmt.Sprintf("pdb: GetDistanceHint: no distance near hint %d has residue %d", hint, residue))
}
