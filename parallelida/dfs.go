package parallelida

import (
	"github.com/katalvlaran/groupsearch/internal/xsync"
	"github.com/katalvlaran/groupsearch/pdb"
	"github.com/katalvlaran/groupsearch/puzzle"
)

// dfsOne runs a single bounded depth-first search rooted at root, down
// to exactly nMoves moves, polling stop between every expanded node.
func dfsOne[S comparable, C any](s puzzle.Solver[S, C], root node[S], nMoves uint64, stop *xsync.Stop) (uint64, puzzle.Flag, puzzle.Moves) {
	stack := []node[S]{root}
	var count uint64
	for !stop.Requested() && len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if uint64(b.moves.N) == nMoves {
			if s.IsStart(b.state) {
				stop.Set()
				return count, puzzle.FlagSolution | puzzle.FlagOptimum, b.moves
			}
			continue
		}

		mask := fullMask(s.NBase())
		if b.moves.N > 0 {
			mask = s.BaseMask()[b.moves.A[b.moves.N-1]]
		}
		adjB := s.Adj(b.state)
		nBase := int64(s.NBase())
		for i := nBase - 1; i >= 0; i-- {
			if (mask>>uint(i))&1 == 0 {
				continue
			}
			stateC := adjB[i]
			distC, hintC := pdb.GetDistanceHint[S, C](s, stateC, b.hint)
			if uint64(b.moves.N)+1+distC <= nMoves {
				c := node[S]{state: stateC, hint: hintC, moves: b.moves}
				c.moves.Push(uint8(i))
				stack = append(stack, c)
			}
		}
	}
	return count, puzzle.FlagNone, puzzle.Moves{}
}

// dfsMulti runs dfsOne over every task this thread owns, in order,
// stopping as soon as one task finds a solution or stop is set by a
// sibling thread.
func dfsMulti[S comparable, C any](s puzzle.Solver[S, C], nodes []node[S], nMoves uint64, taskIDs []uint64, count []uint64, stop *xsync.Stop) (puzzle.Flag, puzzle.Moves) {
	for _, j := range taskIDs {
		if stop.Requested() {
			break
		}
		c, f, moves := dfsOne(s, nodes[j], nMoves, stop)
		count[j] = c
		if f.Has(puzzle.FlagSolution) {
			return f, moves
		}
	}
	return puzzle.FlagNone, puzzle.Moves{}
}

// runLayer fans dfsMulti out across nThread goroutines, one per
// schedule slice, sharing a single xsync.Stop.
func runLayer[S comparable, C any](s puzzle.Solver[S, C], nodes []node[S], nThread, nMoves uint64, tasks, split, count []uint64) (puzzle.Flag, puzzle.Moves) {
	for i := range count {
		count[i] = 0
	}
	results := make([]puzzle.Flag, nThread)
	movesOut := make([]puzzle.Moves, nThread)
	var stop xsync.Stop
	xsync.FanOut(nThread, func(t uint64) {
		lo, hi := split[t], split[t+1]
		f, m := dfsMulti(s, nodes, nMoves, tasks[lo:hi], count, &stop)
		results[t] = f
		movesOut[t] = m
	})
	for t := uint64(0); t < nThread; t++ {
		if results[t].Has(puzzle.FlagSolution) {
			return results[t], movesOut[t]
		}
	}
	return puzzle.FlagNone, puzzle.Moves{}
}
