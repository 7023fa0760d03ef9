package parallelida

import (
	"log/slog"

	"github.com/katalvlaran/groupsearch/pdb"
	"github.com/katalvlaran/groupsearch/puzzle"
)

type node[S any] struct {
	state S
	hint  uint64
	moves puzzle.Moves
}

func fullMask(nBase uint64) uint64 {
	if nBase >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << nBase) - 1
}

// bfsStage expands the root breadth-first, one depth at a time, until
// either a frontier of at least bfsCount nodes is built, a solution is
// found outright, or the frontier empties (no solution within
// maxMoves). It returns the frontier alongside each node's heuristic
// distance, for the caller's depth-first phase.
func bfsStage[S comparable, C any](
	s puzzle.Solver[S, C], a C, maxMoves, bfsCount uint64,
	symMasker puzzle.SymMasker[S, C], logger *slog.Logger,
) (puzzle.Flag, puzzle.Moves, []node[S], []uint8) {
	stateA := s.CubeToState(a)
	distA, hintA := pdb.GetDistance[S, C](s, stateA)

	var nodes []node[S]
	var dists []uint8
	if distA <= maxMoves {
		nodeA := node[S]{state: stateA, hint: hintA}
		if distA == 0 && s.IsStart(stateA) {
			logger.Info("parallelida: bfs found", "n_moves", 0, "count", 0)
			return puzzle.FlagSolution | puzzle.FlagOptimum, nodeA.moves, nil, nil
		}
		nodes = append(nodes, nodeA)
		dists = append(dists, uint8(distA))
	}
	logger.Info("parallelida: bfs layer complete", "n_moves", 0, "count", len(nodes))
	if len(nodes) == 0 {
		logger.Info("parallelida: bfs end")
		return puzzle.FlagEnd, puzzle.Moves{}, nil, nil
	}

	for nMoves := uint64(1); nMoves <= maxMoves && uint64(len(nodes)) < bfsCount; nMoves++ {
		var nextNodes []node[S]
		var nextDists []uint8
		for _, b := range nodes {
			mask := fullMask(s.NBase())
			if b.moves.N > 0 {
				mask = s.BaseMask()[b.moves.A[b.moves.N-1]]
			}
			if symMasker != nil {
				mask &= symMasker.SymMask(a, b.state, b.hint, b.moves)
			}
			adjB := s.Adj(b.state)
			for i := uint64(0); i < s.NBase(); i++ {
				if (mask>>i)&1 == 0 {
					continue
				}
				stateC := adjB[i]
				distC, hintC := pdb.GetDistanceHint[S, C](s, stateC, b.hint)
				if uint64(b.moves.N)+1+distC > maxMoves {
					continue
				}
				c := node[S]{state: stateC, hint: hintC, moves: b.moves}
				c.moves.Push(uint8(i))
				if distC == 0 && s.IsStart(stateC) {
					logger.Info("parallelida: bfs found", "n_moves", nMoves, "count", len(nodes))
					return puzzle.FlagSolution | puzzle.FlagOptimum, c.moves, nil, nil
				}
				nextNodes = append(nextNodes, c)
				nextDists = append(nextDists, uint8(distC))
			}
		}
		nodes, dists = nextNodes, nextDists
		logger.Info("parallelida: bfs layer complete", "n_moves", nMoves, "count", len(nodes))
		if len(nodes) == 0 {
			logger.Info("parallelida: bfs end")
			return puzzle.FlagEnd, puzzle.Moves{}, nil, nil
		}
	}
	return puzzle.FlagNone, puzzle.Moves{}, nodes, dists
}
