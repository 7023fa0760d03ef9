package idastar

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/groupsearch/pdb"
	"github.com/katalvlaran/groupsearch/puzzle"
)

// noOptimum marks "no solution found yet" for optimumMoves.
const noOptimum = ^uint64(0)

type node[S any] struct {
	state S
	hint  uint64
	moves puzzle.Moves
}

// IdaStar is a resumable single-threaded IDA* search for one root
// cube. The zero value is not usable; construct with New.
type IdaStar[S comparable, C any] struct {
	s            puzzle.Solver[S, C]
	symMasker    puzzle.SymMasker[S, C]
	a            C
	maxMoves     uint64
	symMaskMoves uint64

	nMoves       uint64
	optimumMoves uint64
	ended        bool
	nodeA        node[S]
	stack        []node[S]
	count        []uint64

	layerStart time.Time
	totalTime  time.Duration

	logger *slog.Logger
}

// New constructs an IdaStar searching for a's identity, up to maxMoves
// moves (clamped to puzzle.MaxMoves). symMaskMoves is the move count
// below which the solver's optional SymMasker (if implemented)
// additionally restricts legal moves; pass 0 to disable it. logger
// receives one Info line per exhausted layer and per solution found;
// nil uses slog.Default().
func New[S comparable, C any](s puzzle.Solver[S, C], a C, maxMoves, symMaskMoves uint64, logger *slog.Logger) *IdaStar[S, C] {
	if logger == nil {
		logger = slog.Default()
	}
	if maxMoves > puzzle.MaxMoves {
		maxMoves = puzzle.MaxMoves
	}

	stateA := s.CubeToState(a)
	distA, hintA := pdb.GetDistance[S, C](s, stateA)
	nMoves := distA
	if nMoves > maxMoves {
		nMoves = maxMoves
	}
	nodeA := node[S]{state: stateA, hint: hintA}

	it := &IdaStar[S, C]{
		s:            s,
		a:            a,
		maxMoves:     maxMoves,
		symMaskMoves: symMaskMoves,
		nMoves:       nMoves,
		optimumMoves: noOptimum,
		nodeA:        nodeA,
		stack:        []node[S]{nodeA},
		count:        make([]uint64, nMoves+1),
		logger:       logger,
	}
	it.layerStart = time.Now()
	if sm, ok := s.(puzzle.SymMasker[S, C]); ok {
		it.symMasker = sm
	}
	return it
}

// Next runs the search — as many stack pops and bound increases as it
// takes — until it has an outcome to report, and returns it. Callers
// loop on Next until the returned Flag has FlagSolution or FlagEnd
// set. The first solution reported also has FlagOptimum set, proving
// no shorter solution exists.
func (it *IdaStar[S, C]) Next() (puzzle.Flag, puzzle.Moves) {
	for {
		if it.ended {
			it.logger.Info("idastar: end")
			return puzzle.FlagEnd, puzzle.Moves{}
		}

		if len(it.stack) == 0 {
			elapsed := time.Since(it.layerStart)
			it.totalTime += elapsed
			it.logger.Info("idastar: layer complete",
				"n_moves", it.nMoves, "total_count", sumCount(it.count),
				"layer_time", elapsed, "total_time", it.totalTime)
			if it.nMoves == it.maxMoves {
				it.ended = true
				continue
			}
			it.nMoves++
			it.stack = append(it.stack, it.nodeA)
			it.count = make([]uint64, it.nMoves+1)
			it.layerStart = time.Now()
			if it.optimumMoves != noOptimum {
				// Optimum already proven; yield FlagNone once per deeper
				// layer so the caller can stop here. A further call searches
				// that deeper bound, and any solution found there is
				// reported without FlagOptimum.
				return puzzle.FlagNone, puzzle.Moves{}
			}
			continue
		}

		b := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		it.count[b.moves.N]++

		if uint64(b.moves.N) == it.nMoves {
			if it.s.IsStart(b.state) {
				elapsed := time.Since(it.layerStart)
				it.layerStart = time.Now()
				it.totalTime += elapsed
				it.logger.Info("idastar: found",
					"n_moves", it.nMoves, "total_count", sumCount(it.count),
					"layer_time", elapsed, "total_time", it.totalTime)
				if it.optimumMoves == noOptimum {
					it.optimumMoves = uint64(b.moves.N)
				}
				f := puzzle.FlagSolution
				if uint64(b.moves.N) == it.optimumMoves {
					f |= puzzle.FlagOptimum
				}
				return f, b.moves
			}
			continue
		}

		mask := fullMask(it.s.NBase())
		if b.moves.N > 0 {
			mask = it.s.BaseMask()[b.moves.A[b.moves.N-1]]
		}
		if it.symMasker != nil && uint64(b.moves.N) < it.symMaskMoves {
			mask &= it.symMasker.SymMask(it.a, b.state, b.hint, b.moves)
		}

		adjB := it.s.Adj(b.state)
		nBase := int64(it.s.NBase())
		for i := nBase - 1; i >= 0; i-- {
			if (mask>>uint(i))&1 == 0 {
				continue
			}
			stateC := adjB[i]
			distC, hintC := pdb.GetDistanceHint[S, C](it.s, stateC, b.hint)
			if uint64(b.moves.N)+1+distC <= it.nMoves {
				c := node[S]{state: stateC, hint: hintC, moves: b.moves}
				c.moves.Push(uint8(i))
				it.stack = append(it.stack, c)
			}
		}
	}
}

func sumCount(count []uint64) uint64 {
	var total uint64
	for _, c := range count {
		total += c
	}
	return total
}

func fullMask(nBase uint64) uint64 {
	if nBase >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << nBase) - 1
}
