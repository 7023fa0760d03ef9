package combine

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/groupsearch/idastar"
	"github.com/katalvlaran/groupsearch/puzzle"
)

const noLimit = ^uint64(0)
const noOptimum = ^uint64(0)

// Search is a resumable two-phase search for one root cube a. The
// zero value is not usable; construct with New.
type Search[S0 comparable, S1 comparable, C any] struct {
	s0       puzzle.Solver[S0, C]
	s1       puzzle.Solver[S1, C]
	a        C
	maxMoves uint64

	lastMoves    uint64
	optimumMoves uint64
	ended        bool
	it0          *idastar.IdaStar[S0, C]
	count        uint64
	totalTime    time.Duration

	logger *slog.Logger
}

// quietLogger discards every record; used for the inner refinement
// searches, which run far too often per outer step to log usefully.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New constructs a Search composing solver0 (coarse phase) and solver1
// (refinement phase) over root cube a, bounded to maxMoves total moves
// (clamped to puzzle.MaxMoves). logger receives one Info line per
// combined solution found and a final summary; nil uses slog.Default().
func New[S0 comparable, S1 comparable, C any](
	s0 puzzle.Solver[S0, C], s1 puzzle.Solver[S1, C], a C, maxMoves uint64, logger *slog.Logger,
) *Search[S0, S1, C] {
	if logger == nil {
		logger = slog.Default()
	}
	if maxMoves > puzzle.MaxMoves {
		maxMoves = puzzle.MaxMoves
	}
	return &Search[S0, S1, C]{
		s0: s0, s1: s1, a: a, maxMoves: maxMoves,
		lastMoves:    noLimit,
		optimumMoves: noOptimum,
		it0:          idastar.New[S0, C](s0, a, maxMoves, 0, quietLogger()),
		logger:       logger,
	}
}

// Next pulls coarse solutions until one yields a combined solution to
// report or the search ends, and returns the outcome. Callers loop
// on Next until the returned Flag has FlagSolution or FlagEnd; every
// FlagSolution has strictly fewer (or equal, for the very first one)
// total moves than the previous one, and the one with FlagOptimum set
// is provably shortest.
func (cs *Search[S0, S1, C]) Next() (puzzle.Flag, puzzle.Moves) {
	t0 := time.Now()
	for {
		if cs.ended {
			cs.logger.Info("combine: end")
			return puzzle.FlagEnd, puzzle.Moves{}
		}

		f0, moves0 := cs.it0.Next()
		switch {
		case f0.Has(puzzle.FlagSolution):
			cs.count++
			b := cs.s0.Multiply(cs.a, cubeOfMoves[S0, C](cs.s0, moves0))

			limit := cs.maxMoves
			if cs.lastMoves < limit {
				limit = cs.lastMoves
			}
			it1 := idastar.New[S1, C](cs.s1, b, limit-uint64(moves0.N), 0, quietLogger())
			var f1 puzzle.Flag
			var moves1 puzzle.Moves
			for {
				f1, moves1 = it1.Next()
				if f1.Has(puzzle.FlagOptimum) || f1.Has(puzzle.FlagEnd) {
					break
				}
			}

			if f1.Has(puzzle.FlagOptimum) && (moves1.N == 0 || cs.lastMoves > uint64(moves0.N)+uint64(moves1.N)) {
				cs.totalTime += time.Since(t0)
				if moves1.N == 0 {
					cs.lastMoves = uint64(moves0.N)
					cs.optimumMoves = cs.lastMoves
					cs.ended = true
				} else {
					cs.lastMoves = uint64(moves0.N) + uint64(moves1.N)
				}
				f := puzzle.FlagSolution
				if cs.lastMoves == cs.optimumMoves {
					f |= puzzle.FlagOptimum
				}
				combined := combineMoves[S0, S1, C](cs.s0, cs.s1, moves0, moves1)
				cs.logger.Info("combine: found",
					"n_moves0", moves0.N, "n_moves1", moves1.N, "count", cs.count, "total_time", cs.totalTime)
				return f, combined
			}
			// This coarse solution didn't improve on the best combined
			// length found so far; keep pulling from solver0.
		case f0.Has(puzzle.FlagEnd):
			cs.totalTime += time.Since(t0)
			cs.ended = true
			cs.logger.Info("combine: complete", "count", cs.count, "total_time", cs.totalTime)
		}
	}
}

// cubeOfMoves folds a Moves sequence back into the single cube
// identity * base[moves[0]] * base[moves[1]] * ...
func cubeOfMoves[S comparable, C any](s puzzle.Solver[S, C], moves puzzle.Moves) C {
	c := s.Identity()
	base := s.Base()
	for _, m := range moves.Slice() {
		c = s.Multiply(c, base[m])
	}
	return c
}

// combineMoves concatenates moves0 and moves1, remapping each
// solver's local move indices into the shared super-space via
// BaseIndex.
func combineMoves[S0, S1 comparable, C any](s0 puzzle.Solver[S0, C], s1 puzzle.Solver[S1, C], moves0, moves1 puzzle.Moves) puzzle.Moves {
	var out puzzle.Moves
	idx0, idx1 := s0.BaseIndex(), s1.BaseIndex()
	for _, m := range moves0.Slice() {
		out.Push(uint8(idx0[m]))
	}
	for _, m := range moves1.Slice() {
		out.Push(uint8(idx1[m]))
	}
	return out
}
