// Package idastar implements single-threaded Iterative Deepening A*
// over a puzzle.Solver, guided by the pattern database's distance
// oracle as an admissible heuristic. IdaStar is resumable: each call
// to Next continues the search where the previous call left off, runs
// until it has a solution to report, reaches the end, or (once an
// optimum is known) starts a deeper bound, and returns a puzzle.Flag
// describing what happened. Callers loop on Next until it reports
// FlagSolution or FlagEnd.
//
// The bound starts at the heuristic distance of the root and
// increases by one each time a full layer is exhausted without
// finding the identity; the first solution found at the smallest
// bound is therefore provably optimal, reported as
// FlagSolution|FlagOptimum.
package idastar
