// Package groupsearch is a generic group-element search engine for
// combinatorial puzzles: build a pattern database over a Cayley graph
// once, then stream shortest solutions from it.
//
// A Cayley graph is defined entirely by the caller through the
// puzzle.Solver contract: a comparable State type, a set of generator
// moves (Base), and how to apply them (Adj). Nothing in this module
// knows about any particular puzzle.
//
// Packages:
//
//	bitgrid      — lock-free 2-bit-per-cell array (distance mod 3, atomic CAS)
//	pdb          — builds the pattern database via forward/backward BFS sweeps,
//	               and recovers exact distances from it (cold or hinted)
//	idastar      — single-threaded iterative-deepening search, streaming
//	               successively shorter solutions and proving optimality
//	schedule     — partitions a DFS frontier across worker goroutines
//	parallelida  — BFS frontier + per-layer parallel bounded DFS
//	combine      — two-phase coarse-then-refine search composition
//	puzzle       — the Solver contract, Moves, and result Flag bits
//
// Typical use:
//
//	stats, err := pdb.Build[State, Cube](solver, runtime.NumCPU(), nil)
//	it := idastar.New[State, Cube](solver, root, puzzle.MaxMoves, 0, nil)
//	for {
//		flag, moves := it.Next()
//		if flag.Has(puzzle.FlagSolution) {
//			// moves solves root in moves.N generator applications
//		}
//		if flag.Has(puzzle.FlagEnd) {
//			break
//		}
//	}
package groupsearch
