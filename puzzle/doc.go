// Package puzzle defines the solver contract that the search engine in
// bitgrid/pdb/idastar/schedule/parallelida/combine is built against, plus
// the small shared value types every one of those packages exchanges:
// bounded move sequences (Moves) and the result Flag bits.
//
// The concrete puzzle algebra — group element multiplication, adjacency
// enumeration, symmetry orbits, move-pruning masks — is supplied by the
// caller through Solver. Nothing in this module knows what a "cube" or
// a "move" actually is; it only knows how to ask a Solver.
package puzzle
