// Package refsolve provides small, exhaustively-checkable reference
// solvers implementing puzzle.Solver[uint64, int64], used only by this
// module's own test suites to exercise bitgrid/pdb/idastar/schedule/
// parallelida/combine end-to-end. None of it is puzzle-specific
// business logic; it exists purely as ground truth.
//
// Cyclic is the cyclic group Z_n with generators {+1, -1} and trivial
// (singleton) symmetry orbits — the simplest possible non-trivial
// Cayley graph, a cycle of length n.
//
// Reflective is the same Cayley graph, but with its symmetry orbit
// exposed: the cycle's automorphism group is the dihedral group D_n,
// and reflection x -> (n-x) mod n is an automorphism that fixes the
// identity and maps the generator set {+1,-1} onto itself. Reflective
// collapses each state and its mirror into one symmetry orbit, giving
// pdb.Build orbits of size up to 2 to exercise setMulti's at-most-once
// semantics.
//
// Parity and EvenCyclic together form a two-phase pair for exercising
// combine.CombineSearch: Parity is a coarse projection of Z_n onto
// {even, odd} (phase 0 — "drive into the even subgroup"), and
// EvenCyclic is the index-2 even subgroup of Z_n, relabeled as its own
// cyclic group of order n/2 with generators {+2, -2} (phase 1 —
// "solve exactly once inside the subgroup"). Both share the same cube
// type (int64, an offset in Z_n) so combine.CombineSearch can fold a
// phase-0 solution into a phase-1 starting cube.
package refsolve
