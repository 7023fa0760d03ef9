// Package pdb builds and queries the pattern database: the residue
// grid D with D[i] = distance(i) mod 3 for every reachable state i,
// computed by a parallel, cache-efficient breadth-first sweep over the
// solver's Cayley graph (BfsEngine, here the Build function), and
// recovered into an exact distance by DistanceOracle (GetDistance /
// GetDistanceHint).
//
// Build performs an alternating forward/backward frontier sweep: when
// the previous layer is smaller than the remaining unvisited set it
// scans the frontier and expands outward ("forward"); once the
// frontier outgrows the unvisited remainder it is cheaper to scan the
// unvisited cells and test whether any neighbor already belongs to the
// previous layer ("backward"). Both scans use a 32-cell-per-word
// bit-trick to skip words that cannot possibly contain a cell of
// interest, and both route every newly-discovered state through its
// full symmetry orbit (Solver.Alt) so the whole orbit is credited (and
// CAS'd) exactly once.
package pdb
