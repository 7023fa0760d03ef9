// Package parallelida implements parallel Iterative Deepening A*: a
// shallow, single-threaded breadth-first expansion builds a frontier
// of at least BFSCount nodes (or finds the solution outright, or
// proves there is none within MaxMoves), then each successive search
// depth bounds a bounded depth-first search rooted at every frontier
// node that could still reach the identity within that bound, spread
// across nThread worker goroutines by a schedule.Policy.
//
// Every worker shares one xsync.Stop: the instant any worker proves a
// solution at the current depth, every sibling worker abandons its
// remaining assigned roots. Because depths are tried in increasing
// order and a full depth is always exhausted (or short-circuited by a
// find) before the next begins, the first solution found is provably
// optimal.
package parallelida
