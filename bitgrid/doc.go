// Package bitgrid implements AtomicTwoBitGrid: a fixed-size array of
// 2-bit cells packed 32-to-a-word, with lock-free single-cell get/CAS
// and a bulk, non-atomic fill.
//
// The grid exists to hold a "distance mod 3" pattern database: one of
// four values {0,1,2,3} per reachable state, where 3 is the "unvisited"
// sentinel. Packing two bits per cell instead of a byte or word quarters
// the memory footprint of what is otherwise the single largest
// allocation in the search engine.
//
// Per-cell transitions are linearizable (a cell observably changes from
// 3 to a real distance at most once) via compare-and-swap on the whole
// 64-bit word that contains it; other cells sharing that word are
// preserved byte-accurately across the swap. Fill is not synchronized
// with concurrent readers and must complete before any goroutine calls
// Get or CAS on the same Grid.
package bitgrid
