// Package xsync holds the small concurrency primitives shared by pdb
// and parallelida: word-aligned range partitioning (so per-goroutine
// shares of a bitgrid.Grid never split a 64-bit word across two
// workers) and a stoppable fan-out over golang.org/x/sync/errgroup
// that lets any worker signal every other worker to stop early once it
// finds what it was looking for.
package xsync
