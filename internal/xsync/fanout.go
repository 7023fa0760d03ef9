package xsync

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Stop is a shared flag workers poll to abandon remaining work once
// any one of them decides the fan-out is done (found a solution,
// proved an optimum). Safe for concurrent use.
type Stop struct {
	flag atomic.Bool
}

// Set requests that every worker sharing this Stop return as soon as
// convenient.
func (s *Stop) Set() { s.flag.Store(true) }

// Requested reports whether Set has been called.
func (s *Stop) Requested() bool { return s.flag.Load() }

// FanOut runs fn(i) for every i in [0, n), each on its own goroutine,
// and waits for all of them to return. fn is expected to capture a
// *Stop and poll Requested() itself if it wants to exit early;
// FanOut imposes no cancellation policy beyond "wait for everyone."
func FanOut(n uint64, fn func(i uint64)) {
	g, _ := errgroup.WithContext(context.Background())
	for i := uint64(0); i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
