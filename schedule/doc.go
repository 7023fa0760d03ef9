// Package schedule assigns a set of required DFS-tree root nodes to a
// fixed number of worker threads for one ParallelIdaStar layer. A
// Policy maps (nThread, required, count) to (tasks, split): tasks is
// the required node indices in the order workers should visit them,
// and split[t]..split[t+1] is thread t's slice of tasks. count[j] is
// the running per-node work estimate (nodes expanded the last time
// node j's subtree was searched), used by Linear and Best to balance
// load across threads instead of simply round-robining.
//
// Efficiency reports how well a completed layer's assignment balanced
// load: total work done divided by (the busiest thread's work times
// thread count), 1.0 being perfect balance.
package schedule
