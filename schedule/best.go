package schedule

import (
	"container/heap"
	"sort"
)

// Best implements Longest-Processing-Time-first: required nodes are
// sorted by descending count (heaviest first), then greedily assigned
// one at a time to whichever thread currently holds the least total
// weight, via a binary min-heap keyed on running thread weight. This
// is the classic LPT bin-balancing heuristic; it gives the best
// balance of the three policies at the cost of an O(n log n) sort and
// an O(n log k) heap.
type Best struct{}

func (Best) Name() string { return "best" }

func (Best) Schedule(nThread uint64, required []bool, count []uint64) (tasks, split []uint64) {
	tasks = requiredIndices(required)
	sort.SliceStable(tasks, func(i, j int) bool {
		return count[tasks[i]] > count[tasks[j]]
	})

	nNodes := uint64(len(required))
	assignment := make([]uint64, nNodes)

	threadCount := make([]uint64, nThread)
	bins := &threadHeap{ids: make([]uint64, nThread), weight: threadCount}
	for t := uint64(0); t < nThread; t++ {
		bins.ids[t] = t
	}
	heap.Init(bins)

	split = make([]uint64, nThread+1)
	for _, j := range tasks {
		t := heap.Pop(bins).(uint64)
		assignment[j] = t
		split[t+1]++
		threadCount[t] += count[j] + 1
		heap.Push(bins, t)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		ai, aj := assignment[tasks[i]], assignment[tasks[j]]
		if ai != aj {
			return ai < aj
		}
		return tasks[i] < tasks[j]
	})
	for t := uint64(0); t < nThread; t++ {
		split[t+1] += split[t]
	}
	return tasks, split
}

// threadHeap is a binary min-heap over thread ids, ordered by each
// thread's current running weight (ties broken by id).
type threadHeap struct {
	ids    []uint64
	weight []uint64
}

func (h threadHeap) Len() int { return len(h.ids) }
func (h threadHeap) Less(i, j int) bool {
	a, b := h.ids[i], h.ids[j]
	if h.weight[a] != h.weight[b] {
		return h.weight[a] < h.weight[b]
	}
	return a < b
}
func (h threadHeap) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }
func (h *threadHeap) Push(x any)   { h.ids = append(h.ids, x.(uint64)) }
func (h *threadHeap) Pop() any {
	old := h.ids
	n := len(old)
	x := old[n-1]
	h.ids = old[:n-1]
	return x
}
