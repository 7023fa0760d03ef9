package schedule

// Policy assigns the required node indices (required[j] true) across
// nThread worker threads.
type Policy interface {
	// Name is a short identifier used in log lines.
	Name() string
	// Schedule returns tasks (the required indices, ordered for
	// traversal) and split (nThread+1 boundaries into tasks: thread t
	// gets tasks[split[t]:split[t+1]]).
	Schedule(nThread uint64, required []bool, count []uint64) (tasks, split []uint64)
}

func requiredIndices(required []bool) []uint64 {
	tasks := make([]uint64, 0, len(required))
	for j, r := range required {
		if r {
			tasks = append(tasks, uint64(j))
		}
	}
	return tasks
}

// Efficiency reports the fraction of total work usefully parallelized:
// total work across all threads divided by (the busiest thread's work
// times nThread). addition is added to every node's count before
// summing (ParallelIdaStar passes 0: count already includes the node
// itself). Returns 1 when no thread did any work.
func Efficiency(nThread, addition uint64, tasks, split, count []uint64) float64 {
	var totalCount, maxThreadCount uint64
	for i := uint64(0); i < nThread; i++ {
		start, end := split[i], split[i+1]
		var threadCount uint64
		for k := start; k < end; k++ {
			threadCount += count[tasks[k]] + addition
		}
		totalCount += threadCount
		if threadCount > maxThreadCount {
			maxThreadCount = threadCount
		}
	}
	if maxThreadCount == 0 {
		return 1
	}
	return float64(totalCount) / float64(maxThreadCount*nThread)
}
