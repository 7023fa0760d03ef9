package schedule

// Simple round-robins required nodes across threads by index (thread
// t gets every nThread-th required node starting at offset t), ignoring
// count entirely. Cheapest to compute, worst load balance.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) Schedule(nThread uint64, required []bool, count []uint64) (tasks, split []uint64) {
	nNodes := uint64(len(required))
	tasks = make([]uint64, 0, nNodes)
	split = make([]uint64, nThread+1)
	for t := uint64(0); t < nThread; t++ {
		split[t] = uint64(len(tasks))
		for j := t; j < nNodes; j += nThread {
			if required[j] {
				tasks = append(tasks, j)
			}
		}
	}
	split[nThread] = uint64(len(tasks))
	return tasks, split
}
