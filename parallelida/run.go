package parallelida

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/groupsearch/puzzle"
	"github.com/katalvlaran/groupsearch/schedule"
)

// Config tunes a Run call. NThread and BFSCount must be positive;
// Policy defaults to schedule.Simple{} and Logger to slog.Default()
// when left zero.
type Config struct {
	NThread  uint64
	MaxMoves uint64
	BFSCount uint64
	Policy   schedule.Policy
	Logger   *slog.Logger
}

// Run searches for a shortest move sequence taking cube a to the
// identity, within cfg.MaxMoves moves. It returns FlagEnd if no
// solution exists within that bound, otherwise FlagSolution|FlagOptimum
// and the solving Moves (parallel search, like IdaStar, proves
// optimality by exhausting every shorter bound first).
func Run[S comparable, C any](s puzzle.Solver[S, C], a C, cfg Config) (puzzle.Flag, puzzle.Moves) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Policy == nil {
		cfg.Policy = schedule.Simple{}
	}
	nThread := cfg.NThread
	if nThread == 0 {
		nThread = 1
	}
	maxMoves := cfg.MaxMoves
	if maxMoves > puzzle.MaxMoves {
		maxMoves = puzzle.MaxMoves
	}

	t0 := time.Now()
	var symMasker puzzle.SymMasker[S, C]
	if sm, ok := s.(puzzle.SymMasker[S, C]); ok {
		symMasker = sm
	}

	cfg.Logger.Info("parallelida: bfs start", "bfs_count", cfg.BFSCount)
	f, moves, nodes, dists := bfsStage(s, a, maxMoves, cfg.BFSCount, symMasker, cfg.Logger)
	if f.Has(puzzle.FlagSolution) || f.Has(puzzle.FlagEnd) {
		return f, moves
	}

	cfg.Logger.Info("parallelida: dfs start", "policy", cfg.Policy.Name(), "n_thread", nThread)
	nNodes := uint64(len(nodes))
	required := make([]bool, nNodes)
	count := make([]uint64, nNodes)

	bfsNMoves := uint64(nodes[0].moves.N)
	minDist := dists[0]
	for _, d := range dists {
		if d < minDist {
			minDist = d
		}
	}

	for nMoves := bfsNMoves + uint64(minDist); nMoves <= maxMoves; nMoves++ {
		layerStart := time.Now()
		for i := uint64(0); i < nNodes; i++ {
			required[i] = bfsNMoves+uint64(dists[i]) <= nMoves
		}
		tasks, split := cfg.Policy.Schedule(nThread, required, count)

		f, moves := runLayer(s, nodes, nThread, nMoves, tasks, split, count)
		eff := schedule.Efficiency(nThread, 0, tasks, split, count)
		layerTime := time.Since(layerStart)
		totalTime := time.Since(t0)

		if f.Has(puzzle.FlagSolution) {
			cfg.Logger.Info("parallelida: found",
				"n_moves", nMoves, "count", sumCount(count), "efficiency", eff,
				"layer_time", layerTime, "total_time", totalTime)
			return f, moves
		}
		cfg.Logger.Info("parallelida: layer complete",
			"n_moves", nMoves, "count", sumCount(count), "efficiency", eff,
			"layer_time", layerTime, "total_time", totalTime)
	}

	cfg.Logger.Info("parallelida: end")
	return puzzle.FlagEnd, puzzle.Moves{}
}

func sumCount(count []uint64) uint64 {
	var total uint64
	for _, c := range count {
		total += c
	}
	return total
}
