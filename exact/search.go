package exact

import (
	"context"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/layout"
	"github.com/nanofcn/fcnpr/network"
)

// Run searches for a satisfying placement and routing of n under scheme,
// growing the ground-tile count from the network's lower bound up to
// cfg.UpperBound (or trying exactly cfg.FixedSize, if set), exploring
// every factor-pair shape of each size on a pool of
// poolSize(cfg.Parallelism) workers. Every log line
// carries a run ID so concurrent Run calls (e.g. in a benchmark sweep)
// can be told apart in shared output.
func Run(ctx context.Context, n *network.Network, scheme *clocking.Scheme, cfg Config) (*layout.Layout, error) {
	if len(n.PIs()) == 0 && len(n.POs()) == 0 {
		return nil, ErrEmptyNetwork
	}
	runID := xid.New()
	log := slog.Default().With("run", runID.String())

	lower := len(allLiveVertices(n))
	sizes := []int{lower}
	if cfg.FixedSize > 0 {
		sizes = []int{cfg.FixedSize}
	} else {
		for size := lower + 1; size <= cfg.UpperBound; size++ {
			sizes = append(sizes, size)
		}
	}

	workers := poolSize(cfg.Parallelism)
	deadline := time.Now().Add(time.Duration(cfg.BudgetMillis) * time.Millisecond)
	lastSize := lower

	for _, size := range sizes {
		lastSize = size
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, &TimeoutError{LastSize: lastSize}
		}
		roundCtx, cancel := context.WithDeadline(ctx, deadline)
		log.Info("exploring size", "size", size, "budget_ms", remaining.Milliseconds())

		tasks := factorPairs(size)
		if len(tasks) == 0 {
			cancel()
			continue
		}
		res := runRound(roundCtx, tasks, n, scheme, cfg, workers)
		cancel()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if res == nil {
			log.Info("size exhausted", "size", size)
			continue
		}
		l, err := reconstruct(res, n, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("placed", "size", size, "tiles_x", res.task.x, "tiles_y", res.task.y)
		return l, nil
	}

	if time.Now().After(deadline) {
		return nil, &TimeoutError{LastSize: lastSize}
	}
	return nil, ErrNotPlaceable
}
