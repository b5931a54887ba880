package exact

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/irifrance/gini/logic"
	"github.com/tebeka/atexit"
	"github.com/tklauser/numcpus"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/network"
)

// task is one (x,y) factor pair of a size round: one ground-tile shape to
// try placing n into.
type task struct {
	x, y int
}

// roundResult is what a single worker reports back for one task.
type roundResult struct {
	task   task
	g      *grid.Grid
	c      *logic.C
	vs     *varSet
	scheme *clocking.Scheme
	solver Solver
	sat    bool
}

// poolSize resolves Parallelism into a worker count: the configured value
// if positive, else the host's online CPU count (falling back to 1 if
// numcpus can't determine it, e.g. in a sandboxed container).
func poolSize(parallelism int) int {
	if parallelism > 0 {
		return parallelism
	}
	n, err := numcpus.GetOnline()
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// runRound explores every factor pair of n concurrently across a worker
// pool, stopping early (via the shared done flag) once any worker finds a
// satisfying assignment. Each worker builds its own logic.C, varSet and
// Solver so no SAT state is ever shared across goroutines. It returns the
// first satisfying roundResult found, or nil if every task was UNSAT or
// ctx was cancelled first.
func runRound(ctx context.Context, tasks []task, nGates *network.Network, scheme *clocking.Scheme, cfg Config, workers int) *roundResult {
	var done atomic.Bool
	winner := make(chan *roundResult, 1)

	queue := make(chan task)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				if done.Load() {
					continue
				}
				select {
				case <-ctx.Done():
					return
				default:
				}
				res := solveTask(ctx, t, nGates, scheme, cfg, &done)
				if res != nil && res.sat && done.CompareAndSwap(false, true) {
					select {
					case winner <- res:
					default:
					}
				}
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, t := range tasks {
			if done.Load() {
				return
			}
			select {
			case <-ctx.Done():
				return
			case queue <- t:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(winner)
	}()

	return <-winner
}

// solveTask builds one (x,y) candidate grid, encodes every constraint
// family onto a fresh circuit and runs a fresh solver context against it,
// checking done between the encode and solve phases so a losing worker
// doesn't waste budget once a sibling has already won.
func solveTask(ctx context.Context, t task, n *network.Network, scheme *clocking.Scheme, cfg Config, done *atomic.Bool) *roundResult {
	g, err := grid.New(t.x, t.y, 2)
	if err != nil {
		return nil
	}
	if done.Load() {
		return nil
	}

	c := logic.NewC()
	vs := newVarSet(c, g, n, scheme, cfg)
	roots := buildConstraints(c, g, n, vs, scheme, cfg)
	if done.Load() {
		return nil
	}

	solver := newGiniSolver()
	atexit.Register(func() { solver.g = nil })
	c.ToCnfFrom(solver, roots...)
	solver.Add(0)

	outcome := solver.Solve(ctx)
	return &roundResult{task: t, g: g, c: c, vs: vs, scheme: scheme, solver: solver, sat: outcome == outcomeSat}
}

// factorPairs returns every (x,y) with x*y==n and x,y>=2, smallest x
// first, the order the search walks a size round's shapes in.
func factorPairs(n int) []task {
	var out []task
	for x := 2; x <= n/2; x++ {
		if n%x == 0 {
			out = append(out, task{x, n / x})
		}
	}
	return out
}
