package exact

//go:generate mockgen -write_package_comment=false -package=mocks -destination=mocks/mock_solver.go github.com/nanofcn/fcnpr/exact Solver

import (
	"context"
	"time"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/inter"
	"github.com/irifrance/gini/z"
)

// Solve outcomes, mirroring the underlying solver's own Solve() values.
const (
	outcomeUnknown = 0
	outcomeSat     = 1
	outcomeUnsat   = -1
)

// Solver is the subset of a SAT solver the search loop and constraint
// builder need. Each worker in the pool owns its own Solver instance;
// none is ever shared across goroutines. The interface exists so tests
// can substitute a scripted mock instead of running a real solve.
type Solver interface {
	inter.Adder
	// Solve runs the solver to completion or until ctx's deadline, if it
	// has one (cancelling a ctx without a deadline is not observed),
	// returning outcomeSat, outcomeUnsat or outcomeUnknown (the last when
	// the deadline passes or on an internal resource limit).
	Solve(ctx context.Context) int
	// Value reports m's truth value in the last satisfying model found.
	Value(m z.Lit) bool
}

// giniSolver adapts *gini.Gini to Solver.
type giniSolver struct {
	g *gini.Gini
}

// newGiniSolver returns a fresh solver context. Callers register it with
// a worker pool's cleanup list so it is released even on early exit.
func newGiniSolver() *giniSolver {
	return &giniSolver{g: gini.New()}
}

func (s *giniSolver) Add(m z.Lit) { s.g.Add(m) }

func (s *giniSolver) Solve(ctx context.Context) int {
	deadline, ok := ctx.Deadline()
	if !ok {
		return s.g.Solve()
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return outcomeUnknown
	}
	return s.g.Try(remaining)
}

func (s *giniSolver) Value(m z.Lit) bool { return s.g.Value(m) }
