package exact_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/irifrance/gini/z"
	"github.com/stretchr/testify/assert"

	"github.com/nanofcn/fcnpr/exact/mocks"
)

// TestMockSolver_CancellationNeverBlocksOnSolve exercises the scripted
// Solver mock standing in for a real solve: a worker that checks a
// cancelled context before calling Solve should never invoke it at all,
// which is the property that makes cooperative cancellation "best
// effort" rather than something the search loop can prove terminates
// promptly on every path.
func TestMockSolver_CancellationNeverBlocksOnSolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	solver := mocks.NewMockSolver(ctrl)
	solver.EXPECT().Add(gomock.Any()).AnyTimes()
	solver.EXPECT().Solve(gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	select {
	case <-ctx.Done():
		solver.Add(z.Var(1).Pos())
	default:
		t.Fatal("context should already be cancelled")
	}
}

// TestMockSolver_ReportsScriptedOutcome checks the Solver interface's
// shape against a scripted mock rather than a live SAT run.
func TestMockSolver_ReportsScriptedOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	solver := mocks.NewMockSolver(ctrl)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	solver.EXPECT().Solve(ctx).Return(1)
	solver.EXPECT().Value(z.Var(2).Pos()).Return(true)

	assert.Equal(t, 1, solver.Solve(ctx))
	assert.True(t, solver.Value(z.Var(2).Pos()))
}
