package clocking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/grid"
)

func TestNamed_CaseInsensitiveAliases(t *testing.T) {
	s, err := clocking.Named("open")
	require.NoError(t, err)
	assert.Equal(t, 4, s.P())

	s, err = clocking.Named("2ddwave")
	require.NoError(t, err)
	assert.Equal(t, clocking.TwoDDWave4, s.Name())

	_, err = clocking.Named("not-a-scheme")
	assert.ErrorIs(t, err, clocking.ErrUnknownName)
}

func TestNamed_ThreePhaseUSERejected(t *testing.T) {
	_, err := clocking.Named("USE3")
	assert.ErrorIs(t, err, clocking.ErrUnsupportedCombination)

	s, err := clocking.Named("use")
	require.NoError(t, err) // default USE resolves to 4 phases
	assert.Equal(t, 4, s.P())
}

func TestPhaseOf_Regular(t *testing.T) {
	s, err := clocking.Named("open4")
	require.NoError(t, err)
	ph, ok := s.PhaseOf(grid.Tile{X: 5, Y: 1, Z: 0})
	require.True(t, ok)
	assert.Equal(t, 1, ph)
}

func TestPhaseOf_IrregularUndefinedUntilSet(t *testing.T) {
	s, err := clocking.NewIrregular("custom", 4)
	require.NoError(t, err)
	_, ok := s.PhaseOf(grid.Tile{X: 0, Y: 0, Z: 0})
	assert.False(t, ok)

	require.NoError(t, s.SetPhase(grid.Tile{X: 0, Y: 0, Z: 0}, 2))
	ph, ok := s.PhaseOf(grid.Tile{X: 0, Y: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, 2, ph)

	assert.ErrorIs(t, s.SetPhase(grid.Tile{X: 1, Y: 0, Z: 0}, 99), clocking.ErrPhaseOutOfRange)
}

func TestIsIncomingOutgoing(t *testing.T) {
	g, err := grid.New(4, 4, 2)
	require.NoError(t, err)
	s, err := clocking.Named("2ddwave4")
	require.NoError(t, err)

	noLatch := func(grid.Tile) int { return 0 }
	t1 := grid.Tile{X: 1, Y: 0, Z: 0} // phase (0+1)%4=1
	t2 := grid.Tile{X: 0, Y: 0, Z: 0} // phase 0

	assert.True(t, s.IsIncoming(g, t1, t2, noLatch), "t1 should receive from t2")
	assert.True(t, s.IsOutgoing(g, t2, t1, noLatch), "t2 should send to t1")
	assert.False(t, s.IsIncoming(g, t2, t1, noLatch))
}

func TestNewRegular_RejectsBadMatrix(t *testing.T) {
	_, err := clocking.NewRegular("bad", 3, [][]int{{0, 0}, {0, 0}})
	assert.ErrorIs(t, err, clocking.ErrBadMatrix)

	_, err = clocking.NewRegular("bad", 3, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	assert.ErrorIs(t, err, clocking.ErrBadMatrix, "must contain exactly P distinct phases")
}
