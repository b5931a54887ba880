package exact_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/exact"
	"github.com/nanofcn/fcnpr/network"
)

func buildBuf(t *testing.T) *network.Network {
	t.Helper()
	n := network.New()
	a := n.CreatePI("a")
	y, err := n.CreateBuf(a)
	require.NoError(t, err)
	_, err = n.CreatePO(y, "y")
	require.NoError(t, err)
	return n
}

func TestNewConfig_RejectsLatchWithoutBalance(t *testing.T) {
	_, err := exact.NewConfig(exact.WithArtificialLatch(true), exact.WithDesynchronize(true))
	assert.ErrorIs(t, err, exact.ErrLatchRequiresBalance)
}

func TestNewConfig_RejectsNonPositiveBudget(t *testing.T) {
	_, err := exact.NewConfig(exact.WithBudgetMillis(0))
	assert.ErrorIs(t, err, exact.ErrBadBudget)
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := exact.NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.UpperBound)
	assert.True(t, cfg.IOPorts)
}

func TestRun_EmptyNetworkRejected(t *testing.T) {
	n := network.New()
	scheme, err := clocking.Named("2ddwave")
	require.NoError(t, err)
	cfg, err := exact.NewConfig()
	require.NoError(t, err)

	_, err = exact.Run(context.Background(), n, scheme, cfg)
	assert.ErrorIs(t, err, exact.ErrEmptyNetwork)
}

func TestRun_PlacesSingleBuffer(t *testing.T) {
	n := buildBuf(t)
	scheme, err := clocking.Named("2ddwave")
	require.NoError(t, err)
	cfg, err := exact.NewConfig(exact.WithUpperBound(4), exact.WithBudgetMillis(5000))
	require.NoError(t, err)

	l, err := exact.Run(context.Background(), n, scheme, cfg)
	require.NoError(t, err)
	require.NotNil(t, l)

	_, _, _, _, ok := l.BoundingBox()
	assert.True(t, ok, "a placed layout must have a non-empty bounding box")
}

func TestRun_RespectsFixedSize(t *testing.T) {
	n := buildBuf(t)
	scheme, err := clocking.Named("2ddwave")
	require.NoError(t, err)
	cfg, err := exact.NewConfig(exact.WithFixedSize(4), exact.WithBudgetMillis(5000))
	require.NoError(t, err)

	_, err = exact.Run(context.Background(), n, scheme, cfg)
	require.NoError(t, err)
}

func TestRun_TimesOutUnderTinyBudget(t *testing.T) {
	n := buildBuf(t)
	scheme, err := clocking.Named("2ddwave")
	require.NoError(t, err)
	cfg, err := exact.NewConfig(exact.WithUpperBound(64), exact.WithBudgetMillis(1))
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	_, err = exact.Run(context.Background(), n, scheme, cfg)
	require.Error(t, err)
	var timeoutErr *exact.TimeoutError
	assert.ErrorAs(t, err, &timeoutErr)
}
