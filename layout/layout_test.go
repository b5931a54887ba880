package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/layout"
	"github.com/nanofcn/fcnpr/network"
)

func newUse4(t *testing.T) *clocking.Scheme {
	t.Helper()
	s, err := clocking.Named("USE")
	require.NoError(t, err)
	return s
}

// buildBuf places a single PI->BUF->PO chain along one row: (0,0)->(1,0)->(2,0).
func buildBuf(t *testing.T) (*layout.Layout, network.VertexID, network.VertexID, network.VertexID) {
	t.Helper()
	n := network.New()
	pi := n.CreatePI("a")
	buf, err := n.CreateBuf(pi)
	require.NoError(t, err)
	po, err := n.CreatePO(buf, "y")
	require.NoError(t, err)

	g, err := grid.New(3, 1, 2)
	require.NoError(t, err)
	scheme := newUse4(t)
	l := layout.New(g, scheme, n)

	require.NoError(t, l.AssignVertex(grid.Tile{X: 0, Y: 0}, pi, true, false))
	require.NoError(t, l.AssignVertex(grid.Tile{X: 1, Y: 0}, buf, false, false))
	require.NoError(t, l.AssignVertex(grid.Tile{X: 2, Y: 0}, po, false, true))
	l.AssignTileOutDir(grid.Tile{X: 0, Y: 0}, direction.East)
	l.AssignTileInDir(grid.Tile{X: 1, Y: 0}, direction.West)
	l.AssignTileOutDir(grid.Tile{X: 1, Y: 0}, direction.East)
	l.AssignTileInDir(grid.Tile{X: 2, Y: 0}, direction.West)
	return l, pi, buf, po
}

func TestAssignVertex_BindsBijectionAndIO(t *testing.T) {
	l, pi, _, po := buildBuf(t)
	assert.True(t, l.IsPI(grid.Tile{X: 0, Y: 0}))
	assert.True(t, l.IsPO(grid.Tile{X: 2, Y: 0}))
	tile, ok := l.TileOf(pi)
	require.True(t, ok)
	assert.Equal(t, grid.Tile{X: 0, Y: 0}, tile)
	v, ok := l.VertexAt(grid.Tile{X: 2, Y: 0})
	require.True(t, ok)
	assert.Equal(t, po, v)
}

func TestAssignVertex_RejectsDoublePlacement(t *testing.T) {
	l, pi, _, _ := buildBuf(t)
	err := l.AssignVertex(grid.Tile{X: 0, Y: 0, Z: 1}, pi, false, false)
	assert.ErrorIs(t, err, layout.ErrVertexAlreadyPlaced)
}

func TestAssignEdge_RejectsGateTile(t *testing.T) {
	l, _, _, _ := buildBuf(t)
	err := l.AssignEdge(grid.Tile{X: 0, Y: 0}, network.EdgeID(1))
	assert.ErrorIs(t, err, layout.ErrTileOccupiedByVertex)
}

func TestSetLatch_RejectsNonWireTile(t *testing.T) {
	l, _, _, _ := buildBuf(t)
	err := l.SetLatch(grid.Tile{X: 0, Y: 0}, 1)
	assert.ErrorIs(t, err, layout.ErrLatchOnNonWire)
}

func TestIsGateTileIsFreeTile(t *testing.T) {
	l, _, _, _ := buildBuf(t)
	assert.True(t, l.IsGateTile(grid.Tile{X: 1, Y: 0}))
	assert.False(t, l.IsFreeTile(grid.Tile{X: 1, Y: 0}))
	assert.True(t, l.IsFreeTile(grid.Tile{X: 2, Y: 1}))
}

func TestSignalDelay_RootIsPIPhase(t *testing.T) {
	l, pi, _, _ := buildBuf(t)
	tile, _ := l.TileOf(pi)
	info := l.SignalDelay(tile)
	assert.Equal(t, 0, info.Length)
	phase, ok := l.Scheme().PhaseOf(tile)
	require.True(t, ok)
	assert.Equal(t, phase, info.Delay)
}

func TestCriticalPathAndThroughput_BalancedChainIsThroughputOne(t *testing.T) {
	l, _, _, _ := buildBuf(t)
	criticalPath, throughput := l.CriticalPathAndThroughput()
	assert.Equal(t, 2, criticalPath)
	assert.Equal(t, 1, throughput, "a single linear chain has no fan-in imbalance")
}

func TestBoundingBoxAndShrinkToFit(t *testing.T) {
	l, _, _, _ := buildBuf(t)
	minX, minY, maxX, maxY, ok := l.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, 0, minX)
	assert.Equal(t, 0, minY)
	assert.Equal(t, 2, maxX)
	assert.Equal(t, 0, maxY)

	require.NoError(t, l.ShrinkToFit())
	x, y, z := l.Grid().Dims()
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, 2, z)
}

func TestShrinkToFit_EmptyLayoutErrors(t *testing.T) {
	g, err := grid.New(4, 4, 2)
	require.NoError(t, err)
	l := layout.New(g, newUse4(t), network.New())
	err = l.ShrinkToFit()
	assert.ErrorIs(t, err, layout.ErrEmptyLayout)
}

func TestDump_RendersGlyphsPerLayer(t *testing.T) {
	l, _, _, _ := buildBuf(t)
	out := l.Dump(layout.DumpOptions{Layer: 0})
	assert.Contains(t, out, "layer 0:")
	assert.Contains(t, out, "I")
	assert.Contains(t, out, "P")
}

func TestDump_ColorAddsEscapes(t *testing.T) {
	l, _, _, _ := buildBuf(t)
	plain := l.Dump(layout.DumpOptions{Layer: 0})
	colored := l.Dump(layout.DumpOptions{Layer: 0, Color: true})
	assert.NotEqual(t, plain, colored)
}
