package port_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/layout"
	"github.com/nanofcn/fcnpr/network"
	"github.com/nanofcn/fcnpr/port"
)

func TestRouteTile_GateTileUsesCanonicalSlot(t *testing.T) {
	n := network.New()
	pi := n.CreatePI("a")
	g, err := grid.New(2, 2, 2)
	require.NoError(t, err)
	scheme, err := clocking.Named("OPEN4")
	require.NoError(t, err)
	l := layout.New(g, scheme, n)

	tile := grid.Tile{X: 0, Y: 0}
	require.NoError(t, l.AssignVertex(tile, pi, true, false))
	l.AssignTileOutDir(tile, direction.East)

	list, err := port.RouteTile(port.Size5x5, l, tile)
	require.NoError(t, err)
	assert.Empty(t, list.Inp)
	require.Len(t, list.Out, 1)
	assert.Equal(t, port.Port{U: 4, V: 2}, list.Out[0])
}

func TestRouteTile_SecondWireOnSameSideUsesFlankingSlot(t *testing.T) {
	n := network.New()
	a := n.CreatePI("a")
	b := n.CreatePI("b")
	_, err := n.CreateOr(a, b)
	require.NoError(t, err)
	aEdges, err := n.OutEdges(a)
	require.NoError(t, err)
	bEdges, err := n.OutEdges(b)
	require.NoError(t, err)

	g, err := grid.New(3, 3, 2)
	require.NoError(t, err)
	scheme, err := clocking.Named("OPEN4")
	require.NoError(t, err)
	l := layout.New(g, scheme, n)

	wireTile := grid.Tile{X: 1, Y: 1}
	require.NoError(t, l.AssignEdge(wireTile, aEdges[0]))
	require.NoError(t, l.AssignEdge(wireTile, bEdges[0]))
	l.AssignWireInDir(wireTile, aEdges[0], direction.North)
	l.AssignWireInDir(wireTile, bEdges[0], direction.North)

	list, err := port.RouteTile(port.Size5x5, l, wireTile)
	require.NoError(t, err)
	require.Len(t, list.Inp, 2)
	assert.Equal(t, port.Port{U: 2, V: 0}, list.Inp[0])
	assert.Equal(t, port.Port{U: 1, V: 0}, list.Inp[1])
}

func TestRouteTile_ExceedingLibraryCapacityErrors(t *testing.T) {
	lib4 := port.Library4x4()
	assert.Len(t, lib4[direction.North], 2)

	n := network.New()
	a := n.CreatePI("a")
	b := n.CreatePI("b")
	c := n.CreatePI("c")
	_, _ = n.CreatePO(a, "ya")
	_, _ = n.CreatePO(b, "yb")
	_, _ = n.CreatePO(c, "yc")
	aOut, _ := n.OutEdges(a)
	bOut, _ := n.OutEdges(b)
	cOut, _ := n.OutEdges(c)

	g, err := grid.New(2, 2, 2)
	require.NoError(t, err)
	scheme, err := clocking.Named("OPEN4")
	require.NoError(t, err)
	l := layout.New(g, scheme, n)

	wireTile := grid.Tile{X: 0, Y: 0}
	for _, e := range [][]network.EdgeID{aOut, bOut, cOut} {
		require.NoError(t, l.AssignEdge(wireTile, e[0]))
		l.AssignWireInDir(wireTile, e[0], direction.North)
	}

	_, err = port.RouteTile(port.Size4x4, l, wireTile)
	var patternErr *port.UnsupportedPortPatternError
	assert.ErrorAs(t, err, &patternErr)
}

func TestRouteLayout_SkipsFreeTiles(t *testing.T) {
	n := network.New()
	pi := n.CreatePI("a")
	g, err := grid.New(2, 2, 2)
	require.NoError(t, err)
	scheme, err := clocking.Named("OPEN4")
	require.NoError(t, err)
	l := layout.New(g, scheme, n)
	require.NoError(t, l.AssignVertex(grid.Tile{X: 0, Y: 0}, pi, true, false))

	out, err := port.RouteLayout(port.Size5x5, l)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
