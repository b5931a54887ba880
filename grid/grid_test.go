package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanofcn/fcnpr/grid"
)

func TestNew_BadDimensions(t *testing.T) {
	_, err := grid.New(0, 1, 2)
	assert.ErrorIs(t, err, grid.ErrBadDimensions)

	_, err = grid.New(1, 1, 1)
	assert.ErrorIs(t, err, grid.ErrBadDimensions)
}

func TestNeighbors_ClosedBoundary(t *testing.T) {
	g, err := grid.New(2, 2, 2)
	require.NoError(t, err)

	origin := grid.Tile{X: 0, Y: 0, Z: 0}
	_, ok := g.North(origin)
	assert.False(t, ok, "no wrap-around at the top boundary")
	_, ok = g.West(origin)
	assert.False(t, ok, "no wrap-around at the left boundary")

	e, ok := g.East(origin)
	require.True(t, ok)
	assert.Equal(t, grid.Tile{X: 1, Y: 0, Z: 0}, e)

	above, ok := g.Above(origin)
	require.True(t, ok)
	assert.Equal(t, grid.Tile{X: 0, Y: 0, Z: 1}, above)
}

func TestSurrounding2D_CornerHasTwoNeighbors(t *testing.T) {
	g, err := grid.New(3, 3, 2)
	require.NoError(t, err)
	neighbors := g.Surrounding2D(grid.Tile{X: 0, Y: 0, Z: 0})
	assert.Len(t, neighbors, 2)
}

func TestGroundTilesAndLayerTiles(t *testing.T) {
	g, err := grid.New(2, 3, 2)
	require.NoError(t, err)
	assert.Len(t, g.GroundTiles(), 6)
	assert.Len(t, g.CrossingLayerTiles(), 6)
	assert.Nil(t, g.LayerTiles(5))
}

func TestDistances(t *testing.T) {
	a := grid.Tile{X: 0, Y: 0, Z: 0}
	b := grid.Tile{X: 3, Y: 4, Z: 0}
	assert.Equal(t, 7, grid.ManhattanDistance(a, b))
	assert.InDelta(t, 5.0, grid.EuclideanDistance(a, b), 1e-9)
}

func TestRandomFace_WithinBounds(t *testing.T) {
	g, err := grid.New(4, 5, 3)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		f := g.RandomFace(rng)
		assert.True(t, g.Contains(f))
	}
}
