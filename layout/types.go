package layout

import (
	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/network"
)

// Layout is a grid plus the tile<->vertex bijection, tile->edge multimap,
// direction masks, latch map, and PI/PO tile sets.
type Layout struct {
	g      *grid.Grid
	scheme *clocking.Scheme
	net    *network.Network

	tileOfVertex map[network.VertexID]grid.Tile
	vertexOfTile map[grid.Tile]network.VertexID

	edgesOfTile map[grid.Tile]map[network.EdgeID]struct{}

	tileInDirs  map[grid.Tile]direction.Set
	tileOutDirs map[grid.Tile]direction.Set

	wireInDirs  map[grid.Tile]map[network.EdgeID]direction.Set
	wireOutDirs map[grid.Tile]map[network.EdgeID]direction.Set

	piTiles map[grid.Tile]struct{}
	poTiles map[grid.Tile]struct{}

	latches map[grid.Tile]int

	delayCache map[grid.Tile]*PathInfo
}

// New builds an empty Layout over g, clocked by scheme, whose vertex/edge
// identifiers are drawn from net.
func New(g *grid.Grid, scheme *clocking.Scheme, net *network.Network) *Layout {
	return &Layout{
		g:            g,
		scheme:       scheme,
		net:          net,
		tileOfVertex: make(map[network.VertexID]grid.Tile),
		vertexOfTile: make(map[grid.Tile]network.VertexID),
		edgesOfTile:  make(map[grid.Tile]map[network.EdgeID]struct{}),
		tileInDirs:   make(map[grid.Tile]direction.Set),
		tileOutDirs:  make(map[grid.Tile]direction.Set),
		wireInDirs:   make(map[grid.Tile]map[network.EdgeID]direction.Set),
		wireOutDirs:  make(map[grid.Tile]map[network.EdgeID]direction.Set),
		piTiles:      make(map[grid.Tile]struct{}),
		poTiles:      make(map[grid.Tile]struct{}),
		latches:      make(map[grid.Tile]int),
		delayCache:   make(map[grid.Tile]*PathInfo),
	}
}

// Grid returns the layout's underlying grid.
func (l *Layout) Grid() *grid.Grid { return l.g }

// Scheme returns the layout's clocking scheme.
func (l *Layout) Scheme() *clocking.Scheme { return l.scheme }

// Network returns the logic network the layout realizes.
func (l *Layout) Network() *network.Network { return l.net }

// setGrid replaces the layout's grid, used by ShrinkToFit; callers must
// ensure every occupied tile still lies within the new dimensions.
func (l *Layout) setGrid(g *grid.Grid) { l.g = g }

func (l *Layout) invalidateDelayCache() {
	l.delayCache = make(map[grid.Tile]*PathInfo)
}
