package layout

import (
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/network"
)

// IsPI reports whether t hosts a tile flagged as a primary input.
func (l *Layout) IsPI(t grid.Tile) bool {
	_, ok := l.piTiles[t]
	return ok
}

// IsPO reports whether t hosts a tile flagged as a primary output.
func (l *Layout) IsPO(t grid.Tile) bool {
	_, ok := l.poTiles[t]
	return ok
}

// IsGateTile reports whether t holds a vertex.
func (l *Layout) IsGateTile(t grid.Tile) bool {
	_, ok := l.vertexOfTile[t]
	return ok
}

// IsWireTile reports whether t holds one or more routed edges.
func (l *Layout) IsWireTile(t grid.Tile) bool {
	set, ok := l.edgesOfTile[t]
	return ok && len(set) > 0
}

// IsFreeTile reports whether t holds neither a vertex nor an edge.
func (l *Layout) IsFreeTile(t grid.Tile) bool {
	return !l.IsGateTile(t) && !l.IsWireTile(t)
}

// GetOp returns the operation of the vertex placed on t, if any.
func (l *Layout) GetOp(t grid.Tile) (network.Op, bool) {
	v, ok := l.vertexOfTile[t]
	if !ok {
		return 0, false
	}
	op, err := l.net.Op(v)
	if err != nil {
		return 0, false
	}
	return op, true
}

// VertexAt returns the vertex bound to t, if any.
func (l *Layout) VertexAt(t grid.Tile) (network.VertexID, bool) {
	v, ok := l.vertexOfTile[t]
	return v, ok
}

// TileOf returns the tile v is bound to, if any.
func (l *Layout) TileOf(v network.VertexID) (grid.Tile, bool) {
	t, ok := l.tileOfVertex[v]
	return t, ok
}

// EdgesOn returns the set of edges routed through t (empty if none).
func (l *Layout) EdgesOn(t grid.Tile) []network.EdgeID {
	set, ok := l.edgesOfTile[t]
	if !ok {
		return nil
	}
	out := make([]network.EdgeID, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}

// TileInDirs returns t's overall input direction mask.
func (l *Layout) TileInDirs(t grid.Tile) direction.Set { return l.tileInDirs[t] }

// TileOutDirs returns t's overall output direction mask.
func (l *Layout) TileOutDirs(t grid.Tile) direction.Set { return l.tileOutDirs[t] }

// WireInDirs returns the input direction mask of edge e on tile t.
func (l *Layout) WireInDirs(t grid.Tile, e network.EdgeID) direction.Set {
	return l.wireInDirs[t][e]
}

// WireOutDirs returns the output direction mask of edge e on tile t.
func (l *Layout) WireOutDirs(t grid.Tile, e network.EdgeID) direction.Set {
	return l.wireOutDirs[t][e]
}

// InDegree returns the number of 2-D neighbors of t that can pass
// information into t under the layout's clocking scheme.
func (l *Layout) InDegree(t grid.Tile) int {
	count := 0
	latch := l.Latch
	for _, n := range l.g.Surrounding2D(t) {
		if l.scheme.IsIncoming(l.g, t, n, latch) {
			count++
		}
	}
	return count
}

// OutDegree returns the number of 2-D neighbors of t that can receive
// information from t under the layout's clocking scheme.
func (l *Layout) OutDegree(t grid.Tile) int {
	count := 0
	latch := l.Latch
	for _, n := range l.g.Surrounding2D(t) {
		if l.scheme.IsOutgoing(l.g, t, n, latch) {
			count++
		}
	}
	return count
}

// IsBorderTile reports whether t has fewer than 4 in-layer (same-z)
// neighbors, the border-tile definition used for I/O placement.
func (l *Layout) IsBorderTile(t grid.Tile) bool {
	return len(l.g.Surrounding2D(t)) < 4
}
