package layout

import (
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/network"
)

// AssignVertex binds v to tile t, clearing any prior edge assignments and
// direction marks on t, and updates the PI/PO sets when isPI/isPO.
func (l *Layout) AssignVertex(t grid.Tile, v network.VertexID, isPI, isPO bool) error {
	if !l.g.Contains(t) {
		return ErrOutOfRange
	}
	if existing, ok := l.tileOfVertex[v]; ok && existing != t {
		return ErrVertexAlreadyPlaced
	}
	if _, occupied := l.vertexOfTile[t]; occupied {
		l.dissociateVertexTile(t)
	}
	l.clearTile(t)

	l.vertexOfTile[t] = v
	l.tileOfVertex[v] = t
	if isPI {
		l.piTiles[t] = struct{}{}
	}
	if isPO {
		l.poTiles[t] = struct{}{}
	}
	l.invalidateDelayCache()
	return nil
}

// DissociateVertex unbinds whatever vertex occupies t, if any, clearing its
// direction marks and PI/PO membership.
func (l *Layout) DissociateVertex(t grid.Tile) {
	l.dissociateVertexTile(t)
	l.invalidateDelayCache()
}

func (l *Layout) dissociateVertexTile(t grid.Tile) {
	v, ok := l.vertexOfTile[t]
	if !ok {
		return
	}
	delete(l.vertexOfTile, t)
	delete(l.tileOfVertex, v)
	delete(l.piTiles, t)
	delete(l.poTiles, t)
	delete(l.tileInDirs, t)
	delete(l.tileOutDirs, t)
}

// clearTile purges every edge, direction mark, and latch entry on t without
// touching the vertex bimap (used before a fresh AssignVertex).
func (l *Layout) clearTile(t grid.Tile) {
	delete(l.edgesOfTile, t)
	delete(l.tileInDirs, t)
	delete(l.tileOutDirs, t)
	delete(l.wireInDirs, t)
	delete(l.wireOutDirs, t)
	delete(l.latches, t)
}

// AssignEdge appends e to t's edge set. t must not be a gate tile (hold a
// vertex).
func (l *Layout) AssignEdge(t grid.Tile, e network.EdgeID) error {
	if !l.g.Contains(t) {
		return ErrOutOfRange
	}
	if _, occupied := l.vertexOfTile[t]; occupied {
		return ErrTileOccupiedByVertex
	}
	set, ok := l.edgesOfTile[t]
	if !ok {
		set = make(map[network.EdgeID]struct{})
		l.edgesOfTile[t] = set
	}
	set[e] = struct{}{}
	l.invalidateDelayCache()
	return nil
}

// DissociateEdge removes e from t's edge set and purges any direction
// entries that referenced it. Removing the last edge of a tile removes the
// tile's direction entries entirely.
func (l *Layout) DissociateEdge(t grid.Tile, e network.EdgeID) error {
	set, ok := l.edgesOfTile[t]
	if !ok {
		return ErrEdgeNotOnTile
	}
	if _, ok := set[e]; !ok {
		return ErrEdgeNotOnTile
	}
	delete(set, e)

	if in, ok := l.wireInDirs[t]; ok {
		delete(in, e)
		if len(in) == 0 {
			delete(l.wireInDirs, t)
		}
	}
	if out, ok := l.wireOutDirs[t]; ok {
		delete(out, e)
		if len(out) == 0 {
			delete(l.wireOutDirs, t)
		}
	}

	if len(set) == 0 {
		delete(l.edgesOfTile, t)
		delete(l.tileInDirs, t)
		delete(l.tileOutDirs, t)
		delete(l.latches, t)
	}
	l.invalidateDelayCache()
	return nil
}

// AssignTileInDir adds d to t's input direction mask. Passing direction.None
// erases the mask entry entirely.
func (l *Layout) AssignTileInDir(t grid.Tile, d direction.Set) {
	addOrClear(l.tileInDirs, t, d)
	l.invalidateDelayCache()
}

// AssignTileOutDir adds d to t's output direction mask. Passing
// direction.None erases the mask entry entirely.
func (l *Layout) AssignTileOutDir(t grid.Tile, d direction.Set) {
	addOrClear(l.tileOutDirs, t, d)
	l.invalidateDelayCache()
}

func addOrClear(m map[grid.Tile]direction.Set, t grid.Tile, d direction.Set) {
	if d == direction.None {
		delete(m, t)
		return
	}
	m[t] = direction.Union(m[t], d)
}

// AssignWireInDir adds d to the per-(t,e) input direction mask, and unions
// the same bits into t's overall input mask (the
// per-edge mask is a subset of, and sums to, the per-tile mask).
func (l *Layout) AssignWireInDir(t grid.Tile, e network.EdgeID, d direction.Set) {
	addOrClearEdge(l.wireInDirs, t, e, d)
	l.AssignTileInDir(t, d)
}

// AssignWireOutDir adds d to the per-(t,e) output direction mask, and unions
// the same bits into t's overall output mask.
func (l *Layout) AssignWireOutDir(t grid.Tile, e network.EdgeID, d direction.Set) {
	addOrClearEdge(l.wireOutDirs, t, e, d)
	l.AssignTileOutDir(t, d)
}

func addOrClearEdge(m map[grid.Tile]map[network.EdgeID]direction.Set, t grid.Tile, e network.EdgeID, d direction.Set) {
	if d == direction.None {
		if inner, ok := m[t]; ok {
			delete(inner, e)
			if len(inner) == 0 {
				delete(m, t)
			}
		}
		return
	}
	inner, ok := m[t]
	if !ok {
		inner = make(map[network.EdgeID]direction.Set)
		m[t] = inner
	}
	inner[e] = direction.Union(inner[e], d)
}

// SetLatch assigns tile t a latch delay of delay clock phases. Only wire
// tiles may carry a nonzero latch.
func (l *Layout) SetLatch(t grid.Tile, delay int) error {
	if delay < 0 {
		return ErrNegativeLatch
	}
	if delay > 0 && !l.IsWireTile(t) {
		return ErrLatchOnNonWire
	}
	if delay == 0 {
		delete(l.latches, t)
	} else {
		l.latches[t] = delay
	}
	l.invalidateDelayCache()
	return nil
}

// Latch returns t's latch delay in clock phases (0 if none).
func (l *Layout) Latch(t grid.Tile) int { return l.latches[t] }
