package exact

import (
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/layout"
	"github.com/nanofcn/fcnpr/network"
)

// reconstruct extracts a *layout.Layout from a satisfying roundResult,
// following the five-step model-extraction order: vertex placement, edge
// ground/above assignment, irregular-phase assignment, direction
// propagation from the tc arrows, then latch delays.
func reconstruct(res *roundResult, n *network.Network, cfg Config) (*layout.Layout, error) {
	l := layout.New(res.g, res.scheme, n)
	vs := res.vs
	solver := res.solver

	pis := make(map[network.VertexID]bool)
	for _, pi := range n.PIs() {
		pis[pi] = true
	}
	pos := make(map[network.VertexID]bool)
	for _, po := range n.POs() {
		pos[po] = true
	}

	// 1. Vertex placement.
	for k, lit := range vs.tv {
		if solver.Value(lit) {
			if err := l.AssignVertex(k.T, k.V, pis[k.V], pos[k.V]); err != nil {
				return nil, err
			}
		}
	}

	// 2. Edge assignment, ground first, then lifted above on collision.
	for k, lit := range vs.te {
		if !solver.Value(lit) {
			continue
		}
		t := k.T
		if l.IsWireTile(t) || l.IsGateTile(t) {
			above, ok := res.g.Above(t)
			if !ok {
				return nil, ErrNotPlaceable
			}
			t = above
		}
		if err := l.AssignEdge(t, k.E); err != nil {
			return nil, err
		}
	}

	// 3. Irregular clock-phase assignment.
	if !res.scheme.IsRegular() {
		for t, group := range vs.tcl {
			for phase, bit := range group {
				if solver.Value(bit) {
					if err := res.scheme.SetPhase(t, phase); err != nil {
						return nil, err
					}
					break
				}
			}
		}
	}

	// 4. Direction propagation from tc arrows, to both the tile's overall
	// in/out direction sets and the per-tile direction of every edge routed
	// on that ground tile.
	for k, tc := range vs.tc {
		if !solver.Value(tc) {
			continue
		}
		d := stepDirection(k.T1, k.T2)
		if d == direction.None {
			continue
		}
		l.AssignTileOutDir(k.T1, d)
		l.AssignTileInDir(k.T2, direction.Opposite(d))
		for _, e := range l.EdgesOn(k.T1) {
			l.AssignWireOutDir(k.T1, e, d)
		}
		for _, e := range l.EdgesOn(k.T2) {
			l.AssignWireInDir(k.T2, e, direction.Opposite(d))
		}
	}

	// 5. Latch delays.
	if cfg.ArtificialLatch {
		for t, group := range vs.tl {
			for delay, bit := range group {
				if solver.Value(bit) && delay > 0 {
					if err := l.SetLatch(t, delay*res.scheme.P()); err != nil {
						return nil, err
					}
					break
				}
			}
		}
	}

	return l, nil
}

func stepDirection(a, b grid.Tile) direction.Set {
	switch {
	case b.X == a.X+1 && b.Y == a.Y:
		return direction.East
	case b.X == a.X-1 && b.Y == a.Y:
		return direction.West
	case b.Y == a.Y+1 && b.X == a.X:
		return direction.South
	case b.Y == a.Y-1 && b.X == a.X:
		return direction.North
	default:
		return direction.None
	}
}
