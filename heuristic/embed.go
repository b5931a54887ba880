package heuristic

import (
	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/layout"
	"github.com/nanofcn/fcnpr/network"
)

// isAOIG reports whether op belongs to the restricted operation set Place
// accepts: constants, I/O, BUF/NOT, AND/OR, fan-outs, and the balance
// vertex. XOR and MAJ must be decomposed (see network.XorDecompose) before
// a network reaches Place.
func isAOIG(op network.Op) bool {
	switch op {
	case network.Zero, network.One, network.PI, network.PO,
		network.Buf, network.Not, network.And, network.Or,
		network.F1O2, network.F1O3, network.W:
		return true
	default:
		return false
	}
}

// Place builds a gate layout for n under scheme using the orthogonal
// embedding: a joint depth-first order, a red/blue edge coloring of that
// order, and a single forward pass that places each vertex and routes its
// incoming edges as it goes. The grid is sized generously and shrunk to the
// occupied bounding box before returning.
func Place(n *network.Network, scheme *clocking.Scheme) (*layout.Layout, error) {
	order := jointDFS(n)
	if len(order) == 0 {
		return nil, ErrEmptyNetwork
	}
	for _, v := range order {
		op, err := n.Op(v)
		if err != nil {
			return nil, err
		}
		if !isAOIG(op) {
			return nil, ErrUnsupportedLogic
		}
	}

	colors := colorEdges(n, order)

	side := len(order) + 2
	g, err := grid.New(side, side, 2)
	if err != nil {
		return nil, err
	}
	l := layout.New(g, scheme, n)

	xCursor, yCursor := 0, 0

	for _, v := range order {
		op, err := n.Op(v)
		if err != nil {
			return nil, err
		}
		ins, err := n.InEdges(v)
		if err != nil {
			return nil, err
		}

		var t grid.Tile
		switch len(ins) {
		case 0:
			t = grid.Tile{X: xCursor, Y: yCursor}
			xCursor++
			yCursor++

		case 1:
			e := ins[0]
			from, _, err := n.EdgeEndpoints(e)
			if err != nil {
				return nil, err
			}
			pit, ok := l.TileOf(from)
			if !ok {
				return nil, ErrPredecessorUnplaced
			}
			c := colors[e]
			if c == Blue {
				t = grid.Tile{X: pit.X, Y: pit.Y + 1}
				if t.Y+1 > yCursor {
					yCursor = t.Y + 1
				}
			} else {
				t = grid.Tile{X: pit.X + 1, Y: pit.Y}
				if t.X+1 > xCursor {
					xCursor = t.X + 1
				}
			}
			if err := placeVertex(l, t, v, op); err != nil {
				return nil, err
			}
			if err := routeIncoming(l, g, e, pit, t, c); err != nil {
				return nil, err
			}
			continue

		case 2:
			e1, e2 := ins[0], ins[1]
			from1, _, err := n.EdgeEndpoints(e1)
			if err != nil {
				return nil, err
			}
			from2, _, err := n.EdgeEndpoints(e2)
			if err != nil {
				return nil, err
			}
			p1, ok1 := l.TileOf(from1)
			p2, ok2 := l.TileOf(from2)
			if !ok1 || !ok2 {
				return nil, ErrPredecessorUnplaced
			}
			c1, c2 := colors[e1], colors[e2]

			switch {
			case c1 == Red && c2 == Red:
				y := maxInt(p1.Y, p2.Y)
				t = grid.Tile{X: xCursor, Y: y}
				xCursor++
			case c1 == Blue && c2 == Blue:
				x := maxInt(p1.X, p2.X)
				t = grid.Tile{X: x, Y: yCursor}
				yCursor++
			default:
				t = grid.Tile{X: xCursor, Y: yCursor}
				xCursor++
				yCursor++
			}
			if err := placeVertex(l, t, v, op); err != nil {
				return nil, err
			}
			if err := routeIncoming(l, g, e1, p1, t, c1); err != nil {
				return nil, err
			}
			if err := routeIncoming(l, g, e2, p2, t, c2); err != nil {
				return nil, err
			}
			continue

		default:
			return nil, ErrUnsupportedLogic
		}

		if err := placeVertex(l, t, v, op); err != nil {
			return nil, err
		}
	}

	if err := l.ShrinkToFit(); err != nil {
		return nil, err
	}
	return l, nil
}

func placeVertex(l *layout.Layout, t grid.Tile, v network.VertexID, op network.Op) error {
	return l.AssignVertex(t, v, op == network.PI, op == network.PO)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
