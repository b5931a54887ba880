package heuristic

import "github.com/nanofcn/fcnpr/network"

// Color is the red/blue classification assigned to every edge before
// embedding: Red edges grow a path rightward, Blue edges grow downward.
type Color int

const (
	White Color = iota
	Red
	Blue
)

func opposite(c Color) Color {
	if c == Red {
		return Blue
	}
	if c == Blue {
		return Red
	}
	return White
}

// colorEdges assigns a Color to every edge of n, given a joint-DFS order.
// It walks order in reverse; for each vertex it fixes a color from whatever
// its incoming edges already carry (preferring Blue if any incoming edge is
// already Blue, Red otherwise), then paints every still-White incoming edge
// that color. Painting an edge cascades: the edge's other outgoing siblings
// at its source get the opposite color, and the target vertex's other
// incoming edges get the same color — this keeps every vertex's incoming
// edges uniform and every vertex's outgoing edges split red/blue whenever
// it fans out into both.
func colorEdges(n *network.Network, order []network.VertexID) map[network.EdgeID]Color {
	colors := make(map[network.EdgeID]Color)

	colorOf := func(e network.EdgeID) Color {
		if c, ok := colors[e]; ok {
			return c
		}
		return White
	}

	var setColor func(e network.EdgeID, c Color)
	setColor = func(e network.EdgeID, c Color) {
		if colorOf(e) != White {
			return
		}
		colors[e] = c

		from, to, err := n.EdgeEndpoints(e)
		if err != nil {
			return
		}
		if outs, err := n.OutEdges(from); err == nil {
			for _, sib := range outs {
				if sib != e && colorOf(sib) == White {
					setColor(sib, opposite(c))
				}
			}
		}
		if ins, err := n.InEdges(to); err == nil {
			for _, sib := range ins {
				if sib != e && colorOf(sib) == White {
					setColor(sib, c)
				}
			}
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		ins, err := n.InEdges(v)
		if err != nil || len(ins) == 0 {
			continue
		}

		c := Red
		for _, e := range ins {
			if colorOf(e) == Blue {
				c = Blue
				break
			}
		}
		for _, e := range ins {
			if colorOf(e) == White {
				setColor(e, c)
			}
		}
	}
	return colors
}
