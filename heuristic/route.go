package heuristic

import (
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/layout"
	"github.com/nanofcn/fcnpr/network"
)

// straightPath enumerates the ground-layer tiles between a and b inclusive,
// which must share exactly one axis (a.X==b.X xor a.Y==b.Y, or a==b).
func straightPath(a, b grid.Tile) []grid.Tile {
	a.Z, b.Z = 0, 0
	if a == b {
		return []grid.Tile{a}
	}
	var out []grid.Tile
	if a.X == b.X {
		step := 1
		if b.Y < a.Y {
			step = -1
		}
		for y := a.Y; ; y += step {
			out = append(out, grid.Tile{X: a.X, Y: y})
			if y == b.Y {
				break
			}
		}
		return out
	}
	step := 1
	if b.X < a.X {
		step = -1
	}
	for x := a.X; ; x += step {
		out = append(out, grid.Tile{X: x, Y: a.Y})
		if x == b.X {
			break
		}
	}
	return out
}

// concatPath joins path segments end to end, dropping the duplicate tile
// shared by a segment boundary.
func concatPath(parts ...[]grid.Tile) []grid.Tile {
	var out []grid.Tile
	for _, p := range parts {
		if len(out) > 0 && len(p) > 0 && out[len(out)-1] == p[0] {
			p = p[1:]
		}
		out = append(out, p...)
	}
	return out
}

// resolveWireTile returns ground, or the tile directly above it when ground
// already carries a wire (the crossing case), or ErrGridTooSmallForCrossing
// if the grid has no layer above.
func resolveWireTile(l *layout.Layout, g *grid.Grid, ground grid.Tile) (grid.Tile, error) {
	if !l.IsWireTile(ground) {
		return ground, nil
	}
	above, ok := g.Above(ground)
	if !ok {
		return grid.Tile{}, ErrGridTooSmallForCrossing
	}
	return above, nil
}

func stepDir(a, b grid.Tile) direction.Set {
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

// routeIncoming wires edge e from the gate tile pit to the gate tile t,
// bending once at the point a Red path would reach by moving along pit's
// row, or a Blue path would reach by moving along pit's column. The two
// straight segments collapse into one whenever the bend coincides with an
// endpoint, which is exactly the in-degree-1 placement rules' geometry.
func routeIncoming(l *layout.Layout, g *grid.Grid, e network.EdgeID, pit, t grid.Tile, c Color) error {
	var bend grid.Tile
	if c == Red {
		bend = grid.Tile{X: t.X, Y: pit.Y}
	} else {
		bend = grid.Tile{X: pit.X, Y: t.Y}
	}
	path := concatPath(straightPath(pit, bend), straightPath(bend, t))

	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		if i+1 < len(path)-1 {
			resolved, err := resolveWireTile(l, g, b)
			if err != nil {
				return err
			}
			b = resolved
			path[i+1] = b
		}

		outDir := stepDir(grid.Tile{X: a.X, Y: a.Y}, grid.Tile{X: b.X, Y: b.Y})
		inDir := direction.Opposite(outDir)

		if i == 0 {
			l.AssignTileOutDir(a, outDir)
		} else {
			if err := l.AssignEdge(a, e); err != nil {
				return err
			}
			l.AssignWireOutDir(a, e, outDir)
		}

		if i+1 == len(path)-1 {
			l.AssignTileInDir(b, inDir)
		} else {
			if err := l.AssignEdge(b, e); err != nil {
				return err
			}
			l.AssignWireInDir(b, e, inDir)
		}
	}
	return nil
}
