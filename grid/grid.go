package grid

import (
	"math"
	"math/rand"
)

// Tile is a single addressable face of the grid.
type Tile struct {
	X, Y, Z int
}

// Ground returns the ground-layer projection (x,y,0) of t.
func (t Tile) Ground() Tile { return Tile{t.X, t.Y, 0} }

// IsGroundLayer reports whether t lies in the ground layer (z==0).
func (t Tile) IsGroundLayer() bool { return t.Z == 0 }

// Grid is a rectangular 3-D face set. The zero value is not usable; build
// one with New.
type Grid struct {
	x, y, z int
}

// New constructs a Grid with the given dimensions. Z must be at least 2
// (ground layer plus at least one crossing layer).
// Complexity: O(1).
func New(x, y, z int) (*Grid, error) {
	if x < 1 || y < 1 || z < 2 {
		return nil, ErrBadDimensions
	}
	return &Grid{x: x, y: y, z: z}, nil
}

// Dims returns the grid's (X, Y, Z) extents.
func (g *Grid) Dims() (x, y, z int) { return g.x, g.y, g.z }

// Contains reports whether t addresses a face of g.
func (g *Grid) Contains(t Tile) bool {
	return t.X >= 0 && t.X < g.x && t.Y >= 0 && t.Y < g.y && t.Z >= 0 && t.Z < g.z
}

// neighbor2D computes the axis-aligned neighbor of t in direction (dx,dy),
// returning ok=false if it would leave the grid or cross a z boundary.
func (g *Grid) neighbor2D(t Tile, dx, dy int) (Tile, bool) {
	n := Tile{t.X + dx, t.Y + dy, t.Z}
	if !g.Contains(n) {
		return Tile{}, false
	}
	return n, true
}

// North returns the tile at (x, y-1, z).
func (g *Grid) North(t Tile) (Tile, bool) { return g.neighbor2D(t, 0, -1) }

// South returns the tile at (x, y+1, z).
func (g *Grid) South(t Tile) (Tile, bool) { return g.neighbor2D(t, 0, 1) }

// East returns the tile at (x+1, y, z).
func (g *Grid) East(t Tile) (Tile, bool) { return g.neighbor2D(t, 1, 0) }

// West returns the tile at (x-1, y, z).
func (g *Grid) West(t Tile) (Tile, bool) { return g.neighbor2D(t, -1, 0) }

// Above returns the tile directly above t (same x,y, z+1).
func (g *Grid) Above(t Tile) (Tile, bool) {
	n := Tile{t.X, t.Y, t.Z + 1}
	if !g.Contains(n) {
		return Tile{}, false
	}
	return n, true
}

// Below returns the tile directly below t (same x,y, z-1).
func (g *Grid) Below(t Tile) (Tile, bool) {
	n := Tile{t.X, t.Y, t.Z - 1}
	if !g.Contains(n) {
		return Tile{}, false
	}
	return n, true
}

// Surrounding2D returns the in-layer (same z) axis-aligned neighbors of t,
// in fixed N,E,S,W order, omitting any that would leave the grid.
func (g *Grid) Surrounding2D(t Tile) []Tile {
	out := make([]Tile, 0, 4)
	for _, fn := range []func(Tile) (Tile, bool){g.North, g.East, g.South, g.West} {
		if n, ok := fn(t); ok {
			out = append(out, n)
		}
	}
	return out
}

// GroundTiles returns every tile of the ground layer (z=0) in row-major
// (y ascending, then x ascending) order.
func (g *Grid) GroundTiles() []Tile {
	out := make([]Tile, 0, g.x*g.y)
	for y := 0; y < g.y; y++ {
		for x := 0; x < g.x; x++ {
			out = append(out, Tile{x, y, 0})
		}
	}
	return out
}

// LayerTiles returns every tile of layer z, row-major, or nil if z is out of
// range.
func (g *Grid) LayerTiles(z int) []Tile {
	if z < 0 || z >= g.z {
		return nil
	}
	out := make([]Tile, 0, g.x*g.y)
	for y := 0; y < g.y; y++ {
		for x := 0; x < g.x; x++ {
			out = append(out, Tile{x, y, z})
		}
	}
	return out
}

// CrossingLayerTiles returns every tile with z>0, layer by layer.
func (g *Grid) CrossingLayerTiles() []Tile {
	out := make([]Tile, 0, g.x*g.y*(g.z-1))
	for z := 1; z < g.z; z++ {
		out = append(out, g.LayerTiles(z)...)
	}
	return out
}

// RandomFace returns a uniformly chosen face of the grid using rng. If rng
// is nil, math/rand's package-level source is used. Intended for tests and
// optional randomized search.
func (g *Grid) RandomFace(rng *rand.Rand) Tile {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	return Tile{intn(g.x), intn(g.y), intn(g.z)}
}

// ManhattanDistance returns |dx|+|dy|+|dz| between a and b.
func ManhattanDistance(a, b Tile) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y) + absInt(a.Z-b.Z)
}

// EuclideanDistance returns the straight-line distance between a and b.
func EuclideanDistance(a, b Tile) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
