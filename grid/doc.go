// Package grid models the rectangular 3-D face set a gate layout is placed
// on: x in [0,X), y in [0,Y), z in [0,Z), with Z>=2. z=0 is the ground layer;
// z>0 are crossing layers.
//
// Grid is a value-free coordinate space: it answers neighbor, adjacency, and
// distance queries in O(1) and never stores per-tile payload (that lives in
// package layout, keyed by Tile). Boundaries are closed: any query that would
// leave [0,X)x[0,Y)x[0,Z) reports ok=false rather than wrapping, mirroring
// gridgraph's closed-boundary neighbor offsets generalized from 2-D Conn4/8
// to a 3-D axis-aligned scheme.
package grid
