// Package port maps a completed gate layout's per-tile direction masks to
// cell-level port positions: PortList per (tile, vertex) and per (tile,
// edge), looked up in a library keyed by tile size and cardinal direction.
//
// The lookup tables (Library5x5, Library4x4) are precomputed maps from a
// small key space (cardinal direction, occurrence index) to a fixed (u,v)
// position, rather than a formula evaluated per call.
package port
