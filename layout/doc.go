// Package layout implements the gate layout: a grid (package grid) plus the
// tile<->vertex bijection, tile->edge multimap, per-tile and per-edge
// direction masks, latch map, and primary I/O bookkeeping,
// together with the information-flow, critical-path/throughput, energy, and
// bounding-box analyses.
//
// Mutation goes exclusively through the Assign*/Dissociate* methods, which
// keep the bimap and direction-mask invariants in sync on every call; the
// package is split across assign.go (mutation), query.go (read-only
// lookups), flow.go (information-flow and timing analysis), and
// geometry.go (bounding-box operations).
package layout
