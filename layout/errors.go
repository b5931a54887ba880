package layout

import "errors"

// Sentinel errors for gate-layout operations.
var (
	// ErrOutOfRange indicates a tile outside the layout's grid was
	// supplied; this is a programmer error.
	ErrOutOfRange = errors.New("layout: tile out of range")
	// ErrTileOccupiedByVertex indicates AssignEdge was called on a tile
	// already bound to a vertex (AssignEdge "must not be a
	// gate tile").
	ErrTileOccupiedByVertex = errors.New("layout: tile already holds a vertex")
	// ErrTileOccupiedByEdges indicates a tile already holds routed edges.
	// AssignVertex does not return it: it clears the tile's edges instead.
	ErrTileOccupiedByEdges = errors.New("layout: tile already holds edges")
	// ErrVertexAlreadyPlaced indicates the vertex is already bound to a
	// different tile (the bijection would be broken).
	ErrVertexAlreadyPlaced = errors.New("layout: vertex already placed on another tile")
	// ErrEdgeNotOnTile indicates DissociateEdge referenced an edge absent
	// from the tile's edge set.
	ErrEdgeNotOnTile = errors.New("layout: edge not assigned to tile")
	// ErrNegativeLatch indicates a negative latch delay was requested.
	ErrNegativeLatch = errors.New("layout: latch delay must be >= 0")
	// ErrLatchOnNonWire indicates a latch was requested on a tile that is
	// not a wire tile (latch delay is zero on non-wire tiles).
	ErrLatchOnNonWire = errors.New("layout: latch only allowed on wire tiles")
	// ErrEmptyLayout indicates ShrinkToFit was called on a layout with no
	// occupied tiles, so no bounding box exists.
	ErrEmptyLayout = errors.New("layout: cannot shrink an empty layout")
)
