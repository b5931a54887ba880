package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates X<1, Y<1 or Z<2 was requested.
	ErrBadDimensions = errors.New("grid: dimensions must have X>=1, Y>=1, Z>=2")
	// ErrOutOfRange indicates a Tile or coordinate outside the current
	// dimensions was supplied to an operation that requires a valid Tile.
	// OutOfRange failures are programmer errors: callers should validate
	// coordinates before calling, not handle this at runtime.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)
