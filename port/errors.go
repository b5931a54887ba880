package port

import (
	"errors"
	"fmt"

	"github.com/nanofcn/fcnpr/grid"
)

// ErrUnknownSize indicates a tile-size family with no registered library.
var ErrUnknownSize = errors.New("port: unknown tile size")

// UnsupportedPortPatternError indicates a tile's direction signature (or the
// number of wires sharing one side) has no entry in the cell library. It
// surfaces only at cell expansion; the gate layout itself remains valid.
type UnsupportedPortPatternError struct {
	Tile grid.Tile
}

func (e *UnsupportedPortPatternError) Error() string {
	return fmt.Sprintf("port: unsupported direction pattern on tile %v", e.Tile)
}
