package port

import "github.com/nanofcn/fcnpr/direction"

// Port is a single boundary pin position on a cell, (u,v) in cell-local
// coordinates.
type Port struct {
	U, V int
}

// List is the set of input and output ports assigned to one tile.
type List struct {
	Inp []Port
	Out []Port
}

// Size identifies a cell-library tile-size family.
type Size int

const (
	Size5x5 Size = iota
	Size4x4
)

// library maps a single cardinal direction to an ordered list of candidate
// port slots: index 0 is the canonical single-gate position, later entries
// serve additional wires sharing that side of the tile (a crossing or a
// fan-out tile routing more than one edge through the same face).
type library map[direction.Set][]Port

// Library5x5 is the cell library for a 5x5 QCA-style tile. The four gate
// positions ({(2,0),(4,2),(2,4),(0,2)}) are the midpoints of each side;
// additional wires sharing a side use the two flanking positions.
func Library5x5() library {
	return library{
		direction.North: {{2, 0}, {1, 0}, {3, 0}},
		direction.East:  {{4, 2}, {4, 1}, {4, 3}},
		direction.South: {{2, 4}, {1, 4}, {3, 4}},
		direction.West:  {{0, 2}, {0, 1}, {0, 3}},
	}
}

// Library4x4 is the cell library for a 4x4 iNML-style tile. With no single
// center cell on a side, the two cells nearest center serve as the primary
// and secondary slots.
func Library4x4() library {
	return library{
		direction.North: {{1, 0}, {2, 0}},
		direction.East:  {{3, 1}, {3, 2}},
		direction.South: {{1, 3}, {2, 3}},
		direction.West:  {{0, 1}, {0, 2}},
	}
}

func libraryFor(size Size) (library, error) {
	switch size {
	case Size5x5:
		return Library5x5(), nil
	case Size4x4:
		return Library4x4(), nil
	default:
		return nil, ErrUnknownSize
	}
}

// lookup returns the occurrence-th slot (0-based) for a single-bit
// direction d, or ok=false if d is not a single cardinal bit or occurrence
// exceeds the library's capacity for that side.
func (lib library) lookup(d direction.Set, occurrence int) (Port, bool) {
	slots, ok := lib[d]
	if !ok || occurrence >= len(slots) {
		return Port{}, false
	}
	return slots[occurrence], true
}
