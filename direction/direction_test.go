package direction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanofcn/fcnpr/direction"
)

// TestOpposite_Involution verifies Opposite(Opposite(d)) == d for every
// subset of {N,E,S,W}.
func TestOpposite_Involution(t *testing.T) {
	for s := direction.None; s <= direction.All; s++ {
		got := direction.Opposite(direction.Opposite(s))
		assert.Equal(t, s, got, "Opposite(Opposite(%s)) must equal %s", s, s)
	}
}

// TestOpposite_SingleBits checks the four named single-bit mappings.
func TestOpposite_SingleBits(t *testing.T) {
	assert.Equal(t, direction.South, direction.Opposite(direction.North))
	assert.Equal(t, direction.North, direction.Opposite(direction.South))
	assert.Equal(t, direction.West, direction.Opposite(direction.East))
	assert.Equal(t, direction.East, direction.Opposite(direction.West))
}

func TestUnionIntersectSubtract(t *testing.T) {
	ne := direction.Union(direction.North, direction.East)
	assert.True(t, direction.Has(ne, direction.North))
	assert.True(t, direction.Has(ne, direction.East))
	assert.False(t, direction.Has(ne, direction.South))

	assert.Equal(t, direction.North, direction.Intersect(ne, direction.Union(direction.North, direction.South)))
	assert.Equal(t, direction.East, direction.Subtract(ne, direction.North))
}

func TestComplement(t *testing.T) {
	assert.Equal(t, direction.All, direction.Complement(direction.None))
	assert.Equal(t, direction.None, direction.Complement(direction.All))
	assert.Equal(t, direction.Union(direction.South, direction.West), direction.Complement(direction.Union(direction.North, direction.East)))
}

func TestCountAndBits(t *testing.T) {
	s := direction.Union(direction.North, direction.West)
	assert.Equal(t, 2, direction.Count(s))
	assert.Equal(t, []direction.Set{direction.North, direction.West}, direction.Bits(s))
}

func TestString(t *testing.T) {
	assert.Equal(t, "-", direction.None.String())
	assert.Equal(t, "NW", direction.Union(direction.North, direction.West).String())
}

func TestFromName(t *testing.T) {
	d, ok := direction.FromName("n")
	assert.True(t, ok)
	assert.Equal(t, direction.North, d)

	_, ok = direction.FromName("Q")
	assert.False(t, ok)
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, '↔', direction.Union(direction.East, direction.West).Glyph())
	assert.Equal(t, '+', direction.Union(direction.North, direction.East).Glyph())
}
