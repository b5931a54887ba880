package direction

import "strings"

// Set is a four-bit value over {North, East, South, West}. Bit order is
// MSB=North ... LSB=West, so the empty set is 0 and the full set is 0xF.
type Set uint8

// The four cardinal bits. None and All are the empty and full sets.
const (
	None  Set = 0
	North Set = 1 << 3
	East  Set = 1 << 2
	South Set = 1 << 1
	West  Set = 1 << 0
	All   Set = North | East | South | West
)

// names lists the four bits in a fixed, documented order used by String and
// by any caller that needs to enumerate single-bit members deterministically.
var names = [...]struct {
	bit  Set
	name string
	glyph rune
}{
	{North, "N", '↑'},
	{East, "E", '→'},
	{South, "S", '↓'},
	{West, "W", '←'},
}

// Union returns the bitwise union (OR) of a and b.
func Union(a, b Set) Set { return a | b }

// Intersect returns the bitwise intersection (AND) of a and b.
func Intersect(a, b Set) Set { return a & b }

// Complement returns the bits of All not present in s.
func Complement(s Set) Set { return All &^ s }

// Subtract removes every bit of b from a.
func Subtract(a, b Set) Set { return a &^ b }

// Opposite rotates s by two bits: N<->S, E<->W. Opposite(Opposite(s)) == s
// for every s, including multi-bit sets (each bit is independently mirrored).
func Opposite(s Set) Set {
	var out Set
	if s&North != 0 {
		out |= South
	}
	if s&South != 0 {
		out |= North
	}
	if s&East != 0 {
		out |= West
	}
	if s&West != 0 {
		out |= East
	}
	return out
}

// Has reports whether s contains every bit of sub (sub may be multi-bit).
func Has(s, sub Set) bool { return s&sub == sub }

// Any reports whether s and other share at least one bit.
func Any(s, other Set) bool { return s&other != 0 }

// Count returns the number of set bits (0..4).
func Count(s Set) int {
	n := 0
	for _, e := range names {
		if s&e.bit != 0 {
			n++
		}
	}
	return n
}

// Bits returns the single-bit members of s in the fixed N,E,S,W order.
func Bits(s Set) []Set {
	out := make([]Set, 0, 4)
	for _, e := range names {
		if s&e.bit != 0 {
			out = append(out, e.bit)
		}
	}
	return out
}

// String renders s as a concatenation of its letters in N,E,S,W order, or
// "-" for the empty set. It never panics.
func (s Set) String() string {
	if s == None {
		return "-"
	}
	var b strings.Builder
	for _, e := range names {
		if s&e.bit != 0 {
			b.WriteString(e.name)
		}
	}
	return b.String()
}

// Glyph returns a single arrow rune summarizing s for the textual dump:
// a lone bit renders as its arrow, two opposite bits render as a through
// arrow (↔ or ↕), anything else (a bend or a fan) renders as '+'.
func (s Set) Glyph() rune {
	switch s {
	case None:
		return ' '
	case North:
		return '↑'
	case South:
		return '↓'
	case East:
		return '→'
	case West:
		return '←'
	case North | South:
		return '↕'
	case East | West:
		return '↔'
	default:
		return '+'
	}
}

// FromName parses a single-letter direction name ("N","E","S","W"),
// case-insensitively. ok is false for any other input.
func FromName(name string) (s Set, ok bool) {
	switch strings.ToUpper(name) {
	case "N":
		return North, true
	case "E":
		return East, true
	case "S":
		return South, true
	case "W":
		return West, true
	default:
		return None, false
	}
}
