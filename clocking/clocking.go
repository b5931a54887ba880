package clocking

import (
	"strings"

	"github.com/nanofcn/fcnpr/grid"
)

// Name identifies a named clocking scheme family, case-insensitively
// resolved by Named.
type Name string

// Recognized scheme names. Aliases are handled by Named.
const (
	Open3       Name = "OPEN3"
	Open4       Name = "OPEN4"
	TwoDDWave3  Name = "2DDWAVE3"
	TwoDDWave4  Name = "2DDWAVE4"
	Use         Name = "USE"
	Res         Name = "RES"
	Bancs       Name = "BANCS"
	Topolinano3 Name = "TOPOLINANO3"
	Topolinano4 Name = "TOPOLINANO4"
)

// Scheme is a named clocking scheme: either regular (a periodic P x P phase
// matrix) or irregular (phases assigned per ground tile).
type Scheme struct {
	name    Name
	p       int
	regular bool
	matrix  [][]int // only set when regular; PxP, values in [0,P)

	// irregular holds explicit per-ground-tile phases when !regular. Tiles
	// absent from the map have an undefined phase (PhaseOf returns ok=false).
	irregular map[grid.Tile]int
}

// generator produces the canonical P x P matrix entry at (row, col) for a
// named regular scheme.
type generator func(row, col, p int) int

var generators = map[Name]generator{
	TwoDDWave3: func(r, c, p int) int { return mod(r+c, p) },
	TwoDDWave4: func(r, c, p int) int { return mod(r+c, p) },
	Use:        func(r, c, p int) int { return mod(2*r+c, p) },
	Res:        func(r, c, p int) int { return mod(r+2*c, p) },
	Bancs:      func(r, c, p int) int { return mod(r-c, p) },
	Open3:      func(r, c, p int) int { return mod(c, p) },
	Open4:      func(r, c, p int) int { return mod(c, p) },
	Topolinano3: func(r, c, p int) int { return mod(r, p) },
	Topolinano4: func(r, c, p int) int { return mod(r, p) },
}

var fixedPhases = map[Name]int{
	Open3: 3, Open4: 4,
	TwoDDWave3: 3, TwoDDWave4: 4,
	Use: 4, Res: 4, Bancs: 4,
	Topolinano3: 3, Topolinano4: 4,
}

// canonical maps every accepted alias (upper-cased, punctuation stripped) to
// its canonical Name.
var canonical = map[string]Name{
	"OPEN3": Open3,
	"OPEN4": Open4,
	"OPEN":  Open4,

	"2DDWAVE3": TwoDDWave3,
	"2DDWAVE4": TwoDDWave4,
	"2DDWAVE":  TwoDDWave4,
	"DIAG3":    TwoDDWave3,
	"DIAG4":    TwoDDWave4,
	"DIAG":     TwoDDWave4,

	"USE": Use,
	"RES": Res,

	"BANCS": Bancs,

	"TOPOLINANO3": Topolinano3,
	"TOPOLINANO4": Topolinano4,
	"TOPOLINANO":  Topolinano4,
}

func mod(v, p int) int {
	v %= p
	if v < 0 {
		v += p
	}
	return v
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		switch r {
		case ' ', '_', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Named resolves a clocking-scheme name case-insensitively, returning
// ErrUnknownName for anything not in the registry and
// ErrUnsupportedCombination for the explicitly-rejected 3-phase USE.
func Named(name string) (*Scheme, error) {
	norm := normalize(name)
	if norm == "USE3" {
		// 3 phases + USE is an explicitly unsupported combination.
		return nil, ErrUnsupportedCombination
	}
	canon, ok := canonical[norm]
	if !ok {
		return nil, ErrUnknownName
	}
	return newRegularNamed(canon)
}

func newRegularNamed(canon Name) (*Scheme, error) {
	p, ok := fixedPhases[canon]
	if !ok {
		return nil, ErrUnknownName
	}
	if canon == Use && p == 3 {
		return nil, ErrUnsupportedCombination
	}
	gen := generators[canon]
	matrix := buildMatrix(p, gen)
	return NewRegular(canon, p, matrix)
}

func buildMatrix(p int, gen generator) [][]int {
	m := make([][]int, p)
	for r := 0; r < p; r++ {
		m[r] = make([]int, p)
		for c := 0; c < p; c++ {
			m[r][c] = gen(r, c, p)
		}
	}
	return m
}

// NewRegular builds a regular scheme from an explicit P x P matrix. It
// validates that the matrix is square of size P and contains exactly P
// distinct phases within [0,P).
func NewRegular(name Name, p int, matrix [][]int) (*Scheme, error) {
	if p < 3 {
		return nil, ErrBadPhaseCount
	}
	if len(matrix) != p {
		return nil, ErrBadMatrix
	}
	seen := make(map[int]bool, p)
	for _, row := range matrix {
		if len(row) != p {
			return nil, ErrBadMatrix
		}
		for _, ph := range row {
			if ph < 0 || ph >= p {
				return nil, ErrBadMatrix
			}
			seen[ph] = true
		}
	}
	if len(seen) != p {
		return nil, ErrBadMatrix
	}
	cp := make([][]int, p)
	for i := range matrix {
		cp[i] = append([]int(nil), matrix[i]...)
	}
	return &Scheme{name: name, p: p, regular: true, matrix: cp}, nil
}

// NewIrregular builds an irregular scheme with phase count P and no tiles
// assigned yet; phases are filled in one at a time with SetPhase, mirroring
// the exact engine's per-tile phase variable tcl[t].
func NewIrregular(name Name, p int) (*Scheme, error) {
	if p < 3 {
		return nil, ErrBadPhaseCount
	}
	return &Scheme{name: name, p: p, regular: false, irregular: make(map[grid.Tile]int)}, nil
}

// Name returns the scheme's name.
func (s *Scheme) Name() Name { return s.name }

// P returns the phase count.
func (s *Scheme) P() int { return s.p }

// IsRegular reports whether the scheme stores a periodic matrix (true) or
// per-tile phases (false).
func (s *Scheme) IsRegular() bool { return s.regular }

// SetPhase assigns ground tile t's phase in an irregular scheme. Returns
// ErrIrregularOnly for regular schemes and ErrPhaseOutOfRange for phase
// outside [0,P).
func (s *Scheme) SetPhase(t grid.Tile, phase int) error {
	if s.regular {
		return ErrIrregularOnly
	}
	if phase < 0 || phase >= s.p {
		return ErrPhaseOutOfRange
	}
	s.irregular[t.Ground()] = phase
	return nil
}

// PhaseOf returns the phase of tile t: for regular schemes, scheme[y mod
// P][x mod P]; for irregular schemes, the assigned value, or ok=false if
// unassigned.
func (s *Scheme) PhaseOf(t grid.Tile) (phase int, ok bool) {
	if s.regular {
		return s.matrix[mod(t.Y, s.p)][mod(t.X, s.p)], true
	}
	ph, ok := s.irregular[t.Ground()]
	return ph, ok
}

// IsIncoming reports whether t1 and t2 are 2-D neighbors on the same z layer
// and phase(t2)+latch(t2)+1 ≡ phase(t1) (mod P), i.e. t1 may receive
// information from t2. latch returns a tile's latch delay in phases (0 for
// tiles without a latch).
func (s *Scheme) IsIncoming(g *grid.Grid, t1, t2 grid.Tile, latch func(grid.Tile) int) bool {
	if t1.Z != t2.Z {
		return false
	}
	if !isIn2DNeighborhood(g, t1, t2) {
		return false
	}
	p1, ok1 := s.PhaseOf(t1)
	p2, ok2 := s.PhaseOf(t2)
	if !ok1 || !ok2 {
		return false
	}
	l := 0
	if latch != nil {
		l = latch(t2)
	}
	return mod(p2+l+1, s.p) == p1
}

// IsOutgoing reports whether t1 may send information to t2, i.e.
// IsIncoming(t2,t1).
func (s *Scheme) IsOutgoing(g *grid.Grid, t1, t2 grid.Tile, latch func(grid.Tile) int) bool {
	return s.IsIncoming(g, t2, t1, latch)
}

func isIn2DNeighborhood(g *grid.Grid, t1, t2 grid.Tile) bool {
	for _, n := range g.Surrounding2D(t1) {
		if n == t2 {
			return true
		}
	}
	return false
}
