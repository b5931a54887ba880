package layout

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/network"
)

// DumpOptions controls Dump's rendering.
type DumpOptions struct {
	// Color enables ANSI escapes: PI tiles in green, PO tiles in red,
	// latched wire tiles underlined.
	Color bool
	// PhaseBackground additionally shades every tile by its clock phase,
	// cycling through a fixed palette modulo the scheme's phase count.
	PhaseBackground bool
	// Layer restricts the dump to a single z layer; pass -1 for all layers.
	Layer int
}

var phasePalette = []text.Color{text.BgBlue, text.BgCyan, text.BgMagenta, text.BgHiBlack}

// Dump renders the layout as a grid of single-glyph tiles, one line per row,
// blank-line-separated by layer. Gate tiles show the operation's glyph, wire
// tiles show a direction arrow (↑ ↓ ← → ↔ ↕ or + for a bend/fan), and free
// tiles show '.'.
func (l *Layout) Dump(opts DumpOptions) string {
	x, y, z := l.g.Dims()
	var b strings.Builder
	for layer := 0; layer < z; layer++ {
		if opts.Layer >= 0 && layer != opts.Layer {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "layer %d:\n", layer)
		for row := 0; row < y; row++ {
			for col := 0; col < x; col++ {
				t := l.g.LayerTiles(layer)[row*x+col]
				b.WriteString(l.tileGlyph(t, opts))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (l *Layout) tileGlyph(t grid.Tile, opts DumpOptions) string {
	glyph := "."
	if op, ok := l.GetOp(t); ok {
		glyph = opGlyph(op)
	} else if l.IsWireTile(t) {
		glyph = string(l.TileOutDirs(t).Glyph())
		if l.TileOutDirs(t) == 0 {
			glyph = string(l.TileInDirs(t).Glyph())
		}
	}

	if !opts.Color {
		return glyph
	}

	c := text.Colors{}
	if l.IsPI(t) {
		c = append(c, text.FgGreen)
	}
	if l.IsPO(t) {
		c = append(c, text.FgRed)
	}
	if l.Latch(t) > 0 {
		c = append(c, text.Underline)
	}
	if opts.PhaseBackground {
		if phase, ok := l.scheme.PhaseOf(t); ok && l.scheme.P() > 0 {
			c = append(c, phasePalette[phase%len(phasePalette)])
		}
	}
	if len(c) == 0 {
		return glyph
	}
	return c.Sprint(glyph)
}

func opGlyph(op network.Op) string {
	switch op {
	case network.Zero:
		return "0"
	case network.One:
		return "1"
	case network.PI:
		return "I"
	case network.PO:
		return "P"
	case network.Buf:
		return "B"
	case network.Not:
		return "N"
	case network.And:
		return "A"
	case network.Or:
		return "O"
	case network.Xor:
		return "X"
	case network.Maj:
		return "M"
	case network.F1O2:
		return "F"
	case network.F1O3:
		return "G"
	case network.W:
		return "W"
	default:
		return "?"
	}
}
