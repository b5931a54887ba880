package exact

import (
	"github.com/irifrance/gini/logic"
	"github.com/irifrance/gini/z"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/network"
)

// tvKey, teKey and tileKey index the tv/te and tc/tp variable families.
type tvKey struct {
	T grid.Tile
	V network.VertexID
}

type teKey struct {
	T grid.Tile
	E network.EdgeID
}

type tileKey struct {
	T1, T2 grid.Tile
}

// varSet holds one boolean literal per (tile,vertex), (tile,edge) and
// (tile,tile) instance of the variable families named in the component's
// design (tv, te, tc, tp), plus the integer-domain families vcl/tcl/tl
// represented as one-hot groups of literals over a bounded range, all
// built on a single logic.C circuit so that AND/OR/XOR/ITE combinators are
// shared (strashed) across constraint groups.
type varSet struct {
	c *logic.C

	tv map[tvKey]z.Lit
	te map[teKey]z.Lit
	tc map[tileKey]z.Lit
	tp map[tileKey]z.Lit

	vcl map[network.VertexID][]z.Lit // one-hot over [0,P)
	tcl map[grid.Tile][]z.Lit        // one-hot over [0,P), irregular clocking only
	tl  map[grid.Tile][]z.Lit        // one-hot over [0,maxLatch], artificial-latch only
}

const maxLatch = 3

func newVarSet(c *logic.C, g *grid.Grid, n *network.Network, scheme *clocking.Scheme, cfg Config) *varSet {
	vs := &varSet{
		c:   c,
		tv:  make(map[tvKey]z.Lit),
		te:  make(map[teKey]z.Lit),
		tc:  make(map[tileKey]z.Lit),
		tp:  make(map[tileKey]z.Lit),
		vcl: make(map[network.VertexID][]z.Lit),
	}
	tiles := g.GroundTiles()

	for _, t := range tiles {
		for _, v := range allLiveVertices(n) {
			vs.tv[tvKey{t, v}] = c.Lit()
		}
		for _, e := range allLiveEdges(n) {
			vs.te[teKey{t, e}] = c.Lit()
		}
	}
	for _, t1 := range tiles {
		for _, t2 := range tiles {
			if t1 == t2 {
				continue
			}
			vs.tc[tileKey{t1, t2}] = c.Lit()
			vs.tp[tileKey{t1, t2}] = c.Lit()
		}
	}
	for _, pi := range n.PIs() {
		vs.vcl[pi] = oneHot(c, scheme.P())
	}
	if !scheme.IsRegular() {
		vs.tcl = make(map[grid.Tile][]z.Lit, len(tiles))
		for _, t := range tiles {
			vs.tcl[t] = oneHot(c, scheme.P())
		}
	}
	if cfg.ArtificialLatch {
		vs.tl = make(map[grid.Tile][]z.Lit, len(tiles))
		for _, t := range tiles {
			vs.tl[t] = oneHot(c, maxLatch+1)
		}
	}
	return vs
}

func oneHot(c *logic.C, width int) []z.Lit {
	out := make([]z.Lit, width)
	for i := range out {
		out[i] = c.Lit()
	}
	return out
}

func allLiveVertices(n *network.Network) []network.VertexID {
	var out []network.VertexID
	seen := make(map[network.VertexID]bool)
	add := func(v network.VertexID) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	var walk func(v network.VertexID)
	walk = func(v network.VertexID) {
		add(v)
		succs, _ := n.Adjacent(v)
		for _, s := range succs {
			if !seen[s] {
				walk(s)
			}
		}
	}
	for _, pi := range n.PIs() {
		walk(pi)
	}
	return out
}

func allLiveEdges(n *network.Network) []network.EdgeID {
	var out []network.EdgeID
	for _, v := range allLiveVertices(n) {
		outs, _ := n.OutEdges(v)
		out = append(out, outs...)
	}
	return out
}
