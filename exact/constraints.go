package exact

import (
	"github.com/irifrance/gini/logic"
	"github.com/irifrance/gini/z"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/network"
)

const sumWidth = 16 // bits: generous headroom for path-length sums on toy grids

// buildConstraints emits every constraint family onto c and returns the
// list of roots that must all be asserted true. Families are numbered as
// in the component design; a family that an option disables (crossings,
// border I/O, fan-in balance, ...) is simply not appended.
func buildConstraints(c *logic.C, g *grid.Grid, n *network.Network, vs *varSet, scheme *clocking.Scheme, cfg Config) []z.Lit {
	var roots []z.Lit
	tiles := g.GroundTiles()
	verts := allLiveVertices(n)
	edges := allLiveEdges(n)

	roots = append(roots, occupancy(c, vs, tiles, verts, edges, cfg)...)
	roots = append(roots, placement(c, vs, tiles, verts)...)
	if !scheme.IsRegular() {
		roots = append(roots, phaseDomain(c, vs, tiles, scheme.P())...)
	}
	if cfg.ArtificialLatch {
		roots = append(roots, latchValidity(c, vs, tiles, edges)...)
	}
	roots = append(roots, adjacencyVertex(c, g, vs, tiles, verts, n, scheme)...)
	roots = append(roots, adjacencyEdge(c, g, vs, tiles, edges, n, scheme)...)
	roots = append(roots, pathLifting(c, vs, tiles)...)
	roots = append(roots, transitivity(c, vs, tiles)...)
	roots = append(roots, acyclicity(c, vs, tiles)...)
	roots = append(roots, piPhase(c, vs, tiles, n, scheme)...)
	if !cfg.Desynchronize {
		roots = append(roots, fanInBalance(c, vs, tiles, edges, n, scheme, cfg)...)
	}
	roots = append(roots, degreePruning(c, g, vs, tiles, verts, n, scheme)...)
	roots = append(roots, connectionCount(c, vs, tiles, verts, n)...)
	if cfg.BorderIO {
		roots = append(roots, borderIO(c, g, vs, tiles, n)...)
	}
	if cfg.WireLimit > 0 {
		roots = append(roots, wireLengthCap(c, vs, tiles, edges, cfg.WireLimit)...)
	}
	if cfg.Crossings && cfg.CrossingsLimit > 0 {
		roots = append(roots, crossingCap(c, vs, tiles, verts, edges, cfg.CrossingsLimit)...)
	}
	if cfg.StraightInverterOnly {
		roots = append(roots, straightInverterOnly(c, vs, tiles, n)...)
	}
	return roots
}

func atMostOne(c *logic.C, lits []z.Lit) z.Lit {
	var pairs []z.Lit
	for i := range lits {
		for j := i + 1; j < len(lits); j++ {
			pairs = append(pairs, c.Or(lits[i].Not(), lits[j].Not()))
		}
	}
	return c.Ands(pairs...)
}

func exactlyOne(c *logic.C, lits []z.Lit) z.Lit {
	return c.And(atMostOne(c, lits), c.Ors(lits...))
}

// 1. Occupancy: at most one vertex per tile; with crossings at most two
// edges per tile, else at most one of (vertex ∪ edges).
func occupancy(c *logic.C, vs *varSet, tiles []grid.Tile, verts []network.VertexID, edges []network.EdgeID, cfg Config) []z.Lit {
	var roots []z.Lit
	for _, t := range tiles {
		var vLits []z.Lit
		for _, v := range verts {
			vLits = append(vLits, vs.tv[tvKey{t, v}])
		}
		roots = append(roots, atMostOne(c, vLits))

		var eLits []z.Lit
		for _, e := range edges {
			eLits = append(eLits, vs.te[teKey{t, e}])
		}
		if cfg.Crossings {
			roots = append(roots, atMostTwo(c, eLits))
		} else {
			roots = append(roots, atMostOne(c, append(append([]z.Lit{}, vLits...), eLits...)))
		}
	}
	return roots
}

func atMostTwo(c *logic.C, lits []z.Lit) z.Lit {
	var triples []z.Lit
	for i := range lits {
		for j := i + 1; j < len(lits); j++ {
			for k := j + 1; k < len(lits); k++ {
				triples = append(triples, c.Ors(lits[i].Not(), lits[j].Not(), lits[k].Not()))
			}
		}
	}
	return c.Ands(triples...)
}

// 2. Placement: every vertex occupies exactly one tile.
func placement(c *logic.C, vs *varSet, tiles []grid.Tile, verts []network.VertexID) []z.Lit {
	var roots []z.Lit
	for _, v := range verts {
		var lits []z.Lit
		for _, t := range tiles {
			lits = append(lits, vs.tv[tvKey{t, v}])
		}
		roots = append(roots, exactlyOne(c, lits))
	}
	return roots
}

// 3. Clock-phase domain: irregular tcl[t] is exactly one of [0,P).
func phaseDomain(c *logic.C, vs *varSet, tiles []grid.Tile, p int) []z.Lit {
	var roots []z.Lit
	for _, t := range tiles {
		roots = append(roots, exactlyOne(c, vs.tcl[t]))
	}
	return roots
}

// 4. Latch validity: tl[t] is exactly one of [0,maxLatch]; forced to 0
// when no edge is routed through t.
func latchValidity(c *logic.C, vs *varSet, tiles []grid.Tile, edges []network.EdgeID) []z.Lit {
	var roots []z.Lit
	for _, t := range tiles {
		group := vs.tl[t]
		roots = append(roots, exactlyOne(c, group))
		var anyEdge []z.Lit
		for _, e := range edges {
			anyEdge = append(anyEdge, vs.te[teKey{t, e}])
		}
		zeroBit := group[0]
		roots = append(roots, c.Implies(c.Ors(anyEdge...).Not(), zeroBit))
	}
	return roots
}

// 5/6. Adjacency-vertex: a placed vertex must have, for every successor
// (resp. predecessor), some outgoing- (resp. incoming-) clocked neighbor
// holding the continuation.
func adjacencyVertex(c *logic.C, g *grid.Grid, vs *varSet, tiles []grid.Tile, verts []network.VertexID, n *network.Network, scheme *clocking.Scheme) []z.Lit {
	var roots []z.Lit
	for _, t := range tiles {
		for _, v := range verts {
			place := vs.tv[tvKey{t, v}]

			outs, _ := n.OutEdges(v)
			for _, e := range outs {
				_, to, err := n.EdgeEndpoints(e)
				if err != nil {
					continue
				}
				var disj []z.Lit
				for _, at := range g.Surrounding2D(t) {
					if !clockAdjacent(g, scheme, t, at, true) {
						continue
					}
					disj = append(disj, c.And(vs.tc[tileKey{t, at}], c.Or(vs.tv[tvKey{at, to}], vs.te[teKey{at, e}])))
				}
				roots = append(roots, c.Implies(place, c.Ors(disj...)))
			}

			ins, _ := n.InEdges(v)
			for _, e := range ins {
				from, _, err := n.EdgeEndpoints(e)
				if err != nil {
					continue
				}
				var disj []z.Lit
				for _, at := range g.Surrounding2D(t) {
					if !clockAdjacent(g, scheme, at, t, true) {
						continue
					}
					disj = append(disj, c.And(vs.tc[tileKey{at, t}], c.Or(vs.tv[tvKey{at, from}], vs.te[teKey{at, e}])))
				}
				roots = append(roots, c.Implies(place, c.Ors(disj...)))
			}
		}
	}
	return roots
}

// clockAdjacent reports whether a ground-tile pair may carry information
// in the from->to direction under scheme, by the scheme's own IsOutgoing.
// For an irregular scheme that consults the phases already set on the
// scheme, not the tcl variables; a tile without a set phase is adjacent to
// nothing, so with no phases set no pair is adjacent.
func clockAdjacent(g *grid.Grid, scheme *clocking.Scheme, from, to grid.Tile, outgoing bool) bool {
	if outgoing {
		return scheme.IsOutgoing(g, from, to, nil)
	}
	return scheme.IsIncoming(g, from, to, nil)
}

// 7. Adjacency-edge: a wire tile for e must have a clocked neighbor
// carrying e's logical continuation, in both directions.
func adjacencyEdge(c *logic.C, g *grid.Grid, vs *varSet, tiles []grid.Tile, edges []network.EdgeID, n *network.Network, scheme *clocking.Scheme) []z.Lit {
	var roots []z.Lit
	for _, t := range tiles {
		for _, e := range edges {
			onTile := vs.te[teKey{t, e}]
			from, to, err := n.EdgeEndpoints(e)
			if err != nil {
				continue
			}

			var outDisj []z.Lit
			for _, at := range g.Surrounding2D(t) {
				if !clockAdjacent(g, scheme, t, at, true) {
					continue
				}
				outDisj = append(outDisj, c.And(vs.tc[tileKey{t, at}], c.Or(vs.tv[tvKey{at, to}], vs.te[teKey{at, e}])))
			}
			roots = append(roots, c.Implies(onTile, c.Ors(outDisj...)))

			var inDisj []z.Lit
			for _, at := range g.Surrounding2D(t) {
				if !clockAdjacent(g, scheme, at, t, true) {
					continue
				}
				inDisj = append(inDisj, c.And(vs.tc[tileKey{at, t}], c.Or(vs.tv[tvKey{at, from}], vs.te[teKey{at, e}])))
			}
			roots = append(roots, c.Implies(onTile, c.Ors(inDisj...)))
		}
	}
	return roots
}

// 8. Path lifting: every direct flow is also a path.
func pathLifting(c *logic.C, vs *varSet, tiles []grid.Tile) []z.Lit {
	var roots []z.Lit
	for k, tc := range vs.tc {
		roots = append(roots, c.Implies(tc, vs.tp[k]))
	}
	return roots
}

// 9. Transitivity of paths.
func transitivity(c *logic.C, vs *varSet, tiles []grid.Tile) []z.Lit {
	var roots []z.Lit
	for _, t1 := range tiles {
		for _, t2 := range tiles {
			if t1 == t2 {
				continue
			}
			p12, ok := vs.tp[tileKey{t1, t2}]
			if !ok {
				continue
			}
			for _, t3 := range tiles {
				if t3 == t1 || t3 == t2 {
					continue
				}
				p23, ok := vs.tp[tileKey{t2, t3}]
				if !ok {
					continue
				}
				p13 := vs.tp[tileKey{t1, t3}]
				roots = append(roots, c.Implies(c.And(p12, p23), p13))
			}
		}
	}
	return roots
}

// 10. Acyclicity: tp never relates a tile to itself (no tp[t,t] literal
// exists at all — see newVarSet — so a self-path can't even be expressed);
// this walks every 2-cycle instead, forbidding t1 and t2 from reaching
// each other simultaneously.
func acyclicity(c *logic.C, vs *varSet, tiles []grid.Tile) []z.Lit {
	var roots []z.Lit
	for i, t1 := range tiles {
		for _, t2 := range tiles[i+1:] {
			p12, ok1 := vs.tp[tileKey{t1, t2}]
			p21, ok2 := vs.tp[tileKey{t2, t1}]
			if !ok1 || !ok2 {
				continue
			}
			roots = append(roots, c.Ors(p12.Not(), p21.Not()))
		}
	}
	return roots
}

// 11. PI phase: a PI placed on t must emit at t's phase.
func piPhase(c *logic.C, vs *varSet, tiles []grid.Tile, n *network.Network, scheme *clocking.Scheme) []z.Lit {
	var roots []z.Lit
	for _, pi := range n.PIs() {
		group := vs.vcl[pi]
		for _, t := range tiles {
			place, ok := vs.tv[tvKey{t, pi}]
			if !ok {
				continue
			}
			if scheme.IsRegular() {
				phase, _ := scheme.PhaseOf(t)
				roots = append(roots, c.Implies(place, group[phase]))
			} else {
				tclGroup := vs.tcl[t]
				for i := range group {
					roots = append(roots, c.Implies(c.And(place, group[i]), tclGroup[i]))
				}
			}
		}
	}
	return roots
}

// 12. Fan-in balance: every root-to-PO path sums to the same delay.
func fanInBalance(c *logic.C, vs *varSet, tiles []grid.Tile, edges []network.EdgeID, n *network.Network, scheme *clocking.Scheme, cfg Config) []z.Lit {
	var roots []z.Lit
	for _, po := range n.POs() {
		paths, err := n.GetAllPaths(po)
		if err != nil || len(paths) < 2 {
			continue
		}
		sums := make([][]z.Lit, 0, len(paths))
		for _, p := range paths {
			var terms [][]z.Lit
			for _, e := range p {
				for _, t := range tiles {
					terms = append(terms, edgeWeight(c, vs, t, e, cfg, scheme.P()))
				}
			}
			from, _, _ := n.EdgeEndpoints(p[0])
			if isPI(n, from) {
				terms = append(terms, oneHotValue(c, vs.vcl[from], sumWidth))
			}
			sums = append(sums, sumAll(c, terms))
		}
		for i := 1; i < len(sums); i++ {
			roots = append(roots, equalBits(c, sums[0], sums[i]))
		}
	}
	return roots
}

func isPI(n *network.Network, v network.VertexID) bool {
	op, err := n.Op(v)
	return err == nil && op == network.PI
}

// edgeWeight is the per-(tile,edge) contribution to a path's delay sum:
// 1 if e is routed through t, or 1+v*P when artificial latches are enabled
// and t's latch value is v (a latch value v counts as v*P phases).
func edgeWeight(c *logic.C, vs *varSet, t grid.Tile, e network.EdgeID, cfg Config, p int) []z.Lit {
	te := vs.te[teKey{t, e}]
	if !cfg.ArtificialLatch {
		return iteWeight(c, te, 1, sumWidth)
	}
	acc := constBits(c, 0, sumWidth)
	for v, bit := range vs.tl[t] {
		sel := c.And(te, bit)
		acc = addBits(c, acc, iteWeight(c, sel, 1+v*p, sumWidth))
	}
	return acc
}

// 13. Degree pruning: forbid placing v on a tile with too few clocked
// neighbors for its arity; for an irregular scheme, too few 2-D neighbors
// for its total in+out arity.
func degreePruning(c *logic.C, g *grid.Grid, vs *varSet, tiles []grid.Tile, verts []network.VertexID, n *network.Network, scheme *clocking.Scheme) []z.Lit {
	var roots []z.Lit
	for _, t := range tiles {
		outDeg, inDeg := 0, 0
		for _, at := range g.Surrounding2D(t) {
			if clockAdjacent(g, scheme, t, at, true) {
				outDeg++
			}
			if clockAdjacent(g, scheme, at, t, true) {
				inDeg++
			}
		}
		for _, v := range verts {
			outNeed, _ := n.OutDegree(v)
			inNeed, _ := n.InDegree(v)
			tooFew := outNeed > outDeg || inNeed > inDeg
			if !scheme.IsRegular() {
				tooFew = outNeed+inNeed > len(g.Surrounding2D(t))
			}
			if tooFew {
				roots = append(roots, vs.tv[tvKey{t, v}].Not())
			}
		}
	}
	return roots
}

// 14. Connection count: when a vertex is placed at t, its tc in/out
// arrow totals there must match its network fan-in/out degree exactly.
func connectionCount(c *logic.C, vs *varSet, tiles []grid.Tile, verts []network.VertexID, n *network.Network) []z.Lit {
	var roots []z.Lit
	for _, t := range tiles {
		var outArrows, inArrows []z.Lit
		for k, tc := range vs.tc {
			if k.T1 == t {
				outArrows = append(outArrows, tc)
			}
			if k.T2 == t {
				inArrows = append(inArrows, tc)
			}
		}
		for _, v := range verts {
			place, ok := vs.tv[tvKey{t, v}]
			if !ok {
				continue
			}
			outDeg, _ := n.OutDegree(v)
			inDeg, _ := n.InDegree(v)
			roots = append(roots, c.Implies(place, equalBits(c, sumAll(c, wrapEach(outArrows)), constBits(c, outDeg, sumWidth))))
			roots = append(roots, c.Implies(place, equalBits(c, sumAll(c, wrapEach(inArrows)), constBits(c, inDeg, sumWidth))))
		}
	}
	return roots
}

func wrapEach(lits []z.Lit) [][]z.Lit {
	out := make([][]z.Lit, len(lits))
	for i, l := range lits {
		out[i] = []z.Lit{l}
	}
	return out
}

// 15. Border I/O: PI/PO vertices may only occupy border tiles.
func borderIO(c *logic.C, g *grid.Grid, vs *varSet, tiles []grid.Tile, n *network.Network) []z.Lit {
	var roots []z.Lit
	ioVerts := append(append([]network.VertexID{}, n.PIs()...), n.POs()...)
	for _, t := range tiles {
		if len(g.Surrounding2D(t)) >= 4 {
			for _, v := range ioVerts {
				if place, ok := vs.tv[tvKey{t, v}]; ok {
					roots = append(roots, place.Not())
				}
			}
		}
	}
	return roots
}

// 16. Wire-length cap: no edge occupies more than limit tiles.
func wireLengthCap(c *logic.C, vs *varSet, tiles []grid.Tile, edges []network.EdgeID, limit int) []z.Lit {
	var roots []z.Lit
	for _, e := range edges {
		var lits []z.Lit
		for _, t := range tiles {
			lits = append(lits, vs.te[teKey{t, e}])
		}
		roots = append(roots, atMostK(c, lits, limit))
	}
	return roots
}

// 17. Crossing cap: bound the number of tiles hosting two edges at once.
func crossingCap(c *logic.C, vs *varSet, tiles []grid.Tile, verts []network.VertexID, edges []network.EdgeID, limit int) []z.Lit {
	var crossingLits []z.Lit
	for _, t := range tiles {
		var eLits []z.Lit
		for _, e := range edges {
			eLits = append(eLits, vs.te[teKey{t, e}])
		}
		crossingLits = append(crossingLits, atLeastTwo(c, eLits))
	}
	return []z.Lit{atMostK(c, crossingLits, limit)}
}

func atLeastTwo(c *logic.C, lits []z.Lit) z.Lit {
	return atMostOne(c, lits).Not()
}

// atMostK is a naive cardinality encoding (commutative-sum equality
// against the bound) adequate for the small tile counts the exact engine
// searches; a production solver binding would substitute a native
// AtMost/sequential-counter encoding here instead.
func atMostK(c *logic.C, lits []z.Lit, k int) z.Lit {
	terms := make([][]z.Lit, len(lits))
	for i, l := range lits {
		terms[i] = iteWeight(c, l, 1, sumWidth)
	}
	if k == 0 {
		return c.Ors(lits...).Not()
	}
	total := sumAll(c, terms)
	var leq []z.Lit
	for v := 0; v <= k; v++ {
		leq = append(leq, equalBits(c, total, constBits(c, v, sumWidth)))
	}
	return c.Ors(leq...)
}

// 18. Straight-inverter option: a NOT vertex's placing tile must have its
// in/out neighbor pair on opposite sides.
func straightInverterOnly(c *logic.C, vs *varSet, tiles []grid.Tile, n *network.Network) []z.Lit {
	var roots []z.Lit
	for _, v := range allLiveVertices(n) {
		op, err := n.Op(v)
		if err != nil || op != network.Not {
			continue
		}
		// Forbid every (in-neighbor, out-neighbor) arrow pair at the
		// placing tile whose directions are not opposite.
		for _, t := range tiles {
			for _, in := range tiles {
				for _, out := range tiles {
					dIn, dOut := stepDirection(t, in), stepDirection(t, out)
					if dIn == direction.None || dOut == direction.None || dOut == direction.Opposite(dIn) {
						continue
					}
					bent := c.And(vs.tc[tileKey{in, t}], vs.tc[tileKey{t, out}])
					roots = append(roots, c.Implies(vs.tv[tvKey{t, v}], bent.Not()))
				}
			}
		}
	}
	return roots
}
