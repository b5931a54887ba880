package layout

import (
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/network"
)

// candidateNeighbors returns every tile whose information-flow relationship
// with t is worth checking: t's in-layer 2-D neighbors, plus the tile
// directly above and below t (considered for crossings).
func (l *Layout) candidateNeighbors(t grid.Tile) []grid.Tile {
	out := l.g.Surrounding2D(t)
	if above, ok := l.g.Above(t); ok {
		out = append(out, above)
	}
	if below, ok := l.g.Below(t); ok {
		out = append(out, below)
	}
	return out
}

// isVertical reports whether n is directly above or below t (same x,y).
func isVertical(t, n grid.Tile) bool { return t.X == n.X && t.Y == n.Y && t.Z != n.Z }

// clockAllows reports whether clocking (extended with the same-column
// passthrough used for crossings) permits information to move from src to
// dst.
func (l *Layout) clockAllows(src, dst grid.Tile) bool {
	if isVertical(src, dst) {
		return true // same (x,y): a crossing via, always phase-aligned
	}
	return l.scheme.IsOutgoing(l.g, src, dst, l.Latch)
}

// isLogicalSuccessor reports whether n hosts the logical continuation of
// whatever occupies t: a successor vertex, the continuation of t's edge, or
// the target of t's edge.
func (l *Layout) isLogicalSuccessor(t, n grid.Tile) bool {
	if v, ok := l.vertexOfTile[t]; ok {
		if v2, ok := l.vertexOfTile[n]; ok {
			outs, _ := l.net.OutEdges(v)
			for _, eid := range outs {
				_, to, err := l.net.EdgeEndpoints(eid)
				if err == nil && to == v2 {
					return true
				}
			}
			return false
		}
		for e := range l.edgesOfTile[n] {
			from, _, err := l.net.EdgeEndpoints(e)
			if err == nil && from == v {
				return true
			}
		}
		return false
	}
	tEdges := l.edgesOfTile[t]
	if len(tEdges) == 0 {
		return false
	}
	if v2, ok := l.vertexOfTile[n]; ok {
		for e := range tEdges {
			_, to, err := l.net.EdgeEndpoints(e)
			if err == nil && to == v2 {
				return true
			}
		}
		return false
	}
	for e := range tEdges {
		if _, ok := l.edgesOfTile[n][e]; ok {
			return true
		}
	}
	return false
}

// OutgoingInformationFlow returns t's neighbors that are outgoing under
// clocking+latch and host a logical successor of t's occupant.
func (l *Layout) OutgoingInformationFlow(t grid.Tile) []grid.Tile {
	var out []grid.Tile
	for _, n := range l.candidateNeighbors(t) {
		if l.clockAllows(t, n) && l.isLogicalSuccessor(t, n) {
			out = append(out, n)
		}
	}
	return out
}

// IncomingInformationFlow returns t's neighbors that are incoming under
// clocking+latch and host a logical predecessor of t's occupant.
func (l *Layout) IncomingInformationFlow(t grid.Tile) []grid.Tile {
	var out []grid.Tile
	for _, n := range l.candidateNeighbors(t) {
		if l.clockAllows(n, t) && l.isLogicalSuccessor(n, t) {
			out = append(out, n)
		}
	}
	return out
}

// PathInfo is the result of SignalDelay: length counts tiles on the longest
// incoming information-flow path from any PI to t, delay is the same path
// expressed in absolute clock phases (seeded by the originating PI's
// phase), and diff is the largest delay difference among t's direct
// incoming paths (local unbalance).
type PathInfo struct {
	Length int
	Delay  int
	Diff   int
}

// SignalDelay computes PathInfo for t, memoizing gate-tile results (wire
// tiles are visited at most once per traversal anyway).
// Free tiles yield the zero PathInfo.
func (l *Layout) SignalDelay(t grid.Tile) PathInfo {
	if l.IsFreeTile(t) {
		return PathInfo{}
	}
	if l.IsGateTile(t) {
		if cached, ok := l.delayCache[t]; ok {
			return *cached
		}
	}
	info := l.signalDelayUncached(t, make(map[grid.Tile]bool))
	if l.IsGateTile(t) {
		cp := info
		l.delayCache[t] = &cp
	}
	return info
}

func (l *Layout) signalDelayUncached(t grid.Tile, visiting map[grid.Tile]bool) PathInfo {
	if visiting[t] {
		return PathInfo{} // defensive: break accidental cycles
	}
	visiting[t] = true
	defer delete(visiting, t)

	if v, ok := l.vertexOfTile[t]; ok {
		if deg, err := l.net.InDegree(v); err == nil && deg == 0 {
			phase, _ := l.scheme.PhaseOf(t)
			return PathInfo{Length: 0, Delay: phase, Diff: 0}
		}
	}

	incoming := l.IncomingInformationFlow(t)
	if len(incoming) == 0 {
		phase, _ := l.scheme.PhaseOf(t)
		return PathInfo{Length: 0, Delay: phase, Diff: 0}
	}

	bestLen, bestDelay := -1, 0
	minDelay, maxDelay := 0, 0
	for i, p := range incoming {
		child := l.SignalDelay(p)
		length := child.Length + 1
		delay := child.Delay + 1 + l.Latch(p)
		if i == 0 || delay < minDelay {
			minDelay = delay
		}
		if i == 0 || delay > maxDelay {
			maxDelay = delay
		}
		if length > bestLen {
			bestLen, bestDelay = length, delay
		}
	}
	return PathInfo{Length: bestLen, Delay: bestDelay, Diff: maxDelay - minDelay}
}

// CriticalPathAndThroughput returns the longest SignalDelay.Length at any PO
// tile, and the throughput derived from the largest SignalDelay.Diff at any
// PO divided by the scheme's phase count. A zero quotient is reported as
// throughput 1 (a perfectly balanced circuit stalls for 0 extra phases
// between inputs).
func (l *Layout) CriticalPathAndThroughput() (criticalPath, throughput int) {
	maxLen, maxDiff := 0, 0
	for t := range l.poTiles {
		info := l.SignalDelay(t)
		if info.Length > maxLen {
			maxLen = info.Length
		}
		if info.Diff > maxDiff {
			maxDiff = info.Diff
		}
	}
	p := l.scheme.P()
	tp := 0
	if p > 0 {
		tp = maxDiff / p
	}
	if tp == 0 {
		tp = 1
	}
	return maxLen, tp
}

// crossingCount returns the number of ground positions (x,y) that have a
// wire tile directly above them (z>0), i.e. routed crossings.
func (l *Layout) crossingCount() int {
	n := 0
	for t := range l.edgesOfTile {
		if t.Z == 0 {
			continue
		}
		if below, ok := l.g.Below(t); ok && l.IsWireTile(below) {
			n++
		}
	}
	return n
}

// Energy returns the (slow, fast) QCA-inspired energy-dissipation pair for
// the layout: a base wire count (wires minus twice the
// crossing count) plus an additive, linear contribution per gate operation,
// with bent-inverter vs. straight-inverter NOT gates counted separately
// depending on whether their input and output directions are opposite.
func (l *Layout) Energy() (slow, fast float64) {
	wires := 0
	for range l.edgesOfTile {
		wires++
	}
	crossings := l.crossingCount()
	baseWires := float64(wires - 2*crossings)
	slow += baseWires * wireEnergySlow
	fast += baseWires * wireEnergyFast

	for t, v := range l.vertexOfTile {
		op, err := l.net.Op(v)
		if err != nil {
			continue
		}
		if op == network.Not {
			if isStraightInverter(l.TileInDirs(t), l.TileOutDirs(t)) {
				slow += straightInverterEnergySlow
				fast += straightInverterEnergyFast
			} else {
				slow += bentInverterEnergySlow
				fast += bentInverterEnergyFast
			}
			continue
		}
		es, ef := opEnergy(op)
		slow += es
		fast += ef
	}
	return slow, fast
}

// isStraightInverter reports whether a NOT gate's input and output
// direction masks are exact opposites.
func isStraightInverter(in, out direction.Set) bool {
	return in != direction.None && out == direction.Opposite(in)
}

// Arbitrary-unit energy constants, QCA-inspired (the dissipation model used
// here is additive and linear, in the spirit of a quantum-dot cellular
// automata energy estimate).
const (
	wireEnergySlow = 0.55
	wireEnergyFast = 1.02

	straightInverterEnergySlow = 0.39
	straightInverterEnergyFast = 0.61
	bentInverterEnergySlow     = 0.67
	bentInverterEnergyFast     = 1.49

	andOrEnergySlow = 0.89
	andOrEnergyFast = 1.76
	majEnergySlow   = 0.99
	majEnergyFast   = 1.98
	bufEnergySlow   = 0.09
	bufEnergyFast   = 0.18
)

func opEnergy(op network.Op) (slow, fast float64) {
	switch op {
	case network.And, network.Or:
		return andOrEnergySlow, andOrEnergyFast
	case network.Maj:
		return majEnergySlow, majEnergyFast
	case network.Buf, network.F1O2, network.F1O3, network.W:
		return bufEnergySlow, bufEnergyFast
	default:
		return 0, 0
	}
}
