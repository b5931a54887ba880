package network

// VertexCount returns the number of live vertices. If includeIO is false,
// PI/PO vertices are excluded; if includeConstants is false, ZERO/ONE are
// excluded.
func (n *Network) VertexCount(includeIO, includeConstants bool) int {
	total := 0
	for op, c := range n.counts {
		if !includeIO && (op == PI || op == PO) {
			continue
		}
		if !includeConstants && (op == Zero || op == One) {
			continue
		}
		total += c
	}
	return total
}

// EdgeCount returns the number of live edges.
func (n *Network) EdgeCount() int {
	total := 0
	for _, e := range n.edges {
		if e != nil && !e.removed {
			total++
		}
	}
	return total
}

// PIs returns every live primary-input VertexID in creation order.
func (n *Network) PIs() []VertexID { return liveOnly(n, n.pis) }

// POs returns every live primary-output VertexID in creation order.
func (n *Network) POs() []VertexID { return liveOnly(n, n.pos) }

func liveOnly(n *Network, ids []VertexID) []VertexID {
	out := make([]VertexID, 0, len(ids))
	for _, id := range ids {
		if _, err := n.vertex(id); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// Op returns the operation kind of v.
func (n *Network) Op(v VertexID) (Op, error) {
	vx, err := n.vertex(v)
	if err != nil {
		return 0, err
	}
	return vx.Op, nil
}

// Name returns the port name of v (only meaningful for PI/PO).
func (n *Network) Name(v VertexID) (string, error) {
	vx, err := n.vertex(v)
	if err != nil {
		return "", err
	}
	return vx.Name, nil
}

// InEdges returns v's incoming EdgeIDs in insertion order.
func (n *Network) InEdges(v VertexID) ([]EdgeID, error) {
	vx, err := n.vertex(v)
	if err != nil {
		return nil, err
	}
	return append([]EdgeID(nil), vx.in...), nil
}

// OutEdges returns v's outgoing EdgeIDs in insertion order.
func (n *Network) OutEdges(v VertexID) ([]EdgeID, error) {
	vx, err := n.vertex(v)
	if err != nil {
		return nil, err
	}
	return append([]EdgeID(nil), vx.out...), nil
}

// InDegree returns len(InEdges(v)).
func (n *Network) InDegree(v VertexID) (int, error) {
	vx, err := n.vertex(v)
	if err != nil {
		return 0, err
	}
	return len(vx.in), nil
}

// OutDegree returns len(OutEdges(v)).
func (n *Network) OutDegree(v VertexID) (int, error) {
	vx, err := n.vertex(v)
	if err != nil {
		return 0, err
	}
	return len(vx.out), nil
}

// Adjacent returns the successors of v (targets of its out-edges).
func (n *Network) Adjacent(v VertexID) ([]VertexID, error) {
	vx, err := n.vertex(v)
	if err != nil {
		return nil, err
	}
	out := make([]VertexID, 0, len(vx.out))
	for _, eid := range vx.out {
		e, err := n.edge(eid)
		if err != nil {
			continue
		}
		out = append(out, e.To)
	}
	return out, nil
}

// InvAdjacent returns the predecessors of v (sources of its in-edges).
func (n *Network) InvAdjacent(v VertexID) ([]VertexID, error) {
	vx, err := n.vertex(v)
	if err != nil {
		return nil, err
	}
	out := make([]VertexID, 0, len(vx.in))
	for _, eid := range vx.in {
		e, err := n.edge(eid)
		if err != nil {
			continue
		}
		out = append(out, e.From)
	}
	return out, nil
}

// EdgeEndpoints returns the (From, To) of edge e.
func (n *Network) EdgeEndpoints(e EdgeID) (from, to VertexID, err error) {
	ex, err := n.edge(e)
	if err != nil {
		return 0, 0, err
	}
	return ex.From, ex.To, nil
}

// Path is a root-to-vertex sequence of edges, root first.
type Path []EdgeID

// GetAllPaths enumerates every edge path from a source (a vertex with no
// in-edges: PI, ZERO, or ONE) to v. Used by the exact engine's fan-in
// balance constraint.
func (n *Network) GetAllPaths(v VertexID) ([]Path, error) {
	if _, err := n.vertex(v); err != nil {
		return nil, err
	}
	var paths []Path
	var walk func(cur VertexID, acc Path)
	walk = func(cur VertexID, acc Path) {
		ins, _ := n.InEdges(cur)
		if len(ins) == 0 {
			// acc is root-to-cur in reverse (cur appended-from order); reverse it.
			p := make(Path, len(acc))
			for i, e := range acc {
				p[len(acc)-1-i] = e
			}
			paths = append(paths, p)
			return
		}
		for _, eid := range ins {
			e, err := n.edge(eid)
			if err != nil {
				continue
			}
			walk(e.From, append(acc, eid))
		}
	}
	walk(v, nil)
	return paths, nil
}
