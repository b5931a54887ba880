package heuristic

import "github.com/nanofcn/fcnpr/network"

// jointDFS computes a topological order that interleaves the DFS of every
// primary input: it walks depth-first from each PI in turn, visiting a
// vertex only once every one of its predecessors has already been visited.
func jointDFS(n *network.Network) []network.VertexID {
	visited := make(map[network.VertexID]bool)
	var order []network.VertexID

	var visit func(v network.VertexID)
	visit = func(v network.VertexID) {
		if visited[v] {
			return
		}
		preds, _ := n.InvAdjacent(v)
		for _, p := range preds {
			if !visited[p] {
				return // not ready: some predecessor hasn't been visited yet
			}
		}
		visited[v] = true
		order = append(order, v)
		succs, _ := n.Adjacent(v)
		for _, s := range succs {
			visit(s)
		}
	}

	for _, pi := range n.PIs() {
		visit(pi)
	}
	// A second sweep catches vertices whose predecessors only became fully
	// visited after a sibling PI's traversal reached them (e.g. a vertex fed
	// by two different PIs' subtrees that converge out of DFS order).
	changed := true
	for changed {
		changed = false
		for _, v := range allVertices(n) {
			if !visited[v] {
				before := len(order)
				visit(v)
				if len(order) > before {
					changed = true
				}
			}
		}
	}
	return order
}

func allVertices(n *network.Network) []network.VertexID {
	var out []network.VertexID
	for _, pi := range n.PIs() {
		out = append(out, pi)
		collectDescendants(n, pi, make(map[network.VertexID]bool), &out)
	}
	return out
}

func collectDescendants(n *network.Network, v network.VertexID, seen map[network.VertexID]bool, out *[]network.VertexID) {
	succs, _ := n.Adjacent(v)
	for _, s := range succs {
		if seen[s] {
			continue
		}
		seen[s] = true
		*out = append(*out, s)
		collectDescendants(n, s, seen, out)
	}
}
