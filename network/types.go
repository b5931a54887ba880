package network

// Op identifies the kind of logic operation a vertex performs.
type Op int

// The vertex kinds a network can hold.
const (
	Zero Op = iota
	One
	PI
	PO
	Buf
	Not
	And
	Or
	Xor
	Maj
	F1O2
	F1O3
	W
)

var opNames = [...]string{
	Zero: "ZERO", One: "ONE", PI: "PI", PO: "PO", Buf: "BUF", Not: "NOT",
	And: "AND", Or: "OR", Xor: "XOR", Maj: "MAJ", F1O2: "F1O2", F1O3: "F1O3", W: "W",
}

// String renders the operation's name, e.g. "AND".
func (op Op) String() string {
	if int(op) < 0 || int(op) >= len(opNames) {
		return "UNKNOWN"
	}
	return opNames[op]
}

// Arity returns the expected fan-in count for op: 0 for PI/constants, 1 for
// NOT/BUF/W/F1O2/F1O3/PO, 2 for AND/OR/XOR, 3 for MAJ.
func (op Op) Arity() int {
	switch op {
	case Zero, One, PI:
		return 0
	case PO, Buf, Not, W, F1O2, F1O3:
		return 1
	case And, Or, Xor:
		return 2
	case Maj:
		return 3
	default:
		return -1
	}
}

// FanoutCount returns the fixed logical out-degree F1O2/F1O3 vertices carry
// once fully wired (2 and 3 respectively), or 0 for every other operation
// (whose out-degree is unconstrained by arity, only by substitute()).
func (op Op) FanoutCount() int {
	switch op {
	case F1O2:
		return 2
	case F1O3:
		return 3
	default:
		return 0
	}
}

// VertexID indexes Network's vertex arena. The zero value never denotes a
// real vertex (arena index 0 is reserved).
type VertexID int

// EdgeID indexes Network's edge arena. The zero value never denotes a real
// edge (arena index 0 is reserved).
type EdgeID int

// Vertex is one node of the logic network.
type Vertex struct {
	ID   VertexID
	Op   Op
	Name string // port name for PI/PO, empty otherwise
	removed bool

	in  []EdgeID // incoming edges, insertion order
	out []EdgeID // outgoing edges, insertion order
}

// Edge is one directed connection of the logic network.
type Edge struct {
	ID   EdgeID
	From VertexID
	To   VertexID
	removed bool
}

// Network is an arena-backed directed acyclic multigraph of Vertex/Edge.
type Network struct {
	vertices []*Vertex // index 0 unused
	edges    []*Edge   // index 0 unused

	pis []VertexID
	pos []VertexID

	zero VertexID // lazily created ZERO vertex, 0 if none yet
	one  VertexID // lazily created ONE vertex, 0 if none yet

	counts map[Op]int
}

// New creates an empty logic network.
func New() *Network {
	return &Network{
		vertices: make([]*Vertex, 1, 16), // reserve index 0
		edges:    make([]*Edge, 1, 16),
		counts:   make(map[Op]int),
	}
}

// Counts returns a snapshot of live vertex counts per operation, kept in
// sync with every add/remove.
func (n *Network) Counts() map[Op]int {
	out := make(map[Op]int, len(n.counts))
	for op, c := range n.counts {
		out[op] = c
	}
	return out
}

func (n *Network) vertex(id VertexID) (*Vertex, error) {
	if id <= 0 || int(id) >= len(n.vertices) || n.vertices[id] == nil || n.vertices[id].removed {
		return nil, ErrVertexNotFound
	}
	return n.vertices[id], nil
}

func (n *Network) edge(id EdgeID) (*Edge, error) {
	if id <= 0 || int(id) >= len(n.edges) || n.edges[id] == nil || n.edges[id].removed {
		return nil, ErrEdgeNotFound
	}
	return n.edges[id], nil
}

func (n *Network) newVertex(op Op, name string) VertexID {
	id := VertexID(len(n.vertices))
	n.vertices = append(n.vertices, &Vertex{ID: id, Op: op, Name: name})
	n.counts[op]++
	return id
}

func (n *Network) removeVertex(id VertexID) {
	v, err := n.vertex(id)
	if err != nil {
		return
	}
	v.removed = true
	n.counts[v.Op]--
}

func (n *Network) addEdge(from, to VertexID) (EdgeID, error) {
	fv, err := n.vertex(from)
	if err != nil {
		return 0, err
	}
	tv, err := n.vertex(to)
	if err != nil {
		return 0, err
	}
	id := EdgeID(len(n.edges))
	e := &Edge{ID: id, From: from, To: to}
	n.edges = append(n.edges, e)
	fv.out = append(fv.out, id)
	tv.in = append(tv.in, id)
	return id, nil
}

// detachEdge detaches e from its current endpoints' adjacency lists
// without deleting the Edge record (callers typically immediately redirect
// or tombstone it).
func (n *Network) detachEdge(e *Edge) {
	if fv, err := n.vertex(e.From); err == nil {
		fv.out = removeID(fv.out, e.ID)
	}
	if tv, err := n.vertex(e.To); err == nil {
		tv.in = removeID(tv.in, e.ID)
	}
}

func removeID(ids []EdgeID, target EdgeID) []EdgeID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
