// Package network implements the logic network: a directed acyclic
// multigraph of typed operations (ZERO, ONE, PI, PO, BUF, NOT, AND, OR, XOR,
// MAJ, F1O2, F1O3, W) with primary I/O, a builder that enforces fan-in
// arity, and the three rewrites used to prepare a network for placement:
// balance-insertion, XOR decomposition, and fan-out normalization.
//
// Vertices and edges live in two arenas (Network.vertices, Network.edges)
// addressed by stable int-valued IDs (VertexID, EdgeID): a logic network's
// vertex identity is structural, not named, so an arena index serves
// better than a user-supplied name. Vertices are created by the builder
// methods and removed only by rewrites (XorDecompose retires the XOR vertex it expands;
// InsertFanouts never removes vertices; InsertBalanceVertex retires the edge
// it splits, not a vertex).
package network
