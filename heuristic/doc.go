// Package heuristic implements the orthogonal-embedding placer/router: a
// fast, non-exact alternative to package exact that only accepts AOIG
// networks (AND/OR/NOT plus fan-outs, wires, and I/Os).
//
// Place runs four steps: a joint depth-first traversal that interleaves
// every primary input's DFS into one topological order, a red/blue edge
// coloring of that order walked in reverse, an orthogonal embedding that
// grows the layout top-left to bottom-right as it replays the order
// forward, and a final shrink to the occupied bounding box. No
// backtracking or solver is used. Under a 2DDWave scheme, where every east
// or south step advances the phase by one, the layout satisfies the
// clocking by construction; Place does not check the scheme it is given,
// and under other schemes (USE, for example) the placed tiles may violate
// the clocking.
package heuristic
