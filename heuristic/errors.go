package heuristic

import "errors"

// ErrUnsupportedLogic indicates Place was given a network containing an
// operation outside AOIG (anything other than ZERO, ONE, PI, PO, BUF, NOT,
// AND, OR, F1O2, F1O3, W) — most commonly an un-decomposed XOR or MAJ.
var ErrUnsupportedLogic = errors.New("heuristic: network is not AOIG (contains XOR, MAJ, or another non-AOIG operation)")

// ErrEmptyNetwork indicates Place was given a network with no primary
// inputs.
var ErrEmptyNetwork = errors.New("heuristic: network has no primary inputs")

// ErrGridTooSmallForCrossing indicates a wire needed to lift to a crossing
// layer that the grid does not have.
var ErrGridTooSmallForCrossing = errors.New("heuristic: grid has no crossing layer available for this wire")

// ErrPredecessorUnplaced indicates Place reached a vertex before one of its
// predecessors was placed, which should not happen for a valid joint-DFS
// order over an acyclic network.
var ErrPredecessorUnplaced = errors.New("heuristic: predecessor vertex has no tile yet")
