// Package clocking implements the periodic tile->phase map (and its
// irregular, per-tile variant) that a gate layout uses to decide which
// neighbor a tile may receive information from and which neighbor it may
// send information to.
//
// A regular Scheme stores a P x P matrix of phases (0..P-1) and answers
// PhaseOf by modular indexing; an irregular Scheme stores an explicit
// tile->phase map populated by the exact engine's per-tile phase variables.
package clocking
