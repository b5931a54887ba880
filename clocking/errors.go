package clocking

import "errors"

// Sentinel errors for clocking operations.
var (
	// ErrUnknownName indicates a clocking-scheme name was not found in the
	// registry resolved by Named.
	ErrUnknownName = errors.New("clocking: unknown scheme name")
	// ErrBadPhaseCount indicates a phase count P<3 was requested.
	ErrBadPhaseCount = errors.New("clocking: phase count must be >= 3")
	// ErrBadMatrix indicates a regular scheme's matrix does not contain
	// exactly P distinct phases in 0..P-1.
	ErrBadMatrix = errors.New("clocking: matrix must contain exactly P distinct phases in [0,P)")
	// ErrIrregularOnly indicates SetPhase was called on a regular scheme.
	ErrIrregularOnly = errors.New("clocking: SetPhase requires an irregular scheme")
	// ErrPhaseOutOfRange indicates a phase outside [0,P) was assigned.
	ErrPhaseOutOfRange = errors.New("clocking: phase out of range")
	// ErrUnsupportedCombination indicates a combination of scheme and phase
	// count that is explicitly unsupported (3-phase USE).
	ErrUnsupportedCombination = errors.New("clocking: 3-phase USE is not supported")
)
