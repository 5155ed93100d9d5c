package pdbm

import "errors"

// NOTE ON NAMING & PREFIXING
// Every message is prefixed "pdbm: ..."; sentinels are never wrapped away
// by %w at a return boundary, so callers can always errors.Is against them.
//
// ERROR PRIORITY: structural misuse (construction-time panics, listed
// first) is checked before any Oracle call is made.

var (
	// ErrNoClocks indicates Initial was called with an empty clock set;
	// every PDBM must carry at least the zero clock.
	ErrNoClocks = errors.New("pdbm: initial: no clocks given")

	// ErrResetZeroClock indicates a ResetSet entry targeted the zero clock,
	// which is fixed at 0 and can never be reset.
	ErrResetZeroClock = errors.New("pdbm: reset: cannot reset the zero clock")

	// ErrInvalidResetValue indicates a ResetSet entry carried a negative or
	// non-finite value, a structural misuse caught at construction time.
	ErrInvalidResetValue = errors.New("pdbm: reset: value must be finite and non-negative")

	// ErrDuplicateClock indicates Initial was given the same Clock twice.
	ErrDuplicateClock = errors.New("pdbm: initial: duplicate clock")
)
