package linexpr

import "errors"

// Sentinel errors for package linexpr.
var (
	// ErrNonFiniteCoefficient indicates a parameter coefficient was
	// constructed from a non-finite Rational (±Inf or NaN); only the
	// constant term may be non-finite, and only as a sentinel bound.
	ErrNonFiniteCoefficient = errors.New("linexpr: parameter coefficient must be finite")
)
