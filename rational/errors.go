package rational

import "errors"

// Sentinel errors for package rational.
//
// Error priority: malformed input (ErrInvalidString) -> division by zero
// (ErrDivideByZero). Structural misuse elsewhere in this package (e.g.
// constructing a Rational from a nil *big.Rat) panics rather than
// returning an error: a programming error, not a recoverable condition.
var (
	// ErrInvalidString indicates FromString was given text that is not a
	// valid integer, decimal, or "num/den" rational literal.
	ErrInvalidString = errors.New("rational: invalid numeric string")

	// ErrDivideByZero indicates FromRatio was given a zero denominator.
	ErrDivideByZero = errors.New("rational: division by zero")
)
