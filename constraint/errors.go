package constraint

import "errors"

// ErrNaNConstraint indicates a ParameterConstraint was constructed from an
// expression whose constant term evaluated to NaN, a programming error
// rather than a value any well-formed constraint can hold.
var ErrNaNConstraint = errors.New("constraint: expression constant is NaN")
