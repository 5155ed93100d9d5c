package oracle

import (
	"context"

	"github.com/katalvlaran/ptazone/constraint"
)

// SatResult is the three-valued outcome of IsSat.
type SatResult uint8

const (
	// Unsat means the constraint set has no satisfying assignment.
	Unsat SatResult = iota
	// Sat means the constraint set has at least one satisfying assignment.
	Sat
	// SatUnknown means the Oracle could not decide satisfiability within
	// its resources (e.g. a solver timeout).
	SatUnknown
)

// String renders the sat result for diagnostics.
func (r SatResult) String() string {
	switch r {
	case Unsat:
		return "unsat"
	case Sat:
		return "sat"
	default:
		return "unknown"
	}
}

// CoverageResult is the four-valued outcome of CheckCoverage.
type CoverageResult uint8

const (
	// Yes means C ⊨ c: C ∧ ¬c is unsatisfiable.
	Yes CoverageResult = iota
	// No means C ⊨ ¬c: C ∧ c is unsatisfiable.
	No
	// Split means both C ∧ c and C ∧ ¬c are satisfiable.
	Split
	// Unknown means the Oracle could not classify c within its resources.
	// Callers should treat this conservatively and prune the affected
	// branch rather than guess.
	Unknown
)

// String renders the coverage result for diagnostics.
func (r CoverageResult) String() string {
	switch r {
	case Yes:
		return "YES"
	case No:
		return "NO"
	case Split:
		return "SPLIT"
	default:
		return "UNKNOWN"
	}
}

// Oracle is the external decision procedure over linear real arithmetic
// that the PDBM engine consults at every comparison point, with all
// parameters fixed non-negative and all clocks fixed non-negative.
// Implementations may be stateful internally (e.g. one solver instance
// per goroutine) but must behave as a pure function of their arguments
// from the engine's point of view.
//
// Transport failures (a genuine error from the underlying decision
// procedure, as opposed to an inconclusive verdict) are returned as a
// non-nil error and propagate to the engine's caller unchanged; engine
// state is never mutated by a failed call since everything in this
// module is immutable.
type Oracle interface {
	// IsSat reports whether C is satisfiable.
	IsSat(ctx context.Context, c constraint.ConstraintSet) (SatResult, error)

	// CheckCoverage classifies constraint c under the assumption C.
	CheckCoverage(ctx context.Context, c constraint.ParameterConstraint, under constraint.ConstraintSet) (CoverageResult, error)
}
