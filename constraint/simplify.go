package constraint

import "context"

// CoverageFunc decides whether c is entailed by rest: the narrow shape
// Simplify needs from an oracle's CheckCoverage. It is a function type
// rather than an oracle interface so this package never has to import an
// oracle implementation; package oracle provides an adapter from its
// Oracle to this shape.
type CoverageFunc func(ctx context.Context, c ParameterConstraint, rest ConstraintSet) (entailed bool, err error)

// Simplify drops every constraint in s that check proves is already
// implied by the rest of s, returning a smaller, logically equivalent
// ConstraintSet. It is opt-in: And never calls this, so composing
// ConstraintSets stays a cheap, pure, allocation-predictable operation;
// callers that want a minimal representation call Simplify explicitly
// wherever they have a coverage oracle on hand.
//
// Constraints are tested left to right; a constraint confirmed redundant
// is dropped immediately and excluded from the context used for every
// later test, so the surviving prefix never depends on a constraint that
// Simplify itself removed. One pass suffices: the conjunction of the
// current working set is invariant under each individual drop, so the
// final set remains logically equivalent to s as a whole.
func (s ConstraintSet) Simplify(ctx context.Context, check CoverageFunc) (ConstraintSet, error) {
	if len(s.constraints) < 2 {
		return s, nil
	}
	kept := make([]ParameterConstraint, 0, len(s.constraints))
	for i, c := range s.constraints {
		rest := make([]ParameterConstraint, 0, len(kept)+len(s.constraints)-i-1)
		rest = append(rest, kept...)
		rest = append(rest, s.constraints[i+1:]...)
		entailed, err := check(ctx, c, ConstraintSet{constraints: rest})
		if err != nil {
			return ConstraintSet{}, err
		}
		if entailed {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return TRUE, nil
	}
	return ConstraintSet{constraints: kept}, nil
}
