package constraint

import (
	"sort"
	"strings"
)

// ConstraintSet is an ordered, deduplicated conjunction of
// ParameterConstraints defining a convex region of parameter space. The
// zero value is TRUE, the empty conjunction ⊤.
type ConstraintSet struct {
	constraints []ParameterConstraint // sorted, deduplicated, no tautologies
}

// TRUE is the unrestricted constraint set ⊤.
var TRUE = ConstraintSet{}

// Of constructs a singleton ConstraintSet containing c, or TRUE if c is a
// syntactic tautology.
func Of(c ParameterConstraint) ConstraintSet {
	if c.IsTautology() {
		return TRUE
	}
	return ConstraintSet{constraints: []ParameterConstraint{c}}
}

// Constraints returns the constraints of s in canonical order. The
// returned slice must not be mutated.
func (s ConstraintSet) Constraints() []ParameterConstraint {
	return s.constraints
}

// Len returns the number of constraints in s.
func (s ConstraintSet) Len() int { return len(s.constraints) }

// IsTrue reports whether s is the unrestricted set ⊤.
func (s ConstraintSet) IsTrue() bool { return len(s.constraints) == 0 }

// And returns the conjunction s ∧ t: the sorted, deduplicated union of
// both constraint lists, dropping any constraint that is a syntactic
// tautology. This is a purely syntactic merge: it performs no subsumption
// analysis and never consults an oracle, so it never discovers a
// contradiction — that is the caller's job via oracle.Oracle.IsSat.
func (s ConstraintSet) And(t ConstraintSet) ConstraintSet {
	if s.IsTrue() {
		return t
	}
	if t.IsTrue() {
		return s
	}
	merged := make([]ParameterConstraint, 0, len(s.constraints)+len(t.constraints))
	merged = append(merged, s.constraints...)
	merged = append(merged, t.constraints...)
	return newSet(merged)
}

// AndConstraint returns s ∧ c.
func (s ConstraintSet) AndConstraint(c ParameterConstraint) ConstraintSet {
	return s.And(Of(c))
}

// newSet sorts, deduplicates, and strips tautologies from constraints,
// returning a canonical ConstraintSet.
func newSet(constraints []ParameterConstraint) ConstraintSet {
	sort.Slice(constraints, func(i, j int) bool {
		return constraints[i].Compare(constraints[j]) < 0
	})
	out := constraints[:0]
	for i, c := range constraints {
		if c.IsTautology() {
			continue
		}
		if len(out) > 0 && out[len(out)-1].Equal(c) {
			continue
		}
		out = append(out, c)
		_ = i
	}
	if len(out) == 0 {
		return TRUE
	}
	return ConstraintSet{constraints: out}
}

// Equal reports structural equality: same constraints in the same
// canonical order.
func (s ConstraintSet) Equal(t ConstraintSet) bool {
	if len(s.constraints) != len(t.constraints) {
		return false
	}
	for i := range s.constraints {
		if !s.constraints[i].Equal(t.constraints[i]) {
			return false
		}
	}
	return true
}

// String renders s as "⊤" or the conjunction of its constraints.
func (s ConstraintSet) String() string {
	if s.IsTrue() {
		return "⊤"
	}
	parts := make([]string, len(s.constraints))
	for i, c := range s.constraints {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ∧ ")
}
