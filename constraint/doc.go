// Package constraint implements ParameterConstraint, a normalised linear
// inequality E ⋈ 0 over parameters, and ConstraintSet, a sorted conjunction
// of such constraints representing a convex region of parameter space.
//
// ConstraintSet's empty value denotes ⊤ (no restriction); there is no
// syntactic ⊥ — unsatisfiability is discovered only by consulting an
// oracle.Oracle, never by this package, which stays purely syntactic.
package constraint
