package pdbm

import (
	"context"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/oracle"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
)

// coverageRelation returns the relation ⋈κ such that "existingExpr ⋈κ
// candidateExpr" holds exactly when the bound (existingExpr, existingRel)
// already covers (is at least as tight as) the bound (candidateExpr,
// candidateRel): the standard DBM subsumption rule. Because the two
// bounds may compare equal as values while differing in strictness, this
// is NOT the same combinator as reltype.RelationType.And (which composes
// two consecutive legs of a path and is strict whenever either leg is
// strict): subsumption is strict only in the single asymmetric case where
// the existing bound is non-strict and the candidate is strict, since a
// non-strict existing bound "x ≤ m" does not cover the strict candidate
// "x < m" at the point x=m.
func coverageRelation(existingRel, candidateRel reltype.RelationType) reltype.RelationType {
	if !existingRel.IsStrict() && candidateRel.IsStrict() {
		return reltype.LT
	}
	return reltype.LE
}

// isInfinite reports whether e is the pure +∞ sentinel: a constant
// expression with no parameter terms. +∞ is only ever a whole sentinel
// bound, never mixed with parameter terms, so it must never be fed
// through Oracle-facing linear arithmetic; composition and coverage
// comparison special-case it below instead.
func isInfinite(e linexpr.LinearExpression) bool {
	return e.IsConst() && e.Const().IsPosInf()
}

// infiniteCell is the canonical "no upper bound" cell value.
func infiniteCell() cell {
	return cell{expr: linexpr.OfConst(rational.Inf()), rel: reltype.LE}
}

// composeVia builds the path-composition candidate for a Floyd-Warshall
// triple: the sum of two legs. If either leg is unbounded, the composed
// path carries no information regardless of the other leg's value, so the
// result is the +∞ sentinel rather than an expression mixing ∞ with
// parameter terms.
func composeVia(ik, kj cell) cell {
	if isInfinite(ik.expr) || isInfinite(kj.expr) {
		return infiniteCell()
	}
	return cell{expr: ik.expr.Add(kj.expr), rel: ik.rel.And(kj.rel)}
}

// compareCoverage decides whether existing already covers candidate. When
// either side is the +∞ sentinel the answer is structural and decided
// without the Oracle: an unbounded candidate is trivially covered (YES),
// and an unbounded existing bound never covers a bounded candidate (NO).
// Otherwise it builds the coverage constraint κ (existing ⪯ candidate,
// i.e. existing.expr − candidate.expr ⪯κ 0) and consults the Oracle. κ is
// only meaningful when the verdict is Split; callers ignore it otherwise.
func compareCoverage(ctx context.Context, existing, candidate cell, c constraint.ConstraintSet, o oracle.Oracle) (oracle.CoverageResult, constraint.ParameterConstraint, error) {
	if isInfinite(candidate.expr) {
		return oracle.Yes, constraint.ParameterConstraint{}, nil
	}
	if isInfinite(existing.expr) {
		return oracle.No, constraint.ParameterConstraint{}, nil
	}
	kappa := constraint.Of(existing.expr.Sub(candidate.expr), coverageRelation(existing.rel, candidate.rel))
	cov, err := o.CheckCoverage(ctx, kappa, c)
	return cov, kappa, err
}
