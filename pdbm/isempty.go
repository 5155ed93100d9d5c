package pdbm

import (
	"context"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/oracle"
)

// cycleRequirement returns the parameter constraint that must hold for the
// two-step cycle i->j->i to be consistent: since clock terms cancel
// exactly around any cycle back to the same clock (cᵢ-cⱼ)+(cⱼ-cᵢ)=0, the
// conjunction D[i][j] ∧ D[j][i] only constrains the zone through the
// implied bound "0 ⪯ (Eij+Eji)", expressed in E ⋈ 0 form.
func cycleRequirement(d PDBM, i, j int) constraint.ParameterConstraint {
	a, b := d.at(i, j), d.at(j, i)
	combined := a.rel.And(b.rel)
	sum := a.expr.Add(b.expr)
	// "0 ⪯ sum" in normalised form "-sum ⪯ 0".
	return constraint.Of(sum.Negate(), combined)
}

// IsEmpty decides whether the zone (c, d) admits any clock valuation:
// build the conjunction of c and every matrix entry and ask the Oracle
// for satisfiability. Any two-step cycle through the same clock cancels
// its clock terms, so the check is expressed as one cycleRequirement per
// unordered pair of indices — a pure-parameter formula the Oracle can
// decide directly. This is exact when d is closed (as every Canonical
// result is); on a non-closed d, only contradictions along two-step
// cycles are detected, not those along longer cycles. A pair with an
// unbounded (+∞) entry imposes nothing and is skipped, so the sentinel
// never reaches the Oracle.
// unsat ⇒ empty; sat or unknown ⇒ non-empty (the conservative choice when
// the Oracle cannot decide).
func IsEmpty(ctx context.Context, c constraint.ConstraintSet, d PDBM, o oracle.Oracle) (bool, error) {
	n := d.N()
	full := c
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if isInfinite(d.at(i, j).expr) || isInfinite(d.at(j, i).expr) {
				continue
			}
			full = full.AndConstraint(cycleRequirement(d, i, j))
		}
	}
	res, err := o.IsSat(ctx, full)
	if err != nil {
		return false, err
	}
	return res == oracle.Unsat, nil
}
