package pdbm

import (
	"context"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/guard"
	"github.com/katalvlaran/ptazone/oracle"
)

// withTightened returns a copy of d with cell (i,j) replaced by b's bound.
func (d PDBM) withTightened(i, j int, b guard.Bound) PDBM {
	cells := d.cloneCells()
	cells[i*d.N()+j] = cell{expr: b.Expr, rel: b.Rel}
	return d.withCells(cells)
}

// AddGuard conjoins the atomic guard f onto d under the parameter context
// c: f is rewritten to its upper-bound view, compared against the
// current cell via a coverage constraint, and the Oracle's verdict
// determines whether the existing bound survives unchanged, is
// tightened, forks into both, or the branch is abandoned.
//
// If f references a clock not tracked by d, the guard is vacuous on this
// zone and (c, d) is returned unchanged.
func AddGuard(ctx context.Context, f guard.AtomicGuard, c constraint.ConstraintSet, d PDBM, o oracle.Oracle, opts ...DiagOption) ([]Result, error) {
	diag := defaultDiagOptions()
	for _, apply := range opts {
		apply(&diag)
	}

	b := f.UpperBound()
	i, iok := d.IndexOf(b.Row)
	j, jok := d.IndexOf(b.Col)
	if !iok || !jok {
		return []Result{{C: c, D: d}}, nil
	}

	cur := d.at(i, j)
	candidate := cell{expr: b.Expr, rel: b.Rel}
	cov, kappa, err := compareCoverage(ctx, cur, candidate, c, o)
	if err != nil {
		return nil, err
	}

	switch cov {
	case oracle.Yes:
		return []Result{{C: c, D: d}}, nil
	case oracle.No:
		if i == j {
			// A strictly tighter self-bound than the fixed diagonal (0,≤)
			// means "0 < 0" or similar: the zone is empty on this branch.
			return nil, nil
		}
		return []Result{{C: c, D: d.withTightened(i, j, b)}}, nil
	case oracle.Split:
		out := []Result{{C: c.AndConstraint(kappa), D: d}}
		if i == j {
			// The ¬κ branch would tighten the diagonal past (0,≤), i.e. a
			// contradiction; drop it instead of emitting an empty zone.
			return out, nil
		}
		out = append(out, Result{C: c.AndConstraint(kappa.Negate()), D: d.withTightened(i, j, b)})
		return out, nil
	default: // oracle.Unknown
		diag.logger.Printf("pdbm: addGuard: pruning branch on (%s,%s): oracle returned UNKNOWN", b.Row, b.Col)
		return nil, nil
	}
}
