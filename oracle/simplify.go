package oracle

import (
	"context"

	"github.com/katalvlaran/ptazone/constraint"
)

// CoverageFuncOf adapts o into the constraint.CoverageFunc shape
// ConstraintSet.Simplify expects: entailment is exactly the Yes verdict
// of o.CheckCoverage. A Split or Unknown verdict is treated as "not
// proven redundant", the same conservative stance the engine takes
// everywhere else an inconclusive Oracle answer is possible.
func CoverageFuncOf(o Oracle) constraint.CoverageFunc {
	return func(ctx context.Context, c constraint.ParameterConstraint, rest constraint.ConstraintSet) (bool, error) {
		res, err := o.CheckCoverage(ctx, c, rest)
		if err != nil {
			return false, err
		}
		return res == Yes, nil
	}
}
