package oracle

import (
	"context"
	"sort"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
)

// fmConstraint is a constraint normalised to "expr < 0" (strict) or
// "expr <= 0" (non-strict), the two forms Fourier-Motzkin elimination
// combines directly.
type fmConstraint struct {
	expr   affine
	strict bool
}

func fmFromParameterConstraint(c constraint.ParameterConstraint) fmConstraint {
	a := affineFromExpr(c.Expr())
	switch c.Relation() {
	case reltype.LT:
		return fmConstraint{expr: a, strict: true}
	case reltype.LE:
		return fmConstraint{expr: a, strict: false}
	case reltype.GT:
		return fmConstraint{expr: a.scale(rational.FromInt64(-1)), strict: true}
	default: // GE
		return fmConstraint{expr: a.scale(rational.FromInt64(-1)), strict: false}
	}
}

// negate returns ¬c: ¬(expr<0) = expr>=0 = -expr<=0; ¬(expr<=0) = expr>0
// = -expr<0.
func (c fmConstraint) negate() fmConstraint {
	return fmConstraint{expr: c.expr.scale(rational.FromInt64(-1)), strict: !c.strict}
}

// defaultReferenceBudget caps the number of constraints Fourier-Motzkin
// elimination may accumulate before Reference gives up and reports
// Unknown. Each eliminated parameter can roughly square the constraint
// count, so this bounds a reference-only solver to small parameter
// counts.
const defaultReferenceBudget = 4096

// Reference is a small in-memory Oracle backed by exact-rational
// Fourier-Motzkin elimination. It decides exactly the fragment of linear
// arithmetic the PDBM engine emits: conjunctions of affine inequalities
// over a finite set of parameters, each implicitly constrained
// non-negative. It is intended for this module's own tests and examples,
// not as a production decision procedure — it has no
// notion of timeouts, external processes, or proof certificates, and its
// elimination order is parameter-identity order, which is not optimised
// for constraint count.
type Reference struct {
	budget int // max constraints kept per elimination; <=0 uses defaultReferenceBudget
}

// NewReference constructs a Reference oracle with the default constraint
// budget.
func NewReference() *Reference {
	return &Reference{budget: defaultReferenceBudget}
}

// WithBudget returns a copy of r with its elimination budget overridden,
// for tests that want to force Unknown on large problems.
func (r *Reference) WithBudget(budget int) *Reference {
	return &Reference{budget: budget}
}

func (r *Reference) budgetOrDefault() int {
	if r.budget <= 0 {
		return defaultReferenceBudget
	}
	return r.budget
}

// IsSat implements Oracle.
func (r *Reference) IsSat(ctx context.Context, c constraint.ConstraintSet) (SatResult, error) {
	if err := ctx.Err(); err != nil {
		return SatUnknown, err
	}
	cons := fmConstraintsOf(c)
	sat, ok := decide(cons, r.budgetOrDefault())
	if !ok {
		return SatUnknown, nil
	}
	if sat {
		return Sat, nil
	}
	return Unsat, nil
}

// CheckCoverage implements Oracle.
func (r *Reference) CheckCoverage(ctx context.Context, c constraint.ParameterConstraint, under constraint.ConstraintSet) (CoverageResult, error) {
	if err := ctx.Err(); err != nil {
		return Unknown, err
	}
	base := fmConstraintsOf(under)
	withC := append(append([]fmConstraint{}, base...), fmFromParameterConstraint(c))
	withNotC := append(append([]fmConstraint{}, base...), fmFromParameterConstraint(c).negate())

	satWithC, okC := decide(withC, r.budgetOrDefault())
	satWithNotC, okNotC := decide(withNotC, r.budgetOrDefault())
	if !okC || !okNotC {
		return Unknown, nil
	}

	switch {
	case !satWithNotC && satWithC:
		return Yes, nil
	case !satWithC && satWithNotC:
		return No, nil
	case satWithC && satWithNotC:
		return Split, nil
	default: // both unsat: under itself is already unsat; every coverage question is vacuously YES
		return Yes, nil
	}
}

func fmConstraintsOf(c constraint.ConstraintSet) []fmConstraint {
	out := make([]fmConstraint, 0, c.Len())
	for _, pc := range c.Constraints() {
		out = append(out, fmFromParameterConstraint(pc))
	}
	return out
}

// decide runs Fourier-Motzkin elimination to exhaustion, returning
// (satisfiable, ok). ok is false if the budget was exceeded, signalling
// the caller should report Unknown.
func decide(cons []fmConstraint, budget int) (sat bool, ok bool) {
	params := collectParams(cons)
	cons = appendNonNegativity(cons, params)
	if len(cons) > budget {
		return false, false
	}

	for _, p := range params {
		var without, uppers, lowers []fmConstraint
		for _, c := range cons {
			coeff := c.expr.coeffOf(p)
			if coeff.IsZero() {
				without = append(without, c)
				continue
			}
			rest := c.expr.withoutParam(p)
			bound := rest.scale(coeff.Inv().Neg())
			if coeff.Sign() > 0 {
				uppers = append(uppers, fmConstraint{expr: bound, strict: c.strict})
			} else {
				lowers = append(lowers, fmConstraint{expr: bound, strict: c.strict})
			}
		}
		combined := make([]fmConstraint, 0, len(uppers)*len(lowers))
		for _, lo := range lowers {
			for _, up := range uppers {
				diff := lo.expr.add(up.expr.scale(rational.FromInt64(-1)))
				combined = append(combined, fmConstraint{expr: diff, strict: lo.strict || up.strict})
			}
		}
		cons = append(without, combined...)
		if len(cons) > budget {
			return false, false
		}
	}

	for _, c := range cons {
		sign := c.expr.k.Sign()
		satisfied := sign < 0
		if !c.strict {
			satisfied = sign <= 0
		}
		if !satisfied {
			return false, true
		}
	}
	return true, true
}

func collectParams(cons []fmConstraint) []ident.Parameter {
	seen := make(map[ident.Parameter]struct{})
	for _, c := range cons {
		for _, p := range c.expr.params() {
			seen[p] = struct{}{}
		}
	}
	out := make([]ident.Parameter, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// appendNonNegativity adds -p <= 0 for every parameter, fixing every
// parameter to a non-negative real as the engine's contract requires.
func appendNonNegativity(cons []fmConstraint, params []ident.Parameter) []fmConstraint {
	out := append([]fmConstraint{}, cons...)
	for _, p := range params {
		a := affine{coeffs: map[ident.Parameter]rational.Rational{p: rational.FromInt64(-1)}, k: rational.Zero()}
		out = append(out, fmConstraint{expr: a, strict: false})
	}
	return out
}
