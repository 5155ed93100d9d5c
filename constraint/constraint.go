package constraint

import (
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
)

// ParameterConstraint is a normalised linear inequality E ⋈ 0. Equality is
// by (E, ⋈).
type ParameterConstraint struct {
	expr linexpr.LinearExpression
	rel  reltype.RelationType
}

// Of constructs the constraint expr ⋈ 0. Panics (ErrNaNConstraint) if
// expr's constant term is NaN — not a value any well-formed bound
// difference can produce.
func Of(expr linexpr.LinearExpression, rel reltype.RelationType) ParameterConstraint {
	if expr.Const().IsNaN() {
		panic(ErrNaNConstraint)
	}
	return ParameterConstraint{expr: expr, rel: rel}
}

// Expr returns the left-hand expression E of E ⋈ 0.
func (c ParameterConstraint) Expr() linexpr.LinearExpression { return c.expr }

// Relation returns ⋈.
func (c ParameterConstraint) Relation() reltype.RelationType { return c.rel }

// Negate returns ¬c, i.e. E ¬⋈ 0.
func (c ParameterConstraint) Negate() ParameterConstraint {
	return ParameterConstraint{expr: c.expr, rel: c.rel.Negate()}
}

// IsTautology reports whether c is syntactically always true: E has no
// parameter terms and its constant k satisfies k ⋈ 0.
func (c ParameterConstraint) IsTautology() bool {
	if !c.expr.IsConst() {
		return false
	}
	return evalRelation(c.expr.Const(), c.rel)
}

// IsContradiction reports whether c is syntactically always false: E has
// no parameter terms and its constant k does not satisfy k ⋈ 0.
func (c ParameterConstraint) IsContradiction() bool {
	if !c.expr.IsConst() {
		return false
	}
	return !evalRelation(c.expr.Const(), c.rel)
}

func evalRelation(k rational.Rational, rel reltype.RelationType) bool {
	zero := rational.Zero()
	cmp := k.Cmp(zero)
	switch rel {
	case reltype.LT:
		return cmp < 0
	case reltype.LE:
		return cmp <= 0
	case reltype.GT:
		return cmp > 0
	default: // GE
		return cmp >= 0
	}
}

// Equal reports structural equality: same expression and same relation.
func (c ParameterConstraint) Equal(d ParameterConstraint) bool {
	return c.rel == d.rel && c.expr.Equal(d.expr)
}

// Compare defines a total order for canonical ConstraintSet storage: by
// expression, then by relation.
func (c ParameterConstraint) Compare(d ParameterConstraint) int {
	if cmp := c.expr.Compare(d.expr); cmp != 0 {
		return cmp
	}
	if c.rel == d.rel {
		return 0
	}
	if c.rel < d.rel {
		return -1
	}
	return 1
}

// String renders c as "E ⋈ 0".
func (c ParameterConstraint) String() string {
	return c.expr.String() + " " + c.rel.String() + " 0"
}
