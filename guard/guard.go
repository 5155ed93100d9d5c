package guard

import (
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
)

// AtomicGuard is the atomic clock-difference constraint cᵢ − cⱼ ⋈ E. After
// construction, id(Lhs()) ≤ id(Rhs()) always holds.
type AtomicGuard struct {
	lhs, rhs ident.Clock
	expr     linexpr.LinearExpression
	rel      reltype.RelationType
}

// Of constructs the guard lhs − rhs ⋈ expr, canonicalising operand order
// per the package doc. Panics (ErrContradictorySelfGuard) if lhs == rhs,
// expr is a constant k, and "0 ⋈ k" is false.
func Of(lhs, rhs ident.Clock, expr linexpr.LinearExpression, rel reltype.RelationType) AtomicGuard {
	if lhs == rhs {
		if expr.IsConst() && !zeroSatisfies(rel, expr.Const()) {
			panic(ErrContradictorySelfGuard)
		}
		return AtomicGuard{lhs: lhs, rhs: rhs, expr: expr, rel: rel}
	}
	if lhs.ID() > rhs.ID() {
		return AtomicGuard{lhs: rhs, rhs: lhs, expr: expr.Negate(), rel: rel.Flip()}
	}
	return AtomicGuard{lhs: lhs, rhs: rhs, expr: expr, rel: rel}
}

// LessThan constructs lhs − rhs < expr.
func LessThan(lhs, rhs ident.Clock, expr linexpr.LinearExpression) AtomicGuard {
	return Of(lhs, rhs, expr, reltype.LT)
}

// LessEqual constructs lhs − rhs ≤ expr.
func LessEqual(lhs, rhs ident.Clock, expr linexpr.LinearExpression) AtomicGuard {
	return Of(lhs, rhs, expr, reltype.LE)
}

// GreaterThan constructs lhs − rhs > expr.
func GreaterThan(lhs, rhs ident.Clock, expr linexpr.LinearExpression) AtomicGuard {
	return Of(lhs, rhs, expr, reltype.GT)
}

// GreaterEqual constructs lhs − rhs ≥ expr.
func GreaterEqual(lhs, rhs ident.Clock, expr linexpr.LinearExpression) AtomicGuard {
	return Of(lhs, rhs, expr, reltype.GE)
}

// Lhs returns cᵢ.
func (g AtomicGuard) Lhs() ident.Clock { return g.lhs }

// Rhs returns cⱼ.
func (g AtomicGuard) Rhs() ident.Clock { return g.rhs }

// Expr returns E.
func (g AtomicGuard) Expr() linexpr.LinearExpression { return g.expr }

// Relation returns ⋈.
func (g AtomicGuard) Relation() reltype.RelationType { return g.rel }

// Negate returns ¬g: lhs − rhs ¬⋈ E. Operand order is unaffected, since
// negating the comparison does not change which operand is smaller.
func (g AtomicGuard) Negate() AtomicGuard {
	return AtomicGuard{lhs: g.lhs, rhs: g.rhs, expr: g.expr, rel: g.rel.Negate()}
}

// Bound is the upper-bound view of an AtomicGuard: Row − Col ≺ Expr with
// ≺ ∈ {LT, LE}, suitable for direct placement into a PDBM matrix cell
// (row, col). Unlike AtomicGuard, Bound carries no operand-order
// invariant: Row may have a smaller or larger identity than Col, since
// matrix position — not identity order — determines which difference a
// cell represents.
type Bound struct {
	Row, Col ident.Clock
	Expr     linexpr.LinearExpression
	Rel      reltype.RelationType // always LT or LE
}

// UpperBound returns g rewritten into its upper-bound view: if g already
// expresses an upper bound (LT/LE), it is returned unchanged (as a
// Bound); otherwise (GT/GE) it is rewritten by swapping operands,
// negating E, and flipping ⋈, so every Bound a caller sees is directly
// placeable into a PDBM matrix cell.
func (g AtomicGuard) UpperBound() Bound {
	if g.rel.IsUpper() {
		return Bound{Row: g.lhs, Col: g.rhs, Expr: g.expr, Rel: g.rel}
	}
	return Bound{Row: g.rhs, Col: g.lhs, Expr: g.expr.Negate(), Rel: g.rel.Flip()}
}

func zeroSatisfies(rel reltype.RelationType, k rational.Rational) bool {
	sign := k.Sign()
	switch rel {
	case reltype.LT:
		return sign > 0 // 0 < k
	case reltype.LE:
		return sign >= 0 // 0 <= k
	case reltype.GT:
		return sign < 0 // 0 > k
	default: // GE
		return sign <= 0 // 0 >= k
	}
}

// Equal reports structural equality: same operands, expression, and
// relation.
func (g AtomicGuard) Equal(h AtomicGuard) bool {
	return g.lhs == h.lhs && g.rhs == h.rhs && g.rel == h.rel && g.expr.Equal(h.expr)
}

// String renders g as "lhs - rhs ⋈ E".
func (g AtomicGuard) String() string {
	return g.lhs.String() + " - " + g.rhs.String() + " " + g.rel.String() + " " + g.expr.String()
}
