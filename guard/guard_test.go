package guard_test

import (
	"testing"

	"github.com/katalvlaran/ptazone/guard"
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructionCanonicalizesOrder(t *testing.T) {
	a := ident.NewClock()
	b := ident.NewClock()
	require.True(t, a.Less(b))

	// Construct with operands reversed (b - a < 5); expect canonical form
	// (a, b, -5, GT) i.e. a - b > -5.
	g := guard.LessThan(b, a, linexpr.OfConst(rational.FromInt64(5)))
	assert.Equal(t, a, g.Lhs())
	assert.Equal(t, b, g.Rhs())
	assert.Equal(t, reltype.GT, g.Relation())
	assert.True(t, g.Expr().Equal(linexpr.OfConst(rational.FromInt64(-5))))
}

func TestContradictorySelfGuardPanics(t *testing.T) {
	c := ident.NewClock()
	assert.PanicsWithValue(t, guard.ErrContradictorySelfGuard, func() {
		guard.LessThan(c, c, linexpr.OfConst(rational.Zero())) // x - x < 0
	})
}

func TestTautologicalSelfGuardPermitted(t *testing.T) {
	c := ident.NewClock()
	assert.NotPanics(t, func() {
		guard.LessEqual(c, c, linexpr.OfConst(rational.Zero())) // x - x <= 0
	})
}

func TestNegate(t *testing.T) {
	a := ident.NewClock()
	b := ident.NewClock()
	g := guard.LessThan(a, b, linexpr.OfConst(rational.FromInt64(3)))
	neg := g.Negate()
	assert.Equal(t, reltype.GE, neg.Relation())
	assert.Equal(t, a, neg.Lhs())
	assert.Equal(t, b, neg.Rhs())
}

func TestUpperBoundViewAlreadyUpper(t *testing.T) {
	a := ident.NewClock()
	b := ident.NewClock()
	g := guard.LessThan(a, b, linexpr.OfConst(rational.FromInt64(3)))
	bound := g.UpperBound()
	assert.Equal(t, a, bound.Row)
	assert.Equal(t, b, bound.Col)
	assert.Equal(t, reltype.LT, bound.Rel)
}

func TestUpperBoundViewFlipsLowerBound(t *testing.T) {
	a := ident.NewClock()
	b := ident.NewClock()
	// a - b > 3  <=>  b - a < -3
	g := guard.GreaterThan(a, b, linexpr.OfConst(rational.FromInt64(3)))
	bound := g.UpperBound()
	assert.Equal(t, b, bound.Row)
	assert.Equal(t, a, bound.Col)
	assert.Equal(t, reltype.LT, bound.Rel)
	assert.True(t, bound.Expr.Equal(linexpr.OfConst(rational.FromInt64(-3))))
}
