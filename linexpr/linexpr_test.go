package linexpr_test

import (
	"testing"

	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfConstAndIsConst(t *testing.T) {
	e := linexpr.OfConst(rational.FromInt64(5))
	assert.True(t, e.IsConst())
	assert.True(t, e.Const().Equal(rational.FromInt64(5)))
}

func TestOfParamCoeffZeroCollapsesToConst(t *testing.T) {
	p := ident.NewParameter()
	e := linexpr.OfParamCoeff(p, rational.Zero())
	assert.True(t, e.IsConst())
}

func TestOfParamCoeffNonFinitePanics(t *testing.T) {
	p := ident.NewParameter()
	assert.Panics(t, func() {
		linexpr.OfParamCoeff(p, rational.Inf())
	})
}

func TestAddSubRoundTrip(t *testing.T) {
	p := ident.NewParameter()
	e := linexpr.OfParamCoeff(p, rational.FromInt64(2)).Add(linexpr.OfConst(rational.FromInt64(3)))
	f := e.Sub(linexpr.OfConst(rational.FromInt64(3)))
	assert.True(t, f.Equal(linexpr.OfParamCoeff(p, rational.FromInt64(2))))
}

func TestAddMergesSharedParameter(t *testing.T) {
	p := ident.NewParameter()
	e := linexpr.OfParamCoeff(p, rational.FromInt64(2))
	f := linexpr.OfParamCoeff(p, rational.FromInt64(3))
	sum := e.Add(f)
	require.True(t, sum.IsConst() == false)
	assert.True(t, sum.Coefficient(p).Equal(rational.FromInt64(5)))
}

func TestAddCancelsToZeroDropsTerm(t *testing.T) {
	p := ident.NewParameter()
	e := linexpr.OfParamCoeff(p, rational.FromInt64(2))
	f := linexpr.OfParamCoeff(p, rational.FromInt64(-2))
	sum := e.Add(f)
	assert.True(t, sum.IsConst())
	assert.True(t, sum.Const().IsZero())
}

func TestNegate(t *testing.T) {
	p := ident.NewParameter()
	e := linexpr.OfParamCoeff(p, rational.FromInt64(2)).Add(linexpr.OfConst(rational.FromInt64(1)))
	neg := e.Negate()
	assert.True(t, neg.Coefficient(p).Equal(rational.FromInt64(-2)))
	assert.True(t, neg.Const().Equal(rational.FromInt64(-1)))
}

func TestEvaluate(t *testing.T) {
	p := ident.NewParameter()
	q := ident.NewParameter()
	e := linexpr.OfParamCoeff(p, rational.FromInt64(2)).
		Add(linexpr.OfParamCoeff(q, rational.FromInt64(3))).
		Add(linexpr.OfConst(rational.FromInt64(1)))
	got := e.Evaluate(map[ident.Parameter]rational.Rational{
		p: rational.FromInt64(5),
		q: rational.FromInt64(10),
	})
	assert.True(t, got.Equal(rational.FromInt64(41)), "got %s", got)
}

func TestEvaluateMissingParameterTreatedAsZero(t *testing.T) {
	p := ident.NewParameter()
	e := linexpr.OfParamCoeff(p, rational.FromInt64(2)).Add(linexpr.OfConst(rational.FromInt64(1)))
	got := e.Evaluate(map[ident.Parameter]rational.Rational{})
	assert.True(t, got.Equal(rational.FromInt64(1)))
}

func TestCompareTotalOrderSmokeTest(t *testing.T) {
	p := ident.NewParameter()
	small := linexpr.OfConst(rational.FromInt64(1))
	big := linexpr.OfParamCoeff(p, rational.FromInt64(1))
	assert.Negative(t, small.Compare(big))
	assert.Positive(t, big.Compare(small))
	assert.Zero(t, small.Compare(small))
}

func TestEqualIgnoresConstructionOrder(t *testing.T) {
	p := ident.NewParameter()
	q := ident.NewParameter()
	a := linexpr.OfParamCoeff(p, rational.FromInt64(1)).Add(linexpr.OfParamCoeff(q, rational.FromInt64(2)))
	b := linexpr.OfParamCoeff(q, rational.FromInt64(2)).Add(linexpr.OfParamCoeff(p, rational.FromInt64(1)))
	assert.True(t, a.Equal(b))
}
