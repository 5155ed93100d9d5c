package constraint_test

import (
	"testing"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
	"github.com/stretchr/testify/assert"
)

func TestTautologyAndContradiction(t *testing.T) {
	taut := constraint.Of(linexpr.OfConst(rational.FromInt64(5)), reltype.GT) // 5 > 0
	assert.True(t, taut.IsTautology())

	contra := constraint.Of(linexpr.OfConst(rational.FromInt64(-5)), reltype.GT) // -5 > 0
	assert.True(t, contra.IsContradiction())
}

func TestNegate(t *testing.T) {
	p := ident.NewParameter()
	c := constraint.Of(linexpr.OfParam(p), reltype.LT)
	neg := c.Negate()
	assert.Equal(t, reltype.GE, neg.Relation())
}

func TestOfTautologyCollapsesToTrue(t *testing.T) {
	taut := constraint.Of(linexpr.OfConst(rational.FromInt64(5)), reltype.GT)
	set := constraint.Of(taut)
	assert.True(t, set.IsTrue())
}

func TestAndDeduplicates(t *testing.T) {
	p := ident.NewParameter()
	c := constraint.Of(linexpr.OfParam(p), reltype.LT)
	s := constraint.Of(c)
	doubled := s.And(s)
	assert.Equal(t, 1, doubled.Len())
}

func TestAndUnionsDistinctConstraints(t *testing.T) {
	p := ident.NewParameter()
	q := ident.NewParameter()
	c1 := constraint.Of(linexpr.OfParam(p), reltype.LT)
	c2 := constraint.Of(linexpr.OfParam(q), reltype.GE)
	s := constraint.Of(c1).And(constraint.Of(c2))
	assert.Equal(t, 2, s.Len())
}

func TestAndWithTrueIsIdentity(t *testing.T) {
	p := ident.NewParameter()
	c := constraint.Of(linexpr.OfParam(p), reltype.LT)
	s := constraint.Of(c)
	assert.True(t, s.And(constraint.TRUE).Equal(s))
	assert.True(t, constraint.TRUE.And(s).Equal(s))
}

func TestEqualOrderIndependent(t *testing.T) {
	p := ident.NewParameter()
	q := ident.NewParameter()
	c1 := constraint.Of(linexpr.OfParam(p), reltype.LT)
	c2 := constraint.Of(linexpr.OfParam(q), reltype.GE)
	a := constraint.Of(c1).And(constraint.Of(c2))
	b := constraint.Of(c2).And(constraint.Of(c1))
	assert.True(t, a.Equal(b))
}
