package pdbm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/guard"
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/oracle"
	"github.com/katalvlaran/ptazone/pdbm"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetFormula(t *testing.T) {
	ref := oracle.NewReference()
	ctx := context.Background()
	c1, c2 := ident.NewClock(), ident.NewClock()
	zero := ident.Zero()
	d0 := pdbm.Initial([]ident.Clock{c1, c2})

	step := applyGuard(t, guard.LessThan(c2, zero, linexpr.OfConst(rational.FromInt64(20))), constraint.TRUE, d0, ref)
	step = applyGuard(t, guard.GreaterThan(c2, zero, linexpr.OfConst(rational.FromInt64(15))), step.C, step.D, ref)

	r := pdbm.NewResetSet(pdbm.ResetPair{Clock: c1, Value: rational.FromInt64(5)})
	reset := pdbm.Reset(step.D, r)

	i0, _ := reset.IndexOf(zero)
	i1, _ := reset.IndexOf(c1)
	i2, _ := reset.IndexOf(c2)

	b12 := reset.Bound(i1, i2)
	assert.Equal(t, reltype.LT, b12.Rel)
	assert.True(t, b12.Expr.Const().Equal(rational.FromInt64(-10)))

	b21 := reset.Bound(i2, i1)
	assert.Equal(t, reltype.LT, b21.Rel)
	assert.True(t, b21.Expr.Const().Equal(rational.FromInt64(15)))

	b10 := reset.Bound(i1, i0)
	assert.Equal(t, reltype.LE, b10.Rel)
	assert.True(t, b10.Expr.Const().Equal(rational.FromInt64(5)))

	// Non-reset bounds (c2 against x0) survive unchanged.
	b20 := reset.Bound(i2, i0)
	assert.True(t, b20.Expr.Const().Equal(rational.FromInt64(20)))
	b02 := reset.Bound(i0, i2)
	assert.True(t, b02.Expr.Const().Equal(rational.FromInt64(-15)))
}

func TestResetToZeroIdempotence(t *testing.T) {
	ref := oracle.NewReference()
	ctx := context.Background()
	c1, c2 := ident.NewClock(), ident.NewClock()
	zero := ident.Zero()
	d0 := pdbm.Initial([]ident.Clock{c1, c2})

	step := applyGuard(t, guard.LessThan(c2, zero, linexpr.OfConst(rational.FromInt64(8))), constraint.TRUE, d0, ref)

	r := pdbm.NewResetSet(pdbm.ResetPair{Clock: c1, Value: rational.Zero()})

	once := pdbm.Reset(step.D, r)
	onceCanon, err := pdbm.Canonical(ctx, step.C, once, ref)
	require.NoError(t, err)
	require.Len(t, onceCanon, 1)

	twice := pdbm.Reset(pdbm.Reset(step.D, r), r)
	twiceCanon, err := pdbm.Canonical(ctx, step.C, twice, ref)
	require.NoError(t, err)
	require.Len(t, twiceCanon, 1)

	assert.True(t, onceCanon[0].D.Equal(twiceCanon[0].D))
	assert.True(t, onceCanon[0].C.Equal(twiceCanon[0].C))
}
