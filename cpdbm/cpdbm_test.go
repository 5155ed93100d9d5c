package cpdbm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/cpdbm"
	"github.com/katalvlaran/ptazone/guard"
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/oracle"
	"github.com/katalvlaran/ptazone/pdbm"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInitialIsNonEmptyCanonical(t *testing.T) {
	ref := oracle.NewReference()
	ctx := context.Background()
	c1, c2 := ident.NewClock(), ident.NewClock()

	zones, err := cpdbm.CreateInitial(ctx, []ident.Clock{c1, c2}, constraint.TRUE, ref)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.True(t, zones[0].C().IsTrue())
}

func TestAddGuardAndCanonicalDropsEmptyZones(t *testing.T) {
	ref := oracle.NewReference()
	ctx := context.Background()
	c1 := ident.NewClock()

	zones, err := cpdbm.CreateInitial(ctx, []ident.Clock{c1}, constraint.TRUE, ref)
	require.NoError(t, err)
	require.Len(t, zones, 1)

	// c1 < -1 contradicts c1 >= 0; the branch must vanish.
	g := guard.LessThan(c1, ident.Zero(), linexpr.OfConst(rational.FromInt64(-1)))
	out, err := zones[0].AddGuardAndCanonical(ctx, g, ref)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFullLifecycleStaysNonEmpty(t *testing.T) {
	ref := oracle.NewReference()
	ctx := context.Background()
	c1, c2 := ident.NewClock(), ident.NewClock()
	p := ident.NewParameter()

	zones, err := cpdbm.CreateInitial(ctx, []ident.Clock{c1, c2}, constraint.TRUE, ref)
	require.NoError(t, err)
	require.Len(t, zones, 1)

	// guard: c1 - x0 < p
	zones, err = zones[0].AddGuardAndCanonical(ctx, guard.LessThan(c1, ident.Zero(), linexpr.OfParam(p)), ref)
	require.NoError(t, err)
	require.NotEmpty(t, zones)

	r := pdbm.NewResetSet(pdbm.ResetPair{Clock: c2, Value: rational.Zero()})
	var next []cpdbm.CPDBM
	for _, z := range zones {
		out, err := z.ResetAndCanonical(ctx, r, ref)
		require.NoError(t, err)
		next = append(next, out...)
	}
	require.NotEmpty(t, next)

	var delayed []cpdbm.CPDBM
	for _, z := range next {
		out, err := z.DelayAndCanonical(ctx, ref)
		require.NoError(t, err)
		delayed = append(delayed, out...)
	}
	require.NotEmpty(t, delayed)

	for _, z := range delayed {
		empty, err := z.IsEmpty(ctx, ref)
		require.NoError(t, err)
		assert.False(t, empty)
	}
}
