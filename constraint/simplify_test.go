package constraint_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/reltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyDropsConfirmedRedundantConstraint(t *testing.T) {
	p := ident.NewParameter()
	necessary := constraint.Of(linexpr.OfParam(p), reltype.LT)
	redundant := constraint.Of(linexpr.OfParam(ident.NewParameter()), reltype.LT)
	set := constraint.Of(necessary).And(constraint.Of(redundant))

	check := func(_ context.Context, c constraint.ParameterConstraint, rest constraint.ConstraintSet) (bool, error) {
		return c.Equal(redundant) && rest.Len() > 0, nil
	}

	simplified, err := set.Simplify(context.Background(), check)
	require.NoError(t, err)
	assert.Equal(t, 1, simplified.Len())
	assert.True(t, simplified.Constraints()[0].Equal(necessary))
}

func TestSimplifyIsNoOpBelowTwoConstraints(t *testing.T) {
	p := ident.NewParameter()
	c := constraint.Of(linexpr.OfParam(p), reltype.LT)
	set := constraint.Of(c)

	calls := 0
	check := func(context.Context, constraint.ParameterConstraint, constraint.ConstraintSet) (bool, error) {
		calls++
		return true, nil
	}

	simplified, err := set.Simplify(context.Background(), check)
	require.NoError(t, err)
	assert.True(t, simplified.Equal(set))
	assert.Zero(t, calls)
}

func TestSimplifyPropagatesCheckError(t *testing.T) {
	p := ident.NewParameter()
	c1 := constraint.Of(linexpr.OfParam(p), reltype.LT)
	c2 := constraint.Of(linexpr.OfParam(ident.NewParameter()), reltype.LT)
	set := constraint.Of(c1).And(constraint.Of(c2))

	boom := assert.AnError
	check := func(context.Context, constraint.ParameterConstraint, constraint.ConstraintSet) (bool, error) {
		return false, boom
	}

	_, err := set.Simplify(context.Background(), check)
	assert.ErrorIs(t, err, boom)
}
