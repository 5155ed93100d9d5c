package pdbm_test

import (
	"testing"

	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/pdbm"
	"github.com/katalvlaran/ptazone/reltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialDiagonalAndZeroPlacement(t *testing.T) {
	c1 := ident.NewClock()
	c2 := ident.NewClock()
	d := pdbm.Initial([]ident.Clock{c1, c2})

	require.Equal(t, 3, d.N())
	assert.Equal(t, ident.Zero(), d.Clocks()[0])

	for i := 0; i < d.N(); i++ {
		b := d.Bound(i, i)
		assert.True(t, b.Expr.IsConst())
		assert.True(t, b.Expr.Const().IsZero())
		assert.Equal(t, reltype.LE, b.Rel)
	}
}

func TestInitialEncodesNonNegativity(t *testing.T) {
	c1 := ident.NewClock()
	d := pdbm.Initial([]ident.Clock{c1})
	idx, ok := d.IndexOf(c1)
	require.True(t, ok)

	// D[0][c1] = 0 <= 0, encoding x0 - c1 <= 0 i.e. c1 >= 0.
	b := d.Bound(0, idx)
	assert.True(t, b.Expr.Const().IsZero())
	assert.Equal(t, reltype.LE, b.Rel)

	// D[c1][0] is unbounded above initially.
	b = d.Bound(idx, 0)
	assert.True(t, b.Expr.Const().IsPosInf())
}

func TestInitialNoClocksPanics(t *testing.T) {
	assert.PanicsWithValue(t, pdbm.ErrNoClocks, func() {
		pdbm.Initial(nil)
	})
}

func TestInitialIgnoresExplicitZeroClock(t *testing.T) {
	c1 := ident.NewClock()
	d := pdbm.Initial([]ident.Clock{ident.Zero(), c1})
	assert.Equal(t, 2, d.N())
}

func TestEqualStructural(t *testing.T) {
	c1 := ident.NewClock()
	d1 := pdbm.Initial([]ident.Clock{c1})
	d2 := pdbm.Initial([]ident.Clock{c1})
	assert.True(t, d1.Equal(d2))
}
