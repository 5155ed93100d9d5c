package pdbm

import (
	"sort"

	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
	"github.com/katalvlaran/ptazone/reltype"
)

// ResetPair is one (clock, value) assignment for a Reset call.
type ResetPair struct {
	Clock ident.Clock
	Value rational.Rational
}

// ResetSet is the validated set of clock resets applied in a single
// Reset call: a map from non-zero clocks to non-negative finite rational
// values. The zero value is the empty set.
type ResetSet struct {
	m map[ident.Clock]rational.Rational
}

// NewResetSet validates and builds a ResetSet from pairs. Panics
// (ErrResetZeroClock) if any pair targets the zero clock, and
// (ErrInvalidResetValue) if any value is negative or non-finite — both
// structural misuse.
func NewResetSet(pairs ...ResetPair) ResetSet {
	m := make(map[ident.Clock]rational.Rational, len(pairs))
	for _, p := range pairs {
		if p.Clock.IsZero() {
			panic(ErrResetZeroClock)
		}
		if !p.Value.IsFinite() || p.Value.Sign() < 0 {
			panic(ErrInvalidResetValue)
		}
		m[p.Clock] = p.Value
	}
	return ResetSet{m: m}
}

// Len returns the number of clocks in r.
func (r ResetSet) Len() int { return len(r.m) }

// Get returns the value assigned to c, if any.
func (r ResetSet) Get(c ident.Clock) (rational.Rational, bool) {
	v, ok := r.m[c]
	return v, ok
}

// Clocks returns r's clocks in identity order. The returned slice must not
// be mutated.
func (r ResetSet) Clocks() []ident.Clock {
	out := make([]ident.Clock, 0, len(r.m))
	for c := range r.m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Reset snaps every clock in r to its assigned constant value. For each
// (cᵣ, v) and every other index j: D[r][j] is derived by translating
// D[0][j] by +v, D[j][r] by translating D[j][0] by -v, and D[r][r]
// reverts to (0,≤). A clock in r that d does not track is a no-op for
// that entry, mirroring AddGuard's vacuous-on-untracked-clock policy.
// Reset is pure and does not consult an Oracle; the caller must re-run
// Canonical on the result.
func Reset(d PDBM, r ResetSet) PDBM {
	n := d.N()
	cells := d.cloneCells()
	zeroCell := cell{expr: linexpr.OfConst(rational.Zero()), rel: reltype.LE}

	// Resets are applied one clock at a time, in identity order. Each one
	// reads D[0][j] and D[j][0] from the working copy, so when j is a clock
	// reset earlier in this call, the bound between the two reset clocks
	// is the exact difference of their assigned values.
	for _, rc := range r.Clocks() {
		ridx, ok := d.IndexOf(rc)
		if !ok {
			continue
		}
		v, _ := r.Get(rc)
		vExpr := linexpr.OfConst(v)
		for j := 0; j < n; j++ {
			if j == ridx {
				continue
			}
			zeroRow := cells[j] // D[0][j]
			cells[ridx*n+j] = cell{expr: vExpr.Add(zeroRow.expr), rel: zeroRow.rel}

			zeroCol := cells[j*n] // D[j][0]
			cells[j*n+ridx] = cell{expr: zeroCol.expr.Sub(vExpr), rel: zeroCol.rel}
		}
		cells[ridx*n+ridx] = zeroCell
	}
	return d.withCells(cells)
}
