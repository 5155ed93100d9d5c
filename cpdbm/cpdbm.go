package cpdbm

import (
	"context"

	"github.com/katalvlaran/ptazone/constraint"
	"github.com/katalvlaran/ptazone/guard"
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/oracle"
	"github.com/katalvlaran/ptazone/pdbm"
)

// CPDBM is the immutable pair (C, D) of a parameter ConstraintSet and the
// PDBM that holds under it. The zero value is not
// meaningful; construct with CreateInitial or one of the compose-then-
// canonicalise methods.
type CPDBM struct {
	c constraint.ConstraintSet
	d pdbm.PDBM
}

// C returns the parameter ConstraintSet half of the pair.
func (z CPDBM) C() constraint.ConstraintSet { return z.c }

// D returns the PDBM half of the pair.
func (z CPDBM) D() pdbm.PDBM { return z.d }

// Equal reports structural equality of both halves.
func (z CPDBM) Equal(other CPDBM) bool {
	return z.c.Equal(other.c) && z.d.Equal(other.d)
}

// String renders z for diagnostics.
func (z CPDBM) String() string {
	return z.c.String() + " :: " + z.d.String()
}

// canonicalWrap runs pdbm.Canonical on every (c, d) pair and flattens the
// results into CPDBMs, the shared tail of every compose-then-canonicalise
// helper below.
func canonicalWrap(ctx context.Context, pairs []pdbm.Result, o oracle.Oracle, opts ...pdbm.DiagOption) ([]CPDBM, error) {
	var out []CPDBM
	for _, pair := range pairs {
		canon, err := pdbm.Canonical(ctx, pair.C, pair.D, o, opts...)
		if err != nil {
			return nil, err
		}
		for _, r := range canon {
			out = append(out, CPDBM{c: r.C, d: r.D})
		}
	}
	return out, nil
}

// CreateInitial seeds the canonical initial zone over clocks under c0:
// PDBM.Initial wrapped with c0 and canonicalised. c0's zero value is
// constraint.TRUE (⊤). opts configures PDBM.Initial (e.g. WithClockOrder).
func CreateInitial(ctx context.Context, clocks []ident.Clock, c0 constraint.ConstraintSet, o oracle.Oracle, opts ...pdbm.Option) ([]CPDBM, error) {
	initial := pdbm.Initial(clocks, opts...)
	canon, err := pdbm.Canonical(ctx, c0, initial, o)
	if err != nil {
		return nil, err
	}
	out := make([]CPDBM, 0, len(canon))
	for _, r := range canon {
		out = append(out, CPDBM{c: r.C, d: r.D})
	}
	return out, nil
}

// AddGuardAndCanonical conjoins f onto z and re-canonicalises, unioning
// the canonical results of every split addGuard produces. diag configures
// the diagnostic Logger both AddGuard and Canonical report pruned
// branches to; see pdbm.WithLogger.
func (z CPDBM) AddGuardAndCanonical(ctx context.Context, f guard.AtomicGuard, o oracle.Oracle, diag ...pdbm.DiagOption) ([]CPDBM, error) {
	pairs, err := pdbm.AddGuard(ctx, f, z.c, z.d, o, diag...)
	if err != nil {
		return nil, err
	}
	return canonicalWrap(ctx, pairs, o, diag...)
}

// DelayAndCanonical lets time elapse on z and re-canonicalises.
func (z CPDBM) DelayAndCanonical(ctx context.Context, o oracle.Oracle, diag ...pdbm.DiagOption) ([]CPDBM, error) {
	delayed := pdbm.Delay(z.d)
	return canonicalWrap(ctx, []pdbm.Result{{C: z.c, D: delayed}}, o, diag...)
}

// ResetAndCanonical snaps the clocks in r to their assigned values on z
// and re-canonicalises.
func (z CPDBM) ResetAndCanonical(ctx context.Context, r pdbm.ResetSet, o oracle.Oracle, diag ...pdbm.DiagOption) ([]CPDBM, error) {
	reset := pdbm.Reset(z.d, r)
	return canonicalWrap(ctx, []pdbm.Result{{C: z.c, D: reset}}, o, diag...)
}

// IsEmpty decides whether z's zone admits any (parameter, clock) valuation
// pair, delegating to pdbm.IsEmpty.
func (z CPDBM) IsEmpty(ctx context.Context, o oracle.Oracle) (bool, error) {
	return pdbm.IsEmpty(ctx, z.c, z.d, o)
}
