package cpdbm

import (
	"context"

	"github.com/katalvlaran/ptazone/guard"
	"github.com/katalvlaran/ptazone/oracle"
	"github.com/katalvlaran/ptazone/pdbm"
	"golang.org/x/sync/errgroup"
)

// OracleFactory produces one Oracle per goroutine: the Oracle is a shared
// resource with per-thread state, so each concurrently executing caller
// needs its own solver context.
type OracleFactory func() oracle.Oracle

// AddGuardAndCanonicalAll fans AddGuardAndCanonical out across zones
// concurrently, one Oracle context per goroutine via factory. limit caps
// the number of zones processed concurrently; limit<=0 means unbounded
// (errgroup.Group's default). Each goroutine writes to its own slot of a
// preallocated slice, so no further synchronisation is needed before the
// results are flattened and returned in zones' original order.
func AddGuardAndCanonicalAll(ctx context.Context, zones []CPDBM, f guard.AtomicGuard, factory OracleFactory, limit int) ([]CPDBM, error) {
	if factory == nil {
		return nil, ErrNilOracleFactory
	}
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([][]CPDBM, len(zones))
	for i, z := range zones {
		i, z := i, z
		g.Go(func() error {
			out, err := z.AddGuardAndCanonical(gctx, f, factory())
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return flatten(results), nil
}

// DelayAndCanonicalAll fans DelayAndCanonical out across zones, mirroring
// AddGuardAndCanonicalAll's concurrency shape.
func DelayAndCanonicalAll(ctx context.Context, zones []CPDBM, factory OracleFactory, limit int) ([]CPDBM, error) {
	if factory == nil {
		return nil, ErrNilOracleFactory
	}
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([][]CPDBM, len(zones))
	for i, z := range zones {
		i, z := i, z
		g.Go(func() error {
			out, err := z.DelayAndCanonical(gctx, factory())
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return flatten(results), nil
}

// ResetAndCanonicalAll fans ResetAndCanonical out across zones using the
// same ResetSet for every zone, mirroring AddGuardAndCanonicalAll's
// concurrency shape.
func ResetAndCanonicalAll(ctx context.Context, zones []CPDBM, r pdbm.ResetSet, factory OracleFactory, limit int) ([]CPDBM, error) {
	if factory == nil {
		return nil, ErrNilOracleFactory
	}
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([][]CPDBM, len(zones))
	for i, z := range zones {
		i, z := i, z
		g.Go(func() error {
			out, err := z.ResetAndCanonical(gctx, r, factory())
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return flatten(results), nil
}

func flatten(results [][]CPDBM) []CPDBM {
	n := 0
	for _, r := range results {
		n += len(r)
	}
	out := make([]CPDBM, 0, n)
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
