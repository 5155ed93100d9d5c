package oracle

import (
	"context"
	"strings"

	"github.com/katalvlaran/ptazone/constraint"
	"golang.org/x/sync/singleflight"
)

// memoized wraps an Oracle with a singleflight.Group that collapses
// duplicate concurrent queries into one underlying call, the way the
// pack's tabling infrastructure (other_examples' minikanren tabling: a
// sync.Map-keyed answer cache keyed by a normalised call pattern)
// collapses duplicate subgoal calls. This is purely a performance
// optimisation, never on the correctness path: every call still decides
// the same question the inner Oracle would.
type memoized struct {
	inner Oracle
	group singleflight.Group
}

// Memoize returns an Oracle that deduplicates concurrent identical calls
// to inner via golang.org/x/sync/singleflight, keyed by a structural
// rendering of the query. It does not cache results across non-concurrent
// calls — only in-flight duplicates share a single underlying call — so
// it never serves a stale answer for a logically-parametrised Oracle
// whose behavior can change between calls.
func Memoize(inner Oracle) Oracle {
	return &memoized{inner: inner}
}

func (m *memoized) IsSat(ctx context.Context, c constraint.ConstraintSet) (SatResult, error) {
	key := "sat:" + keyOfSet(c)
	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		return m.inner.IsSat(ctx, c)
	})
	if err != nil {
		return SatUnknown, err
	}
	return v.(SatResult), nil
}

func (m *memoized) CheckCoverage(ctx context.Context, c constraint.ParameterConstraint, under constraint.ConstraintSet) (CoverageResult, error) {
	key := "cov:" + c.String() + "|" + keyOfSet(under)
	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		return m.inner.CheckCoverage(ctx, c, under)
	})
	if err != nil {
		return Unknown, err
	}
	return v.(CoverageResult), nil
}

// keyOfSet renders a ConstraintSet's canonical constraint list into a
// stable cache key; ConstraintSet already keeps constraints sorted and
// deduplicated, so two structurally-equal sets always render identically.
func keyOfSet(c constraint.ConstraintSet) string {
	parts := make([]string, 0, c.Len())
	for _, pc := range c.Constraints() {
		parts = append(parts, pc.String())
	}
	return strings.Join(parts, "&")
}
