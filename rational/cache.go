package rational

import (
	"math/big"
	"sync"
)

// smallCacheBound is the exclusive bound on |numerator| and denominator
// below which a finite value is eligible for interning. Values outside
// this range are left uncached: interning is a memory/perf optimisation,
// not a correctness requirement, so unboundedly large rationals (arising
// from deep guard composition) never grow the cache.
const smallCacheBound = 1 << 16

// smallKey identifies a small canonical rational for cache lookup.
type smallKey struct {
	num, den int64
}

// internCache is a process-wide, read-mostly cache of small canonical
// rationals, keyed the way the pack's tabling infrastructure keys answer
// caches: a small hashable struct behind a sync.Map, safe for concurrent
// readers with no external locking.
var internCache sync.Map // smallKey -> Rational

// intern returns a Rational wrapping r (which must already be in
// math/big's canonical form, as every constructor above guarantees),
// sharing a single allocation with any previously interned equal small
// value. When r is freshly cached, r itself becomes the stored value, so
// r must not be mutated afterwards; every caller passes a freshly
// allocated *big.Rat.
func intern(r *big.Rat) Rational {
	if !r.IsInt() && r.Denom().IsInt64() && r.Num().IsInt64() {
		num, den := r.Num().Int64(), r.Denom().Int64()
		if inBound(num) && inBound(den) {
			return internSmall(smallKey{num, den}, r)
		}
	} else if r.IsInt() && r.Num().IsInt64() {
		num := r.Num().Int64()
		if inBound(num) {
			return internSmall(smallKey{num, 1}, r)
		}
	}
	return Rational{k: kindFinite, val: r}
}

func inBound(n int64) bool {
	return n > -smallCacheBound && n < smallCacheBound
}

func internSmall(key smallKey, r *big.Rat) Rational {
	if v, ok := internCache.Load(key); ok {
		return v.(Rational)
	}
	v := Rational{k: kindFinite, val: r}
	actual, _ := internCache.LoadOrStore(key, v)
	return actual.(Rational)
}
