// Package rational implements exact arbitrary-precision rational numbers
// extended with the sentinel values +Inf, -Inf, and NaN, for use as PDBM
// bound constants.
//
// Finite values are backed by [math/big.Rat] in canonical form (gcd(p,q)=1,
// q>0), following the wrapping style of
// github.com/joeycumines/go-utilpkg/floater's RatConv: arithmetic is
// delegated to math/big wherever the operands are both finite, and the
// extended-real sentinel cases (0*Inf, Inf-Inf, ...) are handled explicitly
// before math/big ever sees them.
//
// Small rationals are interned in a process-wide, read-mostly cache
// (see intern in cache.go) so that repeated constants (0, 1, small integers arising from
// reset values and guard bounds) share a single allocation, the way the
// teacher's corpus caches small, frequently-recreated values behind a
// sync.Map-style keyed lookup.
//
// Equality is structural; ordering is total (NaN > +Inf > finite > -Inf),
// so Rational values can be sorted deterministically inside ConstraintSet
// and LinearExpression canonical forms.
package rational
