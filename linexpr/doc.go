// Package linexpr implements LinearExpression, the affine form
//
//	Σ cᵢ·pᵢ + k
//
// over ident.Parameter used as every bound in the PDBM engine. A
// LinearExpression with no parameter terms and a finite constant k
// denotes the plain number k; a LinearExpression may also carry an
// infinite constant (and no terms) to serve as a sentinel upper bound —
// +∞/−∞ are permitted only in that sentinel role, never mixed
// arithmetically with a parameter term.
//
// LinearExpression is immutable: Add, Sub, and Negate return new values.
// Terms are stored sorted by Parameter identity so that structurally equal
// expressions always compare Equal and hash identically for canonical-form
// deduplication in pdbm.
package linexpr
