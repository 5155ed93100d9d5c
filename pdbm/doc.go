// Package pdbm implements the Parametric Difference-Bound Matrix engine:
// an immutable n×n matrix of upper-bound clock-difference constraints,
// index 0 reserved for the zero clock x0, together with the five core
// operations addGuard, canonical, delay, reset and isEmpty.
//
// Every cell D[i][j] stands for the upper bound "clocks[i] - clocks[j] ≺ E"
// with E a linexpr.LinearExpression over parameters and ≺ one of
// reltype.LT/LE; the diagonal is always (0, ≤). Since bounds may contain
// parameters, addGuard and canonical are split-producing: they return a
// slice of Result, each pairing a refined constraint.ConstraintSet with the
// PDBM that holds under it. An empty Result slice means the zone is
// unreachable on every branch explored — not an error.
package pdbm
