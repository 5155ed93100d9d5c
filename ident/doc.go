// Package ident provides opaque, totally-ordered identities for clocks and
// parameters, handed out by process-wide monotonic allocators.
//
// Zero returns the distinguished zero clock x0: fixed at identity 0, never
// handed out by NewClock, and expected by every PDBM to sit at matrix index
// 0. Parameter has no distinguished zero value.
//
// Allocation is a single atomic counter per kind: a monotonic uint64
// incremented with sync/atomic, no locale, time, or randomness involved, so
// identities are stable, comparable with ==, and orderable with Less
// without any locking.
package ident
