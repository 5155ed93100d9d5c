// Package ptazone computes the symbolic reachable state space of a
// Parametric Timed Automaton (PTA) over Parametric Difference-Bound
// Matrices (PDBMs): immutable zones of clock valuations whose bounds are
// linear expressions over symbolic parameters.
//
// What is ptazone?
//
//	A thread-safe, split-producing zone engine that brings together:
//
//	  - ident:      process-wide monotonic Clock and Parameter identity
//	  - rational:   exact arbitrary-precision rationals with ±∞/NaN
//	  - linexpr:    affine expressions over parameters
//	  - reltype:    the four clock-difference comparisons and their algebra
//	  - constraint: normalised parameter inequalities and their conjunctions
//	  - guard:      canonicalised atomic clock-difference guards
//	  - oracle:     the external linear-arithmetic decision contract
//	  - pdbm:       the matrix engine (addGuard, canonical, delay, reset, isEmpty)
//	  - cpdbm:      the (ConstraintSet, PDBM) facade consumed by a PTA driver
//
// Why ptazone?
//
//   - Sound by construction  — every comparison that touches a parameter
//     goes through the Oracle; an UNKNOWN verdict prunes the branch rather
//     than guessing.
//   - Immutable              — every operation returns new values; nothing
//     is ever mutated in place, so results are safe to fan out across
//     goroutines.
//   - Split-aware            — operations return sets of (ConstraintSet,
//     PDBM) pairs, one per sub-region of parameter space the Oracle
//     distinguishes.
//   - Pure Go                — exact rational arithmetic throughout, no
//     floating point on the correctness path.
//
// Under the hood, everything is organized under one subpackage per
// concern, leaves first:
//
//	ident/      — Clock and Parameter identity allocators
//	rational/   — exact rational arithmetic with ±∞/NaN
//	linexpr/    — linear expressions over parameters
//	reltype/    — the relation algebra (<, ≤, >, ≥)
//	constraint/ — ParameterConstraint and ConstraintSet
//	guard/      — AtomicGuard
//	oracle/     — the Oracle contract, a reference implementation, and memoization
//	pdbm/       — the PDBM matrix engine
//	cpdbm/      — the (C, D) facade and parallel batch helpers
//
// See DESIGN.md for the grounding of each package and SPEC_FULL.md for the
// full design this module implements.
package ptazone
