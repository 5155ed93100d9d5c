// Package cpdbm implements CPDBM, the pair (C, D) of a parameter
// ConstraintSet and a PDBM that together denote a parametrised zone.
// CPDBM is a thin immutable facade over package pdbm: its
// compose-then-canonicalise helpers (AddGuardAndCanonical,
// DelayAndCanonical, ResetAndCanonical) chain the corresponding pdbm
// operation with Canonical and drop every empty result, so the PTA driver
// never has to manage non-canonical intermediate states itself.
//
// batch.go additionally offers parallel fan-out helpers over a slice of
// CPDBMs, for the class of independent work the driver is free to
// parallelise: each goroutine gets its own Oracle context via a
// caller-supplied factory, matching the engine's thread-local solver
// requirement.
package cpdbm
