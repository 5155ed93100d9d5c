// Package oracle defines the external linear-arithmetic decision contract
// the PDBM engine consults at every comparison point: a satisfiability
// check IsSat, and a coverage check CheckCoverage that
// classifies a candidate constraint as universally implied (Yes),
// universally refuted (No), neither (Split), or undecidable within the
// Oracle's resources (Unknown).
//
// Oracle is an interface: production callers plug in an SMT-backed
// implementation over their own (parameters, clocks) universe. This
// package also ships Reference, a small in-memory decision procedure over
// exact rationals (Fourier-Motzkin elimination) used by this module's own
// tests and examples so they run without a network dependency — it is
// documented as test-only, not a production linear-arithmetic solver —
// and Memoize, a singleflight-backed decorator that collapses duplicate
// concurrent queries against any Oracle implementation.
package oracle
