// Package guard implements AtomicGuard, the atomic clock-difference
// constraint cᵢ − cⱼ ⋈ E used both as the input to PDBM.AddGuard and as
// the logical content of every PDBM matrix cell.
//
// Construction canonicalises operand order: if id(cᵢ) > id(cⱼ), the guard
// is rewritten by negating E and flipping ⋈ so that id(cᵢ) ≤ id(cⱼ)
// always holds afterward, without changing its logical meaning. A
// self-guard (cᵢ = cⱼ) with a constant E is checked for contradiction at
// construction time and panics if found; a tautological self-guard is
// permitted since it denotes the fixed diagonal entry 0 ≤ 0.
package guard
