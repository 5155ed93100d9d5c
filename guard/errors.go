package guard

import "errors"

// ErrContradictorySelfGuard indicates AtomicGuard construction was given
// cᵢ = cⱼ and a constant expression E such that "0 ⋈ k" is false — a
// structural misuse, e.g. "x − x < 0".
var ErrContradictorySelfGuard = errors.New("guard: contradictory self-guard")
