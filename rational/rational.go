package rational

import (
	"fmt"
	"math/big"
)

// kind distinguishes the extended-real sentinel classes from ordinary
// finite values.
type kind uint8

const (
	kindFinite kind = iota
	kindPosInf
	kindNegInf
	kindNaN
)

// Rational is an immutable exact rational number, or one of the sentinel
// values +Inf, -Inf, NaN. The zero value has no backing *big.Rat and is not
// a usable Rational (IsZero, Cmp and String panic on it); construct values
// with Zero, One, FromInt64, FromRatio, FromBigRat or FromString.
type Rational struct {
	k   kind
	val *big.Rat // non-nil and canonical iff k == kindFinite
}

// Zero is the rational 0.
func Zero() Rational { return Rational{k: kindFinite, val: new(big.Rat)} }

// One is the rational 1.
func One() Rational { return Rational{k: kindFinite, val: big.NewRat(1, 1)} }

// Inf is the extended-real value +Inf.
func Inf() Rational { return Rational{k: kindPosInf} }

// NegInf is the extended-real value -Inf.
func NegInf() Rational { return Rational{k: kindNegInf} }

// NaN is the extended-real value "not a number", produced by indeterminate
// forms such as 0*Inf or Inf-Inf.
func NaN() Rational { return Rational{k: kindNaN} }

// FromInt64 constructs the finite rational n/1.
func FromInt64(n int64) Rational {
	return intern(big.NewRat(n, 1))
}

// FromRatio constructs the finite rational num/den in canonical form.
// Returns ErrDivideByZero if den is 0.
func FromRatio(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivideByZero
	}
	return intern(big.NewRat(num, den)), nil
}

// FromBigRat constructs a finite Rational from r, which must be non-nil.
// The value is copied; r is not retained or mutated.
func FromBigRat(r *big.Rat) Rational {
	if r == nil {
		panic("rational: FromBigRat: nil *big.Rat")
	}
	return intern(new(big.Rat).Set(r))
}

// FromString parses an integer, decimal, or "num/den" literal into a
// finite Rational. Returns ErrInvalidString on malformed input.
func FromString(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, ErrInvalidString
	}
	return intern(r), nil
}

// IsFinite reports whether v is an ordinary finite rational.
func (v Rational) IsFinite() bool { return v.k == kindFinite }

// IsPosInf reports whether v is +Inf.
func (v Rational) IsPosInf() bool { return v.k == kindPosInf }

// IsNegInf reports whether v is -Inf.
func (v Rational) IsNegInf() bool { return v.k == kindNegInf }

// IsInf reports whether v is +Inf or -Inf.
func (v Rational) IsInf() bool { return v.k == kindPosInf || v.k == kindNegInf }

// IsNaN reports whether v is the NaN sentinel.
func (v Rational) IsNaN() bool { return v.k == kindNaN }

// IsZero reports whether v is the finite value 0.
func (v Rational) IsZero() bool { return v.k == kindFinite && v.val.Sign() == 0 }

// Sign returns -1, 0, or 1 for a finite v, mirroring big.Rat.Sign.
// +Inf has sign 1, -Inf has sign -1. Panics if v is NaN.
func (v Rational) Sign() int {
	switch v.k {
	case kindFinite:
		return v.val.Sign()
	case kindPosInf:
		return 1
	case kindNegInf:
		return -1
	default:
		panic("rational: Sign of NaN")
	}
}

// Inv returns 1/v for a nonzero finite v. Panics if v is zero or not
// finite; callers (e.g. oracle's Fourier-Motzkin elimination) only ever
// invoke it on a guard coefficient already known to be nonzero and finite.
func (v Rational) Inv() Rational {
	if v.k != kindFinite || v.val.Sign() == 0 {
		panic("rational: Inv of zero or non-finite value")
	}
	return intern(new(big.Rat).Inv(v.val))
}

// BigRat returns the underlying *big.Rat for a finite v, or nil if v is a
// sentinel. The returned value must not be mutated by the caller.
func (v Rational) BigRat() *big.Rat {
	if v.k != kindFinite {
		return nil
	}
	return v.val
}

// Neg returns -v, following the usual extended-real rule that -(+Inf) is
// -Inf, -(-Inf) is +Inf, and -NaN is NaN.
func (v Rational) Neg() Rational {
	switch v.k {
	case kindFinite:
		return intern(new(big.Rat).Neg(v.val))
	case kindPosInf:
		return NegInf()
	case kindNegInf:
		return Inf()
	default:
		return NaN()
	}
}

// Add returns v+w under the extended-real rules: Inf+finite=Inf,
// Inf+Inf=Inf, Inf+(-Inf)=NaN, NaN+anything=NaN.
func (v Rational) Add(w Rational) Rational {
	if v.k == kindNaN || w.k == kindNaN {
		return NaN()
	}
	if v.k == kindFinite && w.k == kindFinite {
		return intern(new(big.Rat).Add(v.val, w.val))
	}
	if v.IsInf() && w.IsInf() {
		if v.k == w.k {
			return v
		}
		return NaN() // Inf + (-Inf)
	}
	if v.IsInf() {
		return v
	}
	return w // w.IsInf(), v finite
}

// Sub returns v-w, defined as v.Add(w.Neg()).
func (v Rational) Sub(w Rational) Rational {
	return v.Add(w.Neg())
}

// Mul returns v*w under the extended-real rules: 0*Inf=NaN,
// Inf*positive=Inf, Inf*negative=-Inf, NaN*anything=NaN.
func (v Rational) Mul(w Rational) Rational {
	if v.k == kindNaN || w.k == kindNaN {
		return NaN()
	}
	if v.k == kindFinite && w.k == kindFinite {
		return intern(new(big.Rat).Mul(v.val, w.val))
	}
	// At least one operand is +-Inf; the other could be zero, finite
	// nonzero, or also infinite.
	vInf, wInf := v.IsInf(), w.IsInf()
	if vInf && w.k == kindFinite && w.Sign() == 0 {
		return NaN()
	}
	if wInf && v.k == kindFinite && v.Sign() == 0 {
		return NaN()
	}
	sign := v.Sign() * w.Sign()
	if sign > 0 {
		return Inf()
	}
	return NegInf()
}

// Cmp orders v against w under the total extended-real order this package
// maintains: NaN > +Inf > finite > -Inf. Among finite values comparison is
// exact via big.Rat.Cmp; across sentinel kinds the result is an arbitrary
// nonzero rank delta, not normalised to -1/0/+1 — callers needing a
// three-way comparison should inspect only its sign.
func (v Rational) Cmp(w Rational) int {
	if v.k == w.k {
		if v.k == kindFinite {
			return v.val.Cmp(w.val)
		}
		return 0 // both the same sentinel
	}
	return rank(v.k) - rank(w.k)
}

// Equal reports structural equality: same kind, and for finite values the
// same canonical big.Rat.
func (v Rational) Equal(w Rational) bool {
	if v.k != w.k {
		return false
	}
	if v.k != kindFinite {
		return true
	}
	return v.val.Cmp(w.val) == 0
}

func rank(k kind) int {
	switch k {
	case kindNegInf:
		return 0
	case kindFinite:
		return 1
	case kindPosInf:
		return 2
	default: // kindNaN
		return 3
	}
}

// String renders v as "p/q" (or an integer when q==1) for finite values,
// and "+Inf", "-Inf", "NaN" for sentinels.
func (v Rational) String() string {
	switch v.k {
	case kindPosInf:
		return "+Inf"
	case kindNegInf:
		return "-Inf"
	case kindNaN:
		return "NaN"
	default:
		return v.val.RatString()
	}
}

// GoString supports "%#v" formatting for debugging/test failure output.
func (v Rational) GoString() string {
	return fmt.Sprintf("rational.Rational(%s)", v.String())
}
