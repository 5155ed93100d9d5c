package linexpr

import (
	"sort"
	"strings"

	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/rational"
)

// term is one coefficient·parameter summand. Coeff is always nonzero and
// finite; terms are kept sorted by Param.ID() for a canonical order.
type term struct {
	param ident.Parameter
	coeff rational.Rational
}

// LinearExpression is the immutable affine form Σ cᵢ·pᵢ + k. The zero
// value's constant is the zero rational.Rational value, which is not a
// usable Rational; construct with OfConst, OfParam or OfParamCoeff.
type LinearExpression struct {
	terms []term // sorted by term.param.ID(), all coeff nonzero & finite
	k     rational.Rational
}

// OfConst returns the constant expression k. k may be ±Inf for use as a
// sentinel upper bound, but must not be NaN.
func OfConst(k rational.Rational) LinearExpression {
	if k.IsNaN() {
		panic("linexpr: OfConst: NaN constant")
	}
	return LinearExpression{k: k}
}

// OfParam returns the expression 1·p + 0.
func OfParam(p ident.Parameter) LinearExpression {
	return OfParamCoeff(p, rational.One())
}

// OfParamCoeff returns the expression c·p + 0. Panics (ErrNonFiniteCoefficient)
// if c is not finite. If c is zero, returns the constant expression 0 (the
// term is elided, preserving the "nonzero coefficient" invariant).
func OfParamCoeff(p ident.Parameter, c rational.Rational) LinearExpression {
	if !c.IsFinite() {
		panic(ErrNonFiniteCoefficient)
	}
	if c.IsZero() {
		return OfConst(rational.Zero())
	}
	return LinearExpression{terms: []term{{param: p, coeff: c}}, k: rational.Zero()}
}

// Const returns the constant term k.
func (e LinearExpression) Const() rational.Rational { return e.k }

// IsConst reports whether e has no parameter terms, i.e. denotes a plain
// number.
func (e LinearExpression) IsConst() bool { return len(e.terms) == 0 }

// Coefficient returns the coefficient of p in e, or the finite zero
// rational if p does not appear.
func (e LinearExpression) Coefficient(p ident.Parameter) rational.Rational {
	i := sort.Search(len(e.terms), func(i int) bool { return !e.terms[i].param.Less(p) })
	if i < len(e.terms) && e.terms[i].param == p {
		return e.terms[i].coeff
	}
	return rational.Zero()
}

// Params returns the parameters appearing in e, in canonical (identity)
// order. The returned slice must not be mutated.
func (e LinearExpression) Params() []ident.Parameter {
	out := make([]ident.Parameter, len(e.terms))
	for i, t := range e.terms {
		out[i] = t.param
	}
	return out
}

// Add returns e+f. If the resulting constant would combine two infinities
// of opposing sign into NaN while either operand also carries parameter
// terms, the sum is an ill-formed bound; when both e and f are pure
// constants this case degrades gracefully to the NaN constant, matching
// Rational's extended-real algebra.
func (e LinearExpression) Add(f LinearExpression) LinearExpression {
	return LinearExpression{
		terms: mergeTerms(e.terms, f.terms, false),
		k:     e.k.Add(f.k),
	}
}

// Sub returns e-f.
func (e LinearExpression) Sub(f LinearExpression) LinearExpression {
	return LinearExpression{
		terms: mergeTerms(e.terms, f.terms, true),
		k:     e.k.Sub(f.k),
	}
}

// Negate returns -e.
func (e LinearExpression) Negate() LinearExpression {
	terms := make([]term, len(e.terms))
	for i, t := range e.terms {
		terms[i] = term{param: t.param, coeff: t.coeff.Neg()}
	}
	return LinearExpression{terms: terms, k: e.k.Neg()}
}

// Evaluate substitutes values for every parameter appearing in e and
// returns the resulting Rational. values must supply an entry for every
// parameter in e.Params(); a missing entry is treated as 0 (the parameter
// vanishes, matching the convention that an absent coefficient is 0).
func (e LinearExpression) Evaluate(values map[ident.Parameter]rational.Rational) rational.Rational {
	acc := e.k
	for _, t := range e.terms {
		v, ok := values[t.param]
		if !ok {
			continue
		}
		acc = acc.Add(t.coeff.Mul(v))
	}
	return acc
}

// Equal reports structural equality: same constant and same (parameter,
// coefficient) terms in canonical order.
func (e LinearExpression) Equal(f LinearExpression) bool {
	if !e.k.Equal(f.k) || len(e.terms) != len(f.terms) {
		return false
	}
	for i := range e.terms {
		if e.terms[i].param != f.terms[i].param || !e.terms[i].coeff.Equal(f.terms[i].coeff) {
			return false
		}
	}
	return true
}

// Compare defines a total order over LinearExpression for canonical
// hashing and deterministic sorting: first by number of terms, then
// lexicographically by (parameter identity, coefficient), then by
// constant.
func (e LinearExpression) Compare(f LinearExpression) int {
	if len(e.terms) != len(f.terms) {
		if len(e.terms) < len(f.terms) {
			return -1
		}
		return 1
	}
	for i := range e.terms {
		if e.terms[i].param.ID() != f.terms[i].param.ID() {
			if e.terms[i].param.ID() < f.terms[i].param.ID() {
				return -1
			}
			return 1
		}
		if c := e.terms[i].coeff.Cmp(f.terms[i].coeff); c != 0 {
			return c
		}
	}
	return e.k.Cmp(f.k)
}

// String renders e as "c1*p1 + c2*p2 + k", omitting zero pieces for
// readability in test failures and debugging.
func (e LinearExpression) String() string {
	var b strings.Builder
	for i, t := range e.terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(t.coeff.String())
		b.WriteByte('*')
		b.WriteString(t.param.String())
	}
	if e.k.IsZero() && len(e.terms) > 0 {
		return b.String()
	}
	if len(e.terms) > 0 {
		b.WriteString(" + ")
	}
	b.WriteString(e.k.String())
	return b.String()
}

// mergeTerms merges two sorted term slices, adding (or subtracting, when
// sub is true) coefficients of shared parameters and dropping any result
// that cancels to zero.
func mergeTerms(a, b []term, sub bool) []term {
	out := make([]term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].param.ID() < b[j].param.ID():
			out = append(out, a[i])
			i++
		case a[i].param.ID() > b[j].param.ID():
			t := b[j]
			if sub {
				t.coeff = t.coeff.Neg()
			}
			out = append(out, t)
			j++
		default:
			c := a[i].coeff
			if sub {
				c = c.Sub(b[j].coeff)
			} else {
				c = c.Add(b[j].coeff)
			}
			if !c.IsZero() {
				out = append(out, term{param: a[i].param, coeff: c})
			}
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		out = append(out, a[i])
	}
	for ; j < len(b); j++ {
		t := b[j]
		if sub {
			t.coeff = t.coeff.Neg()
		}
		out = append(out, t)
	}
	return out
}
