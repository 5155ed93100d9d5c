package oracle

import (
	"github.com/katalvlaran/ptazone/ident"
	"github.com/katalvlaran/ptazone/linexpr"
	"github.com/katalvlaran/ptazone/rational"
)

// affine is a mutable-free working representation of a LinearExpression
// used internally by Reference's Fourier-Motzkin elimination: a map from
// Parameter to nonzero coefficient plus a constant term. Unlike
// linexpr.LinearExpression it is not required to stay canonical between
// operations; it is rebuilt fresh by every combinator.
type affine struct {
	coeffs map[ident.Parameter]rational.Rational
	k      rational.Rational
}

func affineFromExpr(e linexpr.LinearExpression) affine {
	coeffs := make(map[ident.Parameter]rational.Rational, len(e.Params()))
	for _, p := range e.Params() {
		coeffs[p] = e.Coefficient(p)
	}
	return affine{coeffs: coeffs, k: e.Const()}
}

func (a affine) coeffOf(p ident.Parameter) rational.Rational {
	if c, ok := a.coeffs[p]; ok {
		return c
	}
	return rational.Zero()
}

func (a affine) scale(factor rational.Rational) affine {
	out := affine{coeffs: make(map[ident.Parameter]rational.Rational, len(a.coeffs)), k: a.k.Mul(factor)}
	for p, c := range a.coeffs {
		out.coeffs[p] = c.Mul(factor)
	}
	return out
}

func (a affine) add(b affine) affine {
	out := affine{coeffs: make(map[ident.Parameter]rational.Rational, len(a.coeffs)+len(b.coeffs)), k: a.k.Add(b.k)}
	for p, c := range a.coeffs {
		out.coeffs[p] = c
	}
	for p, c := range b.coeffs {
		if cur, ok := out.coeffs[p]; ok {
			c = cur.Add(c)
		}
		if c.IsZero() {
			delete(out.coeffs, p)
			continue
		}
		out.coeffs[p] = c
	}
	for p, c := range out.coeffs {
		if c.IsZero() {
			delete(out.coeffs, p)
		}
	}
	return out
}

func (a affine) withoutParam(p ident.Parameter) affine {
	out := affine{coeffs: make(map[ident.Parameter]rational.Rational, len(a.coeffs)), k: a.k}
	for q, c := range a.coeffs {
		if q != p {
			out.coeffs[q] = c
		}
	}
	return out
}

func (a affine) params() []ident.Parameter {
	out := make([]ident.Parameter, 0, len(a.coeffs))
	for p := range a.coeffs {
		out = append(out, p)
	}
	return out
}
