// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import "math/big"

// maxConjugateGenerators bounds the conjugate-product construction below to
// 2^maxConjugateGenerators roots. Every value the geometric kernel actually
// carries through an un-denested opaque term stays well under this; a value
// that exceeds it makes the fallback report inconclusive rather than
// mis-decide.
const maxConjugateGenerators = 4

// characteristicPolynomial returns the coefficients (ascending degree) of a
// polynomial with rational coefficients that r is a root of: the product,
// over every independent sign choice of r's square-root generators (its
// radTerms and opaque terms), of (x - conjugate). Galois symmetry collapses
// that product's coefficients to rationals whenever the generators are
// genuinely independent; ok is false when they aren't (or there are too
// many to try), signaling callers to fall back to Approx alone.
func (r Real) characteristicPolynomial() ([]*big.Rat, bool) {
	gens := len(r.terms) + len(r.opaque)
	if gens > maxConjugateGenerators {
		return nil, false
	}
	poly := []Real{One()}
	for mask := 0; mask < 1<<uint(gens); mask++ {
		poly = polyMulLinear(poly, r.signFlip(mask))
	}
	coeffs := make([]*big.Rat, len(poly))
	for i, c := range poly {
		v, ok := c.RatValue()
		if !ok {
			return nil, false
		}
		coeffs[i] = v
	}
	return coeffs, true
}

// signFlip returns the conjugate of r obtained by negating the coefficient
// of every generator (radTerm or opaque term) whose bit is set in mask.
func (r Real) signFlip(mask int) Real {
	terms := make([]radTerm, len(r.terms))
	for i, t := range r.terms {
		coeff := cloneRat(t.coeff)
		if mask&(1<<uint(i)) != 0 {
			coeff.Neg(coeff)
		}
		terms[i] = radTerm{coeff: coeff, radicand: t.radicand}
	}
	opaque := make([]opaqueTerm, len(r.opaque))
	for j, o := range r.opaque {
		coeff := cloneRat(o.coeff)
		if mask&(1<<uint(len(r.terms)+j)) != 0 {
			coeff.Neg(coeff)
		}
		opaque[j] = opaqueTerm{coeff: coeff, arg: o.arg}
	}
	return Real{rat: cloneRat(r.rat), terms: terms, opaque: opaque}
}

// polyMulLinear multiplies poly (ascending-degree coefficients) by (x - root).
func polyMulLinear(poly []Real, root Real) []Real {
	out := make([]Real, len(poly)+1)
	for i := range out {
		out[i] = Zero()
	}
	for i, c := range poly {
		out[i+1] = out[i+1].Add(c)
		out[i] = out[i].Sub(c.Mul(root))
	}
	return out
}

// canonicalIntPoly reduces a rational coefficient vector to a primitive
// integer vector (common denominator cleared, gcd divided out, sign of the
// leading nonzero coefficient normalized positive) so two polynomials built
// from differently-scaled conjugate products compare equal when they denote
// the same algebraic relation.
func canonicalIntPoly(coeffs []*big.Rat) []*big.Int {
	lcm := big.NewInt(1)
	for _, c := range coeffs {
		d := c.Denom()
		if d.Sign() == 0 {
			continue
		}
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Div(d, g))
	}
	ints := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		scaled := new(big.Rat).Mul(c, new(big.Rat).SetInt(lcm))
		ints[i] = new(big.Int).Set(scaled.Num())
	}
	gcd := big.NewInt(0)
	for _, v := range ints {
		if v.Sign() != 0 {
			gcd.GCD(nil, nil, gcd, new(big.Int).Abs(v))
		}
	}
	if gcd.Sign() != 0 {
		for i, v := range ints {
			ints[i] = new(big.Int).Div(v, gcd)
		}
	}
	for i := len(ints) - 1; i >= 0; i-- {
		if ints[i].Sign() != 0 {
			if ints[i].Sign() < 0 {
				for j, v := range ints {
					ints[j] = new(big.Int).Neg(v)
				}
			}
			break
		}
	}
	return ints
}

func intPolyEqual(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// equalsViaMinimalPolynomial is the fallback for when r and other remain
// structurally distinct (an un-denested opaque term on at least one side):
// compute a characteristic polynomial of each over the rationals; differing
// polynomials mean differing values, matching polynomials mean r and other
// are among that polynomial's real roots and are compared by a
// high-precision numeric evaluation. ok is false when the generator budget
// is exceeded on either side, signaling the caller to fall back further.
func (r Real) equalsViaMinimalPolynomial(other Real) (equal bool, ok bool) {
	p1, ok1 := r.characteristicPolynomial()
	p2, ok2 := other.characteristicPolynomial()
	if !ok1 || !ok2 {
		return false, false
	}
	c1 := canonicalIntPoly(p1)
	c2 := canonicalIntPoly(p2)
	if !intPolyEqual(c1, c2) {
		return false, true
	}
	a := r.Approx(Precision)
	b := other.Approx(Precision)
	diff := new(big.Float).SetPrec(Precision).Sub(a, b)
	diff.Abs(diff)
	threshold := new(big.Float).SetPrec(Precision).SetMantExp(big.NewFloat(1), -int(Precision/2))
	return diff.Cmp(threshold) < 0, true
}
