// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algebra implements the exact-algebra substrate the geometric
// kernel builds on: values of the form
//
//	rational + Σ coeff_i·√radicand_i + Σ coeff_j·√opaqueArg_j
//
// i.e. a rational number plus a finite sum over a bounded set of distinct
// square-free rational radicals, plus (only when a value could not be
// denested into that shape) a small number of "opaque" nested-radical terms
// carried symbolically and compared by recursive structural equality with a
// high-precision numeric fallback. A full general-purpose CAS is not
// needed: every value the geometric kernel produces stays within a single
// active quadratic extension at a time, so the opaque path is a safety
// net, not the common case.
//
// Real values are immutable; every method returns a new, normalized Real.
// The representation is built so that two Reals denoting the same algebraic
// value and reached by the same sequence of +,-,×,÷,√ always compare equal
// structurally (Equals never needs a fallback for them). Two rarer cases
// need one: deciding sign (LessThan) of a genuinely irrational, nonzero
// difference, which uses a high-precision numeric evaluation as a pure
// tie-break; and deciding Equals when an un-denested opaque term survives
// subtraction, where a numeric mismatch alone isn't conclusive (it could
// just be an un-simplified but equal value), so Equals instead falls back
// to a minimal-polynomial comparison — see minpoly.go.
package algebra

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"casnum/kerr"
)

// radTerm is coeff·√radicand, radicand a square-free rational > 1.
type radTerm struct {
	coeff    *big.Rat
	radicand *big.Rat
}

// opaqueTerm is coeff·√arg, where arg could not be denested into a plain
// radTerm. arg is itself a fully normalized Real.
type opaqueTerm struct {
	coeff *big.Rat
	arg   *Real
}

// Real is an exact algebraic real number, see package doc.
type Real struct {
	rat    *big.Rat
	terms  []radTerm
	opaque []opaqueTerm
}

// TiePrecision is the default tie-break bit precision: the initial value of
// Precision and the default casnum/config reports; it is generous enough to
// discriminate any branch this kernel's constructions can produce (see
// casnum/config for the overridable knob wired to the live Config).
const TiePrecision = 256

// Precision is the bit precision Sign/LessThan use to discriminate a
// genuinely irrational, nonzero value. It defaults to TiePrecision and is
// overridden by casnum/config's Config.SetTiePrecision.
var Precision uint = TiePrecision

var ratOne = big.NewRat(1, 1)

func cloneRat(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r)
}

// Zero is the additive identity.
func Zero() Real { return Real{rat: new(big.Rat)} }

// One is the multiplicative identity.
func One() Real { return FromInt(1) }

// FromInt builds the Real value of an int64.
func FromInt(n int64) Real {
	return Real{rat: new(big.Rat).SetInt64(n)}
}

// FromBigInt builds the Real value of an arbitrary-precision integer.
func FromBigInt(n *big.Int) Real {
	return Real{rat: new(big.Rat).SetInt(n)}
}

// FromRat builds the Real value of an arbitrary rational.
func FromRat(r *big.Rat) Real {
	return Real{rat: cloneRat(r)}
}

// normalize drops zero-coefficient terms and sorts remaining terms by
// radicand so structurally equal values always print and compare alike.
func normalize(rat *big.Rat, terms []radTerm, opaque []opaqueTerm) Real {
	out := terms[:0]
	for _, t := range terms {
		if t.coeff.Sign() != 0 {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].radicand.Cmp(out[j].radicand) < 0 })

	oOut := opaque[:0]
	for _, o := range opaque {
		if o.coeff.Sign() != 0 {
			oOut = append(oOut, o)
		}
	}
	if rat == nil {
		rat = new(big.Rat)
	}
	return Real{rat: rat, terms: out, opaque: oOut}
}

func addTerm(terms []radTerm, coeff, radicand *big.Rat) []radTerm {
	for i := range terms {
		if terms[i].radicand.Cmp(radicand) == 0 {
			terms[i].coeff = new(big.Rat).Add(terms[i].coeff, coeff)
			return terms
		}
	}
	return append(terms, radTerm{coeff: cloneRat(coeff), radicand: cloneRat(radicand)})
}

func addOpaque(opaque []opaqueTerm, coeff *big.Rat, arg Real) []opaqueTerm {
	for i := range opaque {
		if opaque[i].arg.Equals(arg) {
			opaque[i].coeff = new(big.Rat).Add(opaque[i].coeff, coeff)
			return opaque
		}
	}
	a := arg
	return append(opaque, opaqueTerm{coeff: cloneRat(coeff), arg: &a})
}

// Add returns r+other.
func (r Real) Add(other Real) Real {
	rat := new(big.Rat).Add(r.rat, other.rat)
	terms := make([]radTerm, 0, len(r.terms)+len(other.terms))
	for _, t := range r.terms {
		terms = addTerm(terms, t.coeff, t.radicand)
	}
	for _, t := range other.terms {
		terms = addTerm(terms, t.coeff, t.radicand)
	}
	opaque := make([]opaqueTerm, 0, len(r.opaque)+len(other.opaque))
	for _, o := range r.opaque {
		opaque = addOpaque(opaque, o.coeff, *o.arg)
	}
	for _, o := range other.opaque {
		opaque = addOpaque(opaque, o.coeff, *o.arg)
	}
	return normalize(rat, terms, opaque)
}

// Neg returns -r.
func (r Real) Neg() Real {
	rat := new(big.Rat).Neg(r.rat)
	terms := make([]radTerm, len(r.terms))
	for i, t := range r.terms {
		terms[i] = radTerm{coeff: new(big.Rat).Neg(t.coeff), radicand: t.radicand}
	}
	opaque := make([]opaqueTerm, len(r.opaque))
	for i, o := range r.opaque {
		opaque[i] = opaqueTerm{coeff: new(big.Rat).Neg(o.coeff), arg: o.arg}
	}
	return normalize(rat, terms, opaque)
}

// Sub returns r-other.
func (r Real) Sub(other Real) Real {
	return r.Add(other.Neg())
}

// scaleByRat returns r scaled by the rational s (s may be any sign).
func (r Real) scaleByRat(s *big.Rat) Real {
	rat := new(big.Rat).Mul(r.rat, s)
	terms := make([]radTerm, len(r.terms))
	for i, t := range r.terms {
		terms[i] = radTerm{coeff: new(big.Rat).Mul(t.coeff, s), radicand: t.radicand}
	}
	opaque := make([]opaqueTerm, len(r.opaque))
	for i, o := range r.opaque {
		opaque[i] = opaqueTerm{coeff: new(big.Rat).Mul(o.coeff, s), arg: o.arg}
	}
	return normalize(rat, terms, opaque)
}

// Mul returns r*other. Cross terms are accumulated through Add so every
// case — rational×rational, rational×radical, radical×radical (√a·√b =
// √(ab), square-free reduced), and the opaque cases (√x·√x = x exactly;
// √x·√y wrapped as a fresh opaque √(x·y) otherwise) — funnel through the
// same normal form instead of duplicating its bookkeeping.
func (r Real) Mul(other Real) Real {
	acc := Real{rat: new(big.Rat)}
	acc = acc.Add(Real{rat: new(big.Rat).Mul(r.rat, other.rat)})

	if r.rat.Sign() != 0 {
		scaled := Real{rat: new(big.Rat), terms: other.terms, opaque: other.opaque}.scaleByRat(r.rat)
		acc = acc.Add(scaled)
	}
	if other.rat.Sign() != 0 {
		scaled := Real{rat: new(big.Rat), terms: r.terms, opaque: r.opaque}.scaleByRat(other.rat)
		acc = acc.Add(scaled)
	}

	for _, ta := range r.terms {
		for _, tb := range other.terms {
			coeff := new(big.Rat).Mul(ta.coeff, tb.coeff)
			product := new(big.Rat).Mul(ta.radicand, tb.radicand)
			factor, sf := squarefreeReduceRat(product)
			coeff.Mul(coeff, factor)
			if sf.Cmp(ratOne) == 0 {
				acc = acc.Add(Real{rat: coeff})
			} else {
				acc = acc.Add(Real{rat: new(big.Rat), terms: []radTerm{{coeff: coeff, radicand: sf}}})
			}
		}
	}

	for _, oa := range r.opaque {
		for _, ob := range other.opaque {
			coeff := new(big.Rat).Mul(oa.coeff, ob.coeff)
			if oa.arg.Equals(*ob.arg) {
				acc = acc.Add(oa.arg.scaleByRat(coeff))
				continue
			}
			prod := oa.arg.Mul(*ob.arg)
			acc = acc.Add(wrapOpaque(prod).scaleByRat(coeff))
		}
	}
	for _, ta := range r.terms {
		for _, ob := range other.opaque {
			coeff := new(big.Rat).Mul(ta.coeff, ob.coeff)
			radAsReal := Real{rat: new(big.Rat), terms: []radTerm{{coeff: cloneRat(ratOne), radicand: ta.radicand}}}
			prod := radAsReal.Mul(*ob.arg)
			acc = acc.Add(wrapOpaque(prod).scaleByRat(coeff))
		}
	}
	for _, oa := range r.opaque {
		for _, tb := range other.terms {
			coeff := new(big.Rat).Mul(oa.coeff, tb.coeff)
			radAsReal := Real{rat: new(big.Rat), terms: []radTerm{{coeff: cloneRat(ratOne), radicand: tb.radicand}}}
			prod := oa.arg.Mul(radAsReal)
			acc = acc.Add(wrapOpaque(prod).scaleByRat(coeff))
		}
	}

	return acc
}

// Div returns r/other, or ErrDivByZero when other is zero.
func (r Real) Div(other Real) (Real, error) {
	if other.IsZero() {
		return Real{}, kerr.ErrDivByZero
	}
	numerator := r
	denom := other
	for len(denom.terms) > 0 {
		t := denom.terms[0]
		conj := conjugateFlipTerm(denom, t.radicand)
		numerator = numerator.Mul(conj)
		denom = denom.Mul(conj)
	}
	for len(denom.opaque) > 0 {
		o := denom.opaque[0]
		conj := conjugateFlipOpaque(denom, o.arg)
		numerator = numerator.Mul(conj)
		denom = denom.Mul(conj)
	}
	if denom.rat.Sign() == 0 {
		panic("casnum: algebra: division conjugate collapsed to zero (invariant violation)")
	}
	inv := new(big.Rat).Inv(denom.rat)
	return numerator.scaleByRat(inv), nil
}

// conjugateFlipTerm returns r with the single named radical's coefficient
// negated, leaving every other term and the rational part untouched. Used
// to iteratively rationalize a multi-radical denominator one radical at a
// time.
func conjugateFlipTerm(r Real, radicand *big.Rat) Real {
	terms := make([]radTerm, len(r.terms))
	for i, t := range r.terms {
		if t.radicand.Cmp(radicand) == 0 {
			terms[i] = radTerm{coeff: new(big.Rat).Neg(t.coeff), radicand: t.radicand}
		} else {
			terms[i] = t
		}
	}
	return Real{rat: cloneRat(r.rat), terms: terms, opaque: r.opaque}
}

func conjugateFlipOpaque(r Real, arg *Real) Real {
	opaque := make([]opaqueTerm, len(r.opaque))
	for i, o := range r.opaque {
		if o.arg.Equals(*arg) {
			opaque[i] = opaqueTerm{coeff: new(big.Rat).Neg(o.coeff), arg: o.arg}
		} else {
			opaque[i] = o
		}
	}
	return Real{rat: cloneRat(r.rat), terms: r.terms, opaque: opaque}
}

// IsZero reports whether r is structurally (hence exactly) zero.
func (r Real) IsZero() bool {
	return r.rat.Sign() == 0 && len(r.terms) == 0 && len(r.opaque) == 0
}

// IsRational reports whether r carries no irrational terms.
func (r Real) IsRational() bool {
	return len(r.terms) == 0 && len(r.opaque) == 0
}

// RatValue returns the rational value of r and true when r IsRational.
func (r Real) RatValue() (*big.Rat, bool) {
	if !r.IsRational() {
		return nil, false
	}
	return cloneRat(r.rat), true
}

// Equals reports whether r and other denote the same real number. The
// structural comparison (normal-form subtraction) is exact whenever both
// sides stay within radTerms, but an un-denested opaque term leaves it only
// a sufficient, not necessary, test for equality; when it comes back
// nonzero and an opaque term is present, Equals falls back to the
// minimal-polynomial comparison (see equalsViaMinimalPolynomial in
// minpoly.go).
func (r Real) Equals(other Real) bool {
	diff := r.Sub(other)
	if diff.IsZero() {
		return true
	}
	if len(diff.opaque) == 0 {
		return false
	}
	if eq, ok := r.equalsViaMinimalPolynomial(other); ok {
		return eq
	}
	return false
}

// Sign returns -1, 0 or 1. Zero is always decided structurally (exact); a
// nonzero irrational value is decided by a high-precision numeric
// evaluation, the one place Approx acts as a tie-breaker rather than an
// approximation of a result.
func (r Real) Sign() int {
	if r.IsZero() {
		return 0
	}
	if r.IsRational() {
		return r.rat.Sign()
	}
	f := r.Approx(Precision)
	return f.Sign()
}

// LessThan implements the substrate's total order.
func (r Real) LessThan(other Real) bool {
	return r.Sub(other).Sign() < 0
}

// Simplify returns r; the representation is already normal-form on
// construction, so Simplify is idempotent by definition.
func (r Real) Simplify() Real { return r }

// Sqrt returns √r, denesting one level of nested radical when r is a single
// simple surd (a0 + a1·√rad); deeper nesting falls back to an opaque
// wrapper carried for Approx/Equals (see package doc).
func (r Real) Sqrt() (Real, error) {
	switch r.Sign() {
	case -1:
		return Real{}, kerr.ErrNegRoot
	case 0:
		return Zero(), nil
	}
	if r.IsRational() {
		return sqrtRational(r.rat), nil
	}
	if len(r.terms) == 1 && len(r.opaque) == 0 {
		if res, ok := denestTwoTerm(r.rat, r.terms[0]); ok {
			return res, nil
		}
	}
	return wrapOpaque(r), nil
}

func wrapOpaque(r Real) Real {
	return Real{rat: new(big.Rat), opaque: []opaqueTerm{{coeff: cloneRat(ratOne), arg: &r}}}
}

func sqrtRational(rat *big.Rat) Real {
	coeff, sf := squarefreeReduceRat(rat)
	if sf.Cmp(ratOne) == 0 {
		return Real{rat: coeff}
	}
	return Real{rat: new(big.Rat), terms: []radTerm{{coeff: coeff, radicand: sf}}}
}

// denestTwoTerm attempts √(a0 + a1·√rad) = √m ± √n via the classical
// nested-radical identity: m+n=a0, 4mn=a1²·rad, i.e.
// m,n = (a0 ± √(a0²-a1²·rad)) / 2, taking the sign of a1 for the √n term
// (m >= n). Succeeds only when the discriminant is a perfect-square
// rational and m,n are both non-negative.
func denestTwoTerm(a0 *big.Rat, t radTerm) (Real, bool) {
	a1, rad := t.coeff, t.radicand
	disc := new(big.Rat).Sub(
		new(big.Rat).Mul(a0, a0),
		new(big.Rat).Mul(new(big.Rat).Mul(a1, a1), rad),
	)
	if disc.Sign() < 0 {
		return Real{}, false
	}
	sqrtDisc, exact := ratSqrtExact(disc)
	if !exact {
		return Real{}, false
	}
	two := big.NewRat(2, 1)
	m := new(big.Rat).Quo(new(big.Rat).Add(a0, sqrtDisc), two)
	n := new(big.Rat).Quo(new(big.Rat).Sub(a0, sqrtDisc), two)
	if m.Sign() < 0 || n.Sign() < 0 {
		return Real{}, false
	}
	if a1.Sign() < 0 {
		return sqrtRational(m).Sub(sqrtRational(n)), true
	}
	return sqrtRational(m).Add(sqrtRational(n)), true
}

// ratSqrtExact returns the exact rational square root of d when d is a
// perfect square rational (d assumed non-negative).
func ratSqrtExact(d *big.Rat) (*big.Rat, bool) {
	if d.Sign() == 0 {
		return new(big.Rat), true
	}
	coeff, sf := squarefreeReduceRat(d)
	if sf.Cmp(ratOne) == 0 {
		return coeff, true
	}
	return nil, false
}

func (r Real) String() string {
	var parts []string
	if r.rat.Sign() != 0 || (len(r.terms) == 0 && len(r.opaque) == 0) {
		parts = append(parts, r.rat.RatString())
	}
	for _, t := range r.terms {
		parts = append(parts, fmt.Sprintf("%s*sqrt(%s)", t.coeff.RatString(), t.radicand.RatString()))
	}
	for _, o := range r.opaque {
		parts = append(parts, fmt.Sprintf("%s*sqrt(%s)", o.coeff.RatString(), o.arg.String()))
	}
	return strings.Join(parts, " + ")
}

// Approx returns a prec-bit high-precision numeric evaluation of r, for use
// strictly as a tie-breaker (branch selection, Sign of an irrational
// difference) — never as the authoritative value of a public operation.
func (r Real) Approx(prec uint) *big.Float {
	f := new(big.Float).SetPrec(prec).SetRat(r.rat)
	for _, t := range r.terms {
		rf := new(big.Float).SetPrec(prec).SetRat(t.radicand)
		sq := floatSqrt(rf)
		term := new(big.Float).SetPrec(prec).SetRat(t.coeff)
		term.Mul(term, sq)
		f.Add(f, term)
	}
	for _, o := range r.opaque {
		argApprox := o.arg.Approx(prec)
		sq := floatSqrt(argApprox)
		term := new(big.Float).SetPrec(prec).SetRat(o.coeff)
		term.Mul(term, sq)
		f.Add(f, term)
	}
	return f
}
