// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"casnum/algebra"
	"casnum/kerr"
	"casnum/viewer"
)

// Line is stored in general form Ax+By=C rather than slope-intercept, so a
// vertical line needs no special representation. P1 and P2 are the two
// points NewLine was built from, carried alongside the coefficients because
// casnum/construct's compound constructions need a concrete point known to
// lie on the line. Lines built by NewLineFromCoeffs leave them zero.
type Line struct {
	A, B, C algebra.Real
	P1, P2  Point
}

// NewLine builds the line through two distinct points. It returns
// kerr.ErrDegenerateLine if p1 equals p2.
func NewLine(p1, p2 Point) (Line, error) {
	if p1.IsAtInfinity() || p2.IsAtInfinity() {
		return Line{}, kerr.ErrDegenerateLine
	}
	if p1.Equals(p2) {
		return Line{}, kerr.ErrDegenerateLine
	}
	a := p2.Y.Sub(p1.Y)
	b := p1.X.Sub(p2.X)
	c := a.Mul(p1.X).Add(b.Mul(p1.Y))
	l := Line{A: a, B: b, C: c, P1: p1, P2: p2}
	sink.Enqueue(viewer.Command{
		Tag: viewer.TagLine, Gen: gen,
		X1: toF64(p1.X), Y1: toF64(p1.Y),
		X2: toF64(p2.X), Y2: toF64(p2.Y),
	})
	return l, nil
}

// NewLineFromCoeffs builds Ax+By=C directly, skipping point derivation. a
// and b may not both be zero.
func NewLineFromCoeffs(a, b, c algebra.Real) (Line, error) {
	if a.IsZero() && b.IsZero() {
		return Line{}, kerr.ErrDegenerateLine
	}
	return Line{A: a, B: b, C: c}, nil
}

// IsVertical reports whether the line has no finite slope (B == 0).
func (l Line) IsVertical() bool { return l.B.IsZero() }

// Equals reports whether l and other describe the same line, comparing
// slope and intercept so the answer is independent of which two points each
// was built from. Two vertical lines are equal when their x-intercepts
// agree.
func (l Line) Equals(other Line) bool {
	if l.IsVertical() != other.IsVertical() {
		return false
	}
	if l.IsVertical() {
		x1, err := l.C.Div(l.A)
		if err != nil {
			panic("casnum: geom: Equals: vertical line with zero A (invariant violation)")
		}
		x2, err := other.C.Div(other.A)
		if err != nil {
			panic("casnum: geom: Equals: vertical line with zero A (invariant violation)")
		}
		return x1.Equals(x2)
	}
	m1, _ := l.Slope()
	m2, _ := other.Slope()
	b1, _ := l.Intercept()
	b2, _ := other.Intercept()
	return m1.Equals(m2) && b1.Equals(b2)
}

// Slope returns the line's slope and true, or algebra.Zero() and false if
// the line is vertical.
func (l Line) Slope() (algebra.Real, bool) {
	if l.IsVertical() {
		return algebra.Zero(), false
	}
	m, err := l.A.Neg().Div(l.B)
	if err != nil {
		panic("casnum: geom: Slope: division by zero B despite IsVertical check")
	}
	return m, true
}

// Intercept returns the line's y-intercept and true, or algebra.Zero() and
// false if the line is vertical.
func (l Line) Intercept() (algebra.Real, bool) {
	if l.IsVertical() {
		return algebra.Zero(), false
	}
	b, err := l.C.Div(l.B)
	if err != nil {
		panic("casnum: geom: Intercept: division by zero B despite IsVertical check")
	}
	return b, true
}

// At evaluates the line at the given x. It returns kerr.ErrDegenerateLine if
// the line is vertical, since a vertical line does not define y as a
// function of x.
func (l Line) At(x algebra.Real) (Point, error) {
	if l.IsVertical() {
		return Point{}, kerr.ErrDegenerateLine
	}
	// y = (C - A*x) / B
	num := l.C.Sub(l.A.Mul(x))
	y, err := num.Div(l.B)
	if err != nil {
		panic("casnum: geom: At: division by zero B despite IsVertical check")
	}
	return NewPoint(x, y), nil
}

func toF64(r algebra.Real) float64 {
	f, _ := r.Approx(64).Float64()
	return f
}

// DistFromPoint returns the perpendicular distance from p to l:
// |A·x+B·y-C|/√(A²+B²) under this package's Ax+By=C convention.
func (l Line) DistFromPoint(p Point) algebra.Real {
	num := AbsReal(l.A.Mul(p.X).Add(l.B.Mul(p.Y)).Sub(l.C))
	denomSq := l.A.Mul(l.A).Add(l.B.Mul(l.B))
	denom, err := denomSq.Sqrt()
	if err != nil {
		panic("casnum: geom: DistFromPoint: A²+B² was negative (invariant violation)")
	}
	d, err := num.Div(denom)
	if err != nil {
		panic("casnum: geom: DistFromPoint: division by zero norm on a non-degenerate line")
	}
	return d
}
