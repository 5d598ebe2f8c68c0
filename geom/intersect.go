// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"casnum/algebra"
	"casnum/config"
	"casnum/kerr"
)

// IntersectLines returns the single intersection point of two lines, or
// Infinity() if the lines are parallel (including coincident lines — a
// coincident pair has infinitely many intersections, which Point cannot
// represent any more precisely than the conventional point at infinity).
// Solved via Cramer's rule on the 2x2 system.
func IntersectLines(l1, l2 Line) Point {
	det := l1.A.Mul(l2.B).Sub(l2.A.Mul(l1.B))
	if det.IsZero() {
		return Infinity()
	}
	xNum := l1.C.Mul(l2.B).Sub(l2.C.Mul(l1.B))
	yNum := l1.A.Mul(l2.C).Sub(l2.A.Mul(l1.C))
	x, err := xNum.Div(det)
	if err != nil {
		panic("casnum: geom: IntersectLines: division by zero det despite IsZero check")
	}
	y, err := yNum.Div(det)
	if err != nil {
		panic("casnum: geom: IntersectLines: division by zero det despite IsZero check")
	}
	return NewPoint(x, y)
}

// solveQuadratic returns the real roots of a*x^2+b*x+c=0 in ascending order.
// A nil, nil result means the discriminant was negative (no real roots).
func solveQuadratic(a, b, c algebra.Real) ([]algebra.Real, error) {
	if a.IsZero() {
		if b.IsZero() {
			return nil, nil
		}
		x, err := c.Neg().Div(b)
		if err != nil {
			return nil, err
		}
		return []algebra.Real{x}, nil
	}

	two := algebra.FromInt(2)
	four := algebra.FromInt(4)
	disc := b.Mul(b).Sub(four.Mul(a).Mul(c))
	if disc.Sign() < 0 {
		return nil, nil
	}

	twoA := two.Mul(a)
	if disc.IsZero() {
		x, err := b.Neg().Div(twoA)
		if err != nil {
			return nil, err
		}
		return []algebra.Real{x}, nil
	}

	sqrtDisc, err := disc.Sqrt()
	if err != nil {
		return nil, err
	}
	x1, err := b.Neg().Sub(sqrtDisc).Div(twoA)
	if err != nil {
		return nil, err
	}
	x2, err := b.Neg().Add(sqrtDisc).Div(twoA)
	if err != nil {
		return nil, err
	}
	if x2.LessThan(x1) {
		x1, x2 = x2, x1
	}
	return []algebra.Real{x1, x2}, nil
}

// IntersectCircleLine returns the points where line l crosses circle c, in
// ascending x order (ascending y order for a vertical line). A nil, nil
// result means the line misses the circle entirely. The vertical case
// (B == 0) is solved for y directly; every other line is substituted as
// y = px + q into the circle and solved for x, avoiding any division by B
// when B is zero.
func IntersectCircleLine(c Circle, l Line) ([]Point, error) {
	h, k, r := c.Center.X, c.Center.Y, c.Radius

	if l.IsVertical() {
		x0, err := l.C.Div(l.A)
		if err != nil {
			return nil, err
		}
		dx := x0.Sub(h)
		disc := r.Mul(r).Sub(dx.Mul(dx))
		if disc.Sign() < 0 {
			config.Logf("geom: circle/line: miss at vertical x=%s", x0)
			return nil, nil
		}
		if disc.IsZero() {
			config.Logf("geom: circle/line: tangent at vertical x=%s", x0)
			return []Point{NewPoint(x0, k)}, nil
		}
		sqrtDisc, err := disc.Sqrt()
		if err != nil {
			return nil, err
		}
		return []Point{
			NewPoint(x0, k.Sub(sqrtDisc)),
			NewPoint(x0, k.Add(sqrtDisc)),
		}, nil
	}

	// y = p*x + q
	p, err := l.A.Neg().Div(l.B)
	if err != nil {
		return nil, err
	}
	q, err := l.C.Div(l.B)
	if err != nil {
		return nil, err
	}

	one := algebra.One()
	two := algebra.FromInt(2)
	qMinusK := q.Sub(k)

	a := one.Add(p.Mul(p))
	b := two.Mul(p.Mul(qMinusK).Sub(h))
	cc := h.Mul(h).Add(qMinusK.Mul(qMinusK)).Sub(r.Mul(r))

	roots, err := solveQuadratic(a, b, cc)
	if err != nil {
		return nil, err
	}
	config.Logf("geom: circle/line: %d intersection(s)", len(roots))
	pts := make([]Point, len(roots))
	for i, x := range roots {
		y := p.Mul(x).Add(q)
		pts[i] = NewPoint(x, y)
	}
	return pts, nil
}

// IntersectCircles returns the points where two circles meet. It reduces
// the pair to a circle/line intersection against their radical axis — the
// line obtained by subtracting one circle's expanded equation from the
// other's, which cancels the quadratic terms. The reduction stays exact
// under the algebra substrate, so no numeric branch matching between the
// two circles' candidate roots is ever needed. A nil, nil result means the
// circles do not meet; coincident circles (infinitely many intersection
// points) are reported as kerr.ErrDegenerateCircle since Point cannot
// represent that case.
func IntersectCircles(c1, c2 Circle) ([]Point, error) {
	h1, k1, r1 := c1.Center.X, c1.Center.Y, c1.Radius
	h2, k2, r2 := c2.Center.X, c2.Center.Y, c2.Radius

	two := algebra.FromInt(2)
	a := two.Mul(h2.Sub(h1))
	b := two.Mul(k2.Sub(k1))
	// c such that a*x + b*y = c is the radical axis.
	rhs := r1.Mul(r1).Sub(r2.Mul(r2)).Sub(h1.Mul(h1)).Sub(k1.Mul(k1)).Add(h2.Mul(h2)).Add(k2.Mul(k2))

	if a.IsZero() && b.IsZero() {
		if c1.Center.Equals(c2.Center) && r1.Equals(r2) {
			return nil, kerr.ErrDegenerateCircle
		}
		config.Logf("geom: circle/circle: concentric, no intersection")
		return nil, nil
	}

	axis, err := NewLineFromCoeffs(a, b, rhs)
	if err != nil {
		return nil, err
	}
	config.Logf("geom: circle/circle: radical axis %s*x + %s*y = %s", a, b, rhs)
	return IntersectCircleLine(c1, axis)
}
