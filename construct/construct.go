// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package construct is the toolbox of compound straightedge-and-compass
// constructions built on casnum/geom's three intersection primitives:
// perpendicular bisector, midpoint, unit-distance chaining, perpendiculars
// and parallels through a point, and point reflection. Each is a
// deterministic composition of intersect calls; an unexpected empty or
// infinite intersection means an upstream invariant was violated and is
// surfaced as an error rather than patched over.
package construct

import (
	"casnum/geom"
	"casnum/kerr"
)

// TwoPoints requires an intersection result to carry exactly two points,
// reporting kerr.ErrBranchSelectionFailed otherwise. Exported so callers
// outside this package (casnum's arithmetic layer) can apply the same
// unpacking discipline against geom's intersection results.
func TwoPoints(pts []geom.Point, err error) (geom.Point, geom.Point, error) {
	if err != nil {
		return geom.Point{}, geom.Point{}, err
	}
	if len(pts) != 2 {
		return geom.Point{}, geom.Point{}, kerr.ErrBranchSelectionFailed
	}
	return pts[0], pts[1], nil
}

// PerpendicularBisector returns the perpendicular bisector of the segment
// between p1 and p2: two circles of equal radius (the segment's own
// length) centered on each endpoint meet at two points, and the line
// through those two points is the bisector.
func PerpendicularBisector(p1, p2 geom.Point) (geom.Line, error) {
	c1, err := geom.NewCircle(p1, p2)
	if err != nil {
		return geom.Line{}, err
	}
	c2, err := geom.NewCircle(p2, p1)
	if err != nil {
		return geom.Line{}, err
	}
	q1, q2, err := TwoPoints(geom.IntersectCircles(c1, c2))
	if err != nil {
		return geom.Line{}, err
	}
	return geom.NewLine(q1, q2)
}

// Midpoint returns the midpoint of the segment between p1 and p2: the
// intersection of the segment's line with its own perpendicular bisector.
func Midpoint(p1, p2 geom.Point) (geom.Point, error) {
	l, err := geom.NewLine(p1, p2)
	if err != nil {
		return geom.Point{}, err
	}
	perp, err := PerpendicularBisector(p1, p2)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.IntersectLines(l, perp), nil
}

// GenerateN walks n unit steps along the line from origin through unit,
// each step constructed by striking a circle of the current step length
// centered at the far endpoint and picking the intersection with the axis
// line that continues forward rather than backtracking. This is how the
// kernel lays down the integer lattice point n·unit without any addition
// primitive.
func GenerateN(n int, origin, unit geom.Point) (geom.Point, error) {
	axis, err := geom.NewLine(origin, unit)
	if err != nil {
		return geom.Point{}, err
	}
	pCur := unit
	pPrev := origin
	for i := 0; i < n; i++ {
		c, err := geom.NewCircle(pCur, pPrev)
		if err != nil {
			return geom.Point{}, err
		}
		p1, p2, err := TwoPoints(geom.IntersectCircleLine(c, axis))
		if err != nil {
			return geom.Point{}, err
		}
		if pPrev.Equals(p1) {
			pPrev = pCur
			pCur = p2
		} else {
			pPrev = pCur
			pCur = p1
		}
	}
	return pPrev, nil
}

// PerpendicularThroughPoint returns the line through p perpendicular to l.
//
// When p is not already on l (l.DistFromPoint(p) != 0), it strikes a circle
// centered at p through one of l's defining points, takes the two points
// where that circle crosses l, and bisects the segment between them — the
// bisector of a chord is perpendicular to it, and here the chord's circle is
// centered at p, so the bisector passes through p too.
//
// When p lies on l, that trick has no chord to work with, so instead it
// picks a circle through p and the far defining point of l, splits the two
// resulting chord endpoints each into their own perpendicular bisector, and
// uses whichever pair of intersections with the circle ends up closer
// together to pin down the answer unambiguously.
func PerpendicularThroughPoint(p geom.Point, l geom.Line) (geom.Line, error) {
	if l.DistFromPoint(p).Sign() != 0 {
		c, err := geom.NewCircle(p, l.P1)
		if err != nil {
			return geom.Line{}, err
		}
		pts, err := geom.IntersectCircleLine(c, l)
		if err != nil {
			return geom.Line{}, err
		}
		if len(pts) < 2 {
			c, err = geom.NewCircle(p, l.P2)
			if err != nil {
				return geom.Line{}, err
			}
			pts, err = geom.IntersectCircleLine(c, l)
			if err != nil {
				return geom.Line{}, err
			}
		}
		if len(pts) != 2 {
			return geom.Line{}, kerr.ErrBranchSelectionFailed
		}
		c1, err := geom.NewCircle(pts[0], p)
		if err != nil {
			return geom.Line{}, err
		}
		c2, err := geom.NewCircle(pts[1], p)
		if err != nil {
			return geom.Line{}, err
		}
		q1, q2, err := TwoPoints(geom.IntersectCircles(c1, c2))
		if err != nil {
			return geom.Line{}, err
		}
		return geom.NewLine(q1, q2)
	}

	var other geom.Point
	if p.Equals(l.P1) {
		other = l.P2
	} else {
		other = l.P1
	}
	c, err := geom.NewCircle(p, other)
	if err != nil {
		return geom.Line{}, err
	}
	p1, p2, err := TwoPoints(geom.IntersectCircleLine(c, l))
	if err != nil {
		return geom.Line{}, err
	}

	perp1, err := PerpendicularBisector(p, p1)
	if err != nil {
		return geom.Line{}, err
	}
	perp2, err := PerpendicularBisector(p, p2)
	if err != nil {
		return geom.Line{}, err
	}
	p11, p12, err := TwoPoints(geom.IntersectCircleLine(c, perp1))
	if err != nil {
		return geom.Line{}, err
	}
	p21, p22, err := TwoPoints(geom.IntersectCircleLine(c, perp2))
	if err != nil {
		return geom.Line{}, err
	}
	if geom.Dist(p11, p21).LessThan(geom.Dist(p11, p22)) {
		return PerpendicularBisector(p11, p21)
	}
	return PerpendicularBisector(p12, p22)
}

// ParallelThroughPoint returns the line through p parallel to l: drop the
// perpendicular from p to l, then bisect the chord that perpendicular cuts
// from a circle centered at p through its foot — the bisector of that
// chord is perpendicular to the perpendicular, hence parallel to l.
func ParallelThroughPoint(p geom.Point, l geom.Line) (geom.Line, error) {
	perp, err := PerpendicularThroughPoint(p, l)
	if err != nil {
		return geom.Line{}, err
	}
	foot := geom.IntersectLines(l, perp)
	c, err := geom.NewCircle(p, foot)
	if err != nil {
		return geom.Line{}, err
	}
	q1, q2, err := TwoPoints(geom.IntersectCircleLine(c, perp))
	if err != nil {
		return geom.Line{}, err
	}
	return PerpendicularBisector(q1, q2)
}

// MirrorPoint reflects p across line l.
func MirrorPoint(p geom.Point, l geom.Line) (geom.Point, error) {
	perp, err := PerpendicularThroughPoint(p, l)
	if err != nil {
		return geom.Point{}, err
	}
	a := geom.IntersectLines(l, perp)
	c, err := geom.NewCircle(a, p)
	if err != nil {
		return geom.Point{}, err
	}
	p1, p2, err := TwoPoints(geom.IntersectCircleLine(c, perp))
	if err != nil {
		return geom.Point{}, err
	}
	if p1.Equals(p) {
		return p2, nil
	}
	return p1, nil
}

// MirrorPointOnXAxis returns the antipode of p through origin: the far
// intersection of circle(origin, p) with the line through origin and p. For
// a point on the x-axis this is its negation, which is all the arithmetic
// layer asks of it; it needs only a circle/line pair where MirrorPoint
// needs a full perpendicular construction.
func MirrorPointOnXAxis(p, origin geom.Point) (geom.Point, error) {
	if p.Equals(origin) {
		return origin, nil
	}
	c, err := geom.NewCircle(origin, p)
	if err != nil {
		return geom.Point{}, err
	}
	l, err := geom.NewLine(origin, p)
	if err != nil {
		return geom.Point{}, err
	}
	p1, p2, err := TwoPoints(geom.IntersectCircleLine(c, l))
	if err != nil {
		return geom.Point{}, err
	}
	if p2.Equals(p) {
		return p1, nil
	}
	return p2, nil
}

// DoublePointOnXAxis returns the point twice as far from origin as p, along
// the line through origin and p.
func DoublePointOnXAxis(origin, p geom.Point) (geom.Point, error) {
	if p.Equals(origin) {
		return origin, nil
	}
	c, err := geom.NewCircle(p, origin)
	if err != nil {
		return geom.Point{}, err
	}
	l, err := geom.NewLine(origin, p)
	if err != nil {
		return geom.Point{}, err
	}
	p1, p2, err := TwoPoints(geom.IntersectCircleLine(c, l))
	if err != nil {
		return geom.Point{}, err
	}
	if p2.Equals(origin) {
		return p1, nil
	}
	return p2, nil
}

// HalfPointOnXAxis returns the midpoint between origin and p.
func HalfPointOnXAxis(origin, p geom.Point) (geom.Point, error) {
	if p.Equals(origin) {
		return origin, nil
	}
	return Midpoint(origin, p)
}
