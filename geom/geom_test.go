// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"casnum/algebra"
	"casnum/geom"
	"casnum/kerr"
)

func r(n int64) algebra.Real { return algebra.FromInt(n) }

func TestDegenerateLineOnCoincidentPoints(t *testing.T) {
	p := geom.NewPoint(r(1), r(1))
	_, err := geom.NewLine(p, p)
	require.ErrorIs(t, err, kerr.ErrDegenerateLine)
}

func TestLineSlopeAndIntercept(t *testing.T) {
	p1 := geom.NewPoint(r(0), r(0))
	p2 := geom.NewPoint(r(2), r(4))
	l, err := geom.NewLine(p1, p2)
	require.NoError(t, err)

	m, ok := l.Slope()
	require.True(t, ok)
	require.True(t, m.Equals(r(2)))

	b, ok := l.Intercept()
	require.True(t, ok)
	require.True(t, b.IsZero())
}

func TestVerticalLineHasNoSlope(t *testing.T) {
	p1 := geom.NewPoint(r(3), r(0))
	p2 := geom.NewPoint(r(3), r(5))
	l, err := geom.NewLine(p1, p2)
	require.NoError(t, err)
	require.True(t, l.IsVertical())

	_, ok := l.Slope()
	require.False(t, ok)

	_, err = l.At(r(3))
	require.ErrorIs(t, err, kerr.ErrDegenerateLine)
}

func TestLineEqualityIndependentOfDefiningPoints(t *testing.T) {
	l1, err := geom.NewLine(geom.NewPoint(r(0), r(0)), geom.NewPoint(r(1), r(1)))
	require.NoError(t, err)
	l2, err := geom.NewLine(geom.NewPoint(r(2), r(2)), geom.NewPoint(r(5), r(5)))
	require.NoError(t, err)
	require.True(t, l1.Equals(l2))

	v1, err := geom.NewLine(geom.NewPoint(r(3), r(0)), geom.NewPoint(r(3), r(1)))
	require.NoError(t, err)
	v2, err := geom.NewLine(geom.NewPoint(r(3), r(-7)), geom.NewPoint(r(3), r(2)))
	require.NoError(t, err)
	require.True(t, v1.Equals(v2))
	require.False(t, l1.Equals(v1))
}

func TestCircleEquality(t *testing.T) {
	c1, err := geom.NewCircle(geom.NewPoint(r(0), r(0)), geom.NewPoint(r(3), r(4)))
	require.NoError(t, err)
	c2, err := geom.NewCircle(geom.NewPoint(r(0), r(0)), geom.NewPoint(r(5), r(0)))
	require.NoError(t, err)
	require.True(t, c1.Equals(c2))

	c3, err := geom.NewCircleWithRadius(geom.NewPoint(r(0), r(0)), r(4))
	require.NoError(t, err)
	require.False(t, c1.Equals(c3))
}

func TestIntersectLinesCrossing(t *testing.T) {
	l1, err := geom.NewLine(geom.NewPoint(r(0), r(0)), geom.NewPoint(r(2), r(2)))
	require.NoError(t, err)
	l2, err := geom.NewLine(geom.NewPoint(r(0), r(2)), geom.NewPoint(r(2), r(0)))
	require.NoError(t, err)

	p := geom.IntersectLines(l1, l2)
	require.False(t, p.IsAtInfinity())
	require.True(t, p.Equals(geom.NewPoint(r(1), r(1))))
}

func TestIntersectLinesParallelIsInfinity(t *testing.T) {
	l1, err := geom.NewLine(geom.NewPoint(r(0), r(0)), geom.NewPoint(r(1), r(1)))
	require.NoError(t, err)
	l2, err := geom.NewLine(geom.NewPoint(r(0), r(1)), geom.NewPoint(r(1), r(2)))
	require.NoError(t, err)

	p := geom.IntersectLines(l1, l2)
	require.True(t, p.IsAtInfinity())
}

func TestCircleDegenerateOnZeroRadius(t *testing.T) {
	c := geom.NewPoint(r(0), r(0))
	_, err := geom.NewCircle(c, c)
	require.ErrorIs(t, err, kerr.ErrDegenerateCircle)
}

func TestCircleContains(t *testing.T) {
	center := geom.NewPoint(r(0), r(0))
	edge := geom.NewPoint(r(3), r(4))
	c, err := geom.NewCircle(center, edge)
	require.NoError(t, err)
	require.True(t, c.Radius.Equals(r(5)))
	require.True(t, c.Contains(geom.NewPoint(r(5), r(0))))
	require.True(t, c.Contains(geom.NewPoint(r(0), r(-5))))
}

func TestIntersectCircleLineDiameter(t *testing.T) {
	center := geom.NewPoint(r(0), r(0))
	c, err := geom.NewCircleWithRadius(center, r(5))
	require.NoError(t, err)
	l, err := geom.NewLine(geom.NewPoint(r(-10), r(0)), geom.NewPoint(r(10), r(0)))
	require.NoError(t, err)

	pts, err := geom.IntersectCircleLine(c, l)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	require.True(t, pts[0].Equals(geom.NewPoint(r(-5), r(0))))
	require.True(t, pts[1].Equals(geom.NewPoint(r(5), r(0))))
}

func TestIntersectCircleVerticalLineTangent(t *testing.T) {
	center := geom.NewPoint(r(0), r(0))
	c, err := geom.NewCircleWithRadius(center, r(5))
	require.NoError(t, err)
	l, err := geom.NewLine(geom.NewPoint(r(5), r(-3)), geom.NewPoint(r(5), r(3)))
	require.NoError(t, err)

	pts, err := geom.IntersectCircleLine(c, l)
	require.NoError(t, err)
	require.Len(t, pts, 1)
	require.True(t, pts[0].Equals(geom.NewPoint(r(5), r(0))))
}

func TestIntersectCircleLineMiss(t *testing.T) {
	center := geom.NewPoint(r(0), r(0))
	c, err := geom.NewCircleWithRadius(center, r(1))
	require.NoError(t, err)
	l, err := geom.NewLine(geom.NewPoint(r(10), r(-3)), geom.NewPoint(r(10), r(3)))
	require.NoError(t, err)

	pts, err := geom.IntersectCircleLine(c, l)
	require.NoError(t, err)
	require.Nil(t, pts)
}

func TestIntersectCirclesTwoPoints(t *testing.T) {
	c1, err := geom.NewCircleWithRadius(geom.NewPoint(r(0), r(0)), r(5))
	require.NoError(t, err)
	c2, err := geom.NewCircleWithRadius(geom.NewPoint(r(8), r(0)), r(5))
	require.NoError(t, err)

	pts, err := geom.IntersectCircles(c1, c2)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	for _, p := range pts {
		require.True(t, geom.Dist(p, geom.NewPoint(r(0), r(0))).Equals(r(5)))
		require.True(t, geom.Dist(p, geom.NewPoint(r(8), r(0))).Equals(r(5)))
	}
}

func TestIntersectCirclesCoincidentIsDegenerate(t *testing.T) {
	c1, err := geom.NewCircleWithRadius(geom.NewPoint(r(1), r(1)), r(3))
	require.NoError(t, err)
	c2, err := geom.NewCircleWithRadius(geom.NewPoint(r(1), r(1)), r(3))
	require.NoError(t, err)

	_, err = geom.IntersectCircles(c1, c2)
	require.ErrorIs(t, err, kerr.ErrDegenerateCircle)
}

func TestIntersectCirclesSeparateNoIntersection(t *testing.T) {
	c1, err := geom.NewCircleWithRadius(geom.NewPoint(r(0), r(0)), r(1))
	require.NoError(t, err)
	c2, err := geom.NewCircleWithRadius(geom.NewPoint(r(100), r(0)), r(1))
	require.NoError(t, err)

	pts, err := geom.IntersectCircles(c1, c2)
	require.NoError(t, err)
	require.Nil(t, pts)
}

func TestDistPythagorean(t *testing.T) {
	p1 := geom.NewPoint(r(0), r(0))
	p2 := geom.NewPoint(r(3), r(4))
	require.True(t, geom.Dist(p1, p2).Equals(r(5)))
}
