// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"casnum/algebra"
	"casnum/kerr"
	"casnum/viewer"
)

// Circle is a center point and a strictly positive radius, stored as the
// radius itself rather than the implicit (x-h)²+(y-k)²=r² form.
type Circle struct {
	Center Point
	Radius algebra.Real
}

// NewCircle builds the circle centered at center passing through onEdge. It
// returns kerr.ErrDegenerateCircle if the two points coincide.
func NewCircle(center, onEdge Point) (Circle, error) {
	if center.IsAtInfinity() || onEdge.IsAtInfinity() {
		return Circle{}, kerr.ErrDegenerateCircle
	}
	r := Dist(center, onEdge)
	if r.IsZero() {
		return Circle{}, kerr.ErrDegenerateCircle
	}
	c := Circle{Center: center, Radius: r}
	sink.Enqueue(viewer.Command{
		Tag: viewer.TagCircle, Gen: gen,
		CX: toF64(center.X), CY: toF64(center.Y), R: toF64(r),
	})
	return c, nil
}

// NewCircleWithRadius builds the circle centered at center with the given
// radius. It returns kerr.ErrDegenerateCircle if radius is not strictly
// positive.
func NewCircleWithRadius(center Point, radius algebra.Real) (Circle, error) {
	if center.IsAtInfinity() || radius.Sign() <= 0 {
		return Circle{}, kerr.ErrDegenerateCircle
	}
	c := Circle{Center: center, Radius: radius}
	sink.Enqueue(viewer.Command{
		Tag: viewer.TagCircle, Gen: gen,
		CX: toF64(center.X), CY: toF64(center.Y), R: toF64(radius),
	})
	return c, nil
}

// Equals reports whether two circles have the same center and radius.
func (c Circle) Equals(other Circle) bool {
	return c.Center.Equals(other.Center) && c.Radius.Equals(other.Radius)
}

// Contains reports whether p lies exactly on the circle's circumference.
func (c Circle) Contains(p Point) bool {
	if p.IsAtInfinity() {
		return false
	}
	return Dist(c.Center, p).Equals(c.Radius)
}
