// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom is the symbolic geometric kernel: Point, Line, and Circle
// over algebra.Real coordinates, and the three intersection routines
// (line/line, circle/line, circle/circle) every higher-level construction
// in casnum/construct and the arithmetic layer reduces to. Coordinates are
// exact; no intersection is ever computed in floating point.
package geom

import (
	"fmt"

	"casnum/algebra"
	"casnum/viewer"
)

// gen is the viewer generation counter shared with the sink; Clear bumps it
// so stale commands queued before a reset are dropped by the sink (§6).
var (
	sink viewer.Sink = viewer.Noop{}
	gen  uint64
)

// SetSink installs the viewer command sink. Passing nil installs a no-op
// sink. Construction never blocks on the sink regardless of what is
// installed; callers needing a bounded, drop-policy-aware sink should pass
// a *viewer.Queue.
func SetSink(s viewer.Sink) {
	if s == nil {
		s = viewer.Noop{}
	}
	sink = s
}

// Clear bumps the generation counter and tells the sink to reset its scene.
func Clear() {
	gen++
	sink.Enqueue(viewer.Command{Tag: viewer.TagClear, Gen: gen})
}

// Close tells the sink to terminate.
func Close() {
	sink.Enqueue(viewer.Command{Tag: viewer.TagClose, Gen: gen})
}

// Point is a point in the plane with exact algebraic coordinates, or the
// conventional point at infinity produced by intersecting parallel lines.
type Point struct {
	X, Y algebra.Real
	inf  bool
}

// NewPoint constructs a point, mirroring it to the viewer sink.
func NewPoint(x, y algebra.Real) Point {
	p := Point{X: x, Y: y}
	fx, _ := x.Approx(64).Float64()
	fy, _ := y.Approx(64).Float64()
	sink.Enqueue(viewer.Command{Tag: viewer.TagPoint, Gen: gen, X: fx, Y: fy})
	return p
}

// Infinity returns the conventional point at infinity (∞, ∞), produced only
// by intersecting two parallel lines.
func Infinity() Point { return Point{inf: true} }

// IsAtInfinity reports whether p is the point at infinity.
func (p Point) IsAtInfinity() bool { return p.inf }

// Equals is coordinate-wise algebra.Real equality; two points at infinity
// are always equal to each other and to nothing else.
func (p Point) Equals(other Point) bool {
	if p.inf || other.inf {
		return p.inf && other.inf
	}
	return p.X.Equals(other.X) && p.Y.Equals(other.Y)
}

func (p Point) String() string {
	if p.inf {
		return "(inf, inf)"
	}
	return fmt.Sprintf("(%s, %s)", p.X.String(), p.Y.String())
}

// Dist returns the Euclidean distance between two (finite) points. The
// radicand is a sum of two squares and can never be negative, so a Sqrt
// error here means the algebra substrate violated its own invariant.
func Dist(p1, p2 Point) algebra.Real {
	dx := p1.X.Sub(p2.X)
	dy := p1.Y.Sub(p2.Y)
	sq := dx.Mul(dx).Add(dy.Mul(dy))
	d, err := sq.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("casnum: geom: Dist: sum of squares was negative: %v", err))
	}
	return d
}

// AbsReal returns |r|.
func AbsReal(r algebra.Real) algebra.Real {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}
