// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package casnum implements integer arithmetic as straightedge-and-compass
// construction: every CasNum wraps a geom.Point that always ends up back on
// the x-axis, and +, -, ×, ÷, mod, shift, bitwise, gcd, modular inverse,
// modular exponentiation, square root and primality testing are all
// geometric constructions over that point rather than numeric computation.
// Fallible operations return errors from casnum/kerr. Add, Sub, Neg, Mul2,
// Mul, TrueDiv, Mod, FloorDiv, Pow, Gcd, InvMod, PowMod, DoubleUntilGt,
// GetN and FromNum are memoized for the life of the process (see memo.go)
// since construction cost dominates everything else; the shifts, the
// bitwise operators, Abs, Sqrt and IsPrime are not memoized.
package casnum

import (
	"math/big"

	"casnum/algebra"
	"casnum/construct"
	"casnum/geom"
)

// CasNum is an integer represented as a point on the plane. Two CasNums
// denote the same integer exactly when their points are Equal.
type CasNum struct {
	P geom.Point
}

var (
	// Origin and Unit are the two points every construction in this package
	// ultimately measures against.
	Origin geom.Point
	Unit   geom.Point
	// XAxis is the line through Origin and Unit; YAxis is its perpendicular
	// through Origin, itself built by compass-and-straightedge rather than
	// assumed.
	XAxis geom.Line
	YAxis geom.Line

	// Zero, One and Two are the CasNum constants every operation below is
	// defined in terms of.
	Zero CasNum
	One  CasNum
	Two  CasNum
)

func init() {
	Origin = geom.NewPoint(zeroReal(), zeroReal())
	Unit = geom.NewPoint(oneReal(), zeroReal())
	var err error
	XAxis, err = geom.NewLine(Origin, Unit)
	if err != nil {
		panic("casnum: init: origin and unit coincide")
	}
	YAxis, err = construct.PerpendicularThroughPoint(Origin, XAxis)
	if err != nil {
		panic("casnum: init: could not construct y-axis: " + err.Error())
	}
	Zero = CasNum{P: Origin}
	One = CasNum{P: Unit}
	Two, err = One.Add(One)
	if err != nil {
		panic("casnum: init: could not construct Two: " + err.Error())
	}
}

// FromNum builds the CasNum for n the slow, literal way: n chained
// circle-intersection steps along the x-axis (construct.GenerateN), one per
// unit. GetN's binary construction is the fast sibling; FromNum exists
// because the walk itself is a meaningful construction. Non-positive n
// yields Zero.
func FromNum(n int64) CasNum {
	return memoInt(fromNumMemo, n, func() CasNum {
		if n <= 0 {
			return CasNum{P: Origin}
		}
		p, err := construct.GenerateN(int(n), Origin, Unit)
		if err != nil {
			panic("casnum: FromNum: " + err.Error())
		}
		return CasNum{P: p}
	})
}

// Num returns a's value as its exact x-coordinate.
func (a CasNum) Num() algebra.Real { return a.P.X }

// ToInt returns a's value as an int64, truncating a non-integral rational
// coordinate toward zero. ok is false when the coordinate is irrational or
// does not fit in an int64.
func (a CasNum) ToInt() (int64, bool) {
	rat, ok := a.P.X.RatValue()
	if !ok {
		return 0, false
	}
	q := new(big.Int).Quo(rat.Num(), rat.Denom())
	if !q.IsInt64() {
		return 0, false
	}
	return q.Int64(), true
}

// Equal reports whether a and b denote the same integer.
func (a CasNum) Equal(b CasNum) bool { return a.P.Equals(b.P) }

// GreaterThan reports whether a > b, compared along the x-axis.
func (a CasNum) GreaterThan(b CasNum) bool { return b.P.X.LessThan(a.P.X) }

// LessThan reports whether a < b.
func (a CasNum) LessThan(b CasNum) bool { return a.P.X.LessThan(b.P.X) }

// GreaterOrEqual reports whether a >= b.
func (a CasNum) GreaterOrEqual(b CasNum) bool { return a.GreaterThan(b) || a.Equal(b) }

// LessOrEqual reports whether a <= b.
func (a CasNum) LessOrEqual(b CasNum) bool { return b.GreaterOrEqual(a) }

// Sign returns -1, 0, or 1 according to whether a is negative, zero, or
// positive.
func (a CasNum) Sign() int {
	switch {
	case a.Equal(Zero):
		return 0
	case a.GreaterThan(Zero):
		return 1
	default:
		return -1
	}
}

func (a CasNum) String() string { return a.P.X.String() }
