// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import "math/big"

// floatSqrt computes the square root of a non-negative x at x's own
// precision using Newton's method: each step computes z = z - (z²-x)/2z,
// starting from z with x's exponent halved, and stops once the update no
// longer changes z at the working precision.
func floatSqrt(x *big.Float) *big.Float {
	prec := x.Prec()
	if prec == 0 {
		prec = TiePrecision
	}
	if x.Sign() <= 0 {
		return new(big.Float).SetPrec(prec)
	}

	two := new(big.Float).SetPrec(prec).SetInt64(2)
	z := new(big.Float).SetPrec(prec)
	mant := new(big.Float).SetPrec(prec)
	exp := x.MantExp(mant)
	z.SetMantExp(mant, exp/2)
	if z.Sign() <= 0 {
		z.SetPrec(prec).SetInt64(1)
	}

	zSquared := new(big.Float).SetPrec(prec)
	num := new(big.Float).SetPrec(prec)
	den := new(big.Float).SetPrec(prec)
	prev := new(big.Float).SetPrec(prec)

	// A handful of Newton steps more than double the correct digits each
	// time; prec/2+4 iterations comfortably exceeds what's needed for any
	// precision this package asks for, and the early-exit on no-change
	// means well-behaved inputs converge in far fewer.
	maxIter := int(prec)/2 + 4
	for i := 0; i < maxIter; i++ {
		prev.Copy(z)
		zSquared.Mul(z, z)
		num.Sub(zSquared, x)
		den.Mul(two, z)
		num.Quo(num, den)
		z.Sub(z, num)
		if z.Cmp(prev) == 0 {
			break
		}
	}
	return z
}
