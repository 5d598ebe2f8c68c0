// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import "math/big"

// trialDivisionBound caps the square-free reduction's trial division. Every
// radicand the kernel actually produces comes from sums and products of
// small construction inputs, so this bound is generous in practice; an
// integer with a large square factor beyond it is returned un-reduced
// rather than mis-simplified. Equals stays sound either way (two
// under-reduced radicands still compare equal structurally if produced the
// same way), it just occasionally misses collapsing an opaque term to a
// plain one.
const trialDivisionBound = 100000

// extractSquareFactor returns (k, squarefree) such that n = k²·squarefree,
// for n >= 0, by trial division up to trialDivisionBound.
func extractSquareFactor(n *big.Int) (*big.Int, *big.Int) {
	if n.Sign() == 0 {
		return big.NewInt(0), big.NewInt(1)
	}
	k := big.NewInt(1)
	rem := new(big.Int).Set(n)
	d := big.NewInt(2)
	bound := big.NewInt(trialDivisionBound)
	for d.Cmp(bound) <= 0 {
		dSquared := new(big.Int).Mul(d, d)
		if dSquared.Cmp(rem) > 0 {
			break
		}
		exp := 0
		for {
			q, r := new(big.Int), new(big.Int)
			q.DivMod(rem, d, r)
			if r.Sign() != 0 {
				break
			}
			rem = q
			exp++
		}
		if exp > 0 {
			pairs := exp / 2
			if pairs > 0 {
				k.Mul(k, new(big.Int).Exp(d, big.NewInt(int64(pairs)), nil))
			}
			if exp%2 == 1 {
				rem.Mul(rem, d)
			}
		}
		d.Add(d, bigIntOne)
	}
	return k, rem
}

var bigIntOne = big.NewInt(1)

// squarefreeReduceRat returns (coeff, squarefree) such that
// √r = coeff · √squarefree, for r a non-negative rational, with squarefree
// either 1 (r is a perfect square, coeff is its exact root) or a square-free
// rational greater than 1.
func squarefreeReduceRat(r *big.Rat) (*big.Rat, *big.Rat) {
	if r.Sign() == 0 {
		return new(big.Rat), big.NewRat(1, 1)
	}
	numK, numSF := extractSquareFactor(r.Num())
	denK, denSF := extractSquareFactor(r.Denom())
	product := new(big.Int).Mul(numSF, denSF)
	productK, productSF := extractSquareFactor(product)

	coeffNum := new(big.Int).Mul(numK, productK)
	coeffDen := new(big.Int).Mul(denK, denSF)
	coeff := new(big.Rat).SetFrac(coeffNum, coeffDen)
	sf := new(big.Rat).SetInt(productSF)
	return coeff, sf
}
