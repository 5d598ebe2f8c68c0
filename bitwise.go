// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package casnum

import (
	"casnum/construct"
	"casnum/kerr"
)

// Rshift returns a >> i: i repetitions of halving on the axis, each step
// rounding down by subtracting one first when a is odd. Assumes a is an
// integer-valued CasNum.
func (a CasNum) Rshift(i int) (CasNum, error) {
	cur := a
	for n := 0; n < i; n++ {
		rem, err := cur.Mod(Two)
		if err != nil {
			return CasNum{}, err
		}
		if !rem.Equal(Zero) {
			cur, err = cur.Sub(One)
			if err != nil {
				return CasNum{}, err
			}
		}
		p, err := construct.HalfPointOnXAxis(Origin, cur.P)
		if err != nil {
			return CasNum{}, err
		}
		cur = CasNum{P: p}
	}
	return cur, nil
}

// Lshift returns a << i: i repeated doublings.
func (a CasNum) Lshift(i int) (CasNum, error) {
	cur := a
	for n := 0; n < i; n++ {
		var err error
		cur, err = cur.Mul2()
		if err != nil {
			return CasNum{}, err
		}
	}
	return cur, nil
}

// GetN builds the CasNum denoting n by walking n's binary expansion and
// accumulating doublings of Unit: O(log n) constructions where FromNum's
// unit walk takes O(n). The binary expansion of the host integer is taken
// as given rather than itself derived by construction.
func GetN(n int64) CasNum {
	return memoInt(getNMemo, n, func() CasNum {
		invert := n < 0
		v := n
		if invert {
			v = -v
		}
		ret := Zero
		cur := One
		for v > 0 {
			if v&1 == 1 {
				var err error
				ret, err = ret.Add(cur)
				if err != nil {
					panic("casnum: GetN: " + err.Error())
				}
			}
			var err error
			cur, err = cur.Mul2()
			if err != nil {
				panic("casnum: GetN: " + err.Error())
			}
			v >>= 1
		}
		if invert {
			var err error
			ret, err = ret.Neg()
			if err != nil {
				panic("casnum: GetN: " + err.Error())
			}
		}
		return ret
	})
}

// XorPositive returns a^b for non-negative a, b, accumulating bit-by-bit:
// each step peels off the low bit of both operands via Mod(Two), compares
// them, and folds the result into the running power-of-two total. The XOR
// bit contributes exactly when the two low bits sum to one.
func XorPositive(a, b CasNum) (CasNum, error) {
	if a.LessThan(Zero) || b.LessThan(Zero) {
		return CasNum{}, kerr.ErrNegativeBitop
	}
	result := Zero
	powerOf2 := One
	aTemp, bTemp := a, b
	for aTemp.GreaterThan(Zero) || bTemp.GreaterThan(Zero) {
		bitA, err := aTemp.Mod(Two)
		if err != nil {
			return CasNum{}, err
		}
		bitB, err := bTemp.Mod(Two)
		if err != nil {
			return CasNum{}, err
		}
		xorBit, err := bitA.Add(bitB)
		if err != nil {
			return CasNum{}, err
		}
		if xorBit.Equal(One) {
			result, err = result.Add(powerOf2)
			if err != nil {
				return CasNum{}, err
			}
		}
		aTemp, err = aTemp.Rshift(1)
		if err != nil {
			return CasNum{}, err
		}
		bTemp, err = bTemp.Rshift(1)
		if err != nil {
			return CasNum{}, err
		}
		powerOf2, err = powerOf2.Mul2()
		if err != nil {
			return CasNum{}, err
		}
	}
	return result, nil
}

// Xor returns a^b for any sign of operand, translating negative operands
// into the positive domain by adding a sufficiently large power of two
// before delegating to XorPositive, then translating the result back when
// exactly one operand was negative. This width-by-magnitude convention is
// not two's complement; see the package tests for its exact outputs.
func (a CasNum) Xor(b CasNum) (CasNum, error) {
	if a.GreaterOrEqual(Zero) && b.GreaterOrEqual(Zero) {
		return XorPositive(a, b)
	}
	absA, err := a.Abs()
	if err != nil {
		return CasNum{}, err
	}
	absB, err := b.Abs()
	if err != nil {
		return CasNum{}, err
	}
	twosNA, err := DoubleUntilGt(absA, One, true)
	if err != nil {
		return CasNum{}, err
	}
	twosNB, err := DoubleUntilGt(absB, One, true)
	if err != nil {
		return CasNum{}, err
	}
	twosN := twosNA
	if twosNB.GreaterOrEqual(twosNA) {
		twosN = twosNB
	}
	transform := Zero
	cpyA, cpyB := a, b
	if a.LessThan(Zero) {
		transform, err = transform.Add(One)
		if err != nil {
			return CasNum{}, err
		}
		cpyA, err = a.Add(twosN)
		if err != nil {
			return CasNum{}, err
		}
	}
	if b.LessThan(Zero) {
		transform, err = transform.Add(One)
		if err != nil {
			return CasNum{}, err
		}
		cpyB, err = b.Add(twosN)
		if err != nil {
			return CasNum{}, err
		}
	}
	xorVal, err := XorPositive(cpyA, cpyB)
	if err != nil {
		return CasNum{}, err
	}
	if transform.Equal(One) {
		return xorVal.Sub(twosN)
	}
	return xorVal, nil
}

// AndPositive returns a&b for non-negative a, b: the AND bit contributes
// exactly when the two low bits sum to two.
func AndPositive(a, b CasNum) (CasNum, error) {
	if a.LessThan(Zero) || b.LessThan(Zero) {
		return CasNum{}, kerr.ErrNegativeBitop
	}
	result := Zero
	powerOf2 := One
	aTemp, bTemp := a, b
	for aTemp.GreaterThan(Zero) || bTemp.GreaterThan(Zero) {
		bitA, err := aTemp.Mod(Two)
		if err != nil {
			return CasNum{}, err
		}
		bitB, err := bTemp.Mod(Two)
		if err != nil {
			return CasNum{}, err
		}
		andBit, err := bitA.Add(bitB)
		if err != nil {
			return CasNum{}, err
		}
		if andBit.Equal(Two) {
			result, err = result.Add(powerOf2)
			if err != nil {
				return CasNum{}, err
			}
		}
		aTemp, err = aTemp.Rshift(1)
		if err != nil {
			return CasNum{}, err
		}
		bTemp, err = bTemp.Rshift(1)
		if err != nil {
			return CasNum{}, err
		}
		powerOf2, err = powerOf2.Mul2()
		if err != nil {
			return CasNum{}, err
		}
	}
	return result, nil
}

// And returns a&b for any sign of operand, under the same
// translate-by-2^k convention as Xor. Note the untranslate condition here
// is transform > one — both operands negative — rather than == one as in
// Xor or >= one as in Or; the three operators genuinely differ in when the
// offset must be removed.
func (a CasNum) And(b CasNum) (CasNum, error) {
	if a.GreaterOrEqual(Zero) && b.GreaterOrEqual(Zero) {
		return AndPositive(a, b)
	}
	absA, err := a.Abs()
	if err != nil {
		return CasNum{}, err
	}
	absB, err := b.Abs()
	if err != nil {
		return CasNum{}, err
	}
	twosNA, err := DoubleUntilGt(absA, One, true)
	if err != nil {
		return CasNum{}, err
	}
	twosNB, err := DoubleUntilGt(absB, One, true)
	if err != nil {
		return CasNum{}, err
	}
	twosN := twosNA
	if twosNB.GreaterOrEqual(twosNA) {
		twosN = twosNB
	}
	transform := Zero
	cpyA, cpyB := a, b
	if a.LessThan(Zero) {
		transform, err = transform.Add(One)
		if err != nil {
			return CasNum{}, err
		}
		cpyA, err = a.Add(twosN)
		if err != nil {
			return CasNum{}, err
		}
	}
	if b.LessThan(Zero) {
		transform, err = transform.Add(One)
		if err != nil {
			return CasNum{}, err
		}
		cpyB, err = b.Add(twosN)
		if err != nil {
			return CasNum{}, err
		}
	}
	andVal, err := AndPositive(cpyA, cpyB)
	if err != nil {
		return CasNum{}, err
	}
	if transform.GreaterThan(One) {
		return andVal.Sub(twosN)
	}
	return andVal, nil
}

// GetNthBit returns the n-th bit (0-indexed, from the low end) of a
// non-negative a.
func (a CasNum) GetNthBit(n int) (CasNum, error) {
	if a.LessThan(Zero) || n < 0 {
		return CasNum{}, kerr.ErrNegativeBitop
	}
	temp, err := a.Rshift(n)
	if err != nil {
		return CasNum{}, err
	}
	return temp.Mod(Two)
}

// OrPositive returns a|b for non-negative a, b: the OR bit contributes
// whenever the two low bits sum to at least one.
func OrPositive(a, b CasNum) (CasNum, error) {
	if a.LessThan(Zero) || b.LessThan(Zero) {
		return CasNum{}, kerr.ErrNegativeBitop
	}
	result := Zero
	powerOf2 := One
	aTemp, bTemp := a, b
	for aTemp.GreaterThan(Zero) || bTemp.GreaterThan(Zero) {
		bitA, err := aTemp.Mod(Two)
		if err != nil {
			return CasNum{}, err
		}
		bitB, err := bTemp.Mod(Two)
		if err != nil {
			return CasNum{}, err
		}
		orBit, err := bitA.Add(bitB)
		if err != nil {
			return CasNum{}, err
		}
		if orBit.GreaterOrEqual(One) {
			result, err = result.Add(powerOf2)
			if err != nil {
				return CasNum{}, err
			}
		}
		aTemp, err = aTemp.Rshift(1)
		if err != nil {
			return CasNum{}, err
		}
		bTemp, err = bTemp.Rshift(1)
		if err != nil {
			return CasNum{}, err
		}
		powerOf2, err = powerOf2.Mul2()
		if err != nil {
			return CasNum{}, err
		}
	}
	return result, nil
}

// Or returns a|b for any sign of operand, under the same translate-by-2^k
// convention as Xor.
func (a CasNum) Or(b CasNum) (CasNum, error) {
	if a.GreaterOrEqual(Zero) && b.GreaterOrEqual(Zero) {
		return OrPositive(a, b)
	}
	absA, err := a.Abs()
	if err != nil {
		return CasNum{}, err
	}
	absB, err := b.Abs()
	if err != nil {
		return CasNum{}, err
	}
	twosNA, err := DoubleUntilGt(absA, One, true)
	if err != nil {
		return CasNum{}, err
	}
	twosNB, err := DoubleUntilGt(absB, One, true)
	if err != nil {
		return CasNum{}, err
	}
	twosN := twosNA
	if twosNB.GreaterOrEqual(twosNA) {
		twosN = twosNB
	}
	transform := Zero
	cpyA, cpyB := a, b
	if a.LessThan(Zero) {
		transform, err = transform.Add(One)
		if err != nil {
			return CasNum{}, err
		}
		cpyA, err = a.Add(twosN)
		if err != nil {
			return CasNum{}, err
		}
	}
	if b.LessThan(Zero) {
		transform, err = transform.Add(One)
		if err != nil {
			return CasNum{}, err
		}
		cpyB, err = b.Add(twosN)
		if err != nil {
			return CasNum{}, err
		}
	}
	orVal, err := OrPositive(cpyA, cpyB)
	if err != nil {
		return CasNum{}, err
	}
	if transform.GreaterOrEqual(One) {
		return orVal.Sub(twosN)
	}
	return orVal, nil
}
