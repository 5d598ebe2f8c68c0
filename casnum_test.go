// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package casnum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"casnum"
)

func n(v int64) casnum.CasNum { return casnum.GetN(v) }

type pair struct{ x, y int64 }

func TestAddSub(t *testing.T) {
	tests := []pair{
		{5, 3}, {-5, 3}, {5, -3}, {-5, -3}, {0, 7}, {7, 0}, {0, 0}, {12, 12},
	}
	for _, tc := range tests {
		sum, err := n(tc.x).Add(n(tc.y))
		require.NoError(t, err)
		require.True(t, sum.Equal(n(tc.x+tc.y)), "%d+%d", tc.x, tc.y)

		diff, err := n(tc.x).Sub(n(tc.y))
		require.NoError(t, err)
		require.True(t, diff.Equal(n(tc.x-tc.y)), "%d-%d", tc.x, tc.y)
	}
}

func TestMulTrueDiv(t *testing.T) {
	tests := []pair{
		{6, 3}, {-6, 3}, {6, -3}, {-6, -3}, {0, 4}, {10, 1}, {1, 10},
	}
	for _, tc := range tests {
		prod, err := n(tc.x).Mul(n(tc.y))
		require.NoError(t, err)
		require.True(t, prod.Equal(n(tc.x*tc.y)), "%d*%d", tc.x, tc.y)
	}

	q, err := n(12).TrueDiv(n(4))
	require.NoError(t, err)
	require.True(t, q.Equal(n(3)))

	_, err = n(1).TrueDiv(n(0))
	require.Error(t, err)
}

// quoRemTests mirrors quorem_test.go's sign coverage: every combination of
// signs for two magnitude pairs, checked against the floor-division and
// floor-mod (remainder takes the divisor's sign) identities simultaneously.
var quoRemTests = []pair{
	{5, 3}, {-5, 3}, {5, -3}, {-5, -3},
	{5, 5}, {-5, 5}, {5, -5}, {-5, -5},
}

func TestFloorDivModIdentity(t *testing.T) {
	for _, tc := range quoRemTests {
		x, y := n(tc.x), n(tc.y)
		quo, err := x.FloorDiv(y)
		require.NoError(t, err)
		rem, err := x.Mod(y)
		require.NoError(t, err)

		// x == quo*y + rem
		qy, err := quo.Mul(y)
		require.NoError(t, err)
		reconstructed, err := qy.Add(rem)
		require.NoError(t, err)
		require.True(t, reconstructed.Equal(x), "%d = (%d//%d)*%d + (%d mod %d)", tc.x, tc.x, tc.y, tc.y, tc.x, tc.y)

		// rem has the same sign as y (or is zero).
		if !rem.Equal(casnum.Zero) {
			require.Equal(t, y.Sign(), rem.Sign(), "sign(rem) should match sign(y) for %v", tc)
		}
	}

	_, err := n(5).Mod(n(0))
	require.Error(t, err)
}

func TestPowAndPowMod(t *testing.T) {
	r, err := n(2).Pow(n(10))
	require.NoError(t, err)
	require.True(t, r.Equal(n(1024)))

	_, err = n(2).Pow(n(-1))
	require.Error(t, err)

	pm, err := casnum.PowMod(n(7), n(128), n(13))
	require.NoError(t, err)
	require.True(t, pm.Equal(n(3))) // 7**128 mod 13 == 3
}

func TestGcdInvMod(t *testing.T) {
	g, err := casnum.Gcd(n(48), n(18))
	require.NoError(t, err)
	require.True(t, g.Equal(n(6)))

	inv, err := casnum.InvMod(n(3), n(11))
	require.NoError(t, err)
	require.True(t, inv.Equal(n(4))) // 3*4 = 12 == 1 mod 11

	_, err = casnum.InvMod(n(2), n(4))
	require.Error(t, err) // gcd(2,4) != 1
}

func TestSqrtAndIsPrime(t *testing.T) {
	r, err := n(144).Sqrt()
	require.NoError(t, err)
	require.True(t, r.Equal(n(12)))

	_, err = n(-1).Sqrt()
	require.Error(t, err)

	primes := []int64{2, 3, 5, 7, 11, 13, 97}
	for _, p := range primes {
		ok, err := n(p).IsPrime()
		require.NoError(t, err)
		require.True(t, ok, "%d should be prime", p)
	}
	composites := []int64{1, 4, 6, 8, 9, 100}
	for _, c := range composites {
		ok, err := n(c).IsPrime()
		require.NoError(t, err)
		require.False(t, ok, "%d should not be prime", c)
	}
}

func TestShiftsAndBitwise(t *testing.T) {
	r, err := n(5).Lshift(2)
	require.NoError(t, err)
	require.True(t, r.Equal(n(20)))

	r, err = n(20).Rshift(2)
	require.NoError(t, err)
	require.True(t, r.Equal(n(5)))

	x, err := n(6).Xor(n(3))
	require.NoError(t, err)
	require.True(t, x.Equal(n(5)))

	a, err := n(6).And(n(3))
	require.NoError(t, err)
	require.True(t, a.Equal(n(2)))

	o, err := n(6).Or(n(3))
	require.NoError(t, err)
	require.True(t, o.Equal(n(7)))
}

// TestBitwiseNegativeOperands exercises the signed convention documented in
// bitwise.go (translate by a power of two large enough to cover both
// operands, bitwise-combine in the positive domain, then translate back),
// including the And case where the `transform > one` condition — rather
// than `== one`/`>= one` as in Xor/Or — actually fires (both operands
// negative). Expected values are hand-computed by walking the same
// translate/combine/untranslate steps bitwise.go performs, not by assuming
// two's-complement semantics.
func TestBitwiseNegativeOperands(t *testing.T) {
	x, err := n(-6).Xor(n(3))
	require.NoError(t, err)
	require.True(t, x.Equal(n(-7)), "-6^3")

	a, err := n(-6).And(n(3))
	require.NoError(t, err)
	require.True(t, a.Equal(n(2)), "-6&3")

	o, err := n(-6).Or(n(3))
	require.NoError(t, err)
	require.True(t, o.Equal(n(-5)), "-6|3")

	a2, err := n(-6).And(n(-3))
	require.NoError(t, err)
	require.True(t, a2.Equal(n(-8)), "-6&-3")
}

func TestFromNumMatchesGetN(t *testing.T) {
	for _, v := range []int64{0, 1, 2, 7, 13} {
		require.True(t, casnum.FromNum(v).Equal(n(v)), "from_num(%d)", v)
	}
	// FromNum clamps non-positive inputs to zero.
	require.True(t, casnum.FromNum(-5).Equal(casnum.Zero))
}

func TestToInt(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -17} {
		got, ok := n(v).ToInt()
		require.True(t, ok)
		require.Equal(t, v, got)
	}
	sqrt2, err := n(2).Sqrt()
	require.NoError(t, err)
	_, ok := sqrt2.ToInt()
	require.False(t, ok)
}

func TestGetNthBit(t *testing.T) {
	// 13 = 0b1101.
	want := []int64{1, 0, 1, 1, 0}
	for i, bit := range want {
		got, err := n(13).GetNthBit(i)
		require.NoError(t, err)
		require.True(t, got.Equal(n(bit)), "bit %d of 13", i)
	}
	_, err := n(-1).GetNthBit(0)
	require.Error(t, err)
}

func TestGetPrimeWithinRange(t *testing.T) {
	p, err := casnum.GetPrime(n(10), n(50))
	require.NoError(t, err)
	require.True(t, p.GreaterOrEqual(n(10)))
	require.True(t, p.LessOrEqual(n(50)))
	ok, err := p.IsPrime()
	require.NoError(t, err)
	require.True(t, ok)
}
