// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"casnum/algebra"
	"casnum/kerr"
)

func TestAddSubNeg(t *testing.T) {
	a := algebra.FromInt(7)
	b := algebra.FromInt(5)
	require.True(t, a.Add(b).Equals(algebra.FromInt(12)))
	require.True(t, a.Sub(b).Equals(algebra.FromInt(2)))
	require.True(t, a.Neg().Equals(algebra.FromInt(-7)))
}

func TestMulSignAndZero(t *testing.T) {
	a := algebra.FromInt(-3)
	b := algebra.FromInt(4)
	require.True(t, a.Mul(b).Equals(algebra.FromInt(-12)))
	require.True(t, a.Mul(a).Equals(algebra.FromInt(9)))
	require.True(t, a.Mul(algebra.Zero()).IsZero())
}

func TestDivExactAndByZero(t *testing.T) {
	a := algebra.FromInt(12)
	b := algebra.FromInt(4)
	q, err := a.Div(b)
	require.NoError(t, err)
	require.True(t, q.Equals(algebra.FromInt(3)))

	_, err = a.Div(algebra.Zero())
	require.ErrorIs(t, err, kerr.ErrDivByZero)
}

func TestSqrtPerfectSquare(t *testing.T) {
	s, err := algebra.FromInt(25).Sqrt()
	require.NoError(t, err)
	require.True(t, s.Equals(algebra.FromInt(5)))
	require.True(t, s.IsRational())
}

func TestSqrtDenestsToRational(t *testing.T) {
	// sqrt(2) * sqrt(2) must collapse to the rational 2, not stay nested.
	two := algebra.FromInt(2)
	s, err := two.Sqrt()
	require.NoError(t, err)
	require.False(t, s.IsRational())
	prod := s.Mul(s)
	require.True(t, prod.Equals(two))
	require.True(t, prod.IsRational())
}

func TestSqrtNegativeErrors(t *testing.T) {
	_, err := algebra.FromInt(-1).Sqrt()
	require.ErrorIs(t, err, kerr.ErrNegRoot)
}

func TestSqrtOfRationalSquare(t *testing.T) {
	r := algebra.FromRat(big.NewRat(9, 4))
	s, err := r.Sqrt()
	require.NoError(t, err)
	require.True(t, s.Equals(algebra.FromRat(big.NewRat(3, 2))))
}

func TestLessThanAndOrdering(t *testing.T) {
	a := algebra.FromInt(3)
	b := algebra.FromInt(5)
	require.True(t, a.LessThan(b))
	require.False(t, b.LessThan(a))
	require.False(t, a.LessThan(a))
}

func TestIrrationalOrdering(t *testing.T) {
	sqrt2, err := algebra.FromInt(2).Sqrt()
	require.NoError(t, err)
	sqrt3, err := algebra.FromInt(3).Sqrt()
	require.NoError(t, err)
	require.True(t, sqrt2.LessThan(sqrt3))
	require.False(t, sqrt3.LessThan(sqrt2))
}

func TestDivRationalizesSingleRadicalDenominator(t *testing.T) {
	one := algebra.One()
	sqrt2, err := algebra.FromInt(2).Sqrt()
	require.NoError(t, err)
	q, err := one.Div(sqrt2)
	require.NoError(t, err)
	// 1/sqrt(2) * sqrt(2) == 1
	require.True(t, q.Mul(sqrt2).Equals(one))
}

func TestNestedRadicalDenesting(t *testing.T) {
	// sqrt(3 + 2*sqrt(2)) == 1 + sqrt(2), the textbook denesting example.
	sqrt2, err := algebra.FromInt(2).Sqrt()
	require.NoError(t, err)
	inner := algebra.FromInt(3).Add(algebra.FromInt(2).Mul(sqrt2))
	got, err := inner.Sqrt()
	require.NoError(t, err)
	want := algebra.One().Add(sqrt2)
	require.True(t, got.Equals(want))
}

func TestApproxMatchesRationalValue(t *testing.T) {
	r := algebra.FromRat(big.NewRat(22, 7))
	f := r.Approx(64)
	want, _ := new(big.Float).SetPrec(64).SetString("3.142857142857142857")
	diff := new(big.Float).Sub(f, want)
	diff.Abs(diff)
	threshold := new(big.Float).SetPrec(64).SetFloat64(1e-9)
	require.True(t, diff.Cmp(threshold) < 0)
}
