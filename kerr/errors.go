// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kerr defines the sentinel error set produced by the casnum
// geometric kernel and arithmetic layer. Every fallible operation returns
// one of these values (optionally wrapped with additional context via
// fmt.Errorf("...: %w", ...)); callers match with errors.Is.
package kerr

import "errors"

// NOTE ON NAMING & PREFIXING
// All messages are prefixed "casnum: " for consistent grepping across call
// sites. Wrap with fmt.Errorf("%w: detail", ErrX) for context; do not lose
// the sentinel, callers rely on errors.Is.

var (
	// ErrDivByZero is returned by Div, Mod, FloorDiv, and InvMod when the
	// divisor is zero.
	ErrDivByZero = errors.New("casnum: division by zero")

	// ErrNegativeExponent is returned by Pow when the exponent is negative.
	ErrNegativeExponent = errors.New("casnum: negative exponent")

	// ErrNonIntegerExponent is returned by Pow when the exponent is not an
	// integer-valued CasNum.
	ErrNonIntegerExponent = errors.New("casnum: non-integer exponent")

	// ErrNegRoot is returned by Sqrt (both algebra.Real.Sqrt and
	// CasNum.Sqrt) when the radicand is negative.
	ErrNegRoot = errors.New("casnum: square root of negative value")

	// ErrDegenerateLine is returned by geom.NewLine when the two defining
	// points coincide.
	ErrDegenerateLine = errors.New("casnum: line requires two distinct points")

	// ErrDegenerateCircle is returned by geom.NewCircle when the center and
	// boundary point coincide (zero radius).
	ErrDegenerateCircle = errors.New("casnum: circle requires non-zero radius")

	// ErrNegativeBitop is returned by XorPositive, AndPositive, OrPositive,
	// and GetNthBit when given a negative operand.
	ErrNegativeBitop = errors.New("casnum: bitwise op requires non-negative operand")

	// ErrNoInverse is returned by InvMod when the operand has no modular
	// inverse, i.e. gcd(i, n) != 1.
	ErrNoInverse = errors.New("casnum: no modular inverse exists")

	// ErrRangeExceeded is returned by GetPrime when hi exceeds 2**32, the
	// limit of the underlying LCG's modulus.
	ErrRangeExceeded = errors.New("casnum: requested range exceeds 2**32")

	// ErrBranchSelectionFailed is returned by construct.TwoPoints (and the
	// constructions and arithmetic built on it) when an intersection that
	// must yield exactly two points yields some other number. This should
	// not occur in correct use of the kernel; treat it as fatal upstream
	// invariant violation, not a recoverable condition.
	ErrBranchSelectionFailed = errors.New("casnum: intersection branch selection failed")
)
