// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package casnum

import "sync"

// memoKey identifies a cached result by operator name and the operands'
// canonical string form. CasNum's own String is already the point's
// canonical algebra.Real representation (normalized on construction), so
// any two operands denoting the same integer always produce identical
// keys.
type memoKey struct {
	op      string
	a, b, c string
}

var (
	memoMu sync.Mutex
	memo   = make(map[memoKey]CasNum)

	// GetN and FromNum are keyed on their plain integer argument rather
	// than a canonical coordinate string, each with its own cache.
	intMemoMu   sync.Mutex
	getNMemo    = make(map[int64]CasNum)
	fromNumMemo = make(map[int64]CasNum)
)

// memoBinary caches the result of a binary operator, keyed by operator name
// plus both operands' canonical form. Only the success path is cached — an
// error result is never memoized. Caches are unbounded and live for the
// process; the same small constants recur in nearly every construction, and
// construction cost dwarfs the map footprint.
func memoBinary(op string, a, b CasNum, compute func() (CasNum, error)) (CasNum, error) {
	key := memoKey{op: op, a: a.String(), b: b.String()}
	memoMu.Lock()
	if v, ok := memo[key]; ok {
		memoMu.Unlock()
		return v, nil
	}
	memoMu.Unlock()

	v, err := compute()
	if err != nil {
		return CasNum{}, err
	}

	memoMu.Lock()
	memo[key] = v
	memoMu.Unlock()
	return v, nil
}

// memoUnary caches the result of a unary operator.
func memoUnary(op string, a CasNum, compute func() (CasNum, error)) (CasNum, error) {
	return memoBinary(op, a, a, func() (CasNum, error) { return compute() })
}

// memoTernary caches a three-operand operation (PowMod).
func memoTernary(op string, a, b, c CasNum, compute func() (CasNum, error)) (CasNum, error) {
	key := memoKey{op: op, a: a.String(), b: b.String(), c: c.String()}
	memoMu.Lock()
	if v, ok := memo[key]; ok {
		memoMu.Unlock()
		return v, nil
	}
	memoMu.Unlock()

	v, err := compute()
	if err != nil {
		return CasNum{}, err
	}

	memoMu.Lock()
	memo[key] = v
	memoMu.Unlock()
	return v, nil
}

// memoInt caches a construction keyed on a plain integer argument. The
// compute func panics rather than failing, matching GetN/FromNum, whose
// constructions cannot fail on the inputs the cache admits.
func memoInt(cache map[int64]CasNum, n int64, compute func() CasNum) CasNum {
	intMemoMu.Lock()
	if v, ok := cache[n]; ok {
		intMemoMu.Unlock()
		return v
	}
	intMemoMu.Unlock()

	v := compute()

	intMemoMu.Lock()
	cache[n] = v
	intMemoMu.Unlock()
	return v
}
