// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package casnum

import (
	"casnum/config"
	"casnum/kerr"
)

// lcgNext advances the process configuration's LCG state one step and
// returns it as a CasNum. The multiplier/increment pair 1664525/1013904223
// is the classic numerical-recipes choice for modulus 2^32; the update
// itself runs through CasNum arithmetic, so even the PRNG is constructed.
func lcgNext(c *config.Config, m CasNum) (CasNum, error) {
	a := GetN(1664525)
	add := GetN(1013904223)
	state := GetN(c.RandState())
	next, err := a.Mul(state)
	if err != nil {
		return CasNum{}, err
	}
	next, err = next.Add(add)
	if err != nil {
		return CasNum{}, err
	}
	next, err = next.Mod(m)
	if err != nil {
		return CasNum{}, err
	}
	c.SetRandState(stateToInt64(next))
	return next, nil
}

// stateToInt64 extracts the LCG's int64 state from a non-negative CasNum
// known to fit in 32 bits. The conversion goes through a bounded
// rem-and-halve reduction rather than algebra.Real.Approx, since the state
// is always an exact small rational and deserves an exact readback.
func stateToInt64(n CasNum) int64 {
	var v int64
	cur := n
	shift := int64(1)
	for i := 0; i < 32; i++ {
		rem, err := cur.Mod(Two)
		if err != nil {
			break
		}
		if rem.Equal(One) {
			v += shift
		}
		shift <<= 1
		half, err := cur.Sub(rem)
		if err != nil {
			break
		}
		half, err = half.TrueDiv(Two)
		if err != nil {
			break
		}
		cur = half
	}
	return v
}

// m32 returns the CasNum 2^32, the LCG's modulus.
func m32() (CasNum, error) {
	m := One
	for i := 0; i < 32; i++ {
		var err error
		m, err = m.Mul2()
		if err != nil {
			return CasNum{}, err
		}
	}
	return m, nil
}

// GetRandIntNBits returns a pseudo-random CasNum in [0, 2^nbits), drawn
// from the process configuration's LCG. Not cryptographically secure.
func GetRandIntNBits(nbits int) (CasNum, error) {
	c := config.Current()
	if c == nil {
		c = &config.Config{}
	}
	m := One
	for i := 0; i < nbits; i++ {
		var err error
		m, err = m.Mul2()
		if err != nil {
			return CasNum{}, err
		}
	}
	state, err := lcgNext(c, m)
	if err != nil {
		return CasNum{}, err
	}
	return state, nil
}

// GetPrime draws from [lo, hi] via the configuration's LCG, rejecting
// non-prime draws and also rejecting LCG states in the biased residual
// segment at the top of the modulus (state >= lim), until a prime is found.
// hi is capped at 2^32, the LCG's modulus, reported as
// kerr.ErrRangeExceeded. Not cryptographically secure.
func GetPrime(lo, hi CasNum) (CasNum, error) {
	c := config.Current()
	if c == nil {
		c = &config.Config{}
	}
	m, err := m32()
	if err != nil {
		return CasNum{}, err
	}
	if hi.GreaterThan(m) {
		return CasNum{}, kerr.ErrRangeExceeded
	}

	rng, err := hi.Sub(lo)
	if err != nil {
		return CasNum{}, err
	}
	rng, err = rng.Add(One)
	if err != nil {
		return CasNum{}, err
	}
	mOverRng, err := m.TrueDiv(rng)
	if err != nil {
		return CasNum{}, err
	}
	mOverRng, err = mOverRng.Floor()
	if err != nil {
		return CasNum{}, err
	}
	lim, err := mOverRng.Mul(rng)
	if err != nil {
		return CasNum{}, err
	}

	// The first candidate is drawn from whatever state the configuration
	// already holds, unadvanced unless that state lies in the biased band;
	// after that only rejected draws step the LCG.
	state := GetN(c.RandState())
	for state.GreaterOrEqual(lim) {
		state, err = lcgNext(c, m)
		if err != nil {
			return CasNum{}, err
		}
	}
	offset, err := state.Mod(rng)
	if err != nil {
		return CasNum{}, err
	}
	cur, err := lo.Add(offset)
	if err != nil {
		return CasNum{}, err
	}

	for {
		prime, err := cur.IsPrime()
		if err != nil {
			return CasNum{}, err
		}
		if prime {
			return cur, nil
		}
		state, err = lcgNext(c, m)
		if err != nil {
			return CasNum{}, err
		}
		if state.GreaterOrEqual(lim) {
			continue
		}
		offset, err = state.Mod(rng)
		if err != nil {
			return CasNum{}, err
		}
		cur, err = lo.Add(offset)
		if err != nil {
			return CasNum{}, err
		}
	}
}
