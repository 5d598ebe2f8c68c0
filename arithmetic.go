// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package casnum

import (
	"casnum/algebra"
	"casnum/construct"
	"casnum/geom"
	"casnum/kerr"
)

func zeroReal() algebra.Real { return algebra.Zero() }
func oneReal() algebra.Real  { return algebra.One() }

// Add returns a+b. The fast paths (either operand zero, or doubling when
// they're equal) fall out for free; the general case strikes a circle at
// a's point with radius dist(origin, b's point), then picks whichever of
// the two x-axis intersections is "further out" in b's direction.
func (a CasNum) Add(b CasNum) (CasNum, error) {
	if a.Equal(Zero) {
		return b, nil
	}
	if b.Equal(Zero) {
		return a, nil
	}
	if a.Equal(b) {
		return a.Mul2()
	}
	return memoBinary("add", a, b, func() (CasNum, error) {
		radius := geom.Dist(Origin, b.P)
		c, err := geom.NewCircleWithRadius(a.P, radius)
		if err != nil {
			return CasNum{}, err
		}
		p1, p2, err := construct.TwoPoints(geom.IntersectCircleLine(c, XAxis))
		if err != nil {
			return CasNum{}, err
		}
		var p geom.Point
		if b.GreaterThan(Zero) {
			if p2.X.LessThan(p1.X) {
				p = p1
			} else {
				p = p2
			}
		} else {
			if p1.X.LessThan(p2.X) {
				p = p1
			} else {
				p = p2
			}
		}
		return CasNum{P: p}, nil
	})
}

// Sub returns a-b.
func (a CasNum) Sub(b CasNum) (CasNum, error) {
	if a.Equal(b) {
		return Zero, nil
	}
	return memoBinary("sub", a, b, func() (CasNum, error) {
		nb, err := b.Neg()
		if err != nil {
			return CasNum{}, err
		}
		return a.Add(nb)
	})
}

// Neg returns -a, the antipode of a's point through the origin.
func (a CasNum) Neg() (CasNum, error) {
	return memoUnary("neg", a, func() (CasNum, error) {
		p, err := construct.MirrorPointOnXAxis(a.P, Origin)
		if err != nil {
			return CasNum{}, err
		}
		return CasNum{P: p}, nil
	})
}

// Abs returns |a|.
func (a CasNum) Abs() (CasNum, error) {
	if a.LessThan(Zero) {
		return a.Neg()
	}
	return a, nil
}

// Mul2 returns 2a.
func (a CasNum) Mul2() (CasNum, error) {
	return memoUnary("mul2", a, func() (CasNum, error) {
		p, err := construct.DoublePointOnXAxis(Origin, a.P)
		if err != nil {
			return CasNum{}, err
		}
		return CasNum{P: p}, nil
	})
}

// DoubleUntilGt repeatedly doubles b while a > b (strict) or while a >= b
// (strict=false), so it returns the first doubling of b that is greater
// than or equal to a (strict) or strictly greater than a (strict=false).
// Mod and the bitwise width-matching helpers use it to find the
// power-of-two multiple that first reaches or overshoots a.
func DoubleUntilGt(a, b CasNum, strict bool) (CasNum, error) {
	op := "double_until_gt"
	if !strict {
		op = "double_until_ge"
	}
	return memoBinary(op, a, b, func() (CasNum, error) {
		toRem := b
		for {
			cmp := a.GreaterThan(toRem)
			if !cmp && !strict {
				cmp = a.Equal(toRem)
			}
			if !cmp {
				return toRem, nil
			}
			var err error
			toRem, err = toRem.Mul2()
			if err != nil {
				return CasNum{}, err
			}
		}
	})
}

// Mod returns a mod b, with the same sign as b, via repeated
// doubling-and-subtraction; no division primitive is used.
func (a CasNum) Mod(b CasNum) (CasNum, error) {
	if b.Equal(Zero) {
		return CasNum{}, kerr.ErrDivByZero
	}
	return memoBinary("mod", a, b, func() (CasNum, error) {
		remainder := a
		absB, err := b.Abs()
		if err != nil {
			return CasNum{}, err
		}
		for {
			absRem, err := remainder.Abs()
			if err != nil {
				return CasNum{}, err
			}
			if !absRem.GreaterOrEqual(absB) {
				break
			}
			toRem, err := DoubleUntilGt(absRem, absB, true)
			if err != nil {
				return CasNum{}, err
			}
			if remainder.GreaterThan(Zero) {
				remainder, err = remainder.Sub(toRem)
			} else {
				remainder, err = remainder.Add(toRem)
			}
			if err != nil {
				return CasNum{}, err
			}
		}
		if b.LessThan(Zero) && remainder.GreaterThan(Zero) {
			return remainder.Sub(absB)
		}
		if b.GreaterThan(Zero) && remainder.LessThan(Zero) {
			return remainder.Add(absB)
		}
		return remainder, nil
	})
}

// FloorDiv returns the floor quotient of a by b: (a - a%b)/b, where a%b
// takes the sign of b.
func (a CasNum) FloorDiv(b CasNum) (CasNum, error) {
	if b.Equal(Zero) {
		return CasNum{}, kerr.ErrDivByZero
	}
	return memoBinary("floordiv", a, b, func() (CasNum, error) {
		rem, err := a.Mod(b)
		if err != nil {
			return CasNum{}, err
		}
		numer, err := a.Sub(rem)
		if err != nil {
			return CasNum{}, err
		}
		return numer.TrueDiv(b)
	})
}

// Floor returns a // One, truncating a rational CasNum toward its floor.
func (a CasNum) Floor() (CasNum, error) { return a.FloorDiv(One) }

// TrueDiv returns a/b exactly, via the intercept-theorem division
// construction: project |a| onto the y-axis, draw the parallel through
// -unit to the line joining that projection and |b|'s point, and read the
// quotient back off the y-axis/x-axis.
func (a CasNum) TrueDiv(b CasNum) (CasNum, error) {
	if b.Equal(Zero) {
		return CasNum{}, kerr.ErrDivByZero
	}
	return memoBinary("truediv", a, b, func() (CasNum, error) {
		aAbs, err := a.Abs()
		if err != nil {
			return CasNum{}, err
		}
		bAbs, err := b.Abs()
		if err != nil {
			return CasNum{}, err
		}
		if aAbs.Equal(Zero) || bAbs.Equal(Zero) {
			return Zero, nil
		}

		negUnit, err := construct.MirrorPointOnXAxis(Unit, Origin)
		if err != nil {
			return CasNum{}, err
		}
		c, err := geom.NewCircle(Origin, aAbs.P)
		if err != nil {
			return CasNum{}, err
		}
		p1, p2, err := construct.TwoPoints(geom.IntersectCircleLine(c, YAxis))
		if err != nil {
			return CasNum{}, err
		}
		p := p2
		if p2.Y.LessThan(p1.Y) {
			p = p1
		}

		chordLine, err := geom.NewLine(p, bAbs.P)
		if err != nil {
			return CasNum{}, err
		}
		l, err := construct.ParallelThroughPoint(negUnit, chordLine)
		if err != nil {
			return CasNum{}, err
		}
		pDiv := geom.IntersectLines(YAxis, l)

		c2, err := geom.NewCircle(Origin, pDiv)
		if err != nil {
			return CasNum{}, err
		}
		q1, q2, err := construct.TwoPoints(geom.IntersectCircleLine(c2, XAxis))
		if err != nil {
			return CasNum{}, err
		}
		var resultP geom.Point
		if q1.X.Sign() > 0 {
			resultP = q1
		} else {
			resultP = q2
		}
		ret := CasNum{P: resultP}

		if a.LessThan(Zero) {
			ret, err = ret.Neg()
			if err != nil {
				return CasNum{}, err
			}
		}
		if b.LessThan(Zero) {
			ret, err = ret.Neg()
			if err != nil {
				return CasNum{}, err
			}
		}
		return ret, nil
	})
}

// Mul returns a*b via the intercept-theorem construction: project |a| onto
// the y-axis, draw the line through b's point parallel to the chord from
// that projection to -unit (obtained by mirroring across the y-axis, not
// the x-axis), and read the product back off the axes.
func (a CasNum) Mul(b CasNum) (CasNum, error) {
	if b.Equal(One) {
		return a, nil
	}
	if a.Equal(One) {
		return b, nil
	}
	return memoBinary("mul", a, b, func() (CasNum, error) {
		aAbs, err := a.Abs()
		if err != nil {
			return CasNum{}, err
		}
		bAbs, err := b.Abs()
		if err != nil {
			return CasNum{}, err
		}
		if aAbs.Equal(Zero) || bAbs.Equal(Zero) {
			return Zero, nil
		}

		negUnit, err := construct.MirrorPoint(Unit, YAxis)
		if err != nil {
			return CasNum{}, err
		}
		c, err := geom.NewCircle(Origin, aAbs.P)
		if err != nil {
			return CasNum{}, err
		}
		p1, p2, err := construct.TwoPoints(geom.IntersectCircleLine(c, YAxis))
		if err != nil {
			return CasNum{}, err
		}
		p := p2
		if p2.Y.LessThan(p1.Y) {
			p = p1
		}

		chordLine, err := geom.NewLine(p, negUnit)
		if err != nil {
			return CasNum{}, err
		}
		l, err := construct.ParallelThroughPoint(bAbs.P, chordLine)
		if err != nil {
			return CasNum{}, err
		}
		pMul := geom.IntersectLines(YAxis, l)

		c2, err := geom.NewCircle(Origin, pMul)
		if err != nil {
			return CasNum{}, err
		}
		q1, q2, err := construct.TwoPoints(geom.IntersectCircleLine(c2, XAxis))
		if err != nil {
			return CasNum{}, err
		}
		var resultP geom.Point
		if q1.X.Sign() > 0 {
			resultP = q1
		} else {
			resultP = q2
		}
		ret := CasNum{P: resultP}

		if a.LessThan(Zero) {
			ret, err = ret.Neg()
			if err != nil {
				return CasNum{}, err
			}
		}
		if b.LessThan(Zero) {
			ret, err = ret.Neg()
			if err != nil {
				return CasNum{}, err
			}
		}
		return ret, nil
	})
}

// Pow returns a**b for a non-negative integer exponent b, by repeated
// multiplication.
func (a CasNum) Pow(b CasNum) (CasNum, error) {
	if b.LessThan(Zero) {
		return CasNum{}, kerr.ErrNegativeExponent
	}
	floorB, err := b.Floor()
	if err != nil {
		return CasNum{}, err
	}
	if !floorB.Equal(b) {
		return CasNum{}, kerr.ErrNonIntegerExponent
	}
	if b.Equal(Zero) {
		return One, nil
	}
	return memoBinary("pow", a, b, func() (CasNum, error) {
		result := a
		cnt, err := b.Sub(One)
		if err != nil {
			return CasNum{}, err
		}
		for cnt.GreaterThan(Zero) {
			result, err = result.Mul(a)
			if err != nil {
				return CasNum{}, err
			}
			cnt, err = cnt.Sub(One)
			if err != nil {
				return CasNum{}, err
			}
		}
		return result, nil
	})
}

// PowMod returns a**b mod n via square-and-multiply, never materializing
// a**b in full.
func PowMod(a, b, n CasNum) (CasNum, error) {
	return memoTernary("pow_mod", a, b, n, func() (CasNum, error) {
		result := One
		base := a
		bCopy := b
		for bCopy.GreaterThan(Zero) {
			bit, err := bCopy.Mod(Two)
			if err != nil {
				return CasNum{}, err
			}
			if bit.Equal(One) {
				result, err = result.Mul(base)
				if err != nil {
					return CasNum{}, err
				}
				if result.GreaterOrEqual(n) {
					result, err = result.Mod(n)
					if err != nil {
						return CasNum{}, err
					}
				}
			}
			base, err = base.Mul(base)
			if err != nil {
				return CasNum{}, err
			}
			if base.GreaterOrEqual(n) {
				base, err = base.Mod(n)
				if err != nil {
					return CasNum{}, err
				}
			}
			bCopy, err = bCopy.Rshift(1)
			if err != nil {
				return CasNum{}, err
			}
		}
		return result, nil
	})
}

// Gcd returns the greatest common divisor of a and b via the Euclidean
// algorithm expressed with Mod.
func Gcd(a, b CasNum) (CasNum, error) {
	return memoBinary("gcd", a, b, func() (CasNum, error) {
		x, y := a, b
		for !y.Equal(Zero) {
			temp, err := x.Mod(y)
			if err != nil {
				return CasNum{}, err
			}
			x, y = y, temp
		}
		return x.Abs()
	})
}

// InvMod returns the modular inverse of i modulo n via the extended
// Euclidean algorithm, or kerr.ErrNoInverse when gcd(i, n) != 1.
func InvMod(i, n CasNum) (CasNum, error) {
	if n.Equal(Zero) {
		return CasNum{}, kerr.ErrDivByZero
	}
	return memoBinary("inv_mod", i, n, func() (CasNum, error) {
		d, x1, x2, y1 := Zero, One, Zero, One
		tempN := n
		ii := i
		for ii.GreaterThan(Zero) {
			temp1, err := tempN.FloorDiv(ii)
			if err != nil {
				return CasNum{}, err
			}
			t1i, err := temp1.Mul(ii)
			if err != nil {
				return CasNum{}, err
			}
			temp2, err := tempN.Sub(t1i)
			if err != nil {
				return CasNum{}, err
			}
			tempN, ii = ii, temp2

			t1x1, err := temp1.Mul(x1)
			if err != nil {
				return CasNum{}, err
			}
			x, err := x2.Sub(t1x1)
			if err != nil {
				return CasNum{}, err
			}
			t1y1, err := temp1.Mul(y1)
			if err != nil {
				return CasNum{}, err
			}
			y, err := d.Sub(t1y1)
			if err != nil {
				return CasNum{}, err
			}

			x2, x1 = x1, x
			d, y1 = y1, y
		}
		if !tempN.Equal(One) {
			return CasNum{}, kerr.ErrNoInverse
		}
		return d.Mod(n)
	})
}

// Sqrt returns the non-negative square root of a via the right-triangle
// altitude construction: build p=(a+1)/2, q=p-1, erect a perpendicular to
// the x-axis at q, intersect a circle of radius p centered at the origin
// with that perpendicular, and strike a second circle from q through that
// intersection back onto the x-axis. The result is exact for perfect
// squares and the exact surd otherwise.
func (a CasNum) Sqrt() (CasNum, error) {
	if a.LessThan(Zero) {
		return CasNum{}, kerr.ErrNegRoot
	}
	if a.Equal(Zero) {
		return Zero, nil
	}
	aPlus1, err := a.Add(One)
	if err != nil {
		return CasNum{}, err
	}
	p, err := aPlus1.TrueDiv(Two)
	if err != nil {
		return CasNum{}, err
	}
	q, err := p.Sub(One)
	if err != nil {
		return CasNum{}, err
	}
	c, err := geom.NewCircleWithRadius(Origin, p.P.X)
	if err != nil {
		return CasNum{}, err
	}
	l, err := construct.PerpendicularThroughPoint(q.P, XAxis)
	if err != nil {
		return CasNum{}, err
	}
	p1, p2, err := construct.TwoPoints(geom.IntersectCircleLine(c, l))
	if err != nil {
		return CasNum{}, err
	}
	top := p2
	if p2.Y.LessThan(p1.Y) {
		top = p1
	}
	c2, err := geom.NewCircle(q.P, top)
	if err != nil {
		return CasNum{}, err
	}
	q1, q2, err := construct.TwoPoints(geom.IntersectCircleLine(c2, XAxis))
	if err != nil {
		return CasNum{}, err
	}
	onAxis := q2
	if q2.X.LessThan(q1.X) {
		onAxis = q1
	}
	return CasNum{P: onAxis}.Sub(q)
}

// IsPrime implements trial division by 2 and the odd integers up to
// floor(sqrt(a))+1. One is not prime.
func (a CasNum) IsPrime() (bool, error) {
	if a.Equal(One) {
		return false, nil
	}
	if a.Equal(Two) {
		return true, nil
	}
	evenCheck, err := a.Mod(Two)
	if err != nil {
		return false, err
	}
	if evenCheck.Equal(Zero) {
		return false, nil
	}
	root, err := a.Sqrt()
	if err != nil {
		return false, err
	}
	limPlus, err := root.Add(One)
	if err != nil {
		return false, err
	}
	lim, err := limPlus.Floor()
	if err != nil {
		return false, err
	}
	cur, err := Two.Add(One)
	if err != nil {
		return false, err
	}
	for cur.LessThan(lim) {
		rem, err := a.Mod(cur)
		if err != nil {
			return false, err
		}
		if rem.Equal(Zero) {
			return false, nil
		}
		cur, err = cur.Add(Two)
		if err != nil {
			return false, err
		}
	}
	return true, nil
}
