// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Casnumrepl is a small calculator over casnum.CasNum: every value it prints
is an integer constructed as a point on the plane via straightedge-and-
compass geometry rather than computed numerically, and every operator below
drives one of casnum's geometric constructions.

Unlike a conventional calculator, there is no floating point anywhere in the
evaluation path; casnum/algebra carries exact algebraic numbers all the way
through, and this REPL only ever prints the final rational result of an
integer-valued expression.

Binary operators, highest precedence first:

	**            exponentiation (casnum.CasNum.Pow)
	* / %         multiply, true-divide, mod
	+ -           add, subtract
	<< >>         left shift, right shift
	&             bitwise and
	^             bitwise xor
	|             bitwise or

Unary prefix:

	-x            negate

Function calls:

	gcd(a, b)             greatest common divisor
	invmod(a, n)          modular inverse of a mod n
	powmod(a, b, n)       a**b mod n
	sqrt(a)               exact square root (a surd when a is not a perfect square)
	isprime(a)            1 if a is prime, 0 otherwise
	getprime(lo, hi)      a random prime in [lo, hi]
	abs(a)                absolute value

Parentheses group sub-expressions as usual. Integer literals are plain
decimal, optionally negative.

Special commands, introduced by a right paren at the beginning of the line:

	) seed N
		Set the LCG seed used by getprime.
	) precision N
		Set the algebra tie-break precision, in bits.
	) scene
		With -graphics, drain and print the queued construction
		commands (points, lines, circles) recorded since the last
		drain.
	) clear
		Reset the scene, bumping the generation counter so stale
		commands are discarded.

*/
package main
