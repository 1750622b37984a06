// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package bignum holds the arbitrary-precision modular arithmetic kernels
// shared by the Weierstrass and twisted Edwards group laws: Legendre
// symbol, Tonelli-Shanks square root, extended GCD, modular inverse, and
// fixed-width big-endian/little-endian integer codecs.
package bignum

import "math/big"

var one = big.NewInt(1)

// Legendre computes the Legendre symbol of n modulo the odd prime p: 0 if
// n is 0 mod p, 1 if n is a nonzero quadratic residue, -1 otherwise.
func Legendre(n, p *big.Int) int {
	r := new(big.Int).Exp(n, new(big.Int).Rsh(new(big.Int).Sub(p, one), 1), p)

	switch {
	case r.Sign() == 0:
		return 0
	case r.Cmp(new(big.Int).Sub(p, one)) == 0:
		return -1
	default:
		return 1
	}
}

// Sqrt returns a square root of n modulo the prime p via Tonelli-Shanks,
// or 0 if n has no square root (n is zero or a non-residue). Which of the
// two roots is returned is unspecified; callers disambiguate with a sign
// bit.
func Sqrt(n, p *big.Int) *big.Int {
	n = new(big.Int).Mod(n, p)

	if n.Sign() == 0 {
		return big.NewInt(0)
	}

	if Legendre(n, p) != 1 {
		return big.NewInt(0)
	}

	if p.Bit(0) == 0 {
		// p == 2.
		return new(big.Int).Set(n)
	}

	// q * 2^s == p - 1, q odd.
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	if s == 1 {
		exp := new(big.Int).Rsh(new(big.Int).Add(p, one), 2)
		return new(big.Int).Exp(n, exp, p)
	}

	z := big.NewInt(2)
	for Legendre(z, p) != -1 {
		z.Add(z, one)
	}

	m := s
	c := new(big.Int).Exp(z, q, p)
	t := new(big.Int).Exp(n, q, p)
	r := new(big.Int).Exp(n, new(big.Int).Rsh(new(big.Int).Add(q, one), 1), p)

	for {
		if t.Cmp(one) == 0 {
			return r
		}

		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 {
			tt.Mul(tt, tt)
			tt.Mod(tt, p)
			i++
		}

		b := new(big.Int).Set(c)
		for j := 0; j < m-i-1; j++ {
			b.Mul(b, b)
			b.Mod(b, p)
		}

		m = i
		c = new(big.Int).Mul(b, b)
		c.Mod(c, p)
		r.Mul(r, b)
		r.Mod(r, p)
		t.Mul(t, c)
		t.Mod(t, p)
	}
}

// EGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
func EGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(b), big.NewInt(0), big.NewInt(1)
	}

	bModA := new(big.Int).Mod(b, a)
	g, x1, y1 := EGCD(bModA, a)

	// x = y1 - (b div a) * x1
	q := new(big.Int).Div(b, a)
	x = new(big.Int).Sub(y1, new(big.Int).Mul(q, x1))
	y = x1

	return g, x, y
}

// Inv returns the multiplicative inverse of n modulo m, or nil if n and m
// are not coprime. Callers only ever invert nonzero field elements or
// scalars known to be coprime to the group order.
func Inv(n, m *big.Int) *big.Int {
	g, x, _ := EGCD(n, m)
	if g.Cmp(one) != 0 {
		return nil
	}

	return new(big.Int).Mod(x, m)
}

// LEnc encodes a non-negative integer into a fixed-width byte string,
// big-endian unless le is true. It panics if v does not fit in l bytes.
func LEnc(v *big.Int, l int, le bool) []byte {
	if v.Sign() < 0 {
		panic("bignum: cannot encode a negative integer")
	}

	if (v.BitLen()+7)/8 > l {
		panic("bignum: value does not fit in the requested width")
	}

	out := make([]byte, l)
	v.FillBytes(out)

	if le {
		reverse(out)
	}

	return out
}

// LDec decodes a fixed-width byte string into a non-negative integer,
// big-endian unless le is true.
func LDec(b []byte, le bool) *big.Int {
	if le {
		b = append([]byte(nil), b...)
		reverse(b)
	}

	return new(big.Int).SetBytes(b)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
