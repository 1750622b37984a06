// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package edwards implements the group law for twisted Edwards curves
// (a*x^2 + y^2 = 1 + d*x^2*y^2) in extended coordinates, generic over a
// *params.Curve so every Edwards curve in the registry shares one
// implementation.
package edwards

import (
	"math/big"

	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/internal/params"
)

// Point is an extended-coordinate point (X, Y, Z, T) on a twisted
// Edwards curve, with affine relation x = X/Z, y = Y/Z, T = XY/Z. The
// identity is any point with Z == 0, or with X == 0 and Y == Z.
type Point struct {
	Curve      *params.Curve
	X, Y, Z, T *big.Int
}

// Identity returns the neutral element (0, 1) for curve.
func Identity(curve *params.Curve) *Point {
	return &Point{Curve: curve, X: big.NewInt(0), Y: big.NewInt(1), Z: big.NewInt(1), T: big.NewInt(0)}
}

// Generator returns the curve's canonical base point.
func Generator(curve *params.Curve) *Point {
	return FromAffine(curve, curve.Gx, curve.Gy)
}

// FromAffine builds a point from affine coordinates, computing T = x*y
// and setting Z = 1. It does not check validity.
func FromAffine(curve *params.Curve, x, y *big.Int) *Point {
	p := curve.Prime()

	xr := new(big.Int).Mod(x, p)
	yr := new(big.Int).Mod(y, p)

	t := new(big.Int).Mul(xr, yr)
	t.Mod(t, p)

	return &Point{Curve: curve, X: xr, Y: yr, Z: big.NewInt(1), T: t}
}

// IsIdentity reports whether p denotes the neutral element.
func (p *Point) IsIdentity() bool {
	if p.Z.Sign() == 0 {
		return true
	}

	return p.X.Sign() == 0 && p.Y.Cmp(p.Z) == 0
}

// Affine returns the normalized (x, y) affine coordinates of p. Like
// weierstrass.Point.Affine, this recomputes the inverse on every call
// rather than caching it, keeping Point an immutable value.
func (p *Point) Affine() (x, y *big.Int) {
	mod := p.Curve.Prime()

	if p.Z.Sign() == 0 {
		return new(big.Int).Set(p.X), new(big.Int).Set(p.Y)
	}

	if p.Z.Cmp(bigOne) == 0 {
		return new(big.Int).Set(p.X), new(big.Int).Set(p.Y)
	}

	zinv := bignum.Inv(p.Z, mod)

	x = new(big.Int).Mul(p.X, zinv)
	x.Mod(x, mod)

	y = new(big.Int).Mul(p.Y, zinv)
	y.Mod(y, mod)

	return x, y
}

var bigOne = big.NewInt(1)

// IsValid reports whether p satisfies the curve equation
// a*x^2 + y^2 = 1 + d*x^2*y^2.
func (p *Point) IsValid() bool {
	if p.IsIdentity() {
		return false
	}

	mod := p.Curve.Prime()
	x, y := p.Affine()

	xx := new(big.Int).Mul(x, x)
	xx.Mod(xx, mod)
	yy := new(big.Int).Mul(y, y)
	yy.Mod(yy, mod)

	lhs := new(big.Int).Mul(p.Curve.A, xx)
	lhs.Add(lhs, yy)
	lhs.Mod(lhs, mod)

	rhs := new(big.Int).Mul(p.Curve.B, xx)
	rhs.Mul(rhs, yy)
	rhs.Add(rhs, bigOne)
	rhs.Mod(rhs, mod)

	return lhs.Cmp(rhs) == 0
}

// Recover reconstructs a point from its y coordinate and the low bit of
// x, using s^2 = (y^2 - 1) / (d*y^2 - a). It fails if y is not on the
// curve, per the curve's d parameter.
func Recover(curve *params.Curve, y *big.Int, bit uint) (*Point, bool) {
	p := curve.Prime()

	yy := new(big.Int).Mul(y, y)
	yy.Mod(yy, p)

	u := new(big.Int).Sub(yy, bigOne)
	u.Mod(u, p)

	v := new(big.Int).Mul(curve.B, yy)
	v.Sub(v, curve.A)
	v.Mod(v, p)

	vinv := bignum.Inv(v, p)
	if vinv == nil {
		return nil, false
	}

	ss := new(big.Int).Mul(u, vinv)
	ss.Mod(ss, p)

	s := bignum.Sqrt(ss, p)
	if s.Sign() == 0 && ss.Sign() != 0 {
		return nil, false
	}

	x := s
	if s.Bit(0) != bit {
		x = new(big.Int).Sub(p, s)
	}

	return FromAffine(curve, x, y), true
}

// Negate returns -p.
func (p *Point) Negate() *Point {
	mod := p.Curve.Prime()

	negX := new(big.Int).Neg(p.X)
	negX.Mod(negX, mod)

	negT := new(big.Int).Neg(p.T)
	negT.Mod(negT, mod)

	return &Point{Curve: p.Curve, X: negX, Y: new(big.Int).Set(p.Y), Z: new(big.Int).Set(p.Z), T: negT}
}

// Equal reports whether p and q denote the same affine point.
func (p *Point) Equal(q *Point) bool {
	mod := p.Curve.Prime()

	x1 := new(big.Int).Mul(p.X, q.Z)
	x1.Mod(x1, mod)
	x2 := new(big.Int).Mul(q.X, p.Z)
	x2.Mod(x2, mod)

	y1 := new(big.Int).Mul(p.Y, q.Z)
	y1.Mod(y1, mod)
	y2 := new(big.Int).Mul(q.Y, p.Z)
	y2.Mod(y2, mod)

	return x1.Cmp(x2) == 0 && y1.Cmp(y2) == 0
}

// Add returns p + q, via the Hisil-Wong-Carter-Dawson "add-2008-hwcd-2"
// addition formula for twisted extended coordinates. The formula is not
// unified: it degenerates when both operands denote the same point, so
// that case dispatches to the dedicated doubling formula.
func Add(p, q *Point) *Point {
	if p.IsIdentity() {
		return q
	}

	if q.IsIdentity() {
		return p
	}

	if p.Equal(q) {
		return Double(p)
	}

	mod := p.Curve.Prime()
	a := p.Curve.A

	A := new(big.Int).Mul(p.X, q.X)
	A.Mod(A, mod)

	B := new(big.Int).Mul(p.Y, q.Y)
	B.Mod(B, mod)

	C := new(big.Int).Mul(p.Z, q.T)
	C.Mod(C, mod)

	D := new(big.Int).Mul(p.T, q.Z)
	D.Mod(D, mod)

	E := new(big.Int).Add(D, C)
	E.Mod(E, mod)

	xdiff := new(big.Int).Sub(p.X, p.Y)
	ysum := new(big.Int).Add(q.X, q.Y)
	F := new(big.Int).Mul(xdiff, ysum)
	F.Mod(F, mod)
	F.Add(F, B)
	F.Sub(F, A)
	F.Mod(F, mod)

	G := new(big.Int).Mul(a, A)
	G.Mod(G, mod)
	G.Add(G, B)
	G.Mod(G, mod)

	H := new(big.Int).Sub(D, C)
	H.Mod(H, mod)

	x3 := new(big.Int).Mul(E, F)
	x3.Mod(x3, mod)

	y3 := new(big.Int).Mul(G, H)
	y3.Mod(y3, mod)

	t3 := new(big.Int).Mul(E, H)
	t3.Mod(t3, mod)

	z3 := new(big.Int).Mul(F, G)
	z3.Mod(z3, mod)

	return &Point{Curve: p.Curve, X: x3, Y: y3, Z: z3, T: t3}
}

// Double returns p + p, via the dedicated HWCD doubling formula.
func Double(p *Point) *Point {
	mod := p.Curve.Prime()
	a := p.Curve.A

	A := new(big.Int).Mul(p.X, p.X)
	A.Mod(A, mod)

	B := new(big.Int).Mul(p.Y, p.Y)
	B.Mod(B, mod)

	zz := new(big.Int).Mul(p.Z, p.Z)
	zz.Mod(zz, mod)
	C := new(big.Int).Mul(big.NewInt(2), zz)
	C.Mod(C, mod)

	D := new(big.Int).Mul(a, A)
	D.Mod(D, mod)

	xysum := new(big.Int).Add(p.X, p.Y)
	E := new(big.Int).Mul(xysum, xysum)
	E.Mod(E, mod)
	E.Sub(E, A)
	E.Sub(E, B)
	E.Mod(E, mod)

	G := new(big.Int).Add(D, B)
	G.Mod(G, mod)

	F := new(big.Int).Sub(G, C)
	F.Mod(F, mod)

	H := new(big.Int).Sub(D, B)
	H.Mod(H, mod)

	x3 := new(big.Int).Mul(E, F)
	x3.Mod(x3, mod)

	y3 := new(big.Int).Mul(G, H)
	y3.Mod(y3, mod)

	t3 := new(big.Int).Mul(E, H)
	t3.Mod(t3, mod)

	z3 := new(big.Int).Mul(F, G)
	z3.Mod(z3, mod)

	return &Point{Curve: p.Curve, X: x3, Y: y3, Z: z3, T: t3}
}
