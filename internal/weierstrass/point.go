// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package weierstrass implements the group law for short Weierstrass
// curves (y^2 = x^3 + a*x + b) in projective coordinates, generic over a
// *params.Curve so every Weierstrass curve in the registry shares one
// implementation.
package weierstrass

import (
	"math/big"

	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/internal/params"
)

// Point is a projective-coordinate point (X, Y, Z) on a short Weierstrass
// curve, with affine relation x = X/Z, y = Y/Z. The identity is any
// triple with Z == 0.
type Point struct {
	Curve   *params.Curve
	X, Y, Z *big.Int
}

// Identity returns the point at infinity for curve.
func Identity(curve *params.Curve) *Point {
	return &Point{Curve: curve, X: big.NewInt(0), Y: big.NewInt(1), Z: big.NewInt(0)}
}

// Generator returns the curve's canonical base point.
func Generator(curve *params.Curve) *Point {
	return &Point{Curve: curve, X: new(big.Int).Set(curve.Gx), Y: new(big.Int).Set(curve.Gy), Z: big.NewInt(1)}
}

// FromAffine builds a point directly from affine coordinates, with Z = 1.
// It does not check validity; callers that need a checked point should
// consult IsValid.
func FromAffine(curve *params.Curve, x, y *big.Int) *Point {
	p := curve.Prime()
	return &Point{
		Curve: curve,
		X:     new(big.Int).Mod(x, p),
		Y:     new(big.Int).Mod(y, p),
		Z:     big.NewInt(1),
	}
}

// curveRHS returns x^3 + a*x + b mod p.
func curveRHS(curve *params.Curve, x *big.Int) *big.Int {
	p := curve.Prime()

	x3 := new(big.Int).Exp(x, big.NewInt(3), p)

	ax := new(big.Int).Mul(curve.A, x)
	ax.Mod(ax, p)

	r := new(big.Int).Add(x3, ax)
	r.Add(r, curve.B)
	r.Mod(r, p)

	return r
}

// Recover reconstructs a point from its x coordinate and the low bit of
// y, failing if x is not on the curve.
func Recover(curve *params.Curve, x *big.Int, bit uint) (*Point, bool) {
	p := curve.Prime()

	s := bignum.Sqrt(curveRHS(curve, x), p)
	if s.Sign() == 0 {
		return nil, false
	}

	y := s
	if s.Bit(0) != bit {
		y = new(big.Int).Sub(p, s)
	}

	return FromAffine(curve, x, y), true
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.Z.Sign() == 0
}

// Affine returns the normalized (x, y) affine coordinates of p. It does
// not mutate p; normalization is computed fresh each call, which keeps
// Point a pure, race-free value at the cost of recomputing an inverse on
// repeated coordinate access.
func (p *Point) Affine() (x, y *big.Int) {
	if p.IsIdentity() {
		return big.NewInt(0), big.NewInt(0)
	}

	mod := p.Curve.Prime()
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

// IsValid reports whether p is a proper finite point on the curve. The
// identity is never valid by this predicate.
func (p *Point) IsValid() bool {
	if p.IsIdentity() {
		return false
	}

	x, y := p.Affine()

	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, p.Curve.Prime())

	return lhs.Cmp(curveRHS(p.Curve, x)) == 0
}

// Negate returns -p.
func (p *Point) Negate() *Point {
	if p.IsIdentity() {
		return Identity(p.Curve)
	}

	neg := new(big.Int).Neg(p.Y)
	neg.Mod(neg, p.Curve.Prime())

	return &Point{Curve: p.Curve, X: new(big.Int).Set(p.X), Y: neg, Z: new(big.Int).Set(p.Z)}
}

// Equal reports whether p and q denote the same affine point, via
// cross-multiplication of their stored projective coordinates.
func (p *Point) Equal(q *Point) bool {
	mod := p.Curve.Prime()

	x1 := new(big.Int).Mul(q.X, p.Z)
	x1.Mod(x1, mod)
	x2 := new(big.Int).Mul(p.X, q.Z)
	x2.Mod(x2, mod)

	y1 := new(big.Int).Mul(q.Y, p.Z)
	y1.Mod(y1, mod)
	y2 := new(big.Int).Mul(p.Y, q.Z)
	y2.Mod(y2, mod)

	return x1.Cmp(x2) == 0 && y1.Cmp(y2) == 0
}

// Add returns p + q, following RFC 6090 section 3's homogeneous addition
// formula, with a dedicated branch for doubling and for the
// point-plus-its-inverse case.
func Add(p, q *Point) *Point {
	curve := p.Curve
	mod := curve.Prime()

	if p.IsIdentity() {
		return q
	}

	if q.IsIdentity() {
		return p
	}

	u := new(big.Int).Mul(q.Y, p.Z)
	u.Mod(u, mod)
	t := new(big.Int).Mul(p.Y, q.Z)
	t.Mod(t, mod)
	u.Sub(u, t)
	u.Mod(u, mod)

	v := new(big.Int).Mul(q.X, p.Z)
	v.Mod(v, mod)
	t.Mul(p.X, q.Z)
	t.Mod(t, mod)
	v.Sub(v, t)
	v.Mod(v, mod)

	switch {
	case v.Sign() == 0 && u.Sign() != 0:
		// p and q are inverses.
		return Identity(curve)

	case v.Sign() == 0 && u.Sign() == 0:
		return double(p)

	default:
		return addGeneral(p, q, u, v)
	}
}

// double implements the standard projective doubling formula, with
// w = 3X^2 + aZ^2.
func double(p *Point) *Point {
	curve := p.Curve
	mod := curve.Prime()

	xx := new(big.Int).Mul(p.X, p.X)
	xx.Mod(xx, mod)
	yy := new(big.Int).Mul(p.Y, p.Y)
	yy.Mod(yy, mod)
	zz := new(big.Int).Mul(p.Z, p.Z)
	zz.Mod(zz, mod)
	yz := new(big.Int).Mul(p.Y, p.Z)
	yz.Mod(yz, mod)
	yyz := new(big.Int).Mul(yy, p.Z)
	yyz.Mod(yyz, mod)

	w := new(big.Int).Mul(big.NewInt(3), xx)
	az := new(big.Int).Mul(curve.A, zz)
	w.Add(w, az)
	w.Mod(w, mod)

	ww := new(big.Int).Mul(w, w)
	ww.Mod(ww, mod)
	www := new(big.Int).Mul(w, ww)
	www.Mod(www, mod)

	x3 := new(big.Int).Mul(big.NewInt(8), p.X)
	x3.Mul(x3, yyz)
	x3.Mod(x3, mod)
	x3.Sub(ww, x3)
	x3.Mod(x3, mod)
	x3.Mul(x3, big.NewInt(2))
	x3.Mul(x3, yz)
	x3.Mod(x3, mod)

	y3 := new(big.Int).Mul(big.NewInt(3), w)
	y3.Mul(y3, p.X)
	y3.Mod(y3, mod)
	tmp := new(big.Int).Mul(big.NewInt(2), yyz)
	tmp.Mod(tmp, mod)
	y3.Sub(y3, tmp)
	y3.Mod(y3, mod)
	y3.Mul(y3, big.NewInt(4))
	y3.Mul(y3, yyz)
	y3.Mod(y3, mod)
	y3.Sub(y3, www)
	y3.Mod(y3, mod)

	z3 := new(big.Int).Mul(yz, yz)
	z3.Mod(z3, mod)
	z3.Mul(z3, yz)
	z3.Mod(z3, mod)
	z3.Mul(z3, big.NewInt(8))
	z3.Mod(z3, mod)

	return &Point{Curve: p.Curve, X: x3, Y: y3, Z: z3}
}

// addGeneral implements RFC 6090 section 3's general addition law, given
// u = y2*z1 - y1*z2 and v = x2*z1 - x1*z2 already reduced mod p.
func addGeneral(p, q *Point, u, v *big.Int) *Point {
	mod := p.Curve.Prime()

	uu := new(big.Int).Mul(u, u)
	uu.Mod(uu, mod)
	uuu := new(big.Int).Mul(u, uu)
	uuu.Mod(uuu, mod)
	vv := new(big.Int).Mul(v, v)
	vv.Mod(vv, mod)
	vvv := new(big.Int).Mul(v, vv)
	vvv.Mod(vvv, mod)

	x1vv := new(big.Int).Mul(p.X, vv)
	x1vv.Mod(x1vv, mod)

	r := new(big.Int).Mul(p.Z, uu)
	r.Mod(r, mod)
	t := new(big.Int).Mul(big.NewInt(2), x1vv)
	t.Mod(t, mod)
	r.Sub(r, t)
	r.Mod(r, mod)
	r.Mul(r, q.Z)
	r.Mod(r, mod)
	r.Sub(r, vvv)
	r.Mod(r, mod)
	x3 := new(big.Int).Mul(v, r)
	x3.Mod(x3, mod)

	y3 := new(big.Int).Mul(big.NewInt(3), u)
	y3.Mul(y3, x1vv)
	y3.Mod(y3, mod)
	t.Mul(p.Y, vvv)
	t.Mod(t, mod)
	y3.Sub(y3, t)
	y3.Mod(y3, mod)
	t.Mul(p.Z, uuu)
	t.Mod(t, mod)
	y3.Sub(y3, t)
	y3.Mod(y3, mod)
	y3.Mul(y3, q.Z)
	y3.Mod(y3, mod)
	t.Mul(u, vvv)
	t.Mod(t, mod)
	y3.Add(y3, t)
	y3.Mod(y3, mod)

	z3 := new(big.Int).Mul(vvv, p.Z)
	z3.Mod(z3, mod)
	z3.Mul(z3, q.Z)
	z3.Mod(z3, mod)

	return &Point{Curve: p.Curve, X: x3, Y: y3, Z: z3}
}
