// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curvemath implements the family-agnostic Point abstraction
// the public curve and codec packages build on: a thin interface over
// internal/weierstrass and internal/edwards, plus the Montgomery-ladder-
// shaped scalar multiplication and rejection-sampled private key
// generation shared by every curve.
package curvemath

import (
	"io"
	"math/big"

	"github.com/bytemare/curve/internal/edwards"
	"github.com/bytemare/curve/internal/params"
	"github.com/bytemare/curve/internal/weierstrass"
)

// Point is a point on some registered curve, regardless of family. The
// zero value is not meaningful; obtain one from Identity, Generator,
// FromCoords, or Recover.
type Point struct {
	curve *params.Curve
	w     *weierstrass.Point
	e     *edwards.Point
}

// Curve returns the curve p belongs to.
func (p *Point) Curve() *params.Curve { return p.curve }

// Identity returns the neutral element of curve's group.
func Identity(curve *params.Curve) *Point {
	if curve.Family == params.Weierstrass {
		return &Point{curve: curve, w: weierstrass.Identity(curve)}
	}

	return &Point{curve: curve, e: edwards.Identity(curve)}
}

// Generator returns curve's canonical base point.
func Generator(curve *params.Curve) *Point {
	if curve.Family == params.Weierstrass {
		return &Point{curve: curve, w: weierstrass.Generator(curve)}
	}

	return &Point{curve: curve, e: edwards.Generator(curve)}
}

// FromCoords builds a point directly from affine coordinates, in (x, y)
// order regardless of family. It does not check validity.
func FromCoords(curve *params.Curve, x, y *big.Int) *Point {
	if curve.Family == params.Weierstrass {
		return &Point{curve: curve, w: weierstrass.FromAffine(curve, x, y)}
	}

	return &Point{curve: curve, e: edwards.FromAffine(curve, x, y)}
}

// Recover reconstructs a point from its primary coordinate (x for
// Weierstrass, y for Edwards) and the low bit of the secondary
// coordinate, failing if primary does not correspond to a curve point.
func Recover(curve *params.Curve, primary *big.Int, bit uint) (*Point, bool) {
	if curve.Family == params.Weierstrass {
		w, ok := weierstrass.Recover(curve, primary, bit)
		if !ok {
			return nil, false
		}

		return &Point{curve: curve, w: w}, true
	}

	e, ok := edwards.Recover(curve, primary, bit)
	if !ok {
		return nil, false
	}

	return &Point{curve: curve, e: e}, true
}

// IsIdentity reports whether p is the group's neutral element.
func (p *Point) IsIdentity() bool {
	if p.w != nil {
		return p.w.IsIdentity()
	}

	return p.e.IsIdentity()
}

// IsValid reports whether p is a proper point on its curve. The
// identity is never valid, for either curve family.
func (p *Point) IsValid() bool {
	if p.w != nil {
		return p.w.IsValid()
	}

	return p.e.IsValid()
}

// XY returns the affine (x, y) coordinates of p.
func (p *Point) XY() (x, y *big.Int) {
	if p.w != nil {
		return p.w.Affine()
	}

	return p.e.Affine()
}

// Primary returns the coordinate a compressed encoding is built around:
// x for Weierstrass curves, y for Edwards curves.
func (p *Point) Primary() *big.Int {
	x, y := p.XY()
	if p.w != nil {
		return x
	}

	return y
}

// Secondary returns the coordinate a compressed encoding's sign bit is
// drawn from: y for Weierstrass curves, x for Edwards curves.
func (p *Point) Secondary() *big.Int {
	x, y := p.XY()
	if p.w != nil {
		return y
	}

	return x
}

// Negate returns -p.
func (p *Point) Negate() *Point {
	if p.w != nil {
		return &Point{curve: p.curve, w: p.w.Negate()}
	}

	return &Point{curve: p.curve, e: p.e.Negate()}
}

// Equal reports whether p and q denote the same point, by
// cross-multiplying their stored projective or extended coordinates
// rather than normalizing either point first.
func (p *Point) Equal(q *Point) bool {
	if p.curve != q.curve {
		return false
	}

	if p.w != nil {
		return p.w.Equal(q.w)
	}

	return p.e.Equal(q.e)
}

// Add returns p + q. p and q must belong to the same curve.
func Add(p, q *Point) *Point {
	if p.w != nil {
		return &Point{curve: p.curve, w: weierstrass.Add(p.w, q.w)}
	}

	return &Point{curve: p.curve, e: edwards.Add(p.e, q.e)}
}

// double returns p + p.
func double(p *Point) *Point {
	if p.w != nil {
		return &Point{curve: p.curve, w: weierstrass.Add(p.w, p.w)}
	}

	return &Point{curve: p.curve, e: edwards.Double(p.e)}
}

// Multiply returns scalar * p, via a Montgomery-ladder-shaped double-
// and-add that walks the curve's fixed bit length from its top bit down
// to its lowest. This is not constant time: it branches on scalar bits
// like any ordinary double-and-add, and the big-integer arithmetic
// underneath is variable-time anyway.
func Multiply(p *Point, scalar *big.Int) *Point {
	bits := p.curve.Bits()

	r0 := Identity(p.curve)
	r1 := p

	for i := bits - 1; i >= 0; i-- {
		if scalar.Bit(i) == 0 {
			r1 = Add(r0, r1)
			r0 = double(r0)
		} else {
			r0 = Add(r0, r1)
			r1 = double(r1)
		}
	}

	return r0
}

// PrivateKey draws a uniformly random scalar in [1, order) by rejection
// sampling: it reads ByteLen(order) bytes from random, masks off any
// excess high bits, and retries on 0 or on a value at or above the
// group order. It never reduces a sample modulo the order, which would
// bias the low end of the range.
func PrivateKey(curve *params.Curve, random io.Reader) (*big.Int, error) {
	order := curve.Order()
	scalarField := curve.ScalarField()
	byteLen := scalarField.ByteLen()
	bitLen := scalarField.BitLen()

	excess := byteLen*8 - bitLen
	mask := byte(0xff >> excess)

	buf := make([]byte, byteLen)

	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, err
		}

		buf[0] &= mask

		k := new(big.Int).SetBytes(buf)
		if k.Sign() == 0 || k.Cmp(order) >= 0 {
			continue
		}

		return k, nil
	}
}
