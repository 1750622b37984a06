// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package point implements the uniform group contract every curve in
// this module exposes: construction, validity, negation, addition,
// scalar multiplication, equality, and the primary/secondary coordinate
// accessors the wire codecs address points through.
package point

import (
	"fmt"
	"io"
	"math/big"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/internal/curvemath"
	"github.com/bytemare/curve/internal/errs"
)

// Point is a point on a registered curve. The zero value is not
// meaningful; obtain a Point from Identity, Generator, FromCoords, or
// Recover.
type Point struct {
	p *curvemath.Point
}

func wrap(p *curvemath.Point) *Point { return &Point{p: p} }

// Identity returns the neutral element of c's group.
func Identity(c *curve.Curve) *Point { return wrap(curvemath.Identity(c)) }

// Generator returns c's canonical base point.
func Generator(c *curve.Curve) *Point { return wrap(curvemath.Generator(c)) }

// FromCoords builds a point directly from its affine (x, y)
// coordinates. It does not validate the result; callers that need a
// checked point should call IsValid.
func FromCoords(c *curve.Curve, x, y *big.Int) *Point {
	return wrap(curvemath.FromCoords(c, x, y))
}

// Recover reconstructs a point from its primary coordinate (x for
// Weierstrass curves, y for Edwards curves) and the low bit of the
// secondary coordinate. It fails with errs.ErrInvalidPoint if primary
// does not correspond to a point on the curve.
func Recover(c *curve.Curve, primary *big.Int, bit uint) (*Point, error) {
	p, ok := curvemath.Recover(c, primary, bit)
	if !ok {
		return nil, errs.ErrInvalidPoint
	}

	return wrap(p), nil
}

// Curve returns the curve p belongs to.
func (p *Point) Curve() *curve.Curve { return p.p.Curve() }

// Bits returns p's curve's fixed bit length.
func (p *Point) Bits() int { return p.p.Curve().Bits() }

// Order returns p's curve's group order.
func (p *Point) Order() *big.Int { return p.p.Curve().Order() }

// IsIdentity reports whether p is the neutral element.
func (p *Point) IsIdentity() bool { return p.p.IsIdentity() }

// IsValid reports whether p is a proper point on its curve. The
// identity is never valid, for either curve family.
func (p *Point) IsValid() bool { return p.p.IsValid() }

// X returns p's affine x coordinate.
func (p *Point) X() *big.Int {
	x, _ := p.p.XY()
	return x
}

// Y returns p's affine y coordinate.
func (p *Point) Y() *big.Int {
	_, y := p.p.XY()
	return y
}

// Primary returns the coordinate the wire codecs build a compressed
// encoding around: x for Weierstrass curves, y for Edwards curves.
func (p *Point) Primary() *big.Int { return p.p.Primary() }

// Secondary returns the coordinate the wire codecs draw a sign bit
// from: y for Weierstrass curves, x for Edwards curves.
func (p *Point) Secondary() *big.Int { return p.p.Secondary() }

// Add returns p + q. p and q must belong to the same curve.
func (p *Point) Add(q *Point) *Point { return wrap(curvemath.Add(p.p, q.p)) }

// Negate returns -p.
func (p *Point) Negate() *Point { return wrap(p.p.Negate()) }

// Subtract returns p - q.
func (p *Point) Subtract(q *Point) *Point { return p.Add(q.Negate()) }

// Equal reports whether p and q denote the same point on the same
// curve.
func (p *Point) Equal(q *Point) bool { return p.p.Equal(q.p) }

// Multiply returns scalar * p via a Montgomery-ladder-shaped double-
// and-add over the curve's fixed bit length. Multiplying by zero
// yields the identity. This is not constant time.
func (p *Point) Multiply(scalar *big.Int) *Point {
	return wrap(curvemath.Multiply(p.p, scalar))
}

// Divide returns p * scalar^-1 mod the curve order, the group analogue
// of division by a scalar.
func (p *Point) Divide(scalar *big.Int) *Point {
	inv := bignum.Inv(scalar, p.p.Curve().Order())
	return p.Multiply(inv)
}

// PrivateKey draws a private scalar uniformly from [1, n) by rejection
// sampling against c's group order n, reading candidate bytes from
// random and retrying on an out-of-range draw. It never reduces a
// sample modulo n.
func PrivateKey(c *curve.Curve, random io.Reader) (*big.Int, error) {
	return curvemath.PrivateKey(c, random)
}

// String renders p as "<curve-name>(<hex X>, <hex Y>)", or
// "<curve-name>(∞)" for the identity.
func (p *Point) String() string {
	if p.p.IsIdentity() {
		return fmt.Sprintf("%s(∞)", p.p.Curve().Name)
	}

	x, y := p.p.XY()

	return fmt.Sprintf("%s(%s, %s)", p.p.Curve().Name, x.Text(16), y.Text(16))
}
