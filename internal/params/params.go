// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package params holds the static, immutable parameter table for every
// curve the library supports: the field prime, group order, cofactor,
// curve coefficients, generator, and the names it can be looked up by.
package params

import (
	"math/big"

	"github.com/bytemare/curve/internal/field"
)

// Family distinguishes the two group-law shapes the library implements.
type Family int

const (
	// Weierstrass marks a short Weierstrass curve: y^2 = x^3 + a*x + b.
	Weierstrass Family = iota

	// TwistedEdwards marks a twisted Edwards curve: a*x^2 + y^2 = 1 + d*x^2*y^2.
	TwistedEdwards
)

// Curve is the immutable, per-curve parameter record every group-law
// package is generic over. Curve values are built once at package init
// and shared read-only; no field is ever mutated after construction.
type Curve struct {
	Name     string
	Aliases  []string
	Family   Family
	field    field.Field
	order    field.Field
	Cofactor uint64

	// A, B are the Weierstrass coefficients a, b when Family ==
	// Weierstrass, or the Edwards coefficients a, d when Family ==
	// TwistedEdwards.
	A, B *big.Int

	Gx, Gy *big.Int

	bits int
}

// New builds a Curve parameter record. prime and order are parsed with
// field.String2Int so callers can write either decimal or "0x..." hex
// literals.
func New(name string, aliases []string, family Family, prime, order string, a, b, gx, gy string, cofactor uint64) *Curve {
	p := field.String2Int(prime)
	n := field.String2Int(order)

	c := &Curve{
		Name:     name,
		Aliases:  aliases,
		Family:   family,
		field:    field.New(p),
		order:    field.New(n),
		Cofactor: cofactor,
		A:        new(big.Int).Mod(field.String2Int(a), p),
		B:        new(big.Int).Mod(field.String2Int(b), p),
		Gx:       field.String2Int(gx),
		Gy:       field.String2Int(gy),
	}

	c.bits = p.BitLen()

	// Edwards curves whose prime leaves the top bit of its last byte
	// clear (edwards25519) report that byte width in bits minus one,
	// freeing the top bit for the EdDSA-style codec's sign flag. The
	// edwards448 prime fills its 56 bytes, so it keeps all 448 bits.
	if family == TwistedEdwards {
		topBitClear := true
		byteLen := (p.BitLen() + 7) / 8
		if p.BitLen()%8 == 0 {
			topBitClear = false
		} else {
			mask := new(big.Int).Lsh(big.NewInt(1), uint(byteLen*8-1))
			topBitClear = new(big.Int).And(p, mask).Sign() == 0
		}

		if topBitClear {
			c.bits = byteLen*8 - 1
		}
	}

	return c
}

// Prime returns the field modulus p.
func (c *Curve) Prime() *big.Int { return c.field.Order() }

// Order returns the group order n.
func (c *Curve) Order() *big.Int { return c.order.Order() }

// Field returns the curve's base field.
func (c *Curve) Field() field.Field { return c.field }

// ScalarField returns the curve's scalar (order) field.
func (c *Curve) ScalarField() field.Field { return c.order }

// Bits returns the curve's bit length: the bit length of p, except for
// an Edwards curve whose p leaves the top bit of its last byte clear,
// which reports that byte width in bits minus one (255 for edwards25519).
func (c *Curve) Bits() int { return c.bits }
