// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package cfrg implements the little-endian, fixed-width point encoding
// used by the CFRG elliptic-curve drafts: the primary coordinate packed
// little-endian with the secondary coordinate's sign bit folded into
// the top bit of the last byte.
package cfrg

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/internal/errs"
	"github.com/bytemare/curve/point"
)

// width returns the fixed byte width of c's CFRG encoding: the curve's
// coordinate width plus one byte to hold the sign bit.
func width(c *curve.Curve) int {
	return (c.Bits()+7)/8 + 1
}

func signBit(c *curve.Curve) uint {
	return uint(width(c)*8 - 1)
}

// Encode renders p in CFRG form: the primary coordinate, little-endian,
// with the low bit of the secondary coordinate placed in the top bit of
// the last byte.
func Encode(p *point.Point) []byte {
	c := p.Curve()
	val := new(big.Int).Set(p.Primary())

	if p.Secondary().Bit(0) == 1 {
		val.SetBit(val, int(signBit(c)), 1)
	}

	return bignum.LEnc(val, width(c), true)
}

// Decode parses a CFRG-encoded point on c, recovering it from the
// primary coordinate and the sign bit carried in the top bit of the
// last byte. It rejects input of the wrong length or a primary
// coordinate that does not correspond to a curve point.
func Decode(c *curve.Curve, data []byte) (*point.Point, error) {
	l := width(c)
	if len(data) != l {
		return nil, fmt.Errorf("%w: want %d bytes for %s, got %d", errs.ErrInvalidEncoding, l, c.Name, len(data))
	}

	val := bignum.LDec(data, true)
	bit := uint(0)
	if val.Bit(int(signBit(c))) == 1 {
		bit = 1
	}
	val.SetBit(val, int(signBit(c)), 0)

	p, err := point.Recover(c, val, bit)
	if err != nil {
		return nil, err
	}

	if !p.IsValid() {
		return nil, errs.ErrInvalidPoint
	}

	return p, nil
}

// Hex returns the hexadecimal encoding of p's CFRG form.
func Hex(p *point.Point) string {
	return hex.EncodeToString(Encode(p))
}

// DecodeHex decodes a hex-encoded CFRG form on c.
func DecodeHex(c *curve.Curve, h string) (*point.Point, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
	}

	return Decode(c, b)
}
