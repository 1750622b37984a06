// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package eddsa implements the EdDSA-style point encoding: a little-
// endian packing of the primary coordinate with the secondary
// coordinate's sign bit placed exactly at bit position bits(). It is
// only defined for curves whose bit length is not a multiple of 8,
// since those are the only ones with a free top bit to hold the sign.
package eddsa

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/internal/errs"
	"github.com/bytemare/curve/point"
)

// Available reports whether c has a free top bit for this codec.
func Available(c *curve.Curve) bool {
	return c.Bits()%8 != 0
}

func width(c *curve.Curve) int {
	return (c.Bits() + 7) / 8
}

// Encode renders p in EdDSA-style form. It fails with
// errs.ErrInvalidEncoding if c's bit length is a multiple of 8.
func Encode(p *point.Point) ([]byte, error) {
	c := p.Curve()
	if !Available(c) {
		return nil, fmt.Errorf("%w: %s has no free sign bit for the EdDSA-style encoding", errs.ErrInvalidEncoding, c.Name)
	}

	val := new(big.Int).Set(p.Primary())
	if p.Secondary().Bit(0) == 1 {
		val.SetBit(val, c.Bits(), 1)
	}

	return bignum.LEnc(val, width(c), true), nil
}

// Decode parses an EdDSA-style encoded point on c. The sign bit sits at
// bit position bits() exactly, not at the top of the last byte; a
// decoder that instead masks with (1<<bits())>>bits() recovers the low
// bit of the primary coordinate, not the intended sign flag.
func Decode(c *curve.Curve, data []byte) (*point.Point, error) {
	if !Available(c) {
		return nil, fmt.Errorf("%w: %s has no EdDSA-style encoding", errs.ErrInvalidEncoding, c.Name)
	}

	l := width(c)
	if len(data) != l {
		return nil, fmt.Errorf("%w: want %d bytes for %s, got %d", errs.ErrInvalidEncoding, l, c.Name, len(data))
	}

	val := bignum.LDec(data, true)

	bit := uint(0)
	if val.Bit(c.Bits()) == 1 {
		bit = 1
	}
	val.SetBit(val, c.Bits(), 0)

	p, err := point.Recover(c, val, bit)
	if err != nil {
		return nil, err
	}

	if !p.IsValid() {
		return nil, errs.ErrInvalidPoint
	}

	return p, nil
}

// Hex returns the hexadecimal encoding of p's EdDSA-style form.
func Hex(p *point.Point) (string, error) {
	b, err := Encode(p)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// DecodeHex decodes a hex-encoded EdDSA-style form on c.
func DecodeHex(c *curve.Curve, h string) (*point.Point, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
	}

	return Decode(c, b)
}
