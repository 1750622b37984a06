// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package sec1 implements the SEC 1 point encoding: an uncompressed
// 0x04 || X || Y form and a compressed 0x02/0x03 || X form, each
// coordinate a big-endian fixed-width integer.
package sec1

import (
	"encoding/hex"
	"fmt"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/internal/errs"
	"github.com/bytemare/curve/point"
)

const (
	tagUncompressed byte = 0x04
	tagEven         byte = 0x02
	tagOdd          byte = 0x03
)

func width(c *curve.Curve) int {
	return (c.Bits() + 7) / 8
}

// Encode renders p in SEC1 form: uncompressed if compressed is false,
// otherwise the single-coordinate compressed form with a sign-bit tag.
// It rejects the identity, which SEC1 has no encoding for.
func Encode(p *point.Point, compressed bool) ([]byte, error) {
	if p.IsIdentity() {
		return nil, fmt.Errorf("%w: cannot encode the identity in SEC1 form", errs.ErrInvalidPoint)
	}

	l := width(p.Curve())
	primary := p.Primary()
	secondary := p.Secondary()

	if compressed {
		tag := tagEven
		if secondary.Bit(0) == 1 {
			tag = tagOdd
		}

		out := make([]byte, 0, 1+l)
		out = append(out, tag)
		out = append(out, bignum.LEnc(primary, l, false)...)

		return out, nil
	}

	out := make([]byte, 0, 1+2*l)
	out = append(out, tagUncompressed)
	out = append(out, bignum.LEnc(primary, l, false)...)
	out = append(out, bignum.LEnc(secondary, l, false)...)

	return out, nil
}

// Decode parses a SEC1-encoded point on c. For the uncompressed form it
// constructs the point directly from its wire coordinates; for Edwards
// curves the wire order (primary, secondary) is (y, x), so the affine
// constructor is handed the coordinates swapped. For the compressed
// form it recovers the point from its primary coordinate and the sign
// bit carried in the tag. Every path rejects a result that fails the
// curve equation.
func Decode(c *curve.Curve, data []byte) (*point.Point, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: empty input", errs.ErrInvalidEncoding)
	}

	l := width(c)
	tag := data[0]

	var p *point.Point

	switch tag {
	case tagUncompressed:
		if len(data) != 1+2*l {
			return nil, fmt.Errorf("%w: want %d bytes for uncompressed %s, got %d", errs.ErrInvalidEncoding, 1+2*l, c.Name, len(data))
		}

		primary := bignum.LDec(data[1:1+l], false)
		secondary := bignum.LDec(data[1+l:1+2*l], false)

		if c.Family == curve.Weierstrass {
			p = point.FromCoords(c, primary, secondary)
		} else {
			p = point.FromCoords(c, secondary, primary)
		}

	case tagEven, tagOdd:
		if len(data) != 1+l {
			return nil, fmt.Errorf("%w: want %d bytes for compressed %s, got %d", errs.ErrInvalidEncoding, 1+l, c.Name, len(data))
		}

		primary := bignum.LDec(data[1:1+l], false)
		bit := uint(tag & 1)

		var err error
		p, err = point.Recover(c, primary, bit)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: unrecognized tag byte 0x%02x", errs.ErrInvalidEncoding, tag)
	}

	if !p.IsValid() {
		return nil, errs.ErrInvalidPoint
	}

	return p, nil
}

// Hex returns the hexadecimal encoding of p's SEC1 form.
func Hex(p *point.Point, compressed bool) (string, error) {
	b, err := Encode(p, compressed)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// DecodeHex decodes a hex-encoded SEC1 form on c.
func DecodeHex(c *curve.Curve, h string) (*point.Point, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
	}

	return Decode(c, b)
}
