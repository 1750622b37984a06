// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cfrg

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/errs"
	"github.com/bytemare/curve/point"
)

var testCurves = []*curve.Curve{
	curve.SECP192R1,
	curve.SECP224R1,
	curve.SECP256R1,
	curve.SECP384R1,
	curve.SECP521R1,
	curve.BrainpoolP160r1,
	curve.BrainpoolP192r1,
	curve.BrainpoolP224r1,
	curve.BrainpoolP256r1,
	curve.BrainpoolP320r1,
	curve.BrainpoolP384r1,
	curve.BrainpoolP512r1,
	curve.Edwards25519,
	curve.Edwards448,
	curve.MDC201601,
}

func TestEncode_Edwards25519Generator(t *testing.T) {
	b := Encode(point.Generator(curve.Edwards25519))
	assert.Equal(t, "586666666666666666666666666666666666666666666666666666666666666600", hex.EncodeToString(b))
}

func TestRoundTrip_EveryCurve(t *testing.T) {
	for _, c := range testCurves {
		for _, k := range []int64{1, 2, 3, 5, 7} {
			g := point.Generator(c).Multiply(bigFromInt(k))

			encoded := Encode(g)
			decoded, err := Decode(c, encoded)
			require.NoError(t, err, c.Name)
			assert.True(t, decoded.Equal(g), c.Name)
		}
	}
}

func TestDecode_RejectsWrongLength(t *testing.T) {
	c := curve.SECP256R1
	b := Encode(point.Generator(c))

	_, err := Decode(c, b[:len(b)-1])
	assert.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestHex_RoundTrips(t *testing.T) {
	c := curve.Edwards25519
	g := point.Generator(c)

	h := Hex(g)

	decoded, err := DecodeHex(c, h)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(g))
}

func bigFromInt(k int64) *big.Int { return big.NewInt(k) }
