// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sec1

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/curve/curve"
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

func TestEncode_Edwards25519CompressedGenerator(t *testing.T) {
	b, err := Encode(point.Generator(curve.Edwards25519), true)
	require.NoError(t, err)
	assert.Equal(t, "026666666666666666666666666666666666666666666666666666666666666658", hex.EncodeToString(b))
}

func TestEncode_Edwards25519UncompressedGenerator(t *testing.T) {
	b, err := Encode(point.Generator(curve.Edwards25519), false)
	require.NoError(t, err)
	assert.Equal(t,
		"046666666666666666666666666666666666666666666666666666666666666658216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a",
		hex.EncodeToString(b))
}

func TestEncode_RejectsIdentity(t *testing.T) {
	_, err := Encode(point.Identity(curve.Edwards25519), true)
	assert.Error(t, err)
}

func TestRoundTrip_CompressedAndUncompressed(t *testing.T) {
	for _, c := range testCurves {
		for _, k := range []int64{1, 2, 3, 5, 7} {
			g := point.Generator(c).Multiply(big.NewInt(k))

			compressed, err := Encode(g, true)
			require.NoError(t, err, c.Name)

			decoded, err := Decode(c, compressed)
			require.NoError(t, err, c.Name)
			assert.True(t, decoded.Equal(g), "%s compressed k=%d", c.Name, k)

			uncompressed, err := Encode(g, false)
			require.NoError(t, err, c.Name)

			decoded2, err := Decode(c, uncompressed)
			require.NoError(t, err, c.Name)
			assert.True(t, decoded2.Equal(g), "%s uncompressed k=%d", c.Name, k)
		}
	}
}

func TestDecode_RejectsUnknownTag(t *testing.T) {
	c := curve.SECP256R1
	b, err := Encode(point.Generator(c), true)
	require.NoError(t, err)

	b[0] = 0x07

	_, err = Decode(c, b)
	assert.Error(t, err)
}

func TestDecode_RejectsWrongLength(t *testing.T) {
	c := curve.SECP256R1
	b, err := Encode(point.Generator(c), true)
	require.NoError(t, err)

	_, err = Decode(c, b[:len(b)-1])
	assert.Error(t, err)
}

func TestHex_RoundTrips(t *testing.T) {
	c := curve.SECP256R1
	g := point.Generator(c)

	h, err := Hex(g, true)
	require.NoError(t, err)

	decoded, err := DecodeHex(c, h)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(g))
}
