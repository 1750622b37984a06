// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package eddsa

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

// Only curves whose bit length is not a multiple of 8 have a free top
// bit for this codec: edwards25519 and secp521r1. The edwards448 prime
// has its top bit set, so its 448-bit coordinates fill their bytes
// exactly and leave no room for the sign flag.
var availableCurves = []*curve.Curve{
	curve.Edwards25519,
	curve.SECP521R1,
}

func TestAvailable_OnlyNonByteAlignedCurves(t *testing.T) {
	assert.True(t, Available(curve.Edwards25519))
	assert.True(t, Available(curve.SECP521R1))
	assert.False(t, Available(curve.Edwards448))
	assert.False(t, Available(curve.SECP256R1))
	assert.False(t, Available(curve.BrainpoolP256r1))
}

func TestEncode_Edwards25519Generator(t *testing.T) {
	b, err := Encode(point.Generator(curve.Edwards25519))
	require.NoError(t, err)
	assert.Equal(t, "5866666666666666666666666666666666666666666666666666666666666666", hex.EncodeToString(b))
}

func TestEncode_RejectsByteAlignedCurve(t *testing.T) {
	_, err := Encode(point.Generator(curve.SECP256R1))
	assert.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestRoundTrip_EveryAvailableCurve(t *testing.T) {
	for _, c := range availableCurves {
		for _, k := range []int64{1, 2, 3, 5, 7} {
			g := point.Generator(c).Multiply(big.NewInt(k))

			encoded, err := Encode(g)
			require.NoError(t, err, c.Name)

			decoded, err := Decode(c, encoded)
			require.NoError(t, err, c.Name)
			assert.True(t, decoded.Equal(g), c.Name)
		}
	}
}

func TestDecode_RejectsWrongLength(t *testing.T) {
	c := curve.Edwards25519
	b, err := Encode(point.Generator(c))
	require.NoError(t, err)

	_, err = Decode(c, b[:len(b)-1])
	assert.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestHex_RoundTrips(t *testing.T) {
	c := curve.SECP521R1
	g := point.Generator(c)

	h, err := Hex(g)
	require.NoError(t, err)

	decoded, err := DecodeHex(c, h)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(g))
}
