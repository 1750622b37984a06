// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sec1

import (
	"math/big"
	"testing"

	"filippo.io/nistec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/point"
)

// The nistec backends speak the same SEC1 wire format, so their
// fixed-curve scalar multiplication doubles as an independent oracle
// for the generic arithmetic on the three curves both sides implement.

func scalarBytes(k int64, l int) []byte {
	out := make([]byte, l)
	big.NewInt(k).FillBytes(out)

	return out
}

func TestEncode_MatchesNistecP256(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 5, 7} {
		ref, err := nistec.NewP256Point().ScalarBaseMult(scalarBytes(k, 32))
		require.NoError(t, err)

		g := point.Generator(curve.SECP256R1).Multiply(big.NewInt(k))

		uncompressed, err := Encode(g, false)
		require.NoError(t, err)
		assert.Equal(t, ref.Bytes(), uncompressed, "k=%d", k)

		compressed, err := Encode(g, true)
		require.NoError(t, err)
		assert.Equal(t, ref.BytesCompressed(), compressed, "k=%d", k)
	}
}

func TestEncode_MatchesNistecP384(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 5, 7} {
		ref, err := nistec.NewP384Point().ScalarBaseMult(scalarBytes(k, 48))
		require.NoError(t, err)

		g := point.Generator(curve.SECP384R1).Multiply(big.NewInt(k))

		uncompressed, err := Encode(g, false)
		require.NoError(t, err)
		assert.Equal(t, ref.Bytes(), uncompressed, "k=%d", k)

		compressed, err := Encode(g, true)
		require.NoError(t, err)
		assert.Equal(t, ref.BytesCompressed(), compressed, "k=%d", k)
	}
}

func TestEncode_MatchesNistecP521(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 5, 7} {
		ref, err := nistec.NewP521Point().ScalarBaseMult(scalarBytes(k, 66))
		require.NoError(t, err)

		g := point.Generator(curve.SECP521R1).Multiply(big.NewInt(k))

		uncompressed, err := Encode(g, false)
		require.NoError(t, err)
		assert.Equal(t, ref.Bytes(), uncompressed, "k=%d", k)

		compressed, err := Encode(g, true)
		require.NoError(t, err)
		assert.Equal(t, ref.BytesCompressed(), compressed, "k=%d", k)
	}
}
