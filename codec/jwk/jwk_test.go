// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package jwk

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/errs"
	"github.com/bytemare/curve/point"
)

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad hex literal: " + s)
	}

	return n
}

func TestEncode_SECP256R1Vector(t *testing.T) {
	c := curve.SECP256R1
	k := hexInt("D3F3716913D4310A0026DE741B3F18893AFC8114F0C84682BA677E313A13988A")

	g := point.Generator(c).Multiply(k)

	j, err := Encode(g, nil)
	require.NoError(t, err)

	assert.Equal(t, "EC", j.Kty)
	assert.Equal(t, "P-256", j.Crv)
	assert.Equal(t, "gI0GAILBdu7T53akrFmMyGcsF3n5dO7MmwNBHKW5SV0", j.X)
	assert.Equal(t, "SLW_xSffzlPWrHEVI30DHM_4egVwt3NQqeUD7nMFpps", j.Y)
}

func TestRoundTrip_ThreeNISTPCurves(t *testing.T) {
	for _, c := range []*curve.Curve{curve.SECP256R1, curve.SECP384R1, curve.SECP521R1} {
		for _, k := range []int64{1, 2, 3, 5, 7} {
			g := point.Generator(c).Multiply(big.NewInt(k))

			j, err := Encode(g, nil)
			require.NoError(t, err, c.Name)

			decoded, prv, err := Decode(j)
			require.NoError(t, err, c.Name)
			assert.Nil(t, prv)
			assert.True(t, decoded.Equal(g), c.Name)
		}
	}
}

func TestRoundTrip_WithPrivateScalar(t *testing.T) {
	c := curve.SECP256R1
	prv := big.NewInt(424242)
	g := point.Generator(c).Multiply(prv)

	b, err := Marshal(g, prv)
	require.NoError(t, err)

	decoded, d, err := Unmarshal(b)
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.True(t, decoded.Equal(g))
	assert.Equal(t, 0, prv.Cmp(d))
}

func TestEncode_RejectsNonNISTPCurve(t *testing.T) {
	_, err := Encode(point.Generator(curve.Edwards25519), nil)
	assert.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestEncode_RejectsIdentity(t *testing.T) {
	_, err := Encode(point.Identity(curve.SECP256R1), nil)
	assert.ErrorIs(t, err, errs.ErrInvalidPoint)
}

func TestDecode_RejectsUnknownKty(t *testing.T) {
	_, _, err := Decode(&JWK{Kty: "RSA", Crv: "P-256", X: "x", Y: "y"})
	assert.ErrorIs(t, err, errs.ErrInvalidEncoding)
}
