// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package eddsa

import (
	"math/big"
	"testing"

	ref "filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/point"
)

// filippo.io/edwards25519 emits the same 32-byte little-endian
// y-with-sign form this codec produces, so its fixed-curve scalar
// multiplication doubles as an independent oracle for the generic
// edwards25519 arithmetic.
func TestEncode_MatchesFilippoEdwards25519(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 5, 7, 104729} {
		kb := bignum.LEnc(big.NewInt(k), 32, true)

		s, err := ref.NewScalar().SetCanonicalBytes(kb)
		require.NoError(t, err)

		want := ref.NewGeneratorPoint().ScalarBaseMult(s).Bytes()

		g := point.Generator(curve.Edwards25519).Multiply(big.NewInt(k))
		got, err := Encode(g)
		require.NoError(t, err)

		assert.Equal(t, want, got, "k=%d", k)
	}
}
