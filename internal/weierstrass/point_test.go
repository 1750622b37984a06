// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package weierstrass

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/curve/internal/params"
)

func mulByDoubling(p *Point, k int) *Point {
	r := Identity(p.Curve)
	acc := p

	for k > 0 {
		if k&1 == 1 {
			r = Add(r, acc)
		}

		acc = double(acc)
		k >>= 1
	}

	return r
}

func TestGenerator_IsValid(t *testing.T) {
	for _, c := range []*params.Curve{params.SECP256R1, params.SECP384R1, params.SECP521R1, params.BrainpoolP256r1} {
		g := Generator(c)
		assert.True(t, g.IsValid(), "%s generator should satisfy the curve equation", c.Name)
	}
}

func TestIdentity_IsNeverValid(t *testing.T) {
	id := Identity(params.SECP256R1)
	assert.False(t, id.IsValid())
	assert.True(t, id.IsIdentity())
}

func TestAdd_IdentityIsNeutral(t *testing.T) {
	c := params.SECP256R1
	g := Generator(c)
	id := Identity(c)

	require.True(t, Add(g, id).Equal(g))
	require.True(t, Add(id, g).Equal(g))
}

func TestAdd_PointPlusNegationIsIdentity(t *testing.T) {
	c := params.SECP256R1
	g := Generator(c)

	sum := Add(g, g.Negate())
	assert.True(t, sum.IsIdentity())
}

func TestAdd_Commutative(t *testing.T) {
	c := params.SECP256R1
	g := Generator(c)
	h := mulByDoubling(g, 7)

	assert.True(t, Add(g, h).Equal(Add(h, g)))
}

func TestAdd_MatchesRepeatedDoubling(t *testing.T) {
	c := params.SECP256R1
	g := Generator(c)

	fivefold := Add(Add(Add(Add(g, g), g), g), g)
	assert.True(t, fivefold.Equal(mulByDoubling(g, 5)))
}

func TestRecover_RoundTrips(t *testing.T) {
	c := params.SECP256R1
	g := Generator(c)
	x, y := g.Affine()

	recovered, ok := Recover(c, x, uint(y.Bit(0)))
	require.True(t, ok)
	assert.True(t, recovered.Equal(g))
}

func TestRecover_RejectsNonResidue(t *testing.T) {
	c := params.SECP256R1
	bogus := new(big.Int).Sub(c.Prime(), big.NewInt(1))

	_, ok := Recover(c, bogus, 0)
	assert.False(t, ok)
}
