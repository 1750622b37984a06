// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package point

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bytemare/curve/curve"
)

// The algebraic laws every supported curve's group must satisfy.
func TestAlgebraicLaws(t *testing.T) {
	allCurves := []*curve.Curve{
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

	for _, c := range allCurves {
		g := Generator(c)
		k := big.NewInt(17)
		m := big.NewInt(23)

		assert.True(t, g.Multiply(big.NewInt(0)).IsIdentity(), "%s: G*0 = identity", c.Name)
		assert.True(t, g.Multiply(big.NewInt(1)).Equal(g), "%s: G*1 = G", c.Name)
		assert.True(t, g.Add(g.Multiply(big.NewInt(0))).Equal(g), "%s: G + G*0 = G", c.Name)
		assert.True(t, g.Add(g).Equal(g.Multiply(big.NewInt(2))), "%s: G+G = G*2", c.Name)
		assert.True(t, g.Multiply(big.NewInt(2)).Add(g).Equal(g.Multiply(big.NewInt(3))), "%s: (G*2)+G = G*3", c.Name)
		assert.True(t, g.Multiply(big.NewInt(2)).Subtract(g).Equal(g), "%s: (G*2)-G = G", c.Name)
		assert.True(t, g.Multiply(big.NewInt(6)).Divide(big.NewInt(3)).Equal(g.Multiply(big.NewInt(2))), "%s: (G*6)/3 = G*2", c.Name)
		assert.True(t, g.Multiply(k).Multiply(m).Equal(g.Multiply(m).Multiply(k)), "%s: (k*G)*m = (m*G)*k", c.Name)
		assert.True(t, g.Multiply(c.Order()).IsIdentity(), "%s: n*G = identity", c.Name)

		id := Identity(c)
		assert.False(t, id.IsValid(), "%s: identity.is_valid == false", c.Name)
		assert.True(t, id.Negate().Equal(id), "%s: -identity == identity", c.Name)
	}
}
