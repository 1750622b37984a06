// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curve is the public registry of elliptic-curve groups this
// module implements: five NIST short Weierstrass curves, seven
// Brainpool short Weierstrass curves, and three twisted Edwards curves.
// Every curve is a shared, immutable parameter record; there is no
// per-curve type, only a value identifying which parameter set a
// point package operation runs against.
//
// A minimal ECDH-style exchange looks like:
//
//	c := curve.SECP256R1
//	aPriv, _ := point.PrivateKey(c, rand.Reader)
//	bPriv, _ := point.PrivateKey(c, rand.Reader)
//	aPub := point.Generator(c).Multiply(aPriv)
//	bPub := point.Generator(c).Multiply(bPriv)
//	sharedA := bPub.Multiply(aPriv)
//	sharedB := aPub.Multiply(bPriv)
//	// sharedA.Equal(sharedB) is true.
package curve

import (
	"fmt"

	"github.com/bytemare/curve/internal/errs"
	"github.com/bytemare/curve/internal/params"
)

// Curve identifies one elliptic-curve group: its field prime, order,
// cofactor, coefficients, generator, and lookup names. Curve values are
// immutable and shared; obtain one from the package variables below or
// from Find.
type Curve = params.Curve

// Family distinguishes the short Weierstrass and twisted Edwards group
// law shapes.
type Family = params.Family

const (
	// Weierstrass marks a short Weierstrass curve.
	Weierstrass = params.Weierstrass

	// TwistedEdwards marks a twisted Edwards curve.
	TwistedEdwards = params.TwistedEdwards
)

// The fifteen curves this module implements.
var (
	SECP192R1 = params.SECP192R1
	SECP224R1 = params.SECP224R1
	SECP256R1 = params.SECP256R1
	SECP384R1 = params.SECP384R1
	SECP521R1 = params.SECP521R1

	BrainpoolP160r1 = params.BrainpoolP160r1
	BrainpoolP192r1 = params.BrainpoolP192r1
	BrainpoolP224r1 = params.BrainpoolP224r1
	BrainpoolP256r1 = params.BrainpoolP256r1
	BrainpoolP320r1 = params.BrainpoolP320r1
	BrainpoolP384r1 = params.BrainpoolP384r1
	BrainpoolP512r1 = params.BrainpoolP512r1

	Edwards25519 = params.Edwards25519
	Edwards448   = params.Edwards448
	MDC201601    = params.MDC201601
)

// Find returns the curve matching id, which may be a canonical name
// (e.g. "secp256r1"), a NIST shorthand ("P-256", "P256"), a dotted OID
// ("1.2.840.10045.3.1.7"), or a short alias ("ed25519"). It returns
// errs.ErrUnknownCurve if nothing matches.
func Find(id string) (*Curve, error) {
	c := params.Find(id)
	if c == nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownCurve, id)
	}

	return c, nil
}

// Supported lists the canonical name of every registered curve.
func Supported() []string {
	names := make([]string, len(params.All))
	for i, c := range params.All {
		names[i] = c.Name
	}

	return names
}
