// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package jwk implements the JSON Web Key encoding for the three NIST
// P curves, per RFC 7518: a {kty, crv, x, y, d?} object with big-endian
// fixed-width coordinates, base64url without padding.
package jwk

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/internal/errs"
	"github.com/bytemare/curve/point"
)

var names = map[string]string{
	"secp256r1": "P-256",
	"secp384r1": "P-384",
	"secp521r1": "P-521",
}

// JWK is the JSON Web Key representation of an EC point and, for a
// private key, its scalar.
type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
	D   string `json:"d,omitempty"`
}

func b64Enc(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func b64Dec(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// Encode renders p, and optionally its private scalar prv, as a JWK. It
// fails if p is the identity or does not belong to one of the three
// NIST P curves.
func Encode(p *point.Point, prv *big.Int) (*JWK, error) {
	if p.IsIdentity() {
		return nil, fmt.Errorf("%w: cannot encode the identity as a JWK", errs.ErrInvalidPoint)
	}

	crv, ok := names[p.Curve().Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no JWK curve name", errs.ErrInvalidEncoding, p.Curve().Name)
	}

	l := (p.Curve().Bits() + 7) / 8

	out := &JWK{
		Kty: "EC",
		Crv: crv,
		X:   b64Enc(bignum.LEnc(p.X(), l, false)),
		Y:   b64Enc(bignum.LEnc(p.Y(), l, false)),
	}

	if prv != nil {
		out.D = b64Enc(bignum.LEnc(prv, l, false))
	}

	return out, nil
}

// Marshal renders p (and optionally prv) as JSON-encoded JWK bytes.
func Marshal(p *point.Point, prv *big.Int) ([]byte, error) {
	j, err := Encode(p, prv)
	if err != nil {
		return nil, err
	}

	return json.Marshal(j)
}

// Decode parses a JWK into a point and, if present, its private scalar.
func Decode(j *JWK) (*point.Point, *big.Int, error) {
	if j.Kty != "EC" {
		return nil, nil, fmt.Errorf("%w: unsupported kty %q", errs.ErrInvalidEncoding, j.Kty)
	}

	c, err := curve.Find(j.Crv)
	if err != nil {
		return nil, nil, err
	}

	xb, err := b64Dec(j.X)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
	}

	yb, err := b64Dec(j.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
	}

	x := bignum.LDec(xb, false)
	y := bignum.LDec(yb, false)

	p := point.FromCoords(c, x, y)
	if !p.IsValid() {
		return nil, nil, errs.ErrInvalidPoint
	}

	var d *big.Int
	if j.D != "" {
		db, err := b64Dec(j.D)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
		}

		d = bignum.LDec(db, false)
	}

	return p, d, nil
}

// Unmarshal parses JSON-encoded JWK bytes into a point and, if
// present, its private scalar.
func Unmarshal(data []byte) (*point.Point, *big.Int, error) {
	var j JWK
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
	}

	return Decode(&j)
}
