// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ecdsa implements ECDSA signing and verification over the
// library's short Weierstrass curves. Callers supply the message
// digest directly; no hash function is baked in and no RFC 6979
// deterministic nonce derivation is performed.
package ecdsa

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/bytemare/curve/curve"
	"github.com/bytemare/curve/internal/bignum"
	"github.com/bytemare/curve/internal/errs"
	"github.com/bytemare/curve/point"
)

// truncate interprets digest as a big-endian integer and keeps its low
// bits low-order bits, discarding anything beyond the curve's bit
// length.
func truncate(digest []byte, bits int) *big.Int {
	z := new(big.Int).SetBytes(digest)

	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	z.And(z, mask)

	return z
}

// Sign computes an ECDSA signature (r, s) over digest under the
// private scalar prv on c. If kOverride is non-nil it is used as the
// per-signature nonce instead of drawing a fresh one, for reproducing
// known-answer test vectors; a caller-supplied nonce that yields a
// degenerate signature is reported as an error rather than silently
// retried. c must be a short Weierstrass curve.
func Sign(c *curve.Curve, prv *big.Int, digest []byte, kOverride *big.Int) (r, s *big.Int, err error) {
	if c.Family != curve.Weierstrass {
		return nil, nil, fmt.Errorf("%w: ECDSA is only defined over short Weierstrass curves", errs.ErrWrongCurve)
	}

	if prv.Sign() < 1 || prv.Cmp(c.Order()) >= 0 {
		return nil, nil, fmt.Errorf("%w: private key out of range", errs.ErrBadScalar)
	}

	order := c.Order()

	if kOverride != nil && (kOverride.Sign() < 1 || kOverride.Cmp(order) >= 0) {
		return nil, nil, fmt.Errorf("%w: nonce out of range", errs.ErrBadScalar)
	}
	z := truncate(digest, c.Bits())
	generator := point.Generator(c)

	for {
		var k *big.Int

		if kOverride != nil {
			k = kOverride
		} else {
			k, err = point.PrivateKey(c, rand.Reader)
			if err != nil {
				return nil, nil, err
			}
		}

		rr := new(big.Int).Mod(generator.Multiply(k).Primary(), order)

		kInv := bignum.Inv(k, order)
		ss := new(big.Int).Mul(rr, prv)
		ss.Mod(ss, order)
		ss.Add(ss, z)
		ss.Mod(ss, order)
		ss.Mul(ss, kInv)
		ss.Mod(ss, order)

		if rr.Sign() != 0 && ss.Sign() != 0 {
			return rr, ss, nil
		}

		if kOverride != nil {
			return nil, nil, fmt.Errorf("%w: supplied nonce produced a degenerate signature", errs.ErrBadScalar)
		}
	}
}

// Verify reports whether (r, s) is a valid ECDSA signature over digest
// under the public point pub.
func Verify(pub *point.Point, digest []byte, r, s *big.Int) bool {
	if !pub.IsValid() {
		return false
	}

	order := pub.Order()

	if !pub.Multiply(order).IsIdentity() {
		return false
	}

	if r.Sign() < 1 || r.Cmp(order) >= 0 {
		return false
	}

	if s.Sign() < 1 || s.Cmp(order) >= 0 {
		return false
	}

	z := truncate(digest, pub.Bits())
	w := bignum.Inv(s, order)

	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, order)

	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, order)

	p := point.Generator(pub.Curve()).Multiply(u1).Add(pub.Multiply(u2))
	if p.IsIdentity() {
		return false
	}

	x := new(big.Int).Mod(p.Primary(), order)

	return r.Cmp(x) == 0
}
