// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package errs holds the sentinel errors shared across the curve, point,
// codec, and ecdsa packages.
package errs

import "errors"

var (
	// ErrInvalidEncoding is returned when a decoder is handed a byte
	// string of the wrong length, with an unrecognized leading byte, or
	// holding an integer that does not fit the expected width.
	ErrInvalidEncoding = errors.New("ecc: invalid point encoding")

	// ErrInvalidPoint is returned when decoded coordinates fail the
	// curve equation, a compressed-form recovery hits a non-residue, or
	// the identity is handed to an encoder that rejects it.
	ErrInvalidPoint = errors.New("ecc: invalid curve point")

	// ErrUnknownCurve is returned by the registry when no curve matches
	// the requested name, alias, or OID.
	ErrUnknownCurve = errors.New("ecc: unknown curve identifier")

	// ErrBadScalar is returned when a private key or signature
	// component falls outside its required range.
	ErrBadScalar = errors.New("ecc: scalar out of range")

	// ErrNilPoint names a nil-point failure. No function in this module
	// returns it; a nil point is not checked for.
	ErrNilPoint = errors.New("ecc: nil point")

	// ErrWrongCurve is returned when an operation is asked to run on a
	// curve it is not defined for, such as ECDSA over a twisted Edwards
	// curve.
	ErrWrongCurve = errors.New("ecc: operation not defined for this curve")

	// ErrNoInverse names a missing modular inverse. No function in this
	// module returns it: bignum.Inv reports a missing inverse by
	// returning nil.
	ErrNoInverse = errors.New("ecc: no modular inverse")
)
