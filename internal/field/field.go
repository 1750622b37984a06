// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field wraps a single modulus shared by every point belonging to
// the same curve, so the group-law packages never carry a raw *big.Int
// modulus around by hand.
package field

import "math/big"

// Field is an immutable prime modulus. Two Fields are interchangeable only
// if their Order is equal.
type Field struct {
	order *big.Int
}

// New returns a Field for the given modulus. The modulus is copied; the
// caller's big.Int may be mutated afterward without affecting the Field.
func New(order *big.Int) Field {
	return Field{order: new(big.Int).Set(order)}
}

// String2Int parses a decimal or "0x"-prefixed hexadecimal string into a
// big.Int, panicking on malformed input. It exists so curve parameter
// tables can be written as readable literals.
func String2Int(s string) *big.Int {
	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
		base = 16
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		panic("field: malformed integer literal " + s)
	}

	return n
}

// Order returns the field's modulus. Callers must not mutate the result.
func (f Field) Order() *big.Int {
	return f.order
}

// ByteLen returns the minimal number of bytes needed to hold the modulus.
func (f Field) ByteLen() int {
	return (f.order.BitLen() + 7) / 8
}

// BitLen returns the bit length of the modulus.
func (f Field) BitLen() int {
	return f.order.BitLen()
}

// IsEqual reports whether two Fields share the same modulus.
func (f Field) IsEqual(other Field) bool {
	if f.order == nil || other.order == nil {
		return f.order == other.order
	}

	return f.order.Cmp(other.order) == 0
}
