// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package params

// All lists every curve the library supports, the leaves the registry
// walks when resolving a name, alias, or OID.
var All = []*Curve{
	SECP192R1,
	SECP224R1,
	SECP256R1,
	SECP384R1,
	SECP521R1,
	BrainpoolP160r1,
	BrainpoolP192r1,
	BrainpoolP224r1,
	BrainpoolP256r1,
	BrainpoolP320r1,
	BrainpoolP384r1,
	BrainpoolP512r1,
	Edwards25519,
	Edwards448,
	MDC201601,
}

// Find returns the Curve matching the given canonical name, alias, or
// OID, or nil if none matches.
func Find(id string) *Curve {
	for _, c := range All {
		if c.Name == id {
			return c
		}

		for _, alias := range c.Aliases {
			if alias == id {
				return c
			}
		}
	}

	return nil
}
