// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package params

// The three twisted Edwards curves: the two CFRG curves edwards25519 and
// edwards448, and the MDC201601 curve.
var (
	Edwards25519 = New(
		"edwards25519", []string{"ed25519"}, TwistedEdwards,
		"0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed",
		"0x1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed",
		"-1",
		"0x52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3",
		"0x216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a",
		"0x6666666666666666666666666666666666666666666666666666666666666658",
		8,
	)

	Edwards448 = New(
		"edwards448", []string{"ed448"}, TwistedEdwards,
		"0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"0x3fffffffffffffffffffffffffffffffffffffffffffffffffffffff7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3",
		"1",
		"0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffff6756",
		"0x4f1970c66bed0ded221d15a622bf36da9e146570470f1767ea6de324a3d3a46412ae1af72ab66511433b80e18b00938e2626a82bc70cc05e",
		"0x693f46716eb6bc248876203756c9c7624bea73736ca3984087789c1e05a0c2d73ad3ff1ce67c39c4fdbd132c4ed7c8ad9808795bf230fa14",
		4,
	)

	MDC201601 = New(
		"MDC201601", nil, TwistedEdwards,
		"109112363276961190442711090369149551676330307646118204517771511330536253156371",
		"27278090819240297610677772592287387918930509574048068887630978293185521973243",
		"1",
		"39384817741350628573161184301225915800358770588933756071948264625804612259721",
		"82549803222202399340024462032964942512025856818700414254726364205096731424315",
		"91549545637415734422658288799119041756378259523097147807813396915125932811445",
		4,
	)
)
