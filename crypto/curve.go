// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crypto wraps the ECDSA-over-NIST-P-192 signing scheme that §6
// treats as an opaque external oracle.  None of the example repositories in
// this module's lineage ship NIST P-192 (the pack's curve libraries are all
// secp256k1, used for a different chain family entirely - see DESIGN.md), so
// the curve is constructed directly from its published domain parameters
// using the standard library's generic elliptic.CurveParams, the same
// primitive other account-model miners in the corpus
// (other_examples/…abmicyau-cs416-blockart__ink-miner.go.go) build their
// ecdsa.PrivateKey/PublicKey pairs on top of.
package crypto

import (
	"crypto/elliptic"
	"math/big"
	"sync"
)

// Sizes, in bytes, of the raw (non-ASN.1) encodings this package produces.
// A NIST P-192 scalar and each of a public key's two coordinates is
// ceil(192/8) = 24 bytes.
const (
	ScalarSize    = 24
	PublicKeySize = 2 * ScalarSize
)

var (
	p192Once   sync.Once
	p192Params *elliptic.CurveParams
)

// P192 returns the NIST P-192 curve (also known as secp192r1 / prime192v1).
func P192() elliptic.Curve {
	p192Once.Do(func() {
		p192Params = &elliptic.CurveParams{Name: "P-192"}
		p192Params.P, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffeffffffffffffffff", 16)
		p192Params.N, _ = new(big.Int).SetString("ffffffffffffffffffffffff99def836146bc9b1b4d22831", 16)
		p192Params.B, _ = new(big.Int).SetString("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1", 16)
		p192Params.Gx, _ = new(big.Int).SetString("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012", 16)
		p192Params.Gy, _ = new(big.Int).SetString("07192b95ffc8da78631011ed6b24cdd573f977a11e794811", 16)
		p192Params.BitSize = 192
	})
	return p192Params
}
