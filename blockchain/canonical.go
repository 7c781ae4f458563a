// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/hex"
	"encoding/json"

	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/crypto"
)

// mustHash and mustPublicKey parse fixed, compile-time-known constants
// (the genesis block's fields) and panic on failure - they are never
// applied to untrusted input.
func mustHash(s string) chainhash.Hash {
	h, err := chainhash.HashFromString(s)
	if err != nil {
		panic("blockchain: invalid constant hash " + s + ": " + err.Error())
	}
	return h
}

func mustPublicKey(s string) crypto.PublicKey {
	pk, err := crypto.PublicKeyFromString(s)
	if err != nil {
		panic("blockchain: invalid constant public key " + s + ": " + err.Error())
	}
	return pk
}

func hexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

func hexDecode(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// canonicalJSON renders v as pretty-printed JSON with a four-space indent
// and the field order of v's struct declaration, the wire format §6
// mandates for every payload and the form every content-addressed
// identifier in this package is computed over.
func canonicalJSON(v interface{}) []byte {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		// Every type this package serialises is a plain value with no
		// cyclic references or unsupported field types, so MarshalIndent
		// cannot fail in practice.
		panic("blockchain: canonical marshal failed: " + err.Error())
	}
	return b
}
