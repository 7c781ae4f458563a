// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash carries the 32-byte SHA-256 digest type shared by every
// hashed value in the chain: block/header identifiers, transaction ids, and
// the weak-header set commitment.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// HashSize is the number of bytes in a hash produced by SHA256.
const HashSize = sha256.Size

// ZeroHash is the zero-valued Hash, used for the genesis block's prev_hash
// and for an empty weak-header set's commitment.
var ZeroHash = Hash{}

// Hash is a 32-byte SHA-256 digest, rendered and compared the way the
// original Python implementation treats hex strings: no byte-order reversal,
// the hex string's own digit order is also big.Int's digit order.
type Hash [HashSize]byte

// String returns the lowercase hex encoding of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the all-zero hash.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// Big interprets the hash's hex digits as a big-endian unsigned integer, the
// same quantity the spec compares against a target with `int(h, 16) <
// target`.
func (h Hash) Big() *big.Int {
	n := new(big.Int)
	n.SetBytes(h[:])
	return n
}

// HashH computes the SHA-256 digest of b.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// HashFromString parses s, a 64-character hex string, into a Hash.
func HashFromString(s string) (Hash, error) {
	var h Hash
	if len(s) != HashSize*2 {
		return h, fmt.Errorf("chainhash: invalid hash string length %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// MarshalText implements encoding.TextMarshaler so Hash round-trips through
// JSON as its hex string, matching the wire fields that carry a hash
// (prev_hash, whdrs_hash).
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := HashFromString(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
