// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"strconv"

	"github.com/strongchain-go/node/chaincfg"
	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/crypto"
)

// Header carries both a strong block's header and a weak header - per §9's
// design note the two share one structural core and are told apart only by
// which validation function is applied to them, never by a runtime type
// switch. Ground: strongchain/header.py.
type Header struct {
	PrevHash  chainhash.Hash   `json:"prev_hash"`
	Timestamp float64          `json:"timestamp"`
	Nonce     int64            `json:"nonce"`
	Root      chainhash.Hash   `json:"root"`
	WhdrsHash chainhash.Hash   `json:"whdrs_hash"`
	Coinbase  crypto.PublicKey `json:"coinbase"`
	Target    *big.Int         `json:"target"`
}

// WeakHeader is an alias for Header: §9 requires the same record, told
// apart by which validation rule is applied (ValidateWeakHeader vs. the
// strong-header checks embedded in ValidateBlock), never by type switch.
type WeakHeader = Header

// formatTimestamp is the canonical textual form of a header's timestamp:
// the shortest decimal string that round-trips to the same float64. This
// is an Open Question in §9 ("different float formatting ... will produce
// different hashes") resolved here as the one canonical format every
// identifier and every wire payload in this implementation uses.
func formatTimestamp(ts float64) string {
	return strconv.FormatFloat(ts, 'f', -1, 64)
}

// ID is the header's identifier: SHA-256 of the ASCII concatenation of the
// textual forms of prev_hash, timestamp, nonce, root, whdrs_hash, coinbase,
// and target, in that order - not JSON, matching header.py's hash property
// exactly rather than the JSON-based transaction identifier.
func (h Header) ID() chainhash.Hash {
	s := h.PrevHash.String() +
		formatTimestamp(h.Timestamp) +
		strconv.FormatInt(h.Nonce, 10) +
		h.Root.String() +
		h.WhdrsHash.String() +
		h.Coinbase.String() +
		h.Target.String()
	return chainhash.HashH([]byte(s))
}

// WeakTarget returns the threshold a weak header sharing this strong
// target must fall under: target << WeakTargetPower.
func (h Header) WeakTarget() *big.Int {
	return chaincfg.WeakTarget(h.Target)
}

// CanonicalString is the full canonical JSON of h (including its own
// identifier, matching header.py's to_json which embeds "hash"), used as a
// weak-header-set member when computing the set hash.
func (h Header) CanonicalString() string {
	return string(canonicalJSON(headerJSON{
		Hash:      h.ID().String(),
		PrevHash:  h.PrevHash,
		Timestamp: h.Timestamp,
		Nonce:     h.Nonce,
		Root:      h.Root,
		WhdrsHash: h.WhdrsHash,
		Coinbase:  h.Coinbase,
		Target:    h.Target,
	}))
}

// headerJSON mirrors header.py's to_json: the identifier is embedded as a
// leading "hash" field ahead of the raw header fields.
type headerJSON struct {
	Hash      string           `json:"hash"`
	PrevHash  chainhash.Hash   `json:"prev_hash"`
	Timestamp float64          `json:"timestamp"`
	Nonce     int64            `json:"nonce"`
	Root      chainhash.Hash   `json:"root"`
	WhdrsHash chainhash.Hash   `json:"whdrs_hash"`
	Coinbase  crypto.PublicKey `json:"coinbase"`
	Target    *big.Int         `json:"target"`
}

// SetHash computes the commitment §9 calls "set-of-headers hash": the
// canonical JSONs of hdrs, pipe-joined in order, then SHA-256'd. Ground:
// blockchain.py's compute_hash_of_set. An empty set hashes to the zero
// hash.
func SetHash(hdrs []Header) chainhash.Hash {
	if len(hdrs) == 0 {
		return chainhash.ZeroHash
	}
	var joined string
	for i, h := range hdrs {
		if i > 0 {
			joined += "|"
		}
		joined += h.CanonicalString()
	}
	return chainhash.HashH([]byte(joined))
}
