// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "strings"

// Genesis constants. Ground: strongchain/blockchain.py's hardcoded genesis
// fields. There is one chain, so unlike the teacher's per-network genesis
// blocks these live at package scope rather than inside a Params table.
const (
	// GenesisTimestamp is the fixed wall-clock second the reference chain's
	// genesis block carries.
	GenesisTimestamp = 1542696180

	// GenesisNonce is the fixed nonce the genesis header carries; it is
	// never verified against a target.
	GenesisNonce = 1111111

	// GenesisLength is the length of the genesis block.
	GenesisLength = 1
)

var (
	// GenesisPrevHash is 32 zero bytes, hex encoded.
	GenesisPrevHash = strings.Repeat("0", 64)

	// GenesisCoinbase is the placeholder miner public key: 48 zero bytes,
	// hex encoded (96 hex characters), the same width as a real NIST P-192
	// public key produced by crypto.PublicKey.String().
	GenesisCoinbase = strings.Repeat("0", 96)
)
