// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg carries the chain-wide constants: proof-of-work targets,
// reward and timing parameters, and the genesis block every node starts
// from. There is a single chain here, unlike the teacher's mainnet/testnet/
// simnet/regtest Params table - so this package drops the network-selection
// layer entirely and exposes the constants directly.
package chaincfg

import "math/big"

// Proof-of-work and reward constants, ground: header.py's Header class
// constants and blockchain.py's top-level module constants.
var (
	// MaxTarget is the loosest strong target a header may ever carry: the
	// top 12 bits are zero.
	MaxTarget = mustHex("000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// InitStrongTarget is the strong target new chains start from: the top
	// 16 bits are zero.
	InitStrongTarget = mustHex("0000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
)

// WeakTargetPower is the shift applied to a strong target to obtain its
// weak target: on average 2^WeakTargetPower weak headers are produced per
// strong block.
const WeakTargetPower = 3

// WeakTarget returns target<<WeakTargetPower, the threshold a weak header's
// identifier must fall under.
func WeakTarget(target *big.Int) *big.Int {
	return new(big.Int).Lsh(target, WeakTargetPower)
}

const (
	// BlocksToCheckTarget is the retarget period.
	BlocksToCheckTarget = 10

	// TimeBetweenBlocks is the target inter-block arrival time, in seconds.
	TimeBetweenBlocks = 3

	// StrongBlockReward is the coinbase credit for mining a strong block.
	StrongBlockReward = 10

	// TimestampRange bounds how far a header's timestamp may drift from the
	// expected arrival time before it is rejected.
	TimestampRange = 3600

	// RatioToOverrideNum/RatioToOverrideDen is the selfish-mining
	// publish-window fraction, 1/8.
	RatioToOverrideNum = 1
	RatioToOverrideDen = 8
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("chaincfg: invalid constant " + s)
	}
	return n
}
