// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/strongchain-go/node/chaincfg"
	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/merkle"
)

// Block is one strong-block: a header, its length along the chain it was
// mined on, its ordered transaction list, and the set of weak headers it
// commits to. Ground: strongchain/block.py.
type Block struct {
	Header   Header        `json:"header"`
	Length   int64         `json:"length"`
	Txns     []Transaction `json:"txns"`
	WeakHdrs []Header      `json:"weak_hdrs"`
}

// ID is the block's identifier: its header's identifier, since a header
// uniquely determines its owning block's content via Root and WhdrsHash.
func (b Block) ID() chainhash.Hash {
	return b.Header.ID()
}

// txnLeaves renders b's transactions as Merkle leaves: each transaction's
// own canonical JSON, matching block.py's generate_root_hash(self.txns)
// (MerkleTree hashes str(txn), i.e. the full signed JSON).
func txnLeaves(txns []Transaction) []string {
	leaves := make([]string, len(txns))
	for i, tx := range txns {
		leaves[i] = tx.CanonicalString()
	}
	return leaves
}

// ComputeRoot returns the Merkle root over b's transactions.
func (b Block) ComputeRoot() chainhash.Hash {
	return merkle.ComputeRoot(txnLeaves(b.Txns))
}

// ComputeTxnsRoot returns the Merkle root a block carrying exactly txns
// would have, for a miner assembling a candidate header before it has a
// Block to call ComputeRoot on.
func ComputeTxnsRoot(txns []Transaction) chainhash.Hash {
	return merkle.ComputeRoot(txnLeaves(txns))
}

// ComputeWhdrsHash returns the set hash over b's weak headers.
func (b Block) ComputeWhdrsHash() chainhash.Hash {
	return SetHash(b.WeakHdrs)
}

// PoW is the proof-of-work weight this block contributes to chain weight:
// MAX_TARGET/target + (MAX_TARGET/weak_target)*|weak_hdrs|, carried as an
// exact rational per §9's arbitrary-precision requirement.
func (b Block) PoW() *big.Rat {
	strong := new(big.Rat).SetFrac(chaincfg.MaxTarget, b.Header.Target)
	weak := new(big.Rat).SetFrac(chaincfg.MaxTarget, b.Header.WeakTarget())
	weak.Mul(weak, big.NewRat(int64(len(b.WeakHdrs)), 1))
	return strong.Add(strong, weak)
}

// EffectiveTimestamp blends the block's own timestamp with its weak
// headers' timestamps, weighted by ratio_wh = target/weak_target per weak
// header, per §4.2. Ground: block.py's get_ts.
func (b Block) EffectiveTimestamp() float64 {
	ratioWh := new(big.Rat).SetFrac(b.Header.Target, b.Header.WeakTarget())
	ratioF, _ := ratioWh.Float64()

	sumTs := b.Header.Timestamp
	sumWeight := 1.0
	for _, wh := range b.WeakHdrs {
		sumTs += ratioF * wh.Timestamp
		sumWeight += ratioF
	}
	return sumTs / sumWeight
}

// ExpectedArrival is the expected timestamp of this block's child, per
// §4.2: EffectiveTimestamp() + TimeBetweenBlocks.
func (b Block) ExpectedArrival() float64 {
	return b.EffectiveTimestamp() + chaincfg.TimeBetweenBlocks
}

// ToShortString renders a one-line summary of b: identifier, coinbase,
// weak-header and transaction counts, both targets and PoW. Ground:
// block.py's to_short_str.
func (b Block) ToShortString() string {
	id := b.ID().String()
	cb := b.Header.Coinbase.String()
	if len(cb) > 16 {
		cb = cb[:16]
	}
	targetHex := fmt.Sprintf("%064x", b.Header.Target)
	weakTargetHex := fmt.Sprintf("%064x", b.Header.WeakTarget())
	powF, _ := b.PoW().Float64()
	return fmt.Sprintf("[%3d] | H = %s, CB = %s, WHs = %2d, TXNs = %2d, target_s = %s, target_w = %s, PoW = %7.1f|",
		b.Length, id[:16], cb, len(b.WeakHdrs), len(b.Txns), targetHex[:16], weakTargetHex[:16], powF)
}

// LocalTime renders the header timestamp, truncated to whole seconds, as a
// human-readable local time.
func (b Block) LocalTime() string {
	sec := int64(b.Header.Timestamp)
	return time.Unix(sec, 0).Format(time.ANSIC)
}

// Genesis constructs the single fixed genesis block every node starts
// from, per §3's invariants and chaincfg's genesis constants.
func Genesis() Block {
	hdr := Header{
		PrevHash:  mustHash(chaincfg.GenesisPrevHash),
		Timestamp: float64(chaincfg.GenesisTimestamp),
		Nonce:     chaincfg.GenesisNonce,
		Root:      chainhash.ZeroHash,
		WhdrsHash: chainhash.ZeroHash,
		Coinbase:  mustPublicKey(chaincfg.GenesisCoinbase),
		Target:    new(big.Int).Set(chaincfg.InitStrongTarget),
	}
	return Block{
		Header:   hdr,
		Length:   chaincfg.GenesisLength,
		Txns:     nil,
		WeakHdrs: nil,
	}
}
