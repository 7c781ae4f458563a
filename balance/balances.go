// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"math/big"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg"
	"github.com/strongchain-go/node/chainutil"
	"github.com/strongchain-go/node/crypto"
)

// Balances is the account model of §4.6: a mapping from a public key's hex
// string to its current balance. Ground: strongchain's per-address dict,
// repurposed from the teacher's UTXO set (no unspent-output tracking
// exists in an account model).
type Balances struct {
	m map[string]chainutil.Amount
}

// New returns an empty balance map, seeded at zero for every key in seed
// (every known peer's public key, per §4.6).
func New(seed []crypto.PublicKey) *Balances {
	b := &Balances{m: make(map[string]chainutil.Amount, len(seed))}
	for _, pk := range seed {
		b.m[pk.String()] = 0
	}
	return b
}

// Clone returns a deep copy, used to simulate a candidate set of
// transactions without mutating the live balances.
func (b *Balances) Clone() *Balances {
	cp := &Balances{m: make(map[string]chainutil.Amount, len(b.m))}
	for k, v := range b.m {
		cp.m[k] = v
	}
	return cp
}

// Get returns pk's balance (zero if unknown).
func (b *Balances) Get(pk crypto.PublicKey) chainutil.Amount {
	return b.m[pk.String()]
}

// Reset zeroes every tracked balance, the first step of Rebuild.
func (b *Balances) Reset() {
	for k := range b.m {
		b.m[k] = 0
	}
}

// weakHeaderRewardRatio is target/weak_target = 1/2^WeakTargetPower,
// constant regardless of the specific target value since weak_target is
// always target<<WeakTargetPower.
func weakHeaderRewardRatio() *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), chaincfg.WeakTargetPower))
}

// ApplyBlock folds b's transactions and block/weak-header rewards into the
// balances, in order: for each transaction, subtract from sender and add to
// receiver; credit StrongBlockReward to the block's coinbase; credit each
// weak header's coinbase with StrongBlockReward*target/weak_target. Ground:
// blockchain.py's update_balances.
func (bal *Balances) ApplyBlock(b blockchain.Block) {
	for _, tx := range b.Txns {
		bal.add(tx.Sender, -tx.Amount)
		bal.add(tx.Receiver, tx.Amount)
	}

	bal.add(b.Header.Coinbase, chainutil.Amount(chaincfg.StrongBlockReward*chainutil.CentsPerUnit))

	if len(b.WeakHdrs) > 0 {
		ratio := weakHeaderRewardRatio()
		ratioF, _ := ratio.Float64()
		whReward, _ := chainutil.NewAmount(float64(chaincfg.StrongBlockReward) * ratioF)
		for _, wh := range b.WeakHdrs {
			bal.add(wh.Coinbase, whReward)
		}
	}
}

func (bal *Balances) add(pk crypto.PublicKey, amt chainutil.Amount) {
	bal.m[pk.String()] += amt
}

// ApplyTxn moves amount from sender to receiver with no reward credit,
// used by Filter to simulate a candidate set of pending transactions.
func (bal *Balances) ApplyTxn(tx blockchain.Transaction) {
	bal.add(tx.Sender, -tx.Amount)
	bal.add(tx.Receiver, tx.Amount)
}

// Rebuild zeroes every balance and replays mainchain (genesis-first) from
// scratch, per §4.6's fork-rebuild discipline.
func (bal *Balances) Rebuild(mainchain []blockchain.Block) {
	bal.Reset()
	for _, b := range mainchain {
		bal.ApplyBlock(b)
	}
}
