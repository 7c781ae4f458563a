// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"math/big"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/chainutil"
	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/wire"
)

// Stats summarises a node's live state for a client front-end, ground on
// node.py's print_stats.
type Stats struct {
	TipLength   int64
	TipID       string
	ChainPoW    *big.Rat
	PeerCount   int
	MempoolSize int
	WhdrsCached int
	Selfish     bool
	ForkMark    bool
}

// Chain returns the node's block store, safe for read-only queries from
// any goroutine per §5's concurrency discipline.
func (n *Node) Chain() *blockchain.Chain { return n.chain }

// SelfKey returns this node's own public key.
func (n *Node) SelfKey() crypto.PublicKey { return n.selfKey }

// Balance returns pk's current confirmed balance, from the node's own
// (private, if selfish) view.
func (n *Node) Balance(pk crypto.PublicKey) chainutil.Amount {
	return n.balances.Get(pk)
}

// PendingTxns returns the mempool's contents in deterministic order.
func (n *Node) PendingTxns() []blockchain.Transaction {
	return n.mempool.Ordered()
}

// PendingHas reports whether id is still sitting in the mempool,
// unconfirmed.
func (n *Node) PendingHas(id chainhash.Hash) bool {
	return n.mempool.Has(id)
}

// Peers returns every peer this node currently knows about.
func (n *Node) Peers() []wire.NodeConf {
	return n.peers.All()
}

// Stats snapshots the node's current state for display.
func (n *Node) Stats() Stats {
	tip := n.chain.Tip()
	s := Stats{
		TipLength:   tip.Length,
		TipID:       tip.ID().String(),
		ChainPoW:    n.chain.ChainPoW(tip.ID()),
		PeerCount:   n.peers.Len(),
		MempoolSize: len(n.mempool.Ordered()),
		WhdrsCached: n.cache.Len(),
		Selfish:     n.cfg.Selfish,
	}
	if n.selfState != nil {
		s.ForkMark = n.selfState.HasForkMark()
	}
	return s
}
