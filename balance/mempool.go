// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"sync"

	"github.com/decred/dcrd/lru"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg/chainhash"
)

// recentRejectsLimit bounds the "recently rejected" LRU set each pool
// carries, so a gossiped transaction this node has already rejected this
// session doesn't get re-validated (signature check, balance simulation)
// every time a peer re-relays it.
const recentRejectsLimit = 1000

// Pool is the ordered, deduplicated set of transactions awaiting a block.
// Ground: mempool/doc.go's "in-memory pool of fully validated
// transactions", repurposed without a fee-priority index since none
// exists in this chain.
type Pool struct {
	mu            sync.Mutex
	order         []chainhash.Hash
	txns          map[chainhash.Hash]blockchain.Transaction
	recentRejects *lru.Cache[chainhash.Hash]
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{
		txns:          make(map[chainhash.Hash]blockchain.Transaction),
		recentRejects: lru.NewCache[chainhash.Hash](recentRejectsLimit),
	}
}

// Add inserts tx if its identifier isn't already present and hasn't
// recently been rejected, reporting whether it was newly added.
func (p *Pool) Add(tx blockchain.Transaction) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := tx.ID()
	if _, ok := p.txns[id]; ok {
		return false
	}
	if p.recentRejects.Contains(id) {
		return false
	}
	p.txns[id] = tx
	p.order = append(p.order, id)
	return true
}

// RecentlyRejected reports whether id was rejected and dropped from this
// pool earlier in the session.
func (p *Pool) RecentlyRejected(id chainhash.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.recentRejects.Contains(id)
}

// Remove drops id from the pool, if present. Any reason other than
// RemovalReasonBlock (a transaction confirmed normally, not rejected) also
// marks id in the recently-rejected cache.
func (p *Pool) Remove(id chainhash.Hash, reason RemovalReason) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.txns[id]; !ok {
		return
	}
	delete(p.txns, id)
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	if reason != RemovalReasonBlock {
		p.recentRejects.Add(id)
	}
}

// Ordered returns the pool's transactions in a fixed, deterministic
// iteration order (insertion order), as §4.6 requires of the mempool
// filter.
func (p *Pool) Ordered() []blockchain.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]blockchain.Transaction, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.txns[id])
	}
	return out
}

// Has reports whether id is currently pooled.
func (p *Pool) Has(id chainhash.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.txns[id]
	return ok
}

// FilterResult partitions a candidate set of pending transactions into
// those admitted and those rejected, with a reason for each rejection.
type FilterResult struct {
	Admitted []blockchain.Transaction
	Rejected map[chainhash.Hash]RemovalReason
}

// Filter simulates applying pending, in order, on top of a clone of
// current, dropping any transaction with a negative amount, a bad
// signature, or that would drive its sender negative given every
// transaction admitted ahead of it. Ground: blockchain.py's
// filter_out_invalid_txns.
func Filter(current *Balances, pending []blockchain.Transaction) FilterResult {
	sim := current.Clone()
	result := FilterResult{Rejected: make(map[chainhash.Hash]RemovalReason)}

	for _, tx := range pending {
		id := tx.ID()
		switch {
		case tx.Amount < 0:
			result.Rejected[id] = RemovalReasonNegativeAmount
		case !tx.VerifySignature():
			result.Rejected[id] = RemovalReasonBadSignature
		case sim.Get(tx.Sender)-tx.Amount < 0:
			result.Rejected[id] = RemovalReasonInsufficientFunds
		default:
			sim.ApplyTxn(tx)
			result.Admitted = append(result.Admitted, tx)
		}
	}
	return result
}

// DuplicateInChain reports whether id already appears as some
// transaction's identifier in any block of mainchain, the cross-ancestry
// duplicate check §4.3 assigns to the node/balance layer rather than
// blockchain.ValidateBlock.
func DuplicateInChain(mainchain []blockchain.Block, id chainhash.Hash) bool {
	for _, b := range mainchain {
		for _, tx := range b.Txns {
			if tx.ID() == id {
				return true
			}
		}
	}
	return false
}
