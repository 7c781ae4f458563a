// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"sync"

	"github.com/strongchain-go/node/chaincfg"
	"github.com/strongchain-go/node/chaincfg/chainhash"
)

// Chain is the in-memory block store and its designated tip. Insert/SetTip
// are called by initial sync (netsync.Sync, which completes before the
// mining task starts) and afterwards only by the mining task; the mutex
// exists so the client task's read-only queries (Tip/Mainchain/ChainPoW)
// never race with them. Ground: node.py's
// self.blockchain plus blockchain.py's block map and tip tracking.
type Chain struct {
	mu     sync.RWMutex
	blocks map[chainhash.Hash]Block
	tip    chainhash.Hash
}

// New returns a chain containing only the genesis block as its tip.
func New() *Chain {
	g := Genesis()
	id := g.ID()
	return &Chain{
		blocks: map[chainhash.Hash]Block{id: g},
		tip:    id,
	}
}

// Has reports whether id is present in the store.
func (c *Chain) Has(id chainhash.Hash) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.blocks[id]
	return ok
}

// Block returns the block with the given identifier.
func (c *Chain) Block(id chainhash.Hash) (Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.blocks[id]
	return b, ok
}

// Tip returns the current tip block.
func (c *Chain) Tip() Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks[c.tip]
}

// TipID returns the current tip's identifier.
func (c *Chain) TipID() chainhash.Hash {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tip
}

// Insert adds b to the store without changing the tip. The caller (the
// mining task, after ValidateBlock passes) decides separately whether b
// extends the tip or starts/continues a fork.
func (c *Chain) Insert(b Block) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blocks[b.ID()] = b
}

// SetTip moves the designated tip to id, which must already be Insert-ed.
func (c *Chain) SetTip(id chainhash.Hash) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tip = id
}

// Parent returns b's parent block.
func (c *Chain) Parent(b Block) (Block, bool) {
	return c.Block(b.Header.PrevHash)
}

// Mainchain walks from id back to genesis via prev_hash and returns the
// blocks in genesis-first order. Ground: blockchain.py's get_mainchain.
func (c *Chain) Mainchain(id chainhash.Hash) []Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var chain []Block
	cur, ok := c.blocks[id]
	for ok {
		chain = append(chain, cur)
		if cur.Length <= chaincfg.GenesisLength {
			break
		}
		cur, ok = c.blocks[cur.Header.PrevHash]
	}
	// Reverse into genesis-first order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// BlockByLength returns the block at the given length along id's ancestry,
// or false if the chain rooted at id is shorter than length. Ground:
// blockchain.py's get_block_by_length.
func (c *Chain) BlockByLength(id chainhash.Hash, length int64) (Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cur, ok := c.blocks[id]
	for ok {
		if cur.Length == length {
			return cur, true
		}
		if cur.Length < length || cur.Length <= chaincfg.GenesisLength {
			return Block{}, false
		}
		cur, ok = c.blocks[cur.Header.PrevHash]
	}
	return Block{}, false
}

// ChainPoW sums PoW from genesis to id. Per §9's open question, this is
// recomputed on every call - no caching layer sits in front of it.
func (c *Chain) ChainPoW(id chainhash.Hash) *big.Rat {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := new(big.Rat)
	cur, ok := c.blocks[id]
	for ok {
		total.Add(total, cur.PoW())
		if cur.Length <= chaincfg.GenesisLength {
			break
		}
		cur, ok = c.blocks[cur.Header.PrevHash]
	}
	return total
}

// CurrentWhdrsPoW credits the still-uncommitted weak-header cache at the
// local weight (MAX_TARGET/tip.weak_target) * len(cache), per §4.5.
func CurrentWhdrsPoW(tip Block, cacheLen int) *big.Rat {
	perHeader := new(big.Rat).SetFrac(chaincfg.MaxTarget, tip.Header.WeakTarget())
	return perHeader.Mul(perHeader, big.NewRat(int64(cacheLen), 1))
}
