// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"sync"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg/chainhash"
)

// WhdrsCache holds the weak headers accumulated toward the block currently
// being mined, in first-seen order - the order blockchain.SetHash's
// pipe-joined commitment depends on. Ground: blockchain.py's whdrs_cache
// dict, whose insertion-ordered iteration this reproduces explicitly since
// Go maps make no such guarantee.
type WhdrsCache struct {
	mu    sync.Mutex
	order []chainhash.Hash
	items map[chainhash.Hash]blockchain.Header
}

// NewWhdrsCache returns an empty cache.
func NewWhdrsCache() *WhdrsCache {
	return &WhdrsCache{items: make(map[chainhash.Hash]blockchain.Header)}
}

// Add inserts wh under id if not already present, reporting whether it was
// newly added.
func (c *WhdrsCache) Add(id chainhash.Hash, wh blockchain.Header) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; ok {
		return false
	}
	c.items[id] = wh
	c.order = append(c.order, id)
	return true
}

// Has reports whether id is already cached.
func (c *WhdrsCache) Has(id chainhash.Hash) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[id]
	return ok
}

// Values returns the cached headers in insertion order.
func (c *WhdrsCache) Values() []blockchain.Header {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]blockchain.Header, len(c.order))
	for i, id := range c.order {
		out[i] = c.items[id]
	}
	return out
}

// Len reports the number of cached headers.
func (c *WhdrsCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Reset empties the cache, as happens once its contents are attached to a
// newly mined strong block.
func (c *WhdrsCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = nil
	c.items = make(map[chainhash.Hash]blockchain.Header)
}
