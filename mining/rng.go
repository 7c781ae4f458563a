// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"hash/fnv"
	"math/rand"
)

// NewNonceSource returns the deterministic PRNG the mining loop draws
// nonces from, seeded from seedKey (the node's log filename, per §4.4,
// so a captured log reproduces the exact mining sequence that produced
// it). Local to the mining task, per §5's shared-resource policy - no
// other package should construct or share one of these.
func NewNonceSource(seedKey string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seedKey))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
