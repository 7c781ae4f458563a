// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selfish

import (
	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg/chainhash"
)

// State is a selfish miner's private-branch bookkeeping: the last public
// tip the private branch diverged from. A nil fork_mark means no private
// branch is currently in progress. Ground: selfishnode.py's mining_thread
// fork_mark local.
type State struct {
	forkMark *chainhash.Hash
}

// OnMinedBlock records that a block was just privately mined on top of
// chain's previous tip previousTip. If no private branch is already in
// progress, previousTip becomes fork_mark.
func (s *State) OnMinedBlock(previousTip blockchain.Block) {
	if s.forkMark == nil {
		id := previousTip.ID()
		s.forkMark = &id
	}
}

// HasForkMark reports whether a private branch is currently in progress.
func (s *State) HasForkMark() bool {
	return s.forkMark != nil
}

// Reset clears fork_mark. The next OnMinedBlock call will re-anchor it at
// whatever the chain's tip is at that time - equivalent to selfishnode.py
// eagerly reassigning fork_mark to the adopted tip on every GIVE_UP, since
// that adopted tip is exactly what the next private block's previousTip
// will be.
func (s *State) Reset() {
	s.forkMark = nil
}

// PrivateBlocksSince returns, oldest first, every block stored in chain
// between fork_mark (exclusive) and tip (inclusive) - the sequence a
// PUBLISH decision broadcasts. Returns nil if no private branch is in
// progress. Ground: selfishnode.py's blks_to_reveal walk.
func (s *State) PrivateBlocksSince(chain *blockchain.Chain, tip blockchain.Block) []blockchain.Block {
	if s.forkMark == nil {
		return nil
	}
	var blocks []blockchain.Block
	cur := tip
	for cur.ID() != *s.forkMark {
		blocks = append(blocks, cur)
		parent, ok := chain.Parent(cur)
		if !ok {
			break
		}
		cur = parent
	}
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return blocks
}
