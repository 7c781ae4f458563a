// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selfish

import (
	"math/big"

	"github.com/strongchain-go/node/balance"
	"github.com/strongchain-go/node/blockchain"
)

// Broadcaster is the outward interface React uses to publish previously
// withheld blocks on a PUBLISH decision.
type Broadcaster interface {
	BroadcastBlock(b blockchain.Block)
}

// React implements a selfish miner's full reaction to a newly validated
// competing block rcv, per §4.7: rcv is inserted into chain unconditionally
// (mirroring selfishnode.py's unconditional add_block ahead of its
// fork-direction check), then:
//
//   - if rcv directly extends the current tip, there is no fork: adopt it,
//     apply it to both balance views, and report GIVE_UP (we were
//     pre-empted on our own branch, or we had nothing private to lose);
//   - otherwise compare chain weights per Evaluate and act accordingly.
//
// ownBalances is the selfish node's own balance view, rebuilt from genesis
// whenever a GIVE_UP discards the private branch. honestBalances is its
// separate, continuously-maintained view of the public chain, used to
// decide whether publishing is safe without ever exposing the private
// branch's effect on the ledger.
func React(
	chain *blockchain.Chain,
	s *State,
	rcv blockchain.Block,
	cacheLen int,
	ownBalances *balance.Balances,
	honestBalances *balance.Balances,
	bc Broadcaster,
) Decision {
	tip := chain.Tip()
	chain.Insert(rcv)

	if rcv.Header.PrevHash == tip.ID() {
		chain.SetTip(rcv.ID())
		ownBalances.ApplyBlock(rcv)
		honestBalances.ApplyBlock(rcv)
		s.Reset()
		return DecisionGiveUp
	}

	pR := chain.ChainPoW(rcv.ID())
	pS := new(big.Rat).Add(chain.ChainPoW(tip.ID()), blockchain.CurrentWhdrsPoW(tip, cacheLen))

	switch Evaluate(pR, pS, rcv.Header.Target) {
	case DecisionPublish:
		for _, b := range s.PrivateBlocksSince(chain, tip) {
			bc.BroadcastBlock(b)
		}
		id := tip.ID()
		s.forkMark = &id
		honestBalances.Rebuild(chain.Mainchain(tip.ID()))
		return DecisionPublish

	case DecisionWithhold:
		honestBalances.ApplyBlock(rcv)
		return DecisionWithhold

	default:
		chain.SetTip(rcv.ID())
		ownBalances.Rebuild(chain.Mainchain(rcv.ID()))
		honestBalances.ApplyBlock(rcv)
		s.Reset()
		return DecisionGiveUp
	}
}
