// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package selfish implements the withhold/publish/give-up strategy of §4.7:
// a miner that keeps newly found strong blocks private until a competing
// public block threatens to overtake it. Ground: selfishnode.py's
// SelfishNode, which subclasses the honest node and only overrides its
// mining thread's reaction to newly mined and newly received blocks.
package selfish

import (
	"math/big"

	"github.com/strongchain-go/node/chaincfg"
)

// Decision is the outcome of reacting to a competing block that forks away
// from the private tip.
type Decision int

const (
	// DecisionWithhold means keep mining privately; the competing block is
	// tracked in the honest-side balance view but otherwise ignored.
	DecisionWithhold Decision = iota
	// DecisionPublish means reveal the private branch from fork_mark to the
	// private tip, since the honest chain is close enough to catching up
	// that staying hidden risks losing the lead entirely.
	DecisionPublish
	// DecisionGiveUp means adopt the competing block as the new tip; the
	// private branch loses.
	DecisionGiveUp
)

func (d Decision) String() string {
	switch d {
	case DecisionWithhold:
		return "WITHHOLD"
	case DecisionPublish:
		return "PUBLISH"
	case DecisionGiveUp:
		return "GIVE_UP"
	default:
		return "UNKNOWN"
	}
}

// Evaluate decides how to react to a competing block R that forks away from
// the private tip, given pR = chainPoW(R), pS = chainPoW(private_tip) +
// current_whdrs_PoW(), and R's strong target. Ground: selfishnode.py's
// _add_or_ignore_block fork-arm comparison:
//
//	Δ = RATIO_TO_OVERRIDE · (MAX_TARGET · R.target)
//	pR > pS - Δ  and  pR < pS  → PUBLISH
//	pR < pS                     → WITHHOLD
//	otherwise                   → GIVE_UP
func Evaluate(pR, pS *big.Rat, rTarget *big.Int) Decision {
	delta := new(big.Rat).SetInt(new(big.Int).Mul(chaincfg.MaxTarget, rTarget))
	delta.Mul(delta, big.NewRat(chaincfg.RatioToOverrideNum, chaincfg.RatioToOverrideDen))
	threshold := new(big.Rat).Sub(pS, delta)

	switch {
	case pR.Cmp(threshold) > 0 && pR.Cmp(pS) < 0:
		return DecisionPublish
	case pR.Cmp(pS) < 0:
		return DecisionWithhold
	default:
		return DecisionGiveUp
	}
}
