// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math"

	"github.com/strongchain-go/node/chaincfg"
)

// ValidateBlock runs the ordered checks of §4.3 against b and stops at the
// first failure. Transaction validation (signatures, balance simulation,
// cross-ancestry duplicate detection) is deliberately not performed here -
// per §4.3 it belongs to the node/balance layer, which has the mempool and
// balance state this package doesn't carry.
func (c *Chain) ValidateBlock(b Block) Status {
	if c.Has(b.ID()) {
		return StatusExistingBlock
	}

	parent, ok := c.Block(b.Header.PrevHash)
	if !ok {
		return StatusNonExistingPred
	}

	if b.ComputeRoot() != b.Header.Root {
		return StatusTxnsIntegrity
	}
	if b.ComputeWhdrsHash() != b.Header.WhdrsHash {
		return StatusWhdrsIntegrity
	}

	expectedTarget := c.NextTarget(parent)
	if b.Header.Target.Cmp(expectedTarget) != 0 {
		return StatusTargetValue
	}

	if b.Header.ID().Big().Cmp(b.Header.Target) >= 0 {
		return StatusStrongTargetPoW
	}

	if parent.Length > chaincfg.GenesisLength {
		if math.Abs(b.Header.Timestamp-parent.ExpectedArrival()) > chaincfg.TimestampRange {
			return StatusHdrTimestamp
		}
	}

	for _, wh := range b.WeakHdrs {
		if status := validateWeakHeader(wh, b.Header, parent); status != StatusValid {
			return status
		}
	}

	return StatusValid
}

// ValidateWeakHeader exposes the same per-weak-header check ValidateBlock
// runs inline, for a mining loop validating a weak header received mid-round
// against the in-progress candidate header and its parent, the current tip.
func ValidateWeakHeader(wh, b Header, parent Block) Status {
	return validateWeakHeader(wh, b, parent)
}

// validateWeakHeader checks wh against b, the block (or in-progress
// candidate) it is a sibling of: a legitimately mined weak header shares
// b's target and prev_hash, since both descend from the same parent. parent
// is b's own parent, used for the timestamp skew check, skipped when parent
// is the genesis block. Ground: blockchain.py's validate_weak_header, which
// takes the new block's own header as its comparison reference, not the
// parent's.
func validateWeakHeader(wh, b Header, parent Block) Status {
	if wh.Target.Cmp(b.Target) != 0 {
		return StatusWhdrTargetValue
	}
	if wh.ID().Big().Cmp(wh.WeakTarget()) >= 0 {
		return StatusWhdrTargetPoW
	}
	if wh.PrevHash != b.PrevHash {
		return StatusWhdrPrevHash
	}
	if parent.Length > chaincfg.GenesisLength {
		if math.Abs(wh.Timestamp-parent.ExpectedArrival()) > chaincfg.TimestampRange {
			return StatusWhdrTimestamp
		}
	}
	return StatusValid
}
