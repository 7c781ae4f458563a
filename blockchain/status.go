// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// Status is the closed set of block/weak-header validation outcomes a
// caller switches on, ground on the teacher's discriminated RuleError
// returns (blockchain/validate.go) generalised to §4.3's reject reasons.
type Status int

const (
	// StatusValid means the block or weak header passed every check.
	StatusValid Status = iota
	// StatusExistingBlock means the identifier already exists in the store.
	StatusExistingBlock
	// StatusNonExistingPred means the parent is absent from the store.
	StatusNonExistingPred
	// StatusTxnsIntegrity means header.Root doesn't match Merkle(txns).
	StatusTxnsIntegrity
	// StatusWhdrsIntegrity means header.WhdrsHash doesn't match the set hash.
	StatusWhdrsIntegrity
	// StatusTargetValue means header.Target isn't the expected next target.
	StatusTargetValue
	// StatusStrongTargetPoW means the header's identifier isn't below target.
	StatusStrongTargetPoW
	// StatusHdrTimestamp means the timestamp drifted too far from arrival.
	StatusHdrTimestamp
	// StatusWhdrTargetValue means a weak header's target != the block it's
	// committed in's target.
	StatusWhdrTargetValue
	// StatusWhdrTargetPoW means a weak header's identifier isn't below its
	// weak target.
	StatusWhdrTargetPoW
	// StatusWhdrPrevHash means a weak header isn't a sibling of the block
	// it's committed in: its prev_hash doesn't match that block's prev_hash.
	StatusWhdrPrevHash
	// StatusWhdrTimestamp means a weak header's timestamp drifted too far.
	StatusWhdrTimestamp
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusExistingBlock:
		return "existing block"
	case StatusNonExistingPred:
		return "non-existing predecessor"
	case StatusTxnsIntegrity:
		return "transaction root mismatch"
	case StatusWhdrsIntegrity:
		return "weak-header set hash mismatch"
	case StatusTargetValue:
		return "unexpected target value"
	case StatusStrongTargetPoW:
		return "insufficient strong proof of work"
	case StatusHdrTimestamp:
		return "timestamp outside allowed range"
	case StatusWhdrTargetValue:
		return "weak header target mismatch"
	case StatusWhdrTargetPoW:
		return "insufficient weak proof of work"
	case StatusWhdrPrevHash:
		return "weak header prev_hash mismatch"
	case StatusWhdrTimestamp:
		return "weak header timestamp outside allowed range"
	default:
		return "unknown status"
	}
}

// ValidationError wraps a non-valid Status so it satisfies error.
type ValidationError struct {
	Status Status
}

func (e *ValidationError) Error() string {
	return "blockchain: " + e.Status.String()
}
