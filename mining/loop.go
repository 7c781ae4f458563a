// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"context"
	"math/rand"
	"time"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/queue"
)

// Broadcaster is the listening task's outward-facing half the mining loop
// calls into when it discovers a new weak header, per §4.4 step 3.
type Broadcaster interface {
	BroadcastWeakHeader(wh blockchain.Header)
}

// nonceCeiling mirrors blockchain.py's random.randint(0, 10000000) range.
const nonceCeiling = 10000000

// sleepInterval is the per-iteration scheduler-courtesy sleep §5 mandates.
const sleepInterval = 100 * time.Microsecond

// Round bundles one mining attempt's fixed inputs: the chain to build on,
// the weak-header cache it shares across rounds, the coinbase to reward,
// the already mempool-filtered transactions to include, the two queues the
// loop must drain between proof-of-work attempts, and whether newly found
// weak headers should be broadcast.
type Round struct {
	Chain          *blockchain.Chain
	Cache          *WhdrsCache
	Coinbase       crypto.PublicKey
	Txns           []blockchain.Transaction
	StrongQueue    *queue.Queue[blockchain.Block]
	WeakQueue      *queue.Queue[blockchain.Header]
	Broadcaster    Broadcaster
	BroadcastWhdrs bool
}

// MineNextBlock runs one mining round against r.Chain's current tip,
// returning (block, true) when a strong block is found, or (zero, false)
// when the round is abandoned - either ctx was cancelled, or a strong
// block arrived on r.StrongQueue and must be processed by the caller
// instead of this one. Ground: blockchain.py's mine_next_block.
func MineNextBlock(ctx context.Context, r *Round, rng *rand.Rand) (blockchain.Block, bool) {
	tip := r.Chain.Tip()

	root := blockchain.ComputeTxnsRoot(r.Txns)
	ts := currentTimestamp()
	prevHash := tip.ID()
	whdrsHash := blockchain.SetHash(r.Cache.Values())
	strongTarget := r.Chain.NextTarget(tip)

	for {
		select {
		case <-ctx.Done():
			return blockchain.Block{}, false
		default:
		}
		time.Sleep(sleepInterval)

		hdr := blockchain.Header{
			PrevHash:  prevHash,
			Timestamp: ts,
			Nonce:     rng.Int63n(nonceCeiling + 1),
			Root:      root,
			WhdrsHash: whdrsHash,
			Coinbase:  r.Coinbase,
			Target:    strongTarget,
		}
		id := hdr.ID()
		h := id.Big()

		if h.Cmp(strongTarget) < 0 {
			whdrs := r.Cache.Values()
			block := blockchain.Block{
				Header:   hdr,
				Length:   tip.Length + 1,
				Txns:     r.Txns,
				WeakHdrs: whdrs,
			}
			r.Cache.Reset()
			return block, true
		}

		if h.Cmp(hdr.WeakTarget()) < 0 {
			if r.Cache.Add(id, hdr) {
				if r.BroadcastWhdrs && r.Broadcaster != nil {
					r.Broadcaster.BroadcastWeakHeader(hdr)
				}
				whdrsHash = blockchain.SetHash(r.Cache.Values())
			}
		}

		if !r.StrongQueue.Empty() {
			return blockchain.Block{}, false
		}

		for {
			rcvd, ok := r.WeakQueue.TryPop()
			if !ok {
				break
			}
			rcvdID := rcvd.ID()
			if r.Cache.Has(rcvdID) {
				continue
			}
			if status := blockchain.ValidateWeakHeader(rcvd, hdr, tip); status != blockchain.StatusValid {
				continue
			}
			r.Cache.Add(rcvdID, rcvd)
			whdrsHash = blockchain.SetHash(r.Cache.Values())
		}
	}
}

func currentTimestamp() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
