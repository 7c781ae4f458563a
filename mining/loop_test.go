// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/queue"
)

func newRound(t *testing.T, chain *blockchain.Chain) (*Round, crypto.PublicKey) {
	t.Helper()
	_, pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	return &Round{
		Chain:       chain,
		Cache:       NewWhdrsCache(),
		Coinbase:    pk,
		StrongQueue: queue.New[blockchain.Block](4),
		WeakQueue:   queue.New[blockchain.Header](4),
	}, pk
}

func TestMineNextBlockFindsStrongBlock(t *testing.T) {
	chain := blockchain.New()
	round, coinbase := newRound(t, chain)

	rng := NewNonceSource("test-miner-log")
	block, found := MineNextBlock(context.Background(), round, rng)
	require.True(t, found)
	require.Equal(t, chain.Tip().Length+1, block.Length)
	require.Equal(t, coinbase, block.Header.Coinbase)
	require.Empty(t, block.WeakHdrs)
	require.Equal(t, 0, round.Cache.Len())

	status := chain.ValidateBlock(block)
	require.Equal(t, blockchain.StatusValid, status)
	chain.Insert(block)
}

func TestMineNextBlockAbandonsWhenStrongQueueNonEmpty(t *testing.T) {
	chain := blockchain.New()
	round, _ := newRound(t, chain)

	// Force an unreachable target so the loop can only terminate via the
	// strong-block-queue drain, never by actually finding a block.
	parent := chain.Tip()
	impossible := blockchain.Block{
		Header: blockchain.Header{
			PrevHash:  parent.ID(),
			Timestamp: float64(time.Now().Unix()),
			Root:      chainhash.ZeroHash,
			WhdrsHash: chainhash.ZeroHash,
			Coinbase:  crypto.ZeroPublicKey,
			Target:    big.NewInt(0),
		},
		Length: parent.Length + 1,
	}
	chain.Insert(impossible)
	chain.SetTip(impossible.ID())

	round.StrongQueue.Push(blockchain.Block{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	rng := NewNonceSource("abandon-test")
	_, found := MineNextBlock(ctx, round, rng)
	require.False(t, found)
}

func TestMineNextBlockRespectsCancellation(t *testing.T) {
	chain := blockchain.New()
	round, _ := newRound(t, chain)

	parent := chain.Tip()
	impossible := blockchain.Block{
		Header: blockchain.Header{
			PrevHash:  parent.ID(),
			Timestamp: float64(time.Now().Unix()),
			Root:      chainhash.ZeroHash,
			WhdrsHash: chainhash.ZeroHash,
			Coinbase:  crypto.ZeroPublicKey,
			Target:    big.NewInt(0),
		},
		Length: parent.Length + 1,
	}
	chain.Insert(impossible)
	chain.SetTip(impossible.ID())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rng := NewNonceSource("cancel-test")
	_, found := MineNextBlock(ctx, round, rng)
	require.False(t, found)
}

type recordingBroadcaster struct {
	got []blockchain.Header
}

func (r *recordingBroadcaster) BroadcastWeakHeader(wh blockchain.Header) {
	r.got = append(r.got, wh)
}

func TestMineNextBlockBroadcastsWeakHeaders(t *testing.T) {
	chain := blockchain.New()
	round, _ := newRound(t, chain)
	rec := &recordingBroadcaster{}
	round.Broadcaster = rec
	round.BroadcastWhdrs = true

	rng := NewNonceSource("weak-broadcast-test")
	block, found := MineNextBlock(context.Background(), round, rng)
	require.True(t, found)
	// Every weak header attached to the winning block must have been
	// broadcast exactly once, in the order it was first discovered.
	require.Equal(t, len(block.WeakHdrs), len(rec.got))
	for i, wh := range block.WeakHdrs {
		require.Equal(t, wh.ID(), rec.got[i].ID())
	}
}
