// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netsync

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/wire"
)

// mineForTest brute-forces a nonce satisfying target against parent's
// identifier, the same search the mining loop performs, bounded generously
// given InitStrongTarget's ~1/65536 per-attempt odds.
func mineForTest(t *testing.T, parent blockchain.Block, target *big.Int) blockchain.Block {
	t.Helper()
	for nonce := int64(0); nonce < 2_000_000; nonce++ {
		hdr := blockchain.Header{
			PrevHash:  parent.ID(),
			Nonce:     nonce,
			Root:      chainhash.ZeroHash,
			WhdrsHash: chainhash.ZeroHash,
			Coinbase:  crypto.ZeroPublicKey,
			Target:    target,
		}
		if hdr.ID().Big().Cmp(target) < 0 {
			return blockchain.Block{Header: hdr, Length: parent.Length + 1}
		}
	}
	t.Fatal("mineForTest: exhausted nonce search")
	return blockchain.Block{}
}

// fakeResponder canned-answers the handshake/round-robin without any real
// transport, so Sync's sequencing can be tested deterministically.
type fakeResponder struct {
	acked     map[string]bool
	blocksFor map[string][]*blockchain.Block // per-peer queue of BLOCK replies, in request order
}

func (f *fakeResponder) SendNewPeer(wire.NodeConf) error { return nil }

func (f *fakeResponder) AwaitAck(to wire.NodeConf, _ time.Duration) bool {
	return f.acked[to.VK]
}

func (f *fakeResponder) SendGetBlock(wire.NodeConf, int64) error { return nil }

func (f *fakeResponder) AwaitBlock(to wire.NodeConf, _ time.Duration) (*blockchain.Block, bool) {
	q := f.blocksFor[to.VK]
	if len(q) == 0 {
		return nil, false
	}
	f.blocksFor[to.VK] = q[1:]
	return q[0], true
}

func TestSyncNoPeersOnlineReturnsEmpty(t *testing.T) {
	chain := blockchain.New()
	r := &fakeResponder{acked: map[string]bool{}, blocksFor: map[string][]*blockchain.Block{}}
	peers := []wire.NodeConf{{VK: "a"}, {VK: "b"}}

	online := Sync(chain, peers, r)
	require.Empty(t, online)
	require.Equal(t, blockchain.Genesis().ID(), chain.TipID())
}

func TestSyncDownloadsUntilNullBlock(t *testing.T) {
	chain := blockchain.New()
	genesis := chain.Tip()

	b1 := mineForTest(t, genesis, new(big.Int).Set(genesis.Header.Target))

	r := &fakeResponder{
		acked: map[string]bool{"a": true},
		blocksFor: map[string][]*blockchain.Block{
			"a": {&b1, nil},
		},
	}
	peers := []wire.NodeConf{{VK: "a"}}

	online := Sync(chain, peers, r)
	require.Equal(t, peers, online)
	require.Equal(t, b1.ID(), chain.TipID())
}
