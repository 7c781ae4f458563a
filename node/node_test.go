// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/chainutil"
	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/wire"
)

// newTestNode returns a node bound to a loopback socket on an
// OS-assigned port, ready for direct method calls without running Run.
func newTestNode(t *testing.T) *Node {
	t.Helper()
	sk, pk, err := crypto.GenerateKey()
	require.NoError(t, err)

	cfg := Config{
		Self:    wire.NodeConf{Port: 0, Address: "127.0.0.1", VK: pk.String()},
		PrivKey: sk,
	}
	n := New(cfg, "test-seed-key")

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	n.conn = conn
	return n
}

// mineBlock brute-forces a nonce satisfying target against parent's
// identifier, the same search the mining loop performs.
func mineBlock(t *testing.T, parent blockchain.Block, target *big.Int) blockchain.Block {
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
	t.Fatal("mineBlock: exhausted nonce search")
	return blockchain.Block{}
}

// mineBlockWithTxns is mineBlock generalised to a non-empty transaction
// set, recomputing the candidate root on each attempt.
func mineBlockWithTxns(t *testing.T, parent blockchain.Block, target *big.Int, txns []blockchain.Transaction) blockchain.Block {
	t.Helper()
	root := blockchain.ComputeTxnsRoot(txns)
	for nonce := int64(0); nonce < 2_000_000; nonce++ {
		hdr := blockchain.Header{
			PrevHash:  parent.ID(),
			Nonce:     nonce,
			Root:      root,
			WhdrsHash: chainhash.ZeroHash,
			Coinbase:  crypto.ZeroPublicKey,
			Target:    target,
		}
		if hdr.ID().Big().Cmp(target) < 0 {
			return blockchain.Block{Header: hdr, Length: parent.Length + 1, Txns: txns}
		}
	}
	t.Fatal("mineBlockWithTxns: exhausted nonce search")
	return blockchain.Block{}
}

func TestNewSeedsKnownBalancesAtZero(t *testing.T) {
	n := newTestNode(t)
	require.Equal(t, chainutil.Amount(0), n.Balance(n.SelfKey()))
}

func TestHandleReceivedBlockExtendsTip(t *testing.T) {
	n := newTestNode(t)
	genesis := n.chain.Tip()

	b := mineBlock(t, genesis, new(big.Int).Set(genesis.Header.Target))
	n.handleReceivedBlock(b)

	require.Equal(t, b.ID(), n.chain.TipID())
	require.Equal(t, chainutil.Amount(1000), n.balances.Get(crypto.ZeroPublicKey))
}

func TestHandleReceivedBlockRejectsBadTarget(t *testing.T) {
	n := newTestNode(t)
	bad := blockchain.Block{
		Header: blockchain.Header{
			PrevHash: n.chain.TipID(),
			Target:   big.NewInt(1),
			Root:     chainhash.ZeroHash,
		},
		Length: 2,
	}
	n.handleReceivedBlock(bad)
	require.Equal(t, blockchain.Genesis().ID(), n.chain.TipID())
}

func TestHandleReceivedBlockConfirmsMempoolTxns(t *testing.T) {
	n := newTestNode(t)
	genesis := n.chain.Tip()

	senderSk, senderPk, err := crypto.GenerateKey()
	require.NoError(t, err)
	receiverPk := n.SelfKey()

	tx := blockchain.Transaction{Sender: senderPk, Receiver: receiverPk, Amount: 5}
	require.NoError(t, tx.Sign(senderSk))
	n.mempool.Add(tx)

	b := mineBlockWithTxns(t, genesis, new(big.Int).Set(genesis.Header.Target), []blockchain.Transaction{tx})

	n.handleReceivedBlock(b)
	require.Equal(t, b.ID(), n.chain.TipID())
	require.False(t, n.mempool.Has(tx.ID()))
}

func TestAbsorbPendingTxnsAdmitsGossipedTxn(t *testing.T) {
	n := newTestNode(t)
	sk, pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	receiver := n.SelfKey()

	tx := blockchain.Transaction{Sender: pk, Receiver: receiver, Amount: 5}
	require.NoError(t, tx.Sign(sk))

	n.gossipTxnQueue.Push(tx)
	n.absorbPendingTxns()

	require.True(t, n.mempool.Has(tx.ID()))
}

func TestAbsorbPendingTxnsSkipsAlreadyConfirmed(t *testing.T) {
	n := newTestNode(t)
	sk, pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	receiver := n.SelfKey()

	tx := blockchain.Transaction{Sender: pk, Receiver: receiver, Amount: 5}
	require.NoError(t, tx.Sign(sk))

	g := n.chain.Tip()
	g.Txns = []blockchain.Transaction{tx}
	n.chain.Insert(g)
	n.chain.SetTip(g.ID())

	n.gossipTxnQueue.Push(tx)
	n.absorbPendingTxns()

	require.False(t, n.mempool.Has(tx.ID()))
}

func TestDispatchNewPeerRegistersAndAcks(t *testing.T) {
	n := newTestNode(t)
	self := n.conn.LocalAddr().(*net.UDPAddr)

	_, peerPk, err := crypto.GenerateKey()
	require.NoError(t, err)
	conf := wire.NodeConf{Port: self.Port, Address: "127.0.0.1", VK: peerPk.String()}

	env, err := wire.NewEnvelope(wire.MsgNewPeer, conf.VK, conf)
	require.NoError(t, err)

	n.dispatch(env, self)
	require.True(t, n.peers.Has(conf.VK))

	require.NoError(t, n.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 4096)
	read, _, err := n.conn.ReadFromUDP(buf)
	require.NoError(t, err)

	got, err := wire.Decode(buf[:read])
	require.NoError(t, err)
	require.Equal(t, wire.MsgNewPeerAck, got.Type)
	require.Nil(t, got.Data)
}

func TestStatsReflectsGenesis(t *testing.T) {
	n := newTestNode(t)
	s := n.Stats()
	require.Equal(t, int64(1), s.TipLength)
	require.Equal(t, 0, s.PeerCount)
	require.Equal(t, 0, s.MempoolSize)
}
