// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chainutil"
	"github.com/strongchain-go/node/crypto"
)

func newKey(t *testing.T) crypto.PublicKey {
	t.Helper()
	_, pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	return pk
}

func TestApplyBlockCoinbaseReward(t *testing.T) {
	miner := newKey(t)
	bal := New([]crypto.PublicKey{miner})

	b := blockchain.Genesis()
	b.Header.Coinbase = miner

	bal.ApplyBlock(b)
	require.Equal(t, chainutil.Amount(1000), bal.Get(miner))
}

func TestApplyBlockWeakHeaderReward(t *testing.T) {
	miner := newKey(t)
	whA := newKey(t)
	whB := newKey(t)
	bal := New([]crypto.PublicKey{miner, whA, whB})

	b := blockchain.Genesis()
	b.Header.Coinbase = miner
	hdrA := b.Header
	hdrA.Coinbase = whA
	hdrB := b.Header
	hdrB.Coinbase = whB
	b.WeakHdrs = []blockchain.Header{hdrA, hdrB}

	bal.ApplyBlock(b)
	require.Equal(t, chainutil.Amount(1000), bal.Get(miner))
	require.Equal(t, chainutil.Amount(125), bal.Get(whA))
	require.Equal(t, chainutil.Amount(125), bal.Get(whB))
}

func TestRebuildZeroesBeforeReplay(t *testing.T) {
	miner := newKey(t)
	bal := New([]crypto.PublicKey{miner})
	bal.m[miner.String()] = 9999

	g := blockchain.Genesis()
	g.Header.Coinbase = miner
	bal.Rebuild([]blockchain.Block{g})
	require.Equal(t, chainutil.Amount(1000), bal.Get(miner))
}

func TestFilterRejectsNegativeAmount(t *testing.T) {
	sender := newKey(t)
	receiver := newKey(t)
	bal := New([]crypto.PublicKey{sender, receiver})

	tx := blockchain.Transaction{Sender: sender, Receiver: receiver, Amount: -1}
	res := Filter(bal, []blockchain.Transaction{tx})
	require.Empty(t, res.Admitted)
	require.Equal(t, RemovalReasonNegativeAmount, res.Rejected[tx.ID()])
}

func TestFilterRejectsInsufficientFunds(t *testing.T) {
	senderSk, senderPk, err := crypto.GenerateKey()
	require.NoError(t, err)
	receiver := newKey(t)
	bal := New([]crypto.PublicKey{senderPk, receiver})

	tx := blockchain.Transaction{Sender: senderPk, Receiver: receiver, Amount: 100}
	require.NoError(t, tx.Sign(senderSk))

	res := Filter(bal, []blockchain.Transaction{tx})
	require.Empty(t, res.Admitted)
	require.Equal(t, RemovalReasonInsufficientFunds, res.Rejected[tx.ID()])
}

func TestFilterOrderSensitive(t *testing.T) {
	senderSk, senderPk, err := crypto.GenerateKey()
	require.NoError(t, err)
	receiver := newKey(t)
	bal := New([]crypto.PublicKey{senderPk, receiver})
	bal.m[senderPk.String()] = 100

	tx1 := blockchain.Transaction{Sender: senderPk, Receiver: receiver, Amount: 60}
	require.NoError(t, tx1.Sign(senderSk))
	tx2 := blockchain.Transaction{Sender: senderPk, Receiver: receiver, Amount: 60, Comment: "second"}
	require.NoError(t, tx2.Sign(senderSk))

	res := Filter(bal, []blockchain.Transaction{tx1, tx2})
	require.Len(t, res.Admitted, 1)
	require.Equal(t, tx1.ID(), res.Admitted[0].ID())
	require.Equal(t, RemovalReasonInsufficientFunds, res.Rejected[tx2.ID()])
}

func TestPoolDedup(t *testing.T) {
	sk, pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	receiver := newKey(t)
	tx := blockchain.Transaction{Sender: pk, Receiver: receiver, Amount: 10}
	require.NoError(t, tx.Sign(sk))

	p := NewPool()
	require.True(t, p.Add(tx))
	require.False(t, p.Add(tx))
	require.Len(t, p.Ordered(), 1)
}

func TestPoolSkipsRecentlyRejected(t *testing.T) {
	sk, pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	receiver := newKey(t)
	tx := blockchain.Transaction{Sender: pk, Receiver: receiver, Amount: 10}
	require.NoError(t, tx.Sign(sk))

	p := NewPool()
	require.True(t, p.Add(tx))
	p.Remove(tx.ID(), RemovalReasonBadSignature)
	require.True(t, p.RecentlyRejected(tx.ID()))
	require.False(t, p.Add(tx))
	require.Empty(t, p.Ordered())
}

func TestDuplicateInChain(t *testing.T) {
	sk, pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	receiver := newKey(t)
	tx := blockchain.Transaction{Sender: pk, Receiver: receiver, Amount: 10}
	require.NoError(t, tx.Sign(sk))

	g := blockchain.Genesis()
	g.Txns = []blockchain.Transaction{tx}

	require.True(t, DuplicateInChain([]blockchain.Block{g}, tx.ID()))
	require.False(t, DuplicateInChain([]blockchain.Block{g}, blockchain.Genesis().ID()))
}
