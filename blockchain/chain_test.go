// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/chaincfg"
	"github.com/strongchain-go/node/chaincfg/chainhash"
)

// mineTestBlock brute-forces a nonce producing a valid strong block on top
// of parent, with no transactions or weak headers. The genesis-inherited
// target is loose enough (top 16 bits zero) that this finishes quickly.
func mineTestBlock(t *testing.T, c *Chain, parent Block, ts float64) Block {
	t.Helper()

	target := c.NextTarget(parent)
	hdr := Header{
		PrevHash:  parent.ID(),
		Timestamp: ts,
		Root:      chainhash.ZeroHash,
		WhdrsHash: chainhash.ZeroHash,
		Coinbase:  parent.Header.Coinbase,
		Target:    target,
	}

	for nonce := int64(0); ; nonce++ {
		hdr.Nonce = nonce
		if hdr.ID().Big().Cmp(target) < 0 {
			break
		}
	}

	return Block{
		Header: hdr,
		Length: parent.Length + 1,
	}
}

func TestChainGenesisOnly(t *testing.T) {
	c := New()
	require.Equal(t, int64(chaincfg.GenesisLength), c.Tip().Length)

	wantPoW := c.Tip().PoW()
	require.Equal(t, wantPoW, c.ChainPoW(c.TipID()))
}

func TestChainExtendAndMainchain(t *testing.T) {
	c := New()
	genesis := c.Tip()

	b1 := mineTestBlock(t, c, genesis, genesis.ExpectedArrival())
	require.Equal(t, StatusValid, c.ValidateBlock(b1))
	c.Insert(b1)
	c.SetTip(b1.ID())

	chain := c.Mainchain(c.TipID())
	require.Len(t, chain, 2)
	require.Equal(t, genesis.ID(), chain[0].ID())
	require.Equal(t, b1.ID(), chain[1].ID())
}

func TestValidateBlockDuplicate(t *testing.T) {
	c := New()
	require.Equal(t, StatusExistingBlock, c.ValidateBlock(c.Tip()))
}

func TestValidateBlockNonExistingParent(t *testing.T) {
	c := New()
	b := c.Tip()
	b.Header.PrevHash = chainhash.HashH([]byte("nope"))
	require.Equal(t, StatusNonExistingPred, c.ValidateBlock(b))
}

func TestValidateBlockBadRoot(t *testing.T) {
	c := New()
	genesis := c.Tip()
	b := mineTestBlock(t, c, genesis, genesis.ExpectedArrival())
	b.Header.Root = chainhash.HashH([]byte("tampered"))
	require.Equal(t, StatusTxnsIntegrity, c.ValidateBlock(b))
}

func TestValidateBlockBadTarget(t *testing.T) {
	c := New()
	genesis := c.Tip()
	b := mineTestBlock(t, c, genesis, genesis.ExpectedArrival())
	b.Header.Target = chaincfg.MaxTarget
	require.Equal(t, StatusTargetValue, c.ValidateBlock(b))
}

func TestBlockByLength(t *testing.T) {
	c := New()
	genesis := c.Tip()
	b1 := mineTestBlock(t, c, genesis, genesis.ExpectedArrival())
	c.Insert(b1)
	c.SetTip(b1.ID())

	got, ok := c.BlockByLength(c.TipID(), 1)
	require.True(t, ok)
	require.Equal(t, genesis.ID(), got.ID())

	_, ok = c.BlockByLength(c.TipID(), 5)
	require.False(t, ok)
}
