// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/chaincfg"
)

// chainAtConstantInterval builds a synthetic, unmined chain (skipping PoW
// entirely - NextTarget only reads lengths and timestamps) where every
// block arrives exactly TimeBetweenBlocks after its parent's effective
// timestamp, and wires it into a Chain so NextTarget can walk parents.
func chainAtConstantInterval(t *testing.T, n int) (*Chain, []Block) {
	t.Helper()

	c := New()
	genesis := c.Tip()
	blocks := []Block{genesis}

	prev := genesis
	for i := 1; i < n; i++ {
		target := c.NextTarget(prev)
		hdr := prev.Header
		hdr.PrevHash = prev.ID()
		hdr.Timestamp = prev.ExpectedArrival()
		hdr.Nonce = prev.Header.Nonce + 1
		hdr.Target = target
		b := Block{Header: hdr, Length: prev.Length + 1}
		c.Insert(b)
		blocks = append(blocks, b)
		prev = b
	}
	return c, blocks
}

func TestTargetMonotonicityAtConstantInterval(t *testing.T) {
	c, blocks := chainAtConstantInterval(t, chaincfg.BlocksToCheckTarget+2)

	genesisTarget := blocks[0].Header.Target
	for _, b := range blocks {
		require.Zero(t, genesisTarget.Cmp(b.Header.Target),
			"target must stay unchanged when inter-block time always equals TimeBetweenBlocks")
	}

	last := blocks[len(blocks)-1]
	require.Zero(t, genesisTarget.Cmp(c.NextTarget(last)))
}

func TestNextTargetInheritsBetweenRetargetBoundaries(t *testing.T) {
	c := New()
	genesis := c.Tip()
	require.Zero(t, genesis.Header.Target.Cmp(c.NextTarget(genesis)))
}
