// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeRootEmpty(t *testing.T) {
	require.Equal(t, ZeroRoot, ComputeRoot(nil))
}

func TestComputeRootSingleLeaf(t *testing.T) {
	root := ComputeRoot([]string{"a"})
	require.Equal(t, leafHash("a"), root)
}

func TestComputeRootOddPromotion(t *testing.T) {
	leaves := []string{"a", "b", "c"}
	root := ComputeRoot(leaves)

	h0, h1, h2 := leafHash("a"), leafHash("b"), leafHash("c")
	pair := pairHash(h0, h1)
	want := pairHash(pair, h2)
	require.Equal(t, want, root, "odd leaf must promote unpaired, not duplicate")
}

func TestProofAndVerifyEven(t *testing.T) {
	leaves := []string{"a", "b", "c", "d"}
	root := ComputeRoot(leaves)

	for i, leaf := range leaves {
		proof := Proof(leaves, i)
		require.True(t, Verify(leaf, proof, root), "leaf %d should verify", i)
	}
}

func TestProofAndVerifyOdd(t *testing.T) {
	leaves := []string{"a", "b", "c", "d", "e"}
	root := ComputeRoot(leaves)

	for i, leaf := range leaves {
		proof := Proof(leaves, i)
		require.True(t, Verify(leaf, proof, root), "leaf %d should verify", i)
	}
}

func TestProofOutOfRange(t *testing.T) {
	require.Nil(t, Proof([]string{"a"}, 5))
	require.Nil(t, Proof([]string{"a"}, -1))
}

func TestVerifyRejectsTamperedLeaf(t *testing.T) {
	leaves := []string{"a", "b", "c"}
	root := ComputeRoot(leaves)
	proof := Proof(leaves, 0)
	require.False(t, Verify("tampered", proof, root))
}
