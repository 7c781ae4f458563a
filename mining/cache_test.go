// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/blockchain"
)

func TestWhdrsCacheOrderAndDedup(t *testing.T) {
	c := NewWhdrsCache()

	h1 := blockchain.Header{Nonce: 1, Target: big.NewInt(1)}
	h2 := blockchain.Header{Nonce: 2, Target: big.NewInt(1)}

	require.True(t, c.Add(h1.ID(), h1))
	require.True(t, c.Add(h2.ID(), h2))
	require.False(t, c.Add(h1.ID(), h1))
	require.Equal(t, 2, c.Len())

	values := c.Values()
	require.Equal(t, h1.ID(), values[0].ID())
	require.Equal(t, h2.ID(), values[1].ID())

	require.True(t, c.Has(h1.ID()))
	c.Reset()
	require.Equal(t, 0, c.Len())
	require.False(t, c.Has(h1.ID()))
}
