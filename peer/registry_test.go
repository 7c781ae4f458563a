// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/wire"
)

func TestRegistryAddDedupAndOrder(t *testing.T) {
	r := NewRegistry()

	a := wire.NodeConf{Port: 9000, Address: "127.0.0.1", VK: "aa"}
	b := wire.NodeConf{Port: 9001, Address: "127.0.0.1", VK: "bb"}

	require.True(t, r.Add(a))
	require.True(t, r.Add(b))
	require.False(t, r.Add(a))
	require.Equal(t, 2, r.Len())
	require.True(t, r.Has("aa"))
	require.False(t, r.Has("cc"))

	all := r.All()
	require.Equal(t, []wire.NodeConf{a, b}, all)
}
