// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Genesis().Header
	h.Nonce = 12345
	h.Timestamp = 1700000000.5

	b, err := json.Marshal(h)
	require.NoError(t, err)

	var got Header
	require.NoError(t, json.Unmarshal(b, &got))

	require.Equal(t, h.PrevHash, got.PrevHash)
	require.Equal(t, h.Timestamp, got.Timestamp)
	require.Equal(t, h.Nonce, got.Nonce)
	require.Equal(t, h.Coinbase, got.Coinbase)
	require.Zero(t, h.Target.Cmp(got.Target))
	require.Equal(t, h.ID(), got.ID())
}

func TestBlockRoundTrip(t *testing.T) {
	b := Genesis()
	b.Header.Root = b.ComputeRoot()
	b.Header.WhdrsHash = b.ComputeWhdrsHash()

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var got Block
	require.NoError(t, json.Unmarshal(data, &got))

	require.Equal(t, b.ID(), got.ID())
	require.Equal(t, b.Length, got.Length)
}

// TestSetHashNotDomainConfusedWithSha3 cross-checks SetHash's SHA-256
// commitment against an independently computed SHA3-256 digest of the same
// pipe-joined input, as a self-test vector against the two algorithms
// silently converging.
func TestSetHashNotDomainConfusedWithSha3(t *testing.T) {
	a := Genesis().Header
	b := a
	b.Nonce = a.Nonce + 1

	joined := a.CanonicalString() + "|" + b.CanonicalString()
	sha256Sum := SetHash([]Header{a, b})
	sha3Sum := sha3.Sum256([]byte(joined))

	require.NotEqual(t, sha256Sum[:], sha3Sum[:])
}

func TestFormatTimestampShortestRoundTrip(t *testing.T) {
	cases := []float64{0, 1542696180, 1700000000.123456, 3.0}
	for _, ts := range cases {
		s := formatTimestamp(ts)
		var parsed float64
		require.NoError(t, json.Unmarshal([]byte(s), &parsed))
		require.Equal(t, ts, parsed)
	}
}
