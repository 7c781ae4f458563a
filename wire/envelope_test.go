// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Foo string `json:"foo"`
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env, err := NewEnvelope(MsgTransaction, "abc", payload{Foo: "bar"})
	require.NoError(t, err)

	b, err := env.Encode()
	require.NoError(t, err)

	got, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, MsgTransaction, got.Type, "decoded envelope:\n%s", spew.Sdump(got))
	require.Equal(t, "abc", got.From)

	var p payload
	require.NoError(t, got.DecodePayload(&p))
	require.Equal(t, "bar", p.Foo, "decoded payload:\n%s", spew.Sdump(p))
}

func TestEnvelopeNullPayload(t *testing.T) {
	env, err := NewEnvelope(MsgNewPeerAck, "abc", nil)
	require.NoError(t, err)
	require.Nil(t, env.Data)

	var p payload
	require.ErrorIs(t, env.DecodePayload(&p), ErrNullPayload)
}

func TestIntEnvelope(t *testing.T) {
	env := NewIntEnvelope(MsgGetBlock, "abc", 42)
	n, err := env.DecodeInt()
	require.NoError(t, err)
	require.Equal(t, int64(42), n)
}
