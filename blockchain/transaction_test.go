// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongchain-go/node/crypto"
)

func newSignedTestTxn(t *testing.T) (Transaction, crypto.PrivateKey) {
	t.Helper()

	sk, pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, receiver, err := crypto.GenerateKey()
	require.NoError(t, err)

	tx := Transaction{
		Sender:   pk,
		Receiver: receiver,
		Amount:   500,
		Comment:  "test",
	}
	require.NoError(t, tx.Sign(sk))
	return tx, sk
}

func TestTransactionSignatureVerifies(t *testing.T) {
	tx, _ := newSignedTestTxn(t)
	require.True(t, tx.VerifySignature())
}

func TestTransactionSignatureBinding(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"sender", func(tx *Transaction) { _, pk, _ := crypto.GenerateKey(); tx.Sender = pk }},
		{"receiver", func(tx *Transaction) { _, pk, _ := crypto.GenerateKey(); tx.Receiver = pk }},
		{"amount", func(tx *Transaction) { tx.Amount++ }},
		{"comment", func(tx *Transaction) { tx.Comment += "!" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx, _ := newSignedTestTxn(t)
			tc.mutate(&tx)
			require.False(t, tx.VerifySignature())
		})
	}
}

func TestTransactionIDExcludesSignature(t *testing.T) {
	tx, _ := newSignedTestTxn(t)
	id1 := tx.ID()
	tx.Signature = ""
	require.Equal(t, id1, tx.ID())
}
