// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/chainutil"
	"github.com/strongchain-go/node/crypto"
)

// Transaction is a signed transfer of value from sender to receiver. Ground:
// strongchain/transaction.py; field order matches §3 and the teacher's
// to_json field-ordering convention.
type Transaction struct {
	Sender    crypto.PublicKey `json:"sender"`
	Receiver  crypto.PublicKey `json:"receiver"`
	Amount    chainutil.Amount `json:"amount"`
	Comment   string           `json:"comment"`
	Signature string           `json:"signature"`
}

// txnIDFields is the subset of a transaction's fields the identifier is
// computed over - everything except the signature, per §3.
type txnIDFields struct {
	Sender   crypto.PublicKey `json:"sender"`
	Receiver crypto.PublicKey `json:"receiver"`
	Amount   chainutil.Amount `json:"amount"`
	Comment  string           `json:"comment"`
}

// ID returns the transaction's identifier: SHA-256 of the canonical JSON of
// (sender, receiver, amount, comment).
func (t Transaction) ID() chainhash.Hash {
	b := canonicalJSON(txnIDFields{
		Sender:   t.Sender,
		Receiver: t.Receiver,
		Amount:   t.Amount,
		Comment:  t.Comment,
	})
	return chainhash.HashH(b)
}

// CanonicalString is the full canonical JSON of t, used as a Merkle leaf.
func (t Transaction) CanonicalString() string {
	return string(canonicalJSON(t))
}

// Sign computes t's identifier and signs it with sk, filling in Signature.
// t.Sender must already equal sk's public key.
func (t *Transaction) Sign(sk crypto.PrivateKey) error {
	id := t.ID()
	sig, err := crypto.Sign(sk, []byte(id.String()))
	if err != nil {
		return err
	}
	t.Signature = hexEncode(sig)
	return nil
}

// VerifySignature reports whether t's signature validates against its
// sender's public key and current field values, mirroring
// Transaction.validate_sig.
func (t Transaction) VerifySignature() bool {
	sig, err := hexDecode(t.Signature)
	if err != nil {
		return false
	}
	id := t.ID()
	return crypto.Verify(t.Sender, sig, []byte(id.String()))
}
