// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package balance maintains the account-balance view of the chain and the
pool of pending, not-yet-mined transactions that sit in front of it.

Unlike the teacher's fee-indexed, UTXO-shaped mempool (github.com/flokiorg/
go-flokicoin/mempool), there is no fee market and no unspent-output set
here: every address has a single running balance, and "does this
transaction belong in the next block" reduces to one question - would
applying it, and every pending transaction ahead of it, ever drive its
sender negative.

# Feature overview

  - An in-memory map from public key to balance, seeded at zero for every
    known peer.
  - ApplyBlock folds a confirmed block's transactions and rewards into the
    balances in order.
  - Rebuild replays an entire mainchain from zero after a fork switch -
    the specification's only required discipline; an incremental
    revert-to-fork-point optimisation is permitted but not implemented
    here.
  - Filter admits a candidate set of pending transactions against a copy
    of the current balances, in a fixed iteration order, dropping any with
    a negative amount, a bad signature, or that would drive their sender
    negative.
  - Pool is the ordered, deduplicated set of transactions awaiting a
    block, with RemovalReason tracking why an entry left it.

# Errors

Transaction rejection is not reported through Go's error type: Filter
returns the admitted and rejected transactions directly, each rejection
tagged with a RemovalReason, since the caller (the node's mempool
admission path) needs the full partition, not just a pass/fail signal.
*/
package balance
