// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

// CentsPerUnit is the number of cents in one unit of account. Transaction
// and reward amounts carry two decimal places of precision, ground: §3's
// "non-negative rational with two-decimal precision is sufficient" and the
// teacher's own Loki-per-FLC scaling constant pattern (const.go).
const CentsPerUnit = 100
