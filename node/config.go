// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/wire"
)

// queueCapacity bounds each of the four inbound queues §5 describes. A
// node under normal gossip load never approaches this; it exists so a
// slow mining round applies backpressure to senders instead of growing
// memory without bound.
const queueCapacity = 256

// Config is everything New needs to assemble a node: its own identity and
// listening address, the peer set to announce itself to at startup, its
// signing key, and whether it runs the selfish-mining variant of §4.7.
type Config struct {
	Self    wire.NodeConf
	Peers   []wire.NodeConf
	PrivKey crypto.PrivateKey
	Selfish bool
}
