// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire carries the peer protocol's on-the-wire envelope: the seven
// message types, the double-encoded JSON envelope, and the NodeConf record
// exchanged during peer discovery. Ground: wire/msgping.go's Message
// interface shape and wire/protocol.go's command constants, adapted from
// btcd's binary framing to the JSON-over-UDP framing §6 mandates.
package wire

// MsgType identifies the kind of payload an Envelope carries.
type MsgType int

const (
	// MsgStrongBlockMined carries a serialised block that extends the chain.
	MsgStrongBlockMined MsgType = 1
	// MsgWeakHeaderMined carries a serialised weak header.
	MsgWeakHeaderMined MsgType = 2
	// MsgNewPeer carries a serialised NodeConf announcing a new peer.
	MsgNewPeer MsgType = 3
	// MsgNewPeerAck acknowledges a MsgNewPeer; its payload is always null.
	MsgNewPeerAck MsgType = 4
	// MsgTransaction carries a serialised, signed transaction.
	MsgTransaction MsgType = 5
	// MsgGetBlock requests the block at a given length; payload is an
	// integer.
	MsgGetBlock MsgType = 6
	// MsgBlock answers a MsgGetBlock with a serialised block, or a null
	// payload meaning "no such block".
	MsgBlock MsgType = 7
)

func (t MsgType) String() string {
	switch t {
	case MsgStrongBlockMined:
		return "STRONG_BLOCK_MINED"
	case MsgWeakHeaderMined:
		return "WEAK_HEADER_MINED"
	case MsgNewPeer:
		return "NEW_PEER"
	case MsgNewPeerAck:
		return "NEW_PEER_ACK"
	case MsgTransaction:
		return "TRANSACTION"
	case MsgGetBlock:
		return "GET_BLOCK"
	case MsgBlock:
		return "BLOCK"
	default:
		return "UNKNOWN"
	}
}

// MaxDatagramSize is the largest UDP datagram this protocol will send or
// accept, per §6.
const MaxDatagramSize = 2 * 1024 * 1024

// NodeConf is the peer-identifying record exchanged in a NEW_PEER message:
// the sender's listening port, its address, and its public key (hex).
// Ground: §6's payload description and connmgr/doc.go's peer-identity
// concept.
type NodeConf struct {
	Port    int    `json:"port"`
	Address string `json:"address"`
	VK      string `json:"vk"`
}
