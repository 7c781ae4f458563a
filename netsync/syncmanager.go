// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package netsync runs initial block download: the NEW_PEER announce/ack
// handshake and the GET_BLOCK round robin of §4.8. Ground: the teacher's
// sync manager Config/PeerNotifier shape, collapsed from a header-first
// full-node sync manager (checkpoints, fee estimator, orphan pool) down to
// the single linear length-by-length fetch this chain's account model and
// seven-message protocol call for.
package netsync

import (
	"time"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/wire"
)

// ackTimeout is how long the NEW_PEER handshake waits for a NEW_PEER_ACK
// before considering a peer offline, per §4.8.
const ackTimeout = 1 * time.Second

// getBlockTimeout is the retransmit timeout for one GET_BLOCK request,
// per §4.8.
const getBlockTimeout = 2 * time.Second

// Responder is the node runtime's half of the handshake: sending the two
// outbound message kinds initial sync needs, and blocking (up to a
// timeout) for the corresponding response. The node package implements
// this over its UDP socket and its own per-peer pending-response
// bookkeeping; netsync only drives the protocol sequencing.
type Responder interface {
	SendNewPeer(to wire.NodeConf) error
	AwaitAck(to wire.NodeConf, timeout time.Duration) bool
	SendGetBlock(to wire.NodeConf, length int64) error
	AwaitBlock(to wire.NodeConf, timeout time.Duration) (block *blockchain.Block, ok bool)
}

// Sync runs §4.8 against chain: announce self to every configured peer,
// wait for acks, and - if at least one peer answered - round-robin
// GET_BLOCK requests starting at chain's current tip length+1 until a
// BLOCK response with a null payload ends the sync. Returns the peers that
// acked (the "online" set); an empty result means this node is the first
// online node and should start mining from genesis.
func Sync(chain *blockchain.Chain, peers []wire.NodeConf, r Responder) []wire.NodeConf {
	var online []wire.NodeConf
	for _, p := range peers {
		if err := r.SendNewPeer(p); err != nil {
			log.Warnf("netsync: NEW_PEER to %s failed: %v", p.Address, err)
			continue
		}
		if r.AwaitAck(p, ackTimeout) {
			online = append(online, p)
		}
	}

	if len(online) == 0 {
		log.Infof("netsync: no peers acknowledged, starting from genesis")
		return online
	}

	log.Infof("netsync: %d peer(s) online, downloading chain", len(online))

	for i := 0; ; i++ {
		target := chain.Tip().Length + 1
		p := online[i%len(online)]

		block, ok := requestVia(r, target, p)
		if !ok {
			continue
		}
		if block == nil {
			log.Infof("netsync: download complete at length %d", target-1)
			return online
		}

		if status := chain.ValidateBlock(*block); status != blockchain.StatusValid {
			log.Warnf("netsync: peer %s sent invalid block at length %d: %s", p.Address, target, status)
			continue
		}
		chain.Insert(*block)
		chain.SetTip(block.ID())
	}
}

// requestVia issues one GET_BLOCK for length against p and waits for its
// reply, logging and reporting failure on a send error or timeout so the
// caller retries against the next peer in the round robin.
func requestVia(r Responder, length int64, p wire.NodeConf) (*blockchain.Block, bool) {
	if err := r.SendGetBlock(p, length); err != nil {
		log.Warnf("netsync: GET_BLOCK(%d) to %s failed: %v", length, p.Address, err)
		return nil, false
	}
	return r.AwaitBlock(p, getBlockTimeout)
}
