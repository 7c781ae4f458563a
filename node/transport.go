// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"fmt"
	"net"
	"time"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/wire"
)

// sendEnvelope writes env to addr over this node's socket.
func (n *Node) sendEnvelope(addr *net.UDPAddr, env *wire.Envelope) error {
	b, err := env.Encode()
	if err != nil {
		return err
	}
	_, err = n.conn.WriteToUDP(b, addr)
	return err
}

// replyTo answers whoever is at remote (the socket-level source address
// of the message being replied to) with a message of type t.
func (n *Node) replyTo(remote *net.UDPAddr, t wire.MsgType, payload interface{}) error {
	env, err := wire.NewEnvelope(t, n.cfg.Self.VK, payload)
	if err != nil {
		return err
	}
	return n.sendEnvelope(remote, env)
}

// sendTo addresses a message to a configured peer by its declared
// (address, port), independent of any socket-level source address.
func (n *Node) sendTo(to wire.NodeConf, t wire.MsgType, payload interface{}) error {
	addr, err := net.ResolveUDPAddr("udp4", fmt.Sprintf("%s:%d", to.Address, to.Port))
	if err != nil {
		return err
	}
	env, err := wire.NewEnvelope(t, n.cfg.Self.VK, payload)
	if err != nil {
		return err
	}
	return n.sendEnvelope(addr, env)
}

// sendIntTo addresses a bare-integer message (GET_BLOCK's length
// argument) to a configured peer.
func (n *Node) sendIntTo(to wire.NodeConf, t wire.MsgType, v int64) error {
	addr, err := net.ResolveUDPAddr("udp4", fmt.Sprintf("%s:%d", to.Address, to.Port))
	if err != nil {
		return err
	}
	return n.sendEnvelope(addr, wire.NewIntEnvelope(t, n.cfg.Self.VK, v))
}

// BroadcastWeakHeader implements mining.Broadcaster, relaying a newly
// discovered weak header to every known peer.
func (n *Node) BroadcastWeakHeader(wh blockchain.Header) {
	n.broadcast(wire.MsgWeakHeaderMined, wh)
}

// BroadcastBlock implements selfish.Broadcaster, and is also the honest
// path's own way of announcing a block it has just mined. Blocks received
// from peers are not re-broadcast.
func (n *Node) BroadcastBlock(b blockchain.Block) {
	n.broadcast(wire.MsgStrongBlockMined, b)
}

// BroadcastTransaction relays a client-submitted transaction to every
// known peer.
func (n *Node) BroadcastTransaction(tx blockchain.Transaction) {
	n.broadcast(wire.MsgTransaction, tx)
}

func (n *Node) broadcast(t wire.MsgType, payload interface{}) {
	for _, p := range n.peers.All() {
		if err := n.sendTo(p, t, payload); err != nil {
			log.Errorf("node: broadcast %s to %s:%d failed: %v", t, p.Address, p.Port, err)
		}
	}
}

// The remaining methods implement netsync.Responder: the node runtime's
// half of the initial-sync handshake, bridging the blocking call shape
// netsync.Sync expects onto this node's asynchronous dispatch loop via a
// per-peer pending-response channel.

// SendNewPeer announces this node's own identity to to.
func (n *Node) SendNewPeer(to wire.NodeConf) error {
	n.pendingMu.Lock()
	n.pendingAck[to.VK] = make(chan struct{}, 1)
	n.pendingMu.Unlock()
	return n.sendTo(to, wire.MsgNewPeer, n.cfg.Self)
}

// AwaitAck blocks until to's NEW_PEER_ACK arrives or timeout elapses.
func (n *Node) AwaitAck(to wire.NodeConf, timeout time.Duration) bool {
	n.pendingMu.Lock()
	ch := n.pendingAck[to.VK]
	n.pendingMu.Unlock()
	if ch == nil {
		return false
	}
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (n *Node) signalAck(vk string) {
	n.pendingMu.Lock()
	defer n.pendingMu.Unlock()
	if ch, ok := n.pendingAck[vk]; ok {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SendGetBlock requests the block at length from to.
func (n *Node) SendGetBlock(to wire.NodeConf, length int64) error {
	n.pendingMu.Lock()
	n.pendingBlock[to.VK] = make(chan *blockchain.Block, 1)
	n.pendingMu.Unlock()
	return n.sendIntTo(to, wire.MsgGetBlock, length)
}

// AwaitBlock blocks until to's BLOCK reply arrives or timeout elapses. A
// (nil, true) result means to answered "no such block" - sync's
// termination signal.
func (n *Node) AwaitBlock(to wire.NodeConf, timeout time.Duration) (*blockchain.Block, bool) {
	n.pendingMu.Lock()
	ch := n.pendingBlock[to.VK]
	n.pendingMu.Unlock()
	if ch == nil {
		return nil, false
	}
	select {
	case b := <-ch:
		return b, true
	case <-time.After(timeout):
		return nil, false
	}
}

func (n *Node) signalBlock(vk string, blk *blockchain.Block) {
	n.pendingMu.Lock()
	defer n.pendingMu.Unlock()
	if ch, ok := n.pendingBlock[vk]; ok {
		select {
		case ch <- blk:
		default:
		}
	}
}
