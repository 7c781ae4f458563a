// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"net"
	"time"

	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/wire"
)

// readTimeout bounds each blocking socket read so the listening task stays
// responsive to stop_listening, per §5.
const readTimeout = 1 * time.Second

// listen is the listening task: blocking receive on the UDP socket,
// dispatching each decoded envelope. It grows the peer list on NEW_PEER;
// every other mutation it performs is an enqueue. Run also adds the peers
// that acknowledged initial sync, from its own goroutine rather than this
// task.
func (n *Node) listen(ctx context.Context) {
	buf := make([]byte, wire.MaxDatagramSize)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := n.conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			log.Errorf("node: set read deadline: %v", err)
			return
		}
		read, remote, err := n.conn.ReadFromUDP(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			log.Warnf("node: socket read failed: %v", err)
			continue
		}

		env, err := wire.Decode(buf[:read])
		if err != nil {
			log.Warnf("node: malformed datagram from %s: %v", remote, err)
			continue
		}
		n.dispatch(env, remote)
	}
}

// dispatch routes one decoded envelope to its queue, its pending-response
// waiter, or a direct reply, per the seven message kinds of §6.
func (n *Node) dispatch(env *wire.Envelope, remote *net.UDPAddr) {
	switch env.Type {
	case wire.MsgStrongBlockMined:
		var b blockchain.Block
		if err := env.DecodePayload(&b); err != nil {
			log.Warnf("node: malformed STRONG_BLOCK_MINED from %s: %v", remote, err)
			return
		}
		n.strongQueue.Push(b)

	case wire.MsgWeakHeaderMined:
		var wh blockchain.Header
		if err := env.DecodePayload(&wh); err != nil {
			log.Warnf("node: malformed WEAK_HEADER_MINED from %s: %v", remote, err)
			return
		}
		n.weakQueue.Push(wh)

	case wire.MsgNewPeer:
		var conf wire.NodeConf
		if err := env.DecodePayload(&conf); err != nil {
			log.Warnf("node: malformed NEW_PEER from %s: %v", remote, err)
			return
		}
		if n.peers.Add(conf) {
			log.Infof("node: registered peer %s at %s:%d", conf.VK, conf.Address, conf.Port)
		}
		if err := n.replyTo(remote, wire.MsgNewPeerAck, nil); err != nil {
			log.Errorf("node: NEW_PEER_ACK to %s failed: %v", remote, err)
		}

	case wire.MsgNewPeerAck:
		n.signalAck(env.From)

	case wire.MsgTransaction:
		var tx blockchain.Transaction
		if err := env.DecodePayload(&tx); err != nil {
			log.Warnf("node: malformed TRANSACTION from %s: %v", remote, err)
			return
		}
		n.gossipTxnQueue.Push(tx)

	case wire.MsgGetBlock:
		length, err := env.DecodeInt()
		if err != nil {
			log.Warnf("node: malformed GET_BLOCK from %s: %v", remote, err)
			return
		}
		n.replyGetBlock(remote, length)

	case wire.MsgBlock:
		n.dispatchBlock(env, remote)

	default:
		log.Warnf("node: unknown message type %d from %s", env.Type, remote)
	}
}

// replyGetBlock answers a GET_BLOCK for length along the local tip's
// mainchain, or a null BLOCK if this node's chain doesn't reach that far.
func (n *Node) replyGetBlock(remote *net.UDPAddr, length int64) {
	blk, ok := n.chain.BlockByLength(n.chain.TipID(), length)
	var err error
	if ok {
		err = n.replyTo(remote, wire.MsgBlock, blk)
	} else {
		err = n.replyTo(remote, wire.MsgBlock, nil)
	}
	if err != nil {
		log.Errorf("node: BLOCK reply to %s failed: %v", remote, err)
	}
}

// dispatchBlock decodes a BLOCK reply (or its null-payload "no such
// block" form) and delivers it to whichever pending GET_BLOCK is waiting
// on its sender.
func (n *Node) dispatchBlock(env *wire.Envelope, remote *net.UDPAddr) {
	var blk *blockchain.Block
	if env.Data != nil {
		var b blockchain.Block
		if err := env.DecodePayload(&b); err != nil {
			log.Warnf("node: malformed BLOCK from %s: %v", remote, err)
			return
		}
		blk = &b
	}
	n.signalBlock(env.From, blk)
}
