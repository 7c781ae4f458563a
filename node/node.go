// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node wires together the blockchain, balance, mining, selfish and
// netsync packages into the three concurrent tasks §5 describes: a
// listening task owning the UDP socket and the peer list, a mining task
// owning the chain store, the weak-header cache and the balance model,
// and the queues that are the only channel of communication between them.
// Ground: node.py's Node/SelfishNode classes, which play the same
// orchestrating role over the same four queues and the same
// blockchain_downloaded barrier.
package node

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"net"
	"sync"

	"github.com/strongchain-go/node/balance"
	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/mining"
	"github.com/strongchain-go/node/netsync"
	"github.com/strongchain-go/node/peer"
	"github.com/strongchain-go/node/queue"
	"github.com/strongchain-go/node/selfish"
	"github.com/strongchain-go/node/wire"
)

// Node owns every piece of state §5 assigns to the mining task or the
// listening task, plus the queues that are the only legal path between
// them. Methods fall into three groups: the mining-task-only
// mutators (unexported, called only from runMining), the listening-task
// socket plumbing (listen.go, transport.go), and the read-only query
// surface a client front-end can call from any goroutine.
type Node struct {
	cfg     Config
	selfKey crypto.PublicKey

	chain          *blockchain.Chain
	balances       *balance.Balances
	honestBalances *balance.Balances // non-nil only when cfg.Selfish
	mempool        *balance.Pool
	cache          *mining.WhdrsCache
	peers          *peer.Registry
	selfState      *selfish.State
	rng            *rand.Rand

	strongQueue    *queue.Queue[blockchain.Block]
	weakQueue      *queue.Queue[blockchain.Header]
	gossipTxnQueue *queue.Queue[blockchain.Transaction]
	clientTxnQueue *queue.Queue[blockchain.Transaction]

	conn *net.UDPConn

	downloaded chan struct{}

	pendingMu     sync.Mutex
	pendingAck    map[string]chan struct{}
	pendingBlock  map[string]chan *blockchain.Block
}

// New assembles a node ready for Run. seedKey is the value mining's nonce
// PRNG is derived from - the running node's log file path, per §4.4.
func New(cfg Config, seedKey string) *Node {
	known := make([]crypto.PublicKey, 0, len(cfg.Peers)+1)
	known = append(known, cfg.PrivKey.Public())
	for _, p := range cfg.Peers {
		if pk, err := crypto.PublicKeyFromString(p.VK); err == nil {
			known = append(known, pk)
		}
	}

	n := &Node{
		cfg:            cfg,
		selfKey:        cfg.PrivKey.Public(),
		chain:          blockchain.New(),
		balances:       balance.New(known),
		mempool:        balance.NewPool(),
		cache:          mining.NewWhdrsCache(),
		peers:          peer.NewRegistry(),
		rng:            mining.NewNonceSource(seedKey),
		strongQueue:    queue.New[blockchain.Block](queueCapacity),
		weakQueue:      queue.New[blockchain.Header](queueCapacity),
		gossipTxnQueue: queue.New[blockchain.Transaction](queueCapacity),
		clientTxnQueue: queue.New[blockchain.Transaction](queueCapacity),
		downloaded:     make(chan struct{}),
		pendingAck:     make(map[string]chan struct{}),
		pendingBlock:   make(map[string]chan *blockchain.Block),
	}
	if cfg.Selfish {
		n.honestBalances = balance.New(known)
		n.selfState = &selfish.State{}
	}
	return n
}

// Run opens the node's UDP socket, starts the listening task, blocks
// through initial sync (§4.8), then starts the mining task. It returns
// once ctx is cancelled and both tasks have wound down.
func (n *Node) Run(ctx context.Context) error {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: n.cfg.Self.Port})
	if err != nil {
		return fmt.Errorf("node: listen on port %d: %w", n.cfg.Self.Port, err)
	}
	n.conn = conn
	defer conn.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		n.listen(ctx)
	}()

	online := netsync.Sync(n.chain, n.cfg.Peers, n)
	for _, p := range online {
		n.peers.Add(p)
	}
	mainchain := n.chain.Mainchain(n.chain.TipID())
	n.balances.Rebuild(mainchain)
	if n.cfg.Selfish {
		n.honestBalances.Rebuild(mainchain)
	}
	close(n.downloaded)
	log.Infof("node: blockchain_downloaded, starting mining at tip length %d", n.chain.Tip().Length)

	wg.Add(1)
	go func() {
		defer wg.Done()
		n.runMining(ctx)
	}()

	wg.Wait()
	return nil
}

// SubmitTransaction enqueues tx on the client task's inbound queue, the
// one path a front-end has into the mining task's mempool.
func (n *Node) SubmitTransaction(tx blockchain.Transaction) {
	n.clientTxnQueue.Push(tx)
}

// runMining is the mining task's top-level loop: absorb any pending
// transactions, build one round against the current tip, and either mine
// a block or process whatever pre-empted the round.
func (n *Node) runMining(ctx context.Context) {
	<-n.downloaded
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n.absorbPendingTxns()

		tip := n.chain.Tip()
		admitted := balance.Filter(n.ownBalances(), n.mempool.Ordered()).Admitted
		round := &mining.Round{
			Chain:          n.chain,
			Cache:          n.cache,
			Coinbase:       n.selfKey,
			Txns:           admitted,
			StrongQueue:    n.strongQueue,
			WeakQueue:      n.weakQueue,
			Broadcaster:    n,
			BroadcastWhdrs: !n.cfg.Selfish,
		}

		block, found := mining.MineNextBlock(ctx, round, n.rng)
		if !found {
			b, ok := n.strongQueue.Pop(ctx)
			if !ok {
				return
			}
			n.handleReceivedBlock(b)
			continue
		}

		if n.cfg.Selfish {
			n.handleSelfishMined(tip, block)
		} else {
			n.handleOwnMined(block)
		}
	}
}

// ownBalances is the view a mining round's mempool filter runs against:
// the private view when selfish, the single live view otherwise.
func (n *Node) ownBalances() *balance.Balances {
	return n.balances
}

// handleOwnMined extends the chain with a block this node just mined and
// broadcasts it, per §4.4/§4.5's honest path.
func (n *Node) handleOwnMined(block blockchain.Block) {
	n.chain.Insert(block)
	n.chain.SetTip(block.ID())
	n.balances.ApplyBlock(block)
	n.confirmMined(block)
	n.BroadcastBlock(block)
}

// handleSelfishMined records a privately mined block without broadcasting
// it or its weak headers, per §4.7.
func (n *Node) handleSelfishMined(previousTip, block blockchain.Block) {
	n.chain.Insert(block)
	n.chain.SetTip(block.ID())
	n.balances.ApplyBlock(block)
	n.confirmMined(block)
	n.selfState.OnMinedBlock(previousTip)
	log.Infof("selfish: mined block at length %d privately (fork_mark set: %v)", block.Length, n.selfState.HasForkMark())
}

// handleReceivedBlock runs §4.3 validation and, if it passes, §4.5's
// extend/fork-switch logic (or §4.7's selfish reaction).
func (n *Node) handleReceivedBlock(b blockchain.Block) {
	if status := n.chain.ValidateBlock(b); status != blockchain.StatusValid {
		log.Warnf("node: rejected block at length %d: %s", b.Length, status)
		return
	}

	if n.cfg.Selfish {
		n.handleSelfishReceived(b)
		return
	}

	tip := n.chain.Tip()
	n.chain.Insert(b)

	if b.Header.PrevHash == tip.ID() {
		n.chain.SetTip(b.ID())
		n.balances.ApplyBlock(b)
		n.confirmMined(b)
		return
	}

	pR := n.chain.ChainPoW(b.ID())
	pS := new(big.Rat).Add(n.chain.ChainPoW(tip.ID()), blockchain.CurrentWhdrsPoW(tip, n.cache.Len()))
	if pR.Cmp(pS) <= 0 {
		log.Infof("node: ignoring fork at length %d (insufficient PoW)", b.Length)
		return
	}

	log.Infof("node: switching tip to fork at length %d", b.Length)
	n.chain.SetTip(b.ID())
	mainchain := n.chain.Mainchain(b.ID())
	n.balances.Rebuild(mainchain)
	n.cache.Reset()
	n.purgeConfirmed(mainchain)
}

// handleSelfishReceived reacts to a competing block per §4.7.
func (n *Node) handleSelfishReceived(b blockchain.Block) {
	decision := selfish.React(n.chain, n.selfState, b, n.cache.Len(), n.balances, n.honestBalances, n)
	log.Infof("selfish: %s reacting to block at length %d", decision, b.Length)
	if decision == selfish.DecisionGiveUp {
		n.cache.Reset()
		n.purgeConfirmed(n.chain.Mainchain(n.chain.TipID()))
	}
}

// confirmMined removes b's transactions from the mempool as confirmed.
func (n *Node) confirmMined(b blockchain.Block) {
	n.cache.Reset()
	for _, tx := range b.Txns {
		n.mempool.Remove(tx.ID(), balance.RemovalReasonBlock)
	}
}

// purgeConfirmed drops any pooled transaction that now already appears
// somewhere along mainchain, the mempool-side effect of a fork switch.
func (n *Node) purgeConfirmed(mainchain []blockchain.Block) {
	for _, tx := range n.mempool.Ordered() {
		if balance.DuplicateInChain(mainchain, tx.ID()) {
			n.mempool.Remove(tx.ID(), balance.RemovalReasonReorg)
		}
	}
}

// absorbPendingTxns drains both transaction queues into the mempool ahead
// of building the next mining round's transaction set.
func (n *Node) absorbPendingTxns() {
	for {
		tx, ok := n.gossipTxnQueue.TryPop()
		if !ok {
			break
		}
		n.admitTxn(tx, false)
	}
	for {
		tx, ok := n.clientTxnQueue.TryPop()
		if !ok {
			break
		}
		n.admitTxn(tx, true)
	}
}

// admitTxn adds tx to the mempool unless it's already pooled, was
// recently rejected, or already confirmed along the mainchain. A
// client-submitted transaction (rather than one relayed by a peer) is
// additionally gossiped onward.
func (n *Node) admitTxn(tx blockchain.Transaction, fromClient bool) {
	if n.mempool.Has(tx.ID()) || n.mempool.RecentlyRejected(tx.ID()) {
		return
	}
	if balance.DuplicateInChain(n.chain.Mainchain(n.chain.TipID()), tx.ID()) {
		return
	}
	if !n.mempool.Add(tx) {
		return
	}
	if fromClient {
		n.BroadcastTransaction(tx)
	}
}
