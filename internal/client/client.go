// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package client is the interactive front-end a running node's process
// exposes on stdin/stdout: a line-oriented REPL over the node package's
// read-only query surface and its one write path, SubmitTransaction.
// Ground: the teacher's flokicoind-cli command dispatch (one verb per
// line, parsed arguments, human-readable result or error), collapsed from
// JSON-RPC method dispatch down to a single local process's command loop
// since this chain has no RPC server of its own.
package client

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/strongchain-go/node/balance"
	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/chaincfg/chainhash"
	"github.com/strongchain-go/node/chainutil"
	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/merkle"
	"github.com/strongchain-go/node/node"
)

// Run drives the REPL against n until ctx is cancelled or stdin closes.
// signKey signs every transaction the "send" command submits; it must match
// n.SelfKey(). setVerbose, if non-nil, is called when the "verbose" command
// toggles logging, letting the caller raise or lower every subsystem
// logger's level in step with the client's own idea of verbosity.
func Run(ctx context.Context, n *node.Node, signKey crypto.PrivateKey, setVerbose func(bool)) {
	fmt.Printf("strongchaind client - self %s\ntype 'help' for commands\n", n.SelfKey())

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	verbose := false
	var sent []chainhash.Hash
	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			if exit := dispatch(n, signKey, setVerbose, line, &verbose, &sent); exit {
				return
			}
		}
	}
}

// dispatch runs one command line and reports whether the REPL should
// stop.
func dispatch(n *node.Node, signKey crypto.PrivateKey, setVerbose func(bool), line string, verbose *bool, sent *[]chainhash.Hash) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "exit", "quit":
		return true

	case "help", "h":
		printHelp()

	case "chain":
		printChain(n)

	case "balance", "balances":
		printBalance(n, args)

	case "address", "addr":
		fmt.Println(n.SelfKey().String())

	case "block":
		printBlock(n, args)

	case "send":
		cmdSend(n, signKey, args, sent)

	case "txns":
		printTxns(n, *sent)

	case "whdrs":
		fmt.Printf("cached weak headers: %d\n", n.Stats().WhdrsCached)

	case "stats":
		printStats(n)

	case "verbose":
		cmdVerbose(args, verbose, setVerbose)

	default:
		fmt.Printf("unknown command %q - type 'help'\n", cmd)
	}
	return false
}

func printHelp() {
	fmt.Println(`commands:
  chain                        show the current tip and its chain weight
  balance [vk]                 show vk's balance (default: self)
  address | addr                show this node's own public key
  block ID [--proof INDEX]     show the block with the given identifier
  send RECEIVER,AMOUNT[,COMMENT]  sign and submit a transaction
  txns                         list pending (unconfirmed) transactions
  whdrs                        show the number of cached weak headers
  stats                        show a full status summary
  verbose [on|off]             toggle debug logging
  help | h                     show this message
  exit | quit                  leave the client`)
}

func printChain(n *node.Node) {
	s := n.Stats()
	fmt.Printf("tip: %s (length %d)\nchain weight: %s\n", s.TipID, s.TipLength, s.ChainPoW.FloatString(6))
}

func printBalance(n *node.Node, args []string) {
	pk := n.SelfKey()
	if len(args) > 0 {
		parsed, err := crypto.PublicKeyFromString(args[0])
		if err != nil {
			fmt.Printf("bad public key: %v\n", err)
			return
		}
		pk = parsed
	}
	fmt.Printf("%s: %s\n", pk, n.Balance(pk))
}

func printBlock(n *node.Node, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: block ID [--proof INDEX]")
		return
	}
	id, err := chainhash.HashFromString(args[0])
	if err != nil {
		fmt.Printf("bad block id: %v\n", err)
		return
	}
	b, ok := n.Chain().Block(id)
	if !ok {
		fmt.Println("no such block")
		return
	}
	fmt.Printf("length: %d\nprev: %s\ntxns: %d\nweak headers: %d\ntimestamp: %.0f\n",
		b.Length, b.Header.PrevHash, len(b.Txns), len(b.WeakHdrs), b.EffectiveTimestamp())

	if len(args) >= 3 && args[1] == "--proof" {
		idx, err := strconv.Atoi(args[2])
		if err != nil || idx < 0 || idx >= len(b.Txns) {
			fmt.Println("bad --proof index")
			return
		}
		leaves := make([]string, len(b.Txns))
		for i, tx := range b.Txns {
			leaves[i] = tx.CanonicalString()
		}
		proof := merkle.Proof(leaves, idx)
		root := b.ComputeRoot()
		fmt.Printf("proof for txn %d verifies against root %s: %v\n", idx, root,
			merkle.Verify(leaves[idx], proof, root))
	}
}

func cmdSend(n *node.Node, signKey crypto.PrivateKey, args []string, sent *[]chainhash.Hash) {
	if len(args) == 0 {
		fmt.Println("usage: send RECEIVER,AMOUNT[,COMMENT]")
		return
	}
	parts := strings.SplitN(strings.Join(args, " "), ",", 3)
	if len(parts) < 2 {
		fmt.Println("usage: send RECEIVER,AMOUNT[,COMMENT]")
		return
	}
	receiver, err := crypto.PublicKeyFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		fmt.Printf("bad receiver: %v\n", err)
		return
	}
	amountF, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		fmt.Printf("bad amount: %v\n", err)
		return
	}
	amount, err := chainutil.NewAmount(amountF)
	if err != nil {
		fmt.Printf("bad amount: %v\n", err)
		return
	}
	comment := ""
	if len(parts) == 3 {
		comment = strings.TrimSpace(parts[2])
	}

	tx := blockchain.Transaction{Sender: n.SelfKey(), Receiver: receiver, Amount: amount, Comment: comment}
	if err := tx.Sign(signKey); err != nil {
		fmt.Printf("signing failed: %v\n", err)
		return
	}
	n.SubmitTransaction(tx)
	*sent = append(*sent, tx.ID())
	fmt.Printf("submitted %s\n", tx.ID())
}

// printTxns lists the mempool's current contents, then this client's own
// submitted-transaction history with a mined/pending status against the
// current mempool and mainchain - strongchain/client.py's "txns" command.
func printTxns(n *node.Node, sent []chainhash.Hash) {
	pending := n.PendingTxns()
	if len(pending) == 0 {
		fmt.Println("mempool empty")
	}
	for _, tx := range pending {
		fmt.Printf("%s: %s -> %s  %s  %q\n", tx.ID(), tx.Sender, tx.Receiver, tx.Amount, tx.Comment)
	}

	if len(sent) == 0 {
		return
	}
	fmt.Println("own transaction history:")
	mainchain := n.Chain().Mainchain(n.Chain().TipID())
	for _, id := range sent {
		status := "unknown"
		switch {
		case n.PendingHas(id):
			status = "pending"
		case balance.DuplicateInChain(mainchain, id):
			status = "mined"
		}
		fmt.Printf("  %s: %s\n", id, status)
	}
}

func printStats(n *node.Node) {
	s := n.Stats()
	fmt.Printf("tip: %s (length %d)\nchain weight: %s\npeers: %d\nmempool: %d\nweak headers cached: %d\nselfish: %v\nfork mark: %v\n",
		s.TipID, s.TipLength, s.ChainPoW.FloatString(6), s.PeerCount, s.MempoolSize, s.WhdrsCached, s.Selfish, s.ForkMark)

	mainchain := n.Chain().Mainchain(n.Chain().TipID())
	cs := blockchain.ComputeChainStats(mainchain)
	fmt.Printf("avg/stdev whdrs per block: %.2f/%.2f\navg/stdev inter-block time: %.1fs/%.1fs\n",
		cs.AvgWhdrs, cs.StdevWhdrs, cs.AvgInterval, cs.StdevInterval)

	miners := blockchain.CountMinerStats(mainchain)
	for vk, m := range miners {
		fmt.Printf("miner %s: %d strong blocks, %d weak headers\n", vk, m.StrongBlocks, m.WeakHeaders)
	}
}

func cmdVerbose(args []string, verbose *bool, setVerbose func(bool)) {
	if len(args) == 0 {
		fmt.Printf("verbose: %v\n", *verbose)
		return
	}
	switch args[0] {
	case "on":
		*verbose = true
	case "off":
		*verbose = false
	default:
		fmt.Println("usage: verbose [on|off]")
		return
	}
	if setVerbose != nil {
		setVerbose(*verbose)
	}
	fmt.Printf("verbose: %v\n", *verbose)
}
