// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/strongchain-go/node/balance"
	"github.com/strongchain-go/node/blockchain"
	"github.com/strongchain-go/node/internal/client"
	"github.com/strongchain-go/node/internal/nlog"
	"github.com/strongchain-go/node/log"
	"github.com/strongchain-go/node/mining"
	"github.com/strongchain-go/node/netsync"
	"github.com/strongchain-go/node/node"
	"github.com/strongchain-go/node/peer"
	"github.com/strongchain-go/node/selfish"
	"github.com/strongchain-go/node/wire"
)

// fmain is the real main function, kept separate from main so deferred
// cleanup always runs regardless of which return path is taken.
func fmain() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(defaultLogDir, 0700); err != nil {
		return fmt.Errorf("strongchaind: creating log directory: %w", err)
	}
	logName := cfg.ID
	if logName == "" {
		logName = fmt.Sprintf("node-%d", cfg.Port)
	}
	logPath := filepath.Join(defaultLogDir, logName+".log")

	backend, err := nlog.NewBackend(logPath)
	if err != nil {
		return err
	}
	defer backend.Close()

	level := log.LevelInfo
	if cfg.Verbose {
		level = log.LevelDebug
	}
	loggers := useLogger(backend, level)
	setVerbose := func(v bool) {
		lv := log.LevelInfo
		if v {
			lv = log.LevelDebug
		}
		for _, lg := range loggers {
			lg.SetLevel(lv)
		}
	}

	nodeLog.Infof("strongchaind starting, id=%s port=%d selfish=%v", cfg.ID, cfg.Port, cfg.Selfish)

	privKey, peers, err := cfg.resolve()
	if err != nil {
		return err
	}

	ncfg := node.Config{
		Self: wire.NodeConf{
			Port:    cfg.Port,
			Address: cfg.Address,
			VK:      privKey.Public().String(),
		},
		Peers:   peers,
		PrivKey: privKey,
		Selfish: cfg.Selfish,
	}
	n := node.New(ncfg, logPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		nodeLog.Infof("strongchaind: shutdown signal received")
		cancel()
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- n.Run(ctx)
	}()

	if cfg.Console != "" {
		go func() {
			if err := runConsole(ctx, cfg.Console, n); err != nil {
				nodeLog.Errorf("console: %v", err)
			}
		}()
	}

	client.Run(ctx, n, privKey, setVerbose)
	cancel()
	return <-runErr
}

// useLogger wires backend, tagged per subsystem, into every package's own
// logger convention, and returns every logger created so the client's
// "verbose" command can adjust them all together. Ground: the teacher's
// flokicoind.go useLogger, which does the same fan-out over its own
// subsystem set (flcdLog, srvrLog, ...).
func useLogger(backend *nlog.Backend, level log.Level) []*nlog.Logger {
	set := func(lg *nlog.Logger) *nlog.Logger {
		lg.SetLevel(level)
		return lg
	}

	nodeLogger := set(nlog.New(backend, "NODE"))
	node.UseLogger(nodeLogger)
	nodeLog = nodeLogger

	loggers := []*nlog.Logger{nodeLogger}
	add := func(lg *nlog.Logger) *nlog.Logger {
		loggers = append(loggers, lg)
		return lg
	}

	selfish.UseLogger(add(set(nlog.New(backend, "SLFH"))))
	balance.UseLogger(add(set(nlog.New(backend, "BLNC"))))
	blockchain.UseLogger(add(set(nlog.New(backend, "CHAN"))))
	peer.UseLogger(add(set(nlog.New(backend, "PEER"))))
	mining.UseLogger(add(set(nlog.New(backend, "MINR"))))
	netsync.UseLogger(add(set(nlog.New(backend, "SYNC"))))

	return loggers
}

// nodeLog is main's own handle onto the node subsystem's logger, for the
// startup/shutdown lines fmain itself emits.
var nodeLog log.Logger = log.Disabled

func main() {
	if err := fmain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
