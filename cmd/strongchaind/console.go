// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/strongchain-go/node/node"
)

// consoleUpgrader accepts only loopback connections; the operator console
// is a local debugging aid, not a public API.
var consoleUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return false
		}
		ip := net.ParseIP(host)
		return ip != nil && ip.IsLoopback()
	},
}

// runConsole serves a read-only websocket endpoint at /stats: each
// connected client receives n.Stats(), JSON-encoded, once a second until it
// disconnects or ctx is cancelled. This sits alongside the stdin REPL
// rather than replacing it, reusing the teacher's own websocket
// notification pattern from its RPC layer for local, same-machine
// monitoring (a second terminal, a browser tab) with no write path of its
// own.
func runConsole(ctx context.Context, addr string, n *node.Node) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		conn, err := consoleUpgrader.Upgrade(w, r, nil)
		if err != nil {
			nodeLog.Warnf("console: upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		streamStats(r.Context(), conn, n)
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	nodeLog.Infof("console: operator websocket listening on %s/stats", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

func streamStats(ctx context.Context, conn *websocket.Conn, n *node.Node) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b, err := json.Marshal(n.Stats())
			if err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		}
	}
}
