// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer is the flat UDP peer registry §5 describes, keyed by each
// peer's verifying key. Ground:
// connmgr/doc.go's connection-group management concept, repurposed from
// the teacher's dialed-TCP connection pool (with banning, outbound-count
// targets, Tor lookup) down to the one thing this protocol actually needs
// - a deduplicated, ordered list of reachable NodeConfs.
package peer

import (
	"sync"

	"github.com/strongchain-go/node/wire"
)

// Registry is the set of known peers, safe for concurrent use. In a
// running node Add is called by the listening task (on NEW_PEER) and by
// node.Run for the peers that acknowledged initial sync.
type Registry struct {
	mu    sync.RWMutex
	byVK  map[string]wire.NodeConf
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byVK: make(map[string]wire.NodeConf)}
}

// Add registers conf if its verifying key isn't already known, reporting
// whether it was newly added.
func (r *Registry) Add(conf wire.NodeConf) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byVK[conf.VK]; ok {
		return false
	}
	r.byVK[conf.VK] = conf
	r.order = append(r.order, conf.VK)
	return true
}

// Has reports whether vk is already registered.
func (r *Registry) Has(vk string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byVK[vk]
	return ok
}

// All returns every registered peer, in the order first added.
func (r *Registry) All() []wire.NodeConf {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wire.NodeConf, len(r.order))
	for i, vk := range r.order {
		out[i] = r.byVK[vk]
	}
	return out
}

// Len reports the number of registered peers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
