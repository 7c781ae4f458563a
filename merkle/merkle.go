// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle builds the odd-node-promoting Merkle tree §4.1 describes:
// leaves are hashed individually, adjacent nodes are paired and hashed
// upward, and an unpaired trailing node at any level is promoted to the
// next level rather than duplicated. Ground: blockchain/merkle_test.go's
// table-driven shape, adapted from btcd's duplicate-on-odd tree (CVE-2012-2459
// relevant) to the no-duplication rule merkletree.py actually implements.
package merkle

import (
	"encoding/hex"

	"github.com/strongchain-go/node/chaincfg/chainhash"
)

// ZeroRoot is the root of an empty leaf list.
var ZeroRoot = chainhash.ZeroHash

// Side records which side of a hashing pair a proof step's sibling sits on.
type Side bool

const (
	// Left means the sibling is hashed before the running value.
	Left Side = false
	// Right means the sibling is hashed after the running value.
	Right Side = true
)

// ProofStep is one level of an inclusion proof: the sibling hash and which
// side it sits on. A promoted (unpaired) level contributes no step.
type ProofStep struct {
	Sibling chainhash.Hash
	Side    Side
}

func leafHash(leaf string) chainhash.Hash {
	return chainhash.HashH([]byte(leaf))
}

func pairHash(a, b chainhash.Hash) chainhash.Hash {
	buf := make([]byte, 0, chainhash.HashSize*2)
	buf = append(buf, []byte(hex.EncodeToString(a[:]))...)
	buf = append(buf, []byte(hex.EncodeToString(b[:]))...)
	return chainhash.HashH(buf)
}

// buildLevels returns every level of the tree, level 0 being the hashed
// leaves and the last level holding exactly one node (the root), or nil if
// leaves is empty.
func buildLevels(leaves []string) [][]chainhash.Hash {
	if len(leaves) == 0 {
		return nil
	}

	level := make([]chainhash.Hash, len(leaves))
	for i, l := range leaves {
		level[i] = leafHash(l)
	}
	levels := [][]chainhash.Hash{level}

	for len(level) > 1 {
		next := make([]chainhash.Hash, 0, (len(level)+1)/2)
		i := 0
		for ; i+1 < len(level); i += 2 {
			next = append(next, pairHash(level[i], level[i+1]))
		}
		if i < len(level) {
			// Odd node out: promoted unpaired, never duplicated.
			next = append(next, level[i])
		}
		levels = append(levels, next)
		level = next
	}
	return levels
}

// ComputeRoot returns the Merkle root over leaves, hashing each leaf string
// as given. An empty list's root is the zero hash.
func ComputeRoot(leaves []string) chainhash.Hash {
	levels := buildLevels(leaves)
	if levels == nil {
		return ZeroRoot
	}
	top := levels[len(levels)-1]
	return top[0]
}

// Proof returns the inclusion path for leaves[index], or nil if index is
// out of range. Levels where the node was promoted unpaired contribute no
// step, matching merkletree.py's get_proof.
func Proof(leaves []string, index int) []ProofStep {
	if index < 0 || index >= len(leaves) {
		return nil
	}
	levels := buildLevels(leaves)
	if levels == nil {
		return nil
	}

	var path []ProofStep
	pos := index
	for lvl := 0; lvl < len(levels)-1; lvl++ {
		nodes := levels[lvl]
		if len(nodes) == 1 {
			break
		}
		if pos%2 == 0 {
			if pos+1 <= len(nodes)-1 {
				path = append(path, ProofStep{Sibling: nodes[pos+1], Side: Right})
			}
			// pos is the last, promoted node: no sibling at this level.
		} else {
			path = append(path, ProofStep{Sibling: nodes[pos-1], Side: Left})
		}
		pos = pos / 2
	}
	return path
}

// Verify re-hashes leaf up through proof and reports whether the result
// equals root.
func Verify(leaf string, proof []ProofStep, root chainhash.Hash) bool {
	running := leafHash(leaf)
	for _, step := range proof {
		if step.Side == Left {
			running = pairHash(step.Sibling, running)
		} else {
			running = pairHash(running, step.Sibling)
		}
	}
	return running == root
}
