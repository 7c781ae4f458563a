// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "math"

// ChainStats is pure statistics over a replayed mainchain: the average and
// standard deviation of weak-header counts per block, and of the
// inter-block arrival time. Ground: blockchain.py's get_time_among_blocks
// and the "chain" client command's "Avg./Stdev. whdrs" line, replacing the
// teacher's fee-based blockstats.go (no fee market exists in this chain).
type ChainStats struct {
	AvgWhdrs      float64
	StdevWhdrs    float64
	AvgInterval   float64
	StdevInterval float64
}

// ComputeChainStats walks chain (genesis-first order, as returned by
// Chain.Mainchain) and aggregates weak-header counts and inter-block
// timestamps. A chain of only genesis returns all-zero stats.
func ComputeChainStats(chain []Block) ChainStats {
	if len(chain) == 0 {
		return ChainStats{}
	}

	whdrCounts := make([]float64, len(chain))
	for i, b := range chain {
		whdrCounts[i] = float64(len(b.WeakHdrs))
	}
	avgW, stdevW := meanStdev(whdrCounts)

	var intervals []float64
	for i := 1; i < len(chain); i++ {
		intervals = append(intervals, chain[i].Header.Timestamp-chain[i-1].Header.Timestamp)
	}
	avgI, stdevI := meanStdev(intervals)

	return ChainStats{
		AvgWhdrs:      avgW,
		StdevWhdrs:    stdevW,
		AvgInterval:   avgI,
		StdevInterval: stdevI,
	}
}

func meanStdev(xs []float64) (mean, stdev float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / float64(len(xs))

	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	stdev = math.Sqrt(sumSq / float64(len(xs)))
	return mean, stdev
}

// MinerStats is one miner's strong-block and weak-header production along
// a mainchain, keyed by coinbase public key.
type MinerStats struct {
	StrongBlocks int
	WeakHeaders  int
}

// CountMinerStats aggregates per-miner strong-block and weak-header counts
// along chain. Ground: client.py's _cmd_stats, bolted onto the blockchain
// package because it is pure chain-replay aggregation over already-public
// fields, not UI logic.
func CountMinerStats(chain []Block) map[string]*MinerStats {
	stats := make(map[string]*MinerStats)
	get := func(key string) *MinerStats {
		if s, ok := stats[key]; ok {
			return s
		}
		s := &MinerStats{}
		stats[key] = s
		return s
	}

	for _, b := range chain {
		get(b.Header.Coinbase.String()).StrongBlocks++
		for _, wh := range b.WeakHdrs {
			get(wh.Coinbase.String()).WeakHeaders++
		}
	}
	return stats
}
