// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package window

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/kmerdiv/hamming"
	"github.com/grailbio/kmerdiv/kmer"
)

// NumWindows returns the number of size-element windows in an n-element
// collection.
func NumWindows(n, size int) int {
	if size < 1 || n < size {
		return 0
	}
	return n - size + 1
}

// Pairs returns the number of pairs in an AllPairs window, C(size, 2).
func Pairs(size int) int64 {
	if size < 2 {
		return 0
	}
	return int64(size) * int64(size-1) / 2
}

// ConsecutivePairs returns the number of pairs in a Consecutive window.
func ConsecutivePairs(size int) int64 {
	if size < 2 {
		return 0
	}
	return int64(size - 1)
}

// Normalize converts a distance sum over the given number of pairs to a mean
// fraction of the k-mer universe.  It returns 0 when there are no pairs.
func Normalize(sum, pairs int64) float64 {
	if pairs == 0 {
		return 0
	}
	return float64(sum) / float64(pairs) / kmer.UniverseSize
}

// AllPairsSum returns the sum of the distances between all pairs in sets.
func AllPairsSum(sets []kmer.PresenceSet, k hamming.Kernel) int64 {
	var sum int64
	for j := range sets {
		sum += int64(k.SumDistances(&sets[j], sets[j+1:]))
	}
	return sum
}

// ConsecutiveSum returns the sum of the distances between adjacent elements of
// sets.
func ConsecutiveSum(sets []kmer.PresenceSet, k hamming.Kernel) int64 {
	var sum int64
	for j := 0; j+1 < len(sets); j++ {
		sum += int64(k.Distance(&sets[j], &sets[j+1]))
	}
	return sum
}

// ConsecutiveScore returns the normalized Consecutive diversity of the window
// [start, start+size) of sets.  The caller must ensure the window is in
// range.
func ConsecutiveScore(sets []kmer.PresenceSet, start, size int, k hamming.Kernel) float64 {
	if size < 2 {
		return 0
	}
	return Normalize(ConsecutiveSum(sets[start:start+size], k), ConsecutivePairs(size))
}

// ConsecutiveScores returns the Consecutive score of every size-element
// window of sets, in start order.
func ConsecutiveScores(sets []kmer.PresenceSet, size int, k hamming.Kernel) []float64 {
	n := NumWindows(len(sets), size)
	scores := make([]float64, n)
	for s := range scores {
		scores[s] = ConsecutiveScore(sets, s, size, k)
	}
	return scores
}

// AllPairsScores returns the AllPairs score of every size-element window of
// sets, in start order, using an Aggregator.  It returns nil if sets holds no
// complete window.
func AllPairsScores(sets []kmer.PresenceSet, size int, opts Opts) []float64 {
	if NumWindows(len(sets), size) == 0 {
		return nil
	}
	agg, err := NewAggregator(sets, size, opts)
	if err != nil {
		log.Panicf("window.AllPairsScores: %v", err)
	}
	scores := make([]float64, 0, agg.NumWindows())
	for {
		scores = append(scores, agg.Score())
		if !agg.Slide() {
			return scores
		}
	}
}
