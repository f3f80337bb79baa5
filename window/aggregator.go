// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package window

import (
	"fmt"
	"sync/atomic"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/kmerdiv/hamming"
	"github.com/grailbio/kmerdiv/kmer"
)

// Opts controls Aggregator construction.
type Opts struct {
	// Kernel computes distances.  The zero value means hamming.Best().
	Kernel hamming.Kernel
	// Parallelism is the maximum number of goroutines used to compute the
	// first window's sum.  Values <= 1 mean serial.  Since distances are
	// integers the result does not depend on this.
	Parallelism int
}

// Aggregator holds the running AllPairs distance sum of one window, and
// slides it forward one element at a time.
//
// Sum() always equals AllPairsSum(sets[Start():Start()+size]); the update in
// Slide() is exact.
type Aggregator struct {
	sets   []kmer.PresenceSet
	size   int
	start  int
	sum    int64
	pairs  int64
	kernel hamming.Kernel
}

// NewAggregator returns an Aggregator positioned on the window [0, size).
// It returns an Invalid error if size < 1 or len(sets) < size.
func NewAggregator(sets []kmer.PresenceSet, size int, opts Opts) (*Aggregator, error) {
	if size < 1 {
		return nil, errors.E(errors.Invalid, "window size must be positive")
	}
	if len(sets) < size {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("collection of %d sets is smaller than window size %d", len(sets), size))
	}
	k := opts.Kernel
	if !k.Valid() {
		k = hamming.Best()
	}
	a := &Aggregator{
		sets:   sets,
		size:   size,
		pairs:  Pairs(size),
		kernel: k,
	}
	a.sum = initialSum(sets[:size], k, opts.Parallelism)
	return a, nil
}

// initialSum is AllPairsSum, with rows optionally divided among goroutines.
func initialSum(sets []kmer.PresenceSet, k hamming.Kernel, parallelism int) int64 {
	n := len(sets)
	if parallelism > n {
		parallelism = n
	}
	if parallelism <= 1 {
		return AllPairsSum(sets, k)
	}
	// Row j costs n-j-1 evaluations, so interleave rows across shards to
	// balance the triangle.
	var total int64
	_ = traverse.Each(parallelism, func(shard int) error {
		var sum int64
		for j := shard; j < n; j += parallelism {
			sum += int64(k.SumDistances(&sets[j], sets[j+1:]))
		}
		atomic.AddInt64(&total, sum)
		return nil
	})
	return total
}

// Start returns the index of the first element of the current window.
func (a *Aggregator) Start() int { return a.start }

// Size returns the window size.
func (a *Aggregator) Size() int { return a.size }

// Sum returns the current window's total pairwise distance.
func (a *Aggregator) Sum() int64 { return a.sum }

// Pairs returns the number of pairs contributing to Sum().
func (a *Aggregator) Pairs() int64 { return a.pairs }

// Score returns the current window's normalized diversity, in [0, 1].
func (a *Aggregator) Score() float64 { return Normalize(a.sum, a.pairs) }

// NumWindows returns the number of windows the Aggregator will visit.
func (a *Aggregator) NumWindows() int { return NumWindows(len(a.sets), a.size) }

// Slide moves the window forward by one element.  It returns false, leaving
// the Aggregator unchanged, if the current window is the last one.
func (a *Aggregator) Slide() bool {
	s := a.start
	entering := s + a.size
	if entering >= len(a.sets) {
		return false
	}
	// Elements [s+1, s+size) are in both the old and the new window.
	kept := a.sets[s+1 : entering]
	a.sum -= int64(a.kernel.SumDistances(&a.sets[s], kept))
	a.sum += int64(a.kernel.SumDistances(&a.sets[entering], kept))
	a.start++
	return true
}
