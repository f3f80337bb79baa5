// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package diversity

import (
	"fmt"
	"sync"
	"time"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/kmerdiv/kmer"
	"github.com/grailbio/kmerdiv/window"
	"golang.org/x/sync/errgroup"
)

// Result holds the per-window output of the final pass, in increasing
// window-start order.
type Result struct {
	// Scores[i] is the normalized diversity of the window starting at i.
	Scores []float64
	// Sums[i] is the unnormalized distance sum behind Scores[i].
	Sums []int64
}

// Equal returns true iff r and o hold bit-identical values.
func (r Result) Equal(o Result) bool {
	if len(r.Scores) != len(o.Scores) || len(r.Sums) != len(o.Sums) {
		return false
	}
	for i := range r.Sums {
		if r.Sums[i] != o.Sums[i] || r.Scores[i] != o.Scores[i] {
			return false
		}
	}
	return true
}

// Run encodes seqs and computes their windowed diversity.  Every sequence
// must have at least kmer.K bases.
//
// A collection with fewer sequences than opts.WindowSize is not an error; a
// warning is logged and the Result is empty.
func Run(seqs [][]byte, opts Opts) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	for i, seq := range seqs {
		if len(seq) < kmer.K {
			return Result{}, errors.E(errors.Invalid, fmt.Sprintf("sequence %d has length %d < %d", i, len(seq), kmer.K))
		}
	}
	return RunEncoded(kmer.EncodeAll(seqs, opts.Parallelism), opts)
}

// RunBuffer is Run on nSeq kmer.SeqLen-byte sequences concatenated in buf.
// It returns nil scores, and no error, when opts.WindowSize > nSeq.
func RunBuffer(buf []byte, nSeq int, opts Opts) ([]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if nSeq < 0 || nSeq*kmer.SeqLen > len(buf) {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("buffer of %d bytes does not hold %d sequences", len(buf), nSeq))
	}
	if opts.WindowSize > nSeq {
		return nil, nil
	}
	sets := kmer.EncodeFlat(buf[:nSeq*kmer.SeqLen], kmer.SeqLen, opts.Parallelism)
	res, err := RunEncoded(sets, opts)
	return res.Scores, err
}

// RunEncoded computes the windowed diversity of an encoded collection.
func RunEncoded(sets []kmer.PresenceSet, opts Opts) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	nWindow := window.NumWindows(len(sets), opts.WindowSize)
	if nWindow == 0 {
		log.Error.Printf("diversity: not enough sequences (%d) for window size %d", len(sets), opts.WindowSize)
		return Result{}, nil
	}
	startTime := time.Now()
	var (
		res Result
		err error
	)
	if opts.Parallelism > 1 && opts.Iterations > 1 {
		res, err = concurrentPasses(sets, opts)
	} else {
		for iter := 0; iter < opts.Iterations; iter++ {
			if res, err = pass(sets, opts); err != nil {
				break
			}
		}
	}
	if err != nil {
		return Result{}, err
	}
	log.Debug.Printf("diversity: %d windows x %d iterations (%s, %s kernel) in %v",
		nWindow, opts.Iterations, opts.Mode, opts.kernel().Name, time.Since(startTime))
	return res, nil
}

// pass computes one complete windowed pass.  len(sets) >= opts.WindowSize.
func pass(sets []kmer.PresenceSet, opts Opts) (Result, error) {
	size := opts.WindowSize
	nWindow := window.NumWindows(len(sets), size)
	res := Result{
		Scores: make([]float64, 0, nWindow),
		Sums:   make([]int64, 0, nWindow),
	}
	k := opts.kernel()
	switch opts.Mode {
	case window.Consecutive:
		pairs := window.ConsecutivePairs(size)
		for s := 0; s < nWindow; s++ {
			sum := window.ConsecutiveSum(sets[s:s+size], k)
			res.Sums = append(res.Sums, sum)
			res.Scores = append(res.Scores, window.Normalize(sum, pairs))
		}
	default:
		agg, err := window.NewAggregator(sets, size, window.Opts{Kernel: k, Parallelism: opts.Parallelism})
		if err != nil {
			return Result{}, err
		}
		for {
			res.Sums = append(res.Sums, agg.Sum())
			res.Scores = append(res.Scores, agg.Score())
			if !agg.Slide() {
				break
			}
		}
	}
	return res, nil
}

// concurrentPasses runs opts.Iterations independent passes on up to
// opts.Parallelism goroutines.  Each pass is a pure function of sets, so all
// of them must agree; disagreement is reported as an Integrity error.  Only
// the first finished Result is retained.
func concurrentPasses(sets []kmer.PresenceSet, opts Opts) (Result, error) {
	passOpts := opts
	passOpts.Parallelism = 1
	var (
		mu    sync.Mutex
		first Result
		done  bool
		g     errgroup.Group
	)
	g.SetLimit(opts.Parallelism)
	for iter := 0; iter < opts.Iterations; iter++ {
		iter := iter
		g.Go(func() error {
			res, err := pass(sets, passOpts)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if !done {
				first, done = res, true
				return nil
			}
			if !res.Equal(first) {
				return errors.E(errors.Integrity, fmt.Sprintf("pass %d disagrees with an earlier pass", iter))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return first, nil
}

// Checksum computes the value printed by kmer-variance: over opts.Iterations
// all-pairs passes, the sum of the running distance total after every
// slide.  The first window's total is not included.  opts.Mode is ignored.
// It returns 0 when there are fewer than two windows.
func Checksum(sets []kmer.PresenceSet, opts Opts) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if window.NumWindows(len(sets), opts.WindowSize) == 0 {
		return 0, nil
	}
	k := opts.kernel()
	var checksum int64
	for iter := 0; iter < opts.Iterations; iter++ {
		agg, err := window.NewAggregator(sets, opts.WindowSize, window.Opts{Kernel: k, Parallelism: opts.Parallelism})
		if err != nil {
			return 0, err
		}
		for agg.Slide() {
			checksum += agg.Sum()
		}
	}
	return checksum, nil
}
