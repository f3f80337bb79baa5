// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package window computes windowed diversity over an ordered collection of
// kmer.PresenceSets.
//
// A window is the index range [start, start+size).  In AllPairs mode the
// window's diversity is the mean Hamming distance over all C(size, 2) pairs
// inside it, divided by kmer.UniverseSize; Aggregator maintains that sum
// incrementally, so moving to the next window costs 2*(size-1) distance
// evaluations instead of C(size, 2).  In Consecutive mode only the size-1
// adjacent pairs contribute, and each window is computed directly.
package window
