// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kmer

import (
	"math/bits"
	"strings"
)

const (
	// SeqLen is the length of every sequence in a collection.
	SeqLen = 178
	// K is the k-mer length.
	K = 4
	// UniverseSize is the number of distinct k-mers, and the number of bits
	// in a PresenceSet.
	UniverseSize = 1 << (2 * K)
	// KmersPerSeq is the number of overlapping k-mers in a SeqLen sequence.
	KmersPerSeq = SeqLen - K + 1

	bitsPerWord = 64
	// WordsPerSet is the number of uint64 words backing a PresenceSet.
	WordsPerSet = UniverseSize / bitsPerWord
)

// PresenceSet records which k-mers occur at least once in a sequence.  Bit i
// lives in word i/64 at position i%64.
//
// The layout is relied upon by the hamming package's assembly kernel, which
// loads a PresenceSet as a single 32-byte vector.
type PresenceSet [WordsPerSet]uint64

// Set sets bit i.  (Nothing bad happens if it was already set.)
func (p *PresenceSet) Set(i int) {
	p[i/bitsPerWord] |= uint64(1) << uint(i%bitsPerWord)
}

// Clear clears bit i.
func (p *PresenceSet) Clear(i int) {
	p[i/bitsPerWord] &^= uint64(1) << uint(i%bitsPerWord)
}

// Get returns whether bit i is set.
func (p *PresenceSet) Get(i int) bool {
	return (p[i/bitsPerWord]>>uint(i%bitsPerWord))&1 == 1
}

// Count returns the number of distinct k-mers present.
func (p *PresenceSet) Count() int {
	n := 0
	for _, w := range p {
		n += bits.OnesCount64(w)
	}
	return n
}

// String renders the set as UniverseSize '0'/'1' characters, bit 0 first.
func (p PresenceSet) String() string {
	var sb strings.Builder
	sb.Grow(UniverseSize)
	for i := 0; i < UniverseSize; i++ {
		if p.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
