// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kmer

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// baseCodeTable maps an ASCII byte to its 2-bit code.  Unlisted bytes stay 0,
// i.e. they are read as 'A'.
var baseCodeTable = [256]byte{
	'C': 1,
	'G': 2,
	'T': 3,
}

// KmerIndex returns the index of the k-mer starting at kmer[0].  It only
// looks at the first K bytes.
func KmerIndex(kmer []byte) uint8 {
	_ = kmer[K-1]
	return baseCodeTable[kmer[0]]<<6 |
		baseCodeTable[kmer[1]]<<4 |
		baseCodeTable[kmer[2]]<<2 |
		baseCodeTable[kmer[3]]
}

// Encode returns the set of k-mers occurring anywhere in seq.  It panics if
// len(seq) < K.
func Encode(seq []byte) (p PresenceSet) {
	if len(seq) < K {
		log.Panicf("kmer.Encode: sequence length %d < %d", len(seq), K)
	}
	// Roll the index forward one base at a time instead of recomputing all K
	// codes; the low 8 bits always hold the current k-mer.
	idx := uint(baseCodeTable[seq[0]])<<4 | uint(baseCodeTable[seq[1]])<<2 | uint(baseCodeTable[seq[2]])
	for pos := K - 1; pos < len(seq); pos++ {
		idx = (idx<<2 | uint(baseCodeTable[seq[pos]])) & (UniverseSize - 1)
		p[idx/bitsPerWord] |= uint64(1) << (idx % bitsPerWord)
	}
	return
}

// encodeRange fills dst[i] = Encode(seq(i)) for i in [start, end).
func encodeRange(dst []PresenceSet, seq func(i int) []byte, start, end int) {
	for i := start; i < end; i++ {
		dst[i] = Encode(seq(i))
	}
}

// encodeSharded encodes n sequences, splitting the work into at most
// parallelism contiguous shards.  The result doesn't depend on parallelism.
func encodeSharded(n int, seq func(i int) []byte, parallelism int) []PresenceSet {
	dst := make([]PresenceSet, n)
	if parallelism > n {
		parallelism = n
	}
	if parallelism <= 1 {
		encodeRange(dst, seq, 0, n)
		return dst
	}
	_ = traverse.Each(parallelism, func(shard int) error {
		encodeRange(dst, seq, shard*n/parallelism, (shard+1)*n/parallelism)
		return nil
	})
	return dst
}

// EncodeAll encodes every sequence in seqs, preserving order.  Sequences are
// split across up to parallelism goroutines; parallelism <= 1 encodes
// serially.
func EncodeAll(seqs [][]byte, parallelism int) []PresenceSet {
	return encodeSharded(len(seqs), func(i int) []byte { return seqs[i] }, parallelism)
}

// EncodeFlat encodes a buffer of concatenated seqLen-byte sequences.  A
// trailing partial sequence is ignored.
func EncodeFlat(buf []byte, seqLen, parallelism int) []PresenceSet {
	if seqLen < K {
		log.Panicf("kmer.EncodeFlat: sequence length %d < %d", seqLen, K)
	}
	return encodeSharded(len(buf)/seqLen, func(i int) []byte {
		return buf[i*seqLen : (i+1)*seqLen]
	}, parallelism)
}
