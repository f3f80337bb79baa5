// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package seqio reads collections of fixed-length sequences.
//
// Three input layouts are supported.  Raw input is a concatenation of
// kmer.SeqLen-byte records with no separators; a truncated final record is
// silently dropped.  FASTA input holds one record per sequence, e.g.
//
//   >repeat1
//   ACGT...
//   >repeat2
//   ACGT...
//
// and FASTQ input holds one read per sequence, qualities ignored.  Every
// FASTA or FASTQ sequence must be exactly kmer.SeqLen bases long.  Inputs may
// be compressed (anything grailbio/base/compress recognizes), and may live
// anywhere grailbio/base/file can open.
package seqio
