// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package kmer encodes fixed-length nucleotide sequences as 256-bit presence
// sets, one bit per possible 4-mer.
//
// Each base is given a 2-bit code (A=0, C=1, G=2, T=3), and a 4-mer's index
// is the concatenation of its four codes with the first base in the high
// bits.  Any byte other than 'A', 'C', 'G' or 'T' (including lowercase bases
// and 'N') is treated as 'A', so e.g. "NNNN" and "AAAA" are
// indistinguishable.  kmer-variance checksums depend on this mapping.
package kmer
