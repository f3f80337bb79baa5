// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hamming computes Hamming distances between kmer.PresenceSets.
//
// There are two interchangeable kernels.  Generic XORs and popcounts word by
// word and runs everywhere.  On amd64 machines with AVX2 and POPCNT, an
// assembly kernel XORs both 256-bit sets in one vector register instead.
// Both must return identical results; Best() picks the fastest one the CPU
// supports, and setting KMERDIV_NOSIMD to a nonempty value forces Generic.
package hamming
