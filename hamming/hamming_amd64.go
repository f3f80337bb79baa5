// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine && !purego
// +build amd64,!appengine,!purego

package hamming

import (
	"golang.org/x/sys/cpu"

	"github.com/grailbio/kmerdiv/kmer"
)

// *** the following functions are defined in hamming_amd64.s

//go:noescape
func distanceAVX2Asm(a, b *kmer.PresenceSet) int

//go:noescape
func sumDistancesAVX2Asm(x, ys *kmer.PresenceSet, n int) int

// *** end assembly function signatures

func distanceAVX2(a, b *kmer.PresenceSet) int {
	return distanceAVX2Asm(a, b)
}

func sumDistancesAVX2(x *kmer.PresenceSet, ys []kmer.PresenceSet) int {
	if len(ys) == 0 {
		return 0
	}
	return sumDistancesAVX2Asm(x, &ys[0], len(ys))
}

var avx2Kernel = Kernel{
	Name:         "avx2",
	Distance:     distanceAVX2,
	SumDistances: sumDistancesAVX2,
}

func accelerated() (Kernel, bool) {
	if cpu.X86.HasAVX2 && cpu.X86.HasPOPCNT {
		return avx2Kernel, true
	}
	return Generic, false
}
