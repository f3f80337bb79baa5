// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hamming

import (
	"math/bits"
	"os"

	"github.com/grailbio/base/log"
	"github.com/grailbio/kmerdiv/kmer"
)

// Kernel is one implementation of the distance contract.
type Kernel struct {
	// Name identifies the kernel in logs.
	Name string
	// Distance returns the number of bits that differ between *a and *b, in
	// [0, kmer.UniverseSize].
	Distance func(a, b *kmer.PresenceSet) int
	// SumDistances returns the sum of Distance(x, &ys[i]) over all i.
	SumDistances func(x *kmer.PresenceSet, ys []kmer.PresenceSet) int
}

// Valid returns true iff both functions are set.
func (k Kernel) Valid() bool {
	return k.Distance != nil && k.SumDistances != nil
}

// DistanceGeneric is the portable distance implementation.
func DistanceGeneric(a, b *kmer.PresenceSet) int {
	return bits.OnesCount64(a[0]^b[0]) +
		bits.OnesCount64(a[1]^b[1]) +
		bits.OnesCount64(a[2]^b[2]) +
		bits.OnesCount64(a[3]^b[3])
}

// SumDistancesGeneric is the portable SumDistances implementation.
func SumDistancesGeneric(x *kmer.PresenceSet, ys []kmer.PresenceSet) int {
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]
	tot := 0
	for i := range ys {
		y := &ys[i]
		tot += bits.OnesCount64(x0^y[0]) +
			bits.OnesCount64(x1^y[1]) +
			bits.OnesCount64(x2^y[2]) +
			bits.OnesCount64(x3^y[3])
	}
	return tot
}

// Generic is the portable kernel.
var Generic = Kernel{
	Name:         "generic",
	Distance:     DistanceGeneric,
	SumDistances: SumDistancesGeneric,
}

// noSimdEnv disables the accelerated kernel when set to a nonempty value.
const noSimdEnv = "KMERDIV_NOSIMD"

var best = Generic

func init() {
	if os.Getenv(noSimdEnv) != "" {
		log.Debug.Printf("hamming: %s set, using %s kernel", noSimdEnv, Generic.Name)
		return
	}
	if k, ok := accelerated(); ok {
		best = k
	}
}

// Best returns the fastest kernel supported by this machine.
func Best() Kernel {
	return best
}

// Accelerated returns the accelerated kernel, and whether this machine
// supports it.
func Accelerated() (Kernel, bool) {
	return accelerated()
}

// Distance returns the Hamming distance between *a and *b using Best().
func Distance(a, b *kmer.PresenceSet) int {
	return best.Distance(a, b)
}

// SumDistances returns the sum of the distances from *x to every element of
// ys using Best().
func SumDistances(x *kmer.PresenceSet, ys []kmer.PresenceSet) int {
	return best.SumDistances(x, ys)
}
