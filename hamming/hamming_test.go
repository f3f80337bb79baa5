// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hamming_test

import (
	"math/rand"
	"testing"

	"github.com/antzucaro/matchr"
	"github.com/grailbio/kmerdiv/hamming"
	"github.com/grailbio/kmerdiv/kmer"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

// randomSet returns a PresenceSet where each bit is set with probability
// density.
func randomSet(r *rand.Rand, density float64) (p kmer.PresenceSet) {
	for i := 0; i < kmer.UniverseSize; i++ {
		if r.Float64() < density {
			p.Set(i)
		}
	}
	return
}

func randomSets(r *rand.Rand, n int) []kmer.PresenceSet {
	sets := make([]kmer.PresenceSet, n)
	for i := range sets {
		sets[i] = randomSet(r, r.Float64())
	}
	return sets
}

func kernels() []hamming.Kernel {
	ks := []hamming.Kernel{hamming.Generic, hamming.Best()}
	if k, ok := hamming.Accelerated(); ok {
		ks = append(ks, k)
	}
	return ks
}

func TestKnownDistances(t *testing.T) {
	var zero, one, all kmer.PresenceSet
	one.Set(200)
	for i := range all {
		all[i] = ^uint64(0)
	}
	for _, k := range kernels() {
		expect.EQ(t, k.Distance(&zero, &zero), 0, k.Name)
		expect.EQ(t, k.Distance(&zero, &one), 1, k.Name)
		expect.EQ(t, k.Distance(&one, &zero), 1, k.Name)
		expect.EQ(t, k.Distance(&zero, &all), 256, k.Name)
		expect.EQ(t, k.Distance(&one, &all), 255, k.Name)
	}
}

// Two sequences which differ in a single 4-mer: the second replaces the
// final "AAAA" with "AAAC", so one bit moves into the set.
func TestSingleKmerDifference(t *testing.T) {
	seq1 := make([]byte, kmer.SeqLen)
	seq2 := make([]byte, kmer.SeqLen)
	for i := range seq1 {
		seq1[i] = 'A'
		seq2[i] = 'A'
	}
	seq2[kmer.SeqLen-1] = 'C'
	a := kmer.Encode(seq1)
	b := kmer.Encode(seq2)
	expect.EQ(t, hamming.Distance(&a, &b), 1)
}

func TestMetricProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	k := hamming.Best()
	for iter := 0; iter < 2000; iter++ {
		a := randomSet(r, r.Float64())
		b := randomSet(r, r.Float64())
		c := randomSet(r, r.Float64())
		dab := k.Distance(&a, &b)
		assert.EQ(t, k.Distance(&a, &a), 0)
		assert.EQ(t, dab, k.Distance(&b, &a))
		assert.True(t, dab >= 0 && dab <= kmer.UniverseSize)
		assert.True(t, k.Distance(&a, &c) <= dab+k.Distance(&b, &c))
	}
}

// matchr.Hamming on the '0'/'1' renderings is an independent oracle.
func TestMatchesStringHamming(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 300; iter++ {
		a := randomSet(r, 0.3)
		b := randomSet(r, 0.6)
		want, err := matchr.Hamming(a.String(), b.String())
		assert.NoError(t, err)
		for _, k := range kernels() {
			expect.EQ(t, k.Distance(&a, &b), want, k.Name)
		}
	}
}

func TestKernelsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	accel, ok := hamming.Accelerated()
	if !ok {
		t.Skip("no accelerated kernel on this machine")
	}
	sets := randomSets(r, 1000)
	for iter := 0; iter < 5000; iter++ {
		a := &sets[r.Intn(len(sets))]
		b := &sets[r.Intn(len(sets))]
		assert.EQ(t, accel.Distance(a, b), hamming.DistanceGeneric(a, b))
	}
	for iter := 0; iter < 500; iter++ {
		start := r.Intn(len(sets))
		end := start + r.Intn(len(sets)-start+1)
		x := &sets[r.Intn(len(sets))]
		assert.EQ(t, accel.SumDistances(x, sets[start:end]), hamming.SumDistancesGeneric(x, sets[start:end]))
	}
}

func TestSumDistances(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	sets := randomSets(r, 257)
	for _, k := range kernels() {
		x := &sets[0]
		expect.EQ(t, k.SumDistances(x, nil), 0, k.Name)
		expect.EQ(t, k.SumDistances(x, sets[1:1]), 0, k.Name)
		want := 0
		for i := range sets {
			want += k.Distance(x, &sets[i])
		}
		expect.EQ(t, k.SumDistances(x, sets), want, k.Name)
		expect.EQ(t, k.SumDistances(x, sets[5:6]), k.Distance(x, &sets[5]), k.Name)
	}
}

func TestKernelValid(t *testing.T) {
	expect.True(t, hamming.Generic.Valid())
	expect.True(t, hamming.Best().Valid())
	expect.False(t, hamming.Kernel{}.Valid())
}

func benchmarkSum(b *testing.B, k hamming.Kernel) {
	r := rand.New(rand.NewSource(5))
	sets := randomSets(r, 100)
	b.ResetTimer()
	tot := 0
	for i := 0; i < b.N; i++ {
		tot += k.SumDistances(&sets[i%len(sets)], sets)
	}
	if tot < 0 {
		b.Fatal("negative sum")
	}
}

func BenchmarkSumDistancesGeneric(b *testing.B) {
	benchmarkSum(b, hamming.Generic)
}

func BenchmarkSumDistancesAccelerated(b *testing.B) {
	k, ok := hamming.Accelerated()
	if !ok {
		b.Skip("no accelerated kernel on this machine")
	}
	benchmarkSum(b, k)
}
