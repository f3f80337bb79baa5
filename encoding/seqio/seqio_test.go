// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seqio_test

import (
	"bytes"
	"io/ioutil"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/kmerdiv/encoding/seqio"
	"github.com/grailbio/kmerdiv/kmer"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
	pkgerrors "github.com/pkg/errors"
)

func randomSeqs(r *rand.Rand, n, length int) [][]byte {
	const bases = "ACGT"
	seqs := make([][]byte, n)
	for i := range seqs {
		seqs[i] = make([]byte, length)
		for j := range seqs[i] {
			seqs[i][j] = bases[r.Intn(4)]
		}
	}
	return seqs
}

func rawBytes(seqs [][]byte) []byte {
	var buf bytes.Buffer
	for _, seq := range seqs {
		buf.Write(seq)
	}
	return buf.Bytes()
}

func fastaBytes(seqs [][]byte, lineWidth int) []byte {
	var buf bytes.Buffer
	for i, seq := range seqs {
		buf.WriteString(">seq")
		buf.WriteString(string(rune('a' + i%26)))
		buf.WriteString(" some description\n")
		for len(seq) > 0 {
			n := lineWidth
			if n > len(seq) {
				n = len(seq)
			}
			buf.Write(seq[:n])
			buf.WriteByte('\n')
			seq = seq[n:]
		}
	}
	return buf.Bytes()
}

func TestReadRecords(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seqs := randomSeqs(r, 5, kmer.SeqLen)
	data := rawBytes(seqs)

	got, err := seqio.ReadRecords(bytes.NewReader(data), kmer.SeqLen, 0)
	assert.NoError(t, err)
	expect.EQ(t, got, seqs)

	// A truncated trailing record is dropped.
	got, err = seqio.ReadRecords(bytes.NewReader(data[:len(data)-1]), kmer.SeqLen, 0)
	assert.NoError(t, err)
	expect.EQ(t, got, seqs[:4])

	got, err = seqio.ReadRecords(bytes.NewReader(data), kmer.SeqLen, 3)
	assert.NoError(t, err)
	expect.EQ(t, got, seqs[:3])

	got, err = seqio.ReadRecords(bytes.NewReader(data), kmer.SeqLen, 5)
	assert.NoError(t, err)
	expect.EQ(t, got, seqs)

	got, err = seqio.ReadRecords(bytes.NewReader(nil), kmer.SeqLen, 0)
	assert.NoError(t, err)
	expect.EQ(t, len(got), 0)

	_, err = seqio.ReadRecords(bytes.NewReader(data), 0, 0)
	expect.True(t, errors.Is(errors.Invalid, err))
}

func fastqBytes(seqs [][]byte) []byte {
	var buf bytes.Buffer
	for i, seq := range seqs {
		buf.WriteString("@read")
		buf.WriteString(string(rune('a' + i%26)))
		buf.WriteByte('\n')
		buf.Write(seq)
		buf.WriteString("\n+\n")
		buf.Write(bytes.Repeat([]byte{'I'}, len(seq)))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func TestReadFASTQ(t *testing.T) {
	seqs, err := seqio.ReadFASTQ(strings.NewReader("@r1\nACGT\n+\nIIII\n@r2\nGGCA\n+r2\nIIII\n"), 0)
	assert.NoError(t, err)
	expect.EQ(t, seqs, [][]byte{[]byte("ACGT"), []byte("GGCA")})

	seqs, err = seqio.ReadFASTQ(strings.NewReader("@r1\nACGT\n+\nIIII\n@r2\nGGCA\n+r2\nIIII\n"), 1)
	assert.NoError(t, err)
	expect.EQ(t, seqs, [][]byte{[]byte("ACGT")})

	_, err = seqio.ReadFASTQ(strings.NewReader("@r1\nACGT\n+\n"), 0)
	expect.EQ(t, pkgerrors.Cause(err), seqio.ErrShortFASTQ)
	_, err = seqio.ReadFASTQ(strings.NewReader(">r1\nACGT\n+\nIIII\n"), 0)
	expect.EQ(t, pkgerrors.Cause(err), seqio.ErrInvalidFASTQ)
	_, err = seqio.ReadFASTQ(strings.NewReader("@r1\nACGT\n-\nIIII\n"), 0)
	expect.EQ(t, pkgerrors.Cause(err), seqio.ErrInvalidFASTQ)

	seqs, err = seqio.ReadFASTQ(strings.NewReader(""), 0)
	assert.NoError(t, err)
	expect.EQ(t, len(seqs), 0)
}

func TestReadFASTA(t *testing.T) {
	recs, err := seqio.ReadFASTA(strings.NewReader(">chr7 A viral sequence\nACGTAC\nGAGGAC\n\nGCG\n>chr8\r\nACGT\r\n>empty\n"))
	assert.NoError(t, err)
	assert.EQ(t, len(recs), 3)
	expect.EQ(t, recs[0].Name, "chr7")
	expect.EQ(t, string(recs[0].Seq), "ACGTACGAGGACGCG")
	expect.EQ(t, string(recs[1].Seq), "ACGT")
	expect.EQ(t, recs[1].Name, "chr8")
	expect.EQ(t, recs[2].Name, "empty")
	expect.EQ(t, len(recs[2].Seq), 0)

	_, err = seqio.ReadFASTA(strings.NewReader("ACGT\n>chr1\nACGT\n"))
	expect.True(t, err != nil)

	recs, err = seqio.ReadFASTA(strings.NewReader(""))
	assert.NoError(t, err)
	expect.EQ(t, len(recs), 0)
}

func TestFormats(t *testing.T) {
	tests := []struct {
		path string
		want seqio.Format
	}{
		{"repeats.fa", seqio.FASTA},
		{"repeats.FASTA", seqio.FASTA},
		{"s3://bucket/repeats.fna.gz", seqio.FASTA},
		{"/tmp/repeats.fas.zst", seqio.FASTA},
		{"reads.fq.gz", seqio.FASTQ},
		{"reads.fastq", seqio.FASTQ},
		{"repeats.bin", seqio.Raw},
		{"repeats.gz", seqio.Raw},
		{"repeats", seqio.Raw},
	}
	for _, test := range tests {
		expect.EQ(t, seqio.GuessFormat(test.path), test.want, test.path)
	}
	for _, f := range []seqio.Format{seqio.Auto, seqio.Raw, seqio.FASTA, seqio.FASTQ} {
		got, err := seqio.ParseFormat(f.String())
		assert.NoError(t, err)
		expect.EQ(t, got, f)
	}
	_, err := seqio.ParseFormat("bam")
	expect.True(t, errors.Is(errors.Invalid, err))
}

func writeFile(t *testing.T, path string, data []byte, gz bool) {
	if gz {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write(data)
		assert.NoError(t, err)
		assert.NoError(t, w.Close())
		data = buf.Bytes()
	}
	assert.NoError(t, ioutil.WriteFile(path, data, 0644))
}

func TestLoad(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()
	r := rand.New(rand.NewSource(2))
	seqs := randomSeqs(r, 7, kmer.SeqLen)

	tests := []struct {
		name string
		data []byte
		gz   bool
	}{
		{"seqs.bin", append(rawBytes(seqs), "ACGT"...), false},
		{"seqs.bin.gz", rawBytes(seqs), true},
		{"seqs.fa", fastaBytes(seqs, 60), false},
		{"seqs.fasta.gz", fastaBytes(seqs, 80), true},
		{"seqs.fq", fastqBytes(seqs), false},
		{"seqs.fastq.gz", fastqBytes(seqs), true},
	}
	for _, test := range tests {
		path := filepath.Join(tmpdir, test.name)
		writeFile(t, path, test.data, test.gz)
		got, err := seqio.Load(ctx, path, seqio.LoadOpts{})
		assert.NoError(t, err, test.name)
		expect.EQ(t, got, seqs, test.name)

		got, err = seqio.Load(ctx, path, seqio.LoadOpts{MaxRecords: 2})
		assert.NoError(t, err, test.name)
		expect.EQ(t, got, seqs[:2], test.name)
	}

	// Forcing the raw format on a FASTA file reads it byte-wise.
	path := filepath.Join(tmpdir, "seqs.fa")
	got, err := seqio.Load(ctx, path, seqio.LoadOpts{Format: seqio.Raw})
	assert.NoError(t, err)
	expect.EQ(t, len(got), len(fastaBytes(seqs, 60))/kmer.SeqLen)
}

func TestLoadErrors(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	missing := filepath.Join(tmpdir, "missing.bin")
	_, err := seqio.Load(ctx, missing, seqio.LoadOpts{})
	assert.True(t, err != nil)
	expect.True(t, strings.Contains(err.Error(), missing))

	r := rand.New(rand.NewSource(3))
	path := filepath.Join(tmpdir, "short.fa")
	writeFile(t, path, fastaBytes(randomSeqs(r, 2, kmer.SeqLen-1), 60), false)
	_, err = seqio.Load(ctx, path, seqio.LoadOpts{})
	expect.True(t, errors.Is(errors.Invalid, err))

	// Shorter records are accepted when asked for.
	seqs, err := seqio.Load(ctx, path, seqio.LoadOpts{RecordLen: kmer.SeqLen - 1})
	assert.NoError(t, err)
	expect.EQ(t, len(seqs), 2)

	_, err = seqio.Load(ctx, path, seqio.LoadOpts{RecordLen: 3})
	expect.True(t, errors.Is(errors.Invalid, err))

	path = filepath.Join(tmpdir, "short.fq")
	writeFile(t, path, fastqBytes(randomSeqs(r, 2, kmer.SeqLen+1)), false)
	_, err = seqio.Load(ctx, path, seqio.LoadOpts{})
	expect.True(t, errors.Is(errors.Invalid, err))

	bad := filepath.Join(tmpdir, "bad.fa")
	writeFile(t, bad, []byte("ACGT\n"), false)
	_, err = seqio.Load(ctx, bad, seqio.LoadOpts{})
	expect.True(t, err != nil)
}
