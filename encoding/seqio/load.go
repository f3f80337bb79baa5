// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seqio

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/kmerdiv/kmer"
)

// Format identifies an input layout.
type Format int

const (
	// Auto means GuessFormat() is applied to the path.
	Auto Format = iota
	// Raw is concatenated fixed-length records.
	Raw
	// FASTA is one FASTA record per sequence.
	FASTA
	// FASTQ is one FASTQ read per sequence.
	FASTQ
)

var formatNames = [...]string{
	Auto:  "auto",
	Raw:   "raw",
	FASTA: "fasta",
	FASTQ: "fastq",
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat converts a name printed by Format.String back to a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return Format(f), nil
		}
	}
	return Auto, errors.E(errors.Invalid, "unknown input format", s)
}

// GuessFormat returns FASTA or FASTQ if path has such an extension (.fa,
// .fasta, .fna, .fas, .fq, .fastq), optionally followed by a compression
// extension.  Everything else is Raw.
func GuessFormat(path string) Format {
	path = strings.ToLower(path)
	for _, ext := range []string{".gz", ".bgz", ".bz2", ".zst"} {
		path = strings.TrimSuffix(path, ext)
	}
	switch filepath.Ext(path) {
	case ".fa", ".fasta", ".fna", ".fas":
		return FASTA
	case ".fq", ".fastq":
		return FASTQ
	}
	return Raw
}

// LoadOpts configures Load.
type LoadOpts struct {
	// Format of the input.  Auto guesses from the path.
	Format Format
	// MaxRecords caps the number of sequences read, if positive.
	MaxRecords int
	// RecordLen is the required sequence length.  0 means kmer.SeqLen.
	RecordLen int
}

type reader struct {
	ctx context.Context
	f   file.File
	r   io.ReadCloser
}

func (r *reader) Read(p []byte) (int, error) { return r.r.Read(p) }

func (r *reader) Close() error {
	err := r.r.Close()
	if e := r.f.Close(r.ctx); e != nil && err == nil {
		err = e
	}
	return err
}

// Open opens path for reading, decompressing it if necessary.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open", path)
	}
	r, _ := compress.NewReader(f.Reader(ctx))
	return &reader{ctx: ctx, f: f, r: r}, nil
}

// Load reads every sequence in path.
func Load(ctx context.Context, path string, opts LoadOpts) (seqs [][]byte, err error) {
	recLen := opts.RecordLen
	if recLen == 0 {
		recLen = kmer.SeqLen
	}
	if recLen < kmer.K {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("record length %d < %d", recLen, kmer.K))
	}
	format := opts.Format
	if format == Auto {
		format = GuessFormat(path)
	}
	in, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := in.Close(); e != nil && err == nil {
			err = errors.E(e, "close", path)
		}
	}()
	switch format {
	case Raw:
		if seqs, err = ReadRecords(in, recLen, opts.MaxRecords); err != nil {
			return nil, errors.E(err, path)
		}
	case FASTA:
		recs, e := ReadFASTA(in)
		if e != nil {
			return nil, errors.E(e, path)
		}
		if opts.MaxRecords > 0 && len(recs) > opts.MaxRecords {
			log.Error.Printf("seqio: %s: more sequences than expected (%d), ignoring the rest", path, opts.MaxRecords)
			recs = recs[:opts.MaxRecords]
		}
		seqs = make([][]byte, len(recs))
		for i, rec := range recs {
			if len(rec.Seq) != recLen {
				return nil, errors.E(errors.Invalid, fmt.Sprintf("%s: record %q has length %d, want %d", path, rec.Name, len(rec.Seq), recLen))
			}
			seqs[i] = rec.Seq
		}
	case FASTQ:
		if seqs, err = ReadFASTQ(in, opts.MaxRecords); err != nil {
			return nil, errors.E(err, path)
		}
		for i, seq := range seqs {
			if len(seq) != recLen {
				return nil, errors.E(errors.Invalid, fmt.Sprintf("%s: read %d has length %d, want %d", path, i, len(seq), recLen))
			}
		}
	default:
		return nil, errors.E(errors.Invalid, "unsupported format", format.String())
	}
	log.Debug.Printf("seqio: read %d %s sequences from %s", len(seqs), format, path)
	return seqs, nil
}
