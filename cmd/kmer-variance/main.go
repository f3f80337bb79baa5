// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

// See doc.go for documentation
import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/kmerdiv/diversity"
	"github.com/grailbio/kmerdiv/encoding/seqio"
	"github.com/grailbio/kmerdiv/kmer"
	"github.com/grailbio/kmerdiv/window"
)

var (
	windowSize  = flag.Int("window", diversity.DefaultOpts.WindowSize, "Number of sequences per window")
	iterations  = flag.Int("iterations", 1000, "Number of times the windowed pass is repeated")
	parallelism = flag.Int("parallelism", 1, "Maximum number of goroutines used for encoding and the first window")
	format      = flag.String("format", "raw", "Input format; 'raw', 'fasta', 'fastq' or 'auto'")
)

type config struct {
	opts   diversity.Opts
	format string
}

func kmerVarianceUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] num_sequences path\n", os.Args[0])
	flag.PrintDefaults()
}

// run executes the benchmark and returns the process exit status.
func run(ctx context.Context, cfg config, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintf(stderr, "Usage: kmer-variance [OPTIONS] num_sequences path\n")
		return 1
	}
	nSeq, err := strconv.Atoi(args[0])
	if err != nil || nSeq <= 0 {
		fmt.Fprintf(stderr, "num_sequences must be a positive integer, got %q\n", args[0])
		return 1
	}
	if err = cfg.opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	f, err := seqio.ParseFormat(cfg.format)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	seqs, err := seqio.Load(ctx, args[1], seqio.LoadOpts{Format: f, MaxRecords: nSeq})
	if err != nil {
		fmt.Fprintf(stderr, "Error opening file: %v\n", err)
		return 1
	}
	if window.NumWindows(len(seqs), cfg.opts.WindowSize) == 0 {
		fmt.Fprintf(stderr, "Not enough sequences (%d) for window size %d\n", len(seqs), cfg.opts.WindowSize)
		return 0
	}
	sets := kmer.EncodeAll(seqs, cfg.opts.Parallelism)
	checksum, err := diversity.Checksum(sets, cfg.opts)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Checksum: %d\n", checksum)
	return 0
}

func main() {
	flag.Usage = kmerVarianceUsage
	shutdown := grail.Init()
	opts := diversity.DefaultOpts
	opts.WindowSize = *windowSize
	opts.Iterations = *iterations
	opts.Parallelism = *parallelism
	code := run(vcontext.Background(), config{opts: opts, format: *format}, flag.Args(), os.Stdout, os.Stderr)
	log.Debug.Printf("exiting with status %d", code)
	shutdown()
	os.Exit(code)
}
