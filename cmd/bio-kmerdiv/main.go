// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

// See doc.go for documentation
import (
	"flag"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/kmerdiv/diversity"
	"github.com/grailbio/kmerdiv/encoding/seqio"
	"github.com/grailbio/kmerdiv/window"
	"v.io/x/lib/cmdline"
)

// inputFlags are the flags shared by every subcommand that loads sequences
// and scores windows.
type inputFlags struct {
	windowSize  *int
	mode        *string
	iterations  *int
	parallelism *int
	format      *string
	maxSeqs     *int
	recordLen   *int
}

func addInputFlags(fs *flag.FlagSet) inputFlags {
	return inputFlags{
		windowSize:  fs.Int("window", diversity.DefaultOpts.WindowSize, "Number of sequences per window"),
		mode:        fs.String("mode", diversity.DefaultOpts.Mode.String(), "Window scoring mode; one of "+strings.Join(modeNames(), ", ")),
		iterations:  fs.Int("iterations", diversity.DefaultOpts.Iterations, "Number of times the windowed pass is repeated. Every pass yields identical scores"),
		parallelism: fs.Int("parallelism", 1, "Maximum number of goroutines used for encoding, the first window, and repeated passes"),
		format:      fs.String("format", "auto", "Input format; 'raw', 'fasta', 'fastq' or 'auto'. 'auto' guesses from the file extension"),
		maxSeqs:     fs.Int("max-seqs", 0, "If positive, read at most this many sequences"),
		recordLen:   fs.Int("record-len", 0, "Length of each raw record. If zero, 178 is used"),
	}
}

func modeNames() []string {
	return []string{window.AllPairs.String(), window.Consecutive.String()}
}

// opts converts the parsed flags into diversity and loader options.
func (f inputFlags) opts() (diversity.Opts, seqio.LoadOpts, error) {
	mode, err := window.ParseMode(*f.mode)
	if err != nil {
		return diversity.Opts{}, seqio.LoadOpts{}, err
	}
	format, err := seqio.ParseFormat(*f.format)
	if err != nil {
		return diversity.Opts{}, seqio.LoadOpts{}, err
	}
	if *f.maxSeqs < 0 {
		return diversity.Opts{}, seqio.LoadOpts{}, errors.E(errors.Invalid, "-max-seqs must be non-negative")
	}
	opts := diversity.DefaultOpts
	opts.WindowSize = *f.windowSize
	opts.Mode = mode
	opts.Iterations = *f.iterations
	opts.Parallelism = *f.parallelism
	if err = opts.Validate(); err != nil {
		return diversity.Opts{}, seqio.LoadOpts{}, err
	}
	return opts, seqio.LoadOpts{Format: format, MaxRecords: *f.maxSeqs, RecordLen: *f.recordLen}, nil
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-kmerdiv",
			Short:    "Windowed k-mer diversity of fixed-length sequences",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdWindows(),
				newCmdSummary(),
			},
		})
}
