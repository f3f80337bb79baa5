// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/kmerdiv/diversity"
	"github.com/grailbio/kmerdiv/encoding/seqio"
	"v.io/x/lib/cmdline"
)

type windowsFlags struct {
	input   inputFlags
	out     *string
	summary *bool
}

func newCmdWindows() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "windows",
		Short:    "Write per-window diversity scores as TSV",
		ArgsName: "path",
	}
	flags := windowsFlags{
		input:   addInputFlags(&cmd.Flags),
		out:     cmd.Flags.String("out", "", "Output TSV path. If empty, rows are written to stdout"),
		summary: cmd.Flags.Bool("summary", false, "Also log summary statistics of the window scores"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("windows takes one pathname argument, but got %v", argv)
		}
		return windows(vcontext.Background(), flags, argv[0], env.Stdout)
	})
	return cmd
}

// score loads path and computes the result of every window.
func score(ctx context.Context, flags inputFlags, path string) (diversity.Result, error) {
	opts, loadOpts, err := flags.opts()
	if err != nil {
		return diversity.Result{}, err
	}
	seqs, err := seqio.Load(ctx, path, loadOpts)
	if err != nil {
		return diversity.Result{}, err
	}
	log.Debug.Printf("%s: loaded %d sequences", path, len(seqs))
	return diversity.Run(seqs, opts)
}

func windows(ctx context.Context, flags windowsFlags, path string, stdout io.Writer) (err error) {
	res, err := score(ctx, flags.input, path)
	if err != nil {
		return err
	}
	if *flags.summary && len(res.Scores) > 0 {
		s, err := diversity.Summarize(res.Scores)
		if err != nil {
			return err
		}
		log.Printf("%s: %d windows, mean %.6f, median %.6f, min %.6f, max %.6f, stddev %.6f",
			path, s.Windows, s.Mean, s.Median, s.Min, s.Max, s.StdDev)
	}
	if *flags.out == "" {
		return writeWindows(stdout, res)
	}
	out, err := file.Create(ctx, *flags.out)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	return writeWindows(out.Writer(ctx), res)
}

// writeWindows writes a header and one START/SUM/SCORE row per window.
func writeWindows(w io.Writer, res diversity.Result) error {
	tsvw := tsv.NewWriter(w)
	tsvw.WriteString("START\tSUM\tSCORE")
	if err := tsvw.EndLine(); err != nil {
		return err
	}
	for i, score := range res.Scores {
		tsvw.WriteString(strconv.Itoa(i))
		tsvw.WriteString(strconv.FormatInt(res.Sums[i], 10))
		tsvw.WriteString(strconv.FormatFloat(score, 'f', 6, 64))
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

