// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/kmerdiv/diversity"
	"v.io/x/lib/cmdline"
)

func newCmdSummary() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "summary",
		Short:    "Print summary statistics of the window scores as JSON",
		ArgsName: "path",
	}
	flags := addInputFlags(&cmd.Flags)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("summary takes one pathname argument, but got %v", argv)
		}
		return summary(vcontext.Background(), flags, argv[0], env.Stdout)
	})
	return cmd
}

func summary(ctx context.Context, flags inputFlags, path string, stdout io.Writer) error {
	res, err := score(ctx, flags, path)
	if err != nil {
		return err
	}
	if len(res.Scores) == 0 {
		return errors.E(errors.Invalid, path, fmt.Sprintf("not enough sequences for window size %d", *flags.windowSize))
	}
	s, err := diversity.Summarize(res.Scores)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", data)
	return err
}
