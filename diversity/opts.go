// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package diversity

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/kmerdiv/hamming"
	"github.com/grailbio/kmerdiv/window"
)

// Opts configures a diversity computation.
type Opts struct {
	// WindowSize is the number of sequences per window.  Must be positive.
	WindowSize int
	// Mode selects all-pairs or consecutive-pair averaging.
	Mode window.Mode
	// Iterations is the number of times the windowed pass is repeated.  Must
	// be positive.
	Iterations int
	// Parallelism bounds the number of goroutines used for encoding, for the
	// first all-pairs window, and for running repeated passes concurrently.
	// 0 and 1 both mean serial.
	Parallelism int
	// Kernel computes Hamming distances.  The zero value means
	// hamming.Best().
	Kernel hamming.Kernel
}

// DefaultOpts matches the kmer-variance command defaults, except that
// only one iteration is run.
var DefaultOpts = Opts{
	WindowSize: 100,
	Mode:       window.AllPairs,
	Iterations: 1,
}

// Validate returns an Invalid error describing the first bad field, if any.
func (o Opts) Validate() error {
	if o.WindowSize < 1 {
		return errors.E(errors.Invalid, fmt.Sprintf("window size must be positive, got %d", o.WindowSize))
	}
	if o.Iterations < 1 {
		return errors.E(errors.Invalid, fmt.Sprintf("iteration count must be positive, got %d", o.Iterations))
	}
	if o.Parallelism < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("parallelism must be nonnegative, got %d", o.Parallelism))
	}
	if o.Mode != window.AllPairs && o.Mode != window.Consecutive {
		return errors.E(errors.Invalid, fmt.Sprintf("unknown mode %d", o.Mode))
	}
	return nil
}

func (o Opts) kernel() hamming.Kernel {
	if o.Kernel.Valid() {
		return o.Kernel
	}
	return hamming.Best()
}
