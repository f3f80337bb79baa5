// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package diversity computes one k-mer diversity score per window position
// over an ordered collection of fixed-length sequences.
//
// Typical usage:
//
//   opts := diversity.DefaultOpts
//   opts.WindowSize = 50
//   res, err := diversity.Run(seqs, opts)
//   // res.Scores[i] is the diversity of seqs[i:i+50].
//
// The computation is deterministic.  Opts.Iterations > 1 repeats the whole
// windowed pass (this exists for throughput measurement) and only the final
// pass is reported.
package diversity
