// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package diversity

import (
	"github.com/grailbio/base/errors"
	"github.com/montanaflynn/stats"
)

// Summary describes the distribution of per-window scores.
type Summary struct {
	Windows int     `json:"windows"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"stddev"`
}

// Summarize computes a Summary of scores.  It returns an Invalid error if
// scores is empty.
func Summarize(scores []float64) (s Summary, err error) {
	if len(scores) == 0 {
		return s, errors.E(errors.Invalid, "no window scores to summarize")
	}
	data := stats.Float64Data(scores)
	s.Windows = len(scores)
	if s.Mean, err = data.Mean(); err != nil {
		return
	}
	if s.Median, err = data.Median(); err != nil {
		return
	}
	if s.Min, err = data.Min(); err != nil {
		return
	}
	if s.Max, err = data.Max(); err != nil {
		return
	}
	s.StdDev, err = data.StandardDeviation()
	return
}
