// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package window

import (
	"github.com/grailbio/base/errors"
)

// Mode selects which pairs of a window contribute to its diversity.
type Mode int

const (
	// AllPairs averages over every pair in the window.
	AllPairs Mode = iota
	// Consecutive averages over adjacent pairs only.
	Consecutive
)

var modeNames = [...]string{
	AllPairs:    "allpairs",
	Consecutive: "consecutive",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode converts "allpairs" or "consecutive" to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return AllPairs, errors.E(errors.Invalid, "unknown window mode", s)
}
