// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seqio

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const maxFASTALineSize = 64 * 1024 * 1024

// Record is one named FASTA sequence.
type Record struct {
	// Name is the header text after '>', up to the first space.
	Name string
	Seq  []byte
}

// ReadFASTA reads all records from r, in file order.  Sequence lines are
// concatenated; blank lines are ignored.
func ReadFASTA(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxFASTALineSize)
	var (
		recs      []Record
		seqName   string
		seq       bytes.Buffer
		inRecord  bool
		lineCount int
	)
	flush := func() {
		if inRecord {
			recs = append(recs, Record{Name: seqName, Seq: append([]byte(nil), seq.Bytes()...)})
			seq.Reset()
		}
	}
	for scanner.Scan() {
		lineCount++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			flush()
			seqName = strings.Split(string(bytes.TrimRight(line[1:], "\r")), " ")[0]
			inRecord = true
			continue
		}
		if !inRecord {
			return nil, errors.Errorf("malformed FASTA file: line %d: sequence data before first header", lineCount)
		}
		seq.Write(bytes.TrimRight(line, "\r"))
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	flush()
	return recs, nil
}
