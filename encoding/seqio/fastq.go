// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seqio

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrShortFASTQ is returned when a FASTQ stream ends inside a read.
	ErrShortFASTQ = errors.New("short FASTQ file")
	// ErrInvalidFASTQ is returned when a FASTQ stream has a malformed read.
	ErrInvalidFASTQ = errors.New("invalid FASTQ file")

	errEOF = errors.New("eof")
)

// FASTQScanner reads the sequence lines of a FASTQ stream.  It requires ID
// lines to begin with '@' and line 3 to begin with '+'; qualities are
// skipped unchecked.  FASTQScanners are not threadsafe.
type FASTQScanner struct {
	b   *bufio.Scanner
	err error
	n   int
}

// NewFASTQScanner constructs a FASTQScanner that reads from r.
func NewFASTQScanner(r io.Reader) *FASTQScanner {
	return &FASTQScanner{b: bufio.NewScanner(r)}
}

// Scan advances to the next read and returns a copy of its sequence.  It
// returns false at the end of the stream or on error; check Err afterwards.
func (s *FASTQScanner) Scan() ([]byte, bool) {
	if s.err != nil {
		return nil, false
	}
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = errEOF
		}
		return nil, false
	}
	if id := s.b.Bytes(); len(id) == 0 || id[0] != '@' {
		s.err = errors.Wrapf(ErrInvalidFASTQ, "read %d: ID line must start with '@'", s.n)
		return nil, false
	}
	if !s.scan() {
		return nil, false
	}
	seq := append([]byte(nil), s.b.Bytes()...)
	if !s.scan() {
		return nil, false
	}
	if unk := s.b.Bytes(); len(unk) == 0 || unk[0] != '+' {
		s.err = errors.Wrapf(ErrInvalidFASTQ, "read %d: line 3 must start with '+'", s.n)
		return nil, false
	}
	if !s.scan() {
		return nil, false
	}
	s.n++
	return seq, true
}

func (s *FASTQScanner) scan() bool {
	ok := s.b.Scan()
	if !ok {
		if s.err = s.b.Err(); s.err == nil {
			s.err = errors.Wrapf(ErrShortFASTQ, "read %d", s.n)
		}
	}
	return ok
}

// Err returns the scanning error, if any.
func (s *FASTQScanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}

// ReadFASTQ returns the sequences of up to maxRecords reads in r.  A
// nonpositive maxRecords means no limit.
func ReadFASTQ(r io.Reader, maxRecords int) ([][]byte, error) {
	s := NewFASTQScanner(r)
	var seqs [][]byte
	for maxRecords <= 0 || len(seqs) < maxRecords {
		seq, ok := s.Scan()
		if !ok {
			break
		}
		seqs = append(seqs, seq)
	}
	return seqs, s.Err()
}
