// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seqio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

const readBufSize = 1 << 20

// ReadRecords reads consecutive recLen-byte records from r until EOF.  A
// truncated trailing record is discarded.  If maxRecords > 0, at most that
// many records are returned, and a warning is logged if more were available.
func ReadRecords(r io.Reader, recLen, maxRecords int) ([][]byte, error) {
	if recLen <= 0 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("record length must be positive, got %d", recLen))
	}
	br := bufio.NewReaderSize(r, readBufSize)
	var recs [][]byte
	for {
		rec := make([]byte, recLen)
		if _, err := io.ReadFull(br, rec); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return recs, nil
			}
			return nil, errors.E(err, "reading sequence records")
		}
		if maxRecords > 0 && len(recs) == maxRecords {
			log.Error.Printf("seqio: more sequences in input than expected (%d), ignoring the rest", maxRecords)
			return recs, nil
		}
		recs = append(recs, rec)
	}
}
