package io

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Tape writes each observed value to Output as a decimal line.
// The first write error sticks: later sends keep returning it.
type Tape struct {
	Output io.Writer

	Err  error // First write error, if any.
	line []byte
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; it only forgets a previous write error.
func (tc *Tape) Rewind() {
	tc.Err = nil
}

// Send writes value followed by a newline.
func (tc *Tape) Send(value int32) (err error) {
	if tc.Err != nil {
		return tc.Err
	}

	if tc.Output == nil {
		tc.Err = ErrNoOutput
		return tc.Err
	}

	tc.line = strconv.AppendInt(tc.line[:0], int64(value), 10)
	tc.line = append(tc.line, '\n')

	_, err = tc.Output.Write(tc.line)
	if err != nil {
		tc.Err = errors.Wrap(err, "write failed")
		err = tc.Err
	}

	return
}
