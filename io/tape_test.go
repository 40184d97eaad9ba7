package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct {
	calls int
}

var errDisk = errors.New("disk on fire")

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.calls++
	return 0, errDisk
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	tape := &Tape{Output: buf}

	assert.NoError(tape.Send(14))
	assert.NoError(tape.Send(-7))
	assert.NoError(tape.Send(0))

	assert.Equal("14\n-7\n0\n", buf.String())
}

func TestTape_StickyError(t *testing.T) {
	assert := assert.New(t)

	fw := &failWriter{}
	tape := &Tape{Output: fw}

	err := tape.Send(1)
	assert.ErrorIs(err, errDisk)
	assert.Contains(err.Error(), "write failed")

	err = tape.Send(2)
	assert.ErrorIs(err, errDisk)
	assert.Equal(1, fw.calls)

	tape.Rewind()
	assert.NoError(tape.Err)
	assert.Error(tape.Send(3))
	assert.Equal(2, fw.calls)
}

func TestTape_NoOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.ErrorIs(tape.Send(1), ErrNoOutput)
}
