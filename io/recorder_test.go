package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_Send(t *testing.T) {
	assert := assert.New(t)

	rec := &Recorder{}
	_, ok := rec.Last()
	assert.False(ok)

	assert.NoError(rec.Send(4))
	assert.NoError(rec.Send(9))
	assert.Equal([]int32{4, 9}, rec.Values)

	last, ok := rec.Last()
	assert.True(ok)
	assert.Equal(int32(9), last)
}

func TestRecorder_Capacity(t *testing.T) {
	assert := assert.New(t)

	rec := &Recorder{Capacity: 2}
	assert.NoError(rec.Send(1))
	assert.NoError(rec.Send(2))
	assert.ErrorIs(rec.Send(3), ErrChannelFull)
	assert.Equal([]int32{1, 2}, rec.Values)

	rec.Rewind()
	assert.Empty(rec.Values)
	assert.NoError(rec.Send(3))
}
