package board

import (
	"bytes"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoard(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(0)
	assert.Equal(CELL_COUNT, bd.Len())
	assert.Equal(0, bd.Cursor())

	bd = NewBoard(4)
	assert.Equal(4, bd.Len())

	defines := maps.Collect(bd.Defines())
	assert.Equal("4", defines["CELL_COUNT"])
}

func TestBoard_Reset(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(8)
	for n := range bd.Cells {
		bd.Cells[n] = Cell{In: int32(n), Op: 15, Out: -int32(n)}
	}
	assert.NoError(bd.Advance())
	assert.NoError(bd.Advance())

	bd.Reset()

	assert.Equal(0, bd.Cursor())
	for n, cell := range bd.Cells {
		assert.Equal(Cell{}, cell, "cell %d", n)
	}
}

func TestBoard_AdvanceRetreat(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(5)
	assert.NoError(bd.Advance())
	assert.NoError(bd.Advance())

	for range 3 {
		prior := bd.Cursor()
		assert.NoError(bd.Advance())
		assert.NoError(bd.Retreat())
		assert.Equal(prior, bd.Cursor())
	}
}

func TestBoard_AdvanceEnd(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(3)
	assert.NoError(bd.Advance())
	assert.NoError(bd.Advance())
	assert.Equal(2, bd.Cursor())

	err := bd.Advance()
	assert.ErrorIs(err, ErrBounds)
	assert.ErrorIs(err, ErrCursorEnd)
	assert.Equal(2, bd.Cursor())
}

func TestBoard_RetreatBegin(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(3)
	err := bd.Retreat()
	assert.ErrorIs(err, ErrBounds)
	assert.ErrorIs(err, ErrCursorBegin)
	assert.Equal(0, bd.Cursor())
}

func TestBoard_SingleCell(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(1)
	assert.ErrorIs(bd.Advance(), ErrBounds)
	assert.ErrorIs(bd.Retreat(), ErrBounds)

	_, err := bd.NeighborForward()
	assert.ErrorIs(err, ErrNeighbor)
	_, err = bd.NeighborBackward()
	assert.ErrorIs(err, ErrNeighbor)
}

func TestBoard_Current(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(4)
	bd.Current().Out = 7
	assert.NoError(bd.Advance())
	bd.Current().In = 9

	assert.Equal(Cell{Out: 7}, bd.Cells[0])
	assert.Equal(Cell{In: 9}, bd.Cells[1])
}

func TestBoard_Neighbors(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(3)

	_, err := bd.NeighborBackward()
	assert.ErrorIs(err, ErrBounds)

	assert.NoError(bd.Advance())

	back, err := bd.NeighborBackward()
	assert.NoError(err)
	back.In = 4
	next, err := bd.NeighborForward()
	assert.NoError(err)
	next.In = 5

	assert.Equal(int32(4), bd.Cells[0].In)
	assert.Equal(int32(5), bd.Cells[2].In)

	assert.NoError(bd.Advance())
	_, err = bd.NeighborForward()
	assert.ErrorIs(err, ErrBounds)
}

func TestBoard_Snapshot(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(4)
	bd.Cells[1] = Cell{In: 1, Op: 2, Out: 3}

	cells, err := bd.Snapshot(2)
	assert.NoError(err)
	assert.Equal([]Cell{{}, {In: 1, Op: 2, Out: 3}}, cells)

	// The snapshot is a copy.
	cells[1].In = 100
	assert.Equal(int32(1), bd.Cells[1].In)

	cells, err = bd.Snapshot(4)
	assert.NoError(err)
	assert.Len(cells, 4)

	_, err = bd.Snapshot(5)
	assert.ErrorIs(err, ErrDumpDepth)
	_, err = bd.Snapshot(-1)
	assert.ErrorIs(err, ErrBounds)
}

func TestBoard_Dump(t *testing.T) {
	assert := assert.New(t)

	bd := NewBoard(3)
	bd.Cells[0] = Cell{In: 1, Op: 15, Out: -2}

	buf := &bytes.Buffer{}
	assert.NoError(bd.Dump(buf, 2))

	expected := strings.Join([]string{
		"|- Cell 0: (in: 1, out: -2, op: 15) -|",
		"|- Cell 1: (in: 0, out: 0, op: 0) -|",
		"",
	}, "\n")
	assert.Equal(expected, buf.String())

	buf.Reset()
	assert.NoError(bd.Dump(buf, 0))
	assert.Equal("", buf.String())

	err := bd.Dump(buf, 4)
	assert.True(errors.Is(err, ErrDumpDepth))
}
