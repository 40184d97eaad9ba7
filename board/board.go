// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package board

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
)

const (
	CELL_COUNT = 1000 // Default number of cells on a board.
)

// Cell is a single slot of the board.
type Cell struct {
	In  int32 // Incoming (seed) value.
	Op  int32 // Operator tag applied on resolution.
	Out int32 // Accumulated result.
}

// String returns the cell fields in dump order.
func (cell Cell) String() string {
	return fmt.Sprintf("(in: %d, out: %d, op: %d)", cell.In, cell.Out, cell.Op)
}

// Board is the cell memory of the machine.
type Board struct {
	Verbose bool   // Set to enable verbose logging.
	Cells   []Cell // Cell storage, fixed at creation.

	cursor int
}

// NewBoard creates a zeroed board of count cells.
func NewBoard(count uint) (bd *Board) {
	if count == 0 {
		count = CELL_COUNT
	}

	bd = &Board{
		Cells: make([]Cell, count),
	}

	return
}

// Defines for the board
func (bd *Board) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"CELL_COUNT": fmt.Sprintf("%d", len(bd.Cells)),
	})
}

// Len returns the number of cells on the board.
func (bd *Board) Len() int {
	return len(bd.Cells)
}

// Cursor returns the index of the current cell.
func (bd *Board) Cursor() int {
	return bd.cursor
}

// Reset zeros every cell and returns the cursor to the first cell.
func (bd *Board) Reset() {
	if bd.Verbose {
		log.Printf("board: reset %d cells", len(bd.Cells))
	}

	clear(bd.Cells)
	bd.cursor = 0
}

// Advance moves the cursor to the next cell.
func (bd *Board) Advance() (err error) {
	if bd.cursor+1 >= len(bd.Cells) {
		err = errors.Join(ErrBounds, ErrCursorEnd)
		bd.reject("advance", err)
		return
	}

	bd.cursor++
	return
}

// Retreat moves the cursor to the previous cell.
func (bd *Board) Retreat() (err error) {
	if bd.cursor == 0 {
		err = errors.Join(ErrBounds, ErrCursorBegin)
		bd.reject("retreat", err)
		return
	}

	bd.cursor--
	return
}

// Current returns the cell under the cursor.
func (bd *Board) Current() *Cell {
	return &bd.Cells[bd.cursor]
}

// NeighborForward returns the cell after the cursor.
func (bd *Board) NeighborForward() (cell *Cell, err error) {
	return bd.neighbor(bd.cursor + 1)
}

// NeighborBackward returns the cell before the cursor.
func (bd *Board) NeighborBackward() (cell *Cell, err error) {
	return bd.neighbor(bd.cursor - 1)
}

func (bd *Board) neighbor(index int) (cell *Cell, err error) {
	if index < 0 || index >= len(bd.Cells) {
		err = errors.Join(ErrBounds, ErrNeighbor)
		bd.reject("neighbor", err)
		return
	}

	cell = &bd.Cells[index]
	return
}

func (bd *Board) reject(what string, err error) {
	if bd.Verbose {
		log.Printf("board: %v at cell %d: %v", what, bd.cursor, err)
	}
}

// Snapshot returns a copy of the first depth cells.
func (bd *Board) Snapshot(depth int) (cells []Cell, err error) {
	if depth < 0 || depth > len(bd.Cells) {
		err = errors.Join(ErrBounds, ErrDumpDepth)
		return
	}

	cells = make([]Cell, depth)
	copy(cells, bd.Cells[:depth])
	return
}

// Dump writes the first depth cells to w, one line per cell.
func (bd *Board) Dump(w io.Writer, depth int) (err error) {
	cells, err := bd.Snapshot(depth)
	if err != nil {
		return
	}

	return DumpCells(w, cells)
}

// DumpCells writes cells in the board dump format.
func DumpCells(w io.Writer, cells []Cell) (err error) {
	for n, cell := range cells {
		_, err = fmt.Fprintf(w, "|- Cell %d: %v -|\n", n, cell)
		if err != nil {
			return
		}
	}

	return
}
