package board

import (
	"errors"

	"github.com/ezrec/cellvm/translate"
)

var f = translate.From

var (
	// Board errors
	ErrBounds      = errors.New(f("cell bounds"))
	ErrCursorEnd   = errors.New(f("cursor at last cell"))
	ErrCursorBegin = errors.New(f("cursor at first cell"))
	ErrNeighbor    = errors.New(f("neighbor outside board"))
	ErrDumpDepth   = errors.New(f("dump depth outside board"))
)
