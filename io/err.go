package io

import (
	"errors"

	"github.com/ezrec/cellvm/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
	ErrNoOutput    = errors.New(f("channel has no output"))
)
