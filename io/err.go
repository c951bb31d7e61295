package io

import (
	"github.com/ezrec/r16/translate"
)

var f = translate.From

// ErrImageOdd is an image with a trailing partial word, in bytes.
type ErrImageOdd int64

func (err ErrImageOdd) Error() string {
	return f("image of %d bytes is not a whole number of words", int64(err))
}
