package emulator

import (
	"errors"

	"github.com/ezrec/r16/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrImageSize is a program image too large for RAM, in words.
type ErrImageSize int

func (err ErrImageSize) Error() string {
	return f("image of %d words does not fit in RAM", int(err))
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
