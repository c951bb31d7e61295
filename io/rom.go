// Package io provides the binary image format of r16 programs.
//
// An image is a sequence of words, two bytes per word, most significant
// byte first. Word n of an image is loaded at byte address 2*n.
package io

import (
	"bytes"
	"encoding/binary"
	"io"
	"iter"
)

const (
	WORD_BYTES = 2 // Bytes per image word.
)

// Rom is a program image.
type Rom struct {
	Data []uint16
}

var _ io.ReaderFrom = (*Rom)(nil)
var _ io.WriterTo = (*Rom)(nil)

// Receive returns an iterator that yields the words of the image.
func (rc *Rom) Receive() iter.Seq[uint16] {
	return func(yield func(value uint16) bool) {
		for _, data := range rc.Data {
			if !yield(data) {
				return
			}
		}
	}
}

// Bytes returns the encoded image.
func (rc *Rom) Bytes() (data []byte) {
	data = make([]byte, 0, len(rc.Data)*WORD_BYTES)
	for word := range rc.Receive() {
		data = binary.BigEndian.AppendUint16(data, word)
	}

	return
}

// ReadFrom replaces the image with the words read from r.
func (rc *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	var buff bytes.Buffer
	n, err = buff.ReadFrom(r)
	if err != nil {
		return
	}

	if (n % WORD_BYTES) != 0 {
		err = ErrImageOdd(n)
		return
	}

	data := buff.Bytes()
	rc.Data = make([]uint16, 0, len(data)/WORD_BYTES)
	for len(data) > 0 {
		rc.Data = append(rc.Data, binary.BigEndian.Uint16(data))
		data = data[WORD_BYTES:]
	}

	return
}

// WriteTo writes the encoded image to w.
func (rc *Rom) WriteTo(w io.Writer) (n int64, err error) {
	written, err := w.Write(rc.Bytes())
	n = int64(written)
	return
}
