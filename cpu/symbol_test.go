package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenLines(text ...string) (lines []Line) {
	for n, line := range text {
		tokens, ok := Tokenize(line)
		if !ok {
			continue
		}
		lines = append(lines, Line{LineNo: n + 1, Text: line, Tokens: tokens})
	}
	return
}

func TestExtract(t *testing.T) {
	assert := assert.New(t)

	lines := tokenLines(
		"start:",
		"xor r0, r0",
		"loop:",
		"inner:",
		"add r0, 0x01",
		"; nothing",
		"str r1, &loop",
		"end:",
	)

	retained, symbols, err := Extract(lines)
	assert.NoError(err)
	assert.Equal(Symbols{"start": 0, "loop": 1, "inner": 1, "end": 3}, symbols)
	if assert.Len(retained, 3) {
		assert.Equal(2, retained[0].LineNo)
		assert.Equal(5, retained[1].LineNo)
		assert.Equal(7, retained[2].LineNo)
	}

	addr, ok := symbols.Address("loop")
	assert.True(ok)
	assert.Equal(uint16(2), addr)

	addr, ok = symbols.Address("end")
	assert.True(ok)
	assert.Equal(uint16(6), addr)

	_, ok = symbols.Address("missing")
	assert.False(ok)
}

func TestExtract_NotLabel(t *testing.T) {
	assert := assert.New(t)

	lines := tokenLines(
		"a-b:",
		"push r1",
		"x : y",
	)

	retained, symbols, err := Extract(lines)
	assert.NoError(err)
	assert.Empty(symbols)
	assert.Len(retained, 3)
}

func TestExtract_Duplicate(t *testing.T) {
	assert := assert.New(t)

	lines := tokenLines(
		"loop:",
		"xor r0, r0",
		"loop:",
	)

	_, _, err := Extract(lines)
	assert.ErrorIs(err, ErrLabelDuplicate)

	var syntax ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(3, syntax.LineNo)
		assert.Equal("loop:", syntax.Line)
	}
}
