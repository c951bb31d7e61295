package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line   string
		tokens []string
	}){
		{"  mul  r1 , 0x05 ; comment", []string{"mul", "r1", ",", "0x05"}},
		{"mul r1,0x05", []string{"mul", "r1", ",", "0x05"}},
		{"add\tr3,r4", []string{"add", "r3", ",", "r4"}},
		{"loop:", []string{"loop", ":"}},
		{"loop :", []string{"loop", ":"}},
		{"str r1, &r2", []string{"str", "r1", ",", "&", "r2"}},
		{"str r1,&r2", []string{"str", "r1", ",", "&", "r2"}},
		{"ldr r0, *-0x0006", []string{"ldr", "r0", ",", "*-", "0x0006"}},
		{"ldr r0, *+0x0010;x", []string{"ldr", "r0", ",", "*+", "0x0010"}},
		{"push r4", []string{"push", "r4"}},
		{"xor r0, r0;;", []string{"xor", "r0", ",", "r0"}},
	}

	for _, entry := range table {
		tokens, ok := Tokenize(entry.line)
		assert.True(ok, entry.line)
		assert.Equal(entry.tokens, tokens, entry.line)
	}

	for _, line := range []string{"", "   ", "\t", "; comment", "   ;", ";add r1, r2"} {
		tokens, ok := Tokenize(line)
		assert.False(ok, line)
		assert.Empty(tokens, line)
	}
}

func TestParseReg(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		reg   uint16
	}){
		{"r0", 0},
		{"r7", 7},
		{"r15", 15},
		{"r16", 16},
		{"r007", 7},
		{"sr", REG_SP},
		{"lr", REG_LR},
		{"pc", REG_PC},
	}

	for _, entry := range table {
		reg, err := ParseReg(entry.token)
		assert.NoError(err, entry.token)
		assert.Equal(entry.reg, reg, entry.token)
	}

	for _, token := range []string{"r", "x1", "rr1", "r-1", "r1a", "sp", "0x01", "r99999"} {
		_, err := ParseReg(token)
		assert.Equal(ErrInvalidReg(token), err, token)
	}

	_, err := ParseReg("")
	assert.Equal(ErrEmptyToken, err)
}

func TestParseImm(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		imm   uint16
	}){
		{"0x0", 0},
		{"0x05", 5},
		{"0xffff", 0xffff},
		{"0xABCD", 0xabcd},
		{"0b101", 5},
		{"0o17", 15},
		{"0d65535", 65535},
		{"0d0010", 10},
	}

	for _, entry := range table {
		imm, err := ParseImm(entry.token)
		assert.NoError(err, entry.token)
		assert.Equal(entry.imm, imm, entry.token)
	}

	for _, token := range []string{"5", "x05", "0x", "0b102", "0o8", "0d1a", "0x10000", "0d65536", "0z1", "-0x1", "r1"} {
		_, err := ParseImm(token)
		assert.Equal(ErrInvalidImm(token), err, token)
	}

	_, err := ParseImm("")
	assert.Equal(ErrEmptyToken, err)
}

func TestIsWord(t *testing.T) {
	assert := assert.New(t)

	for _, token := range []string{"loop", "_start", "a1", "r1", "0x05", "LOOP_2"} {
		assert.True(IsWord(token), token)
	}

	for _, token := range []string{"", ",", ":", "&", "*-", "a-b", "loop:"} {
		assert.False(IsWord(token), token)
	}
}
