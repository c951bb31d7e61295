package cpu

import (
	"errors"

	"github.com/ezrec/r16/translate"
)

var f = translate.From

var (
	// Lexical errors
	ErrEmptyToken = errors.New(f("found empty token; expected content"))

	// Instruction syntax errors
	ErrEmptyStr       = errors.New(f("empty instruction"))
	ErrMissingOps     = errors.New(f("missing operands"))
	ErrExtraOps       = errors.New(f("excessive operands"))
	ErrBadInstruction = errors.New(f("instruction invalid"))
	ErrExpectedSep    = errors.New(f("expected ',' separator"))
	ErrInvalidOp      = errors.New(f("operand invalid"))

	// Assembler errors
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))

	// Emulation errors
	ErrShiftMode = errors.New(f("shift mode invalid"))
)

// ErrInvalidReg is returned when a token is not a register name.
type ErrInvalidReg string

func (err ErrInvalidReg) Error() string {
	return f("could not parse register from '%v'", string(err))
}

// ErrInvalidImm is returned when a token is not an immediate literal.
type ErrInvalidImm string

func (err ErrInvalidImm) Error() string {
	return f("could not parse immediate from '%v'", string(err))
}

// ErrToken names the token an instruction error was found at.
type ErrToken string

func (err ErrToken) Error() string {
	return f("at '%v'", string(err))
}

type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbol %v missing", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOpcode is a word that does not decode to any instruction.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x", uint16(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress is the panic value of a misaligned or out of range memory access.
type ErrAddress struct {
	Addr       uint16
	Misaligned bool
}

func (err ErrAddress) Error() string {
	if err.Misaligned {
		return f("address 0x%04x misaligned", err.Addr)
	}
	return f("address 0x%04x out of range", err.Addr)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
