package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Opcode is a single assembled instruction, and where it came from.
type Opcode struct {
	LineNo      int         // Source line number.
	Ip          uint16      // Byte address of the instruction.
	Words       []string    // Source tokens, after equate substitution.
	Word        uint16      // Encoded instruction word.
	Instruction Instruction // Decoded instruction.
}

// Program is an assembled instruction listing, one word per opcode.
type Program struct {
	Opcodes []Opcode
}

// NewProgram decodes a binary image into a program listing. Line numbers
// are the one based word index in the image.
func NewProgram(words []uint16) (prog *Program, err error) {
	prog = &Program{}

	for n, word := range words {
		var instr Instruction
		instr, err = Decode(word)
		if err != nil {
			err = ErrSyntax{LineNo: n + 1, Line: fmt.Sprintf("0x%04x", word), Err: err}
			return
		}
		tokens, _ := Tokenize(instr.String())
		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo:      n + 1,
			Ip:          uint16(n * WORD_SIZE),
			Words:       tokens,
			Word:        word,
			Instruction: instr,
		})
	}

	return
}

// Debug returns the opcode at a byte address, or nil if there is none.
func (prog *Program) Debug(ip uint16) (op *Opcode) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Ip == ip {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Size returns the size of the binary image in bytes.
func (prog *Program) Size() int {
	return len(prog.Opcodes) * WORD_SIZE
}

// Binary returns the binary image of the program.
func (prog *Program) Binary() (bins []uint16) {
	for _, op := range prog.Opcodes {
		bins = append(bins, op.Word)
	}

	return
}

// Codes iterates over the byte address and instruction of every opcode.
func (prog *Program) Codes() iter.Seq2[uint16, Instruction] {
	return func(yield func(ip uint16, instr Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Instruction) {
				return
			}
		}
	}
}

// Disassemble returns an address, word and instruction listing of the
// program. The instruction column assembles back to the same word.
func (prog *Program) Disassemble() string {
	var text strings.Builder

	for _, op := range prog.Opcodes {
		fmt.Fprintf(&text, "%04x: %04x  %v\n", op.Ip, op.Word, op.Instruction)
	}

	return text.String()
}
