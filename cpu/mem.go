package cpu

import (
	"fmt"
	"strings"
)

const (
	MEM_MODE_MASK  = 0x00c0 // Stack mode selector.
	MEM_MODE_STACK = 0x0040 // Push or pop.
	MEM_IMM_MASK   = 0x007f // 7-bit word offset.
	MEM_IMM_BITS   = 8      // Width of the offset once scaled to bytes.

	MEM_OFFSET_MIN = -128 // Lowest reachable byte offset.
	MEM_OFFSET_MAX = 126  // Highest reachable byte offset.
)

// decodeMem decodes the addressing modes shared by str/push and ldr/pop.
// Immediates are byte offsets relative to the following instruction.
func decodeMem(word uint16, op, stackOp Mnemonic) (instr Instruction) {
	instr.Op1 = decodeOp1(word)
	switch {
	case (word & MEM_MODE_MASK) == MEM_MODE_STACK:
		instr.Op = stackOp
	case (word & SOURCE_IMM) != 0:
		instr.Op = op
		instr.Op2 = Imm(SignExtend(WORD_SIZE*(word&MEM_IMM_MASK), MEM_IMM_BITS))
	default:
		instr.Op = op
		instr.Op2 = Reg(uint8(word & REG_MASK))
	}

	return
}

func encodeMem(fam Family, instr Instruction, stackOp Mnemonic) (word uint16) {
	word = encodeOp1(fam, instr)
	switch {
	case instr.Op == stackOp:
		word |= MEM_MODE_STACK
	case instr.Op2.IsImm():
		word |= SOURCE_IMM | ((instr.Op2.Value / WORD_SIZE) & MEM_IMM_MASK)
	default:
		word |= uint16(instr.Op2.Reg())
	}

	return
}

// textMem formats 'str r1, &r2', 'ldr r1, *-0x0006' and 'push r1'.
func textMem(instr Instruction, stackOp Mnemonic, deref string) string {
	if instr.Op == stackOp {
		return fmt.Sprintf("%v r%d", instr.Op, instr.Op1)
	}
	return fmt.Sprintf("%v r%d, %v%v", instr.Op, instr.Op1, deref, instr.Op2.offsetString())
}

// parseMem parses '<op> <reg> , <deref> <operand>' and '<stackOp> <reg>'.
// The deref token may carry a sign for an immediate byte offset.
func parseMem(p *parser, op Mnemonic, tokens []string, stackOp Mnemonic, deref string) (instr Instruction, err error) {
	if op == stackOp {
		err = checkCount(tokens, 2)
		if err != nil {
			return
		}
		var op1 uint8
		op1, err = p.reg(tokens[1])
		if err != nil {
			return
		}
		instr = Instruction{Op: op, Op1: op1}
		return
	}

	err = checkCount(tokens, 5)
	if err != nil {
		return
	}

	op1, err := p.reg(tokens[1])
	if err != nil {
		return
	}

	err = checkSep(tokens[2])
	if err != nil {
		return
	}

	sign, ok := strings.CutPrefix(tokens[3], deref)
	if !ok {
		err = p.invalid(tokens[3])
		return
	}

	op2, label, err := p.operand(tokens[4])
	if err != nil {
		return
	}

	var offset int
	switch {
	case label && sign == "":
		offset = int(op2.Value) - (int(p.ip) + WORD_SIZE)
	case !label && !op2.IsImm() && sign == "":
		instr = MakeInstruction(op, op1, op2)
		return
	case !label && op2.IsImm() && sign == "":
		offset = int(int16(op2.Value))
	case !label && op2.IsImm() && sign == "+":
		offset = int(op2.Value)
	case !label && op2.IsImm() && sign == "-":
		offset = -int(op2.Value)
	default:
		err = p.invalid(tokens[3])
		return
	}

	if offset%WORD_SIZE != 0 || offset < MEM_OFFSET_MIN || offset > MEM_OFFSET_MAX {
		err = p.invalid(tokens[4])
		return
	}

	instr = MakeInstruction(op, op1, Imm(uint16(int16(offset))))
	return
}

// address returns the effective address of a memory operand.
func (cpu *Cpu) address(op Operand) uint16 {
	if op.IsImm() {
		return cpu.Register[REG_PC] + WORD_SIZE + op.Value
	}
	return cpu.Register[op.Reg()]
}
