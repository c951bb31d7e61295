package cpu

import (
	"math/bits"
)

const (
	SHIFT_MODE_MASK = 0x0070 // Shift kind selector.
	SHIFT_IMM_MASK  = 0x000f // 4-bit unsigned shift amount.
)

var familyShf = family{
	name:    "shf",
	ops:     []Mnemonic{OP_LSR, OP_ASR, OP_ROR, OP_LSL, OP_ASL, OP_ROL},
	decode:  decodeShf,
	encode:  encodeShf,
	execute: executeShf,
	parse:   parseShf,
	text:    textOp2,
}

// shiftDecode maps the mode field to a mnemonic; 0b011 and 0b111 are invalid.
var shiftDecode = [8]Mnemonic{
	0b000: OP_LSR,
	0b001: OP_ASR,
	0b010: OP_ROR,
	0b100: OP_LSL,
	0b101: OP_ASL,
	0b110: OP_ROL,
}

var shiftEncode = map[Mnemonic]uint16{
	OP_LSR: 0b000,
	OP_ASR: 0b001,
	OP_ROR: 0b010,
	OP_LSL: 0b100,
	OP_ASL: 0b101,
	OP_ROL: 0b110,
}

// shiftModeValid returns false for the reserved mode patterns.
func shiftModeValid(word uint16) bool {
	return (((word & SHIFT_MODE_MASK) >> 4) & 0b011) != 0b011
}

func decodeShf(word uint16) (instr Instruction) {
	mustFamily(word, FAMILY_SHF)
	if !shiftModeValid(word) {
		panic(ErrOpcode(word).Error() + ": " + ErrShiftMode.Error())
	}

	instr.Op = shiftDecode[(word&SHIFT_MODE_MASK)>>4]
	instr.Op1 = decodeOp1(word)
	if (word & SOURCE_IMM) == 0 {
		instr.Op2 = Reg(uint8(word & REG_MASK))
	} else {
		instr.Op2 = Imm(word & SHIFT_IMM_MASK)
	}

	return
}

func encodeShf(instr Instruction) (word uint16) {
	word = encodeOp1(FAMILY_SHF, instr)
	word |= (shiftEncode[instr.Op] << 4) & SHIFT_MODE_MASK
	if instr.Op2.IsImm() {
		word |= SOURCE_IMM | (instr.Op2.Value & SHIFT_IMM_MASK)
	} else {
		word |= uint16(instr.Op2.Reg())
	}

	return
}

// Shift shifts or rotates value by amount, returning the result and the
// carry. Carry is the input's low bit for right shifts and its high bit for
// left shifts, whatever the amount. Shifts of WORD_BITS or more give zero,
// rotates never carry.
func Shift(op Mnemonic, value, amount uint16) (res uint16, carry bool) {
	switch op {
	case OP_LSR:
		res = value >> amount
		carry = (value & 0x0001) != 0
	case OP_ASR:
		if amount < WORD_BITS {
			res = uint16(int16(value) >> amount)
		}
		carry = (value & 0x0001) != 0
	case OP_LSL:
		res = value << amount
		carry = (value & 0x8000) != 0
	case OP_ASL:
		if amount < WORD_BITS {
			res = uint16(int16(value) << amount)
		}
		carry = (value & 0x8000) != 0
	case OP_ROR:
		res = bits.RotateLeft16(value, -int(amount%WORD_BITS))
	case OP_ROL:
		res = bits.RotateLeft16(value, int(amount%WORD_BITS))
	default:
		panic("shift: " + op.String())
	}

	return
}

// executeShf sets zero and negative from the result, carry from Shift,
// and overflow as carry XOR negative. Rotates clear both
// carry and overflow.
func executeShf(cpu *Cpu, instr Instruction) {
	res, carry := Shift(instr.Op, cpu.Register[instr.Op1], cpu.value(instr.Op2))
	negative := (res & 0x8000) != 0
	overflow := carry != negative
	if instr.Op == OP_ROR || instr.Op == OP_ROL {
		overflow = false
	}

	cpu.setReg(instr.Op1, res)
	cpu.setFlags(res == 0, negative, overflow, carry)
}

func parseShf(p *parser, op Mnemonic, tokens []string) (instr Instruction, err error) {
	op1, op2, err := p.twoOps(tokens)
	if err != nil {
		return
	}

	if op2.IsImm() && op2.Value > SHIFT_IMM_MASK {
		err = p.invalid(tokens[3])
		return
	}

	instr = MakeInstruction(op, op1, op2)
	return
}
