package cpu

const (
	SIGNED_IMM_MASK = 0x007f // 7-bit sign extended immediate.
	SIGNED_IMM_BITS = 7
)

var familyMul = family{
	name:    "mul",
	ops:     []Mnemonic{OP_MUL},
	decode:  decodeMul,
	encode:  encodeMul,
	execute: executeMul,
	parse:   parseSigned,
	text:    textOp2,
}

func decodeMul(word uint16) Instruction {
	mustFamily(word, FAMILY_MUL)

	return decodeSigned(OP_MUL, word)
}

func encodeMul(instr Instruction) uint16 {
	return encodeSigned(FAMILY_MUL, instr)
}

// executeMul keeps the low word of the product and leaves the flags alone.
func executeMul(cpu *Cpu, instr Instruction) {
	cpu.setReg(instr.Op1, cpu.Register[instr.Op1]*cpu.value(instr.Op2))
}

// decodeSigned decodes the register or sign extended immediate form
// shared by mul and xor.
func decodeSigned(op Mnemonic, word uint16) (instr Instruction) {
	instr.Op = op
	instr.Op1 = decodeOp1(word)
	if (word & SOURCE_IMM) == 0 {
		instr.Op2 = Reg(uint8(word & REG_MASK))
	} else {
		instr.Op2 = Imm(SignExtend(word&SIGNED_IMM_MASK, SIGNED_IMM_BITS))
	}

	return
}

func encodeSigned(fam Family, instr Instruction) (word uint16) {
	word = encodeOp1(fam, instr)
	if instr.Op2.IsImm() {
		word |= SOURCE_IMM | (instr.Op2.Value & SIGNED_IMM_MASK)
	} else {
		word |= uint16(instr.Op2.Reg())
	}

	return
}

// parseSigned accepts either the raw 7-bit field (0x00-0x7f) or the
// value it sign extends to (0xffc0-0xffff) as an immediate.
func parseSigned(p *parser, op Mnemonic, tokens []string) (instr Instruction, err error) {
	op1, op2, err := p.twoOps(tokens)
	if err != nil {
		return
	}

	if op2.IsImm() {
		switch {
		case op2.Value <= SIGNED_IMM_MASK:
			op2 = Imm(SignExtend(op2.Value, SIGNED_IMM_BITS))
		case op2.Value >= SignExtend(0x40, SIGNED_IMM_BITS):
			// Already sign extended.
		default:
			err = p.invalid(tokens[3])
			return
		}
	}

	instr = MakeInstruction(op, op1, op2)
	return
}
