package cpu

const (
	ADD_IMM_MASK = 0x007f // 7-bit unsigned immediate.
)

var familyAdd = family{
	name:    "add",
	ops:     []Mnemonic{OP_ADD},
	decode:  decodeAdd,
	encode:  encodeAdd,
	execute: executeAdd,
	parse:   parseAdd,
	text:    textOp2,
}

func decodeAdd(word uint16) (instr Instruction) {
	mustFamily(word, FAMILY_ADD)

	instr.Op = OP_ADD
	instr.Op1 = decodeOp1(word)
	if (word & SOURCE_IMM) == 0 {
		instr.Op2 = Reg(uint8(word & REG_MASK))
	} else {
		instr.Op2 = Imm(word & ADD_IMM_MASK)
	}

	return
}

func encodeAdd(instr Instruction) (word uint16) {
	word = encodeOp1(FAMILY_ADD, instr)
	if instr.Op2.IsImm() {
		word |= SOURCE_IMM | (instr.Op2.Value & ADD_IMM_MASK)
	} else {
		word |= uint16(instr.Op2.Reg())
	}

	return
}

// executeAdd wraps on overflow and leaves the flags alone.
func executeAdd(cpu *Cpu, instr Instruction) {
	cpu.setReg(instr.Op1, cpu.Register[instr.Op1]+cpu.value(instr.Op2))
}

func parseAdd(p *parser, op Mnemonic, tokens []string) (instr Instruction, err error) {
	op1, op2, err := p.twoOps(tokens)
	if err != nil {
		return
	}

	if op2.IsImm() && op2.Value > ADD_IMM_MASK {
		err = p.invalid(tokens[3])
		return
	}

	instr = MakeInstruction(op, op1, op2)
	return
}
