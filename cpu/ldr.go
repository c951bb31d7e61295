package cpu

var familyLdr = family{
	name:    "ldr",
	ops:     []Mnemonic{OP_LDR, OP_POP},
	decode:  decodeLdr,
	encode:  encodeLdr,
	execute: executeLdr,
	parse:   parseLdr,
	text:    textLdr,
}

func decodeLdr(word uint16) Instruction {
	mustFamily(word, FAMILY_LDR)

	return decodeMem(word, OP_LDR, OP_POP)
}

func encodeLdr(instr Instruction) uint16 {
	return encodeMem(FAMILY_LDR, instr, OP_POP)
}

func textLdr(instr Instruction) string {
	return textMem(instr, OP_POP, "*")
}

func parseLdr(p *parser, op Mnemonic, tokens []string) (Instruction, error) {
	return parseMem(p, op, tokens, OP_POP, "*")
}

// executeLdr loads into the first operand. Pop loads from the stack pointer,
// then moves the stack pointer up one word.
func executeLdr(cpu *Cpu, instr Instruction) {
	var value uint16
	if instr.Op == OP_POP {
		value = cpu.pop()
	} else {
		value = cpu.Ram.LoadWord(cpu.address(instr.Op2))
	}

	cpu.setReg(instr.Op1, value)
}
