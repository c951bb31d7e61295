package cpu

var familyStr = family{
	name:    "str",
	ops:     []Mnemonic{OP_STR, OP_PUSH},
	decode:  decodeStr,
	encode:  encodeStr,
	execute: executeStr,
	parse:   parseStr,
	text:    textStr,
}

func decodeStr(word uint16) Instruction {
	mustFamily(word, FAMILY_STR)

	return decodeMem(word, OP_STR, OP_PUSH)
}

func encodeStr(instr Instruction) uint16 {
	return encodeMem(FAMILY_STR, instr, OP_PUSH)
}

func textStr(instr Instruction) string {
	return textMem(instr, OP_PUSH, "&")
}

func parseStr(p *parser, op Mnemonic, tokens []string) (Instruction, error) {
	return parseMem(p, op, tokens, OP_PUSH, "&")
}

// executeStr stores the first operand. Push stores below the stack pointer
// and moves the stack pointer down one word.
func executeStr(cpu *Cpu, instr Instruction) {
	if instr.Op == OP_PUSH {
		cpu.push(cpu.Register[instr.Op1])
		return
	}

	cpu.Ram.StoreWord(cpu.address(instr.Op2), cpu.Register[instr.Op1])
}
