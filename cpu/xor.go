package cpu

var familyXor = family{
	name:    "xor",
	ops:     []Mnemonic{OP_XOR},
	decode:  decodeXor,
	encode:  encodeXor,
	execute: executeXor,
	parse:   parseSigned,
	text:    textOp2,
}

func decodeXor(word uint16) Instruction {
	mustFamily(word, FAMILY_XOR)

	return decodeSigned(OP_XOR, word)
}

func encodeXor(instr Instruction) uint16 {
	return encodeSigned(FAMILY_XOR, instr)
}

// executeXor sets zero and negative from the result, and clears overflow and carry.
func executeXor(cpu *Cpu, instr Instruction) {
	res := cpu.Register[instr.Op1] ^ cpu.value(instr.Op2)

	cpu.setReg(instr.Op1, res)
	cpu.setFlags(res == 0, (res&0x8000) != 0, false, false)
}
