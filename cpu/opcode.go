package cpu

import (
	"errors"
	"fmt"
)

// Mnemonic names an instruction, including the mode of its family.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_ADD  = Mnemonic(0)  // add
	OP_MUL  = Mnemonic(1)  // mul
	OP_XOR  = Mnemonic(2)  // xor
	OP_LSR  = Mnemonic(3)  // lsr
	OP_ASR  = Mnemonic(4)  // asr
	OP_ROR  = Mnemonic(5)  // ror
	OP_LSL  = Mnemonic(6)  // lsl
	OP_ASL  = Mnemonic(7)  // asl
	OP_ROL  = Mnemonic(8)  // rol
	OP_STR  = Mnemonic(9)  // str
	OP_PUSH = Mnemonic(10) // push
	OP_LDR  = Mnemonic(11) // ldr
	OP_POP  = Mnemonic(12) // pop
)

// Family is the opcode nibble of an instruction word.
type Family uint16

const (
	FAMILY_XOR = Family(0b0101)
	FAMILY_MUL = Family(0b0111)
	FAMILY_LDR = Family(0b1011)
	FAMILY_ADD = Family(0b1100)
	FAMILY_STR = Family(0b1101)
	FAMILY_SHF = Family(0b1110)
)

// Bit fields shared by every family.
const (
	OPCODE_MASK = 0xf000 // Family selector.
	OP1_MASK    = 0x0f00 // First operand register.
	SOURCE_IMM  = 0x0080 // Set when the second operand is an immediate.
	REG_MASK    = 0x000f // Second operand register.
)

// FamilyOf returns the family selected by the high nibble of a word.
func FamilyOf(word uint16) Family {
	return Family(word >> 12)
}

// family is the codec and execution unit of one instruction family.
type family struct {
	name    string
	ops     []Mnemonic
	decode  func(word uint16) Instruction
	encode  func(instr Instruction) uint16
	execute func(cpu *Cpu, instr Instruction)
	parse   func(asm *parser, op Mnemonic, tokens []string) (Instruction, error)
	text    func(instr Instruction) string
}

// families is indexed by opcode nibble.
var families [16]*family

func init() {
	families = [16]*family{
		FAMILY_ADD: &familyAdd,
		FAMILY_MUL: &familyMul,
		FAMILY_XOR: &familyXor,
		FAMILY_SHF: &familyShf,
		FAMILY_STR: &familyStr,
		FAMILY_LDR: &familyLdr,
	}
}

// String returns the family name, or the raw nibble if it is not assigned.
func (fam Family) String() string {
	if int(fam) < len(families) && families[fam] != nil {
		return families[fam].name
	}
	return fmt.Sprintf("Family(0b%04b)", uint16(fam))
}

// Family returns the family an instruction mnemonic belongs to.
func (op Mnemonic) Family() Family {
	switch op {
	case OP_ADD:
		return FAMILY_ADD
	case OP_MUL:
		return FAMILY_MUL
	case OP_XOR:
		return FAMILY_XOR
	case OP_LSR, OP_ASR, OP_ROR, OP_LSL, OP_ASL, OP_ROL:
		return FAMILY_SHF
	case OP_STR, OP_PUSH:
		return FAMILY_STR
	case OP_LDR, OP_POP:
		return FAMILY_LDR
	}

	panic(fmt.Sprintf("unknown mnemonic %d", int(op)))
}

// mnemonicMap maps assembly mnemonics to instructions.
var mnemonicMap = map[string]Mnemonic{}

func init() {
	for _, fam := range families {
		if fam == nil {
			continue
		}
		for _, op := range fam.ops {
			mnemonicMap[op.String()] = op
		}
	}
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Op  Mnemonic // Instruction and family mode.
	Op1 uint8    // First operand register.
	Op2 Operand  // Second operand; unused by push and pop.
}

// MakeInstruction creates an instruction from its parts.
func MakeInstruction(op Mnemonic, op1 uint8, op2 Operand) Instruction {
	return Instruction{Op: op, Op1: op1 & 0xf, Op2: op2}
}

// MakePush creates a push of a register onto the stack.
func MakePush(reg uint8) Instruction {
	return Instruction{Op: OP_PUSH, Op1: reg & 0xf}
}

// MakePop creates a pop from the stack into a register.
func MakePop(reg uint8) Instruction {
	return Instruction{Op: OP_POP, Op1: reg & 0xf}
}

// Decode decodes an instruction word.
// Words with an unassigned opcode nibble, or that select an invalid shift
// mode, return ErrOpcode.
func Decode(word uint16) (instr Instruction, err error) {
	fam := families[FamilyOf(word)]
	if fam == nil {
		err = ErrOpcode(word)
		return
	}

	if FamilyOf(word) == FAMILY_SHF && !shiftModeValid(word) {
		err = errors.Join(ErrOpcode(word), ErrShiftMode)
		return
	}

	instr = fam.decode(word)
	return
}

// Encode returns the instruction word.
func (instr Instruction) Encode() uint16 {
	return families[instr.Op.Family()].encode(instr)
}

// String returns the assembly language representation of this instruction.
func (instr Instruction) String() string {
	return families[instr.Op.Family()].text(instr)
}

// mustFamily asserts that a word carries the opcode of a family.
func mustFamily(word uint16, fam Family) {
	if FamilyOf(word) != fam {
		panic(fmt.Sprintf("decode: word 0x%04x is not %v", word, fam))
	}
}

// encodeOp1 returns the opcode and first operand fields.
func encodeOp1(fam Family, instr Instruction) uint16 {
	return (uint16(fam) << 12) | ((uint16(instr.Op1) << 8) & OP1_MASK)
}

// decodeOp1 returns the first operand register.
func decodeOp1(word uint16) uint8 {
	return uint8((word & OP1_MASK) >> 8)
}

// textOp2 formats the common '<mnemonic> r<N>, <op2>' form.
func textOp2(instr Instruction) string {
	return fmt.Sprintf("%v r%d, %v", instr.Op, instr.Op1, instr.Op2)
}
