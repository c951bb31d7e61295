package cpu

import (
	"fmt"
)

// OperandKind selects which half of an Operand is live.
type OperandKind int

const (
	OPERAND_REG = OperandKind(0) // Register index.
	OPERAND_IMM = OperandKind(1) // Immediate value.
)

// Operand is the second operand of an instruction: a register index or an
// immediate value.
type Operand struct {
	Kind  OperandKind
	Value uint16
}

// Reg makes a register operand.
func Reg(index uint8) Operand {
	return Operand{Kind: OPERAND_REG, Value: uint16(index & 0xf)}
}

// Imm makes an immediate operand.
func Imm(value uint16) Operand {
	return Operand{Kind: OPERAND_IMM, Value: value}
}

// IsImm returns true if the operand is an immediate.
func (op Operand) IsImm() bool {
	return op.Kind == OPERAND_IMM
}

// Reg returns the register index of a register operand.
func (op Operand) Reg() uint8 {
	return uint8(op.Value & 0xf)
}

// String formats the operand as 'r<N>' or a zero-padded hex immediate.
func (op Operand) String() string {
	if op.IsImm() {
		return fmt.Sprintf("0x%04x", op.Value)
	}
	return fmt.Sprintf("r%d", op.Reg())
}

// offsetString formats an immediate as a signed byte offset.
func (op Operand) offsetString() string {
	if !op.IsImm() {
		return op.String()
	}

	sign := "+"
	offset := int(int16(op.Value))
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%v0x%04x", sign, offset)
}
