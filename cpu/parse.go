package cpu

import (
	"errors"
	"strings"
	"unicode"
)

// SEPARATOR separates the operands of an instruction.
const SEPARATOR = ","

// parser resolves the operands of a single instruction.
type parser struct {
	ip      uint16  // Byte address of the instruction being parsed.
	symbols Symbols // Resolved labels.
}

// ParseInstruction parses one line of assembly text as the instruction at
// byte address ip, resolving labels from symbols.
func ParseInstruction(line string, ip uint16, symbols Symbols) (instr Instruction, err error) {
	tokens, ok := Tokenize(strings.ToLower(line))
	if !ok {
		err = ErrEmptyStr
		return
	}

	p := &parser{ip: ip, symbols: symbols}
	return p.parse(tokens)
}

// parse dispatches tokens to the parser of the mnemonic's family.
func (p *parser) parse(tokens []string) (instr Instruction, err error) {
	if len(tokens) == 0 {
		err = ErrEmptyStr
		return
	}

	op, ok := mnemonicMap[tokens[0]]
	if !ok {
		err = errors.Join(ErrBadInstruction, ErrToken(tokens[0]))
		return
	}

	return families[op.Family()].parse(p, op, tokens)
}

// invalid reports an operand that is out of range or of the wrong kind.
func (p *parser) invalid(token string) error {
	return errors.Join(ErrInvalidOp, ErrToken(token))
}

// reg parses a register operand in the range r0 to r15.
func (p *parser) reg(token string) (reg uint8, err error) {
	index, err := ParseReg(token)
	if err != nil {
		err = errors.Join(ErrInvalidOp, err)
		return
	}

	if index >= REG_COUNT {
		err = p.invalid(token)
		return
	}

	reg = uint8(index)
	return
}

// operand parses a register, an immediate or a label. Labels resolve to
// their byte address, and set label.
func (p *parser) operand(token string) (op Operand, label bool, err error) {
	switch {
	case len(token) == 0:
		err = ErrEmptyToken
	case isRegister(token):
		var reg uint8
		reg, err = p.reg(token)
		op = Reg(reg)
	case unicode.IsDigit(rune(token[0])):
		var imm uint16
		imm, err = ParseImm(token)
		if err != nil {
			err = errors.Join(ErrInvalidOp, err)
		}
		op = Imm(imm)
	case IsWord(token):
		addr, ok := p.symbols.Address(token)
		if !ok {
			err = ErrSymbolMissing(token)
			return
		}
		op = Imm(addr)
		label = true
	default:
		err = p.invalid(token)
	}

	return
}

// twoOps parses the '<mnemonic> <reg> , <operand>' form.
func (p *parser) twoOps(tokens []string) (op1 uint8, op2 Operand, err error) {
	err = checkCount(tokens, 4)
	if err != nil {
		return
	}

	op1, err = p.reg(tokens[1])
	if err != nil {
		return
	}

	err = checkSep(tokens[2])
	if err != nil {
		return
	}

	op2, _, err = p.operand(tokens[3])
	return
}

// checkCount verifies the exact number of tokens of an instruction.
func checkCount(tokens []string, count int) error {
	switch {
	case len(tokens) < count:
		return ErrMissingOps
	case len(tokens) > count:
		return errors.Join(ErrExtraOps, ErrToken(tokens[count]))
	}

	return nil
}

func checkSep(token string) error {
	if token != SEPARATOR {
		return errors.Join(ErrExpectedSep, ErrToken(token))
	}

	return nil
}
