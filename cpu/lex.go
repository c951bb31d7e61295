package cpu

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	COMMENT = ";" // Comment marker; runs to end of line.
	SYMBOL  = ":" // Label declaration marker.
)

var (
	reBoundary  = regexp.MustCompile(`\b`)
	reRegister  = regexp.MustCompile(`^r(\d+)$`)
	reImmediate = regexp.MustCompile(`^0([bdox])([[:xdigit:]]+)$`)
	reWord      = regexp.MustCompile(`^\w+$`)
)

// Register aliases.
var regAlias = map[string]uint16{
	"sr": REG_SP,
	"lr": REG_LR,
	"pc": REG_PC,
}

// Immediate prefixes.
var immBase = map[string]int{
	"b": 2,
	"d": 10,
	"o": 8,
	"x": 16,
}

// Tokenize splits a line into tokens. Whitespace separates chunks, and each
// chunk is split again at word boundaries, so 'r3,' yields 'r3' and ','.
// Everything from the first comment marker on is dropped. ok is false if no
// tokens remain.
func Tokenize(line string) (tokens []string, ok bool) {
	line, _, _ = strings.Cut(line, COMMENT)

	for _, chunk := range strings.Fields(line) {
		for _, token := range reBoundary.Split(chunk, -1) {
			if len(token) == 0 {
				continue
			}
			// ',&' and ',*' carry both a separator and an operator.
			rest, sep := strings.CutPrefix(token, ",")
			if sep && len(rest) > 0 {
				tokens = append(tokens, ",", rest)
				continue
			}
			tokens = append(tokens, token)
		}
	}

	ok = len(tokens) > 0
	return
}

// ParseReg parses 'sr', 'lr', 'pc' or 'r<digits>' as a register index.
// The index is not range checked.
func ParseReg(token string) (reg uint16, err error) {
	if len(token) == 0 {
		err = ErrEmptyToken
		return
	}

	reg, ok := regAlias[token]
	if ok {
		return
	}

	match := reRegister.FindStringSubmatch(token)
	if match == nil {
		err = ErrInvalidReg(token)
		return
	}

	value, perr := strconv.ParseUint(match[1], 10, 16)
	if perr != nil {
		err = ErrInvalidReg(token)
		return
	}

	reg = uint16(value)
	return
}

// ParseImm parses a '0b', '0d', '0o' or '0x' prefixed literal.
func ParseImm(token string) (imm uint16, err error) {
	if len(token) == 0 {
		err = ErrEmptyToken
		return
	}

	match := reImmediate.FindStringSubmatch(token)
	if match == nil {
		err = ErrInvalidImm(token)
		return
	}

	value, perr := strconv.ParseUint(match[2], immBase[match[1]], 16)
	if perr != nil {
		err = ErrInvalidImm(token)
		return
	}

	imm = uint16(value)
	return
}

// IsWord returns true if the token is made only of word characters.
func IsWord(token string) bool {
	return reWord.MatchString(token)
}

// isRegister returns true if the token names a register, in or out of range.
func isRegister(token string) bool {
	_, ok := regAlias[token]
	return ok || reRegister.MatchString(token)
}
