// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/k0kubun/pp/v3"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	DIRECTIVE_EQU = ".equ" // .equ NAME VALUE
)

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Assembler is a two pass assembler for the r16 instruction set. The first
// pass collects equates and labels, the second encodes one word per line.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     Symbols           // Map of labels to opcode indexes.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// expandCharacters replaces 'x' quoted characters with their value.
func expandCharacters(line string) string {
	return reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("0x%04x", str[0])
	})
}

// parenEval does compile-time $(...) evaluations. Integer equates and
// labels are predeclared.
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		imm, ierr := ParseImm(str)
		if ierr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(imm))
	}
	for key := range asm.Label {
		addr, _ := asm.Label.Address(key)
		pred[key] = starlark.MakeInt(int(addr))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// expandExpressions replaces every $(...) with its value.
func (asm *Assembler) expandExpressions(line string) (out string, err error) {
	out = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("0x%04x", value)
	})

	return
}

// prepare expands quoted characters, then drops the comment and lower-cases
// what remains.
func prepare(text string) string {
	code, _, _ := strings.Cut(expandCharacters(text), COMMENT)
	return strings.ToLower(code)
}

// parseEquate handles a '.equ NAME VALUE' line. ok is false if the line
// is not an equate.
func (asm *Assembler) parseEquate(line string) (ok bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 || words[0] != DIRECTIVE_EQU {
		return
	}

	ok = true

	if len(words) != 3 || !IsWord(words[1]) {
		err = ErrEquateSyntax
		return
	}

	_, dup := asm.Equate[words[1]]
	if dup {
		err = errors.Join(ErrEquateDuplicate, ErrToken(words[1]))
		return
	}

	value, err := asm.expandExpressions(words[2])
	if err != nil {
		return
	}

	asm.Equate[words[1]] = value
	return
}

// substitute replaces tokens that name an equate with the equate's tokens.
func (asm *Assembler) substitute(tokens []string) (out []string) {
	for _, token := range tokens {
		equate, ok := asm.Equate[token]
		if !ok {
			out = append(out, token)
			continue
		}
		words, ok := Tokenize(equate)
		if !ok {
			continue
		}
		out = append(out, words...)
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	asm.Opcode = asm.Opcode[:0]
	asm.Label = Symbols{}
	asm.Equate = map[string]string{}
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	// Pass one: equates and labels.
	var lines []Line
	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line := prepare(text)

		var ok bool
		ok, err = asm.parseEquate(line)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: err}
			return
		}
		if ok {
			continue
		}

		tokens, ok := Tokenize(line)
		if !ok {
			continue
		}

		lines = append(lines, Line{LineNo: lineno, Text: text, Tokens: tokens})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	lines, asm.Label, err = Extract(lines)
	if err != nil {
		return
	}

	if asm.Verbose {
		pp.Fprintf(os.Stderr, "labels: %v\nequates: %v\n", asm.Label, asm.Equate)
	}

	// Pass two: one instruction per retained line.
	for n, line := range lines {
		var instr Instruction
		var words []string
		words, instr, err = asm.parseLine(line, uint16(n*WORD_SIZE))
		if err != nil {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:      line.LineNo,
			Ip:          uint16(n * WORD_SIZE),
			Words:       words,
			Word:        instr.Encode(),
			Instruction: instr,
		})
	}

	prog = &Program{
		Opcodes: append([]Opcode(nil), asm.Opcode...),
	}

	return
}

// parseLine parses a single retained line as the instruction at ip.
func (asm *Assembler) parseLine(line Line, ip uint16) (words []string, instr Instruction, err error) {
	text, err := asm.expandExpressions(prepare(line.Text))
	if err != nil {
		return
	}

	tokens, ok := Tokenize(text)
	if !ok {
		err = ErrEmptyStr
		return
	}

	words = asm.substitute(tokens)

	p := &parser{ip: ip, symbols: asm.Label}
	instr, err = p.parse(words)

	return
}
