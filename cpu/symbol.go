package cpu

import (
	"errors"
)

// Line is a tokenized line of assembly text.
type Line struct {
	LineNo int      // Source line number, one based.
	Text   string   // Source text.
	Tokens []string // Tokens of the text.
}

// IsLabel returns true if the line is a '<word> :' label declaration.
func (line Line) IsLabel() bool {
	return len(line.Tokens) == 2 && IsWord(line.Tokens[0]) && line.Tokens[1] == SYMBOL
}

// Symbols maps labels to instruction indexes.
type Symbols map[string]int

// Address returns the byte address of a label.
func (sym Symbols) Address(name string) (addr uint16, ok bool) {
	index, ok := sym[name]
	if !ok {
		return
	}

	addr = uint16(index * WORD_SIZE)
	return
}

// Extract removes label declarations from lines, recording each label at
// the index of the next retained line.
func Extract(lines []Line) (retained []Line, symbols Symbols, err error) {
	symbols = Symbols{}

	for _, line := range lines {
		if !line.IsLabel() {
			retained = append(retained, line)
			continue
		}

		label := line.Tokens[0]
		_, ok := symbols[label]
		if ok {
			err = ErrSyntax{
				LineNo: line.LineNo,
				Line:   line.Text,
				Err:    errors.Join(ErrLabelDuplicate, ErrToken(label)),
			}
			return
		}
		symbols[label] = len(retained)
	}

	return
}
