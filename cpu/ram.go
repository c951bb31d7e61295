package cpu

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
)

const (
	RAM_SIZE = 0x10000 // Bytes of RAM; the whole 16-bit address space.
	RAM_ROW  = 8       // Words per row of a RAM dump.
)

// Ram is byte addressed memory, accessed as big-endian words at even
// addresses.
type Ram struct {
	Data []byte
}

// NewRam allocates RAM of size bytes. Size must be even and no larger
// than the address space.
func NewRam(size int) (ram *Ram) {
	if size <= 0 || size > RAM_SIZE || (size%WORD_SIZE) != 0 {
		panic(fmt.Sprintf("ram: invalid size %#x", size))
	}

	ram = &Ram{
		Data: make([]byte, size),
	}

	return
}

// Size returns the size of the RAM in bytes.
func (ram *Ram) Size() int {
	return len(ram.Data)
}

// check panics with ErrAddress if addr can not hold a word.
func (ram *Ram) check(addr uint16) {
	if (addr % WORD_SIZE) != 0 {
		panic(ErrAddress{Addr: addr, Misaligned: true})
	}
	if int(addr)+WORD_SIZE > len(ram.Data) {
		panic(ErrAddress{Addr: addr})
	}
}

// LoadWord reads the word at addr.
func (ram *Ram) LoadWord(addr uint16) uint16 {
	ram.check(addr)
	return binary.BigEndian.Uint16(ram.Data[addr:])
}

// StoreWord writes the word at addr.
func (ram *Ram) StoreWord(addr uint16, value uint16) {
	ram.check(addr)
	binary.BigEndian.PutUint16(ram.Data[addr:], value)
}

// Load copies words into RAM starting at addr.
func (ram *Ram) Load(addr uint16, words []uint16) {
	for n, word := range words {
		ram.StoreWord(addr+uint16(n*WORD_SIZE), word)
	}
}

// Reset zeros the RAM.
func (ram *Ram) Reset() {
	clear(ram.Data)
}

// String dumps every row of RAM holding a non-zero word.
func (ram *Ram) String() string {
	var rows []string

	for base := 0; base < len(ram.Data); base += RAM_ROW * WORD_SIZE {
		end := min(base+RAM_ROW*WORD_SIZE, len(ram.Data))
		row := ram.Data[base:end]
		if !slices.ContainsFunc(row, func(b byte) bool { return b != 0 }) {
			continue
		}
		line := fmt.Sprintf("0x%04x:", base)
		for n := 0; n < len(row); n += WORD_SIZE {
			line += fmt.Sprintf(" %04x", binary.BigEndian.Uint16(row[n:]))
		}
		rows = append(rows, line)
	}

	return strings.Join(rows, "\n")
}
