package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math/bits"
)

// Register conventions.
const (
	REG_SP    = 13 // Stack pointer ('sr').
	REG_LR    = 14 // Link register ('lr').
	REG_PC    = 15 // Program counter ('pc').
	REG_COUNT = 16
)

// Status register flags.
const (
	FLAG_Z = uint16(1 << 0) // Zero.
	FLAG_N = uint16(1 << 1) // Negative.
	FLAG_V = uint16(1 << 2) // Overflow.
	FLAG_C = uint16(1 << 3) // Carry.
)

// Cpu is the simulation context for the processor and its RAM.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REG_COUNT]uint16 // Register file; r15 is the program counter.
	Status   uint16            // Status register flags.
	Ram      *Ram              // Exclusively owned memory.

	Power int // Power (register bits flipped) counter.
	Ticks int // Instructions executed.

	jumped bool // Set when the executing instruction wrote the program counter.
}

// NewCpu creates a new CPU with a specifically sized RAM.
func NewCpu(ramSize int) (cpu *Cpu) {
	cpu = &Cpu{
		Ram: NewRam(ramSize),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"word_size": fmt.Sprintf("0x%04x", WORD_SIZE),
		"ram_size":  fmt.Sprintf("0x%04x", cpu.Ram.Size()),
		"sp_top":    fmt.Sprintf("0x%04x", uint16(cpu.Ram.Size())),
	})
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for n, val := range cpu.Register {
		var name string
		switch n {
		case REG_SP:
			name = "sr"
		case REG_LR:
			name = "lr"
		case REG_PC:
			name = "pc"
		default:
			name = fmt.Sprintf("r%d", n)
		}
		text += fmt.Sprintf("% 6s: %04X\n", name, val)
	}

	flags := []byte("----")
	for n, flag := range "ZNVC" {
		if (cpu.Status & (1 << n)) != 0 {
			flags[n] = byte(flag)
		}
	}
	text += fmt.Sprintf("% 6s: %v\n", "status", string(flags))

	return
}

// Reset the CPU state.
// - Clears the registers, status and RAM.
// - Zeros statistics counters.
// - Sets the stack pointer to the top of RAM.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Status = 0
	cpu.Ram.Reset()
	cpu.Ticks = 0
	cpu.Power = 0

	// A full 64K RAM wraps the stack pointer to 0x0000.
	cpu.Register[REG_SP] = uint16(cpu.Ram.Size())
}

// Fetch reads the instruction word at the program counter.
func (cpu *Cpu) Fetch() uint16 {
	return cpu.Ram.LoadWord(cpu.Register[REG_PC])
}

// Tick executes a single fetch, decode and execute cycle.
func (cpu *Cpu) Tick() (err error) {
	word := cpu.Fetch()

	instr, err := Decode(word)
	if err != nil {
		return
	}

	cpu.Execute(instr)

	return
}

// Execute executes a single decoded instruction, then advances the program
// counter unless the instruction wrote it.
func (cpu *Cpu) Execute(instr Instruction) {
	pc := cpu.Register[REG_PC]

	if cpu.Verbose {
		log.Printf("%04x: %v", pc, instr)
	}

	cpu.jumped = false
	families[instr.Op.Family()].execute(cpu, instr)
	if !cpu.jumped {
		cpu.Register[REG_PC] = pc + WORD_SIZE
	}

	cpu.Ticks += 1
}

// value returns the value of an operand.
func (cpu *Cpu) value(op Operand) uint16 {
	if op.IsImm() {
		return op.Value
	}
	return cpu.Register[op.Reg()]
}

// setReg writes a register, noting writes to the program counter.
func (cpu *Cpu) setReg(reg uint8, value uint16) {
	reg &= 0xf
	prior := cpu.Register[reg]
	cpu.Register[reg] = value
	cpu.Power += bits.OnesCount16(prior ^ value)
	if reg == REG_PC {
		cpu.jumped = true
	}
}

// setFlags replaces all four status flags.
func (cpu *Cpu) setFlags(zero, negative, overflow, carry bool) {
	var status uint16
	if zero {
		status |= FLAG_Z
	}
	if negative {
		status |= FLAG_N
	}
	if overflow {
		status |= FLAG_V
	}
	if carry {
		status |= FLAG_C
	}
	cpu.Status = status
}

// Flag returns true if a status flag is set.
func (cpu *Cpu) Flag(flag uint16) bool {
	return (cpu.Status & flag) != 0
}
