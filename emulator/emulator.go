// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/r16/cpu"
	"github.com/ezrec/r16/internal"
	"github.com/ezrec/r16/io"
)

const (
	RAM_SIZE   = cpu.RAM_SIZE // Full 16-bit address space.
	TICK_LIMIT = 1 << 20      // Default Run() limit.
)

var _emulator_defines = map[string]string{
	"tick_limit": fmt.Sprintf("0x%x", TICK_LIMIT),
}

// Emulator state. CPU + loaded program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Rom io.Rom // Binary image loaded at address zero.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(RAM_SIZE),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the processor, and load the program image at address zero.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Rom.Data = emu.Program.Binary()
	if len(emu.Rom.Data)*cpu.WORD_SIZE > emu.Cpu.Ram.Size() {
		err = ErrImageSize(len(emu.Rom.Data))
		return
	}

	emu.Cpu.Reset()
	emu.Cpu.Ram.Load(0, emu.Rom.Data)

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Power returns the total power consumed.
func (emu *Emulator) Power() int {
	return emu.Cpu.Power
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() uint16 {
	return emu.Cpu.Register[cpu.REG_PC]
}

// Instruction returns the current instruction.
func (emu *Emulator) Instruction() (instr cpu.Instruction, ok bool) {
	for ip, code := range emu.Program.Codes() {
		if ip == emu.Ip() {
			return code, true
		}
	}

	return
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.Ip())
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Done returns true once the program counter has left the loaded image.
func (emu *Emulator) Done() bool {
	return int(emu.Ip()) >= len(emu.Rom.Data)*cpu.WORD_SIZE
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Done() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(cpu.ErrAddress)
			if !ok {
				panic(r)
			}
			err = rerr
		}
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Done()

	return
}

// Run ticks the emulator until the program is done, or limit ticks have
// elapsed.
func (emu *Emulator) Run(limit int) (err error) {
	for ticks := 0; !emu.Done(); ticks++ {
		if ticks == limit {
			if emu.Verbose {
				log.Printf("emulator: stopped after %v ticks", limit)
			}
			err = ErrTickLimit
			return
		}

		_, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
