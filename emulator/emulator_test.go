package emulator

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/r16/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.Equal(RAM_SIZE, emu.Cpu.Ram.Size())

	defines := maps.Collect(emu.Defines())
	assert.Equal("0x0002", defines["word_size"])
	assert.Equal("0x100000", defines["tick_limit"])
	assert.Contains(defines, "sp_top")
}

func loadProgram(t *testing.T, emu *Emulator, program []string) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if !assert.NoError(err) {
		t.FailNow()
	}
	emu.Program = prog

	err = emu.Reset()
	assert.NoError(err)
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; sum",
		"start:",
		"xor r0, r0",
		"add r0, 0x05",
		"mul r0, 0x03",
		"push r0",
		"pop r1",
		"str r1, &start",
	}

	emu := NewEmulator()
	loadProgram(t, emu, program)
	assert.Equal(uint16(0), emu.Ip())
	assert.Equal(uint16(0x0000), emu.Cpu.Register[cpu.REG_SP])
	assert.Equal(uint16(0x5000), emu.Cpu.Ram.LoadWord(0))

	for _, op := range emu.Program.Opcodes {
		assert.Equal(op.LineNo, emu.LineNo())
		here := program[emu.LineNo()-1]
		assert.Equal(op.Ip, emu.Ip(), here)
		instr, ok := emu.Instruction()
		assert.True(ok, here)
		assert.Equal(op.Instruction, instr, here)

		done, err := emu.Tick()
		assert.NoError(err, here)
		assert.Equal(op.Ip == uint16(emu.Program.Size()-cpu.WORD_SIZE), done, here)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(0, emu.LineNo())
	_, ok := emu.Instruction()
	assert.False(ok)

	assert.Equal(uint16(15), emu.Cpu.Register[0])
	assert.Equal(uint16(15), emu.Cpu.Register[1])
	assert.Equal(uint16(15), emu.Cpu.Ram.LoadWord(0))
	assert.Equal(uint16(0), emu.Cpu.Register[cpu.REG_SP])
	assert.Equal(6, emu.Ticks())
	assert.Less(0, emu.Power())
}

func TestEmulator_Instruction(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadProgram(t, emu, []string{
		"xor r0, r0",
		"lsl r3, 0x4",
		"push r4",
	})

	table := [](struct {
		ip    uint16
		instr cpu.Instruction
		ok    bool
	}){
		{0, cpu.MakeInstruction(cpu.OP_XOR, 0, cpu.Reg(0)), true},
		{2, cpu.MakeInstruction(cpu.OP_LSL, 3, cpu.Imm(4)), true},
		{4, cpu.MakeInstruction(cpu.OP_PUSH, 4, cpu.Reg(0)), true},
		{3, cpu.Instruction{}, false},
		{6, cpu.Instruction{}, false},
	}

	for _, entry := range table {
		emu.Cpu.Register[cpu.REG_PC] = entry.ip
		instr, ok := emu.Instruction()
		assert.Equal(entry.ok, ok, "0x%04x", entry.ip)
		if ok {
			assert.Equal(entry.instr.Encode(), instr.Encode(), "0x%04x", entry.ip)
		}
	}
}

func TestEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".equ count r1",
		".equ step $(-1)",
		"add count, 0x04",
		"mul count, step",
		"xor r0, r0",
		"add r0, count",
		"asr r0, 0x01",
		"push r0",
		"push count",
		"pop r2",
		"pop r3",
	}

	emu := NewEmulator()
	loadProgram(t, emu, program)

	err := emu.Run(TICK_LIMIT)
	assert.NoError(err)
	assert.True(emu.Done())
	assert.Equal(9, emu.Ticks())
	assert.Equal(uint16(0xfffc), emu.Cpu.Register[1])
	assert.Equal(uint16(0xfffc), emu.Cpu.Register[2])
	assert.Equal(uint16(0xfffe), emu.Cpu.Register[3])
	assert.Equal(uint16(0), emu.Cpu.Register[cpu.REG_SP])
	assert.True(emu.Cpu.Flag(cpu.FLAG_N))
	assert.False(emu.Cpu.Flag(cpu.FLAG_C))
	assert.True(emu.Cpu.Flag(cpu.FLAG_V))

	// Running a finished program is a no-op.
	assert.NoError(emu.Run(TICK_LIMIT))
	assert.Equal(9, emu.Ticks())
}

func TestEmulator_RunLimit(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"loop:",
		"xor pc, pc",
	}

	emu := NewEmulator()
	loadProgram(t, emu, program)

	err := emu.Run(100)
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(100, emu.Ticks())
	assert.False(emu.Done())
}

func TestEmulator_Jump(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"xor r0, r0",
		"add r0, 0x03",
		"xor r1, r1",
		"add r1, $(skip - 8)",
		"add pc, r1",
		"add r0, 0x10",
		"skip:",
		"add r0, 0x01",
	}

	emu := NewEmulator()
	loadProgram(t, emu, program)

	err := emu.Run(TICK_LIMIT)
	assert.NoError(err)
	assert.Equal(uint16(4), emu.Cpu.Register[0])
	assert.Equal(6, emu.Ticks())
}

func TestEmulator_Errors(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadProgram(t, emu, []string{
		"xor r0, r0",
		"add r0, 0x01",
		"ldr r1, *r0",
	})

	err := emu.Run(TICK_LIMIT)
	var rerr *ErrRuntime
	if assert.ErrorAs(err, &rerr) {
		assert.Equal(3, rerr.LineNo)
	}
	var aerr cpu.ErrAddress
	if assert.ErrorAs(err, &aerr) {
		assert.Equal(cpu.ErrAddress{Addr: 1, Misaligned: true}, aerr)
	}

	// Corrupt the image so pc drifts into an unassigned opcode.
	loadProgram(t, emu, []string{
		"xor r0, r0",
		"add r0, 0x01",
	})
	emu.Cpu.Ram.StoreWord(2, 0x0123)

	err = emu.Run(TICK_LIMIT)
	assert.ErrorIs(err, cpu.ErrOpcode(0))
	if assert.ErrorAs(err, &rerr) {
		assert.Equal(2, rerr.LineNo)
	}
	assert.Equal(uint16(2), emu.Ip())
}

func TestEmulator_Empty(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.Reset())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.NoError(emu.Run(0))
}

func TestEmulator_ImageSize(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Cpu = cpu.NewCpu(0x10)
	emu.Program = &cpu.Program{Opcodes: make([]cpu.Opcode, 9)}

	err := emu.Reset()
	assert.True(errors.Is(err, ErrImageSize(9)))
}
