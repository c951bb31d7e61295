package cpu

// The stack grows down from the top of RAM. The stack pointer addresses the
// most recently pushed word.

// push decrements the stack pointer, then stores value at it.
func (cpu *Cpu) push(value uint16) {
	sp := cpu.Register[REG_SP] - WORD_SIZE
	cpu.Ram.StoreWord(sp, value)
	cpu.setReg(REG_SP, sp)
}

// pop loads the word at the stack pointer, then increments it.
func (cpu *Cpu) pop() (value uint16) {
	sp := cpu.Register[REG_SP]
	value = cpu.Ram.LoadWord(sp)
	cpu.setReg(REG_SP, sp+WORD_SIZE)
	return
}
