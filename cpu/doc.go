// Package cpu implements the processor and assembler for the r16 system.
//
// The processor has sixteen 16-bit registers (r13 is the stack pointer 'sr',
// r14 the link register 'lr', r15 the program counter 'pc'), a status
// register with zero, negative, overflow and carry flags, and a byte
// addressed RAM accessed as big-endian words.
//
// Every instruction is a single word. The high nibble selects one of six
// families: add, mul, xor, shf (six shift and rotate modes), str/push and
// ldr/pop.
//
// The assembler provides labels, equates, quoted characters and
// compile-time $(...) expression evaluation.
package cpu
