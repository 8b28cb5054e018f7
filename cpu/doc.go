// Package cpu implements the DCPU-16 processor core.
//
// The processor has eight 16-bit general purpose registers (A, B, C, X, Y, Z,
// I, J), a program counter (PC), a stack pointer (SP) and an overflow
// register (O), attached to a single flat memory of 0x10000 words shared by
// program, data and stack.
//
// Instruction decode is shared by three consumers: real execution against the
// machine state, static disassembly (RenderCode), and the stepping debugger.
// Each consumer supplies a WordStream for the words that follow an opcode, and
// execution additionally supplies a Skipper describing how a conditional
// instruction passes over the next instruction.
package cpu
