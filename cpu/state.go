package cpu

import (
	"fmt"
)

// Word is the native 16-bit unit of memory, registers and instructions.
type Word uint16

const (
	MEMORY_SIZE    = 0x10000               // Words of memory.
	REGISTER_COUNT = 8                     // General purpose registers.
	STACK_TOP      = Word(MEMORY_SIZE - 1) // Initial stack pointer.
)

var registerName = [REGISTER_COUNT]string{"A", "B", "C", "X", "Y", "Z", "I", "J"}

// RegisterName returns the mnemonic of a general purpose register.
func RegisterName(index int) string {
	return registerName[index&(REGISTER_COUNT-1)]
}

// State is the complete mutable state of the machine.
type State struct {
	Pc       Word                 // Program counter.
	Sp       Word                 // Stack pointer.
	O        Word                 // Overflow register.
	Register [REGISTER_COUNT]Word // General purpose registers.
	Memory   [MEMORY_SIZE]Word    // Program, data and stack.
}

// Reset the registers to their power-on values. Memory is left untouched.
func (st *State) Reset() {
	st.Pc = 0
	st.Sp = STACK_TOP
	st.O = 0
	clear(st.Register[:])
}

// Load copies a program image to address zero, and zeros the remaining memory.
// Returns the number of words loaded.
func (st *State) Load(image []Word) (n int) {
	clear(st.Memory[:])
	n = copy(st.Memory[:], image)
	return
}

// String returns the register state as a string.
func (st *State) String() (text string) {
	text += fmt.Sprintf("% 3s: %04X\n", "pc", st.Pc)
	text += fmt.Sprintf("% 3s: %04X\n", "sp", st.Sp)
	text += fmt.Sprintf("% 3s: %04X\n", "o", st.O)
	for n, val := range st.Register {
		text += fmt.Sprintf("% 3s: %04X\n", RegisterName(n), val)
	}

	return
}
