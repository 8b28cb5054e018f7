package cpu

import (
	"errors"
	"log"
)

// Cpu is the simulation context for a DCPU-16 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	State // Machine state.

	Skipper Skipper // Skip strategy for conditionals; nil uses SkipDecoder.

	Ticks  int // Instructions executed since reset.
	Faults int // Non-fatal diagnostics raised since reset.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset the CPU registers and statistics. Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.State.Reset()
	cpu.Ticks = 0
	cpu.Faults = 0
}

func (cpu *Cpu) skipper() Skipper {
	if cpu.Skipper == nil {
		return SkipDecoder{}
	}
	return cpu.Skipper
}

// Tick fetches the instruction at the program counter and executes it.
//
// A returned error is a diagnostic of the executed instruction (for example
// ErrWriteImmediate). The machine state remains consistent, and execution may
// continue with the next Tick.
func (cpu *Cpu) Tick() (err error) {
	words := MemoryStream{State: &cpu.State}

	if cpu.Verbose {
		pc := cpu.Pc
		text := RenderCode(Code(words.Next()), words)
		words.Seek(pc)
		log.Printf("cpu: %04x: %v", pc, text)
	}

	code := Code(words.Next())
	err = cpu.Execute(code, words, cpu.skipper())
	cpu.Ticks++

	return
}

// Execute executes a single instruction whose first word has already been
// fetched. Operand words are read from words, and a failed conditional passes
// over the next instruction with skip.
//
// Operand A is always decoded, with its side effects, before operand B.
func (cpu *Cpu) Execute(code Code, words WordStream, skip Skipper) (err error) {
	defer func() {
		if err != nil {
			cpu.Faults++
			err = errors.Join(ErrOpcode(code), err)
			if cpu.Verbose {
				log.Printf("cpu: %v", err)
			}
		}
	}()

	st := &cpu.State

	op := code.Op()
	if op == OP_EXT {
		err = st.executeExt(code, words)
		return
	}

	a := st.Resolve(code.A(), words)
	b := st.Resolve(code.B(), words)

	skip_next, err := opTable[op](st, a, b)
	if skip_next {
		skip.Skip(st, words)
	}

	return
}
