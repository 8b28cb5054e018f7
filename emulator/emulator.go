// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs DCPU-16 programs to completion, cancellation, or a
// tick limit.
package emulator

import (
	"context"
	"log"

	"github.com/ezrec/dcpu/cpu"
)

// Sample is the reference program: it exercises memory, loops, a subroutine
// call, and ends in a crash loop at 0x001a.
var Sample = []cpu.Word{
	0x7c01, 0x0030, 0x7de1, 0x1000, 0x0020, 0x7803, 0x1000, 0xc00d,
	0x7dc1, 0x001a, 0xa861, 0x7c01, 0x2000, 0x2161, 0x2000, 0x8463,
	0x806d, 0x7dc1, 0x000d, 0x9031, 0x7c10, 0x0018, 0x7dc1, 0x001a,
	0x9037, 0x61c1, 0x7dc1, 0x001a, 0x0000, 0x0000, 0x0000, 0x0000,
}

// Emulator state. CPU + program image.
type Emulator struct {
	Verbose  bool       // If set, enables verbose logging.
	*cpu.Cpu            // Reference to the CPU simulation.
	Program  []cpu.Word // Program image, loaded at address 0 on Reset.

	Limit int // Maximum ticks for Run; zero for no limit.

	// Diagnostic receives the non-fatal errors raised during Run.
	// If nil, they are logged.
	Diagnostic func(err error)
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Reset the CPU and load the program image.
func (emu *Emulator) Reset() (err error) {
	if len(emu.Program) > cpu.MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Load(emu.Program)

	if emu.Verbose {
		log.Printf("emulator: loaded %d words", len(emu.Program))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() cpu.Word {
	return emu.Cpu.Pc
}

// Tick performs a single tick of the emulator.
// Errors are wrapped in ErrRuntime with the address of the instruction.
func (emu *Emulator) Tick() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	err = emu.Cpu.Tick()
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Run ticks until the context is done or the tick limit is reached.
//
// There is no halt instruction, so Run only returns the context error, or
// ErrTickLimit. Instruction diagnostics do not stop the run.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
			err = ErrTickLimit
			return
		}

		err = emu.Tick()
		if err != nil {
			emu.diagnose(err)
		}
	}
}

func (emu *Emulator) diagnose(err error) {
	if emu.Diagnostic != nil {
		emu.Diagnostic(err)
		return
	}

	log.Printf("emulator: %v", err)
}
