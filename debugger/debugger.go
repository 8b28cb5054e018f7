// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package debugger steps a DCPU-16 one instruction at a time, and runs it
// until a stop condition holds.
package debugger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/dcpu/cpu"
	"github.com/ezrec/dcpu/translate"
)

// Mode is the run state of the debugger.
type Mode int

const (
	MODE_IDLE     = Mode(iota) // Program loaded, nothing executed.
	MODE_STEPPING              // Interactive stepping.
	MODE_RUNNING               // Running until a condition.
	MODE_HALTED                // Stopped by the user.
)

var modeName = [...]string{"idle", "stepping", "running", "halted"}

func (mode Mode) String() string {
	if mode < 0 || int(mode) >= len(modeName) {
		return "unknown"
	}
	return modeName[mode]
}

// Debugger drives a CPU one instruction at a time.
type Debugger struct {
	Verbose bool // If set, logs the debugger actions.

	Cpu       *cpu.Cpu  // CPU under debug.
	Output    io.Writer // Destination of the rendered text.
	Evaluator Evaluator // Stop condition evaluator; nil uses StarlarkEvaluator.

	Mode Mode
}

// NewDebugger creates a debugger on a CPU, writing to standard output.
func NewDebugger(cpu *cpu.Cpu) (dbg *Debugger) {
	dbg = &Debugger{
		Cpu:    cpu,
		Output: os.Stdout,
	}

	return
}

func (dbg *Debugger) output() io.Writer {
	if dbg.Output == nil {
		return io.Discard
	}
	return dbg.Output
}

func (dbg *Debugger) evaluator() Evaluator {
	if dbg.Evaluator == nil {
		return &StarlarkEvaluator{Verbose: dbg.Verbose}
	}
	return dbg.Evaluator
}

// Render returns the instruction at the program counter, without changing
// the machine state.
func (dbg *Debugger) Render() (text string) {
	st := &dbg.Cpu.State
	pc, sp := st.Pc, st.Sp

	words := cpu.MemoryStream{State: st}
	text = fmt.Sprintf("0x%08X: %s", pc, cpu.RenderCode(cpu.Code(words.Next()), words))

	st.Pc, st.Sp = pc, sp
	return
}

// Peek prints the instruction at the program counter.
func (dbg *Debugger) Peek() {
	fmt.Fprintln(dbg.output(), dbg.Render())
}

// Step prints the instruction at the program counter, then executes it.
//
// Instruction diagnostics are printed, and do not stop stepping.
func (dbg *Debugger) Step() (err error) {
	if dbg.Mode == MODE_HALTED {
		err = ErrHalted
		return
	}

	if dbg.Mode == MODE_IDLE {
		dbg.Mode = MODE_STEPPING
	}

	dbg.Peek()

	diag := dbg.Cpu.Tick()
	if diag != nil {
		fmt.Fprintln(dbg.output(), diag)
	}

	return
}

// RunUntil steps until the condition text evaluates to true, returning the
// number of instructions executed.
//
// A condition that cannot be evaluated is reported on the output, and
// returned as ErrCondition. The context is checked between instructions.
func (dbg *Debugger) RunUntil(ctx context.Context, text string) (steps int, err error) {
	if dbg.Mode == MODE_HALTED {
		err = ErrHalted
		return
	}

	if dbg.Verbose {
		log.Printf("debugger: run until %q", text)
	}

	dbg.Mode = MODE_RUNNING
	defer func() {
		if dbg.Mode == MODE_RUNNING {
			dbg.Mode = MODE_STEPPING
		}
	}()

	eval := dbg.evaluator()
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		rc := eval.Evaluate(text, dbg)
		if rc < 0 {
			translate.Fprintln(dbg.output(), "Could not properly parse: %s", text)
			err = ErrCondition(text)
			return
		}
		if rc > 0 {
			return
		}

		err = dbg.Step()
		if err != nil {
			return
		}
		steps++
	}
}

// Where prints the program counter.
func (dbg *Debugger) Where() {
	fmt.Fprintf(dbg.output(), "PC: 0x%08X\n", dbg.Cpu.Pc)
}

// Registers prints the general registers.
func (dbg *Debugger) Registers() {
	for n, value := range dbg.Cpu.Register {
		fmt.Fprintf(dbg.output(), "reg[%d] = 0x%08X\n", n, value)
	}
}

// Halt stops the debugger. Later steps return ErrHalted.
func (dbg *Debugger) Halt() {
	if dbg.Verbose {
		log.Printf("debugger: halt at 0x%04x", dbg.Cpu.Pc)
	}
	dbg.Mode = MODE_HALTED
}
