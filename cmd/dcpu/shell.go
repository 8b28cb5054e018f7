package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ezrec/dcpu/debugger"
	"github.com/ezrec/dcpu/translate"
)

const shellHelp = `p, peek           show the next instruction
n, next, s, step  execute the next instruction
u, until COND     step until COND is true, e.g. 'until IP == 0x1a'
w, where          show the program counter
r, regs           show the registers
q, quit           leave the debugger`

// until runs the debugger until the condition holds, or an interrupt.
func until(ctx context.Context, dbg *debugger.Debugger, cond string) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	_, err = dbg.RunUntil(ctx, cond)

	var cond_err debugger.ErrCondition
	switch {
	case errors.As(err, &cond_err):
		err = nil
	case errors.Is(err, context.Canceled):
		translate.Fprintln(dbg.Output, "interrupted")
		err = nil
	}

	return
}

// shell reads debugger commands, one per line, until quit or end of input.
func shell(ctx context.Context, dbg *debugger.Debugger, input io.Reader, prompt bool) (err error) {
	scanner := bufio.NewScanner(input)

	for {
		if prompt {
			fmt.Fprint(dbg.Output, "dcpu> ")
		}

		if !scanner.Scan() {
			err = scanner.Err()
			return
		}

		command, args, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		args = strings.TrimSpace(args)

		switch strings.ToLower(command) {
		case "":
		case "p", "peek":
			dbg.Peek()
		case "n", "next", "s", "step":
			err = dbg.Step()
		case "u", "until":
			err = until(ctx, dbg, args)
		case "w", "where":
			dbg.Where()
		case "r", "regs":
			dbg.Registers()
		case "q", "quit":
			dbg.Halt()
			return
		case "h", "help", "?":
			fmt.Fprintln(dbg.Output, shellHelp)
		default:
			translate.Fprintln(dbg.Output, "unknown command: %v", command)
		}

		if err != nil {
			return
		}
	}
}
