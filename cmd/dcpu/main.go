// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/term"

	"github.com/ezrec/dcpu/asm"
	"github.com/ezrec/dcpu/cpu"
	"github.com/ezrec/dcpu/debugger"
	"github.com/ezrec/dcpu/disasm"
	"github.com/ezrec/dcpu/emulator"
	"github.com/ezrec/dcpu/rom"
	"github.com/ezrec/dcpu/translate"
)

var f = translate.From

// load reads a program image, or assembles it from source.
func load(path string, assemble bool, verbose bool) (image []cpu.Word, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if assemble {
		assembler := &asm.Assembler{Verbose: verbose}
		var prog *asm.Program
		prog, err = assembler.Parse(inf)
		if err != nil {
			return
		}
		image = prog.Binary()
		return
	}

	rc := &rom.Rom{}
	switch filepath.Ext(path) {
	case ".hex", ".txt":
		err = rc.UnmarshalHex(inf)
	default:
		err = rc.Unmarshal(inf)
	}
	if err != nil {
		return
	}

	image = rc.Data
	return
}

// save writes a binary program image.
func save(path string, image []cpu.Word) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	rc := &rom.Rom{Data: image}
	err = rc.Marshal(ouf)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}

func main() {
	var disassemble bool
	var debug bool
	var assemble bool
	var limit int
	var output string
	var verbose bool

	flag.BoolVar(&disassemble, "d", false, "Disassemble the image, do not execute")
	flag.BoolVar(&debug, "g", false, "Interactive debugger")
	flag.BoolVar(&assemble, "a", false, "Input is assembly source")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to execute, 0 for no limit")
	flag.StringVar(&output, "o", "", "Save the binary image to a file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	image := emulator.Sample
	if flag.NArg() == 1 {
		var err error
		path := flag.Arg(0)
		image, err = load(path, assemble, verbose)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	}

	if len(output) != 0 {
		err := save(output, image)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if disassemble {
		dis := &disasm.Disassembler{Data: image}
		_, err := dis.WriteTo(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.Verbose = verbose
	emu.Program = image
	emu.Limit = limit

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	if debug {
		dbg := debugger.NewDebugger(emu.Cpu)
		dbg.Verbose = verbose
		prompt := term.IsTerminal(int(os.Stdin.Fd()))
		err = shell(context.Background(), dbg, os.Stdin, prompt)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = emu.Run(ctx)
	if !errors.Is(err, emulator.ErrTickLimit) && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}

	fmt.Print(emu.Cpu.State.String())
	fmt.Println(f("ticks: %d, faults: %d", emu.Ticks(), emu.Cpu.Faults))
}
