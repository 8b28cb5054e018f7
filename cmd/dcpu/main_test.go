package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/dcpu/cpu"
	"github.com/ezrec/dcpu/debugger"
	"github.com/ezrec/dcpu/emulator"
)

func newShell(t *testing.T) (dbg *debugger.Debugger, out *bytes.Buffer) {
	emu := emulator.NewEmulator()
	emu.Program = emulator.Sample
	assert.NoError(t, emu.Reset())

	out = &bytes.Buffer{}
	dbg = debugger.NewDebugger(emu.Cpu)
	dbg.Output = out
	return
}

func TestShell(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newShell(t)

	script := strings.Join([]string{
		"p",
		"",
		"step",
		"w",
		"until IP == 0x1a",
		"u IP ==",
		"bogus",
		"r",
		"q",
		"n",
	}, "\n")

	err := shell(context.Background(), dbg, strings.NewReader(script), false)
	assert.NoError(err)

	text := out.String()
	assert.True(strings.HasPrefix(text,
		"0x00000000: SET A, 0x0030\n"+
			"0x00000000: SET A, 0x0030\n"+
			"PC: 0x00000002\n"))
	assert.Contains(text, "0x00000018: SHL X, 0x0004\n")
	assert.Contains(text, "Could not properly parse: IP ==\n")
	assert.Contains(text, "unknown command: bogus\n")
	assert.Contains(text, "reg[3] = 0x00000040\n")
	assert.NotContains(text, "dcpu> ")

	assert.Equal(cpu.Word(0x1a), dbg.Cpu.Pc)
	assert.Equal(debugger.MODE_HALTED, dbg.Mode)
	assert.Equal(50, dbg.Cpu.Ticks)
}

func TestShellPrompt(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newShell(t)

	err := shell(context.Background(), dbg, strings.NewReader("help\n"), true)
	assert.NoError(err)
	assert.Equal("dcpu> "+shellHelp+"\ndcpu> ", out.String())
	assert.Equal(debugger.MODE_IDLE, dbg.Mode)
}

func TestShellCancel(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := shell(ctx, dbg, strings.NewReader("until IP == 0x1a\nwhere\n"), false)
	assert.NoError(err)
	assert.Equal("interrupted\nPC: 0x00000000\n", out.String())
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	bin := filepath.Join(dir, "sample.bin")
	assert.NoError(save(bin, emulator.Sample))

	image, err := load(bin, false, false)
	assert.NoError(err)
	assert.Equal(emulator.Sample, image)

	hex := filepath.Join(dir, "sample.hex")
	assert.NoError(os.WriteFile(hex, []byte("7c01 0030 ; SET A, 0x30\n"), 0o644))
	image, err = load(hex, false, false)
	assert.NoError(err)
	assert.Equal([]cpu.Word{0x7c01, 0x0030}, image)

	src := filepath.Join(dir, "sample.dasm")
	assert.NoError(os.WriteFile(src, []byte(":crash SET PC, crash\n"), 0o644))
	image, err = load(src, true, false)
	assert.NoError(err)
	assert.Equal([]cpu.Word{0x7dc1, 0x0000}, image)

	_, err = load(filepath.Join(dir, "missing.bin"), false, false)
	assert.ErrorIs(err, os.ErrNotExist)

	odd := filepath.Join(dir, "odd.bin")
	assert.NoError(os.WriteFile(odd, []byte{1, 2, 3}, 0o644))
	_, err = load(odd, false, false)
	assert.Error(err)
}
