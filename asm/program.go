package asm

import (
	"iter"

	"github.com/ezrec/dcpu/cpu"
)

// Line is a line of assembled source with the words generated for it.
type Line struct {
	LineNo int        // Source line number.
	Addr   int        // Address of the first generated word.
	Text   string     // Source text, without comment.
	Words  []cpu.Word // Generated words.

	links []link
}

// link is a label reference to patch into Words once all labels are known.
type link struct {
	index int
	label string
}

// Program is the output of the assembler.
type Program struct {
	Lines []Line
}

// Debug finds the source line that generated the word at an address.
func (prog *Program) Debug(addr cpu.Word) (line *Line, ok bool) {
	for n, ln := range prog.Lines {
		if int(addr) >= ln.Addr && int(addr) < ln.Addr+len(ln.Words) {
			return &prog.Lines[n], true
		}
	}

	return
}

// Binary returns the program image.
func (prog *Program) Binary() (bins []cpu.Word) {
	for _, word := range prog.Words() {
		bins = append(bins, word)
	}

	return
}

// Words iterates over the generated words and their addresses.
func (prog *Program) Words() iter.Seq2[cpu.Word, cpu.Word] {
	return func(yield func(addr cpu.Word, word cpu.Word) bool) {
		for _, ln := range prog.Lines {
			for n, word := range ln.Words {
				if !yield(cpu.Word(ln.Addr+n), word) {
					return
				}
			}
		}
	}
}
