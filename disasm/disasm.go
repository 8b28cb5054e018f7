// Package disasm renders DCPU-16 program images as assembly text.
package disasm

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/dcpu/cpu"
)

// Disassembler walks a static program image. The image is never modified.
type Disassembler struct {
	Data  []cpu.Word // Program image.
	Start cpu.Word   // Offset of the first instruction.
}

// Lines returns an iterator of instruction addresses and their assembly text,
// from Start until the end of the image. An instruction whose operand words
// run past the end of the image reads them as zero.
func (dis *Disassembler) Lines() iter.Seq2[cpu.Word, string] {
	return func(yield func(addr cpu.Word, text string) bool) {
		words := &cpu.ArrayStream{Data: dis.Data, Pos: dis.Start}
		for offset := int(dis.Start); offset < len(dis.Data); {
			addr := words.Position()
			code := cpu.Code(words.Next())
			text := cpu.RenderCode(code, words)
			if !yield(addr, text) {
				return
			}
			offset += 1 + code.Need()
		}
	}
}

// WriteTo writes one line per instruction, formatted as `0x%08X: text`.
func (dis *Disassembler) WriteTo(w io.Writer) (n int64, err error) {
	for addr, text := range dis.Lines() {
		var count int
		count, err = fmt.Fprintf(w, "0x%08X: %s\n", addr, text)
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}
