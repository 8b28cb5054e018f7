package debugger

import (
	"iter"
	"strings"

	"github.com/ezrec/dcpu/cpu"
	"github.com/ezrec/dcpu/internal"
)

// Symbols resolves the identifiers of a stop condition.
type Symbols interface {
	// Symbol returns the value of a case-insensitive name.
	Symbol(name string) (value int, ok bool)
}

var _ Symbols = (*Debugger)(nil)

func (dbg *Debugger) specials() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		st := &dbg.Cpu.State
		_ = yield("IP", int(st.Pc)) &&
			yield("PC", int(st.Pc)) &&
			yield("SP", int(st.Sp)) &&
			yield("O", int(st.O))
	}
}

func (dbg *Debugger) registers() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for n, value := range dbg.Cpu.Register {
			if !yield(cpu.RegisterName(n), int(value)) {
				return
			}
		}
	}
}

// Symbols iterates over all symbol names and their current values.
func (dbg *Debugger) Symbols() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(dbg.specials(), dbg.registers())
}

// Symbol returns the current value of IP, a register, or a special register.
func (dbg *Debugger) Symbol(name string) (value int, ok bool) {
	return internal.IterSeq2Find(dbg.Symbols(), func(symbol string) bool {
		return strings.EqualFold(symbol, name)
	})
}
