package cpu

// Skipper passes over the instruction at the current position of words
// without executing it.
type Skipper interface {
	Skip(st *State, words WordStream)
}

// SkipDecoder skips an instruction by decoding its operands with the same
// resolver used for execution, so the skipped width always equals the
// executed width. Stack pointer side effects of the skipped operands are
// applied, as they are at decode time for an executed instruction.
type SkipDecoder struct{}

var _ Skipper = SkipDecoder{}

func (SkipDecoder) Skip(st *State, words WordStream) {
	code := Code(words.Next())
	if code.Op() == OP_EXT {
		st.Resolve(code.B(), words)
		return
	}

	st.Resolve(code.A(), words)
	st.Resolve(code.B(), words)
}
