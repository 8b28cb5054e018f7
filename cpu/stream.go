package cpu

// WordStream is a cursor over a source of instruction words.
//
// The position is a plain 16-bit value, so callers can save it with Position()
// and roll back a speculative read with Seek().
type WordStream interface {
	Next() Word         // Read the word at the position, then advance.
	Position() Word     // Current position.
	Seek(position Word) // Move to a position.
}

// MemoryStream reads machine memory at the program counter, advancing it.
type MemoryStream struct {
	State *State
}

var _ WordStream = MemoryStream{}

func (ms MemoryStream) Next() (word Word) {
	word = ms.State.Memory[ms.State.Pc]
	ms.State.Pc++
	return
}

func (ms MemoryStream) Position() Word {
	return ms.State.Pc
}

func (ms MemoryStream) Seek(position Word) {
	ms.State.Pc = position
}

// ArrayStream reads a fixed array of words. Words past the end of the array
// read as zero.
type ArrayStream struct {
	Data []Word
	Pos  Word
}

var _ WordStream = (*ArrayStream)(nil)

func (as *ArrayStream) Next() (word Word) {
	if int(as.Pos) < len(as.Data) {
		word = as.Data[as.Pos]
	}
	as.Pos++
	return
}

func (as *ArrayStream) Position() Word {
	return as.Pos
}

func (as *ArrayStream) Seek(position Word) {
	as.Pos = position
}
