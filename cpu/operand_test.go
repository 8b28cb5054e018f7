package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLiteral(t *testing.T) {
	assert := assert.New(t)

	st := &State{}
	st.Reset()

	for code := OPERAND_LITERAL; code <= 0x3f; code++ {
		words := &ArrayStream{Data: []Word{0xdead}}
		op := st.Resolve(code, words)
		assert.Equal(Immediate(Word(code-OPERAND_LITERAL)), op)
		assert.False(op.Writable())
		assert.Equal(Word(0), words.Position())
		assert.Equal(Word(code-OPERAND_LITERAL), st.Read(op))
	}
}

func TestResolveModes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		code  CodeOperand
		op    Operand
		words Word
		sp    Word
	}){
		{"reg_a", 0x00, RegisterRef(0), 0, 0x1000},
		{"reg_j", 0x07, RegisterRef(7), 0, 0x1000},
		{"mem_b", 0x09, MemoryRef(0x0101), 0, 0x1000},
		{"mem_next_c", 0x12, MemoryRef(0x1234 + 0x0202), 1, 0x1000},
		{"pop", OPERAND_POP, MemoryRef(0x1000), 0, 0x1001},
		{"peek", OPERAND_PEEK, MemoryRef(0x1000), 0, 0x1000},
		{"push", OPERAND_PUSH, MemoryRef(0x0fff), 0, 0x0fff},
		{"sp", OPERAND_SP, SpecialRef(SPECIAL_SP), 0, 0x1000},
		{"pc", OPERAND_PC, SpecialRef(SPECIAL_PC), 0, 0x1000},
		{"o", OPERAND_O, SpecialRef(SPECIAL_O), 0, 0x1000},
		{"mem_next", OPERAND_MEM_NEXT, MemoryRef(0x1234), 1, 0x1000},
		{"next", OPERAND_NEXT, Immediate(0x1234), 1, 0x1000},
		{"lit", 0x25, Immediate(5), 0, 0x1000},
	}

	for _, entry := range table {
		st := &State{}
		st.Reset()
		st.Sp = 0x1000
		for n := range st.Register {
			st.Register[n] = Word(n<<8 | n)
		}

		words := &ArrayStream{Data: []Word{0x1234}}
		op := st.Resolve(entry.code, words)
		assert.Equal(entry.op, op, entry.name)
		assert.Equal(entry.words, words.Position(), entry.name)
		assert.Equal(entry.sp, st.Sp, entry.name)
		assert.Equal(entry.code < OPERAND_NEXT, op.Writable(), entry.name)
	}
}

func TestResolveWrap(t *testing.T) {
	assert := assert.New(t)

	st := &State{}
	st.Reset()
	st.Register[0] = 0xfff0

	op := st.Resolve(OPERAND_MEM_NEXT_REG, &ArrayStream{Data: []Word{0x0020}})
	assert.Equal(MemoryRef(0x0010), op)

	st.Sp = 0
	op = st.Resolve(OPERAND_PUSH, &ArrayStream{})
	assert.Equal(MemoryRef(0xffff), op)
	assert.Equal(Word(0xffff), st.Sp)

	op = st.Resolve(OPERAND_POP, &ArrayStream{})
	assert.Equal(MemoryRef(0xffff), op)
	assert.Equal(Word(0), st.Sp)
}

func TestReadWrite(t *testing.T) {
	assert := assert.New(t)

	st := &State{}
	st.Reset()

	assert.NoError(st.Write(RegisterRef(3), 0x0033))
	assert.Equal(Word(0x0033), st.Register[3])
	assert.Equal(Word(0x0033), st.Read(RegisterRef(3)))

	assert.NoError(st.Write(SpecialRef(SPECIAL_PC), 0x0100))
	assert.NoError(st.Write(SpecialRef(SPECIAL_SP), 0x0200))
	assert.NoError(st.Write(SpecialRef(SPECIAL_O), 0x0300))
	assert.Equal(Word(0x0100), st.Pc)
	assert.Equal(Word(0x0200), st.Sp)
	assert.Equal(Word(0x0300), st.O)
	assert.Equal(Word(0x0300), st.Read(SpecialRef(SPECIAL_O)))

	assert.NoError(st.Write(MemoryRef(0xbeef), 0x1234))
	assert.Equal(Word(0x1234), st.Memory[0xbeef])
	assert.Equal(Word(0x1234), st.Read(MemoryRef(0xbeef)))

	before := *st
	assert.ErrorIs(st.Write(Immediate(7), 0x5555), ErrWriteImmediate)
	assert.Equal(before, *st)
	assert.Equal(Word(7), st.Read(Immediate(7)))
}
