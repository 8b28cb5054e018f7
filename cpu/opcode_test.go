package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		word Word
		op   CodeOp
		a    CodeOperand
		b    CodeOperand
		need int
	}){
		{"set_a_next", 0x7c01, OP_SET, 0x00, OPERAND_NEXT, 1},
		{"set_mem_next", 0x7de1, OP_SET, OPERAND_MEM_NEXT, OPERAND_NEXT, 2},
		{"sub_a_mem", 0x7803, OP_SUB, 0x00, OPERAND_MEM_NEXT, 1},
		{"ifn_a_lit", 0xc00d, OP_IFN, 0x00, OPERAND_LITERAL + 0x10, 0},
		{"set_pc_next", 0x7dc1, OP_SET, OPERAND_PC, OPERAND_NEXT, 1},
		{"set_idx_mem", 0x2161, OP_SET, OPERAND_MEM_NEXT_REG + 6, OPERAND_MEM_REG, 1},
		{"shl_x_lit", 0x9037, OP_SHL, 0x03, OPERAND_LITERAL + 4, 0},
		{"set_pc_pop", 0x61c1, OP_SET, OPERAND_PC, OPERAND_POP, 0},
	}

	for _, entry := range table {
		code := Code(entry.word)
		assert.Equal(entry.op, code.Op(), entry.name)
		assert.Equal(entry.a, code.A(), entry.name)
		assert.Equal(entry.b, code.B(), entry.name)
		assert.Equal(entry.need, code.Need(), entry.name)
		assert.Equal(code, MakeCode(entry.op, entry.a, entry.b), entry.name)
	}
}

func TestCodeExt(t *testing.T) {
	assert := assert.New(t)

	code := Code(0x7c10)
	assert.Equal(OP_EXT, code.Op())
	assert.Equal(EXT_JSR, code.Ext())
	assert.Equal(OPERAND_NEXT, code.B())
	assert.Equal(1, code.Need())
	assert.Equal(code, MakeCodeExt(EXT_JSR, OPERAND_NEXT))

	assert.Equal("JSR", EXT_JSR.String())
	assert.Equal("UNKNOWN", CodeExt(2).String())
}

func TestCodeOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("SET", OP_SET.String())
	assert.Equal("BOR", OP_BOR.String())
	assert.Equal("IFB", OP_IFB.String())
	assert.False(OP_XOR.Conditional())
	assert.True(OP_IFE.Conditional())
}

func TestOperandLiteral(t *testing.T) {
	assert := assert.New(t)

	code, ok := MakeOperandLiteral(0x1f)
	assert.True(ok)
	assert.Equal(CodeOperand(0x3f), code)

	_, ok = MakeOperandLiteral(0x20)
	assert.False(ok)
}

func TestOperandNeed(t *testing.T) {
	assert := assert.New(t)

	for code := range CodeOperand(0x40) {
		need := 0
		if (code >= 0x10 && code <= 0x17) || code == 0x1e || code == 0x1f {
			need = 1
		}
		assert.Equal(need, code.Need(), "operand 0x%02x", int(code))
	}
}
