package cpu

import (
	"fmt"
)

// RenderOperand returns the assembly text of an operand, consuming any extra
// word it needs from words. Machine state is never touched.
func RenderOperand(code CodeOperand, words WordStream) (text string) {
	code &= 0x3f

	switch {
	case code < OPERAND_MEM_REG:
		text = RegisterName(int(code - OPERAND_REG))
	case code < OPERAND_MEM_NEXT_REG:
		text = fmt.Sprintf("[%s]", RegisterName(int(code-OPERAND_MEM_REG)))
	case code < OPERAND_POP:
		next := words.Next()
		text = fmt.Sprintf("[0x%04X + %s]", next, RegisterName(int(code-OPERAND_MEM_NEXT_REG)))
	case code == OPERAND_POP:
		text = "POP"
	case code == OPERAND_PEEK:
		text = "PEEK"
	case code == OPERAND_PUSH:
		text = "PUSH"
	case code == OPERAND_SP:
		text = "SP"
	case code == OPERAND_PC:
		text = "PC"
	case code == OPERAND_O:
		text = "O"
	case code == OPERAND_MEM_NEXT:
		text = fmt.Sprintf("[0x%04X]", words.Next())
	case code == OPERAND_NEXT:
		text = fmt.Sprintf("0x%04X", words.Next())
	default:
		text = fmt.Sprintf("0x%04X", Word(code-OPERAND_LITERAL))
	}

	return
}

// RenderCode returns the assembly text of an instruction whose first word has
// already been read, consuming its operand words from words.
func RenderCode(code Code, words WordStream) string {
	if code.Op() == OP_EXT {
		return fmt.Sprintf("%v %s", code.Ext(), RenderOperand(code.B(), words))
	}

	a := RenderOperand(code.A(), words)
	b := RenderOperand(code.B(), words)
	return fmt.Sprintf("%v %s, %s", code.Op(), a, b)
}
