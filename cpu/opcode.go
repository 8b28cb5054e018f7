package cpu

// CodeOp is the 4-bit basic opcode of an instruction.
type CodeOp int

const (
	OP_EXT = CodeOp(0x0) // extended form
	OP_SET = CodeOp(0x1) // SET
	OP_ADD = CodeOp(0x2) // ADD
	OP_SUB = CodeOp(0x3) // SUB
	OP_MUL = CodeOp(0x4) // MUL
	OP_DIV = CodeOp(0x5) // DIV
	OP_MOD = CodeOp(0x6) // MOD
	OP_SHL = CodeOp(0x7) // SHL
	OP_SHR = CodeOp(0x8) // SHR
	OP_AND = CodeOp(0x9) // AND
	OP_BOR = CodeOp(0xa) // BOR
	OP_XOR = CodeOp(0xb) // XOR
	OP_IFE = CodeOp(0xc) // IFE
	OP_IFN = CodeOp(0xd) // IFN
	OP_IFG = CodeOp(0xe) // IFG
	OP_IFB = CodeOp(0xf) // IFB
)

var opName = [16]string{
	"BASIC", "SET", "ADD", "SUB", "MUL", "DIV", "MOD", "SHL",
	"SHR", "AND", "BOR", "XOR", "IFE", "IFN", "IFG", "IFB",
}

func (op CodeOp) String() string {
	return opName[op&0xf]
}

// Conditional returns true for the IFx opcodes.
func (op CodeOp) Conditional() bool {
	return op >= OP_IFE
}

// CodeExt is the extended opcode selector of an OP_EXT instruction.
type CodeExt int

const (
	EXT_JSR = CodeExt(0x01) // JSR
)

func (ext CodeExt) String() string {
	if ext == EXT_JSR {
		return "JSR"
	}
	return "UNKNOWN"
}

// CodeOperand is a 6-bit operand addressing mode.
type CodeOperand int

const (
	OPERAND_REG          = CodeOperand(0x00) // register
	OPERAND_MEM_REG      = CodeOperand(0x08) // [register]
	OPERAND_MEM_NEXT_REG = CodeOperand(0x10) // [next word + register]
	OPERAND_POP          = CodeOperand(0x18) // [SP++]
	OPERAND_PEEK         = CodeOperand(0x19) // [SP]
	OPERAND_PUSH         = CodeOperand(0x1a) // [--SP]
	OPERAND_SP           = CodeOperand(0x1b) // SP
	OPERAND_PC           = CodeOperand(0x1c) // PC
	OPERAND_O            = CodeOperand(0x1d) // O
	OPERAND_MEM_NEXT     = CodeOperand(0x1e) // [next word]
	OPERAND_NEXT         = CodeOperand(0x1f) // next word (literal)
	OPERAND_LITERAL      = CodeOperand(0x20) // literal 0x00-0x1f
)

// LITERAL_MAX is the largest value an inline literal operand can hold.
const LITERAL_MAX = Word(0x1f)

// MakeOperandLiteral returns the inline literal operand for a value, and
// false if the value does not fit.
func MakeOperandLiteral(value Word) (code CodeOperand, ok bool) {
	if value > LITERAL_MAX {
		return
	}
	return OPERAND_LITERAL + CodeOperand(value), true
}

// Need returns the number of extra instruction words consumed by the operand.
func (code CodeOperand) Need() int {
	switch {
	case code >= OPERAND_MEM_NEXT_REG && code < OPERAND_POP:
		return 1
	case code == OPERAND_MEM_NEXT, code == OPERAND_NEXT:
		return 1
	}
	return 0
}

// Code is a single encoded instruction word.
//
//	bbbbbbaaaaaaoooo
type Code Word

// MakeCode creates a basic instruction.
func MakeCode(op CodeOp, a, b CodeOperand) Code {
	return Code((Word(b&0x3f) << 10) | (Word(a&0x3f) << 4) | Word(op&0xf))
}

// MakeCodeExt creates an extended instruction.
func MakeCodeExt(ext CodeExt, a CodeOperand) Code {
	return Code((Word(a&0x3f) << 10) | (Word(ext&0x3f) << 4) | Word(OP_EXT))
}

// Op returns the basic opcode.
func (code Code) Op() CodeOp {
	return CodeOp(code & 0xf)
}

// A returns the first operand of a basic instruction.
func (code Code) A() CodeOperand {
	return CodeOperand((code >> 4) & 0x3f)
}

// B returns the second operand of a basic instruction.
func (code Code) B() CodeOperand {
	return CodeOperand((code >> 10) & 0x3f)
}

// Ext returns the selector of an extended instruction.
func (code Code) Ext() CodeExt {
	return CodeExt(code.A())
}

// Need returns the number of extra words following the instruction word.
func (code Code) Need() int {
	if code.Op() == OP_EXT {
		return code.B().Need()
	}
	return code.A().Need() + code.B().Need()
}
