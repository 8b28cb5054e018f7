package cpu

// OperandKind tags the variant of a decoded Operand.
type OperandKind int

const (
	OPERAND_KIND_IMMEDIATE = OperandKind(iota) // Literal value, never writable.
	OPERAND_KIND_REGISTER                      // General purpose register index.
	OPERAND_KIND_SPECIAL                       // Special register (SPECIAL_PC, SPECIAL_SP, SPECIAL_O).
	OPERAND_KIND_MEMORY                        // Memory cell address.
)

const (
	SPECIAL_PC = Word(0) // Program counter.
	SPECIAL_SP = Word(1) // Stack pointer.
	SPECIAL_O  = Word(2) // Overflow.
)

// Operand is a decoded instruction operand: either an immediate value, or an
// assignable location. Value is the literal, the register index, the special
// register, or the memory address, depending on Kind.
type Operand struct {
	Kind  OperandKind
	Value Word
}

// Immediate is a literal value.
func Immediate(value Word) Operand {
	return Operand{Kind: OPERAND_KIND_IMMEDIATE, Value: value}
}

// RegisterRef refers to a general purpose register.
func RegisterRef(index int) Operand {
	return Operand{Kind: OPERAND_KIND_REGISTER, Value: Word(index & (REGISTER_COUNT - 1))}
}

// SpecialRef refers to one of the special registers.
func SpecialRef(which Word) Operand {
	return Operand{Kind: OPERAND_KIND_SPECIAL, Value: which}
}

// MemoryRef refers to a memory cell.
func MemoryRef(addr Word) Operand {
	return Operand{Kind: OPERAND_KIND_MEMORY, Value: addr}
}

// Writable returns true for every kind but OPERAND_KIND_IMMEDIATE.
func (op Operand) Writable() bool {
	return op.Kind != OPERAND_KIND_IMMEDIATE
}

// Resolve decodes an operand, consuming any extra word it needs from words.
//
// The stack pointer side effects of OPERAND_POP and OPERAND_PUSH are applied
// here, once, whether or not the operand is later read or written.
func (st *State) Resolve(code CodeOperand, words WordStream) (op Operand) {
	code &= 0x3f

	switch {
	case code < OPERAND_MEM_REG:
		op = RegisterRef(int(code - OPERAND_REG))
	case code < OPERAND_MEM_NEXT_REG:
		op = MemoryRef(st.Register[code-OPERAND_MEM_REG])
	case code < OPERAND_POP:
		next := words.Next()
		op = MemoryRef(next + st.Register[code-OPERAND_MEM_NEXT_REG])
	case code == OPERAND_POP:
		op = MemoryRef(st.Sp)
		st.Sp++
	case code == OPERAND_PEEK:
		op = MemoryRef(st.Sp)
	case code == OPERAND_PUSH:
		st.Sp--
		op = MemoryRef(st.Sp)
	case code == OPERAND_SP:
		op = SpecialRef(SPECIAL_SP)
	case code == OPERAND_PC:
		op = SpecialRef(SPECIAL_PC)
	case code == OPERAND_O:
		op = SpecialRef(SPECIAL_O)
	case code == OPERAND_MEM_NEXT:
		op = MemoryRef(words.Next())
	case code == OPERAND_NEXT:
		op = Immediate(words.Next())
	default:
		op = Immediate(Word(code - OPERAND_LITERAL))
	}

	return
}

// special returns the special register referred to.
func (st *State) special(which Word) *Word {
	switch which {
	case SPECIAL_PC:
		return &st.Pc
	case SPECIAL_SP:
		return &st.Sp
	case SPECIAL_O:
		return &st.O
	}
	panic("unknown special register")
}

// Read returns the current value of an operand.
func (st *State) Read(op Operand) (value Word) {
	switch op.Kind {
	case OPERAND_KIND_IMMEDIATE:
		value = op.Value
	case OPERAND_KIND_REGISTER:
		value = st.Register[op.Value&(REGISTER_COUNT-1)]
	case OPERAND_KIND_SPECIAL:
		value = *st.special(op.Value)
	case OPERAND_KIND_MEMORY:
		value = st.Memory[op.Value]
	default:
		panic("unknown operand")
	}

	return
}

// Write stores a value through an operand.
// Writing to an Immediate leaves the state untouched and returns
// ErrWriteImmediate.
func (st *State) Write(op Operand, value Word) (err error) {
	switch op.Kind {
	case OPERAND_KIND_IMMEDIATE:
		err = ErrWriteImmediate
	case OPERAND_KIND_REGISTER:
		st.Register[op.Value&(REGISTER_COUNT-1)] = value
	case OPERAND_KIND_SPECIAL:
		*st.special(op.Value) = value
	case OPERAND_KIND_MEMORY:
		st.Memory[op.Value] = value
	default:
		panic("unknown operand")
	}

	return
}
