package cpu

// opHandler applies the semantics of a basic opcode to its decoded operands.
// It returns true if the next instruction must be skipped.
type opHandler func(st *State, a, b Operand) (skip bool, err error)

var opTable = [16]opHandler{
	OP_EXT: nil, // Handled by executeExt
	OP_SET: opSet,
	OP_ADD: opAdd,
	OP_SUB: opSub,
	OP_MUL: opMul,
	OP_DIV: opDiv,
	OP_MOD: opMod,
	OP_SHL: opShl,
	OP_SHR: opShr,
	OP_AND: opAnd,
	OP_BOR: opBor,
	OP_XOR: opXor,
	OP_IFE: opIfe,
	OP_IFN: opIfn,
	OP_IFG: opIfg,
	OP_IFB: opIfb,
}

func opSet(st *State, a, b Operand) (skip bool, err error) {
	err = st.Write(a, st.Read(b))
	return
}

func opAdd(st *State, a, b Operand) (skip bool, err error) {
	sum := uint32(st.Read(a)) + uint32(st.Read(b))
	err = st.Write(a, Word(sum))
	if sum > 0xffff {
		st.O = 0x0001
	} else {
		st.O = 0
	}
	return
}

func opSub(st *State, a, b Operand) (skip bool, err error) {
	va := st.Read(a)
	vb := st.Read(b)
	err = st.Write(a, va-vb)
	if va < vb {
		// borrow
		st.O = 0xffff
	} else {
		st.O = 0
	}
	return
}

func opMul(st *State, a, b Operand) (skip bool, err error) {
	product := uint32(st.Read(a)) * uint32(st.Read(b))
	err = st.Write(a, Word(product))
	st.O = Word(product >> 16)
	return
}

func opDiv(st *State, a, b Operand) (skip bool, err error) {
	va := uint32(st.Read(a))
	vb := uint32(st.Read(b))
	if vb == 0 {
		err = st.Write(a, 0)
		st.O = 0
		return
	}
	err = st.Write(a, Word(va/vb))
	st.O = Word((va << 16) / vb)
	return
}

func opMod(st *State, a, b Operand) (skip bool, err error) {
	va := st.Read(a)
	vb := st.Read(b)
	if vb == 0 {
		err = st.Write(a, 0)
		return
	}
	err = st.Write(a, va%vb)
	return
}

func opShl(st *State, a, b Operand) (skip bool, err error) {
	shifted := uint32(st.Read(a)) << st.Read(b)
	err = st.Write(a, Word(shifted))
	st.O = Word(shifted >> 16)
	return
}

func opShr(st *State, a, b Operand) (skip bool, err error) {
	va := uint32(st.Read(a))
	vb := st.Read(b)
	err = st.Write(a, Word(va>>vb))
	st.O = Word((va << 16) >> vb)
	return
}

func opAnd(st *State, a, b Operand) (skip bool, err error) {
	err = st.Write(a, st.Read(a)&st.Read(b))
	return
}

func opBor(st *State, a, b Operand) (skip bool, err error) {
	err = st.Write(a, st.Read(a)|st.Read(b))
	return
}

func opXor(st *State, a, b Operand) (skip bool, err error) {
	err = st.Write(a, st.Read(a)^st.Read(b))
	return
}

func opIfe(st *State, a, b Operand) (skip bool, err error) {
	skip = st.Read(a) != st.Read(b)
	return
}

func opIfn(st *State, a, b Operand) (skip bool, err error) {
	skip = st.Read(a) == st.Read(b)
	return
}

func opIfg(st *State, a, b Operand) (skip bool, err error) {
	skip = st.Read(a) <= st.Read(b)
	return
}

func opIfb(st *State, a, b Operand) (skip bool, err error) {
	skip = (st.Read(a) & st.Read(b)) == 0
	return
}

// executeExt runs an extended instruction. Unknown selectors decode their
// operand, so the stream stays aligned, and otherwise do nothing.
func (st *State) executeExt(code Code, words WordStream) (err error) {
	target := st.Resolve(code.B(), words)

	switch code.Ext() {
	case EXT_JSR:
		pc := st.Read(target)
		st.Sp--
		st.Memory[st.Sp] = words.Position()
		st.Pc = pc
	default:
		err = ErrExtendedUnknown
	}

	return
}
