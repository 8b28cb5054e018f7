package cpu

import (
	"errors"

	"github.com/ezrec/dcpu/translate"
)

var f = translate.From

var (
	ErrWriteImmediate  = errors.New(f("write to immediate"))
	ErrExtendedUnknown = errors.New(f("extended opcode unknown"))
)

// ErrOpcode identifies the instruction that raised a diagnostic.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	code := Code(eo)
	return f("opcode 0x%04x %v", uint16(code), describe(code))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// describe names an instruction word without its operand words.
func describe(code Code) string {
	if code.Op() == OP_EXT {
		return code.Ext().String()
	}
	return code.Op().String()
}
