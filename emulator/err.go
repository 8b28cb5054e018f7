package emulator

import (
	"errors"

	"github.com/ezrec/dcpu/cpu"
	"github.com/ezrec/dcpu/translate"
)

var f = translate.From

var (
	ErrProgramSize = errors.New(f("program larger than memory"))
	ErrTickLimit   = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  cpu.Word
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x %v", uint16(err.Pc), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
