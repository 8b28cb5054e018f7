package debugger

import (
	"errors"

	"github.com/ezrec/dcpu/translate"
)

var f = translate.From

var (
	ErrHalted = errors.New(f("debugger halted"))
)

// ErrCondition is a run-until condition that could not be evaluated.
type ErrCondition string

func (err ErrCondition) Error() string {
	return f("could not properly parse: %s", string(err))
}

// ErrSymbolUnknown is an identifier in a condition with no symbol value.
type ErrSymbolUnknown string

func (err ErrSymbolUnknown) Error() string {
	return f("symbol %v unknown", string(err))
}
