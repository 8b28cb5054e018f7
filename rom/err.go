package rom

import (
	"errors"

	"github.com/ezrec/dcpu/translate"
)

var f = translate.From

var (
	ErrRomOddSize = errors.New(f("rom image has an odd number of bytes"))
	ErrRomSize    = errors.New(f("rom image larger than memory"))
)

// ErrHexSyntax is a word of a hex image that could not be parsed.
type ErrHexSyntax struct {
	LineNo int
	Text   string
}

func (err *ErrHexSyntax) Error() string {
	return f("line %d: '%v' is not a hex word", err.LineNo, err.Text)
}
