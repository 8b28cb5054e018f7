// Package rom reads and writes DCPU-16 program images.
//
// A binary image is a sequence of big-endian 16-bit words. A hex image is
// text: whitespace separated hex words, with an optional 0x prefix, and
// comments from ';' to the end of the line.
package rom

import (
	"bufio"
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/dcpu/cpu"
)

// Rom is a program image, loaded at address 0.
type Rom struct {
	Data []cpu.Word
}

// Unmarshal loads a binary image from a reader, replacing any existing data.
func (rom *Rom) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	if len(data)%2 != 0 {
		err = ErrRomOddSize
		return
	}

	if len(data)/2 > cpu.MEMORY_SIZE {
		err = ErrRomSize
		return
	}

	rom.Data = make([]cpu.Word, len(data)/2)
	for n := range rom.Data {
		rom.Data[n] = cpu.Word(binary.BigEndian.Uint16(data[n*2:]))
	}

	return
}

// UnmarshalHex loads a hex image from a reader, replacing any existing data.
func (rom *Rom) UnmarshalHex(file io.Reader) (err error) {
	scanner := bufio.NewScanner(file)

	var data []cpu.Word
	lineno := 0
	for scanner.Scan() {
		lineno++
		text, _, _ := strings.Cut(scanner.Text(), ";")
		for _, word := range strings.Fields(text) {
			digits := strings.TrimPrefix(strings.ToLower(word), "0x")
			var value uint64
			value, err = strconv.ParseUint(digits, 16, 16)
			if err != nil {
				err = &ErrHexSyntax{LineNo: lineno, Text: word}
				return
			}
			if len(data) == cpu.MEMORY_SIZE {
				err = ErrRomSize
				return
			}
			data = append(data, cpu.Word(value))
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rom.Data = data
	return
}

// Marshal writes the binary image.
func (rom *Rom) Marshal(file io.Writer) (err error) {
	err = binary.Write(file, binary.BigEndian, rom.Data)
	return
}
