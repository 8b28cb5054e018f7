package rom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/dcpu/cpu"
)

func TestRom_Unmarshal(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	err := rom.Unmarshal(bytes.NewReader([]byte{0x7c, 0x01, 0x00, 0x30, 0xff, 0xfe}))
	assert.NoError(err)
	assert.Equal([]cpu.Word{0x7c01, 0x0030, 0xfffe}, rom.Data)

	err = rom.Unmarshal(bytes.NewReader(nil))
	assert.NoError(err)
	assert.Equal(0, len(rom.Data))
}

func TestRom_Unmarshal_Errors(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []cpu.Word{1}}

	err := rom.Unmarshal(bytes.NewReader([]byte{0x7c, 0x01, 0x00}))
	assert.ErrorIs(err, ErrRomOddSize)
	assert.Equal([]cpu.Word{1}, rom.Data)

	err = rom.Unmarshal(bytes.NewReader(make([]byte, cpu.MEMORY_SIZE*2+2)))
	assert.ErrorIs(err, ErrRomSize)

	err = rom.Unmarshal(bytes.NewReader(make([]byte, cpu.MEMORY_SIZE*2)))
	assert.NoError(err)
	assert.Equal(cpu.MEMORY_SIZE, len(rom.Data))
}

func TestRom_UnmarshalHex(t *testing.T) {
	assert := assert.New(t)

	text := strings.Join([]string{
		"; sample start",
		"7c01 0x0030   ; SET A, 0x30",
		"",
		"\t0X7DE1 1000 20",
	}, "\n")

	rom := &Rom{}
	err := rom.UnmarshalHex(strings.NewReader(text))
	assert.NoError(err)
	assert.Equal([]cpu.Word{0x7c01, 0x0030, 0x7de1, 0x1000, 0x0020}, rom.Data)
}

func TestRom_UnmarshalHex_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		lineno int
		word   string
	}){
		{"7c01 zz", 1, "zz"},
		{"7c01\n10000", 2, "10000"},
		{"\n\n0x", 3, "0x"},
		{"-1", 1, "-1"},
	}

	for _, entry := range table {
		rom := &Rom{}
		err := rom.UnmarshalHex(strings.NewReader(entry.text))
		var syn *ErrHexSyntax
		if assert.ErrorAs(err, &syn, entry.text) {
			assert.Equal(entry.lineno, syn.LineNo, entry.text)
			assert.Equal(entry.word, syn.Text, entry.text)
		}
		assert.Nil(rom.Data, entry.text)
	}

	rom := &Rom{}
	err := rom.UnmarshalHex(strings.NewReader(strings.Repeat("0\n", cpu.MEMORY_SIZE+1)))
	assert.ErrorIs(err, ErrRomSize)
}

func TestRom_Marshal(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []cpu.Word{0x7c01, 0x0030, 0x00ff}}

	buff := &bytes.Buffer{}
	err := rom.Marshal(buff)
	assert.NoError(err)
	assert.Equal([]byte{0x7c, 0x01, 0x00, 0x30, 0x00, 0xff}, buff.Bytes())

	back := &Rom{}
	err = back.Unmarshal(buff)
	assert.NoError(err)
	assert.Equal(rom.Data, back.Data)
}
