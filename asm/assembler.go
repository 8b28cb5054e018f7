// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm is a two pass assembler for the DCPU-16 instruction set: a
// parse pass that generates words, then a link pass that patches in labels.
//
// Syntax follows the common DCPU-16 notation:
//
//	        SET A, 0x30              ; comment
//	:loop   SET [0x2000+I], [A]
//	        IFN I, 0
//	            SET PC, loop
//	done:   DAT 0x10, 'x', done
//	        .equ LIMIT $(4 * 8)
//
// Labels are written as `:name` or `name:`. Label references always encode as
// a next-word operand, so addresses are known on the first pass and linked at
// the end. `$(...)` is a Starlark expression over the numeric equates.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/dcpu/cpu"
)

// Assembler parses source into words, and links label references once all
// labels are known.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	lines []Line
}

// Predefine defines a new equate, or redefines an existing one, before Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var opMap = map[string]cpu.CodeOp{
	"SET": cpu.OP_SET,
	"ADD": cpu.OP_ADD,
	"SUB": cpu.OP_SUB,
	"MUL": cpu.OP_MUL,
	"DIV": cpu.OP_DIV,
	"MOD": cpu.OP_MOD,
	"SHL": cpu.OP_SHL,
	"SHR": cpu.OP_SHR,
	"AND": cpu.OP_AND,
	"BOR": cpu.OP_BOR,
	"XOR": cpu.OP_XOR,
	"IFE": cpu.OP_IFE,
	"IFN": cpu.OP_IFN,
	"IFG": cpu.OP_IFG,
	"IFB": cpu.OP_IFB,
}

var extMap = map[string]cpu.CodeExt{
	"JSR": cpu.EXT_JSR,
}

var registerMap = map[string]int{
	"A": 0, "B": 1, "C": 2, "X": 3, "Y": 4, "Z": 5, "I": 6, "J": 7,
}

var specialMap = map[string]cpu.CodeOperand{
	"POP":  cpu.OPERAND_POP,
	"PEEK": cpu.OPERAND_PEEK,
	"PUSH": cpu.OPERAND_PUSH,
	"SP":   cpu.OPERAND_SP,
	"PC":   cpu.OPERAND_PC,
	"O":    cpu.OPERAND_O,
}

var labelRe = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)

// operand is an encoded operand, and the extra word it needs.
type operand struct {
	code  cpu.CodeOperand
	next  []cpu.Word
	label string // Label to add into next[0] at link time.
}

// valueOf returns the value of a number, character or equate.
func (asm *Assembler) valueOf(word string) (value cpu.Word, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}

	if len(word) == 3 && word[0] == '\'' && word[2] == '\'' {
		value = cpu.Word(word[1])
		return
	}

	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil || v64 > 0xffff || v64 < -0x8000 {
		err = ErrParseNumber(word)
		return
	}

	value = cpu.Word(v64)
	return
}

// valueOrLabel returns a value, or a label reference to link later.
func (asm *Assembler) valueOrLabel(word string) (value cpu.Word, label string, err error) {
	value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	_, is_reg := registerMap[strings.ToUpper(word)]
	_, is_special := specialMap[strings.ToUpper(word)]
	if is_reg || is_special || !labelRe.MatchString(word) {
		err = ErrParseOperand(word)
		return
	}

	value, label, err = 0, word, nil
	return
}

// parseOperand encodes a single operand.
func (asm *Assembler) parseOperand(text string) (op operand, err error) {
	word := strings.TrimSpace(text)
	upper := strings.ToUpper(word)

	if index, ok := registerMap[upper]; ok {
		op.code = cpu.OPERAND_REG + cpu.CodeOperand(index)
		return
	}

	if code, ok := specialMap[upper]; ok {
		op.code = code
		return
	}

	if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") {
		return asm.parseIndirect(word[1 : len(word)-1])
	}

	value, label, err := asm.valueOrLabel(word)
	if err != nil {
		return
	}

	if code, short := cpu.MakeOperandLiteral(value); short && len(label) == 0 {
		op.code = code
		return
	}

	op.code = cpu.OPERAND_NEXT
	op.next = []cpu.Word{value}
	op.label = label
	return
}

// parseIndirect encodes the inside of a [...] operand.
func (asm *Assembler) parseIndirect(inner string) (op operand, err error) {
	parts := strings.Split(inner, "+")
	for n := range parts {
		parts[n] = strings.TrimSpace(parts[n])
	}

	switch len(parts) {
	case 1:
		if index, ok := registerMap[strings.ToUpper(parts[0])]; ok {
			op.code = cpu.OPERAND_MEM_REG + cpu.CodeOperand(index)
			return
		}
		var value cpu.Word
		value, op.label, err = asm.valueOrLabel(parts[0])
		if err != nil {
			return
		}
		op.code = cpu.OPERAND_MEM_NEXT
		op.next = []cpu.Word{value}
	case 2:
		offset, reg := parts[0], parts[1]
		index, ok := registerMap[strings.ToUpper(reg)]
		if !ok {
			offset, reg = reg, offset
			index, ok = registerMap[strings.ToUpper(reg)]
		}
		if !ok {
			err = ErrParseOperand("[" + inner + "]")
			return
		}
		var value cpu.Word
		value, op.label, err = asm.valueOrLabel(offset)
		if err != nil {
			return
		}
		op.code = cpu.OPERAND_MEM_NEXT_REG + cpu.CodeOperand(index)
		op.next = []cpu.Word{value}
	default:
		err = ErrParseOperand("[" + inner + "]")
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value cpu.Word, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key := range asm.Equate {
		var equ cpu.Word
		equ, err = asm.valueOf(key)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(equ))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	if st_int64 > 0xffff || st_int64 < -0x8000 {
		err = ErrParseExpression(expr)
		return
	}
	value = cpu.Word(st_int64)
	return
}

// splitUnquoted splits text at sep, except inside 'c' character literals.
func splitUnquoted(text string, sep byte) (parts []string) {
	start := 0
	for n := 0; n < len(text); n++ {
		switch {
		case text[n] == '\'' && n+2 < len(text) && text[n+2] == '\'':
			n += 2
		case text[n] == sep:
			parts = append(parts, text[start:n])
			start = n + 1
		}
	}
	parts = append(parts, text[start:])
	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// currentAddr gets the address of the next generated word.
func (asm *Assembler) currentAddr() int {
	if len(asm.lines) == 0 {
		return 0
	}

	last := asm.lines[len(asm.lines)-1]

	return last.Addr + len(last.Words)
}

// addLabel records a label at the current address.
func (asm *Assembler) addLabel(label string) (err error) {
	if !labelRe.MatchString(label) {
		err = ErrLabelInvalid
		return
	}

	_, ok := asm.Label[label]
	if ok {
		err = ErrLabelDuplicate
		return
	}

	asm.Label[label] = asm.currentAddr()
	return
}

// parseLine assembles a single line of source, without its comment.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	rest := strings.TrimSpace(strings.ReplaceAll(line, "\t", " "))

	// Labels, in either :label or label: form.
	for len(rest) > 0 {
		head, tail, _ := strings.Cut(rest, " ")
		label, is_label := strings.CutPrefix(head, ":")
		if !is_label {
			label, is_label = strings.CutSuffix(head, ":")
		}
		if !is_label {
			break
		}
		err = asm.addLabel(label)
		if err != nil {
			return
		}
		rest = strings.TrimSpace(tail)
	}

	if len(rest) == 0 {
		return
	}

	mnemonic, args, _ := strings.Cut(rest, " ")
	args = strings.TrimSpace(args)

	var operands []string
	if len(args) > 0 {
		operands = splitUnquoted(args, ',')
	}

	// .equ CONST VALUE
	if mnemonic == ".equ" {
		words := strings.Fields(args)
		if len(words) != 2 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[0]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[0]] = words[1]
		return
	}

	ln := Line{LineNo: lineno, Addr: asm.currentAddr(), Text: line}

	upper := strings.ToUpper(mnemonic)
	switch {
	case upper == "DAT":
		for _, word := range operands {
			var value cpu.Word
			var label string
			value, label, err = asm.valueOrLabel(strings.TrimSpace(word))
			if err != nil {
				return
			}
			if len(label) != 0 {
				ln.links = append(ln.links, link{index: len(ln.Words), label: label})
			}
			ln.Words = append(ln.Words, value)
		}
	case extMap[upper] != 0:
		if len(operands) != 1 {
			err = ErrOperandCount
			return
		}
		var a operand
		a, err = asm.parseOperand(operands[0])
		if err != nil {
			return
		}
		ln.Words = []cpu.Word{cpu.Word(cpu.MakeCodeExt(extMap[upper], a.code))}
		ln.add(a)
	default:
		op, ok := opMap[upper]
		if !ok {
			err = ErrOpcodeInvalid
			return
		}
		if len(operands) != 2 {
			err = ErrOperandCount
			return
		}
		var a, b operand
		a, err = asm.parseOperand(operands[0])
		if err != nil {
			return
		}
		b, err = asm.parseOperand(operands[1])
		if err != nil {
			return
		}
		ln.Words = []cpu.Word{cpu.Word(cpu.MakeCode(op, a.code, b.code))}
		ln.add(a)
		ln.add(b)
	}

	if len(ln.Words) == 0 {
		return
	}

	if ln.Addr+len(ln.Words) > cpu.MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	if asm.Verbose {
		log.Printf("asm: %04x: %v", ln.Addr, ln.Words)
	}

	asm.lines = append(asm.lines, ln)
	return
}

// add appends the extra word of an operand, and its label link.
func (ln *Line) add(op operand) {
	if len(op.label) != 0 {
		ln.links = append(ln.links, link{index: len(ln.Words), label: op.label})
	}
	ln.Words = append(ln.Words, op.next...)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.lines = nil
	asm.Label = make(map[string]int, 16)
	asm.Equate = make(map[string]string, len(asm.predefine))
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(splitUnquoted(text, ';')[0])
		if len(line) == 0 {
			continue
		}

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.lines {
		ln := &asm.lines[n]
		for _, lk := range ln.links {
			addr, ok := asm.Label[lk.label]
			if !ok {
				lineno, line = ln.LineNo, ln.Text
				err = ErrLabelMissing(lk.label)
				return
			}
			ln.Words[lk.index] += cpu.Word(addr)
		}
	}

	prog = &Program{
		Lines: asm.lines,
	}

	return
}
