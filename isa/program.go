package isa

import (
	"iter"
	"strings"
)

// Program is an ordered list of instructions; an instruction's index is
// its address.
type Program struct {
	Instructions []Instruction
}

// Source returns the source line of the instruction at an address.
func (prog *Program) Source(addr int) (lineno int, ok bool) {
	if addr < 0 || addr >= len(prog.Instructions) {
		return
	}

	lineno = prog.Instructions[addr].LineNo
	ok = lineno > 0
	return
}

// Codes iterates over the instructions by address.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(addr int, inst Instruction) bool) {
		for addr, inst := range prog.Instructions {
			if !yield(addr, inst) {
				return
			}
		}
	}
}

// Binary encodes the program into machine words.
func (prog *Program) Binary() (words []Word, err error) {
	words = make([]Word, 0, len(prog.Instructions))
	for _, inst := range prog.Codes() {
		var word Word
		word, err = inst.Encode()
		if err != nil {
			words = nil
			return
		}
		words = append(words, word)
	}

	return
}

// Text renders the program as assembly source, one instruction per line.
func (prog *Program) Text() string {
	var sb strings.Builder
	for _, inst := range prog.Codes() {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Disassemble decodes machine words into a program.
func Disassemble(words []Word) (prog *Program, err error) {
	prog = &Program{
		Instructions: make([]Instruction, 0, len(words)),
	}

	for offset, word := range words {
		var inst Instruction
		inst, err = Decode(word)
		if err != nil {
			prog = nil
			err = &ErrDecode{Offset: offset, Err: err}
			return
		}
		prog.Instructions = append(prog.Instructions, inst)
	}

	return
}
