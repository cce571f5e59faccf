// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"maps"
	"slices"
	"strconv"

	"github.com/ezrec/asp/isa"
)

// Assembler is a two pass assembler for the stepper-motor controller.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Label   map[string]int // Map of labels to addresses, after Parse.
	Equate  map[string]int // Map of equates to values, after Parse.

	predefine map[string]string // Predefines
	source    *Lexer            // Source of the last Parse
}

// Predefine defines a new equate or redefines an existing one.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Line returns the text of a line of the last parsed source.
func (asm *Assembler) Line(lineno int) string {
	if asm.source == nil {
		return ""
	}
	return asm.source.Line(lineno)
}

// predefined converts the predefines into values.
func (asm *Assembler) predefined() (values map[string]int, err error) {
	values = make(map[string]int, len(asm.predefine))
	for _, equ := range slices.Sorted(maps.Keys(asm.predefine)) {
		text := asm.predefine[equ]
		var v64 int64
		v64, err = strconv.ParseInt(text, 0, 32)
		if err != nil {
			err = &ErrSyntax{Line: equ + "=" + text, Err: ErrParseNumber(text)}
			values = nil
			return
		}
		values[equ] = int(v64)
	}
	return
}

// Parse parses an input stream into a resolved and encodable Program.
func (asm *Assembler) Parse(input io.Reader) (prog *isa.Program, err error) {
	asm.Label = nil
	asm.Equate = nil

	predefine, err := asm.predefined()
	if err != nil {
		return
	}

	lx, err := NewLexer(input)
	if err != nil {
		return
	}
	asm.source = lx

	parser := &Parser{Source: lx.Line}
	stmts, err := parser.Parse(lx.Tokens())
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, stmt := range stmts {
			log.Printf("%v: %v\n", stmt.LineNo, lx.Line(stmt.LineNo))
		}
	}

	resolver := &Resolver{Source: lx.Line, Predefine: predefine}
	prog, syms, err := resolver.Resolve(stmts)
	if err != nil {
		return
	}

	asm.Label = syms.Label
	asm.Equate = syms.Equate

	if asm.Verbose {
		for _, label := range slices.Sorted(maps.Keys(asm.Label)) {
			log.Printf("label %v = %d\n", label, asm.Label[label])
		}
	}

	// Encoding errors surface here, with their source line.
	_, err = prog.Binary()
	if err != nil {
		prog = nil
		return
	}

	return
}
