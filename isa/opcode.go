package isa

import (
	"strconv"
	"strings"
)

// Word is a single machine word.
type Word uint8

const (
	WORD_BITS  = 8   // Width of a machine word.
	WORD_BYTES = 1   // Bytes per machine word.
	DEPTH      = 256 // Number of addressable words.
)

// Opcode is one of the twelve instructions.
type Opcode int

const (
	OP_BR     = Opcode(0)  // Branch.
	OP_BRZ    = Opcode(1)  // Branch if zero.
	OP_ADDI   = Opcode(2)  // Add immediate.
	OP_SUBI   = Opcode(3)  // Subtract immediate.
	OP_SR0    = Opcode(4)  // Set r0 low nibble.
	OP_SRH0   = Opcode(5)  // Set r0 high nibble.
	OP_CLR    = Opcode(6)  // Clear register.
	OP_MOV    = Opcode(7)  // Register to register move.
	OP_MOVA   = Opcode(8)  // Motor move absolute.
	OP_MOVR   = Opcode(9)  // Motor move relative.
	OP_MOVRHS = Opcode(10) // Motor move relative, half step.
	OP_PAUSE  = Opcode(11) // Pause.

	OP_COUNT = 12
)

// Layout is the encoding of one opcode.
type Layout struct {
	Mnemonic string
	Pattern  Word    // Fixed opcode bits.
	Mask     Word    // Which bits of the word are opcode bits.
	Fields   []Field // Operand fields, in assembly order.
}

var (
	fieldOffset = Field{Name: "offset", Offset: 0, Width: 5, Kind: FIELD_SIGNED, Relative: true}
	fieldReg    = Field{Name: "reg", Offset: 0, Width: 2, Kind: FIELD_REG}
	fieldDst    = Field{Name: "dst", Offset: 2, Width: 2, Kind: FIELD_REG}
	fieldSrc    = Field{Name: "src", Offset: 0, Width: 2, Kind: FIELD_REG}
	fieldAddend = Field{Name: "imm", Offset: 2, Width: 3, Kind: FIELD_UNSIGNED}
	fieldNibble = Field{Name: "imm", Offset: 0, Width: 4, Kind: FIELD_UNSIGNED}
)

// layouts is indexed by Opcode.
var layouts = [OP_COUNT]Layout{
	OP_BR:     {"BR", 0b100_00000, 0b111_00000, []Field{fieldOffset}},
	OP_BRZ:    {"BRZ", 0b101_00000, 0b111_00000, []Field{fieldOffset}},
	OP_ADDI:   {"ADDI", 0b000_00000, 0b111_00000, []Field{fieldReg, fieldAddend}},
	OP_SUBI:   {"SUBI", 0b001_00000, 0b111_00000, []Field{fieldReg, fieldAddend}},
	OP_SR0:    {"SR0", 0b0100_0000, 0b1111_0000, []Field{fieldNibble}},
	OP_SRH0:   {"SRH0", 0b0101_0000, 0b1111_0000, []Field{fieldNibble}},
	OP_CLR:    {"CLR", 0b011000_00, 0b111111_00, []Field{fieldReg}},
	OP_MOV:    {"MOV", 0b0111_0000, 0b1111_0000, []Field{fieldDst, fieldSrc}},
	OP_MOVA:   {"MOVA", 0b110000_00, 0b111111_00, []Field{fieldReg}},
	OP_MOVR:   {"MOVR", 0b110001_00, 0b111111_00, []Field{fieldReg}},
	OP_MOVRHS: {"MOVRHS", 0b110010_00, 0b111111_00, []Field{fieldReg}},
	OP_PAUSE:  {"PAUSE", 0b11111111, 0b11111111, nil},
}

// Valid returns true if the opcode exists.
func (op Opcode) Valid() bool {
	return op >= 0 && op < OP_COUNT
}

// Layout returns the encoding of the opcode.
func (op Opcode) Layout() (layout Layout, ok bool) {
	if !op.Valid() {
		return
	}
	return layouts[op], true
}

// Fields returns the operand fields of the opcode, in assembly order.
func (op Opcode) Fields() []Field {
	layout, _ := op.Layout()
	return layout.Fields
}

func (op Opcode) String() string {
	if !op.Valid() {
		return "Opcode(" + strconv.Itoa(int(op)) + ")"
	}
	return layouts[op].Mnemonic
}

// LookupMnemonic finds an opcode by its case-insensitive mnemonic.
func LookupMnemonic(mnemonic string) (op Opcode, ok bool) {
	mnemonic = strings.ToUpper(mnemonic)
	for n, layout := range layouts {
		if layout.Mnemonic == mnemonic {
			return Opcode(n), true
		}
	}
	return
}

// Match returns the opcode whose pattern matches the word.
func Match(word Word) (op Opcode, ok bool) {
	for n, layout := range layouts {
		if word&layout.Mask == layout.Pattern {
			return Opcode(n), true
		}
	}
	return
}
