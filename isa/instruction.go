package isa

import (
	"fmt"
	"strings"
)

// Instruction is an opcode with its resolved operands.
type Instruction struct {
	Opcode   Opcode
	Operands []int // Operand values, in assembly order.
	LineNo   int   // Source line, 0 if decoded from a word.
}

// NewInstruction creates an instruction without a source line.
func NewInstruction(op Opcode, operands ...int) Instruction {
	return Instruction{
		Opcode:   op,
		Operands: append([]int{}, operands...),
	}
}

// Encode packs the instruction into a machine word.
func (inst Instruction) Encode() (word Word, err error) {
	layout, ok := inst.Opcode.Layout()
	if !ok {
		err = &ErrEncode{LineNo: inst.LineNo, Opcode: inst.Opcode, Err: ErrOpcodeInvalid}
		return
	}

	if len(inst.Operands) != len(layout.Fields) {
		err = &ErrEncode{LineNo: inst.LineNo, Opcode: inst.Opcode, Err: ErrOperandCount}
		return
	}

	word = layout.Pattern
	for n, field := range layout.Fields {
		value := inst.Operands[n]
		err = field.Check(value)
		if err != nil {
			err = &ErrEncode{LineNo: inst.LineNo, Opcode: inst.Opcode, Field: field.Name, Err: err}
			word = 0
			return
		}
		word |= field.Pack(value)
	}

	return
}

// Encode packs an instruction into a machine word.
func Encode(inst Instruction) (Word, error) {
	return inst.Encode()
}

// Decode unpacks a machine word into an instruction.
func Decode(word Word) (inst Instruction, err error) {
	op, ok := Match(word)
	if !ok {
		err = ErrOpcode(word)
		return
	}

	fields := layouts[op].Fields
	inst = Instruction{
		Opcode:   op,
		Operands: make([]int, len(fields)),
	}
	for n, field := range fields {
		inst.Operands[n] = field.Unpack(word)
	}

	return
}

// Equal compares opcode and operands, ignoring the source line.
func (inst Instruction) Equal(other Instruction) bool {
	if inst.Opcode != other.Opcode || len(inst.Operands) != len(other.Operands) {
		return false
	}
	for n := range inst.Operands {
		if inst.Operands[n] != other.Operands[n] {
			return false
		}
	}
	return true
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	fields := inst.Opcode.Fields()

	args := make([]string, len(inst.Operands))
	for n, value := range inst.Operands {
		if n < len(fields) && fields[n].Kind == FIELD_REG {
			args[n] = Reg(value).String()
		} else {
			args[n] = fmt.Sprintf("%d", value)
		}
	}

	if len(args) == 0 {
		return inst.Opcode.String()
	}

	return inst.Opcode.String() + " " + strings.Join(args, ", ")
}
