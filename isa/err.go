package isa

import (
	"errors"

	"github.com/ezrec/asp/translate"
)

var f = translate.From

var (
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandCount    = errors.New(f("operand count"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

// ErrOpcode is a word that matches no instruction layout.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("bad opcode %08b", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrImmediateRange is a value that does not fit its field.
type ErrImmediateRange struct {
	Value int
	Min   int
	Max   int
}

func (err ErrImmediateRange) Error() string {
	return f("immediate %d out of range [%d, %d]", err.Value, err.Min, err.Max)
}

// ErrEncode locates an instruction that could not be encoded.
type ErrEncode struct {
	LineNo int
	Opcode Opcode
	Field  string
	Err    error
}

func (err *ErrEncode) Error() string {
	where := err.Opcode.String()
	if len(err.Field) > 0 {
		where += " " + err.Field
	}
	if err.LineNo > 0 {
		return f("line %d %v: %v", err.LineNo, where, err.Err)
	}
	return f("%v: %v", where, err.Err)
}

func (err *ErrEncode) Unwrap() error {
	return err.Err
}

// ErrDecode locates a word that could not be decoded.
type ErrDecode struct {
	Offset int
	Err    error
}

func (err *ErrDecode) Error() string {
	return f("word 0x%04x %v", err.Offset, err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
