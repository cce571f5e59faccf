package asm

import (
	"errors"

	"github.com/ezrec/asp/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrImmediateMissing = errors.New(f("immediate missing"))
	ErrRegisterMissing  = errors.New(f("register missing"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrLabelSyntax      = errors.New(f("label syntax"))

	// Resolver errors
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrProgramTooLong  = errors.New(f("program too long"))
)

// ErrLex is an unrecognised character in the source.
type ErrLex struct {
	LineNo int
	Column int
	Char   rune
}

func (err *ErrLex) Error() string {
	return f("line %d column %d unexpected character %q", err.LineNo, err.Column, err.Char)
}

// ErrSyntax locates a malformed source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrResolve locates an operand that could not be resolved.
type ErrResolve struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrResolve) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrResolve) Unwrap() error {
	return err.Err
}

type ErrMnemonicInvalid string

func (err ErrMnemonicInvalid) Error() string {
	return f("invalid mnemonic '%v'", string(err))
}

type ErrDirectiveInvalid string

func (err ErrDirectiveInvalid) Error() string {
	return f("invalid directive '%v'", string(err))
}

type ErrTokenUnexpected string

func (err ErrTokenUnexpected) Error() string {
	return f("unexpected '%v'", string(err))
}

type ErrOperandExtra string

func (err ErrOperandExtra) Error() string {
	return f("unexpected operand '%v'", string(err))
}

type ErrOperandKind string

func (err ErrOperandKind) Error() string {
	return f("'%v' is not an immediate", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

// ErrBranchRange is a branch whose target is too far away.
type ErrBranchRange struct {
	Label  string
	Offset int
}

func (err ErrBranchRange) Error() string {
	return f("branch to %v offset %d out of range", err.Label, err.Offset)
}
