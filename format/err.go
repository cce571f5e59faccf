package format

import (
	"errors"

	"github.com/ezrec/asp/translate"
)

var f = translate.From

var (
	ErrDigitInvalid   = errors.New(f("invalid digit"))
	ErrTruncated      = errors.New(f("truncated word"))
	ErrProgramTooLong = errors.New(f("program too long"))
	ErrMIFSyntax      = errors.New(f("MIF syntax"))
	ErrMIFContent     = errors.New(f("MIF content missing"))
	ErrAddressRange   = errors.New(f("address out of range"))
	ErrWordRange      = errors.New(f("word out of range"))
)

// ErrFormat locates a failure inside a machine code file.
type ErrFormat struct {
	LineNo int // Line of a text format, 0 if not applicable.
	Offset int // Word offset.
	Err    error
}

func (err *ErrFormat) Error() string {
	if err.LineNo > 0 {
		return f("line %d word 0x%04x: %v", err.LineNo, err.Offset, err.Err)
	}
	return f("word 0x%04x: %v", err.Offset, err.Err)
}

func (err *ErrFormat) Unwrap() error {
	return err.Err
}

// ErrFormatUnknown is an unrecognised format name.
type ErrFormatUnknown string

func (err ErrFormatUnknown) Error() string {
	return f("unknown format '%v'", string(err))
}

// ErrFormatUnsupported is a format that cannot be used in that direction.
type ErrFormatUnsupported string

func (err ErrFormatUnsupported) Error() string {
	return f("format '%v' does not hold machine code", string(err))
}

// ErrMIFKey is an unknown or unsupported MIF header setting.
type ErrMIFKey string

func (err ErrMIFKey) Error() string {
	return f("unsupported MIF setting '%v'", string(err))
}
