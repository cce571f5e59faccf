package format

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ezrec/asp/internal"
	"github.com/ezrec/asp/isa"
)

const hexDigits = isa.WORD_BYTES * 2

// WriteText writes each word as uppercase hex digits, followed by a single
// newline.
func WriteText(w io.Writer, words []isa.Word) (err error) {
	var sb strings.Builder
	for _, word := range words {
		fmt.Fprintf(&sb, "%0*X", hexDigits, word)
	}
	sb.WriteByte('\n')

	_, err = io.WriteString(w, sb.String())
	return
}

// hexValue returns the value of a hex digit.
func hexValue(ch rune) (value isa.Word, ok bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return isa.Word(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return isa.Word(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return isa.Word(ch-'A') + 10, true
	}
	return
}

// ReadText reads hex digits, ignoring all whitespace.
func ReadText(r io.Reader) (words []isa.Word, err error) {
	lineno := 0
	digits := 0
	var word isa.Word

	for line, line_err := range internal.Lines(r) {
		if line_err != nil {
			err = &ErrFormat{LineNo: lineno, Offset: len(words), Err: line_err}
			return
		}
		lineno++

		for _, ch := range line {
			if unicode.IsSpace(ch) {
				continue
			}

			value, ok := hexValue(ch)
			if !ok {
				err = &ErrFormat{LineNo: lineno, Offset: len(words), Err: ErrDigitInvalid}
				words = nil
				return
			}

			word = word<<4 | value
			digits++
			if digits < hexDigits {
				continue
			}

			if len(words) == isa.DEPTH {
				err = &ErrFormat{LineNo: lineno, Offset: len(words), Err: ErrProgramTooLong}
				words = nil
				return
			}
			words = append(words, word)
			word = 0
			digits = 0
		}
	}

	if digits != 0 {
		err = &ErrFormat{LineNo: lineno, Offset: len(words), Err: ErrTruncated}
		words = nil
		return
	}

	return
}
