package format

import (
	"io"

	"github.com/ezrec/asp/isa"
)

// WriteHex writes one raw byte per word, with no header or trailer.
func WriteHex(w io.Writer, words []isa.Word) (err error) {
	data := make([]byte, len(words))
	for n, word := range words {
		data[n] = byte(word)
	}

	_, err = w.Write(data)
	return
}

// ReadHex reads one raw byte per word.
func ReadHex(r io.Reader) (words []isa.Word, err error) {
	data, err := io.ReadAll(io.LimitReader(r, isa.DEPTH+1))
	if err != nil {
		err = &ErrFormat{Err: err}
		return
	}

	if len(data) > isa.DEPTH {
		err = &ErrFormat{Offset: isa.DEPTH, Err: ErrProgramTooLong}
		return
	}

	words = make([]isa.Word, len(data))
	for n, b := range data {
		words[n] = isa.Word(b)
	}

	return
}
