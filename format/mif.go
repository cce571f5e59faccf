package format

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/asp/internal"
	"github.com/ezrec/asp/isa"
)

// WriteMIF writes a Memory Initialization File covering the whole address
// space. Addresses past the program are zero filled.
func WriteMIF(w io.Writer, words []isa.Word) (err error) {
	if len(words) > isa.DEPTH {
		err = &ErrFormat{Offset: isa.DEPTH, Err: ErrProgramTooLong}
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "WIDTH=%d;\n", isa.WORD_BITS)
	fmt.Fprintf(&sb, "DEPTH=%d;\n", isa.DEPTH)
	sb.WriteString("\n")
	sb.WriteString("ADDRESS_RADIX=UNS;\n")
	sb.WriteString("DATA_RADIX=BIN;\n")
	sb.WriteString("\n")
	sb.WriteString("CONTENT BEGIN\n")

	for n, word := range words {
		fmt.Fprintf(&sb, "\t%d\t:\t%0*b;\n", n, isa.WORD_BITS, word)
	}

	// The fill is always a range, so that it reads back as fill.
	if len(words) < isa.DEPTH {
		fmt.Fprintf(&sb, "\t[%d..%d]\t:\t%0*b;\n", len(words), isa.DEPTH-1, isa.WORD_BITS, 0)
	}

	sb.WriteString("END;\n")

	_, err = io.WriteString(w, sb.String())
	return
}

var mifRadix = map[string]int{
	"BIN": 2,
	"OCT": 8,
	"DEC": 10,
	"UNS": 10,
	"HEX": 16,
}

type mifToken struct {
	text   string
	lineno int
}

// mifTokens splits a MIF into words and punctuation, dropping comments.
func mifTokens(r io.Reader) iter.Seq2[mifToken, error] {
	return func(yield func(tok mifToken, err error) bool) {
		lineno := 0
		for line, err := range internal.Lines(r) {
			if err != nil {
				yield(mifToken{lineno: lineno}, err)
				return
			}
			lineno++

			if cut := strings.Index(line, "--"); cut >= 0 {
				line = line[:cut]
			}

			for len(line) > 0 {
				var text string
				switch {
				case strings.ContainsRune(" \t\r\f\v", rune(line[0])):
					line = line[1:]
					continue
				case strings.HasPrefix(line, ".."):
					text = ".."
				case strings.ContainsRune(";:=[].", rune(line[0])):
					text = line[:1]
				default:
					end := strings.IndexAny(line, " \t\r\f\v;:=[].")
					if end < 0 {
						end = len(line)
					}
					text = line[:end]
				}
				line = line[len(text):]

				if !yield(mifToken{text: text, lineno: lineno}, nil) {
					return
				}
			}
		}
	}
}

type mifReader struct {
	next   func() (mifToken, error, bool)
	lineno int
	offset int

	depth         int
	address_radix int
	data_radix    int
	signed        bool
}

// ReadMIF reads a Memory Initialization File. The program ends at the last
// word set by a single address entry, or at the last non-zero word set by a
// range entry, whichever is later.
func ReadMIF(r io.Reader) (words []isa.Word, err error) {
	mr := &mifReader{
		depth:         isa.DEPTH,
		address_radix: mifRadix["HEX"],
		data_radix:    mifRadix["HEX"],
	}

	var stop func()
	mr.next, stop = iter.Pull2(mifTokens(r))
	defer stop()

	err = mr.header()
	if err == nil {
		words, err = mr.content()
	}
	if err != nil {
		words = nil
		err = &ErrFormat{LineNo: mr.lineno, Offset: mr.offset, Err: err}
		return
	}

	return
}

// scan returns the next token; the empty token is the end of file.
func (mr *mifReader) scan() (tok mifToken, err error) {
	tok, err, ok := mr.next()
	if !ok {
		tok = mifToken{lineno: mr.lineno}
		return
	}
	if err == nil {
		mr.lineno = tok.lineno
	}
	return
}

// expect consumes a specific token.
func (mr *mifReader) expect(text string) (err error) {
	tok, err := mr.scan()
	if err != nil {
		return
	}
	if !strings.EqualFold(tok.text, text) {
		err = ErrMIFSyntax
	}
	return
}

// header parses the settings, up to and including CONTENT BEGIN.
func (mr *mifReader) header() (err error) {
	for {
		var key, value mifToken
		key, err = mr.scan()
		if err != nil {
			return
		}

		name := strings.ToUpper(key.text)
		switch name {
		case "":
			err = ErrMIFContent
			return
		case "CONTENT":
			err = mr.expect("BEGIN")
			return
		}

		err = mr.expect("=")
		if err != nil {
			return
		}
		value, err = mr.scan()
		if err != nil {
			return
		}
		err = mr.expect(";")
		if err != nil {
			return
		}

		setting := strings.ToUpper(value.text)
		switch name {
		case "WIDTH":
			if setting != strconv.Itoa(isa.WORD_BITS) {
				err = ErrMIFKey(name + "=" + value.text)
				return
			}
		case "DEPTH":
			depth, depth_err := strconv.Atoi(setting)
			if depth_err != nil || depth < 1 || depth > isa.DEPTH {
				err = ErrMIFKey(name + "=" + value.text)
				return
			}
			mr.depth = depth
		case "ADDRESS_RADIX", "DATA_RADIX":
			radix, ok := mifRadix[setting]
			if !ok {
				err = ErrMIFKey(name + "=" + value.text)
				return
			}
			if name == "ADDRESS_RADIX" {
				mr.address_radix = radix
			} else {
				mr.data_radix = radix
				mr.signed = setting == "DEC"
			}
		default:
			err = ErrMIFKey(key.text)
			return
		}
	}
}

// address parses the next token as an address.
func (mr *mifReader) address() (addr int, err error) {
	tok, err := mr.scan()
	if err != nil {
		return
	}
	return mr.parseAddress(tok.text)
}

// parseAddress parses an address in the address radix.
func (mr *mifReader) parseAddress(text string) (addr int, err error) {
	value, err := strconv.ParseUint(text, mr.address_radix, 32)
	if err != nil {
		err = ErrDigitInvalid
		return
	}
	if value >= uint64(mr.depth) {
		err = ErrAddressRange
		return
	}

	addr = int(value)
	mr.offset = addr
	return
}

// word parses a data value in the data radix.
func (mr *mifReader) word(text string) (word isa.Word, err error) {
	const limit = 1 << isa.WORD_BITS

	if mr.signed {
		value, parse_err := strconv.ParseInt(text, 10, 32)
		if parse_err != nil {
			err = ErrDigitInvalid
			return
		}
		if value < -limit/2 || value >= limit {
			err = ErrWordRange
			return
		}
		word = isa.Word(value)
		return
	}

	value, parse_err := strconv.ParseUint(text, mr.data_radix, 32)
	if parse_err != nil {
		err = ErrDigitInvalid
		return
	}
	if value >= limit {
		err = ErrWordRange
		return
	}
	word = isa.Word(value)
	return
}

// values parses data values up to the terminating ';'.
func (mr *mifReader) values() (words []isa.Word, err error) {
	for {
		var tok mifToken
		tok, err = mr.scan()
		if err != nil {
			return
		}
		if tok.text == ";" {
			break
		}
		if tok.text == "" {
			err = ErrMIFSyntax
			return
		}

		var word isa.Word
		word, err = mr.word(tok.text)
		if err != nil {
			return
		}
		words = append(words, word)
	}

	if len(words) == 0 {
		err = ErrMIFSyntax
	}
	return
}

// content parses the entries up to END.
func (mr *mifReader) content() (words []isa.Word, err error) {
	var memory [isa.DEPTH]isa.Word
	end := 0

	for {
		var tok mifToken
		tok, err = mr.scan()
		if err != nil {
			return
		}

		var first, last int
		fill := false

		switch {
		case strings.EqualFold(tok.text, "END"):
			err = mr.expect(";")
			if err != nil {
				return
			}
			length := len(memory)
			for length > end && memory[length-1] == 0 {
				length--
			}
			words = append([]isa.Word{}, memory[:length]...)
			return
		case tok.text == "[":
			first, err = mr.address()
			if err != nil {
				return
			}
			err = mr.expect("..")
			if err != nil {
				return
			}
			last, err = mr.address()
			if err != nil {
				return
			}
			err = mr.expect("]")
			if err != nil {
				return
			}
			if last < first {
				err = ErrAddressRange
				return
			}
			fill = true
		case tok.text == "":
			err = ErrMIFSyntax
			return
		default:
			first, err = mr.parseAddress(tok.text)
			if err != nil {
				return
			}
		}

		err = mr.expect(":")
		if err != nil {
			return
		}

		var values []isa.Word
		values, err = mr.values()
		if err != nil {
			return
		}

		if fill {
			for addr := first; addr <= last; addr++ {
				memory[addr] = values[(addr-first)%len(values)]
			}
			continue
		}

		if first+len(values) > mr.depth {
			mr.offset = mr.depth
			err = ErrAddressRange
			return
		}
		copy(memory[first:], values)
		end = max(end, first+len(values))
	}
}
