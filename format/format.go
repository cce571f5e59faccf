package format

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ezrec/asp/isa"
)

// Format is a file format for programs.
type Format int

const (
	FORMAT_ASM  = Format(0) // Assembly source.
	FORMAT_HEX  = Format(1) // Raw bytes, one per word.
	FORMAT_MIF  = Format(2) // Memory Initialization File.
	FORMAT_BIN  = Format(3) // Raw bytes, one per word.
	FORMAT_TEXT = Format(4) // Hex digits, two per word.

	FORMAT_COUNT = 5
)

var formats = [FORMAT_COUNT](struct {
	name string
	ext  string
}){
	FORMAT_ASM:  {"asm", "s"},
	FORMAT_HEX:  {"hex", "hex"},
	FORMAT_MIF:  {"mif", "mif"},
	FORMAT_BIN:  {"bin", "bin"},
	FORMAT_TEXT: {"text", "txt"},
}

// ParseFormat finds a format by its name or its file extension.
func ParseFormat(name string) (ft Format, err error) {
	name = strings.ToLower(name)
	for n, entry := range formats {
		if entry.name == name || entry.ext == name {
			ft = Format(n)
			return
		}
	}

	err = ErrFormatUnknown(name)
	return
}

// FromPath guesses the format of a file from its extension.
func FromPath(path string) (ft Format, ok bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if len(ext) == 0 {
		return
	}

	ft, err := ParseFormat(ext)
	ok = err == nil
	return
}

func (ft Format) String() string {
	if ft < 0 || ft >= FORMAT_COUNT {
		return "unknown"
	}
	return formats[ft].name
}

// Ext is the file extension of the format, without the dot.
func (ft Format) Ext() string {
	if ft < 0 || ft >= FORMAT_COUNT {
		return ""
	}
	return formats[ft].ext
}

// IsMachineCode returns true if the format holds encoded words.
func (ft Format) IsMachineCode() bool {
	return ft == FORMAT_HEX || ft == FORMAT_MIF || ft == FORMAT_BIN || ft == FORMAT_TEXT
}

// IsBinary returns true if the format is not printable text.
func (ft Format) IsBinary() bool {
	return ft == FORMAT_HEX || ft == FORMAT_BIN
}

// Set parses a format name, for command line flags.
func (ft *Format) Set(value string) (err error) {
	parsed, err := ParseFormat(value)
	if err != nil {
		return
	}
	*ft = parsed
	return
}

// Type is the flag value type name.
func (ft *Format) Type() string {
	return "format"
}

// ReadWords reads machine code in a machine code format.
func ReadWords(r io.Reader, ft Format) (words []isa.Word, err error) {
	switch ft {
	case FORMAT_HEX, FORMAT_BIN:
		return ReadHex(r)
	case FORMAT_MIF:
		return ReadMIF(r)
	case FORMAT_TEXT:
		return ReadText(r)
	default:
		err = ErrFormatUnsupported(ft.String())
		return
	}
}

// ReadProgram reads and disassembles machine code.
func ReadProgram(r io.Reader, ft Format) (prog *isa.Program, err error) {
	words, err := ReadWords(r, ft)
	if err != nil {
		return
	}

	return isa.Disassemble(words)
}

// WriteWords writes machine code in a machine code format.
func WriteWords(w io.Writer, ft Format, words []isa.Word) (err error) {
	switch ft {
	case FORMAT_HEX, FORMAT_BIN:
		return WriteHex(w, words)
	case FORMAT_MIF:
		return WriteMIF(w, words)
	case FORMAT_TEXT:
		return WriteText(w, words)
	default:
		err = ErrFormatUnsupported(ft.String())
		return
	}
}

// WriteProgram writes a program in any format.
func WriteProgram(w io.Writer, ft Format, prog *isa.Program) (err error) {
	if ft == FORMAT_ASM {
		_, err = io.WriteString(w, prog.Text())
		return
	}

	words, err := prog.Binary()
	if err != nil {
		return
	}

	return WriteWords(w, ft, words)
}
