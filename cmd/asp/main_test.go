package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asp/asm"
	"github.com/ezrec/asp/format"
	"github.com/ezrec/asp/translate"
)

func TestMain(m *testing.M) {
	translate.SetLanguage()
	os.Exit(m.Run())
}

type harness struct {
	dir    string
	stdin  *strings.Reader
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	return &harness{
		dir:   t.TempDir(),
		stdin: strings.NewReader(""),
	}
}

// file creates an input file in the harness directory.
func (h *harness) file(t *testing.T, name string, content string) string {
	path := filepath.Join(h.dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func (h *harness) run(args ...string) error {
	opts := &options{
		stdin:   h.stdin,
		stdout:  &h.stdout,
		stderr:  &h.stderr,
		filesys: format.DirFS(h.dir),
	}
	cmd := newCommand(opts)
	cmd.SetArgs(append([]string{}, args...))
	return cmd.Execute()
}

func (h *harness) read(t *testing.T, name string) string {
	data, err := os.ReadFile(filepath.Join(h.dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestMainMIF(t *testing.T) {
	assert := assert.New(t)

	h := newHarness(t)
	input := h.file(t, "prog.s", "CLR r0\nBRZ -1\n")

	assert.NoError(h.run(input))
	assert.Equal("Output saved to out.mif\n", h.stdout.String())

	mif := h.read(t, "out.mif")
	assert.True(strings.HasPrefix(mif, "WIDTH=8;\nDEPTH=256;\n"))
	assert.Contains(mif, "\t0\t:\t01100000;\n\t1\t:\t10111111;\n\t[2..255]\t:\t00000000;\nEND;\n")
}

func TestMainFormats(t *testing.T) {
	table := [](struct {
		name   string
		file   string
		source string
		args   []string
		output string
	}){
		{"hex", "prog.s", "CLR r0\nBRZ -1\n", []string{"-f", "hex"}, "\x60\xbf"},
		{"bin", "prog.s", "CLR r0\nBRZ -1\n", []string{"--fmt=bin"}, "\x60\xbf"},
		{"text", "prog.s", "CLR r0\nBRZ -1\n", []string{"-f", "text"}, "60BF\n"},
		{"asm", "prog.s", "x: CLR r0\nBRZ x\n", []string{"-f", "asm"}, "CLR r0\nBRZ -1\n"},
		{"disassemble-hex", "prog.rom", "\x60\xbf", []string{"-H"}, "CLR r0\nBRZ -1\n"},
		{"disassemble-input", "prog.rom", "\x60\xbf", []string{"-i", "hex"}, "CLR r0\nBRZ -1\n"},
		{"disassemble-ext", "prog.hex", "\x60\xbf", nil, "CLR r0\nBRZ -1\n"},
		{"disassemble-text", "prog.txt", "60 bf\n", nil, "CLR r0\nBRZ -1\n"},
		{"disassemble-mif", "prog.mif", "CONTENT BEGIN 0 : 60 BF; END;", nil, "CLR r0\nBRZ -1\n"},
		{"disassemble-bin", "prog.bin", "\x60\xbf", []string{"-f", "text"}, "60BF\n"},
		{"mif-to-hex", "prog.mif", "CONTENT BEGIN 0 : 60 BF; END;", []string{"-f", "hex"}, "\x60\xbf"},
		{"define", "prog.s", "SR0 SPEED\n", []string{"-f", "text", "-D", "SPEED=3"}, "43\n"},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			h := newHarness(t)
			input := h.file(t, entry.file, entry.source)

			args := append([]string{"-o", "-"}, entry.args...)
			err := h.run(append(args, input)...)
			assert.NoError(err)
			assert.Equal(entry.output, h.stdout.String())
		})
	}
}

func TestMainOutput(t *testing.T) {
	assert := assert.New(t)

	h := newHarness(t)
	input := h.file(t, "prog.s", "PAUSE\n")

	assert.NoError(h.run("-f", "hex", "-o", "rom.hex", input))
	assert.Equal("\xff", h.read(t, "rom.hex"))
	assert.Equal("Output saved to rom.hex\n", h.stdout.String())
}

func TestMainStdin(t *testing.T) {
	assert := assert.New(t)

	h := newHarness(t)
	h.stdin = strings.NewReader("MOVA r2\n")

	assert.NoError(h.run("-f", "text", "-o", "-", "-"))
	assert.Equal("C2\n", h.stdout.String())
}

func TestMainVerbose(t *testing.T) {
	assert := assert.New(t)

	h := newHarness(t)
	input := h.file(t, "prog.s", ".equ N 5\nhome: SR0 N ; load\nBR home\n")

	assert.NoError(h.run("-v", "-f", "text", "-o", "-", input))
	assert.Equal("459F\n", h.stdout.String())

	listing := h.stderr.String()
	assert.Contains(listing, "ADDR")
	assert.Contains(listing, "01000101")
	assert.Contains(listing, "home: SR0 N ; load")
	assert.Contains(listing, "home")
}

func TestMainError(t *testing.T) {
	h := newHarness(t)
	source := h.file(t, "bad.s", "CLR r0\nBR nowhere\n")
	define := h.file(t, "define.s", "SR0 X\n")
	hex := h.file(t, "bad.hex", "\x60\xe3")
	good := h.file(t, "good.s", "PAUSE\n")

	t.Run("resolve", func(t *testing.T) {
		assert := assert.New(t)

		err := h.run(source)
		var err_resolve *asm.ErrResolve
		assert.True(errors.As(err, &err_resolve))
		assert.Contains(err.Error(), "bad.s")

		_, err = os.Stat(filepath.Join(h.dir, "out.mif"))
		assert.True(os.IsNotExist(err))
	})

	t.Run("define", func(t *testing.T) {
		assert := assert.New(t)

		err := h.run("-D", "X", define)
		assert.True(errors.Is(err, ErrDefineSyntax))
	})

	t.Run("decode", func(t *testing.T) {
		assert := assert.New(t)

		err := h.run(hex)
		assert.Error(err)
		assert.Contains(err.Error(), "bad.hex")
	})

	t.Run("missing", func(t *testing.T) {
		assert := assert.New(t)

		err := h.run(filepath.Join(h.dir, "missing.s"))
		assert.True(errors.Is(err, os.ErrNotExist))
	})

	t.Run("exclusive", func(t *testing.T) {
		assert := assert.New(t)

		assert.Error(h.run("-H", "-i", "mif", hex))
	})

	t.Run("format", func(t *testing.T) {
		assert := assert.New(t)

		assert.Error(h.run("-f", "elf", source))
	})

	t.Run("args", func(t *testing.T) {
		assert := assert.New(t)

		assert.Error(h.run())
		assert.Error(h.run(source, hex))
	})

	t.Run("output", func(t *testing.T) {
		assert := assert.New(t)

		err := h.run("-o", filepath.Join("missing", "out.mif"), good)
		assert.Error(err)
	})

	entries, err := os.ReadDir(h.dir)
	assert.NoError(t, err)
	assert.Equal(t, 4, len(entries))
}
