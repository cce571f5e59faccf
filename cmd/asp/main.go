// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/asp/asm"
	"github.com/ezrec/asp/format"
	"github.com/ezrec/asp/isa"
	"github.com/ezrec/asp/translate"
)

var f = translate.From

var (
	ErrDefineSyntax   = errors.New(f("define is not NAME=VALUE"))
	ErrBinaryTerminal = errors.New(f("will not write binary to a terminal, use --force"))
)

type options struct {
	output  string
	outfmt  format.Format
	infmt   format.Format
	hex     bool
	defines []string
	verbose bool
	force   bool

	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	filesys format.CreateFS
}

// isTerminal returns true if the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func newCommand(opts *options) *cobra.Command {
	opts.outfmt = format.FORMAT_MIF
	opts.infmt = format.FORMAT_ASM

	cmd := &cobra.Command{
		Use:   "asp [flags] FILE",
		Short: "Assembler and disassembler for the stepper-motor controller",
		Long: `Asp translates between the assembly language of the stepper-motor
controller and its machine code.

Assembly source is written as a Memory Initialization File (the default),
a raw byte stream (hex or bin), hex digit text, or back to assembly.
Machine code input, selected by --input, -H or the file extension, is
disassembled to assembly by default.
A FILE of '-' reads standard input.
`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if opts.hex {
				opts.infmt = format.FORMAT_HEX
			} else if !flags.Changed("input") {
				if ft, ok := format.FromPath(args[0]); ok {
					opts.infmt = ft
				}
			}
			if !flags.Changed("fmt") && opts.infmt.IsMachineCode() {
				opts.outfmt = format.FORMAT_ASM
			}
			return run(opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.VarP(&opts.outfmt, "fmt", "f", "Output format: asm, hex, mif, bin or text.")
	flags.VarP(&opts.infmt, "input", "i", "Input format: asm, hex, mif, bin or text.")
	flags.BoolVarP(&opts.hex, "hex", "H", false, "Input file is machine code in a raw hex file.")
	flags.StringVarP(&opts.output, "output", "o", "", "Output filename, by default out.<fmt>. '-' is standard output.")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "Predefine an equate, as NAME=VALUE.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode.")
	flags.BoolVar(&opts.force, "force", false, "Write binary output even to a terminal.")
	cmd.MarkFlagsMutuallyExclusive("hex", "input")

	cmd.SetIn(opts.stdin)
	cmd.SetOut(opts.stdout)
	cmd.SetErr(opts.stderr)

	return cmd
}

// run translates one input file.
func run(opts *options, input string) (err error) {
	prog, source, err := opts.load(input)
	if err != nil {
		return
	}

	if opts.verbose {
		err = format.WriteListing(opts.stderr, prog, source)
		if err != nil {
			return
		}
	}

	return opts.save(prog)
}

// load reads, and assembles or disassembles, the input.
func (opts *options) load(input string) (prog *isa.Program, source func(lineno int) string, err error) {
	inf := opts.stdin
	if input != "-" {
		var file *os.File
		file, err = os.Open(input)
		if err != nil {
			return
		}
		defer file.Close()
		inf = file
	}

	if opts.infmt.IsMachineCode() {
		prog, err = format.ReadProgram(inf, opts.infmt)
		if err != nil {
			err = fmt.Errorf("%v: %w", input, err)
		}
		return
	}

	assembler := &asm.Assembler{Verbose: opts.verbose}
	for _, define := range opts.defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok || len(name) == 0 {
			err = fmt.Errorf("%v: %w", define, ErrDefineSyntax)
			return
		}
		assembler.Predefine(name, value)
	}

	prog, err = assembler.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", input, err)
		return
	}
	source = assembler.Line

	if opts.verbose {
		printer := pp.New()
		printer.SetColoringEnabled(isTerminal(opts.stderr))
		printer.Fprintln(opts.stderr, assembler.Label)
		printer.Fprintln(opts.stderr, assembler.Equate)
	}

	return
}

// save writes the program to the output.
func (opts *options) save(prog *isa.Program) (err error) {
	if opts.output == "-" {
		if opts.outfmt.IsBinary() && !opts.force && isTerminal(opts.stdout) {
			err = ErrBinaryTerminal
			return
		}
		return format.WriteProgram(opts.stdout, opts.outfmt, prog)
	}

	output := opts.output
	if len(output) == 0 {
		output = "out." + opts.outfmt.Ext()
	}

	ouf, err := opts.filesys.Create(output)
	if err != nil {
		return
	}
	handler := atexit.Register(func() {
		ouf.Abort()
	})
	defer handler.Cancel()

	err = format.WriteProgram(ouf, opts.outfmt, prog)
	if err != nil {
		ouf.Abort()
		err = fmt.Errorf("%v: %w", output, err)
		return
	}

	err = ouf.Close()
	if err != nil {
		return
	}

	translate.Fprintf(opts.stdout, "Output saved to %v\n", output)
	return
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(os.Args[0] + ": ")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		sig := <-interrupt
		atexit.Fatalf("%v", sig)
	}()

	opts := &options{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		filesys: format.DirFS("."),
	}

	err := newCommand(opts).Execute()
	if err != nil {
		atexit.Fatal(err)
	}

	atexit.Exit(0)
}
