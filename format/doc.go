// Package format reads and writes machine code files.
//
// Programs are written as assembly source, as raw bytes (the hex and bin
// formats), as hex digit text, or as an Altera/Intel Memory Initialization
// File sized for the full address space. Machine code can be read back
// from any of the machine code formats.
package format
