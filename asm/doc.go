// Package asm assembles the stepper-motor controller assembly language.
//
// Source is line oriented. A line holds an optional label, and then
// either an instruction or a directive. Comments start with ';'.
//
//	.equ STEPS 4           ; equates bind a name to a value
//	loop:                  ; labels bind a name to the next address
//	    SR0 STEPS          ; immediates are numerals, names or $( ... )
//	    MOVR r0
//	    SUBI r3, #1
//	    BRZ done           ; branch offsets are relative to the branch
//	    BR loop
//	done:
//	    PAUSE
//
// The $( ... ) expressions are evaluated as Starlark, with every label
// and equate in scope, plus PC (the current address) and LINENO.
package asm
