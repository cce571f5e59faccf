// Package isa describes the instruction set of the stepper-motor control
// processor and converts between instructions and their 8-bit machine words.
//
// The processor has four 2-bit addressable registers (r0-r3), of which r0 and
// r1 are general purpose, r2 holds the motor position and r3 the step delay
// period. Every instruction occupies exactly one word, so an instruction's
// address is its index in the program.
//
// The bit layout of each opcode is kept in a single table that both Encode
// and Decode consult.
package isa
