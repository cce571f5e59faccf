package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// Reg is a register index.
type Reg int

const (
	REG_R0 = Reg(0) // General purpose.
	REG_R1 = Reg(1) // General purpose.
	REG_R2 = Reg(2) // Position.
	REG_R3 = Reg(3) // Delay period.

	REG_COUNT = 4
)

// Valid returns true if the register exists.
func (reg Reg) Valid() bool {
	return reg >= REG_R0 && reg < REG_COUNT
}

func (reg Reg) String() string {
	return fmt.Sprintf("r%d", int(reg))
}

// ParseReg parses a register name, r0 through r3.
func ParseReg(name string) (reg Reg, err error) {
	number, ok := strings.CutPrefix(strings.ToLower(name), "r")
	if !ok || len(number) == 0 {
		err = ErrRegisterInvalid
		return
	}

	value, err := strconv.ParseUint(number, 10, 8)
	if err != nil {
		err = ErrRegisterInvalid
		return
	}

	reg = Reg(value)
	if !reg.Valid() {
		err = ErrRegisterInvalid
		return
	}

	return
}

// IsRegName returns true if the name is spelled like a register, even if
// the register does not exist.
func IsRegName(name string) bool {
	number, ok := strings.CutPrefix(strings.ToLower(name), "r")
	if !ok || len(number) == 0 {
		return false
	}
	for _, ch := range number {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
