package isa

// FieldKind is the interpretation of an operand field: a register index,
// an unsigned immediate, or a two's complement immediate.
type FieldKind int

//go:generate go tool stringer -linecomment -type=FieldKind
const (
	FIELD_REG      = FieldKind(0) // register
	FIELD_UNSIGNED = FieldKind(1) // unsigned
	FIELD_SIGNED   = FieldKind(2) // signed
)

// Field is an operand bit field inside an instruction word.
type Field struct {
	Name     string    // Name used in diagnostics.
	Offset   uint      // Bit position of the least significant bit.
	Width    uint      // Width in bits.
	Kind     FieldKind // Interpretation of the bits.
	Relative bool      // Value is an offset from the instruction's own address.
}

// IsImmediate returns true if the field holds an immediate.
func (fd Field) IsImmediate() bool {
	return fd.Kind != FIELD_REG
}

// Min returns the smallest value the field can hold.
func (fd Field) Min() int {
	if fd.Kind == FIELD_SIGNED {
		return -(1 << (fd.Width - 1))
	}
	return 0
}

// Max returns the largest value the field can hold.
func (fd Field) Max() int {
	if fd.Kind == FIELD_SIGNED {
		return (1 << (fd.Width - 1)) - 1
	}
	return (1 << fd.Width) - 1
}

// Fits returns true if the value is inside the field's range.
func (fd Field) Fits(value int) bool {
	return value >= fd.Min() && value <= fd.Max()
}

// mask returns the unshifted mask of the field.
func (fd Field) mask() Word {
	return Word((1 << fd.Width) - 1)
}

// Check returns an error if the value cannot be packed into the field.
func (fd Field) Check(value int) (err error) {
	if fd.Fits(value) {
		return
	}

	if fd.Kind == FIELD_REG {
		err = ErrRegisterInvalid
		return
	}

	err = ErrImmediateRange{Value: value, Min: fd.Min(), Max: fd.Max()}
	return
}

// Pack places a value, already range checked, into its bit position.
func (fd Field) Pack(value int) Word {
	return (Word(value) & fd.mask()) << fd.Offset
}

// Unpack extracts the field from a word, sign extending signed fields.
func (fd Field) Unpack(word Word) (value int) {
	bits := (word >> fd.Offset) & fd.mask()
	value = int(bits)
	if fd.Kind == FIELD_SIGNED && bits&(1<<(fd.Width-1)) != 0 {
		value -= 1 << fd.Width
	}
	return
}
