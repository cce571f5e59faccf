package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var referenceCodes = []struct {
	inst Instruction
	word Word
}{
	// Flow
	{NewInstruction(OP_BR, -16), 0b100_10000},
	{NewInstruction(OP_BR, 15), 0b100_01111},
	{NewInstruction(OP_BR, -5), 0b100_11011},
	{NewInstruction(OP_BR, 3), 0b100_00011},
	{NewInstruction(OP_BRZ, 14), 0b101_01110},
	{NewInstruction(OP_BRZ, -1), 0b101_11111},
	{NewInstruction(OP_PAUSE), 0b11111111},
	// ALU
	{NewInstruction(OP_ADDI, 0, 0), 0b000_000_00},
	{NewInstruction(OP_ADDI, 1, 2), 0b000_010_01},
	{NewInstruction(OP_ADDI, 2, 5), 0b000_101_10},
	{NewInstruction(OP_ADDI, 3, 7), 0b000_111_11},
	{NewInstruction(OP_SUBI, 0, 1), 0b001_001_00},
	{NewInstruction(OP_SUBI, 1, 3), 0b001_011_01},
	{NewInstruction(OP_SUBI, 2, 4), 0b001_100_10},
	{NewInstruction(OP_SUBI, 3, 6), 0b001_110_11},
	{NewInstruction(OP_SR0, 0), 0b0100_0000},
	{NewInstruction(OP_SR0, 5), 0b0100_0101},
	{NewInstruction(OP_SR0, 10), 0b0100_1010},
	{NewInstruction(OP_SR0, 15), 0b0100_1111},
	{NewInstruction(OP_SRH0, 1), 0b0101_0001},
	{NewInstruction(OP_SRH0, 6), 0b0101_0110},
	{NewInstruction(OP_SRH0, 11), 0b0101_1011},
	{NewInstruction(OP_SRH0, 14), 0b0101_1110},
	// Memory
	{NewInstruction(OP_MOV, 1, 2), 0b0111_01_10},
	{NewInstruction(OP_MOV, 0, 2), 0b0111_00_10},
	{NewInstruction(OP_MOV, 3, 1), 0b0111_11_01},
	{NewInstruction(OP_CLR, 0), 0b011000_00},
	{NewInstruction(OP_CLR, 1), 0b011000_01},
	{NewInstruction(OP_CLR, 2), 0b011000_10},
	{NewInstruction(OP_CLR, 3), 0b011000_11},
	// Motor
	{NewInstruction(OP_MOVA, 0), 0b110000_00},
	{NewInstruction(OP_MOVA, 3), 0b110000_11},
	{NewInstruction(OP_MOVR, 1), 0b110001_01},
	{NewInstruction(OP_MOVR, 2), 0b110001_10},
	{NewInstruction(OP_MOVRHS, 0), 0b110010_00},
	{NewInstruction(OP_MOVRHS, 3), 0b110010_11},
}

func TestInstruction_Reference(t *testing.T) {
	assert := assert.New(t)

	for _, tt := range referenceCodes {
		word, err := tt.inst.Encode()
		assert.NoError(err, tt.inst.String())
		assert.Equal(tt.word, word, "%v to binary", tt.inst)

		inst, err := Decode(tt.word)
		assert.NoError(err)
		assert.Equal(tt.inst, inst, "%08b to asm", tt.word)
	}
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("PAUSE", NewInstruction(OP_PAUSE).String())
	assert.Equal("BR -14", NewInstruction(OP_BR, -14).String())
	assert.Equal("BRZ 2", NewInstruction(OP_BRZ, 2).String())
	assert.Equal("ADDI r3, 7", NewInstruction(OP_ADDI, 3, 7).String())
	assert.Equal("MOV r3, r2", NewInstruction(OP_MOV, 3, 2).String())
	assert.Equal("SRH0 1", NewInstruction(OP_SRH0, 1).String())
	assert.Equal("MOVRHS r1", NewInstruction(OP_MOVRHS, 1).String())
}

func TestInstruction_Range(t *testing.T) {
	tests := []struct {
		name  string
		inst  Instruction
		valid bool
	}{
		{"u3 low", NewInstruction(OP_ADDI, 0, 0), true},
		{"u3 high", NewInstruction(OP_ADDI, 0, 7), true},
		{"u3 over", NewInstruction(OP_ADDI, 0, 8), false},
		{"u3 negative", NewInstruction(OP_SUBI, 0, -1), false},
		{"u4 high", NewInstruction(OP_SR0, 15), true},
		{"u4 over", NewInstruction(OP_SRH0, 16), false},
		{"i5 low", NewInstruction(OP_BR, -16), true},
		{"i5 high", NewInstruction(OP_BRZ, 15), true},
		{"i5 over", NewInstruction(OP_BR, 16), false},
		{"i5 under", NewInstruction(OP_BRZ, -17), false},
		{"reg over", NewInstruction(OP_CLR, 4), false},
		{"reg negative", NewInstruction(OP_MOV, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := tt.inst.Encode()
			if tt.valid {
				assert.NoError(err)
				return
			}

			var ee *ErrEncode
			assert.ErrorAs(err, &ee)
			assert.Equal(tt.inst.Opcode, ee.Opcode)
		})
	}
}

func TestInstruction_RangeDetail(t *testing.T) {
	assert := assert.New(t)

	inst := NewInstruction(OP_ADDI, 2, 8)
	inst.LineNo = 12
	_, err := Encode(inst)

	var ee *ErrEncode
	assert.ErrorAs(err, &ee)
	assert.Equal(12, ee.LineNo)
	assert.Equal("imm", ee.Field)

	var er ErrImmediateRange
	assert.ErrorAs(err, &er)
	assert.Equal(ErrImmediateRange{Value: 8, Min: 0, Max: 7}, er)

	_, err = Encode(NewInstruction(OP_CLR, 5))
	assert.ErrorIs(err, ErrRegisterInvalid)
}

func TestInstruction_EncodeInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := NewInstruction(Opcode(12)).Encode()
	assert.ErrorIs(err, ErrOpcodeInvalid)

	_, err = NewInstruction(Opcode(-1)).Encode()
	assert.ErrorIs(err, ErrOpcodeInvalid)

	_, err = NewInstruction(OP_MOV, 1).Encode()
	assert.ErrorIs(err, ErrOperandCount)

	_, err = NewInstruction(OP_PAUSE, 0).Encode()
	assert.ErrorIs(err, ErrOperandCount)
}

func TestDecode_AllWords(t *testing.T) {
	assert := assert.New(t)

	valid := 0
	for n := range DEPTH {
		word := Word(n)

		inst, err := Decode(word)
		if err != nil {
			assert.True(errors.Is(err, ErrOpcode(0)))
			assert.Equal(ErrOpcode(word), err)
			continue
		}
		valid++

		again, err := inst.Encode()
		assert.NoError(err)
		assert.Equal(word, again, "%08b %v", word, inst)
	}

	// 4*32 + 2*16 + 16 + 4*4 + 1
	assert.Equal(193, valid)
}

func TestDecode_Undefined(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []Word{0x64, 0x6f, 0xcc, 0xcf, 0xd0, 0xdf, 0xe0, 0xfe} {
		_, err := Decode(word)
		assert.Equal(ErrOpcode(word), err, "%02x", word)
	}
}

func TestDecode_SignExtend(t *testing.T) {
	assert := assert.New(t)

	inst, err := Decode(0b101_11111)
	assert.NoError(err)
	assert.Equal(OP_BRZ, inst.Opcode)
	assert.Equal([]int{-1}, inst.Operands)

	inst, err = Decode(0b100_10000)
	assert.NoError(err)
	assert.Equal([]int{-16}, inst.Operands)

	// Unsigned fields are never sign extended.
	inst, err = Decode(0b000_111_00)
	assert.NoError(err)
	assert.Equal([]int{0, 7}, inst.Operands)
}

func TestInstruction_Equal(t *testing.T) {
	assert := assert.New(t)

	a := NewInstruction(OP_MOV, 1, 2)
	b := NewInstruction(OP_MOV, 1, 2)
	b.LineNo = 4
	assert.True(a.Equal(b))
	assert.False(a.Equal(NewInstruction(OP_MOV, 2, 1)))
	assert.False(a.Equal(NewInstruction(OP_CLR, 1)))
}

func FuzzDecode(f *testing.F) {
	for _, tt := range referenceCodes {
		f.Add(uint8(tt.word))
	}
	f.Add(uint8(0xe0))

	f.Fuzz(func(t *testing.T, value uint8) {
		assert := assert.New(t)

		word := Word(value)
		inst, err := Decode(word)
		if err != nil {
			assert.ErrorIs(err, ErrOpcode(0))
			return
		}

		again, err := inst.Encode()
		assert.NoError(err)
		assert.Equal(word, again)
	})
}
