package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asp/isa"
)

func TestWriteListing(t *testing.T) {
	assert := assert.New(t)

	prog := &isa.Program{Instructions: []isa.Instruction{
		{Opcode: isa.OP_CLR, Operands: []int{0}, LineNo: 3},
		{Opcode: isa.OP_BRZ, Operands: []int{-1}, LineNo: 4},
		isa.NewInstruction(isa.OP_PAUSE),
	}}

	source := func(lineno int) string {
		return map[int]string{3: "  loop: CLR r0", 4: "  BRZ loop"}[lineno]
	}

	var buff bytes.Buffer
	assert.NoError(WriteListing(&buff, prog, source))
	text := buff.String()

	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Equal(3+4, len(lines))

	assert.Contains(lines[1], "ADDR")
	assert.Contains(lines[3], "01100000")
	assert.Contains(lines[3], "60")
	assert.Contains(lines[3], "CLR r0")
	assert.Contains(lines[3], "loop: CLR r0")
	assert.Contains(lines[4], "10111111")
	assert.Contains(lines[4], "BRZ -1")
	assert.Contains(lines[5], "11111111")
	assert.Contains(lines[5], "PAUSE")

	buff.Reset()
	assert.NoError(WriteListing(&buff, prog, nil))
	assert.NotContains(buff.String(), "loop")
}

func TestWriteListingError(t *testing.T) {
	assert := assert.New(t)

	prog := &isa.Program{Instructions: []isa.Instruction{
		isa.NewInstruction(isa.OP_ADDI, 0, 8),
	}}

	var buff bytes.Buffer
	assert.Error(WriteListing(&buff, prog, nil))
	assert.Equal(0, buff.Len())
}
