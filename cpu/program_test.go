package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, `
	put.op plus
.macro twice v
	int v
	int v
.endm
	twice 2
	stop
`)

	assert.Equal(2, prog.LineNo(0))
	assert.Equal(2, prog.LineNo(4))
	assert.Equal(4, prog.LineNo(5))
	assert.Equal(5, prog.LineNo(10))
	assert.Equal(8, prog.LineNo(15))
	assert.Equal(0, prog.LineNo(16))
	assert.Equal(0, prog.LineNo(-1))

	dbg := prog.Debug(15)
	assert.NotNil(dbg.Statement)
	assert.Equal([]string{"stop"}, dbg.Words)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(99)
	assert.Nil(dbg.Statement)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Offset: 0, Codes: []Code{MakeCode(OP_INC_PTR), MakeCode(OP_PUT_IN, 2)}},
			{LineNo: 2, Offset: 6, Codes: []Code{MakeCode(OP_STOP)}},
		},
	}

	var offsets []int
	var codes []Code
	for offset, code := range prog.Codes() {
		offsets = append(offsets, offset)
		codes = append(codes, code)
	}

	assert.Equal([]int{0, 1, 6}, offsets)
	assert.Equal([]Code{MakeCode(OP_INC_PTR), MakeCode(OP_PUT_IN, 2), MakeCode(OP_STOP)}, codes)
	assert.Equal(7, prog.Statements[0].Size()+prog.Statements[1].Size())

	for offset := range prog.Codes() {
		assert.Equal(0, offset)
		break
	}
}
