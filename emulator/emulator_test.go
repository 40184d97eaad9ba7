package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cellvm/board"
	"github.com/ezrec/cellvm/config"
	"github.com/ezrec/cellvm/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(board.CELL_COUNT, emu.Cpu.Board.Len())
	assert.NoError(emu.Cpu.Fault())
}

func TestEmulator_Config(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.Cells = 8
	cfg.TickLimit = 50
	cfg.FaultDepth = 2
	cfg.Verbose = true
	cfg.Predefine["START"] = "6"

	emu := NewEmulator(cfg)
	assert.True(emu.Verbose)
	assert.Equal(8, emu.Cpu.Board.Len())
	assert.Equal(50, emu.Cpu.TickLimit)
	assert.Equal(2, emu.Cpu.FaultDepth)

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}
	assert.Equal("8", defines["CELL_COUNT"])
	assert.Equal("6", defines["START"])
	assert.Equal("15", defines["PLUS"])
	assert.Equal("30", defines["FAULT_DEPTH"])
}

func doRun(t *testing.T, emu *Emulator, program []string) (output string, err error) {
	assert := assert.New(t)

	err = emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	_, err = emu.Run()

	output = tape_output.String()
	return
}

func TestEmulator_Run(t *testing.T) {
	table := [](struct {
		name    string
		program []string
		output  string
	}){
		{"stop", []string{"stop"}, ""},
		{"sum", []string{
			"put.op plus",
			"put.out 9",
			"int 5",
			"print.out",
			"stop",
		}, "14\n"},
		{"nested", []string{
			"; 10 - (4 + 3)",
			"        put.op sub",
			"        put.out 10",
			"        inc",
			"        put.op plus",
			"        put.out 4",
			"        int 3",
			"        push.back",
			"        dec",
			"        in.field",
			"        print.out",
			"        stop",
		}, "3\n"},
		{"countdown", []string{
			".macro emit v",
			"        put.out v",
			"        print.out",
			".endm",
			"        emit 3",
			"        emit 2",
			"        jump done",
			"        emit 1",
			"done:   stop",
		}, "3\n2\n"},
		{"cell count", []string{
			"        put.in CELL_COUNT",
			"        print.in",
			"        stop",
		}, "1000\n"},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			emu := NewEmulator(nil)
			output, err := doRun(t, emu, entry.program)
			assert.NoError(err)
			assert.Equal(entry.output, output)
			assert.Equal(cpu.STATE_HALT, emu.Cpu.State())
		})
	}
}

func TestEmulator_RunFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	output, err := doRun(t, emu, []string{
		"        put.out 1",
		"        print.out",
		"        int 2",
		"        stop",
	})
	assert.Equal("1\n", output)
	assert.ErrorIs(err, cpu.ErrUnresolvedOperator)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(3, runtime.LineNo)
	}

	var fault *cpu.ErrFault
	if assert.True(errors.As(err, &fault)) {
		assert.Equal(6, fault.Offset)
		assert.Len(fault.Cells, cpu.FAULT_DEPTH)
	}
}

func TestEmulator_TickLimit(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.TickLimit = 10

	emu := NewEmulator(cfg)
	_, err := doRun(t, emu, []string{
		"loop:   jump loop",
	})
	assert.ErrorIs(err, cpu.ErrTickLimit)
	assert.Equal(10, emu.Ticks())
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"        put.op plus",
		"        int 2",
		"        int 3",
		"        print.out",
		"        stop",
	}

	emu := NewEmulator(nil)
	assert.NoError(emu.Assemble(strings.NewReader(strings.Join(program, "\n"))))

	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	assert.NoError(emu.Reset())

	for _, stmt := range emu.Program.Statements {
		assert.Equal(stmt.LineNo, emu.LineNo())
		assert.Equal(stmt.Codes[0], emu.Code())

		done, err := emu.Tick()
		assert.NoError(err)
		assert.Equal(stmt.Codes[0].Op == cpu.OP_STOP, done, program[stmt.LineNo-1])
	}

	assert.Equal("5\n", tape_output.String())
	assert.Equal(5, emu.Ticks())
	assert.Equal(0, emu.LineNo())
}

func TestEmulator_TickFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	assert.NoError(emu.Assemble(strings.NewReader("inc\ndec\ndec\n")))
	assert.NoError(emu.Reset())

	var done bool
	var err error
	for range 3 {
		done, err = emu.Tick()
		if err != nil {
			break
		}
	}
	assert.False(done)
	assert.ErrorIs(err, cpu.ErrBoundsViolation)
	assert.ErrorIs(err, board.ErrCursorBegin)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(3, runtime.LineNo)
	}
}

func TestEmulator_Errors(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	emu.Program = nil
	assert.ErrorIs(emu.Reset(), ErrNoProgram)

	_, err := emu.Run()
	assert.ErrorIs(err, ErrNoProgram)

	err = emu.Assemble(strings.NewReader("bogus\n"))
	assert.ErrorIs(err, cpu.ErrInstructionInvalid)
	assert.Nil(emu.Program)
}
