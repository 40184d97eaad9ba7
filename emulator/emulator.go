// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/cellvm/config"
	"github.com/ezrec/cellvm/cpu"
	"github.com/ezrec/cellvm/internal"
	cio "github.com/ezrec/cellvm/io"
)

var _emulator_defines = map[string]string{
	"FAULT_DEPTH":         fmt.Sprintf("%v", cpu.FAULT_DEPTH),
	"FAULT_DEPTH_UNKNOWN": fmt.Sprintf("%v", cpu.FAULT_DEPTH_UNKNOWN),
}

// Emulator state. CPU + board + program + tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Config *config.Config // Configuration the emulator was built from.
	Tape   cio.Tape       // Tape observation channel.
}

// NewEmulator creates a new emulator from a configuration.
// A nil configuration uses config.Default().
func NewEmulator(cfg *config.Config) (emu *Emulator) {
	if cfg == nil {
		cfg = config.Default()
	}

	emu = &Emulator{
		Verbose: cfg.Verbose,
		Cpu:     cpu.NewCpu(cfg.Cells),
		Program: &cpu.Program{},
		Config:  cfg,
	}

	emu.Cpu.TickLimit = cfg.TickLimit
	emu.Cpu.FaultDepth = cfg.FaultDepth
	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Cpu.Board.Defines(),
		emu.Config.Defines(),
	)
}

// Assemble parses assembly source into the emulator's program, with every
// emulator define available as an equate.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset the board, the tape and the decoder, and load the program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		err = ErrNoProgram
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Load(emu.Program.Binary())

	return
}

// Ticks returns the total opcodes dispatched since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Code returns the next instruction code to execute.
func (emu *Emulator) Code() cpu.Code {
	offset := emu.Cpu.Offset()
	for pc, code := range emu.Program.Codes() {
		if pc == offset {
			return code
		}
	}

	return cpu.Code{}
}

// LineNo returns the source line of the next opcode to execute.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Offset())
}

// runtimeError maps a decoder error to the source line that caused it.
func (emu *Emulator) runtimeError(err error, lineno int) error {
	var fault *cpu.ErrFault
	if errors.As(err, &fault) {
		lineno = emu.Program.LineNo(fault.Offset)
	}

	return &ErrRuntime{LineNo: lineno, Err: err}
}

// Tick performs a single opcode of the emulator, including any operator
// resolution it requests.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()

	state, err := emu.Cpu.Step()
	if err != nil {
		err = emu.runtimeError(err, lineno)
		return
	}

	done = state == cpu.STATE_HALT
	return
}

// Run resets the emulator and runs the program to its STOP, returning the
// bytes of the stream consumed.
func (emu *Emulator) Run() (consumed uint, err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	consumed, err = emu.Cpu.Run(emu.Program.Binary())
	if err != nil {
		err = emu.runtimeError(err, 0)
		return
	}

	return
}
