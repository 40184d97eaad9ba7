// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"
	"sync"

	"github.com/ezrec/cellvm/board"
	"github.com/ezrec/cellvm/io"
)

// Channel is an observation channel interface.
type Channel io.Channel

// State is a decoder state.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_BASE             = State(0) // base
	STATE_RESOLVE_LITERAL  = State(1) // resolve-literal
	STATE_RESOLVE_NEIGHBOR = State(2) // resolve-neighbor
	STATE_HALT             = State(3) // halt
	STATE_FAULT            = State(4) // fault
)

const (
	FAULT_DEPTH         = 30 // Cells captured on a fault.
	FAULT_DEPTH_UNKNOWN = 10 // Cells captured on an unknown opcode.
)

var _cpu_defines = map[string]string{
	"NONE":         fmt.Sprintf("%d", OPERATOR_NONE),
	"PLUS":         fmt.Sprintf("%d", OPERATOR_PLUS),
	"SUB":          fmt.Sprintf("%d", OPERATOR_SUB),
	"OPERAND_SIZE": fmt.Sprintf("%d", OPERAND_SIZE),
}

// Cpu is the decoder of the cell machine, driving a single board.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Board *board.Board // Board driven by the decoder.

	Ticks      int // Opcodes dispatched since the stream was loaded.
	TickLimit  int // If non-zero, faults when Ticks would exceed it.
	FaultDepth int // If non-zero, cells captured on a fault.

	mu      sync.Mutex
	state   State
	stream  *Stream
	offset  int    // Offset of the opcode being executed.
	opcode  Opcode // Opcode being executed.
	fault   error
	channel Channel
}

// NewCpu creates a new decoder with a board of count cells.
func NewCpu(count uint) (cpu *Cpu) {
	cpu = &Cpu{
		Board: board.NewBoard(count),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetChannel sets the destination of PRINT_IN and PRINT_OUT observations.
// A nil channel discards them.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// State returns the decoder state.
func (cpu *Cpu) State() State {
	return cpu.state
}

// Offset returns the scan position in the loaded stream.
func (cpu *Cpu) Offset() int {
	if cpu.stream == nil {
		return 0
	}

	return cpu.stream.Offset()
}

// Fault returns the fault that stopped the decoder, if any.
func (cpu *Cpu) Fault() error {
	return cpu.fault
}

// Reset the machine.
// - Zeros the board and returns the cursor to the first cell.
// - Zeros the tick counter.
// - Rewinds the observation channel.
// - Rewinds a loaded stream to its first byte.
func (cpu *Cpu) Reset() {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Board.Verbose = cpu.Verbose
	cpu.Board.Reset()
	cpu.Ticks = 0

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}

	if cpu.stream != nil {
		cpu.load(cpu.stream.Bytes())
	}
}

// Load makes stream the program to step through, from its first byte.
// The board is left untouched.
func (cpu *Cpu) Load(stream []byte) {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	cpu.load(stream)
}

func (cpu *Cpu) load(stream []byte) {
	cpu.stream = NewStream(stream)
	cpu.state = STATE_BASE
	cpu.fault = nil
	cpu.offset = 0
	cpu.opcode = OP_STOP
	cpu.Ticks = 0
}

// Step executes the next opcode of the loaded stream, including the
// operator resolution it requests, and returns the resulting state.
// Once halted or faulted, Step keeps returning the terminal state.
func (cpu *Cpu) Step() (state State, err error) {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	return cpu.step()
}

// Run decodes and executes stream from its first byte until STOP.
// It returns the number of bytes consumed from the stream start, the
// STOP opcode included. Any fault ends the run with an *ErrFault.
func (cpu *Cpu) Run(stream []byte) (consumed uint, err error) {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	cpu.load(stream)

	for {
		var state State
		state, err = cpu.step()
		if err != nil {
			return
		}
		if state == STATE_HALT {
			consumed = uint(cpu.stream.Offset())
			return
		}
	}
}

func (cpu *Cpu) step() (state State, err error) {
	cpu.Board.Verbose = cpu.Verbose

	switch cpu.state {
	case STATE_HALT:
		return cpu.state, nil
	case STATE_FAULT:
		return cpu.state, cpu.fault
	}

	if cpu.stream == nil {
		return cpu.state, ErrStreamMissing
	}

	for {
		var next State
		switch cpu.state {
		case STATE_BASE:
			next, err = cpu.dispatch()
		case STATE_RESOLVE_LITERAL:
			next, err = cpu.resolveLiteral()
		case STATE_RESOLVE_NEIGHBOR:
			next, err = cpu.resolveNeighbor()
		default:
			panic("unknown decoder state")
		}

		if err != nil {
			return cpu.raise(err)
		}

		cpu.state = next
		if next == STATE_BASE || next == STATE_HALT {
			return cpu.state, nil
		}
	}
}

// dispatch reads the next opcode and executes it, returning the next state.
func (cpu *Cpu) dispatch() (next State, err error) {
	st := cpu.stream
	bd := cpu.Board

	cpu.offset = st.Offset()
	op, err := st.ReadOpcode()
	if err != nil {
		return
	}
	cpu.opcode = op

	if cpu.TickLimit > 0 && cpu.Ticks >= cpu.TickLimit {
		err = ErrTickLimit
		return
	}
	cpu.Ticks++

	if cpu.Verbose {
		code, _, _ := Decode(st.Bytes(), cpu.offset)
		log.Printf("%04x: %v", cpu.offset, code)
	}

	next = STATE_BASE
	cell := bd.Current()

	switch op {
	case OP_STOP:
		next = STATE_HALT
	case OP_INC_PTR:
		err = bd.Advance()
	case OP_DEC_PTR:
		err = bd.Retreat()
	case OP_PUT_IN, OP_PUT_OUT, OP_PUT_OP:
		var value int32
		value, err = st.ReadInt()
		if err != nil {
			return
		}
		switch op {
		case OP_PUT_IN:
			cell.In = value
		case OP_PUT_OUT:
			cell.Out = value
		case OP_PUT_OP:
			cell.Op = value
		}
	case OP_PUT_IO:
		cell.Out = cell.In
	case OP_PRINT_IN:
		cpu.observe(cell.In)
	case OP_PRINT_OUT:
		cpu.observe(cell.Out)
	case OP_PUSH_BACK:
		var back *board.Cell
		back, err = bd.NeighborBackward()
		if err != nil {
			break
		}
		back.In = cell.Out
	case OP_PUSH_NEXT:
		var forward *board.Cell
		forward, err = bd.NeighborForward()
		if err != nil {
			break
		}
		forward.In = cell.Out
	case OP_JUMP:
		var target int32
		target, err = st.ReadInt()
		if err != nil {
			return
		}
		err = st.Seek(target)
	case OP_INT:
		next = STATE_RESOLVE_LITERAL
	case OP_IN_FIELD:
		next = STATE_RESOLVE_NEIGHBOR
	default:
		err = ErrUnknownOpcode
	}

	if errors.Is(err, board.ErrBounds) {
		err = errors.Join(ErrBoundsViolation, err)
	}

	return
}

// observe sends value to the observation channel. Observation never
// faults the decoder; channel errors are only logged.
func (cpu *Cpu) observe(value int32) {
	if cpu.channel == nil {
		return
	}

	err := cpu.channel.Send(value)
	if err != nil && cpu.Verbose {
		log.Printf("cpu: observe %d: %v", value, err)
	}
}

// raise moves the decoder to STATE_FAULT and captures the fault.
func (cpu *Cpu) raise(err error) (state State, fault error) {
	depth := FAULT_DEPTH
	if errors.Is(err, ErrUnknownOpcode) {
		depth = FAULT_DEPTH_UNKNOWN
	}
	if cpu.FaultDepth > 0 {
		depth = cpu.FaultDepth
	}
	depth = min(depth, cpu.Board.Len())

	// depth is clamped to the board, so the snapshot cannot fail.
	cells, _ := cpu.Board.Snapshot(depth)

	fault = &ErrFault{
		Offset: cpu.offset,
		Opcode: cpu.opcode,
		State:  cpu.state,
		Cursor: cpu.Board.Cursor(),
		Cells:  cells,
		Err:    err,
	}

	if cpu.Verbose {
		log.Printf("cpu: %v", fault)
		dump := &strings.Builder{}
		board.DumpCells(dump, cells)
		log.Print(dump.String())
	}

	cpu.state = STATE_FAULT
	cpu.fault = fault
	state = cpu.state

	return
}
