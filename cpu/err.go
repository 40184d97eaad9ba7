package cpu

import (
	"errors"
	"io"

	"github.com/ezrec/cellvm/board"
	"github.com/ezrec/cellvm/translate"
)

var f = translate.From

var (
	// Fault taxonomy
	ErrBoundsViolation    = errors.New(f("bounds violation"))
	ErrUnknownOpcode      = errors.New(f("unknown opcode"))
	ErrUnresolvedOperator = errors.New(f("unresolved operator"))
	ErrTickLimit          = errors.New(f("tick limit reached"))

	// Stream errors
	ErrStreamEnd     = errors.New(f("read past end of stream"))
	ErrOperandShort  = errors.New(f("operand truncated"))
	ErrJumpTarget    = errors.New(f("jump target outside stream"))
	ErrStreamMissing = errors.New(f("no stream loaded"))

	// Image errors
	ErrImageVersion = errors.New(f("image version unsupported"))
	ErrImageCode    = errors.New(f("image code invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOperatorInvalid    = errors.New(f("operator invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrFault is a terminal decoder fault, with the machine state at the
// point of detection.
type ErrFault struct {
	Offset int          // Stream offset of the faulting opcode.
	Opcode Opcode       // Faulting opcode.
	State  State        // Decoder state that detected the fault.
	Cursor int          // Board cursor at the fault.
	Cells  []board.Cell // Snapshot of the first cells of the board.
	Err    error
}

func (err *ErrFault) Error() string {
	return f("fault at offset %d (%v, %v) cursor %d: %v", err.Offset, err.Opcode, err.State, err.Cursor, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// Dump writes the cell snapshot taken at the fault.
func (err *ErrFault) Dump(w io.Writer) error {
	return board.DumpCells(w, err.Cells)
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
