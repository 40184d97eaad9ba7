package cpu

import (
	"iter"
)

// Statement represents a line of assembled code with its source location
// and generated instructions.
type Statement struct {
	LineNo    int
	Offset    int
	Words     []string
	Codes     []Code
	LinkLabel string
}

// Size returns the encoded size of the statement in bytes.
func (stmt *Statement) Size() (size int) {
	for _, code := range stmt.Codes {
		size += code.Size()
	}

	return
}

type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int // Index of the code within the statement.
}

// Debug finds the statement and code that cover a stream offset.
func (prog *Program) Debug(offset int) (dbg Debug) {
	for n := range prog.Statements {
		stmt := &prog.Statements[n]
		pc := stmt.Offset
		for index, code := range stmt.Codes {
			if offset >= pc && offset < pc+code.Size() {
				dbg = Debug{
					Statement: stmt,
					Index:     index,
				}
				return
			}
			pc += code.Size()
		}
	}

	return
}

// LineNo returns the source line of the code at a stream offset, or 0.
func (prog *Program) LineNo(offset int) int {
	dbg := prog.Debug(offset)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Binary returns the instruction stream of the program.
func (prog *Program) Binary() (stream []byte) {
	stream = []byte{}
	for _, code := range prog.Codes() {
		stream = code.Append(stream)
	}

	return
}

// Codes iterates over every instruction with its stream offset.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(offset int, code Code) bool) {
		for _, stmt := range prog.Statements {
			pc := stmt.Offset
			for _, code := range stmt.Codes {
				if !yield(pc, code) {
					return
				}
				pc += code.Size()
			}
		}
	}
}
