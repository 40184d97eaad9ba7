package cpu

import (
	"fmt"
	"io"
)

// Decode decodes the instruction at offset pc of stream, and returns the
// offset of the following instruction.
//
// Bytes that are not dispatchable opcodes decode with ErrUnknownOpcode and
// a next offset of pc+1; a truncated operand decodes with
// ErrBoundsViolation and a next offset of len(stream).
func Decode(stream []byte, pc int) (code Code, next int, err error) {
	st := &Stream{code: stream, offset: pc}

	code.Op, err = st.ReadOpcode()
	if err != nil {
		next = len(stream)
		return
	}

	if !code.Op.Dispatchable() {
		err = ErrUnknownOpcode
		next = st.Offset()
		return
	}

	if code.Op.OperandSize() != 0 {
		code.Operand, err = st.ReadInt()
		if err != nil {
			next = len(stream)
			return
		}
	}

	next = st.Offset()
	return
}

// Disassemble writes the disassembly of the instruction at offset pc of
// stream to w, and returns the offset of the next instruction and any
// write error.
func Disassemble(stream []byte, pc int, w io.Writer) (next int, err error) {
	code, next, derr := Decode(stream, pc)

	switch {
	case derr == nil:
		_, err = io.WriteString(w, code.String())
	case code.Op.Dispatchable():
		_, err = fmt.Fprintf(w, "%v ???", code.Op)
	default:
		_, err = fmt.Fprintf(w, ".byte %d", byte(code.Op))
	}

	return
}

// DisassembleAll writes a listing of every instruction in stream to w.
func DisassembleAll(stream []byte, w io.Writer) (err error) {
	for pc := 0; pc < len(stream); {
		_, err = fmt.Fprintf(w, "%04x\t", pc)
		if err != nil {
			return
		}
		pc, err = Disassemble(stream, pc, w)
		if err != nil {
			return
		}
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return
		}
	}

	return
}
