package cpu

import (
	"encoding/binary"
	"fmt"
)

// Opcode is a single instruction byte.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_STOP      = Opcode(0)  // stop
	OP_INC_PTR   = Opcode(1)  // inc
	OP_DEC_PTR   = Opcode(2)  // dec
	OP_PUT_IN    = Opcode(3)  // put.in
	OP_PUT_OUT   = Opcode(4)  // put.out
	OP_PUT_OP    = Opcode(5)  // put.op
	OP_PUT_IO    = Opcode(6)  // put.io
	OP_PRINT_IN  = Opcode(7)  // print.in
	OP_PRINT_OUT = Opcode(8)  // print.out
	OP_PUSH_BACK = Opcode(9)  // push.back
	OP_PUSH_NEXT = Opcode(10) // push.next
	OP_JUMP      = Opcode(11) // jump
	OP_END       = Opcode(12) // end
	OP_INT       = Opcode(13) // int
	OP_IN_FIELD  = Opcode(14) // in.field
	OP_PLUS      = Opcode(15) // plus
	OP_SUB       = Opcode(16) // sub
)

const (
	OPERAND_SIZE = 4 // Bytes in an opcode operand.
)

// Operator is an operator tag, as stored in a cell's Op field.
type Operator int32

//go:generate go tool stringer -linecomment -type=Operator
const (
	OPERATOR_NONE = Operator(0)       // none
	OPERATOR_PLUS = Operator(OP_PLUS) // plus
	OPERATOR_SUB  = Operator(OP_SUB)  // sub
)

// Valid returns true if the resolver can apply the operator.
func (op Operator) Valid() bool {
	return op == OPERATOR_PLUS || op == OPERATOR_SUB
}

// Dispatchable returns true if the decoder executes the opcode.
// END is reserved; PLUS and SUB are operator tags only.
func (op Opcode) Dispatchable() bool {
	return op <= OP_SUB && op != OP_END && op != OP_PLUS && op != OP_SUB
}

// OperandSize returns the number of operand bytes following the opcode.
func (op Opcode) OperandSize() int {
	switch op {
	case OP_PUT_IN, OP_PUT_OUT, OP_PUT_OP, OP_JUMP, OP_INT:
		return OPERAND_SIZE
	}

	return 0
}

// Code is a single decoded instruction.
type Code struct {
	Op      Opcode
	Operand int32
}

// MakeCode creates an instruction. The operand is ignored for opcodes
// that do not take one.
func MakeCode(op Opcode, operand ...int32) (code Code) {
	code.Op = op
	if op.OperandSize() != 0 && len(operand) > 0 {
		code.Operand = operand[0]
	}

	return
}

// Size returns the encoded size of the instruction in bytes.
func (code Code) Size() int {
	return 1 + code.Op.OperandSize()
}

// Append appends the encoded instruction to buf.
func (code Code) Append(buf []byte) []byte {
	buf = append(buf, byte(code.Op))
	if code.Op.OperandSize() != 0 {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(code.Operand))
	}

	return buf
}

// String returns the assembly language representation of the instruction.
func (code Code) String() string {
	if code.Op.OperandSize() == 0 {
		return code.Op.String()
	}

	if code.Op == OP_PUT_OP {
		tag := Operator(code.Operand)
		if tag == OPERATOR_NONE || tag.Valid() {
			return fmt.Sprintf("%v %v", code.Op, tag)
		}
	}

	return fmt.Sprintf("%v %d", code.Op, code.Operand)
}
