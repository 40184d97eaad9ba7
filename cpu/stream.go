package cpu

import (
	"encoding/binary"
	"errors"
)

// Stream is a read-only scanning cursor over an instruction stream.
// Every read is bounds checked against the stream length.
type Stream struct {
	code   []byte
	offset int
}

// NewStream creates a stream positioned at the first byte of code.
func NewStream(code []byte) *Stream {
	return &Stream{code: code}
}

// Offset returns the scan position, in bytes from the stream start.
func (st *Stream) Offset() int {
	return st.offset
}

// Len returns the stream length in bytes.
func (st *Stream) Len() int {
	return len(st.code)
}

// Bytes returns the underlying stream.
func (st *Stream) Bytes() []byte {
	return st.code
}

// ReadOpcode reads the opcode byte at the scan position.
func (st *Stream) ReadOpcode() (op Opcode, err error) {
	if st.offset < 0 || st.offset >= len(st.code) {
		err = errors.Join(ErrBoundsViolation, ErrStreamEnd)
		return
	}

	op = Opcode(st.code[st.offset])
	st.offset++
	return
}

// ReadInt reads a little endian signed operand at the scan position.
func (st *Stream) ReadInt() (value int32, err error) {
	if st.offset < 0 || st.offset+OPERAND_SIZE > len(st.code) {
		err = errors.Join(ErrBoundsViolation, ErrOperandShort)
		return
	}

	value = int32(binary.LittleEndian.Uint32(st.code[st.offset:]))
	st.offset += OPERAND_SIZE
	return
}

// Seek moves the scan position to an absolute offset, which must address
// a byte of the stream.
func (st *Stream) Seek(offset int32) (err error) {
	if offset < 0 || int(offset) >= len(st.code) {
		err = errors.Join(ErrBoundsViolation, ErrJumpTarget)
		return
	}

	st.offset = int(offset)
	return
}
