// Package cpu implements the decoder and assembler of the cell virtual machine.
//
// The decoder scans a flat byte stream one opcode at a time. Opcodes act on
// the current cell of a board.Board: they move the cursor, store literals
// into the cell's In, Op and Out fields, propagate a result into a
// neighboring cell, or resolve the cell's pending operator against a literal
// (INT) or the cell's own In field (IN_FIELD). Operands are four byte little
// endian signed integers; jump targets are absolute stream offsets.
//
// Every fault (a bounds violation, an unknown opcode, an unresolved
// operator) stops the run and is returned as an *ErrFault carrying the
// failing opcode, the cursor and a snapshot of the board.
//
// The assembler provides a small line oriented assembly language for the
// instruction set, supporting labels, equates, macros and compile-time
// expression evaluation.
package cpu
