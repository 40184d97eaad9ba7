package cpu

import (
	"io"
)

// Dump writes the first depth cells of the board.
// It only observes the machine.
func (cpu *Cpu) Dump(w io.Writer, depth int) error {
	return cpu.Board.Dump(w, depth)
}
