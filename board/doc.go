// Package board implements the cell board of the cell virtual machine.
//
// The board is a fixed number of cells, each holding an incoming value (In),
// an operator tag (Op) and a result (Out). A single cursor selects the
// current cell; cells next to each other are nested, and results move
// between them by propagation rather than through a call stack.
package board
