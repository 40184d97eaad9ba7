package cpu

// apply computes out OP operand for the operator tag of a cell.
func apply(tag int32, out int32, operand int32) (result int32, err error) {
	switch Operator(tag) {
	case OPERATOR_PLUS:
		result = out + operand
	case OPERATOR_SUB:
		result = out - operand
	default:
		err = ErrUnresolvedOperator
	}

	return
}

// resolveLiteral applies the current cell's operator against the literal
// that follows INT in the stream.
func (cpu *Cpu) resolveLiteral() (next State, err error) {
	cell := cpu.Board.Current()

	// The operator is checked before the literal is consumed.
	if !Operator(cell.Op).Valid() {
		err = ErrUnresolvedOperator
		return
	}

	operand, err := cpu.stream.ReadInt()
	if err != nil {
		return
	}

	result, err := apply(cell.Op, cell.Out, operand)
	if err != nil {
		return
	}
	cell.Out = result

	next = STATE_BASE
	return
}

// resolveNeighbor applies the current cell's operator against its own In
// field, as filled by a neighbor's PUSH_BACK or PUSH_NEXT.
func (cpu *Cpu) resolveNeighbor() (next State, err error) {
	cell := cpu.Board.Current()

	result, err := apply(cell.Op, cell.Out, cell.In)
	if err != nil {
		return
	}
	cell.Out = result

	next = STATE_BASE
	return
}
