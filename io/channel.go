// Package io provides the observation channels of the cell VM.
// Values observed by the PRINT_IN and PRINT_OUT opcodes are sent to a
// Channel: a Tape writes them to an io.Writer, a Recorder keeps them in
// memory.
package io

// Channel defines the interface for all observation channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send delivers a single observed value to the channel.
	Send(value int32) error
}
