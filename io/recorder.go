package io

// Recorder keeps observed values in memory, in the order they were sent.
type Recorder struct {
	Capacity int // Maximum number of values kept; zero is unlimited.

	Values []int32
}

var _ Channel = (*Recorder)(nil)

// Rewind forgets all recorded values.
func (rec *Recorder) Rewind() {
	rec.Values = rec.Values[:0]
}

// Send records value.
// Returns ErrChannelFull once Capacity values are held.
func (rec *Recorder) Send(value int32) (err error) {
	if rec.Capacity > 0 && len(rec.Values) >= rec.Capacity {
		err = ErrChannelFull
		return
	}

	rec.Values = append(rec.Values, value)
	return
}

// Last returns the most recent value.
func (rec *Recorder) Last() (value int32, ok bool) {
	if len(rec.Values) == 0 {
		return
	}

	return rec.Values[len(rec.Values)-1], true
}
