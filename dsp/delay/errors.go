package delay

import "errors"

var (
	// ErrInvalidTime reports a negative or non-finite delay time or size.
	ErrInvalidTime = errors.New("delay: invalid time")
	// ErrInvalidSampleRate reports a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("delay: invalid sample rate")
)
