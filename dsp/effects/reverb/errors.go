package reverb

import "errors"

var (
	// ErrInvalidSampleRate is returned by constructors for non-positive or
	// non-finite sample rates.
	ErrInvalidSampleRate = errors.New("reverb: invalid sample rate")
	// ErrUnknownParam is returned for a ParamID outside the defined controls.
	ErrUnknownParam = errors.New("reverb: unknown parameter")
)
