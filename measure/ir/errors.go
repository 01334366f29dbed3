package ir

import "errors"

// Errors returned by the analysis functions.
var (
	ErrEmptyIR           = errors.New("ir: impulse response is empty")
	ErrEmptyInput        = errors.New("ir: input is empty")
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrInvalidTime       = errors.New("ir: time must be positive")
	ErrInvalidBand       = errors.New("ir: invalid frequency band")
	ErrNoDecay           = errors.New("ir: insufficient decay for RT calculation")
)
