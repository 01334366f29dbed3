package window

import "errors"

var (
	// ErrEmpty reports an empty coefficient slice.
	ErrEmpty = errors.New("window: no coefficients")
	// ErrZeroGain reports a window whose coefficients sum to zero.
	ErrZeroGain = errors.New("window: zero coherent gain")
)
