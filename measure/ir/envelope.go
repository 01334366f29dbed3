package ir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// RMSEnvelope returns the RMS of consecutive frames of frameLen samples. A
// trailing partial frame is measured over its own length.
func RMSEnvelope(x []float64, frameLen int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if frameLen <= 0 {
		return nil, fmt.Errorf("ir: frame length must be > 0: %d", frameLen)
	}

	squares := make([]float64, len(x))
	vecmath.MulBlock(squares, x, x)

	return frameRMS(squares, frameLen), nil
}

// StereoRMSEnvelope is RMSEnvelope of the mean power of left and right.
func StereoRMSEnvelope(left, right []float64, frameLen int) ([]float64, error) {
	if len(left) == 0 || len(right) == 0 {
		return nil, ErrEmptyInput
	}
	if len(left) != len(right) {
		return nil, fmt.Errorf("ir: channel length mismatch: %d vs %d", len(left), len(right))
	}
	if frameLen <= 0 {
		return nil, fmt.Errorf("ir: frame length must be > 0: %d", frameLen)
	}

	power := make([]float64, len(left))
	tmp := make([]float64, len(right))
	vecmath.MulBlock(power, left, left)
	vecmath.MulBlock(tmp, right, right)
	vecmath.AddBlockInPlace(power, tmp)
	vecmath.ScaleBlock(power, power, 0.5)

	return frameRMS(power, frameLen), nil
}

func frameRMS(power []float64, frameLen int) []float64 {
	frames := (len(power) + frameLen - 1) / frameLen
	out := make([]float64, frames)

	for f := range out {
		start := f * frameLen
		end := min(start+frameLen, len(power))

		sum := 0.0
		for _, p := range power[start:end] {
			sum += p
		}
		out[f] = math.Sqrt(sum / float64(end-start))
	}

	return out
}
