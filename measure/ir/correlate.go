package ir

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Correlate returns the full linear cross-correlation of a and b through
// the FFT. Element k holds lag k-(len(b)-1):
//
//	c[lag] = Σ a[i+lag]·b[i]
//
// so a positive lag means a contains b later in time.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n, m := len(a), len(b)
	size := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("ir: fft plan: %w", err)
	}

	bufA := make([]complex128, size)
	bufB := make([]complex128, size)
	for i, v := range a {
		bufA[i] = complex(v, 0)
	}
	for i, v := range b {
		bufB[i] = complex(v, 0)
	}

	specA := make([]complex128, size)
	specB := make([]complex128, size)
	if err := plan.Forward(specA, bufA); err != nil {
		return nil, fmt.Errorf("ir: forward fft: %w", err)
	}
	if err := plan.Forward(specB, bufB); err != nil {
		return nil, fmt.Errorf("ir: forward fft: %w", err)
	}

	for k := range specA {
		sb := specB[k]
		specA[k] *= complex(real(sb), -imag(sb))
	}
	if err := plan.Inverse(bufA, specA); err != nil {
		return nil, fmt.Errorf("ir: inverse fft: %w", err)
	}

	// Negative lags wrap to the end of the circular result.
	out := make([]float64, n+m-1)
	for lag := -(m - 1); lag < n; lag++ {
		idx := lag
		if idx < 0 {
			idx += size
		}
		out[lag+m-1] = real(bufA[idx])
	}

	return out, nil
}

// PeakLag returns the lag and value of the largest element of a result of
// Correlate, where bLen is the length of its second argument.
func PeakLag(corr []float64, bLen int) (lag int, value float64) {
	if len(corr) == 0 {
		return 0, 0
	}

	best := 0
	for i, v := range corr {
		if v > corr[best] {
			best = i
		}
	}
	return best - (bLen - 1), corr[best]
}
