package ir

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-reverb/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// PowerSpectrum returns the one-sided power spectrum of x after a Hann
// window, zero-padded to the next power of two. Bin k lies at
// k·sampleRate/fftSize Hz; the returned slice has fftSize/2+1 bins. Power is
// divided by the squared window sum, so a bin-centred sinusoid of amplitude A
// peaks at (A/2)².
func PowerSpectrum(x []float64, sampleRate float64) (power []float64, binHz float64, err error) {
	s, err := analyse(x, sampleRate)
	if err != nil {
		return nil, 0, err
	}
	return s.power, s.binHz, nil
}

// BandEnergy returns the mean-square level of x between loHz and hiHz. The
// windowed bins are corrected for the window's noise bandwidth, so a sinusoid
// of amplitude A inside the band reads A²/2.
func BandEnergy(x []float64, sampleRate, loHz, hiHz float64) (float64, error) {
	if !(loHz >= 0) || !(hiHz > loHz) || hiHz > sampleRate/2 {
		return 0, fmt.Errorf("%w: [%g, %g] Hz", ErrInvalidBand, loHz, hiHz)
	}

	s, err := analyse(x, sampleRate)
	if err != nil {
		return 0, err
	}

	lo := int(math.Ceil(loHz / s.binHz))
	hi := min(int(math.Floor(hiHz/s.binHz)), len(s.power)-1)

	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += s.power[k]
	}

	// A tone spreads over enbw analysis bins, i.e. enbw·size/len(x) bins of
	// the zero-padded transform.
	spread := s.enbw * float64(len(s.power)-1) * 2 / float64(len(x))
	return 2 * sum / spread, nil
}

type spectrum struct {
	power []float64
	binHz float64
	enbw  float64
}

func analyse(x []float64, sampleRate float64) (spectrum, error) {
	if len(x) == 0 {
		return spectrum{}, ErrEmptyInput
	}
	if !(sampleRate > 0) {
		return spectrum{}, ErrInvalidSampleRate
	}

	w := window.Generate(window.TypeHann, len(x))
	gain, err := window.CoherentGain(w)
	if err != nil {
		return spectrum{}, fmt.Errorf("ir: analysis window: %w", err)
	}
	enbw, err := window.EquivalentNoiseBandwidth(w)
	if err != nil {
		return spectrum{}, fmt.Errorf("%w: %d samples are too short for a Hann window", ErrEmptyInput, len(x))
	}

	windowed := make([]float64, len(x))
	vecmath.MulBlock(windowed, x, w)

	size := nextPowerOf2(len(x))
	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return spectrum{}, fmt.Errorf("ir: fft plan: %w", err)
	}
	coeffs := make([]complex128, size)
	if err := plan.Forward(coeffs, in); err != nil {
		return spectrum{}, fmt.Errorf("ir: forward fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range re {
		re[k] = real(coeffs[k])
		im[k] = imag(coeffs[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	sum := gain * float64(len(x))
	vecmath.ScaleBlockInPlace(power, 1/(sum*sum))

	return spectrum{power: power, binHz: sampleRate / float64(size), enbw: enbw}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
