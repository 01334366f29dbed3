package shelving

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/filter/biquad"
)

// ErrInvalidParams is returned when filter parameters are out of range.
var ErrInvalidParams = errors.New("shelving: invalid parameters")

// Tilt holds the fixed corners and gains of a tilt equalizer and designs
// biquad coefficients for a tilt amount.
type Tilt struct {
	doubleRate float64
	lowRadians float64
	lowRange   float64
	highRad    float64
	highOffset float64
	lnHighGain float64
}

// NewTilt validates the corner frequencies (Hz) and linear shelf gains.
func NewTilt(sampleRate, lowHz, highHz, lowGain, highGain float64) (*Tilt, error) {
	switch {
	case sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0):
		return nil, fmt.Errorf("%w: sample rate %f", ErrInvalidParams, sampleRate)
	case lowHz <= 0 || highHz <= lowHz || highHz >= sampleRate*0.5:
		return nil, fmt.Errorf("%w: corners %f..%f Hz", ErrInvalidParams, lowHz, highHz)
	case lowGain < 1 || highGain < 1:
		return nil, fmt.Errorf("%w: shelf gains must be >= 1: %f, %f", ErrInvalidParams, lowGain, highGain)
	}

	lr := 2 * math.Pi * lowHz
	hr := 2 * math.Pi * highHz

	return &Tilt{
		doubleRate: 2 * sampleRate,
		lowRadians: lr,
		lowRange:   lr*lowGain - lr,
		highRad:    hr,
		highOffset: hr / highGain,
		lnHighGain: math.Log(highGain),
	}, nil
}

// Design returns the coefficients for tilt in [-1, 1].
func (t *Tilt) Design(tilt float64) biquad.Coefficients {
	d := t.doubleRate
	nt := tilt*0.5 + 0.5

	lowA := t.lowRange*nt + t.lowRadians
	lowB := t.lowRange*(1-nt) + t.lowRadians

	highA := mathExp(tilt * t.lnHighGain)
	highB := (t.highRad-t.highOffset)*nt + t.highOffset

	a0 := d * d
	a1 := (lowA + highB) * d
	a2 := lowA * highB
	b0 := highA * d * d
	b1 := (lowB*highA + highB) * d
	b2 := lowB * highB

	return bilinear(a0, a1, a2, b0, b1, b2)
}

// bilinear maps the pre-scaled analog polynomials to normalized digital
// coefficients.
func bilinear(a0, a1, a2, b0, b1, b2 float64) biquad.Coefficients {
	n := a0 + a1 + a2

	return biquad.Coefficients{
		B0: (b0 + b1 + b2) / n,
		B1: (2*b2 - 2*b0) / n,
		B2: (b2 - b1 + b0) / n,
		A1: (2*a2 - 2*a0) / n,
		A2: (a2 - a1 + a0) / n,
	}
}
