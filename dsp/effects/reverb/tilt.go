package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/filter/biquad"
	"github.com/cwbudde/algo-reverb/dsp/filter/design/shelving"
)

// TiltFilter applies the tilt equalizer to both channels. Coefficients are
// redesigned only when the tilt value changes.
type TiltFilter struct {
	design *shelving.Tilt
	stereo *biquad.Stereo
	last   float64
}

// NewTiltFilter builds the filter for sampleRate.
func NewTiltFilter(sampleRate float64) (*TiltFilter, error) {
	d, err := shelving.NewTilt(sampleRate, tiltLowHz, tiltHighHz,
		core.DBToLinear(tiltLowGainDB), core.DBToLinear(tiltHighGainDB))
	if err != nil {
		return nil, fmt.Errorf("reverb: tilt: %w", err)
	}
	return &TiltFilter{design: d, stereo: biquad.NewStereo()}, nil
}

// Process filters one frame. tilt 0 returns the input untouched and drops
// the filter state, so leaving bypass starts from silence.
func (f *TiltFilter) Process(left, right, tilt float64) (float64, float64) {
	if tilt == 0 {
		if f.last != 0 {
			f.Reset()
		}
		return left, right
	}
	if tilt != f.last {
		f.stereo.SetCoefficients(f.design.Design(tilt))
		f.last = tilt
	}
	return f.stereo.ProcessSample(left, right)
}

// Coefficients returns the biquad for tilt without touching the filter state.
func (f *TiltFilter) Coefficients(tilt float64) biquad.Coefficients {
	return f.design.Design(tilt)
}

// Reset clears the biquad state.
func (f *TiltFilter) Reset() {
	f.stereo.Reset()
	f.stereo.SetCoefficients(biquad.Identity())
	f.last = 0
}
