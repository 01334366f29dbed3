package reverb

import (
	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/interp"
	"github.com/cwbudde/algo-reverb/dsp/osc"
)

// Reverse plays a delay line backwards in windows of the delay time. Two
// read heads run half a window apart; each sweeps from 0 to twice the delay
// time, so relative to the write head it moves backwards at unit speed.
// The heads crossfade over MinPredelay.
type Reverse struct {
	phasor *osc.Phasor
}

// NewReverse returns a reverse reader for sampleRate.
func NewReverse(sampleRate float64) *Reverse {
	return &Reverse{phasor: osc.NewPhasor(sampleRate)}
}

// Process advances by one sample and returns the reversed signal read from
// line for a window of timeMs. The line must hold timeMs + MinPredelay.
func (r *Reverse) Process(line *delay.Line, timeMs float64) float64 {
	a := r.phasor.Process(1000/timeMs) * 2
	b := a + 1
	if b >= 2 {
		b -= 2
	}

	xf := timeMs / MinPredelay
	rampUp := min(a*xf, 1)
	rampDown := core.Clamp((1/xf+1-a)*xf, 0, 1)
	gainA := rampUp * rampDown
	gainB := 1 - gainA

	out := 0.0
	if gainA != 0 {
		out += line.Read(a*timeMs, interp.Linear) * gainA
	}
	if gainB != 0 {
		out += line.Read(b*timeMs, interp.Linear) * gainB
	}
	return out
}

// Reset restarts the window.
func (r *Reverse) Reset() {
	r.phasor.Reset()
}
