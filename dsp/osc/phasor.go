package osc

import "math"

// Phasor is a ramp oscillator producing a phase in [0, 1).
type Phasor struct {
	sampleRate float64
	phase      float64
}

// NewPhasor returns a phasor at phase 0.
func NewPhasor(sampleRate float64) *Phasor {
	return &Phasor{sampleRate: sampleRate}
}

// Process advances the phase by freqHz/sampleRate and returns the new phase.
// Negative frequencies run the ramp backwards.
func (p *Phasor) Process(freqHz float64) float64 {
	p.phase += freqHz / p.sampleRate
	p.phase -= math.Floor(p.phase)
	if p.phase >= 1 {
		p.phase = 0
	}
	return p.phase
}

// Phase returns the current phase.
func (p *Phasor) Phase() float64 { return p.phase }

// Reset returns the phase to 0.
func (p *Phasor) Reset() { p.phase = 0 }
