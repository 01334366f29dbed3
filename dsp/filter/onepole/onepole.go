package onepole

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// Mode selects how the control value of Process maps to the filter coefficient.
type Mode int

const (
	// Hertz interprets the value as a cutoff frequency.
	Hertz Mode = iota
	// Linear interprets the value as the amount of the previous output kept.
	Linear
)

// Filter is a one-pole lowpass with a per-sample control value.
type Filter struct {
	sampleRate float64
	z          float64
}

// New returns a filter for sampleRate with zero state.
func New(sampleRate float64) *Filter {
	return &Filter{sampleRate: sampleRate}
}

// Coefficient returns the input weight for value in mode.
func (f *Filter) Coefficient(value float64, mode Mode) float64 {
	if mode == Linear {
		return 1 - value
	}
	return core.Clamp(math.Sin(2*math.Pi*value/f.sampleRate), 0, 1)
}

// Process filters one sample.
func (f *Filter) Process(input, value float64, mode Mode) float64 {
	c := f.Coefficient(value, mode)
	f.z = f.z*(1-c) + input*c
	return f.z
}

// Value returns the last output.
func (f *Filter) Value() float64 { return f.z }

// Prime sets the state to v.
func (f *Filter) Prime(v float64) { f.z = v }

// Reset clears the state.
func (f *Filter) Reset() { f.z = 0 }

// settleThreshold is the distance at which a Smoother lands on its target.
// Without it a glide towards 0 stalls on a subnormal value.
const settleThreshold = 1e-9

// Smoother glides a control value towards its target with a fixed cutoff.
// The first value after construction or Reset is taken as-is, and the glide
// ends exactly on the target.
type Smoother struct {
	coeff  float64
	z      float64
	primed bool
}

// NewSmoother returns a smoother with cutoffHz at sampleRate.
func NewSmoother(cutoffHz, sampleRate float64) *Smoother {
	return &Smoother{coeff: core.Clamp(math.Sin(2*math.Pi*cutoffHz/sampleRate), 0, 1)}
}

// Process moves one sample towards target and returns the smoothed value.
func (s *Smoother) Process(target float64) float64 {
	if !s.primed {
		s.z = target
		s.primed = true
		return s.z
	}
	if s.z == target {
		return s.z
	}
	s.z = s.z*(1-s.coeff) + target*s.coeff
	if math.Abs(target-s.z) < settleThreshold {
		s.z = target
	}
	return s.z
}

// Coefficient returns the fraction of the remaining distance covered per
// sample, which bounds the per-sample change of the output.
func (s *Smoother) Coefficient() float64 { return s.coeff }

// Value returns the current smoothed value.
func (s *Smoother) Value() float64 { return s.z }

// Reset clears the state; the next Process primes again.
func (s *Smoother) Reset() {
	s.z = 0
	s.primed = false
}
