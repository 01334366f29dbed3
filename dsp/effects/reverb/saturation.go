package reverb

import (
	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/filter/onepole"
)

const (
	saturationThreshold = 0.25
	saturationWindowSec = 0.2
	saturationSmoothHz  = 1.0
)

// SaturationActivator opens the saturation gate while the running RMS of
// the network output exceeds the threshold. The detector averages over
// 200 ms, so a lone peak above the threshold leaves the gate shut. The gate
// moves through a 1 Hz one-pole so it fades in and out over roughly a second.
type SaturationActivator struct {
	squares []float64
	pos     int
	sum     float64
	rms     float64
	gate    *onepole.Filter
}

// NewSaturationActivator sizes the RMS window for sampleRate.
func NewSaturationActivator(sampleRate float64) *SaturationActivator {
	n := max(int(sampleRate*saturationWindowSec), 1)
	return &SaturationActivator{
		squares: make([]float64, n),
		gate:    onepole.New(sampleRate),
	}
}

// Observe feeds one stereo output frame into the RMS window.
func (s *SaturationActivator) Observe(left, right float64) {
	x := (left + right) * 0.5
	sq := x * x

	s.sum += sq - s.squares[s.pos]
	s.squares[s.pos] = sq
	s.pos++
	if s.pos == len(s.squares) {
		s.pos = 0
	}

	if s.sum <= 0 {
		s.rms = 0
		return
	}
	s.rms = mathSqrt(s.sum / float64(len(s.squares)))
}

// RMS returns the last computed running RMS.
func (s *SaturationActivator) RMS() float64 { return s.rms }

// Gate advances the smoothed gate by one sample and returns it.
func (s *SaturationActivator) Gate() float64 {
	target := 0.0
	if s.rms > saturationThreshold {
		target = 1
	}
	return s.gate.Process(target, saturationSmoothHz, onepole.Hertz)
}

// Reset clears the window and closes the gate.
func (s *SaturationActivator) Reset() {
	core.Zero(s.squares)
	s.pos = 0
	s.sum = 0
	s.rms = 0
	s.gate.Reset()
}

// softClip is a rational tanh approximation, exact to about 1e-4 inside
// |x| < 3 and clamped to ±1 beyond.
func softClip(x float64) float64 {
	x2 := x * x
	y := x * (135135 + x2*(17325+x2*(378+x2))) / (135135 + x2*(62370+x2*(3150+28*x2)))
	switch {
	case y > 1:
		return 1
	case y < -1:
		return -1
	default:
		return y
	}
}
