package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/interp"
	"github.com/cwbudde/algo-reverb/dsp/osc"
)

const (
	shimmerWindowMs = 200.0
	shimmerRateHz   = -5.0
)

// Shimmer adds an octave-up copy of its input. Two grains sweep a 200 ms
// line towards the write head at twice real time, windowed by sin² and half
// a cycle apart so their envelopes sum to one.
type Shimmer struct {
	line   *delay.Line
	phasor *osc.Phasor
}

// NewShimmer allocates the grain buffer for sampleRate.
func NewShimmer(sampleRate float64) (*Shimmer, error) {
	line, err := delay.New(shimmerWindowMs, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("reverb: shimmer: %w", err)
	}
	return &Shimmer{line: line, phasor: osc.NewPhasor(sampleRate)}, nil
}

// Process blends the pitch-shifted grains into x by amount. The input is
// always recorded so raising the amount starts from a full buffer.
func (s *Shimmer) Process(x, amount float64) float64 {
	out := x
	if amount > 0 {
		phase := s.phasor.Process(shimmerRateHz)
		grains := 0.0
		for i := 0; i < 2; i++ {
			p := phase + float64(i)*0.5
			if p >= 1 {
				p--
			}
			grains += s.line.Read(p*shimmerWindowMs, interp.Linear) * osc.Window(p)
		}
		out = core.Mix(x, grains, amount)
	}
	s.line.Write(x)
	return out
}

// Reset clears the buffer.
func (s *Shimmer) Reset() {
	s.line.Reset()
	s.phasor.Reset()
}
