// Package allpass implements the Schroeder allpass diffuser used inside the
// feedback network.
package allpass

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/interp"
)

// Filter is a Schroeder allpass built on a delay line. For a delay of N
// samples and gain g its transfer function is (-k + z^-N) / (1 - k z^-N) with
// k = g/2, so the magnitude response is flat for |g| < 2.
type Filter struct {
	line *delay.Line
}

// New returns an allpass able to delay up to maxTimeMs.
func New(maxTimeMs, sampleRate float64) (*Filter, error) {
	line, err := delay.New(maxTimeMs, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("allpass: %w", err)
	}
	return &Filter{line: line}, nil
}

// Process filters one sample with a delay of timeMs and feedback gain.
func (f *Filter) Process(input, timeMs, gain float64) float64 {
	d := f.line.Read(timeMs, interp.Linear)
	k := gain * 0.5
	w := input + d*k
	f.line.Write(w)
	return d - w*k
}

// Reset clears the internal delay line.
func (f *Filter) Reset() {
	f.line.Reset()
}
