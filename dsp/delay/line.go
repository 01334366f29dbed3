package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/interp"
)

// guard is the number of extra samples kept beyond the longest addressable
// delay so the 4-point kernels never read across the write cursor.
const guard = 4

// Line is a circular delay line addressed in milliseconds.
type Line struct {
	buffer       []float64
	writePos     int
	sampleRate   float64
	samplesPerMs float64
}

// New returns a delay line able to read back at least maxTimeMs milliseconds
// with any interpolation mode.
func New(maxTimeMs, sampleRate float64) (*Line, error) {
	if maxTimeMs < 0 || math.IsNaN(maxTimeMs) || math.IsInf(maxTimeMs, 0) {
		return nil, fmt.Errorf("%w: max time %f", ErrInvalidTime, maxTimeMs)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	size := int(math.Ceil(maxTimeMs*sampleRate/1000)) + guard

	return NewSamples(size, sampleRate)
}

// NewSamples returns a delay line of fixed size in samples.
func NewSamples(size int, sampleRate float64) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidTime, size)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	return &Line{
		buffer:       make([]float64, size),
		sampleRate:   sampleRate,
		samplesPerMs: sampleRate / 1000,
	}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// SampleRate returns the sample rate used for millisecond addressing.
func (d *Line) SampleRate() float64 {
	return d.sampleRate
}

// MaxTime returns the longest delay in milliseconds that every mode can read.
func (d *Line) MaxTime() float64 {
	return float64(len(d.buffer)-guard) / d.samplesPerMs
}

// Write writes one sample.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// ReadSamples reads an integer delay in samples. A delay of 0 returns the
// most recently written sample.
func (d *Line) ReadSamples(delay int) float64 {
	return d.at(d.writePos - 1 - delay)
}

// Read reads the sample written timeMs milliseconds before the most recent
// one, interpolated with mode. Reading beyond MaxTime is not checked.
func (d *Line) Read(timeMs float64, mode interp.Mode) float64 {
	pos := float64(d.writePos-1+len(d.buffer)) - timeMs*d.samplesPerMs
	i := int(pos)
	t := pos - float64(i)

	switch mode {
	case interp.Step:
		return d.at(i)
	case interp.Cosine:
		return interp.Cosine2(t, d.at(i), d.at(i+1))
	case interp.Cubic:
		return interp.Lagrange4(t, d.at(i-1), d.at(i), d.at(i+1), d.at(i+2))
	case interp.Spline:
		return interp.Hermite4(t, d.at(i-1), d.at(i), d.at(i+1), d.at(i+2))
	default:
		return interp.Linear2(t, d.at(i), d.at(i+1))
	}
}

// Reset clears line state.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}

func (d *Line) at(i int) float64 {
	n := len(d.buffer)
	for i >= n {
		i -= n
	}
	for i < 0 {
		i += n
	}
	return d.buffer[i]
}
