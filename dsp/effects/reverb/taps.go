package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/osc"
)

// Taps is the feedback delay network: four branches, the feedback matrix,
// the shared LFO, early reflections and the saturation gate.
type Taps struct {
	taps       [NumTaps]*Tap
	lfo        *osc.Phasor
	early      *EarlyReflections
	saturation *SaturationActivator
}

// NewTaps allocates the network for sampleRate. seed drives the grain
// scatter of every branch.
func NewTaps(sampleRate float64, seed uint64) (*Taps, error) {
	n := &Taps{
		lfo:        osc.NewPhasor(sampleRate),
		early:      NewEarlyReflections(),
		saturation: NewSaturationActivator(sampleRate),
	}

	for i := range n.taps {
		t, err := NewTap(sampleRate, i, seed)
		if err != nil {
			return nil, fmt.Errorf("reverb: network: %w", err)
		}
		n.taps[i] = t
	}

	return n, nil
}

// applyMatrix returns FeedbackMatrix·v.
func applyMatrix(v [NumTaps]float64) [NumTaps]float64 {
	var out [NumTaps]float64
	for i, row := range FeedbackMatrix {
		for j, m := range row {
			out[i] += m * v[j]
		}
	}
	return out
}

// Process runs one sample through the network. size and depth are in ms,
// speed in Hz; diffuse, absorb and decay are the per-branch amounts.
func (n *Taps) Process(input, size, speed, depth, diffuse, absorb, decay float64) (float64, float64) {
	erLeft, erRight := n.early.Process(size, &n.taps)

	phase := n.lfo.Process(speed)
	var reads [NumTaps]float64
	for i, t := range n.taps {
		reads[i] = t.Read(size, phase, depth)
	}

	fed := applyMatrix(reads)
	gate := n.saturation.Gate()

	for i, t := range n.taps {
		x := t.ApplySaturation(fed[i], decay, gate)
		if i < 2 {
			x += input
		}
		x = t.ApplyAbsorb(x, absorb)
		x = t.ApplyDiffuse(x, diffuse)
		t.Write(core.FlushDenormals(x))
	}

	left := reads[0] + reads[2]
	right := reads[1] + reads[3]
	n.saturation.Observe(left, right)

	return (left + erLeft) * 0.5, (right + erRight) * 0.5
}

// Tap returns branch i.
func (n *Taps) Tap(i int) *Tap { return n.taps[i] }

// Saturation returns the activator so callers can inspect its state.
func (n *Taps) Saturation() *SaturationActivator { return n.saturation }

// Reset clears the network.
func (n *Taps) Reset() {
	for _, t := range n.taps {
		t.Reset()
	}
	n.lfo.Reset()
	n.saturation.Reset()
}
