package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/filter/allpass"
	"github.com/cwbudde/algo-reverb/dsp/filter/onepole"
	"github.com/cwbudde/algo-reverb/dsp/interp"
	"github.com/cwbudde/algo-reverb/dsp/osc"
)

// Tap is one branch of the delay network.
type Tap struct {
	fraction   float64
	diffuserMs float64
	lfoOffset  float64

	line    *delay.Line
	diffuse *allpass.Filter
	absorb  *onepole.Filter
	grains  grains
}

// NewTap returns the branch with index i of the network. The delay line
// holds maxFraction·MaxSize plus the modulation excursion, where maxFraction
// also covers early reflections read from this branch.
func NewTap(sampleRate float64, i int, seed uint64) (*Tap, error) {
	if i < 0 || i >= NumTaps {
		return nil, fmt.Errorf("reverb: tap index out of range: %d", i)
	}

	reach := TapFractions[i]
	if i < len(earlyReflections) {
		for _, f := range earlyReflections[i] {
			reach = max(reach, f)
		}
	}

	line, err := delay.New(MaxSize*reach+MaxDepth, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("reverb: tap %d: %w", i, err)
	}
	diffuse, err := allpass.New(DiffuserTimes[i], sampleRate)
	if err != nil {
		return nil, fmt.Errorf("reverb: tap %d: %w", i, err)
	}

	return &Tap{
		fraction:   TapFractions[i],
		diffuserMs: DiffuserTimes[i],
		lfoOffset:  LFOPhaseOffset[i],
		line:       line,
		diffuse:    diffuse,
		absorb:     onepole.New(sampleRate),
		grains:     newGrains(seed, uint64(i)+1),
	}, nil
}

// Read returns the delayed signal for the current size (ms), shared LFO
// phase and depth (ms). Depth 0 reads statically, negative depth adds a
// sine vibrato of |depth| ms, positive depth reads two grains scattered
// over depth ms.
func (t *Tap) Read(size, lfoPhase, depth float64) float64 {
	base := t.fraction * size

	switch {
	case depth == 0:
		return t.line.Read(base, interp.Linear)
	case depth < 0:
		return t.line.Read(base+osc.Sine(lfoPhase+t.lfoOffset)*-depth, interp.Linear)
	default:
		return t.grains.read(t.line, base, lfoPhase, depth)
	}
}

// ReadEarlyReflection reads at fraction·size ms.
func (t *Tap) ReadEarlyReflection(size, fraction float64) float64 {
	if fraction == 0 {
		return t.line.Read(0, interp.Step)
	}
	return t.line.Read(fraction*size, interp.Linear)
}

// ApplySaturation blends x with its soft-clipped copy by gate and scales by
// decay·0.5, which with the matrix gain of 2 makes decay the loop gain.
func (t *Tap) ApplySaturation(x, decay, gate float64) float64 {
	if gate > 0 {
		x = x*(1-gate) + softClip(x)*gate
	}
	return x * decay * 0.5
}

// ApplyAbsorb runs the absorption lowpass; amount 0 passes, 1 holds.
func (t *Tap) ApplyAbsorb(x, amount float64) float64 {
	return t.absorb.Process(x, amount, onepole.Linear)
}

// ApplyDiffuse runs the allpass diffuser with the given gain.
func (t *Tap) ApplyDiffuse(x, gain float64) float64 {
	return t.diffuse.Process(x, t.diffuserMs, gain)
}

// Write feeds x back into the branch.
func (t *Tap) Write(x float64) {
	t.line.Write(x)
}

// Fraction returns the branch's share of the size control.
func (t *Tap) Fraction() float64 { return t.fraction }

// Reset clears all branch state.
func (t *Tap) Reset() {
	t.line.Reset()
	t.diffuse.Reset()
	t.absorb.Reset()
	t.grains.reset()
}
