package reverb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/interp"
	"github.com/cwbudde/algo-reverb/dsp/pan"
)

// DefaultSeed seeds the grain scatter when no WithSeed option is given.
const DefaultSeed uint64 = 0x5eed

type config struct {
	seed uint64
}

// Option configures a Reverb at construction.
type Option func(*config)

// WithSeed sets the seed of the grain random source. Engines built with the
// same seed and fed the same input produce identical output.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// Reverb is the stereo reverb engine. It is not safe for concurrent use;
// hand parameters from other goroutines through SharedParams.
type Reverb struct {
	sampleRate float64

	predelay *delay.Line
	reverse  *Reverse
	shimmer  *Shimmer
	taps     *Taps
	tilt     *TiltFilter
	smooth   smoothers
}

// New allocates an engine for sampleRate. All buffers are sized here; a new
// sample rate needs a new engine.
func New(sampleRate float64, opts ...Option) (*Reverb, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	cfg := config{seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	predelay, err := delay.New(MinPredelay+MaxPredelay, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("reverb: predelay: %w", err)
	}
	shimmer, err := NewShimmer(sampleRate)
	if err != nil {
		return nil, err
	}
	taps, err := NewTaps(sampleRate, cfg.seed)
	if err != nil {
		return nil, err
	}
	tilt, err := NewTiltFilter(sampleRate)
	if err != nil {
		return nil, err
	}

	return &Reverb{
		sampleRate: sampleRate,
		predelay:   predelay,
		reverse:    NewReverse(sampleRate),
		shimmer:    shimmer,
		taps:       taps,
		tilt:       tilt,
		smooth:     newSmoothers(sampleRate),
	}, nil
}

// SampleRate returns the rate the engine was built for.
func (r *Reverb) SampleRate() float64 { return r.sampleRate }

// Run processes one stereo frame. Controls are used as given; call
// Params.Clamp first when they come from an untrusted source.
func (r *Reverb) Run(left, right float64, p Params) (float64, float64) {
	s := r.smooth.process(p)

	x := r.readPredelay(s.reverse, s.predelay)
	r.predelay.Write((left + right) * monoGain)

	x = r.shimmer.Process(x, s.shimmer)

	wetL, wetR := r.taps.Process(x, s.size, s.speed, s.depth, s.diffuse, s.absorb, s.decay)
	wetL, wetR = r.tilt.Process(wetL, wetR, s.tilt)

	dry, wet := mixGains(s.mix)
	return left*dry + wetL*wet, right*dry + wetR*wet
}

// mixGains is the equal-power crossfade from dry (0) to wet (1).
func mixGains(mix float64) (dry, wet float64) {
	return pan.Gains(2*mix-1, pan.ConstantPower)
}

// readPredelay morphs between the straight and the reversed predelay read.
func (r *Reverb) readPredelay(reverse, timeMs float64) float64 {
	if reverse == 0 {
		return r.predelay.Read(timeMs, interp.Linear)
	}
	reversed := r.reverse.Process(r.predelay, timeMs)
	if reverse == 1 {
		return reversed
	}
	return core.Mix(r.predelay.Read(timeMs, interp.Linear), reversed, reverse)
}

// ProcessBlock processes left and right in place with p held for the block.
// Only the common length of the two slices is processed.
func (r *Reverb) ProcessBlock(left, right []float64, p Params) {
	n := min(len(left), len(right))
	for i := 0; i < n; i++ {
		left[i], right[i] = r.Run(left[i], right[i], p)
	}
}

// Reset clears every buffer and filter so the engine behaves like a freshly
// constructed one with the same seed.
func (r *Reverb) Reset() {
	r.predelay.Reset()
	r.reverse.Reset()
	r.shimmer.Reset()
	r.taps.Reset()
	r.tilt.Reset()
	r.smooth.reset()
}

// Taps exposes the delay network for inspection.
func (r *Reverb) Taps() *Taps { return r.taps }
