package reverb

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/filter/onepole"
)

// smoothed is the per-sample control set after smoothing and derivation.
type smoothed struct {
	reverse  float64
	predelay float64
	size     float64
	speed    float64
	depth    float64 // ms, signed
	absorb   float64
	diffuse  float64
	decay    float64
	tilt     float64
	shimmer  float64
	mix      float64
}

type smoothers struct {
	reverse, predelay, size, depth *onepole.Smoother
	absorb, tilt, shimmer, mix     *onepole.Smoother
}

func newSmoothers(sampleRate float64) smoothers {
	return smoothers{
		reverse:  onepole.NewSmoother(smoothReverseHz, sampleRate),
		predelay: onepole.NewSmoother(smoothPredelayHz, sampleRate),
		size:     onepole.NewSmoother(smoothSizeHz, sampleRate),
		depth:    onepole.NewSmoother(smoothDepthHz, sampleRate),
		absorb:   onepole.NewSmoother(smoothAbsorbHz, sampleRate),
		tilt:     onepole.NewSmoother(smoothTiltHz, sampleRate),
		shimmer:  onepole.NewSmoother(smoothShimmerHz, sampleRate),
		mix:      onepole.NewSmoother(smoothMixHz, sampleRate),
	}
}

// process smooths p. Speed and decay pass through. The absorb control is
// split into a diffusion amount over its lower third and an absorption
// amount over the rest.
func (s *smoothers) process(p Params) smoothed {
	absorb := s.absorb.Process(p.Absorb)

	return smoothed{
		reverse:  s.reverse.Process(p.Reverse),
		predelay: s.predelay.Process(p.Predelay),
		size:     s.size.Process(p.Size),
		speed:    p.Speed,
		depth:    s.depth.Process(p.Depth * math.Abs(p.Depth) * MaxDepth),
		absorb:   max(absorb-1.0/3, 0) * 1.5,
		diffuse:  min(absorb*3, 1) * 0.8,
		decay:    p.Decay,
		tilt:     s.tilt.Process(p.Tilt),
		shimmer:  s.shimmer.Process(p.Shimmer),
		mix:      s.mix.Process(p.Mix),
	}
}

func (s *smoothers) reset() {
	s.reverse.Reset()
	s.predelay.Reset()
	s.size.Reset()
	s.depth.Reset()
	s.absorb.Reset()
	s.tilt.Reset()
	s.shimmer.Reset()
	s.mix.Reset()
}
