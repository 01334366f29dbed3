package reverb

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/interp"
	"github.com/cwbudde/algo-reverb/dsp/osc"
)

// FadeThreshold is the grain depth in ms below which granular reads blend
// towards the static read, so depth 0⁺ meets depth 0 without a jump.
const FadeThreshold = MaxDepth * 0.05

type grain struct {
	start     float64
	lastPhase float64
}

// grains runs two overlapping windowed reads half a cycle apart. Each grain
// picks a new random start offset when its phase wraps, which is where its
// window is zero.
type grains struct {
	g            [2]grain
	src          *rand.PCG
	rng          *rand.Rand
	seed, stream uint64
}

func newGrains(seed, stream uint64) grains {
	src := rand.NewPCG(seed, stream)
	return grains{src: src, rng: rand.New(src), seed: seed, stream: stream}
}

func (gs *grains) read(line *delay.Line, baseMs, lfoPhase, depth float64) float64 {
	sum := 0.0
	for i := range gs.g {
		g := &gs.g[i]

		phase := lfoPhase + float64(i)*0.5
		if phase >= 1 {
			phase--
		}
		if phase-g.lastPhase < 0 {
			g.start = gs.rng.Float64() * depth
		}
		g.lastPhase = phase

		sum += line.Read(baseMs+g.start, interp.Linear) * osc.Window(phase)
	}

	if depth < FadeThreshold {
		static := line.Read(baseMs, interp.Linear)
		return core.Mix(static, sum, depth/FadeThreshold)
	}

	return sum
}

// reset restarts the grains and rewinds the random sequence.
func (gs *grains) reset() {
	gs.g = [2]grain{}
	gs.src.Seed(gs.seed, gs.stream)
}
