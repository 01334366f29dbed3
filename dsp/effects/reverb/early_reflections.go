package reverb

import (
	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/pan"
)

const (
	lastReflectionGain = 0.501187 // -6 dB
	largeRoomGain      = 0.251189 // -12 dB
)

// earlyReflections lists the read positions, as fractions of size, of the
// reflections taken from taps 0 and 1.
var earlyReflections = [2][6]float64{
	{0, 0.188, 0.278, 0.38, 0.482, 0.584},
	{0.018, 0.086, 0.29, 0.392, 0.494, 0.597},
}

// reflectionPans places every reflection of a tap. Tap 0 is hard left and
// tap 1 hard right.
var reflectionPans = [2]float64{-1, 1}

type reflection struct {
	fraction    float64
	left, right float64 // gain times pan law
}

// EarlyReflections renders the early echo cluster from the first two taps.
type EarlyReflections struct {
	gains       [6]float64
	reflections [2][6]reflection
}

// NewEarlyReflections precomputes the per-reflection gains and pan laws.
func NewEarlyReflections() *EarlyReflections {
	er := &EarlyReflections{}
	for i := range er.gains {
		er.gains[i] = reflectionGain(i)
	}
	for t, fractions := range earlyReflections {
		l, r := pan.Gains(reflectionPans[t], pan.ConstantPower)
		for i, f := range fractions {
			er.reflections[t][i] = reflection{
				fraction: f,
				left:     er.gains[i] * l,
				right:    er.gains[i] * r,
			}
		}
	}
	return er
}

// reflectionGain falls linearly from 0 dB for the first reflection to -6 dB
// for the last.
func reflectionGain(i int) float64 {
	return 1 - float64(i)/5*(1-lastReflectionGain)
}

// SizeGain attenuates the cluster as the room grows, down to -12 dB at
// MaxSize.
func SizeGain(size float64) float64 {
	return core.Rescale(size, MinSize, MaxSize, 1, largeRoomGain)
}

// Process reads all reflections for size (ms), pans each one and returns the
// stereo sum.
func (er *EarlyReflections) Process(size float64, taps *[NumTaps]*Tap) (float64, float64) {
	var left, right float64
	for t := range er.reflections {
		for _, r := range er.reflections[t] {
			x := taps[t].ReadEarlyReflection(size, r.fraction)
			left += x * r.left
			right += x * r.right
		}
	}

	g := SizeGain(size)
	return left * g, right * g
}
