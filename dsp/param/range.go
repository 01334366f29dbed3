package param

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// Kind selects the mapping between plain and normalized values.
type Kind int

const (
	// Linear maps proportionally.
	Linear Kind = iota
	// Skewed raises the proportion to Factor. Factors below one give the low
	// end of the range more travel.
	Skewed
	// AsymmetricalSkewed pins Center to 0.5 and skews each half with its own
	// factor.
	AsymmetricalSkewed
)

// Range describes the plain value range of a control.
type Range struct {
	Kind Kind
	Min  float64
	Max  float64

	// Factor is the skew of Skewed ranges.
	Factor float64

	// Center, BelowFactor and AboveFactor configure AsymmetricalSkewed.
	Center      float64
	BelowFactor float64
	AboveFactor float64
}

// LinearRange returns a Linear range.
func LinearRange(lo, hi float64) Range {
	return Range{Kind: Linear, Min: lo, Max: hi}
}

// SkewedRange returns a Skewed range.
func SkewedRange(lo, hi, factor float64) Range {
	return Range{Kind: Skewed, Min: lo, Max: hi, Factor: factor}
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return core.Clamp(v, r.Min, r.Max)
}

// Normalize maps a plain value to [0, 1]. Out-of-range values are clamped.
func (r Range) Normalize(v float64) float64 {
	p := (r.Clamp(v) - r.Min) / (r.Max - r.Min)

	switch r.Kind {
	case Skewed:
		return math.Pow(p, r.Factor)
	case AsymmetricalSkewed:
		c := r.centerProportion()
		if p > c {
			return math.Pow((p-c)/(1-c), r.AboveFactor)*0.5 + 0.5
		}
		return (1 - math.Pow((c-p)/c, r.BelowFactor)) * 0.5
	default:
		return p
	}
}

// Unnormalize maps a value in [0, 1] back to the plain range.
func (r Range) Unnormalize(n float64) float64 {
	n = core.Clamp(n, 0, 1)

	var p float64
	switch r.Kind {
	case Skewed:
		p = math.Pow(n, 1/r.Factor)
	case AsymmetricalSkewed:
		c := r.centerProportion()
		if n > 0.5 {
			p = math.Pow((n-0.5)*2, 1/r.AboveFactor)*(1-c) + c
		} else {
			p = (1 - math.Pow((0.5-n)*2, 1/r.BelowFactor)) * c
		}
	default:
		p = n
	}

	return p*(r.Max-r.Min) + r.Min
}

func (r Range) centerProportion() float64 {
	return (r.Center - r.Min) / (r.Max - r.Min)
}
