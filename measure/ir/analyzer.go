package ir

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// schroederFloorDB is reported where the remaining energy is exactly zero.
const schroederFloorDB = -200.0

// Metrics holds the decay and energy-ratio measures of one response.
type Metrics struct {
	RT60       float64 // seconds, from T30 or else T20
	EDT        float64 // seconds
	T20        float64 // seconds, -5 to -25 dB fit
	T30        float64 // seconds, -5 to -35 dB fit
	C50        float64 // dB
	C80        float64 // dB
	D50        float64 // ratio in [0, 1]
	CenterTime float64 // seconds
	PeakIndex  int
}

// Analyzer measures impulse responses recorded at SampleRate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer returns an analyzer for sampleRate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

func (a *Analyzer) check(ir []float64) error {
	if len(ir) == 0 {
		return ErrEmptyIR
	}
	if !(a.SampleRate > 0) {
		return ErrInvalidSampleRate
	}
	return nil
}

// Analyze measures ir from its absolute peak onwards, so leading silence
// such as a predelay does not bias the results.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if err := a.check(ir); err != nil {
		return Metrics{}, err
	}

	peak := peakIndex(ir)
	tail := ir[peak:]
	curve := schroeder(tail)

	m := Metrics{
		EDT:        a.fitDecay(curve, 0, -10),
		T20:        a.fitDecay(curve, -5, -25),
		T30:        a.fitDecay(curve, -5, -35),
		C50:        a.clarity(tail, 50),
		C80:        a.clarity(tail, 80),
		D50:        a.definition(tail, 50),
		CenterTime: a.centerTime(tail),
		PeakIndex:  peak,
	}
	m.RT60 = m.T30
	if m.RT60 == 0 {
		m.RT60 = m.T20
	}

	return m, nil
}

// SchroederIntegral returns the backward-integrated energy of ir in dB
// relative to its total energy.
func (a *Analyzer) SchroederIntegral(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}
	return schroeder(ir), nil
}

func schroeder(ir []float64) []float64 {
	curve := make([]float64, len(ir))

	energy := 0.0
	for i := len(ir) - 1; i >= 0; i-- {
		energy += ir[i] * ir[i]
		curve[i] = energy
	}

	total := curve[0]
	if total <= 0 {
		return curve
	}
	for i, e := range curve {
		if e <= 0 {
			curve[i] = schroederFloorDB
			continue
		}
		curve[i] = core.PowerToDB(e / total)
	}

	return curve
}

// RT60 returns the T30 reverberation time, or T20 when the response does
// not decay by 35 dB.
func (a *Analyzer) RT60(ir []float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	curve := schroeder(ir)
	if rt := a.fitDecay(curve, -5, -35); rt > 0 {
		return rt, nil
	}
	if rt := a.fitDecay(curve, -5, -25); rt > 0 {
		return rt, nil
	}
	return 0, ErrNoDecay
}

// fitDecay regresses the curve between fromDB and toDB and returns the time
// the fitted line needs to fall 60 dB, or 0 when the range is not reached.
func (a *Analyzer) fitDecay(curve []float64, fromDB, toDB float64) float64 {
	first, last := -1, -1
	for i, v := range curve {
		if first < 0 && v <= fromDB {
			first = i
		}
		if first >= 0 && v <= toDB {
			last = i
			break
		}
	}
	if first < 0 || last <= first {
		return 0
	}

	var sx, sy, sxx, sxy float64
	for i := first; i <= last; i++ {
		x := float64(i - first)
		y := curve[i]
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}

	n := float64(last - first + 1)
	den := n*sxx - sx*sx
	if den == 0 {
		return 0
	}

	slope := (n*sxy - sx*sy) / den // dB per sample
	if slope >= 0 {
		return 0
	}
	return -60 / (slope * a.SampleRate)
}

// split returns the energy before and after timeMs.
func (a *Analyzer) split(ir []float64, timeMs float64) (early, late float64) {
	boundary := int(math.Round(timeMs * a.SampleRate / 1000))
	for i, v := range ir {
		if i < boundary {
			early += v * v
		} else {
			late += v * v
		}
	}
	return early, late
}

// Clarity returns the early-to-late energy ratio at timeMs in dB.
func (a *Analyzer) Clarity(ir []float64, timeMs float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}
	if !(timeMs > 0) {
		return 0, ErrInvalidTime
	}
	return a.clarity(ir, timeMs), nil
}

func (a *Analyzer) clarity(ir []float64, timeMs float64) float64 {
	early, late := a.split(ir, timeMs)
	switch {
	case late <= 0:
		return math.Inf(1)
	case early <= 0:
		return math.Inf(-1)
	}
	return core.PowerToDB(early / late)
}

// Definition returns the share of the total energy arriving before timeMs.
func (a *Analyzer) Definition(ir []float64, timeMs float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}
	if !(timeMs > 0) {
		return 0, ErrInvalidTime
	}
	return a.definition(ir, timeMs), nil
}

func (a *Analyzer) definition(ir []float64, timeMs float64) float64 {
	early, late := a.split(ir, timeMs)
	if early+late <= 0 {
		return 0
	}
	return early / (early + late)
}

// CenterTime returns the energy centroid of ir in seconds.
func (a *Analyzer) CenterTime(ir []float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}
	return a.centerTime(ir), nil
}

func (a *Analyzer) centerTime(ir []float64) float64 {
	var weighted, total float64
	for i, v := range ir {
		e := v * v
		weighted += float64(i) * e
		total += e
	}
	if total <= 0 {
		return 0
	}
	return weighted / total / a.SampleRate
}

// Onset returns the index of the first sample within 20 dB of the peak,
// which for a rendered reverb is the end of the predelay.
func (a *Analyzer) Onset(ir []float64) (int, error) {
	if len(ir) == 0 {
		return 0, ErrEmptyIR
	}

	threshold := math.Abs(ir[peakIndex(ir)]) * 0.1
	for i, v := range ir {
		if math.Abs(v) >= threshold {
			return i, nil
		}
	}
	return 0, nil
}

func peakIndex(x []float64) int {
	idx, peak := 0, 0.0
	for i, v := range x {
		if av := math.Abs(v); av > peak {
			idx, peak = i, av
		}
	}
	return idx
}
