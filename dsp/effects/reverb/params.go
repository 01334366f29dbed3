package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/param"
)

// Params holds the plain control values for one call to Run.
type Params struct {
	Reverse  float64 // 0 straight predelay, 1 reversed
	Predelay float64 // ms
	Size     float64 // ms
	Speed    float64 // Hz
	Depth    float64 // -1 vibrato .. 0 static .. 1 grains
	Absorb   float64
	Decay    float64
	Tilt     float64
	Shimmer  float64
	Mix      float64
}

// ParamID identifies a control.
type ParamID int

const (
	ParamReverse ParamID = iota
	ParamPredelay
	ParamSize
	ParamSpeed
	ParamDepth
	ParamAbsorb
	ParamDecay
	ParamTilt
	ParamShimmer
	ParamMix

	numParams
)

// Descriptor describes a control for hosts and tooling.
type Descriptor struct {
	ID      ParamID
	Name    string
	Unit    string
	Range   param.Range
	Default float64
}

var descriptors = [numParams]Descriptor{
	{ParamReverse, "Reverse", "", param.LinearRange(0, 1), 0},
	{ParamPredelay, "Predelay", "ms", param.SkewedRange(MinPredelay, MaxPredelay, 0.5), MinPredelay},
	{ParamSize, "Size", "ms", param.SkewedRange(MinSize, MaxSize, 0.333333), 80},
	{ParamSpeed, "Speed", "Hz", param.SkewedRange(0.02, 150, 0.333333), 2},
	{ParamDepth, "Depth", "", param.LinearRange(-1, 1), -0.25},
	{ParamAbsorb, "Absorb", "", param.LinearRange(0, 1), 0.5},
	{ParamDecay, "Decay", "", param.LinearRange(0, 1.2), 0.9},
	{ParamTilt, "Tilt", "", param.LinearRange(-1, 1), 0},
	{ParamShimmer, "Shimmer", "", param.LinearRange(0, 1), 0},
	{ParamMix, "Mix", "", param.LinearRange(0, 1), 0.5},
}

// Descriptors returns every control in ParamID order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, numParams)
	copy(out, descriptors[:])
	return out
}

// Describe returns the descriptor for id.
func Describe(id ParamID) (Descriptor, error) {
	if id < 0 || id >= numParams {
		return Descriptor{}, fmt.Errorf("%w: %d", ErrUnknownParam, id)
	}
	return descriptors[id], nil
}

func (id ParamID) String() string {
	if id < 0 || id >= numParams {
		return fmt.Sprintf("ParamID(%d)", int(id))
	}
	return descriptors[id].Name
}

// DefaultParams returns the default setting of every control.
func DefaultParams() Params {
	var p Params
	for _, d := range descriptors {
		*p.field(d.ID) = d.Default
	}
	return p
}

// Clamp returns p with every control limited to its range.
func (p Params) Clamp() Params {
	for _, d := range descriptors {
		f := p.field(d.ID)
		*f = d.Range.Clamp(*f)
	}
	return p
}

// Get returns the value of id. It panics if id is not a defined ParamID.
func (p *Params) Get(id ParamID) float64 {
	return *p.field(id)
}

// Set stores v for id without clamping. It panics if id is not a defined
// ParamID.
func (p *Params) Set(id ParamID, v float64) {
	*p.field(id) = v
}

func (p *Params) field(id ParamID) *float64 {
	switch id {
	case ParamReverse:
		return &p.Reverse
	case ParamPredelay:
		return &p.Predelay
	case ParamSize:
		return &p.Size
	case ParamSpeed:
		return &p.Speed
	case ParamDepth:
		return &p.Depth
	case ParamAbsorb:
		return &p.Absorb
	case ParamDecay:
		return &p.Decay
	case ParamTilt:
		return &p.Tilt
	case ParamShimmer:
		return &p.Shimmer
	case ParamMix:
		return &p.Mix
	default:
		panic(fmt.Sprintf("reverb: unknown parameter %d", id))
	}
}

// SharedParams lets a control thread publish values that the audio thread
// reads with Snapshot. Each scalar is stored atomically; a snapshot may mix
// values from before and after a concurrent update of different controls.
// SharedParams must not be copied after first use.
type SharedParams struct {
	values [numParams]param.Value
}

// NewSharedParams returns shared storage holding p, clamped.
func NewSharedParams(p Params) *SharedParams {
	s := &SharedParams{}
	p = p.Clamp()
	for id := ParamID(0); id < numParams; id++ {
		s.values[id].Store(p.Get(id))
	}
	return s
}

// Set stores v for id, clamped to the control's range.
func (s *SharedParams) Set(id ParamID, v float64) error {
	d, err := Describe(id)
	if err != nil {
		return err
	}
	s.values[id].Store(d.Range.Clamp(v))
	return nil
}

// SetNormalized stores the plain value for normalized v in [0, 1].
func (s *SharedParams) SetNormalized(id ParamID, v float64) error {
	d, err := Describe(id)
	if err != nil {
		return err
	}
	s.values[id].Store(d.Range.Unnormalize(v))
	return nil
}

// Get returns the current plain value of id.
func (s *SharedParams) Get(id ParamID) (float64, error) {
	if _, err := Describe(id); err != nil {
		return 0, err
	}
	return s.values[id].Load(), nil
}

// Normalized returns the current value of id mapped to [0, 1].
func (s *SharedParams) Normalized(id ParamID) (float64, error) {
	d, err := Describe(id)
	if err != nil {
		return 0, err
	}
	return d.Range.Normalize(s.values[id].Load()), nil
}

// Snapshot loads every control.
func (s *SharedParams) Snapshot() Params {
	var p Params
	for id := ParamID(0); id < numParams; id++ {
		p.Set(id, s.values[id].Load())
	}
	return p
}
