package param

import (
	"math"
	"sync/atomic"
)

// Value is a float64 that one goroutine may store while another loads it,
// as between a control thread and the audio thread.
type Value struct {
	bits atomic.Uint64
}

// NewValue returns a Value holding v.
func NewValue(v float64) *Value {
	p := &Value{}
	p.Store(v)
	return p
}

// Load returns the current value.
func (p *Value) Load() float64 {
	return math.Float64frombits(p.bits.Load())
}

// Store replaces the current value.
func (p *Value) Store(v float64) {
	p.bits.Store(math.Float64bits(v))
}
