package osc

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-reverb/dsp/window"
)

// TableSize is the number of points in the Hann wavetable.
const TableSize = 1024

var (
	hannOnce  sync.Once
	hannTable []float64
)

// HannTable returns the shared periodic Hann table. It is built on first use
// and must not be modified.
func HannTable() []float64 {
	hannOnce.Do(func() {
		hannTable = window.Generate(window.TypeHann, TableSize, window.WithPeriodic())
	})
	return hannTable
}

func lookup(table []float64, phase float64) float64 {
	pos := (phase - math.Floor(phase)) * TableSize
	i := int(pos)
	t := pos - float64(i)
	if i >= TableSize {
		i -= TableSize
	}
	j := i + 1
	if j == TableSize {
		j = 0
	}
	return table[i] + t*(table[j]-table[i])
}

// Window returns sin²(π·phase), the grain envelope.
func Window(phase float64) float64 {
	return lookup(HannTable(), phase)
}

// Sine returns 0.5 + 0.5·sin(2π·phase).
func Sine(phase float64) float64 {
	return lookup(HannTable(), phase+0.25)
}
