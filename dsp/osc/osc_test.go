package osc

import (
	"math"
	"testing"
)

func TestPhasorAdvances(t *testing.T) {
	p := NewPhasor(1000)

	for i := 1; i <= 10; i++ {
		got := p.Process(100)
		want := math.Mod(float64(i)*0.1, 1)
		d := math.Abs(got - want)
		if d > 0.5 {
			d = 1 - d
		}
		if d > 1e-12 {
			t.Fatalf("step %d: got %v want %v", i, got, want)
		}
	}
}

func TestPhasorStaysInRange(t *testing.T) {
	for _, freq := range []float64{-5, -2000, 0.02, 150, 7777} {
		p := NewPhasor(48000)
		for i := 0; i < 10000; i++ {
			ph := p.Process(freq)
			if ph < 0 || ph >= 1 {
				t.Fatalf("freq %v step %d: phase %v out of [0,1)", freq, i, ph)
			}
		}
	}
}

func TestPhasorNegativeFrequencyWraps(t *testing.T) {
	p := NewPhasor(100)

	if got := p.Process(-25); math.Abs(got-0.75) > 1e-12 {
		t.Fatalf("first step: got %v want 0.75", got)
	}
	if got := p.Process(-25); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("second step: got %v want 0.5", got)
	}

	p.Reset()
	if p.Phase() != 0 {
		t.Fatalf("Reset: phase %v", p.Phase())
	}
}

func TestHannTableShared(t *testing.T) {
	a := HannTable()
	b := HannTable()

	if len(a) != TableSize {
		t.Fatalf("len=%d want %d", len(a), TableSize)
	}
	if &a[0] != &b[0] {
		t.Fatal("table should be built once")
	}
}

func TestWindowAccuracy(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		ph := float64(i) / 1000
		s := math.Sin(math.Pi * ph)
		if got := Window(ph); math.Abs(got-s*s) > 1e-5 {
			t.Fatalf("phase %v: got %v want %v", ph, got, s*s)
		}
	}
}

func TestSineAccuracy(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		ph := float64(i)/500 - 1
		want := 0.5 + 0.5*math.Sin(2*math.Pi*ph)
		if got := Sine(ph); math.Abs(got-want) > 1e-5 {
			t.Fatalf("phase %v: got %v want %v", ph, got, want)
		}
	}
}

func TestGrainWindowsSumToOne(t *testing.T) {
	for i := 0; i < 1000; i++ {
		ph := float64(i) / 1000
		if got := Window(ph) + Window(ph+0.5); math.Abs(got-1) > 1e-5 {
			t.Fatalf("phase %v: overlap sum %v", ph, got)
		}
	}
}

func BenchmarkSine(b *testing.B) {
	p := NewPhasor(48000)
	for i := 0; i < b.N; i++ {
		_ = Sine(p.Process(2))
	}
}
