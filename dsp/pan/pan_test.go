package pan

import (
	"math"
	"testing"
)

func TestConstantPowerKeepsPower(t *testing.T) {
	for i := -10; i <= 10; i++ {
		p := float64(i) / 10
		l, r := Gains(p, ConstantPower)
		if got := l*l + r*r; math.Abs(got-1) > 1e-12 {
			t.Fatalf("pan %v: power %v", p, got)
		}
	}
}

func TestLawEndpoints(t *testing.T) {
	tests := []struct {
		name        string
		pan         float64
		law         Law
		left, right float64
	}{
		{"constant power left", -1, ConstantPower, 1, 0},
		{"constant power center", 0, ConstantPower, math.Sqrt2 / 2, math.Sqrt2 / 2},
		{"constant power right", 1, ConstantPower, 0, 1},
		{"linear left", -1, Linear, 1, 0},
		{"linear center", 0, Linear, 0.5, 0.5},
		{"linear right", 1, Linear, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := Gains(tt.pan, tt.law)
			if math.Abs(l-tt.left) > 1e-15 || math.Abs(r-tt.right) > 1e-15 {
				t.Fatalf("got (%v, %v), want (%v, %v)", l, r, tt.left, tt.right)
			}
		})
	}
}

func TestMonoScalesInput(t *testing.T) {
	l, r := Mono(2, -0.5, ConstantPower)
	gl, gr := Gains(-0.5, ConstantPower)

	if l != 2*gl || r != 2*gr {
		t.Fatalf("got (%v, %v)", l, r)
	}
	if l <= r {
		t.Fatal("negative pan should favour the left channel")
	}
}
