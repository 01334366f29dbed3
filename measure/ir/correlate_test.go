package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-reverb/internal/testutil"
)

func directCorrelate(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for k := range out {
		lag := k - (len(b) - 1)
		for i, v := range b {
			if j := i + lag; j >= 0 && j < len(a) {
				out[k] += a[j] * v
			}
		}
	}
	return out
}

func TestCorrelateMatchesDirect(t *testing.T) {
	a := testutil.DeterministicNoise(7, 1, 37)
	b := testutil.DeterministicNoise(8, 1, 11)

	got, err := Correlate(a, b)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, directCorrelate(a, b), 1e-9)
}

func TestPeakLagFindsShift(t *testing.T) {
	template := testutil.DeterministicNoise(3, 1, 32)

	for _, shift := range []int{0, 5, 40} {
		sig := make([]float64, 96)
		copy(sig[shift:], template)

		corr, err := Correlate(sig, template)
		if err != nil {
			t.Fatal(err)
		}
		lag, value := PeakLag(corr, len(template))
		if lag != shift {
			t.Fatalf("shift %d: lag = %d", shift, lag)
		}

		energy := 0.0
		for _, v := range template {
			energy += v * v
		}
		if math.Abs(value-energy) > 1e-9 {
			t.Fatalf("shift %d: peak = %v, want %v", shift, value, energy)
		}
	}
}

func TestPeakLagNegative(t *testing.T) {
	b := []float64{0, 0, 0, 1}
	a := []float64{1, 0, 0, 0}

	corr, err := Correlate(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if lag, _ := PeakLag(corr, len(b)); lag != -3 {
		t.Fatalf("lag = %d, want -3", lag)
	}
}

func TestCorrelateEmpty(t *testing.T) {
	if _, err := Correlate(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}
