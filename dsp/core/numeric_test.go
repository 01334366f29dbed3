package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMix(t *testing.T) {
	if got := Mix(2, 4, 0); got != 2 {
		t.Fatalf("Mix(…, 0) = %v, want 2", got)
	}
	if got := Mix(2, 4, 1); got != 4 {
		t.Fatalf("Mix(…, 1) = %v, want 4", got)
	}
	if got := Mix(2, 4, 0.25); got != 2.5 {
		t.Fatalf("Mix(…, 0.25) = %v, want 2.5", got)
	}
}

func TestRescale(t *testing.T) {
	// size range 1..500 onto 1..-12 dB, as used by the early reflections
	minus12 := DBToLinear(-12)
	if got := Rescale(1, 1, 500, 1, minus12); got != 1 {
		t.Fatalf("Rescale(min) = %v, want 1", got)
	}
	if got := Rescale(500, 1, 500, 1, minus12); math.Abs(got-minus12) > 1e-12 {
		t.Fatalf("Rescale(max) = %v, want %v", got, minus12)
	}
	if got := Rescale(0.5, 0, 1, -1, 1); got != 0 {
		t.Fatalf("Rescale(mid) = %v, want 0", got)
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(math.SmallestNonzeroFloat64); got != 0 {
		t.Fatalf("subnormal not flushed: %v", got)
	}
	if got := FlushDenormals(-1e-31); got != 0 {
		t.Fatalf("tiny negative not flushed: %v", got)
	}
	if got := FlushDenormals(1e-6); got != 1e-6 {
		t.Fatalf("regular value changed: %v", got)
	}
}

func TestDBConversions(t *testing.T) {
	if got := DBToLinear(12); math.Abs(got-3.981072) > 1e-6 {
		t.Fatalf("DBToLinear(12) = %v, want 3.981072", got)
	}

	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if math.Abs(db+6) > 1e-10 {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
	if math.Abs(PowerToDB(100)-20) > 1e-12 {
		t.Fatalf("PowerToDB(100) = %v, want 20", PowerToDB(100))
	}
}
