package interp

import (
	"math"
	"testing"
)

func TestKernelsIdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		if got := Hermite4(tc.t, xm1, x0, x1, x2); math.Abs(got-tc.w) > 1e-12 {
			t.Fatalf("Hermite4 t=%v: got %v want %v", tc.t, got, tc.w)
		}
		if got := Lagrange4(tc.t, xm1, x0, x1, x2); math.Abs(got-tc.w) > 1e-12 {
			t.Fatalf("Lagrange4 t=%v: got %v want %v", tc.t, got, tc.w)
		}
		if got := Linear2(tc.t, x0, x1); math.Abs(got-tc.w) > 1e-12 {
			t.Fatalf("Linear2 t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestLagrange4ExactOnCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x*x + 0.5 }
	for _, frac := range []float64{0.1, 0.33, 0.5, 0.9} {
		got := Lagrange4(frac, f(-1), f(0), f(1), f(2))
		if want := f(frac); math.Abs(got-want) > 1e-12 {
			t.Fatalf("frac=%v: got %v want %v", frac, got, want)
		}
	}
}

func TestCosine2Endpoints(t *testing.T) {
	if got := Cosine2(0, 3, 7); got != 3 {
		t.Fatalf("t=0: got %v want 3", got)
	}
	if got := Cosine2(1, 3, 7); math.Abs(got-7) > 1e-12 {
		t.Fatalf("t=1: got %v want 7", got)
	}
	if got := Cosine2(0.5, 3, 7); math.Abs(got-5) > 1e-12 {
		t.Fatalf("t=0.5: got %v want 5", got)
	}
	if got := Cosine2(0.25, 0, 1); got >= 0.25 {
		t.Fatalf("t=0.25: cosine weight %v should lag linear", got)
	}
}

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{
		Step: "step", Linear: "linear", Cosine: "cosine", Cubic: "cubic", Spline: "spline", Mode(42): "unknown",
	} {
		if got := mode.String(); got != want {
			t.Fatalf("Mode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}
