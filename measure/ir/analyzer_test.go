package ir

import (
	"errors"
	"math"
	"testing"
)

// exponentialDecay returns h(t) = exp(-ln(1000)·t/rt60), which falls 60 dB
// in rt60 seconds.
func exponentialDecay(sampleRate, rt60, seconds float64) []float64 {
	out := make([]float64, int(sampleRate*seconds))
	k := math.Log(1000) / rt60
	for i := range out {
		out[i] = math.Exp(-k * float64(i) / sampleRate)
	}
	return out
}

func TestAnalyzeExponentialDecay(t *testing.T) {
	for _, rt60 := range []float64{0.3, 1, 2.5} {
		ir := exponentialDecay(48000, rt60, 3*rt60)

		m, err := NewAnalyzer(48000).Analyze(ir)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(m.RT60-rt60) > 0.02*rt60 {
			t.Errorf("rt60 %v: RT60 = %.4f", rt60, m.RT60)
		}
		if math.Abs(m.EDT-rt60) > 0.02*rt60 {
			t.Errorf("rt60 %v: EDT = %.4f", rt60, m.EDT)
		}
		if m.PeakIndex != 0 {
			t.Errorf("rt60 %v: PeakIndex = %d", rt60, m.PeakIndex)
		}
		if m.D50 <= 0 || m.D50 >= 1 {
			t.Errorf("rt60 %v: D50 = %v", rt60, m.D50)
		}
	}
}

func TestAnalyzeSkipsLeadingSilence(t *testing.T) {
	decay := exponentialDecay(48000, 0.5, 1.5)
	delayed := append(make([]float64, 4800), decay...)

	a := NewAnalyzer(48000)
	want, err := a.Analyze(decay)
	if err != nil {
		t.Fatal(err)
	}
	got, err := a.Analyze(delayed)
	if err != nil {
		t.Fatal(err)
	}

	if got.PeakIndex != 4800 {
		t.Fatalf("PeakIndex = %d, want 4800", got.PeakIndex)
	}
	if math.Abs(got.RT60-want.RT60) > 1e-9 || math.Abs(got.C80-want.C80) > 1e-9 {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSchroederIntegralLinearInDB(t *testing.T) {
	const sr = 48000.0
	ir := exponentialDecay(sr, 0.5, 1.5)

	curve, err := NewAnalyzer(sr).SchroederIntegral(ir)
	if err != nil {
		t.Fatal(err)
	}

	if curve[0] != 0 {
		t.Fatalf("curve[0] = %v, want 0 dB", curve[0])
	}
	// 120 dB/s: -30 dB after 250 ms.
	if got := curve[int(0.25*sr)]; math.Abs(got+30) > 0.1 {
		t.Fatalf("curve at 250 ms = %.3f dB, want -30", got)
	}
	for i := 1; i < len(curve); i++ {
		if curve[i] > curve[i-1] {
			t.Fatalf("curve rises at %d", i)
		}
	}
}

func TestRT60NoDecay(t *testing.T) {
	ir := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	_, err := NewAnalyzer(1000).RT60(ir)
	if !errors.Is(err, ErrNoDecay) {
		t.Fatalf("got %v, want ErrNoDecay", err)
	}
}

func TestClarityAndDefinition(t *testing.T) {
	// Direct sound plus one reflection of half amplitude at 100 ms.
	ir := make([]float64, 1000)
	ir[0] = 1
	ir[100] = 0.5

	a := NewAnalyzer(1000)

	c50, err := a.Clarity(ir, 50)
	if err != nil {
		t.Fatal(err)
	}
	if want := 10 * math.Log10(1/0.25); math.Abs(c50-want) > 1e-12 {
		t.Fatalf("C50 = %v, want %v", c50, want)
	}

	d50, err := a.Definition(ir, 50)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d50-0.8) > 1e-12 {
		t.Fatalf("D50 = %v, want 0.8", d50)
	}

	c, err := a.Clarity(ir, 200)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(c, 1) {
		t.Fatalf("C200 = %v, want +Inf", c)
	}
}

func TestCenterTime(t *testing.T) {
	ir := make([]float64, 100)
	ir[10] = 1
	ir[30] = 1

	got, err := NewAnalyzer(1000).CenterTime(ir)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.02) > 1e-12 {
		t.Fatalf("CenterTime = %v, want 0.02", got)
	}
}

func TestOnset(t *testing.T) {
	ir := make([]float64, 64)
	ir[5] = 0.01
	ir[20] = 0.5
	ir[21] = 1

	got, err := NewAnalyzer(1000).Onset(ir)
	if err != nil {
		t.Fatal(err)
	}
	if got != 20 {
		t.Fatalf("Onset = %d, want 20", got)
	}
}

func TestAnalyzerErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"empty", func() error { _, err := NewAnalyzer(1000).Analyze(nil); return err }, ErrEmptyIR},
		{"sample rate", func() error { _, err := NewAnalyzer(0).Analyze([]float64{1}); return err }, ErrInvalidSampleRate},
		{"nan sample rate", func() error { _, err := NewAnalyzer(math.NaN()).RT60([]float64{1}); return err }, ErrInvalidSampleRate},
		{"clarity time", func() error { _, err := NewAnalyzer(1000).Clarity([]float64{1}, 0); return err }, ErrInvalidTime},
		{"definition time", func() error { _, err := NewAnalyzer(1000).Definition([]float64{1}, -5); return err }, ErrInvalidTime},
		{"schroeder", func() error { _, err := NewAnalyzer(1000).SchroederIntegral(nil); return err }, ErrEmptyIR},
		{"onset", func() error { _, err := NewAnalyzer(1000).Onset(nil); return err }, ErrEmptyIR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}
