package ir

import (
	"testing"

	"github.com/cwbudde/algo-reverb/internal/testutil"
)

func BenchmarkAnalyze(b *testing.B) {
	response := exponentialDecay(48000, 1, 2)
	a := NewAnalyzer(48000)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = a.Analyze(response)
	}
}

func BenchmarkCorrelate(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	y := testutil.DeterministicNoise(2, 1, 512)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Correlate(x, y)
	}
}

func BenchmarkBandEnergy(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 8192)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = BandEnergy(x, 48000, 500, 2000)
	}
}
