package reverb

import (
	"testing"

	"github.com/cwbudde/algo-reverb/internal/testutil"
)

func benchmarkRun(b *testing.B, p Params) {
	r, err := New(48000)
	if err != nil {
		b.Fatal(err)
	}
	in := testutil.DeterministicNoise(1, 0.5, 4096)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := in[i%len(in)]
		r.Run(x, x, p)
	}
}

func BenchmarkRunStatic(b *testing.B) {
	p := DefaultParams()
	p.Depth = 0
	benchmarkRun(b, p)
}

func BenchmarkRunVibrato(b *testing.B) {
	benchmarkRun(b, DefaultParams())
}

func BenchmarkRunAllStages(b *testing.B) {
	benchmarkRun(b, busyParams())
}

func BenchmarkProcessBlock(b *testing.B) {
	r, err := New(48000)
	if err != nil {
		b.Fatal(err)
	}
	p := busyParams()
	left := testutil.DeterministicNoise(1, 0.5, 512)
	right := testutil.DeterministicNoise(2, 0.5, 512)

	b.ReportAllocs()
	b.SetBytes(int64(len(left)) * 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ProcessBlock(left, right, p)
	}
}
