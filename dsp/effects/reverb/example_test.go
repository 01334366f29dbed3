package reverb_test

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

func ExampleReverb_Run() {
	r, err := reverb.New(44100)
	if err != nil {
		panic(err)
	}

	p := reverb.DefaultParams()
	p.Depth = 0
	p.Mix = 1

	first := -1
	for n := 0; n < 1000 && first < 0; n++ {
		in := 0.0
		if n == 0 {
			in = 1
		}
		l, rr := r.Run(in, in, p)
		if l != 0 || rr != 0 {
			first = n
		}
	}
	fmt.Println("first reflection at sample", first)

	// Output:
	// first reflection at sample 310
}

func ExampleSharedParams() {
	shared := reverb.NewSharedParams(reverb.DefaultParams())

	// Control thread.
	_ = shared.Set(reverb.ParamSize, 250)
	_ = shared.SetNormalized(reverb.ParamMix, 1)

	// Audio thread, once per block.
	p := shared.Snapshot()
	fmt.Println(p.Size, p.Mix)

	// Output:
	// 250 1
}

func ExampleDescriptors() {
	for _, d := range reverb.Descriptors()[:3] {
		unit := ""
		if d.Unit != "" {
			unit = " " + d.Unit
		}
		fmt.Printf("%s: %g..%g%s\n", d.Name, d.Range.Min, d.Range.Max, unit)
	}

	// Output:
	// Reverse: 0..1
	// Predelay: 7..500 ms
	// Size: 1..500 ms
}
