package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

func ExampleRescale() {
	// Map a room size of 250 ms from [1, 500] onto a gain between 1 and 0.25.
	fmt.Printf("%.3f\n", core.Rescale(250.5, 1, 500, 1, 0.25))

	// Output:
	// 0.625
}

func ExampleZero() {
	scratch := []float64{0.5, -0.25, 1}
	core.Zero(scratch)
	fmt.Println(scratch)

	// Output:
	// [0 0 0]
}
