package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/filter/biquad"
)

func ExampleCoefficients_MagnitudeDB() {
	c := biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	}

	for _, freq := range []float64{100, 1000, 10000, 20000} {
		fmt.Printf("%6.0f Hz: %+.2f dB\n", freq, c.MagnitudeDB(freq, 48000))
	}
	// Output:
	//    100 Hz: +1.51 dB
	//   1000 Hz: +1.47 dB
	//  10000 Hz: -3.39 dB
	//  20000 Hz: -25.07 dB
}
