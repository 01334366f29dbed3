// Package ir analyses impulse responses rendered from a reverb.
//
// Decay metrics follow ISO 3382 and are derived from the Schroeder backward
// integral of the squared response:
//
//   - RT60 from the T30 fit, falling back to T20
//   - EDT, the 0 to -10 dB fit extrapolated to -60 dB
//   - C50, C80 clarity and D50 definition
//   - centre time
//
// The package also provides a framed RMS envelope, windowed band energy and
// FFT cross-correlation, used to check tail shape, tilt balance and reversed
// playback.
//
//	a := ir.NewAnalyzer(48000)
//	m, err := a.Analyze(response)
//	fmt.Printf("RT60 = %.2f s\n", m.RT60)
package ir
