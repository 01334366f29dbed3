// Package interp provides interpolation primitives used by delay-based DSP blocks.
//
// Available methods, from cheapest to highest quality:
//
//   - [Step]:      nearest earlier sample (truncation)
//   - [Linear2]:   2-point linear interpolation
//   - [Cosine2]:   2-point raised-cosine weighted interpolation
//   - [Lagrange4]: 4-point cubic Lagrange
//   - [Hermite4]:  4-point cubic Hermite (Catmull-Rom spline)
//
// The [Mode] enum selects the kernel per read on [delay.Line].
package interp
