//go:build fastmath

package shelving

import "github.com/meko-christian/algo-approx"

// mathExp computes e^x using fast approximation. It runs once per sample
// while the tilt control moves.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
