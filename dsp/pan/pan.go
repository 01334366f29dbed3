// Package pan provides stereo pan laws.
package pan

import "math"

// Law selects how a pan position maps to channel gains.
type Law int

const (
	// ConstantPower uses sine/cosine gains so L² + R² = 1.
	ConstantPower Law = iota
	// Linear uses gains that sum to one.
	Linear
)

// Gains returns the left and right gains for pan in [-1, 1]
// (-1 hard left, 0 center, 1 hard right).
func Gains(pan float64, law Law) (left, right float64) {
	if law == Linear {
		return 0.5 * (1 - pan), 0.5 * (1 + pan)
	}
	return constantPower(pan)
}

// Mono places a mono sample in the stereo field.
func Mono(x, pan float64, law Law) (left, right float64) {
	l, r := Gains(pan, law)
	return x * l, x * r
}

// constantPower maps pan to an angle in [0, π/2]. The hard-panned ends are
// exact.
func constantPower(pan float64) (left, right float64) {
	switch {
	case pan <= -1:
		return 1, 0
	case pan >= 1:
		return 0, 1
	}
	angle := (pan + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}
