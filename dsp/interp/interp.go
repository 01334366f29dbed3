package interp

import "math"

// Mode selects the interpolation kernel of a fractional read.
type Mode int

const (
	// Step returns the sample at the truncated index.
	Step Mode = iota
	// Linear blends the two neighbouring samples.
	Linear
	// Cosine blends the two neighbouring samples with a raised-cosine weight.
	Cosine
	// Cubic uses 4-point Lagrange interpolation.
	Cubic
	// Spline uses 4-point Catmull-Rom (Hermite) interpolation.
	Spline
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Step:
		return "step"
	case Linear:
		return "linear"
	case Cosine:
		return "cosine"
	case Cubic:
		return "cubic"
	case Spline:
		return "spline"
	default:
		return "unknown"
	}
}

// Linear2 interpolates from x0 to x1.
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Cosine2 interpolates from x0 to x1 with a raised-cosine weight, which has
// zero slope at both ends.
func Cosine2(t, x0, x1 float64) float64 {
	w := (1 - math.Cos(t*math.Pi)) * 0.5
	return x0 + w*(x1-x0)
}

// Lagrange4 computes cubic 4-point Lagrange interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Lagrange4(t, xm1, x0, x1, x2 float64) float64 {
	a := 1 + t
	b := 1 - t
	c := 2 - t
	aa := t * a
	bc := b * c

	wm1 := -bc * t / 6
	w0 := 0.5 * bc * a
	w1 := 0.5 * aa * c
	w2 := -aa * b / 6

	return xm1*wm1 + x0*w0 + x1*w1 + x2*w2
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
