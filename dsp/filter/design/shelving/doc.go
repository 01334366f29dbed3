// Package shelving designs the tilt equalizer: a first-order low shelf and a
// first-order high shelf driven by one control that trades gain between the
// two ends of the spectrum.
//
// The analog prototype
//
//	H(s) = (s + lowB)/(s + lowA) · (highA·s + highB)/(s + highB)
//
// is mapped to a single biquad with the bilinear transform s = 2·fs·(1-z⁻¹)/(1+z⁻¹).
// At tilt 0 both factors reduce to unity; at tilt +1 the lows drop by the low
// gain and the highs rise by the high gain, at tilt -1 the reverse.
package shelving
