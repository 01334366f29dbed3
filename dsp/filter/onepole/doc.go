// Package onepole provides the one-pole lowpass used for absorption and
// parameter smoothing.
//
// The filter runs y = y*(1-c) + x*c. In Hertz mode c is derived from a cutoff
// frequency, in Linear mode c = 1 - value, so value 0 passes the input and
// value 1 holds the previous output.
package onepole
