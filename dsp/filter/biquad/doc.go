// Package biquad provides the second-order IIR runtime used by the tilt
// filter.
//
// [Coefficients] hold a normalized transfer function (a0 = 1). [Section]
// filters one channel in Direct Form II Transposed, [Stereo] runs two
// channels through the same coefficients. Coefficient design lives in
// dsp/filter/design.
package biquad
