// Package window generates the Hann window used for grain envelopes and
// spectral analysis, and the gain figures needed to normalise a windowed
// spectrum.
//
// The periodic Hann window doubles as the wavetable for grain envelopes and
// the sine LFO in package osc.
package window
