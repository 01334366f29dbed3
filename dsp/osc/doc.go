// Package osc provides the phase ramp and wavetable lookups that drive the
// reverb's LFOs and grain envelopes.
package osc
