// Package reverb implements a stereo feedback-delay-network reverb.
//
// Four delay taps at fixed fractions of the room size are cross-fed through an
// orthogonal ±1 matrix. Each branch applies gated soft saturation, one-pole
// absorption and an allpass diffuser before writing back. Tap reads are
// static, vibrato-modulated or granular depending on the sign of the depth
// control. Around the network sit a predelay that can morph into reverse
// playback, an octave-up shimmer stage, panned early reflections, a tilt
// equalizer and an equal-power dry/wet mix.
//
// A [Reverb] is owned by one audio goroutine. Controls arrive as [Params] on
// every call and are smoothed internally; producers on other goroutines can
// hand values over through [SharedParams].
package reverb
