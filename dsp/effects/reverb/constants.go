package reverb

import "math"

// Control limits in milliseconds.
const (
	MinPredelay = 7.0
	MaxPredelay = 500.0
	MinSize     = 1.0
	MaxSize     = 500.0
	MaxDepth    = 3.0
)

// NumTaps is the number of delay branches in the network.
const NumTaps = 4

// Tap layout. Fractions scale the size control, diffuser times are fixed.
var (
	TapFractions   = [NumTaps]float64{0.34306569343065696, 0.48905109489051096, 0.7372262773722628, 1}
	DiffuserTimes  = [NumTaps]float64{5.75, 9.416666666666668, 13.083333333333332, 14.916666666666666}
	LFOPhaseOffset = [NumTaps]float64{0, 0.25, 0.5, 0.75}
)

// FeedbackMatrix cross-feeds the tap outputs. Its rows are orthogonal with
// squared norm 4.
var FeedbackMatrix = [NumTaps][NumTaps]float64{
	{1, -1, -1, 1},
	{1, 1, -1, -1},
	{1, -1, 1, -1},
	{1, 1, 1, 1},
}

// Tilt equalizer corners (Hz) and shelf gains (dB).
const (
	tiltLowHz      = 520.0
	tiltHighHz     = 6000.0
	tiltLowGainDB  = 12.0
	tiltHighGainDB = 24.0
)

// Smoothing cutoffs in Hz.
const (
	smoothReverseHz  = 12.0
	smoothPredelayHz = 7.0
	smoothSizeHz     = 4.0
	smoothDepthHz    = 12.0
	smoothAbsorbHz   = 12.0
	smoothTiltHz     = 12.0
	smoothShimmerHz  = 12.0
	smoothMixHz      = 12.0
)

var monoGain = 1 / math.Sqrt2
