package fourierlab

import "math"

// Synthesis defaults: one period of the square wave sampled every 0.01.
const (
	DefaultSynthesisStart      = -math.Pi
	DefaultSynthesisStop       = math.Pi
	DefaultSynthesisStep       = 0.01
	DefaultSynthesisIterations = 10
)

// DefaultAudioSampleRate is used when synthesis partial sums are exported
// as WAV and no rate is configured.
const DefaultAudioSampleRate = 44100

// Random recombination ranges
const (
	randomPhaseMax     = math.Pi
	randomMagnitudeMax = 1.0
)

// Output naming
const (
	pngExtension    = ".png"
	wavExtension    = ".wav"
	iterationFormat = "%s_%02d"
)

// Reference demonstration parameters
const (
	demoSignalLength = 128
	demoSignalWidth  = 16

	demoImageWidth   = 256
	demoImageCenter  = 128
	demoCircleRadius = 32
	demoBoxWidth     = 16
	demoBoxHeight    = 32
	demoBoxOffset    = 64
	demoBoxRotation  = 45.0

	demoOffsetBoxRotation = 20.0
)

// halfDivisor splits box extents around their center.
const halfDivisor = 2

// Synthesis figure labels
const (
	synthesisPrefix = "sqwave"
	synthesisXLabel = "Time"
	synthesisYLabel = "Amplitude (real)"
)

// outputDirPerm is the permission used when creating the output directory.
const outputDirPerm = 0o755
