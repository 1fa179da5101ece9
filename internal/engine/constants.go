package engine

// Backend names.
const (
	// NameGonum identifies the gonum dsp/fourier backend.
	NameGonum = "gonum"

	// NameGoDSP identifies the mjibson/go-dsp backend.
	NameGoDSP = "godsp"
)

// Transform constants.
const (
	// minTransformLength is the shortest sequence the engine accepts.
	minTransformLength = 1
)
