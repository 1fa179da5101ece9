package main

// Environment variables read by the command
const (
	envOutputDir  = "FOURIER_OUTPUT_DIR"
	envImageA     = "FOURIER_IMAGE_A"
	envImageB     = "FOURIER_IMAGE_B"
	envSwapMode   = "FOURIER_SWAP_MODE"
	envSeed       = "FOURIER_SEED"
	envIterations = "FOURIER_ITERATIONS"
	envBackend    = "FOURIER_BACKEND"
	envShape      = "FOURIER_SHAPE"
	envWAVInput   = "FOURIER_WAV_INPUT"
	envWAVExport  = "FOURIER_WAV_EXPORT"
)

// Defaults for unset variables
const (
	defaultOutputDir = "out"
	envFile          = ".env"
)
