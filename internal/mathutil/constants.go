package mathutil

import "math"

// Rotation constants
const (
	degreesToRadians = math.Pi / 180.0 // Degrees to radians conversion factor
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)

// Gray16 quantization
const (
	maxGray16 = 0xffff // Full scale of a 16-bit gray level
)
