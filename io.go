package fourierlab

import (
	"fmt"

	"github.com/tphakala/go-fourier-lab/internal/imageio"
	"gonum.org/v1/gonum/mat"
)

// LoadGray decodes a PNG, JPEG, or GIF image and returns its HSV value
// channel, max(R, G, B), scaled to [0, 1].
func LoadGray(path string) (*mat.Dense, error) {
	return imageio.LoadGray(path)
}

// WriteWAV writes samples as peak-normalized 16-bit mono PCM.
// A non-positive sampleRate is rejected with ErrInvalidParameter before the
// file is created.
func WriteWAV(path string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}
	return imageio.WriteWAV(path, samples, sampleRate)
}

// ReadWAV returns the first channel of a PCM WAV file scaled to [-1, 1)
// and its sample rate.
func ReadWAV(path string) ([]float64, int, error) {
	return imageio.ReadWAV(path)
}
