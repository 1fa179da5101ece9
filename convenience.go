package fourierlab

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Spectrum1D returns the magnitude and phase of the DFT of a real signal.
func Spectrum1D(signal []float64) (Polar1D, error) {
	spectrum, err := ForwardReal1D(signal)
	if err != nil {
		return Polar1D{}, err
	}
	return Decompose1D(spectrum), nil
}

// Spectrum2D returns the magnitude and phase of the 2D DFT of a real image.
func Spectrum2D(img mat.Matrix) (Polar2D, error) {
	spectrum, err := ForwardReal2D(img)
	if err != nil {
		return Polar2D{}, err
	}
	return Decompose2D(spectrum), nil
}

// Reconstruct rebuilds a real image from a magnitude and a phase plane,
// keeping the real part of the inverse transform.
func Reconstruct(mag, phase *mat.Dense) (*mat.Dense, error) {
	spectrum, err := Recombine2D(mag, phase)
	if err != nil {
		return nil, err
	}
	return InverseReal2D(spectrum)
}

// SwapImages runs the whole recombination pipeline on two images of the
// same shape and returns the two reconstructed images.
func SwapImages(a, b mat.Matrix, mode SwapMode, seed uint64) (*mat.Dense, *mat.Dense, error) {
	pa, err := Spectrum2D(a)
	if err != nil {
		return nil, nil, fmt.Errorf("first image: %w", err)
	}
	pb, err := Spectrum2D(b)
	if err != nil {
		return nil, nil, fmt.Errorf("second image: %w", err)
	}

	fa, fb, err := Recombination(mode, pa, pb, seed)
	if err != nil {
		return nil, nil, err
	}
	ra, err := InverseReal2D(fa)
	if err != nil {
		return nil, nil, err
	}
	rb, err := InverseReal2D(fb)
	if err != nil {
		return nil, nil, err
	}
	return ra, rb, nil
}
