package engine

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// Shift reorders x so the zero-frequency term sits at index len(x)/2,
// matching numpy.fft.fftshift. For even lengths Shift is its own inverse;
// for odd lengths applying it twice rotates the sequence left by one.
func Shift[T any](x []T) []T {
	return reorder(x, shiftIndex(len(x)))
}

// Unshift is the exact inverse of Shift (numpy.fft.ifftshift).
func Unshift[T any](x []T) []T {
	return reorder(x, unshiftIndex(len(x)))
}

// ShiftDense applies Shift along both axes of m.
func ShiftDense(m *mat.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrEmptyInput)
	}
	r, c := m.Dims()
	if err := checkShape(r, c); err != nil {
		return nil, err
	}
	return reorderDense(m, shiftIndex(r), shiftIndex(c)), nil
}

// UnshiftDense applies Unshift along both axes of m.
func UnshiftDense(m *mat.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrEmptyInput)
	}
	r, c := m.Dims()
	if err := checkShape(r, c); err != nil {
		return nil, err
	}
	return reorderDense(m, unshiftIndex(r), unshiftIndex(c)), nil
}

// ShiftCDense applies Shift along both axes of m.
func ShiftCDense(m *mat.CDense) (*mat.CDense, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrEmptyInput)
	}
	r, c := m.Dims()
	if err := checkShape(r, c); err != nil {
		return nil, err
	}
	return reorderCDense(m, shiftIndex(r), shiftIndex(c)), nil
}

// UnshiftCDense applies Unshift along both axes of m.
func UnshiftCDense(m *mat.CDense) (*mat.CDense, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrEmptyInput)
	}
	r, c := m.Dims()
	if err := checkShape(r, c); err != nil {
		return nil, err
	}
	return reorderCDense(m, unshiftIndex(r), unshiftIndex(c)), nil
}

// checkShape rejects matrices gonum cannot allocate a result for.
func checkShape(r, c int) error {
	if r == 0 || c == 0 {
		return fmt.Errorf("%w: %dx%d matrix", ErrEmptyInput, r, c)
	}
	return nil
}

// shiftIndex maps an output position to the coefficient that belongs there.
func shiftIndex(n int) func(int) int {
	if n == 0 {
		return nil
	}
	return fourier.NewCmplxFFT(n).ShiftIdx
}

func unshiftIndex(n int) func(int) int {
	if n == 0 {
		return nil
	}
	return fourier.NewCmplxFFT(n).UnshiftIdx
}

func reorder[T any](x []T, idx func(int) int) []T {
	out := make([]T, len(x))
	for i := range out {
		out[i] = x[idx(i)]
	}
	return out
}

func reorderDense(m *mat.Dense, rowIdx, colIdx func(int) int) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := range r {
		for j := range c {
			out.Set(i, j, m.At(rowIdx(i), colIdx(j)))
		}
	}
	return out
}

func reorderCDense(m *mat.CDense, rowIdx, colIdx func(int) int) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := range r {
		for j := range c {
			out.Set(i, j, m.At(rowIdx(i), colIdx(j)))
		}
	}
	return out
}
