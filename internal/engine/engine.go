// Package engine implements the forward and inverse discrete Fourier
// transforms, in one and two dimensions, on top of a pluggable FFT backend.
package engine

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyInput is returned when a transform is asked to process no samples.
var ErrEmptyInput = errors.New("empty input")

// Engine runs transforms through a Backend. It holds no state between
// calls; plans are created per call.
type Engine struct {
	backend Backend
}

// New creates an engine. A nil backend selects Gonum.
func New(backend Backend) *Engine {
	if backend == nil {
		backend = Gonum{}
	}
	return &Engine{backend: backend}
}

// BackendName reports which backend the engine uses.
func (e *Engine) BackendName() string {
	return e.backend.Name()
}

// Forward1D returns the DFT of x. x is not modified.
func (e *Engine) Forward1D(x []complex128) ([]complex128, error) {
	if len(x) < minTransformLength {
		return nil, fmt.Errorf("%w: forward transform of %d samples", ErrEmptyInput, len(x))
	}
	return e.backend.NewPlan(len(x)).Forward(make([]complex128, len(x)), x), nil
}

// Inverse1D returns the normalized inverse DFT of coeff.
func (e *Engine) Inverse1D(coeff []complex128) ([]complex128, error) {
	if len(coeff) < minTransformLength {
		return nil, fmt.Errorf("%w: inverse transform of %d coefficients", ErrEmptyInput, len(coeff))
	}
	return e.backend.NewPlan(len(coeff)).Inverse(make([]complex128, len(coeff)), coeff), nil
}

// Forward2D returns the 2D DFT of x, computed separably over rows and then
// columns.
func (e *Engine) Forward2D(x *mat.CDense) (*mat.CDense, error) {
	return e.transform2D(x, Plan.Forward)
}

// Inverse2D returns the normalized 2D inverse DFT of x. The 1/(rows·cols)
// scaling falls out of the per-axis 1/N scaling of the plans.
func (e *Engine) Inverse2D(x *mat.CDense) (*mat.CDense, error) {
	return e.transform2D(x, Plan.Inverse)
}

func (e *Engine) transform2D(x *mat.CDense, apply func(Plan, []complex128, []complex128) []complex128) (*mat.CDense, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrEmptyInput)
	}
	r, c := x.Dims()
	if r < minTransformLength || c < minTransformLength {
		return nil, fmt.Errorf("%w: %dx%d matrix", ErrEmptyInput, r, c)
	}

	data := make([]complex128, r*c)
	for i := range r {
		for j := range c {
			data[i*c+j] = x.At(i, j)
		}
	}

	rowPlan := e.backend.NewPlan(c)
	colPlan := rowPlan
	if r != c {
		colPlan = e.backend.NewPlan(r)
	}

	for i := range r {
		row := data[i*c : (i+1)*c]
		apply(rowPlan, row, row)
	}

	column := make([]complex128, r)
	for j := range c {
		for i := range r {
			column[i] = data[i*c+j]
		}
		apply(colPlan, column, column)
		for i, v := range column {
			data[i*c+j] = v
		}
	}

	return mat.NewCDense(r, c, data), nil
}
