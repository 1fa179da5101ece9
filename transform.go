package fourierlab

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-fourier-lab/internal/engine"
	"gonum.org/v1/gonum/mat"
)

// Transformer computes forward and inverse DFTs with a configured backend.
//
// Forward transforms are unnormalized, X[k] = Σ x[n]·exp(-2πi·kn/N), and
// inverse transforms divide by N (rows·cols in 2D), matching numpy.fft.
// Inputs are never modified and results never alias them.
type Transformer struct {
	eng *engine.Engine
}

// NewTransformer creates a Transformer. A nil config selects the defaults.
func NewTransformer(cfg *EngineConfig) (*Transformer, error) {
	if cfg == nil {
		cfg = &EngineConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Transformer{eng: engine.New(cfg.backend())}, nil
}

var defaultTransformer = &Transformer{eng: engine.New(nil)}

// Backend reports the name of the FFT implementation in use.
func (t *Transformer) Backend() string {
	return t.eng.BackendName()
}

// Forward1D returns the DFT of x.
func (t *Transformer) Forward1D(x []complex128) ([]complex128, error) {
	out, err := t.eng.Forward1D(x)
	return out, engineError(err)
}

// Inverse1D returns the inverse DFT of coeff.
func (t *Transformer) Inverse1D(coeff []complex128) ([]complex128, error) {
	out, err := t.eng.Inverse1D(coeff)
	return out, engineError(err)
}

// ForwardReal1D returns the DFT of a real signal.
func (t *Transformer) ForwardReal1D(x []float64) ([]complex128, error) {
	return t.Forward1D(ToComplex(x))
}

// InverseReal1D returns the real part of the inverse DFT of coeff. Any
// imaginary residue is discarded.
func (t *Transformer) InverseReal1D(coeff []complex128) ([]float64, error) {
	out, err := t.Inverse1D(coeff)
	if err != nil {
		return nil, err
	}
	return RealPart(out), nil
}

// Forward2D returns the 2D DFT of x.
func (t *Transformer) Forward2D(x *mat.CDense) (*mat.CDense, error) {
	out, err := t.eng.Forward2D(x)
	return out, engineError(err)
}

// Inverse2D returns the 2D inverse DFT of coeff.
func (t *Transformer) Inverse2D(coeff *mat.CDense) (*mat.CDense, error) {
	out, err := t.eng.Inverse2D(coeff)
	return out, engineError(err)
}

// ForwardReal2D returns the 2D DFT of a real image.
func (t *Transformer) ForwardReal2D(x mat.Matrix) (*mat.CDense, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInvalidParameter)
	}
	if r, c := x.Dims(); r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d matrix", ErrInvalidParameter, r, c)
	}
	return t.Forward2D(ToCDense(x))
}

// InverseReal2D returns the real part of the 2D inverse DFT of coeff.
func (t *Transformer) InverseReal2D(coeff *mat.CDense) (*mat.Dense, error) {
	out, err := t.Inverse2D(coeff)
	if err != nil {
		return nil, err
	}
	return RealDense(out), nil
}

// engineError maps engine failures onto the package's error taxonomy.
func engineError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, engine.ErrEmptyInput) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return err
}

// Forward1D returns the DFT of x using the default backend.
func Forward1D(x []complex128) ([]complex128, error) { return defaultTransformer.Forward1D(x) }

// Inverse1D returns the inverse DFT of coeff using the default backend.
func Inverse1D(coeff []complex128) ([]complex128, error) { return defaultTransformer.Inverse1D(coeff) }

// ForwardReal1D returns the DFT of a real signal using the default backend.
func ForwardReal1D(x []float64) ([]complex128, error) { return defaultTransformer.ForwardReal1D(x) }

// InverseReal1D returns the real part of the inverse DFT using the default
// backend.
func InverseReal1D(coeff []complex128) ([]float64, error) {
	return defaultTransformer.InverseReal1D(coeff)
}

// Forward2D returns the 2D DFT of x using the default backend.
func Forward2D(x *mat.CDense) (*mat.CDense, error) { return defaultTransformer.Forward2D(x) }

// Inverse2D returns the 2D inverse DFT of coeff using the default backend.
func Inverse2D(coeff *mat.CDense) (*mat.CDense, error) { return defaultTransformer.Inverse2D(coeff) }

// ForwardReal2D returns the 2D DFT of a real image using the default backend.
func ForwardReal2D(x mat.Matrix) (*mat.CDense, error) { return defaultTransformer.ForwardReal2D(x) }

// InverseReal2D returns the real part of the 2D inverse DFT using the
// default backend.
func InverseReal2D(coeff *mat.CDense) (*mat.Dense, error) {
	return defaultTransformer.InverseReal2D(coeff)
}

// FFTShift1D moves index 0 to index len(x)/2, centering the zero frequency
// term for display. For even lengths it is its own inverse; for odd lengths
// applying it twice rotates x left by one, and IFFTShift1D is the inverse.
func FFTShift1D[T any](x []T) []T { return engine.Shift(x) }

// IFFTShift1D undoes FFTShift1D for any length.
func IFFTShift1D[T any](x []T) []T { return engine.Unshift(x) }

// FFTShift2D applies FFTShift1D along both axes of a real matrix. A nil
// or empty matrix is rejected with ErrInvalidParameter.
func FFTShift2D(m *mat.Dense) (*mat.Dense, error) {
	out, err := engine.ShiftDense(m)
	return out, engineError(err)
}

// IFFTShift2D undoes FFTShift2D.
func IFFTShift2D(m *mat.Dense) (*mat.Dense, error) {
	out, err := engine.UnshiftDense(m)
	return out, engineError(err)
}

// FFTShiftCDense applies FFTShift1D along both axes of a complex matrix.
func FFTShiftCDense(m *mat.CDense) (*mat.CDense, error) {
	out, err := engine.ShiftCDense(m)
	return out, engineError(err)
}

// IFFTShiftCDense undoes FFTShiftCDense.
func IFFTShiftCDense(m *mat.CDense) (*mat.CDense, error) {
	out, err := engine.UnshiftCDense(m)
	return out, engineError(err)
}

// ToComplex promotes a real signal to complex with zero imaginary part.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// RealPart returns the real parts of x.
func RealPart(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}
	return out
}

// ToCDense promotes a real matrix to a complex one.
func ToCDense(m mat.Matrix) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := range r {
		for j := range c {
			out.Set(i, j, complex(m.At(i, j), 0))
		}
	}
	return out
}

// RealDense returns the real parts of m.
func RealDense(m mat.CMatrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := range r {
		for j := range c {
			out.Set(i, j, real(m.At(i, j)))
		}
	}
	return out
}
