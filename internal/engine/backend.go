package engine

import (
	"github.com/mjibson/go-dsp/fft"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Plan computes transforms of a fixed length.
//
// Forward is the unnormalized DFT X[k] = Σ x[n]·exp(-2πi·kn/N).
// Inverse is scaled by 1/N so that Inverse(Forward(x)) reproduces x.
// dst may alias the input; if dst is nil a new slice is allocated.
type Plan interface {
	Len() int
	Forward(dst, seq []complex128) []complex128
	Inverse(dst, coeff []complex128) []complex128
}

// Backend creates transform plans.
type Backend interface {
	Name() string
	NewPlan(n int) Plan
}

// Gonum is the default backend, built on gonum's fftpack port.
type Gonum struct{}

// Name returns the backend name.
func (Gonum) Name() string { return NameGonum }

// NewPlan returns a gonum plan for sequences of length n.
func (Gonum) NewPlan(n int) Plan {
	return &gonumPlan{
		fft:   fourier.NewCmplxFFT(n),
		re:    make([]float64, n),
		im:    make([]float64, n),
		scale: 1.0 / float64(n),
	}
}

// gonumPlan wraps a CmplxFFT. gonum does not normalize the inverse
// transform, so Inverse scales the real and imaginary planes by 1/N.
type gonumPlan struct {
	fft   *fourier.CmplxFFT
	re    []float64
	im    []float64
	scale float64
}

func (p *gonumPlan) Len() int { return p.fft.Len() }

func (p *gonumPlan) Forward(dst, seq []complex128) []complex128 {
	return p.fft.Coefficients(dst, seq)
}

func (p *gonumPlan) Inverse(dst, coeff []complex128) []complex128 {
	dst = p.fft.Sequence(dst, coeff)

	for i, v := range dst {
		p.re[i] = real(v)
		p.im[i] = imag(v)
	}
	f64.Scale(p.re, p.re, p.scale)
	f64.Scale(p.im, p.im, p.scale)
	for i := range dst {
		dst[i] = complex(p.re[i], p.im[i])
	}

	return dst
}

// GoDSP is an alternative backend using github.com/mjibson/go-dsp.
// It handles arbitrary lengths (Bluestein for non powers of two).
type GoDSP struct{}

// Name returns the backend name.
func (GoDSP) Name() string { return NameGoDSP }

// NewPlan returns a go-dsp plan for sequences of length n.
func (GoDSP) NewPlan(n int) Plan {
	return godspPlan(n)
}

// godspPlan only records the length; go-dsp caches its own factors.
type godspPlan int

func (p godspPlan) Len() int { return int(p) }

func (p godspPlan) Forward(dst, seq []complex128) []complex128 {
	return place(dst, fft.FFT(seq))
}

// Inverse relies on go-dsp's IFFT, which already divides by N.
func (p godspPlan) Inverse(dst, coeff []complex128) []complex128 {
	return place(dst, fft.IFFT(coeff))
}

// place copies src into dst, returning src itself when dst is nil.
func place(dst, src []complex128) []complex128 {
	if dst == nil {
		return src
	}
	copy(dst, src)
	return dst
}
