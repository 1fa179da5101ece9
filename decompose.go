package fourierlab

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/mat"
)

// Polar1D is a spectrum split into magnitude and phase.
type Polar1D struct {
	Magnitude []float64
	Phase     []float64
}

// Polar2D is a 2D spectrum split into magnitude and phase.
type Polar2D struct {
	Magnitude *mat.Dense
	Phase     *mat.Dense
}

// Dims returns the shape of the magnitude plane.
func (p Polar2D) Dims() (r, c int) {
	if p.Magnitude == nil {
		return 0, 0
	}
	return p.Magnitude.Dims()
}

// Decompose1D returns |X| and arg(X) for every coefficient. Phases lie in
// (-π, π].
func Decompose1D(x []complex128) Polar1D {
	p := Polar1D{
		Magnitude: make([]float64, len(x)),
		Phase:     make([]float64, len(x)),
	}
	for i, v := range x {
		p.Magnitude[i] = cmplx.Abs(v)
		p.Phase[i] = cmplx.Phase(v)
	}
	return p
}

// Decompose2D is the 2D form of Decompose1D. A nil or empty spectrum
// yields a zero Polar2D.
func Decompose2D(x *mat.CDense) Polar2D {
	if x == nil {
		return Polar2D{}
	}
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return Polar2D{}
	}

	p := Polar2D{
		Magnitude: mat.NewDense(r, c, nil),
		Phase:     mat.NewDense(r, c, nil),
	}
	for i := range r {
		for j := range c {
			v := x.At(i, j)
			p.Magnitude.Set(i, j, cmplx.Abs(v))
			p.Phase.Set(i, j, cmplx.Phase(v))
		}
	}
	return p
}

// UnwrapPhase removes jumps larger than π between consecutive phases by
// adding multiples of 2π, following numpy.unwrap. The result is meant for
// plotting; recombination uses wrapped phases.
func UnwrapPhase(phase []float64) []float64 {
	out := make([]float64, len(phase))
	if len(phase) == 0 {
		return out
	}

	out[0] = phase[0]
	correction := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		if math.Abs(d) >= math.Pi {
			m := floorMod(d+math.Pi, 2*math.Pi) - math.Pi
			if m == -math.Pi && d > 0 {
				m = math.Pi
			}
			correction += m - d
		}
		out[i] = phase[i] + correction
	}
	return out
}

// floorMod is the modulo with the sign of the divisor.
func floorMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// Recombine1D returns mag[k]·exp(i·phase[k]). Negative magnitudes are used
// as given, which amounts to a phase offset of π.
func Recombine1D(mag, phase []float64) ([]complex128, error) {
	if len(mag) != len(phase) {
		return nil, fmt.Errorf("%w: %d magnitudes, %d phases", ErrShapeMismatch, len(mag), len(phase))
	}

	m := make([]complex128, len(mag))
	rot := make([]complex128, len(phase))
	for i := range mag {
		m[i] = complex(mag[i], 0)
		rot[i] = cmplx.Rect(1, phase[i])
	}

	out := make([]complex128, len(mag))
	c128.Mul(out, m, rot)
	return out, nil
}

// Recombine2D is the 2D form of Recombine1D.
func Recombine2D(mag, phase *mat.Dense) (*mat.CDense, error) {
	if mag == nil || phase == nil {
		return nil, fmt.Errorf("%w: nil magnitude or phase", ErrInvalidParameter)
	}
	mr, mc := mag.Dims()
	pr, pc := phase.Dims()
	if mr != pr || mc != pc {
		return nil, fmt.Errorf("%w: magnitude %dx%d, phase %dx%d", ErrShapeMismatch, mr, mc, pr, pc)
	}
	if mr == 0 || mc == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d spectrum", ErrInvalidParameter, mr, mc)
	}

	out := mat.NewCDense(mr, mc, nil)
	m := make([]complex128, mc)
	rot := make([]complex128, mc)
	row := make([]complex128, mc)
	for i := range mr {
		for j := range mc {
			m[j] = complex(mag.At(i, j), 0)
			rot[j] = cmplx.Rect(1, phase.At(i, j))
		}
		c128.Mul(row, m, rot)
		for j, v := range row {
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// Recombine rebuilds the spectrum described by p.
func (p Polar2D) Recombine() (*mat.CDense, error) {
	return Recombine2D(p.Magnitude, p.Phase)
}
