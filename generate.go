package fourierlab

import (
	"fmt"
	"math"

	"github.com/tphakala/go-fourier-lab/internal/mathutil"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Impulse returns a signal of the given length that is 1 at position and 0
// elsewhere.
func Impulse(length, position int) ([]float64, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: impulse length must be at least 1, got %d", ErrInvalidParameter, length)
	}
	if position < 0 || position >= length {
		return nil, fmt.Errorf("%w: impulse position %d not in [0, %d)", ErrOutOfRange, position, length)
	}

	out := make([]float64, length)
	out[position] = 1
	return out, nil
}

// Boxcar returns a signal of the given length that is 1 on [start, end) and
// 0 elsewhere.
func Boxcar(length, start, end int) ([]float64, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: boxcar length must be at least 1, got %d", ErrInvalidParameter, length)
	}
	if start < 0 || start > end || end > length {
		return nil, fmt.Errorf("%w: boxcar [%d, %d) not within [0, %d]", ErrOutOfRange, start, end, length)
	}

	out := make([]float64, length)
	for i := start; i < end; i++ {
		out[i] = 1
	}
	return out, nil
}

// Gaussian samples the normal density with mean 0 and standard deviation
// sigma at length evenly spaced points from -center to length-center. The
// result keeps density scale; it is not normalized to a peak of 1.
//
// With center = 0 the peak sits at index 0 and only the right half of the
// bell is visible, which is the shape the reference 1D figures show.
func Gaussian(length int, center, sigma float64) ([]float64, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: gaussian length must be at least 1, got %d", ErrInvalidParameter, length)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: gaussian sigma must be positive and finite, got %v", ErrInvalidParameter, sigma)
	}
	if math.IsNaN(center) || math.IsInf(center, 0) {
		return nil, fmt.Errorf("%w: gaussian center must be finite, got %v", ErrInvalidParameter, center)
	}

	x := mathutil.Linspace(-center, float64(length)-center, length)
	dist := distuv.Normal{Mu: 0, Sigma: sigma}

	out := make([]float64, length)
	for i, v := range x {
		out[i] = dist.Prob(v)
	}
	return out, nil
}

// FilledCircle returns a width×width image that is 1 where the distance from
// (centerX, centerY) is strictly less than radius. centerX is a column
// coordinate and centerY a row coordinate.
func FilledCircle(centerX, centerY, radius float64, width int) (*mat.Dense, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: image width must be at least 1, got %d", ErrInvalidParameter, width)
	}
	if !(radius >= 0) {
		return nil, fmt.Errorf("%w: circle radius must be non-negative, got %v", ErrInvalidParameter, radius)
	}

	out := mat.NewDense(width, width, nil)
	for i := range width {
		for j := range width {
			if math.Hypot(float64(j)-centerX, float64(i)-centerY) < radius {
				out.Set(i, j, 1)
			}
		}
	}
	return out, nil
}

// BoxSpec describes a filled rectangle in a square image.
type BoxSpec struct {
	// CenterX and CenterY locate the box center as column and row.
	CenterX int
	CenterY int

	// Width spans columns and Height spans rows. The box covers rows
	// [CenterY-Height/2, CenterY+Height/2) and columns
	// [CenterX-Width/2, CenterX+Width/2), using integer halves.
	Width  int
	Height int

	// ArrayWidth is the side of the square output image.
	ArrayWidth int

	// RotationDeg rotates the filled image counter-clockwise about its
	// geometric center. Zero leaves the box axis aligned.
	RotationDeg float64
}

// Validate checks that the box fits inside the image.
func (s *BoxSpec) Validate() error {
	if s.ArrayWidth < 1 {
		return fmt.Errorf("%w: image width must be at least 1, got %d", ErrInvalidParameter, s.ArrayWidth)
	}
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: box size must be non-negative, got %dx%d", ErrInvalidParameter, s.Width, s.Height)
	}
	if math.IsNaN(s.RotationDeg) || math.IsInf(s.RotationDeg, 0) {
		return fmt.Errorf("%w: rotation must be finite, got %v", ErrInvalidParameter, s.RotationDeg)
	}

	r0, r1, c0, c1 := s.extents()
	if r0 < 0 || c0 < 0 || r1 > s.ArrayWidth || c1 > s.ArrayWidth {
		return fmt.Errorf("%w: box rows [%d, %d) cols [%d, %d) exceed %dx%d image",
			ErrOutOfRange, r0, r1, c0, c1, s.ArrayWidth, s.ArrayWidth)
	}
	return nil
}

func (s *BoxSpec) extents() (r0, r1, c0, c1 int) {
	return s.CenterY - s.Height/halfDivisor, s.CenterY + s.Height/halfDivisor,
		s.CenterX - s.Width/halfDivisor, s.CenterX + s.Width/halfDivisor
}

// FilledBox returns the image described by spec. A non-zero rotation is
// applied with cubic (Catmull-Rom) interpolation clamped to [0, 1], so edges
// of a rotated box take fractional values.
func FilledBox(spec BoxSpec) (*mat.Dense, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := mat.NewDense(spec.ArrayWidth, spec.ArrayWidth, nil)
	r0, r1, c0, c1 := spec.extents()
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			out.Set(i, j, 1)
		}
	}

	if spec.RotationDeg == 0 {
		return out, nil
	}
	return mathutil.Rotate(out, spec.RotationDeg), nil
}
