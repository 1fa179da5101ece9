package fourierlab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fourier-lab/internal/testutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestImpulse(t *testing.T) {
	got, err := Impulse(8, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 1, 0, 0, 0, 0}, got)
}

func TestImpulse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		position int
		want     error
	}{
		{"negative position", 8, -1, ErrOutOfRange},
		{"position at length", 8, 8, ErrOutOfRange},
		{"zero length", 0, 0, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Impulse(tt.length, tt.position)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBoxcar(t *testing.T) {
	got, err := Boxcar(8, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1, 1, 0, 0, 0}, got)

	empty, err := Boxcar(4, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, empty)

	full, err := Boxcar(3, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, full)
}

func TestBoxcar_Errors(t *testing.T) {
	tests := []struct {
		name               string
		length, start, end int
		want               error
	}{
		{"start after end", 8, 5, 2, ErrOutOfRange},
		{"negative start", 8, -1, 2, ErrOutOfRange},
		{"end past length", 8, 2, 9, ErrOutOfRange},
		{"zero length", 0, 0, 0, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Boxcar(tt.length, tt.start, tt.end)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGaussian_PeakAtCenterZero(t *testing.T) {
	const (
		length = 128
		sigma  = 16.0
	)

	got, err := Gaussian(length, 0, sigma)
	require.NoError(t, err)
	require.Len(t, got, length)

	peak := 1 / (sigma * math.Sqrt(2*math.Pi))
	assert.InDelta(t, peak, got[0], testutil.DefaultTolerance)
	assert.Equal(t, 0, floats.MaxIdx(got))

	// Samples decrease away from the center and keep density scale.
	for i := 1; i < length; i++ {
		assert.Less(t, got[i], got[i-1])
	}
	testutil.AssertAllInRange(t, got, 0, peak+testutil.DefaultTolerance)
}

func TestGaussian_SamplePositions(t *testing.T) {
	const (
		length = 5
		center = 2.0
		sigma  = 1.0
	)

	got, err := Gaussian(length, center, sigma)
	require.NoError(t, err)

	// Positions are linspace(-2, 3, 5): -2, -0.75, 0.5, 1.75, 3.
	positions := []float64{-2, -0.75, 0.5, 1.75, 3}
	for i, x := range positions {
		want := math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
		assert.InDelta(t, want, got[i], testutil.DefaultTolerance, "index %d", i)
	}
}

func TestGaussian_Errors(t *testing.T) {
	_, err := Gaussian(0, 0, 1)
	require.ErrorIs(t, err, ErrInvalidParameter)

	for _, sigma := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Gaussian(8, 0, sigma)
		require.ErrorIs(t, err, ErrInvalidParameter, "sigma %v", sigma)
	}

	_, err = Gaussian(8, math.NaN(), 1)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFilledCircle_StrictRadius(t *testing.T) {
	got, err := FilledCircle(2, 2, 1, 5)
	require.NoError(t, err)

	// The four neighbours sit exactly at the radius and stay empty.
	assert.InDelta(t, 1.0, mat.Sum(got), 0)
	assert.InDelta(t, 1.0, got.At(2, 2), 0)
}

func TestFilledCircle_ReferenceDisc(t *testing.T) {
	const (
		width  = 256
		center = 128.0
		radius = 32.0
	)

	got, err := FilledCircle(center, center, radius, width)
	require.NoError(t, err)

	r, c := got.Dims()
	assert.Equal(t, width, r)
	assert.Equal(t, width, c)
	assert.InDelta(t, math.Pi*radius*radius, mat.Sum(got), 2*math.Pi*radius)

	assert.InDelta(t, 1.0, got.At(128, 128), 0)
	assert.InDelta(t, 1.0, got.At(128, 97), 0)
	assert.InDelta(t, 0.0, got.At(128, 96), 0)
	assert.InDelta(t, 0.0, got.At(0, 0), 0)
}

func TestFilledCircle_ColumnIsX(t *testing.T) {
	got, err := FilledCircle(1, 3, 0.5, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.At(3, 1), 0)
	assert.InDelta(t, 1.0, mat.Sum(got), 0)
}

func TestFilledCircle_Errors(t *testing.T) {
	_, err := FilledCircle(0, 0, 1, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = FilledCircle(0, 0, -1, 4)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFilledBox_Extents(t *testing.T) {
	got, err := FilledBox(BoxSpec{CenterX: 2, CenterY: 1, Width: 2, Height: 2, ArrayWidth: 4})
	require.NoError(t, err)

	want := mat.NewDense(4, 4, []float64{
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	testutil.AssertDenseInDelta(t, want, got, 0)
}

func TestFilledBox_OddSizeUsesIntegerHalves(t *testing.T) {
	got, err := FilledBox(BoxSpec{CenterX: 3, CenterY: 3, Width: 3, Height: 5, ArrayWidth: 8})
	require.NoError(t, err)

	// Halves are 1 and 2, so the box is 2 columns by 4 rows.
	assert.InDelta(t, 8.0, mat.Sum(got), 0)
	assert.InDelta(t, 1.0, got.At(1, 2), 0)
	assert.InDelta(t, 0.0, got.At(5, 2), 0)
}

func TestFilledBox_Rotation90SwapsExtents(t *testing.T) {
	spec := BoxSpec{CenterX: 128, CenterY: 128, Width: 16, Height: 32, ArrayWidth: 256}
	upright, err := FilledBox(spec)
	require.NoError(t, err)

	spec.RotationDeg = 90
	rotated, err := FilledBox(spec)
	require.NoError(t, err)

	uRows, uCols := extent(upright)
	rRows, rCols := extent(rotated)
	assert.Equal(t, 32, uRows)
	assert.Equal(t, 16, uCols)
	assert.Equal(t, uRows, rCols)
	assert.Equal(t, uCols, rRows)
	assert.InDelta(t, mat.Sum(upright), mat.Sum(rotated), 1e-9)
}

func TestFilledBox_Rotation45(t *testing.T) {
	spec := BoxSpec{CenterX: 128, CenterY: 128, Width: 16, Height: 32, ArrayWidth: 256, RotationDeg: 45}
	got, err := FilledBox(spec)
	require.NoError(t, err)

	r, c := got.Dims()
	assert.Equal(t, 256, r)
	assert.Equal(t, 256, c)
	testutil.AssertAllInRange(t, got.RawMatrix().Data, 0, 1)

	// Cubic resampling preserves area up to edge effects.
	assert.InDelta(t, 16.0*32.0, mat.Sum(got), 16)
	assert.InDelta(t, 1.0, got.At(128, 128), 1e-9)
}

func TestFilledBox_ZeroRotationIsNoOp(t *testing.T) {
	spec := BoxSpec{CenterX: 64, CenterY: 128, Width: 16, Height: 32, ArrayWidth: 256}
	got, err := FilledBox(spec)
	require.NoError(t, err)

	assert.InDelta(t, 512.0, mat.Sum(got), 0)
	assert.InDelta(t, 1.0, got.At(112, 56), 0)
	assert.InDelta(t, 0.0, got.At(112, 72), 0)
}

func TestFilledBox_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec BoxSpec
		want error
	}{
		{"left edge", BoxSpec{CenterX: 1, CenterY: 4, Width: 4, Height: 2, ArrayWidth: 8}, ErrOutOfRange},
		{"bottom edge", BoxSpec{CenterX: 4, CenterY: 7, Width: 2, Height: 4, ArrayWidth: 8}, ErrOutOfRange},
		{"negative size", BoxSpec{CenterX: 4, CenterY: 4, Width: -2, Height: 2, ArrayWidth: 8}, ErrInvalidParameter},
		{"empty image", BoxSpec{}, ErrInvalidParameter},
		{"nan rotation", BoxSpec{CenterX: 4, CenterY: 4, ArrayWidth: 8, RotationDeg: math.NaN()}, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FilledBox(tt.spec)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestShape_Image(t *testing.T) {
	for _, s := range []Shape{ShapeCircle, ShapeBox, ShapeRotatedBox, ShapeOffsetBox} {
		t.Run(s.String(), func(t *testing.T) {
			img, err := s.Image()
			require.NoError(t, err)
			r, c := img.Dims()
			assert.Equal(t, 256, r)
			assert.Equal(t, 256, c)
			assert.Positive(t, mat.Sum(img))
		})
	}

	_, err := Shape(42).Image()
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestParseShape(t *testing.T) {
	for _, s := range []Shape{ShapeCircle, ShapeBox, ShapeRotatedBox, ShapeOffsetBox} {
		got, err := ParseShape(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseShape("")
	require.NoError(t, err)
	assert.Equal(t, ShapeCircle, got)

	_, err = ParseShape("triangle")
	require.ErrorIs(t, err, ErrInvalidParameter)
}

// extent counts the rows and columns containing a pixel above one half.
func extent(m *mat.Dense) (rows, cols int) {
	r, c := m.Dims()
	rowHit := make([]bool, r)
	colHit := make([]bool, c)
	for i := range r {
		for j := range c {
			if m.At(i, j) > 0.5 {
				rowHit[i] = true
				colHit[j] = true
			}
		}
	}
	for _, h := range rowHit {
		if h {
			rows++
		}
	}
	for _, h := range colHit {
		if h {
			cols++
		}
	}
	return rows, cols
}
