package fourierlab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fourier-lab/internal/testutil"
	"gonum.org/v1/gonum/mat"
)

func polarPair(t *testing.T) (Polar2D, Polar2D) {
	t.Helper()
	circle, err := FilledCircle(8, 8, 4, 16)
	require.NoError(t, err)
	box, err := FilledBox(BoxSpec{CenterX: 6, CenterY: 9, Width: 4, Height: 8, ArrayWidth: 16})
	require.NoError(t, err)

	a, err := Spectrum2D(circle)
	require.NoError(t, err)
	b, err := Spectrum2D(box)
	require.NoError(t, err)
	return a, b
}

func TestSwapPhases(t *testing.T) {
	a, b := polarPair(t)

	a2, b2, err := SwapPhases(a, b)
	require.NoError(t, err)
	testutil.AssertDenseInDelta(t, a.Magnitude, a2.Magnitude, 0)
	testutil.AssertDenseInDelta(t, b.Phase, a2.Phase, 0)
	testutil.AssertDenseInDelta(t, b.Magnitude, b2.Magnitude, 0)
	testutil.AssertDenseInDelta(t, a.Phase, b2.Phase, 0)

	// Results own their planes.
	a2.Magnitude.Set(0, 0, -1)
	assert.NotEqual(t, -1.0, a.Magnitude.At(0, 0))
}

func TestSwapPhases_TwiceIsIdentity(t *testing.T) {
	a, b := polarPair(t)

	a2, b2, err := SwapPhases(a, b)
	require.NoError(t, err)
	a3, b3, err := SwapPhases(a2, b2)
	require.NoError(t, err)

	for _, pair := range [][2]Polar2D{{a, a3}, {b, b3}} {
		want, err := pair[0].Recombine()
		require.NoError(t, err)
		got, err := pair[1].Recombine()
		require.NoError(t, err)
		testutil.AssertCDenseInDelta(t, want, got, testutil.RoundTripTolerance)
	}
}

func TestSwapMagnitudes(t *testing.T) {
	a, b := polarPair(t)

	a2, b2, err := SwapMagnitudes(a, b)
	require.NoError(t, err)
	testutil.AssertDenseInDelta(t, b.Magnitude, a2.Magnitude, 0)
	testutil.AssertDenseInDelta(t, a.Phase, a2.Phase, 0)
	testutil.AssertDenseInDelta(t, a.Magnitude, b2.Magnitude, 0)
	testutil.AssertDenseInDelta(t, b.Phase, b2.Phase, 0)
}

func TestSwap_ShapeMismatch(t *testing.T) {
	a := Polar2D{Magnitude: mat.NewDense(2, 2, nil), Phase: mat.NewDense(2, 2, nil)}
	b := Polar2D{Magnitude: mat.NewDense(2, 3, nil), Phase: mat.NewDense(2, 3, nil)}

	_, _, err := SwapPhases(a, b)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, _, err = SwapMagnitudes(a, b)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, _, err = Recombination(SwapPhase, a, b, 0)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, _, err = SwapPhases(a, Polar2D{})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestRandomPhase(t *testing.T) {
	const rows, cols = 32, 24

	p, err := RandomPhase(rows, cols, NewSource(42))
	require.NoError(t, err)

	r, c := p.Dims()
	assert.Equal(t, rows, r)
	assert.Equal(t, cols, c)
	data := p.RawMatrix().Data
	testutil.AssertAllInRange(t, data, 0, math.Pi)
	assert.InDelta(t, math.Pi/2, mat.Sum(p)/float64(rows*cols), 0.2)

	again, err := RandomPhase(rows, cols, NewSource(42))
	require.NoError(t, err)
	testutil.AssertDenseInDelta(t, p, again, 0)

	other, err := RandomPhase(rows, cols, NewSource(43))
	require.NoError(t, err)
	assert.False(t, mat.Equal(p, other))
}

func TestRandomMagnitude(t *testing.T) {
	m, err := RandomMagnitude(16, 16, NewSource(1))
	require.NoError(t, err)
	testutil.AssertAllInRange(t, m.RawMatrix().Data, 0, 1)
	assert.Less(t, mat.Max(m), 1.0)
}

func TestRandom_Errors(t *testing.T) {
	_, err := RandomPhase(0, 4, NewSource(1))
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = RandomMagnitude(4, 4, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestRecombination_Modes(t *testing.T) {
	a, b := polarPair(t)
	const seed = 7

	t.Run("phase", func(t *testing.T) {
		fa, fb, err := Recombination(SwapPhase, a, b, seed)
		require.NoError(t, err)
		want, err := Recombine2D(a.Magnitude, b.Phase)
		require.NoError(t, err)
		testutil.AssertCDenseInDelta(t, want, fa, testutil.DefaultTolerance)
		want, err = Recombine2D(b.Magnitude, a.Phase)
		require.NoError(t, err)
		testutil.AssertCDenseInDelta(t, want, fb, testutil.DefaultTolerance)
	})

	t.Run("magnitude", func(t *testing.T) {
		fa, _, err := Recombination(SwapMagnitude, a, b, seed)
		require.NoError(t, err)
		got := Decompose2D(fa)
		testutil.AssertDenseInDelta(t, b.Magnitude, got.Magnitude, 1e-9)
	})

	t.Run("random phase", func(t *testing.T) {
		fa, fb, err := Recombination(RandomPhaseMode, a, b, seed)
		require.NoError(t, err)
		pa, pb := Decompose2D(fa), Decompose2D(fb)
		testutil.AssertDenseInDelta(t, a.Magnitude, pa.Magnitude, 1e-9)
		testutil.AssertDenseInDelta(t, b.Magnitude, pb.Magnitude, 1e-9)

		// Both spectra share one random phase plane.
		phase, err := RandomPhase(16, 16, NewSource(seed))
		require.NoError(t, err)
		want, err := Recombine2D(a.Magnitude, phase)
		require.NoError(t, err)
		testutil.AssertCDenseInDelta(t, want, fa, testutil.DefaultTolerance)
		want, err = Recombine2D(b.Magnitude, phase)
		require.NoError(t, err)
		testutil.AssertCDenseInDelta(t, want, fb, testutil.DefaultTolerance)
	})

	t.Run("random magnitude", func(t *testing.T) {
		fa, fb, err := Recombination(RandomMagnitudeMode, a, b, seed)
		require.NoError(t, err)
		pa, pb := Decompose2D(fa), Decompose2D(fb)
		testutil.AssertDenseInDelta(t, pa.Magnitude, pb.Magnitude, 1e-9)
		testutil.AssertAllInRange(t, pa.Magnitude.RawMatrix().Data, 0, 1+1e-9)
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := Recombination(SwapMode(99), a, b, seed)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestSwapImages(t *testing.T) {
	a := testutil.RandomDense(8, 8, 1)
	b := testutil.RandomDense(8, 8, 2)

	// Swapping twice through the full pipeline restores both images.
	a2, b2, err := SwapImages(a, b, SwapPhase, 0)
	require.NoError(t, err)
	a3, b3, err := SwapImages(a2, b2, SwapPhase, 0)
	require.NoError(t, err)

	testutil.AssertDenseInDelta(t, a, a3, testutil.RoundTripTolerance)
	testutil.AssertDenseInDelta(t, b, b3, testutil.RoundTripTolerance)

	_, _, err = SwapImages(a, testutil.RandomDense(4, 8, 3), SwapPhase, 0)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, _, err = SwapImages(nil, b, SwapPhase, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSwapImages_SelfPair(t *testing.T) {
	a := testutil.RandomDense(6, 10, 4)
	a2, b2, err := SwapImages(a, a, SwapPhase, 0)
	require.NoError(t, err)
	testutil.AssertDenseInDelta(t, a, a2, testutil.RoundTripTolerance)
	testutil.AssertDenseInDelta(t, a, b2, testutil.RoundTripTolerance)
}

func TestParseSwapMode(t *testing.T) {
	for _, m := range []SwapMode{SwapPhase, SwapMagnitude, RandomPhaseMode, RandomMagnitudeMode} {
		got, err := ParseSwapMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseSwapMode("")
	require.NoError(t, err)
	assert.Equal(t, SwapPhase, got)

	_, err = ParseSwapMode("both")
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, "SwapMode(9)", SwapMode(9).String())
}
