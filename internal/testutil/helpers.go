// Package testutil provides reusable assertions for spectral tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	RoundTripTolerance = 1e-9
	PixelTolerance     = 1e-6
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertSliceInDelta verifies two float slices have equal length and agree
// elementwise within tolerance.
func AssertSliceInDelta(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), "length mismatch") {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"mismatch at index %d: want %g, got %g", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertComplexInDelta verifies two complex slices agree elementwise: the
// distance |want-got| must not exceed tolerance·max(1, |want|).
func AssertComplexInDelta(t *testing.T, expected, actual []complex128, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), "length mismatch") {
		return false
	}
	for i := range expected {
		if !complexClose(expected[i], actual[i], tolerance) {
			return assert.Fail(t, "complex mismatch",
				"index %d: want %v, got %v (tolerance %g)", i, expected[i], actual[i], tolerance)
		}
	}
	return true
}

// AssertDenseInDelta verifies two real matrices share a shape and agree
// elementwise within tolerance.
func AssertDenseInDelta(t *testing.T, expected, actual mat.Matrix, tolerance float64) bool {
	t.Helper()
	er, ec := expected.Dims()
	ar, ac := actual.Dims()
	if er != ar || ec != ac {
		return assert.Fail(t, "shape mismatch", "want %dx%d, got %dx%d", er, ec, ar, ac)
	}
	for i := range er {
		for j := range ec {
			want, got := expected.At(i, j), actual.At(i, j)
			if math.Abs(want-got) > tolerance {
				return assert.Fail(t, "matrix mismatch",
					"(%d,%d): want %g, got %g (tolerance %g)", i, j, want, got, tolerance)
			}
		}
	}
	return true
}

// AssertCDenseInDelta is the complex counterpart of AssertDenseInDelta,
// using the relative metric of AssertComplexInDelta.
func AssertCDenseInDelta(t *testing.T, expected, actual mat.CMatrix, tolerance float64) bool {
	t.Helper()
	er, ec := expected.Dims()
	ar, ac := actual.Dims()
	if er != ar || ec != ac {
		return assert.Fail(t, "shape mismatch", "want %dx%d, got %dx%d", er, ec, ar, ac)
	}
	for i := range er {
		for j := range ec {
			want, got := expected.At(i, j), actual.At(i, j)
			if !complexClose(want, got, tolerance) {
				return assert.Fail(t, "matrix mismatch",
					"(%d,%d): want %v, got %v (tolerance %g)", i, j, want, got, tolerance)
			}
		}
	}
	return true
}

func complexClose(want, got complex128, tolerance float64) bool {
	return cmplx.Abs(want-got) <= tolerance*math.Max(1, cmplx.Abs(want))
}
