package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Arange returns start, start+step, ... for all values below stop, with
// length ceil((stop-start)/step) like numpy.arange. Each value is computed
// as start+i·step so rounding does not accumulate.
func Arange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
