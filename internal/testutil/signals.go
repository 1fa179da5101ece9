package testutil

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// RandomDense returns an r×c matrix of uniform [0,1) values from a seeded
// PCG source, so every run sees the same data.
func RandomDense(r, c int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewPCG(seed, seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(r, c, data)
}

// RandomComplex returns n complex values with uniform [-1,1) parts.
func RandomComplex(n int, seed uint64) []complex128 {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
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
