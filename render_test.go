package fourierlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Delta Function", "Delta_Function.png"},
		{"Box Car", "Box_Car.png"},
		{"Gaussian", "Gaussian.png"},
		{"a  b", "a__b.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputName(tt.label))
	}
}

func TestIterationName(t *testing.T) {
	assert.Equal(t, "sqwave_01.png", IterationName("sqwave", 1))
	assert.Equal(t, "sqwave_10.png", IterationName("sqwave", 10))
	assert.Equal(t, "sqwave_123.png", IterationName("sqwave", 123))
	assert.Equal(t, "sqwave_07.wav", AudioName("sqwave", 7))
}

func TestScaleValues_FloorsBeforeLog(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{0, 1e-5, 1000})
	got := ScaleValues(m, ImageOptions{Scaling: ScaleLog})
	assert.InDelta(t, -2.0, got.At(0, 0), 1e-12)
	assert.InDelta(t, -2.0, got.At(0, 1), 1e-12)
	assert.InDelta(t, 3.0, got.At(0, 2), 1e-12)
	assert.InDelta(t, 1e-2, DefaultLogFloor, 0)
}
