// Package render draws matrices as grayscale heatmaps and 1D signals as
// multi-panel line figures, writing PNG files with gonum/plot.
//
// Each call builds its own plot and canvas and closes its output file
// before returning; nothing is shared between calls.
package render

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
)

// Scaling selects how image values map to gray levels.
type Scaling int

const (
	// ScaleLinear maps values linearly between the image minimum and maximum.
	ScaleLinear Scaling = iota

	// ScaleLog maps log10 of the values, after raising anything below the
	// floor to the floor.
	ScaleLog
)

// String returns the scaling name.
func (s Scaling) String() string {
	switch s {
	case ScaleLinear:
		return "linear"
	case ScaleLog:
		return "log"
	default:
		return fmt.Sprintf("Scaling(%d)", int(s))
	}
}

// ImageOptions controls RenderImage.
type ImageOptions struct {
	// Title is drawn above the image when non-empty.
	Title string

	// Scaling selects linear or logarithmic gray mapping.
	Scaling Scaling

	// LogFloor is the smallest value kept by ScaleLog. Zero selects
	// DefaultLogFloor.
	LogFloor float64
}

// Series is one line in a panel. A nil X plots Y against its sample index.
type Series struct {
	X []float64
	Y []float64
}

// Panel is one subplot of a figure.
type Panel struct {
	Title  string
	XLabel string
	YLabel string

	// XMin and XMax fix the x range when XMax > XMin.
	XMin, XMax float64

	Series []Series
}

// Figure is a row of panels rendered side by side.
type Figure struct {
	Panels []Panel
}

// Config sizes the rendered output.
type Config struct {
	// ImageSize is the edge length of square image renders.
	ImageSize vg.Length

	// PanelWidth and FigureHeight size each panel of a figure.
	PanelWidth   vg.Length
	FigureHeight vg.Length

	// GrayLevels is the number of distinct gray shades in image renders.
	GrayLevels int
}

// DefaultConfig returns sizes matching the reference figures: 8in square
// images and 5in by 6in panels.
func DefaultConfig() Config {
	return Config{
		ImageSize:    defaultImageInches * vg.Inch,
		PanelWidth:   defaultPanelInches * vg.Inch,
		FigureHeight: defaultFigureHeightInches * vg.Inch,
		GrayLevels:   defaultGrayLevels,
	}
}

// ScaleValues returns the values that will be mapped to gray for m under
// opts. The input is not modified.
func ScaleValues(m mat.Matrix, opts ImageOptions) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Copy(m)
	if opts.Scaling != ScaleLog {
		return out
	}

	floor := opts.LogFloor
	if floor <= 0 {
		floor = DefaultLogFloor
	}
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Log10(math.Max(v, floor))
	}, out)

	return out
}
