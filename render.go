package fourierlab

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-fourier-lab/internal/render"
	"gonum.org/v1/gonum/mat"
)

// Renderer persists arrays as images. Each call opens, writes, and closes
// its own output file before returning.
type Renderer interface {
	// RenderImage draws a real matrix as a grayscale image.
	RenderImage(img mat.Matrix, path string, opts ImageOptions) error

	// RenderFigure draws a row of line plots.
	RenderFigure(fig Figure, path string) error
}

// Presentation types shared with the PNG renderer.
type (
	Scaling      = render.Scaling
	ImageOptions = render.ImageOptions
	Figure       = render.Figure
	Panel        = render.Panel
	Series       = render.Series
	RenderConfig = render.Config
)

// Scaling modes.
const (
	ScaleLinear = render.ScaleLinear
	ScaleLog    = render.ScaleLog
)

// DefaultLogFloor is the clamp applied before log scaling.
const DefaultLogFloor = render.DefaultLogFloor

// DefaultRenderConfig returns the default output sizes.
func DefaultRenderConfig() RenderConfig {
	return render.DefaultConfig()
}

// NewPNGRenderer returns a Renderer that writes PNG files with gonum/plot.
// Zero fields of cfg take their defaults.
func NewPNGRenderer(cfg RenderConfig) Renderer {
	return render.NewPNG(cfg)
}

// ScaleValues returns the values a renderer maps to gray for m under opts.
func ScaleValues(m mat.Matrix, opts ImageOptions) *mat.Dense {
	return render.ScaleValues(m, opts)
}

// OutputName returns the file name for a labelled artifact: the label with
// spaces replaced by underscores, plus ".png".
func OutputName(label string) string {
	return strings.ReplaceAll(label, " ", "_") + pngExtension
}

// IterationName returns prefix_NN.png, zero padding the iteration so
// names sort in order.
func IterationName(prefix string, n int) string {
	return fmt.Sprintf(iterationFormat, prefix, n) + pngExtension
}

// AudioName is the WAV counterpart of IterationName.
func AudioName(prefix string, n int) string {
	return fmt.Sprintf(iterationFormat, prefix, n) + wavExtension
}
