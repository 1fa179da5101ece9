package render

import "gonum.org/v1/plot/vg"

// DefaultLogFloor is the value below which ScaleLog clamps before taking
// the logarithm.
const DefaultLogFloor = 1e-2

// Output size defaults
const (
	defaultImageInches        = 8
	defaultPanelInches        = 5
	defaultFigureHeightInches = 6
)

// Palette constants
const (
	defaultGrayLevels = 256
	minGrayLevels     = 2
)

// Colorbar layout: a fraction of the image size, but never narrower than
// its tick labels need.
const (
	colorBarFraction = 5
	minColorBarWidth = vg.Inch
)
