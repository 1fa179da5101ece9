package fourierlab

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Shape names one of the reference 2D test images.
type Shape int

const (
	// ShapeCircle is a radius 32 disc centered in a 256×256 image.
	ShapeCircle Shape = iota

	// ShapeBox is a 16×32 box centered in a 256×256 image.
	ShapeBox

	// ShapeRotatedBox is ShapeBox rotated by 45 degrees.
	ShapeRotatedBox

	// ShapeOffsetBox is a 16×32 box centered at column 64, rotated by
	// 20 degrees about the image center.
	ShapeOffsetBox
)

var shapeNames = [...]string{
	ShapeCircle:     "circle",
	ShapeBox:        "box",
	ShapeRotatedBox: "rotated-box",
	ShapeOffsetBox:  "offset-box",
}

// String returns the shape name as accepted by ParseShape.
func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape converts a shape name to a Shape. The empty string selects
// ShapeCircle.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ShapeCircle, nil
	}
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidParameter, name)
}

// Image generates the shape.
func (s Shape) Image() (*mat.Dense, error) {
	box := BoxSpec{
		CenterX:    demoImageCenter,
		CenterY:    demoImageCenter,
		Width:      demoBoxWidth,
		Height:     demoBoxHeight,
		ArrayWidth: demoImageWidth,
	}

	switch s {
	case ShapeCircle:
		return FilledCircle(demoImageCenter, demoImageCenter, demoCircleRadius, demoImageWidth)
	case ShapeBox:
	case ShapeRotatedBox:
		box.RotationDeg = demoBoxRotation
	case ShapeOffsetBox:
		box.CenterX = demoBoxOffset
		box.RotationDeg = demoOffsetBoxRotation
	default:
		return nil, fmt.Errorf("%w: unsupported shape %v", ErrInvalidParameter, s)
	}
	return FilledBox(box)
}
