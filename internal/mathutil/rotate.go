// Package mathutil provides numeric helpers shared by the signal generators:
// sample grids and image rotation.
package mathutil

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

// Rotate returns src rotated counter-clockwise by degrees about its
// geometric center ((rows-1)/2, (cols-1)/2), as seen with row 0 at the top.
// The output has the same shape as src and pixels whose source position
// falls outside src are zero.
//
// Values are resampled with the Catmull-Rom cubic kernel of
// golang.org/x/image/draw through a 16-bit gray image, so src is expected
// to hold a mask in [0, 1]. Values outside that range are clamped and
// results are quantized to 1/65535.
func Rotate(src mat.Matrix, degrees float64) *mat.Dense {
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}

	in := toGray16(src)
	out := image.NewGray16(in.Bounds())
	draw.CatmullRom.Transform(out, rotation(r, c, degrees), in, in.Bounds(), draw.Src, nil)

	return fromGray16(out)
}

// rotation maps source pixel coordinates to destination coordinates for a
// counter-clockwise turn about the image center. x/image/draw places pixel
// centers at half-integer coordinates, so the center is (cols/2, rows/2).
func rotation(rows, cols int, degrees float64) f64.Aff3 {
	sin, cos := math.Sincos(degrees * degreesToRadians)
	cx := float64(cols) / halfDivisor
	cy := float64(rows) / halfDivisor

	// With y pointing down, a visual counter-clockwise turn is
	// x' = cos·u + sin·v, y' = -sin·u + cos·v for offsets (u, v).
	return f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}
}

func toGray16(m mat.Matrix) *image.Gray16 {
	r, c := m.Dims()
	img := image.NewGray16(image.Rect(0, 0, c, r))
	for i := range r {
		for j := range c {
			img.SetGray16(j, i, gray16(m.At(i, j)))
		}
	}
	return img
}

func fromGray16(img *image.Gray16) *mat.Dense {
	b := img.Bounds()
	out := mat.NewDense(b.Dy(), b.Dx(), nil)
	for i := range b.Dy() {
		for j := range b.Dx() {
			out.Set(i, j, float64(img.Gray16At(j, i).Y)/maxGray16)
		}
	}
	return out
}

// gray16 quantizes v, clamped to [0, 1], to a 16-bit gray level. NaN maps
// to black.
func gray16(v float64) color.Gray16 {
	if !(v > 0) {
		return color.Gray16{}
	}
	return color.Gray16{Y: uint16(math.Round(math.Min(v, 1) * maxGray16))}
}
