package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"

	// Decoders registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"gonum.org/v1/gonum/mat"
)

// LoadGray decodes the image at path and returns its HSV value channel,
// max(R, G, B), scaled to [0, 1]. Row 0 is the top of the image. Hue and
// saturation are discarded.
func LoadGray(path string) (*mat.Dense, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, Wrap(path, fmt.Errorf("decode: %w", err))
	}

	return ValueChannel(img, path)
}

// ValueChannel extracts the HSV value channel of img. name is only used in
// error messages.
func ValueChannel(img image.Image, name string) (*mat.Dense, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, Wrap(name, fmt.Errorf("empty image %v", b))
	}

	out := mat.NewDense(b.Dy(), b.Dx(), nil)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, _ := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
			v := max(c.R, c.G, c.B)
			out.Set(y-b.Min.Y, x-b.Min.X, float64(v)/maxChannelValue)
		}
	}

	return out, nil
}
