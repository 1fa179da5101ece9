package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const valueTolerance = 1e-4

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestLoadGray_ValueChannel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 51, B: 102, A: 255})
	img.Set(2, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(0, 1, color.RGBA{A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(2, 1, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	path := filepath.Join(t.TempDir(), "in.png")
	writePNG(t, path, img)

	gray, err := LoadGray(path)
	require.NoError(t, err)

	r, c := gray.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	assert.InDelta(t, 1.0, gray.At(0, 0), valueTolerance)
	assert.InDelta(t, 102.0/255, gray.At(0, 1), valueTolerance)
	assert.InDelta(t, 30.0/255, gray.At(0, 2), valueTolerance)
	assert.InDelta(t, 0.0, gray.At(1, 0), valueTolerance)
	assert.InDelta(t, 1.0, gray.At(1, 1), valueTolerance)
	assert.InDelta(t, 128.0/255, gray.At(1, 2), valueTolerance)
}

func TestValueChannel_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(5, 5, 7, 6))
	img.SetGray(6, 5, color.Gray{Y: 255})

	gray, err := ValueChannel(img, "offset")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, gray.At(0, 0), valueTolerance)
	assert.InDelta(t, 1.0, gray.At(0, 1), valueTolerance)
}

func TestValueChannel_Empty(t *testing.T) {
	_, err := ValueChannel(image.NewGray(image.Rect(0, 0, 0, 0)), "empty")
	require.ErrorIs(t, err, ErrIO)
}

func TestLoadGray_FileNotFound(t *testing.T) {
	_, err := LoadGray("/nonexistent/image.png")
	require.ErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), "/nonexistent/image.png")
}

func TestLoadGray_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadGray(path)
	require.ErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), "decode")
}
