package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/hatch"
)

func TestLines_DrawsInk(t *testing.T) {
	lines := []hatch.Line{
		hatch.L(0, 5, 20, 5),
		hatch.L(10, 0, 10, 10),
	}

	img := Lines(lines, Options{Scale: 4, StrokeWidth: 1})
	require.NotNil(t, img)

	b := img.Bounds()
	assert.Greater(t, b.Dx(), 20)
	assert.Greater(t, b.Dy(), 10)

	dark := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r < 0x8000 && g < 0x8000 && bl < 0x8000 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 50, "strokes should leave dark pixels")
}

func TestLines_FixedSize(t *testing.T) {
	img := Lines([]hatch.Line{hatch.L(0, 0, 10, 10)}, Options{Width: 64, Height: 48})
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestLines_EmptyInput(t *testing.T) {
	img := Lines(nil, Options{})
	require.NotNil(t, img)
	assert.GreaterOrEqual(t, img.Bounds().Dx(), 1)
}

func TestLines_CustomColors(t *testing.T) {
	lines := []hatch.Line{hatch.L(0, 0, 10, 0)}
	img := Lines(lines, Options{
		Scale:      4,
		Foreground: color.RGBA{R: 255, A: 255},
		Background: color.RGBA{R: 0, G: 0, B: 255, A: 255},
	})

	// Background must be blue somewhere.
	_, _, b, _ := img.At(img.Bounds().Max.X-1, img.Bounds().Max.Y-1).RGBA()
	assert.Greater(t, b, uint32(0x8000))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(&buf, []hatch.Line{hatch.L(0, 0, 10, 10)}, Options{Scale: 2})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
}
