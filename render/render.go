// Package render rasterizes fill results to images for quick previews,
// using the golang.org/x/image vector rasterizer.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/hatch"
)

// Options configures preview rendering.
type Options struct {
	// Width and Height of the output image in pixels. When zero, the
	// size is derived from the content bounds at Scale.
	Width, Height int
	// Scale maps document units to pixels; defaults to 1.
	Scale float64
	// StrokeWidth in document units; defaults to 1.
	StrokeWidth float64
	// Foreground is the stroke color; defaults to black.
	Foreground color.Color
	// Background fills the canvas; defaults to white.
	Background color.Color
}

func (o *Options) fillDefaults() {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 1
	}
	if o.Foreground == nil {
		o.Foreground = color.Black
	}
	if o.Background == nil {
		o.Background = color.White
	}
}

// Lines rasterizes segments into an RGBA image. Each segment is drawn
// as a stroked quad through the vector rasterizer, so previews reflect
// the pen width.
func Lines(lines []hatch.Line, opts Options) *image.RGBA {
	opts.fillDefaults()

	minX, minY, maxX, maxY := bounds(lines)
	pad := opts.StrokeWidth

	width := opts.Width
	height := opts.Height
	if width == 0 || height == 0 {
		width = int(math.Ceil((maxX - minX + 2*pad) * opts.Scale))
		height = int(math.Ceil((maxY - minY + 2*pad) * opts.Scale))
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillBackground(img, opts.Background)

	r := vector.NewRasterizer(width, height)
	halfStroke := opts.StrokeWidth / 2 * opts.Scale

	toPx := func(p hatch.Point) (float32, float32) {
		return float32((p.X - minX + pad) * opts.Scale),
			float32((p.Y - minY + pad) * opts.Scale)
	}

	for _, l := range lines {
		length := l.Length()
		if length < 1e-9 {
			continue
		}

		// Perpendicular offset expands the segment into a quad.
		px := -(l.Y2 - l.Y1) / length
		py := (l.X2 - l.X1) / length

		offset := hatch.Point{X: px * halfStroke / opts.Scale, Y: py * halfStroke / opts.Scale}
		a := l.Start().Add(offset)
		b := l.End().Add(offset)
		c := l.End().Sub(offset)
		d := l.Start().Sub(offset)

		ax, ay := toPx(a)
		bx, by := toPx(b)
		cx, cy := toPx(c)
		dx, dy := toPx(d)

		r.MoveTo(ax, ay)
		r.LineTo(bx, by)
		r.LineTo(cx, cy)
		r.LineTo(dx, dy)
		r.ClosePath()
	}

	r.Draw(img, img.Bounds(), image.NewUniform(opts.Foreground), image.Point{})
	return img
}

// Chains rasterizes chained polylines.
func Chains(chains []hatch.Chain, opts Options) *image.RGBA {
	return Lines(hatch.ChainsToLines(chains), opts)
}

// WritePNG renders lines and encodes the image as PNG.
func WritePNG(w io.Writer, lines []hatch.Line, opts Options) error {
	return png.Encode(w, Lines(lines, opts))
}

func bounds(lines []hatch.Line) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, l := range lines {
		minX = math.Min(minX, math.Min(l.X1, l.X2))
		minY = math.Min(minY, math.Min(l.Y1, l.Y2))
		maxX = math.Max(maxX, math.Max(l.X1, l.X2))
		maxY = math.Max(maxY, math.Max(l.Y1, l.Y2))
	}
	if minX > maxX {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}

func fillBackground(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
