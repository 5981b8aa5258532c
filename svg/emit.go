package svg

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/hatch"
)

// EmitOptions configures SVG output.
type EmitOptions struct {
	// Width and Height set the document size. When zero, the size is
	// computed from the content's bounding box plus Margin.
	Width, Height float64
	// Margin pads the computed bounds on every side.
	Margin float64
	// StrokeWidth for emitted paths; defaults to 1.
	StrokeWidth float64
	// Stroke color; defaults to black.
	Stroke string
}

func (o *EmitOptions) fillDefaults() {
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 1
	}
	if o.Stroke == "" {
		o.Stroke = "#000000"
	}
}

// WriteLines writes segments as one SVG path per line.
func WriteLines(w io.Writer, lines []hatch.Line, opts EmitOptions) error {
	chains := make([]hatch.Chain, len(lines))
	for i, l := range lines {
		chains[i] = hatch.Chain{l.Start(), l.End()}
	}
	return WriteChains(w, chains, opts)
}

// WriteChains writes polylines as one SVG path per chain. Chained
// output keeps the document small and maps one path to one pen-down
// stroke on a plotter.
func WriteChains(w io.Writer, chains []hatch.Chain, opts EmitOptions) error {
	opts.fillDefaults()

	width, height, offsetX, offsetY := emitBounds(chains, opts)

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"%g %g %g %g\">\n",
		width, height, offsetX, offsetY, width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"<g fill=\"none\" stroke=\"%s\" stroke-width=\"%g\" stroke-linecap=\"round\">\n",
		opts.Stroke, opts.StrokeWidth); err != nil {
		return err
	}

	for _, chain := range chains {
		if len(chain) < 2 {
			continue
		}
		if _, err := fmt.Fprintf(w, "<path d=\"M %.3f %.3f", chain[0].X, chain[0].Y); err != nil {
			return err
		}
		for _, p := range chain[1:] {
			if _, err := fmt.Fprintf(w, " L %.3f %.3f", p.X, p.Y); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\"/>\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</g>\n</svg>\n")
	return err
}

// emitBounds resolves the output document size and origin.
func emitBounds(chains []hatch.Chain, opts EmitOptions) (width, height, offsetX, offsetY float64) {
	if opts.Width > 0 && opts.Height > 0 {
		return opts.Width, opts.Height, 0, 0
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, chain := range chains {
		for _, p := range chain {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return 1, 1, 0, 0
	}

	m := opts.Margin
	return maxX - minX + 2*m, maxY - minY + 2*m, minX - m, minY - m
}
