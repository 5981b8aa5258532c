package hatch

import "math"

// SketchyConfig configures the hand-drawn perturbation filter.
//
// The filter jitters line endpoints and bows each line at one or two
// interior control points, in the manner of RoughJS. With DoubleStroke
// every input line is drawn twice with independent samples.
type SketchyConfig struct {
	// Roughness scales endpoint jitter. 0 disables it.
	Roughness float64
	// Bowing scales the perpendicular midpoint offset. 0 draws
	// straight segments.
	Bowing float64
	// DoubleStroke draws each line twice with independent jitter.
	DoubleStroke bool
	// Seed makes output reproducible. Zero uses the package default
	// seed, which is itself deterministic.
	Seed uint64
}

// DefaultSketchyConfig returns the standard hand-drawn look:
// roughness 1, bowing 1, double stroke on.
func DefaultSketchyConfig() SketchyConfig {
	return SketchyConfig{
		Roughness:    1,
		Bowing:       1,
		DoubleStroke: true,
	}
}

// Sketchify applies the hand-drawn effect to every line. Output is
// deterministic for a given config.
func Sketchify(lines []Line, cfg SketchyConfig) []Line {
	seed := cfg.Seed
	if seed == 0 {
		seed = seedSketchy
	}
	rng := NewRand(seed)

	result := make([]Line, 0, len(lines)*4)
	for _, line := range lines {
		result = append(result, sketchifyLine(line, cfg, rng)...)
	}
	return result
}

// sketchifyLine perturbs one line into its sketchy strokes.
func sketchifyLine(line Line, cfg SketchyConfig, rng *Rand) []Line {
	length := line.Length()
	if length < 1e-3 {
		return nil
	}

	// Jitter radius grows with line length up to a cap, so short
	// strokes stay legible and long ones still look loose.
	jitter := cfg.Roughness * math.Min(length, 20) * 0.05

	dx := line.X2 - line.X1
	dy := line.Y2 - line.Y1
	perpX := -dy / length
	perpY := dx / length

	strokes := 1
	if cfg.DoubleStroke {
		strokes = 2
	}

	var result []Line
	for s := 0; s < strokes; s++ {
		// The second stroke hugs the line a little closer.
		scale := 1.0
		if s == 1 {
			scale = 0.7
		}

		x1 := line.X1 + rng.Signed()*jitter*scale
		y1 := line.Y1 + rng.Signed()*jitter*scale
		x2 := line.X2 + rng.Signed()*jitter*scale
		y2 := line.Y2 + rng.Signed()*jitter*scale

		if length > 30 {
			// Two interior control points approximate a gentle S-curve.
			bow1 := cfg.Bowing * rng.Signed() * scale
			bow2 := cfg.Bowing * rng.Signed() * scale

			ax := x1 + (x2-x1)/3 + perpX*bow1
			ay := y1 + (y2-y1)/3 + perpY*bow1
			bx := x1 + (x2-x1)*2/3 + perpX*bow2
			by := y1 + (y2-y1)*2/3 + perpY*bow2

			result = append(result,
				L(x1, y1, ax, ay),
				L(ax, ay, bx, by),
				L(bx, by, x2, y2),
			)
		} else {
			bow := cfg.Bowing * rng.Signed() * scale
			mx := (x1+x2)/2 + perpX*bow
			my := (y1+y2)/2 + perpY*bow

			result = append(result,
				L(x1, y1, mx, my),
				L(mx, my, x2, y2),
			)
		}
	}
	return result
}

// PolygonOutline converts a polygon's boundary (outer ring and holes)
// into line segments, for outlining shapes before or instead of filling.
func PolygonOutline(polygon Polygon) []Line {
	var lines []Line

	emit := func(ring []Point) {
		if len(ring) < 2 {
			return
		}
		for i := range ring {
			j := (i + 1) % len(ring)
			lines = append(lines, LineBetween(ring[i], ring[j]))
		}
	}

	emit(polygon.Outer)
	for _, hole := range polygon.Holes {
		emit(hole)
	}
	return lines
}
