package hatch

import "math"

// linesFill is the basic parallel hatch: lines along the context angle,
// stepped by spacing across the padded bounding region, clipped to the
// polygon body.
func linesFill(ctx *patternContext) []Line {
	dir := directionFromRadians(ctx.angleRad)
	lines := dir.parallelLines(ctx.center, ctx.spacing, ctx.lineCount(), ctx.padding())
	return ctx.clip(lines)
}

// crosshatchFill is two perpendicular sets of parallel hatch lines.
func crosshatchFill(ctx *patternContext) []Line {
	lines := linesFill(ctx)

	perp := ctx.withAngle(ctx.angleDeg + 90)
	lines = append(lines, linesFill(&perp)...)
	return lines
}

// gridFill is a square grid: horizontal and vertical line sets at the
// cell spacing, rotated together by the context angle.
func gridFill(ctx *patternContext) []Line {
	h := directionFromRadians(ctx.angleRad)
	v := directionFromRadians(ctx.angleRad + rightAngle)

	n := ctx.lineCount()
	pad := ctx.padding()
	lines := h.parallelLines(ctx.center, ctx.spacing, n, pad)
	lines = append(lines, v.parallelLines(ctx.center, ctx.spacing, n, pad)...)
	return ctx.clip(lines)
}

// diagonalFill is parallel hatching that defaults to 45 degrees when the
// caller leaves the angle at zero (modulo full turns).
func diagonalFill(ctx *patternContext) []Line {
	if math.Mod(ctx.angleDeg, 360) == 0 {
		d := ctx.withAngle(45)
		return linesFill(&d)
	}
	return linesFill(ctx)
}

// StripeConfig configures the stripe pattern: bands of closely spaced
// lines separated by a wider gap.
type StripeConfig struct {
	// LinesPerStripe is how many lines form one band.
	LinesPerStripe int
	// LineSpacing separates lines within a band.
	LineSpacing float64
	// StripeSpacing separates consecutive bands.
	StripeSpacing float64
}

// stripeFill groups parallel lines into bands of three with a larger
// inter-band gap derived from the spacing parameter.
func stripeFill(ctx *patternContext) []Line {
	return stripeFillConfigured(ctx, StripeConfig{
		LinesPerStripe: 3,
		LineSpacing:    ctx.spacing * 0.3,
		StripeSpacing:  ctx.spacing,
	})
}

func stripeFillConfigured(ctx *patternContext, cfg StripeConfig) []Line {
	if cfg.LinesPerStripe < 1 {
		return nil
	}

	dir := directionFromRadians(ctx.angleRad)
	pad := ctx.padding()

	bandWidth := float64(cfg.LinesPerStripe-1) * cfg.LineSpacing
	pitch := bandWidth + cfg.StripeSpacing
	if pitch <= 0 {
		return nil
	}
	numBands := int(pad/pitch) + 1

	var lines []Line
	for band := -numBands; band <= numBands; band++ {
		bandOffset := float64(band) * pitch

		for i := 0; i < cfg.LinesPerStripe; i++ {
			offset := bandOffset + (float64(i)-float64(cfg.LinesPerStripe-1)/2)*cfg.LineSpacing

			cx := ctx.center.X + dir.px*offset
			cy := ctx.center.Y + dir.py*offset
			lines = append(lines, Line{
				X1: cx - dir.dx*pad, Y1: cy - dir.dy*pad,
				X2: cx + dir.dx*pad, Y2: cy + dir.dy*pad,
			})
		}
	}
	return ctx.clip(lines)
}
