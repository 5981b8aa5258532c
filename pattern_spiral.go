package hatch

import "math"

// spiralFill draws an Archimedean spiral (r = a*theta) from the bbox
// center outward until the radius clears the polygon diagonal.
func spiralFill(ctx *patternContext) []Line {
	maxRadius := ctx.diagonal
	a := ctx.spacing / (2 * math.Pi)
	maxTheta := maxRadius / a

	var points []Point
	for theta := 0.0; theta < maxTheta; {
		r := a * theta
		points = append(points, Point{
			X: ctx.center.X + r*math.Cos(theta+ctx.angleRad),
			Y: ctx.center.Y + r*math.Sin(theta+ctx.angleRad),
		})
		// Adaptive step keeps chord length near spacing/2 at any radius.
		theta += math.Min(ctx.spacing/(2*math.Max(r, 1)), 0.5)
	}
	return ctx.clipSampledCurve(points)
}

// fermatFill draws a Fermat spiral (r = c*sqrt(n)) with samples placed
// at golden-angle increments.
func fermatFill(ctx *patternContext) []Line {
	maxRadius := ctx.diagonal / 2 * 1.5
	goldenAngle := math.Pi * (3 - math.Sqrt(5))
	c := ctx.spacing / math.Sqrt(math.Pi)

	var points []Point
	for n := 0; ; n++ {
		r := c * math.Sqrt(float64(n))
		if r > maxRadius {
			break
		}
		theta := float64(n)*goldenAngle + ctx.angleRad
		points = append(points, Point{
			X: ctx.center.X + r*math.Cos(theta),
			Y: ctx.center.Y + r*math.Sin(theta),
		})
	}
	return ctx.clipSampledCurve(points)
}

// crossSpiralFill overlays two Archimedean spirals with opposite winding
// around the same center.
func crossSpiralFill(ctx *patternContext) []Line {
	maxRadius := ctx.diagonal / 2 * 1.5
	a := ctx.spacing / math.Pi
	maxTheta := maxRadius / a

	lines := singleSpiral(ctx, a, ctx.angleRad, maxTheta, 1)
	lines = append(lines, singleSpiral(ctx, a, ctx.angleRad+math.Pi, maxTheta, -1)...)
	return lines
}

// singleSpiral samples one Archimedean arm; direction +1 winds one way,
// -1 the other.
func singleSpiral(ctx *patternContext, a, startAngle, maxTheta, direction float64) []Line {
	armGap := a * 2 * math.Pi

	var points []Point
	for theta := 0.0; theta < maxTheta; {
		r := a * theta
		angle := direction*theta + startAngle
		points = append(points, Point{
			X: ctx.center.X + r*math.Cos(angle),
			Y: ctx.center.Y + r*math.Sin(angle),
		})
		theta += math.Min(armGap/math.Max(r, 1), 0.5)
	}
	return ctx.clipSampledCurve(points)
}
