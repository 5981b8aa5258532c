package hatch

import "math"

// radialFill draws rays from the bbox center to the polygon boundary,
// one per angular step. The spacing parameter is the step in degrees,
// clamped to [1, 90].
func radialFill(ctx *patternContext) []Line {
	stepDeg := math.Max(1, math.Min(90, ctx.spacing))
	numRays := int(360 / stepDeg)
	maxRadius := ctx.diagonal

	centerInside := ctx.inside(ctx.center.X, ctx.center.Y)

	var lines []Line
	for i := 0; i < numRays; i++ {
		rayAngle := ctx.angleRad + float64(i)*stepDeg*degToRad
		endX := ctx.center.X + maxRadius*math.Cos(rayAngle)
		endY := ctx.center.Y + maxRadius*math.Sin(rayAngle)

		hits := ringIntersections(ctx.center.X, ctx.center.Y, endX, endY, ctx.polygon.Outer)
		if len(hits) == 0 {
			continue
		}

		if centerInside {
			// Ray runs from the center to the nearest boundary hit.
			first := hits[0]
			mid := Point{X: (ctx.center.X + first.x) / 2, Y: (ctx.center.Y + first.y) / 2}
			if ctx.inside(mid.X, mid.Y) {
				lines = append(lines, L(ctx.center.X, ctx.center.Y, first.x, first.y))
			}
			continue
		}

		// Center outside (concave shapes): pair up crossings.
		for j := 0; j+1 < len(hits); j += 2 {
			a, b := hits[j], hits[j+1]
			mid := Point{X: (a.x + b.x) / 2, Y: (a.y + b.y) / 2}
			if ctx.inside(mid.X, mid.Y) {
				lines = append(lines, L(a.x, a.y, b.x, b.y))
			}
		}
	}
	return lines
}

// sunburstFill draws rays from the area centroid, with shorter
// intermediate rays (0.6 of the ray length) at fine spacing and
// concentric rings at very fine spacing.
func sunburstFill(ctx *patternContext) []Line {
	c := areaCentroid(ctx.polygon.Outer)
	maxRadius := ctx.diagonal * 0.75

	numRays := int(math.Ceil(2 * math.Pi * maxRadius / ctx.spacing))
	if numRays < 8 {
		numRays = 8
	}
	if numRays > 360 {
		numRays = 360
	}
	angleStep := 2 * math.Pi / float64(numRays)

	var lines []Line
	for i := 0; i < numRays; i++ {
		a := ctx.angleRad + float64(i)*angleStep
		lines = append(lines, L(c.X, c.Y, c.X+maxRadius*math.Cos(a), c.Y+maxRadius*math.Sin(a)))

		if ctx.spacing < 15 {
			half := a + angleStep/2
			halfR := maxRadius * 0.6
			lines = append(lines, L(c.X, c.Y, c.X+halfR*math.Cos(half), c.Y+halfR*math.Sin(half)))
		}
	}

	if ctx.spacing < 10 {
		ringSpacing := ctx.spacing * 3
		for r := 1; float64(r)*ringSpacing <= maxRadius; r++ {
			lines = append(lines, circleLines(c, float64(r)*ringSpacing, numRays*2)...)
		}
	}
	return ctx.clip(lines)
}

// areaCentroid computes the polygon area centroid, falling back to the
// vertex average for near-zero areas.
func areaCentroid(ring []Point) Point {
	n := len(ring)
	if n == 0 {
		return Point{}
	}

	var cx, cy, area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a := ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
		area += a
		cx += (ring[i].X + ring[j].X) * a
		cy += (ring[i].Y + ring[j].Y) * a
	}
	area /= 2

	if math.Abs(area) < 1e-10 {
		var sx, sy float64
		for _, p := range ring {
			sx += p.X
			sy += p.Y
		}
		return Point{X: sx / float64(n), Y: sy / float64(n)}
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// circleLines approximates a circle with a fan of short segments.
func circleLines(c Point, radius float64, segments int) []Line {
	lines := make([]Line, 0, segments)
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		a1 := float64(i) * step
		a2 := a1 + step
		lines = append(lines, L(
			c.X+radius*math.Cos(a1), c.Y+radius*math.Sin(a1),
			c.X+radius*math.Cos(a2), c.Y+radius*math.Sin(a2),
		))
	}
	return lines
}

// phyllotaxisFill places short dashes at sunflower-seed positions:
// r = c*sqrt(i), phi = i * 137.507deg, plus the context angle.
func phyllotaxisFill(ctx *patternContext) []Line {
	maxRadius := ctx.diagonal / 2
	goldenAngle := 137.50776405 * degToRad
	c := ctx.spacing / 2
	dashLen := ctx.spacing * 0.15

	var lines []Line
	for i := 0; ; i++ {
		r := c * math.Sqrt(float64(i))
		if r > maxRadius {
			break
		}

		phi := float64(i)*goldenAngle + ctx.angleRad
		x := ctx.center.X + r*math.Cos(phi)
		y := ctx.center.Y + r*math.Sin(phi)
		if !ctx.inside(x, y) {
			continue
		}

		// Orient the dash along the local spiral tangent.
		dx := math.Cos(phi + rightAngle)
		dy := math.Sin(phi + rightAngle)
		lines = append(lines, L(
			x-dx*dashLen/2, y-dy*dashLen/2,
			x+dx*dashLen/2, y+dy*dashLen/2,
		))
	}
	return lines
}
