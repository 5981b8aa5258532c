package hatch

import "math"

// scribbleFill fills the polygon with organic random-walk strokes:
// momentum-smoothed direction changes, bounded turning, and a steer
// back toward the interior whenever the walk approaches the boundary.
// Terminates on a per-stroke step cap sized from the polygon extent.
func scribbleFill(ctx *patternContext, seed uint64) []Line {
	// The angle parameter varies the scribble rather than rotating it.
	// Reduced modulo 360 so a full turn reproduces the same walk.
	rng := NewRand(seed ^ uint64(normalizeDegrees(ctx.angleDeg)*1000))

	stepSize := ctx.spacing * 0.5
	area := ctx.width * ctx.height
	targetLength := area / ctx.spacing
	numStrokes := int(targetLength / (math.Max(ctx.width, ctx.height) * 2))
	if numStrokes < 3 {
		numStrokes = 3
	}

	var lines []Line
	for stroke := 0; stroke < numStrokes; stroke++ {
		x, y := randomInteriorPoint(ctx, rng)

		baseAngle := float64(stroke) / float64(numStrokes) * 2 * math.Pi
		angle := baseAngle + rng.Signed()*math.Pi*0.5
		momentumAngle := angle

		maxSteps := int(math.Max(ctx.width, ctx.height) * 4 / stepSize)
		const momentum = 0.85
		const wiggle = 0.4

		for step := 0; step < maxSteps; step++ {
			nx := x + math.Cos(angle)*stepSize
			ny := y + math.Sin(angle)*stepSize

			// Probe ahead: steer inward before the walk leaves the body.
			probeX := x + math.Cos(angle)*ctx.spacing
			probeY := y + math.Sin(angle)*ctx.spacing

			if ctx.inside(nx, ny) {
				// Midpoint too: a short chord can cut a hole corner
				// even with both endpoints in the body.
				if ctx.inside((x+nx)/2, (y+ny)/2) {
					lines = append(lines, L(x, y, nx, ny))
				}
				x, y = nx, ny

				if !ctx.inside(probeX, probeY) {
					// Near the boundary: blend toward the center.
					toCenter := math.Atan2(ctx.center.Y-y, ctx.center.X-x)
					angle = angle*0.5 + toCenter*0.5
					momentumAngle = angle
					continue
				}

				momentumAngle = momentumAngle*momentum + angle*(1-momentum)
				angle = momentumAngle + rng.Signed()*wiggle
			} else {
				// Crossed the boundary: turn back toward the center.
				toCenter := math.Atan2(ctx.center.Y-y, ctx.center.X-x)
				angle = toCenter + rng.Signed()*math.Pi*0.5
				momentumAngle = angle
			}
		}
	}
	return lines
}

// randomInteriorPoint samples a point inside the polygon body, falling
// back to the bbox center after too many rejections.
func randomInteriorPoint(ctx *patternContext, rng *Rand) (float64, float64) {
	for attempt := 0; attempt < 100; attempt++ {
		x := ctx.bounds.MinX + rng.Float64()*ctx.width
		y := ctx.bounds.MinY + rng.Float64()*ctx.height
		if ctx.inside(x, y) {
			return x, y
		}
	}
	return ctx.center.X, ctx.center.Y
}

// stippleFill scatters dots by Poisson-disk dart throwing: candidates
// are accepted only when at least spacing away from every accepted
// sample. Each accepted sample becomes a tiny segment so plotters draw
// a visible dot.
func stippleFill(ctx *patternContext, seed uint64) []Line {
	rng := NewRand(seed)

	minDist := ctx.spacing
	minDistSq := minDist * minDist
	dotSize := ctx.spacing * 0.15

	// Occupancy grid with cell size minDist/sqrt(2) guarantees one
	// sample per cell, so the 5x5 neighborhood covers all conflicts.
	cellSize := minDist / math.Sqrt2
	cols := int(math.Ceil(ctx.width/cellSize)) + 1
	rows := int(math.Ceil(ctx.height/cellSize)) + 1
	grid := make([]int, cols*rows)
	for i := range grid {
		grid[i] = -1
	}

	var accepted []Point
	cellOf := func(p Point) (int, int) {
		cx := int((p.X - ctx.bounds.MinX) / cellSize)
		cy := int((p.Y - ctx.bounds.MinY) / cellSize)
		return cx, cy
	}

	conflicts := func(p Point) bool {
		cx, cy := cellOf(p)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				gx, gy := cx+dx, cy+dy
				if gx < 0 || gy < 0 || gx >= cols || gy >= rows {
					continue
				}
				idx := grid[gy*cols+gx]
				if idx < 0 {
					continue
				}
				q := accepted[idx]
				if (p.X-q.X)*(p.X-q.X)+(p.Y-q.Y)*(p.Y-q.Y) < minDistSq {
					return true
				}
			}
		}
		return false
	}

	maxAttempts := int(ctx.width*ctx.height/(minDist*minDist))*30 + 100

	var lines []Line
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := Point{
			X: ctx.bounds.MinX + rng.Float64()*ctx.width,
			Y: ctx.bounds.MinY + rng.Float64()*ctx.height,
		}
		if !ctx.inside(p.X, p.Y) || conflicts(p) {
			continue
		}

		cx, cy := cellOf(p)
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			continue
		}
		grid[cy*cols+cx] = len(accepted)
		accepted = append(accepted, p)

		dotAngle := rng.Float64() * 2 * math.Pi
		dx := dotSize * math.Cos(dotAngle) / 2
		dy := dotSize * math.Sin(dotAngle) / 2
		lines = append(lines, L(p.X-dx, p.Y-dy, p.X+dx, p.Y+dy))
	}
	return lines
}

// flowfieldFill traces streamlines through a smooth pseudo-noise
// direction field, seeded on a jittered grid over the polygon.
func flowfieldFill(ctx *patternContext, seed uint64) []Line {
	rng := NewRand(seed)

	noiseScale := 0.02 / math.Max(ctx.spacing, 1) * 10

	cols := int(math.Ceil(ctx.width / ctx.spacing))
	rows := int(math.Ceil(ctx.height / ctx.spacing))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	var lines []Line
	for row := 0; row <= rows; row++ {
		for col := 0; col <= cols; col++ {
			xOffset := 0.0
			if row%2 == 1 {
				xOffset = ctx.spacing * 0.5
			}

			jitter := ctx.spacing * 0.2
			seedX := ctx.bounds.MinX + float64(col)*ctx.spacing + xOffset + (rng.Float64()-0.5)*jitter
			seedY := ctx.bounds.MinY + float64(row)*ctx.spacing + (rng.Float64()-0.5)*jitter

			if !ctx.inside(seedX, seedY) {
				continue
			}
			lines = append(lines, traceStreamline(ctx, seedX, seedY, noiseScale)...)
		}
	}
	return lines
}

// traceStreamline follows the field both ways from the seed until it
// leaves the body or hits the step cap.
func traceStreamline(ctx *patternContext, startX, startY, noiseScale float64) []Line {
	var lines []Line
	stepSize := ctx.spacing * 0.5
	const maxSteps = 50

	for _, direction := range [2]float64{-1, 1} {
		x, y := startX, startY
		prevX, prevY := x, y

		for step := 0; step < maxSteps; step++ {
			angle := noiseAngle(x, y, noiseScale) + ctx.angleRad

			newX := x + math.Cos(angle)*stepSize*direction
			newY := y + math.Sin(angle)*stepSize*direction
			if !ctx.inside(newX, newY) {
				break
			}

			if (math.Abs(prevX-newX) > 0.01 || math.Abs(prevY-newY) > 0.01) &&
				ctx.inside((prevX+newX)/2, (prevY+newY)/2) {
				lines = append(lines, L(prevX, prevY, newX, newY))
			}
			prevX, prevY = newX, newY
			x, y = newX, newY
		}
	}
	return lines
}

// noiseAngle is a cheap smooth direction field built from layered
// sinusoids. Not true Perlin noise, but continuous and deterministic.
func noiseAngle(x, y, scale float64) float64 {
	nx := x * scale
	ny := y * scale

	n1 := math.Sin(nx) * math.Cos(ny)
	n2 := math.Sin(nx*2.3+1.7) * math.Cos(ny*2.1+0.9)
	n3 := math.Sin(nx*0.7 + ny*0.5)

	return (n1*0.5 + n2*0.3 + n3*0.2) * math.Pi
}

// voronoiFill approximates Voronoi cell boundaries over a jittered seed
// lattice: each nearby seed pair contributes a perpendicular-bisector
// segment at its midpoint when no third seed is closer.
func voronoiFill(ctx *patternContext, seed uint64) []Line {
	rng := NewRand(seed)

	cols := int(math.Ceil(ctx.width/ctx.spacing)) + 2
	rows := int(math.Ceil(ctx.height/ctx.spacing)) + 2
	if cols < 3 {
		cols = 3
	}
	if rows < 3 {
		rows = 3
	}

	var seeds []Point
	for row := -1; row <= rows; row++ {
		for col := -1; col <= cols; col++ {
			x := ctx.bounds.MinX + float64(col)*ctx.spacing + rng.Signed()*ctx.spacing*0.4
			y := ctx.bounds.MinY + float64(row)*ctx.spacing + rng.Signed()*ctx.spacing*0.4
			rx, ry := ctx.rotate(x, y)
			seeds = append(seeds, Point{X: rx, Y: ry})
		}
	}

	maxEdgeDist := ctx.spacing * 2.5

	var lines []Line
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			a, b := seeds[i], seeds[j]

			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := math.Hypot(dx, dy)
			if dist > maxEdgeDist || dist < 1e-3 {
				continue
			}

			mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
			if mid.X < ctx.bounds.MinX-ctx.spacing || mid.X > ctx.bounds.MaxX+ctx.spacing ||
				mid.Y < ctx.bounds.MinY-ctx.spacing || mid.Y > ctx.bounds.MaxY+ctx.spacing {
				continue
			}

			// The midpoint belongs to the shared cell wall only when no
			// third seed is closer to it than the pair.
			midDistSq := dist * dist / 4
			valid := true
			for k, s := range seeds {
				if k == i || k == j {
					continue
				}
				dk := (mid.X-s.X)*(mid.X-s.X) + (mid.Y-s.Y)*(mid.Y-s.Y)
				if dk < midDistSq*0.95 {
					valid = false
					break
				}
			}
			if !valid {
				continue
			}

			px := -dy / dist
			py := dx / dist
			edgeLen := ctx.spacing * 0.75
			lines = append(lines, L(
				mid.X-px*edgeLen, mid.Y-py*edgeLen,
				mid.X+px*edgeLen, mid.Y+py*edgeLen,
			))
		}
	}
	return ctx.clip(lines)
}
