package hatch

import "math"

// concentricFill emits nested inward offsets of the outer ring at
// k*spacing for k = 1, 2, ... until the offset self-annihilates. Each
// ring is a closed polyline; connectLoops bridges consecutive rings at
// their closest vertices so the fill plots as one stroke.
func concentricFill(ctx *patternContext, connectLoops bool) []Line {
	outer := ctx.polygon.Outer

	minArea := ctx.spacing * ctx.spacing * 0.5
	maxDimension := math.Max(ctx.width, ctx.height)
	maxLoops := int(math.Ceil(maxDimension/ctx.spacing)) + 2
	if maxLoops > 100 {
		maxLoops = 100
	}

	var loops [][]Point
	lastArea := math.Abs(signedArea(outer))

	for k := 1; k <= maxLoops; k++ {
		ring := insetRing(outer, float64(k)*ctx.spacing)
		if len(ring) < 3 {
			break
		}

		area := math.Abs(signedArea(ring))
		if area >= lastArea || area < minArea {
			break
		}
		lastArea = area
		loops = append(loops, ring)
	}

	var lines []Line
	for loopIdx, loop := range loops {
		for i := range loop {
			j := (i + 1) % len(loop)
			lines = append(lines, LineBetween(loop[i], loop[j]))
		}

		if connectLoops && loopIdx < len(loops)-1 {
			last := loop[len(loop)-1]
			next := loops[loopIdx+1]

			closest := next[0]
			closestDist := math.Inf(1)
			for _, p := range next {
				if d := last.Distance(p); d < closestDist {
					closestDist = d
					closest = p
				}
			}
			lines = append(lines, LineBetween(last, closest))
		}
	}
	// Rings are offsets of the outer ring only; clipping excludes the
	// parts that cross holes.
	return ctx.clip(lines)
}

// insetRing offsets a ring inward by the given distance using miter
// joints with a limited miter scale, falling back to centroid scaling
// when the offset self-intersects or fails to shrink.
func insetRing(ring []Point, inset float64) []Point {
	if len(ring) < 3 {
		return nil
	}

	offset := offsetRingInward(ring, inset)
	if len(offset) >= 3 && !ringSelfIntersects(offset) {
		originalArea := math.Abs(signedArea(ring))
		newArea := math.Abs(signedArea(offset))
		if newArea > 0 && newArea < originalArea {
			return offset
		}
	}

	// Fallback: scale toward the vertex centroid.
	var cx, cy float64
	for _, p := range ring {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(ring))
	cy /= float64(len(ring))

	var avgDist float64
	for _, p := range ring {
		avgDist += math.Hypot(p.X-cx, p.Y-cy)
	}
	avgDist /= float64(len(ring))
	if avgDist <= inset {
		return nil
	}

	scale := (avgDist - inset) / avgDist
	result := make([]Point, len(ring))
	for i, p := range ring {
		result[i] = Point{
			X: cx + (p.X-cx)*scale,
			Y: cy + (p.Y-cy)*scale,
		}
	}
	return result
}

// offsetRingInward moves each vertex along its angle bisector by the
// offset distance, with the miter scale capped at 2.5 to avoid spikes
// at sharp corners.
func offsetRingInward(ring []Point, offset float64) []Point {
	n := len(ring)
	windingSign := 1.0
	if signedArea(ring) < 0 {
		windingSign = -1
	}

	result := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		prev := ring[(i+n-1)%n]
		curr := ring[i]
		next := ring[(i+1)%n]

		e1x, e1y := curr.X-prev.X, curr.Y-prev.Y
		e2x, e2y := next.X-curr.X, next.Y-curr.Y

		len1 := math.Hypot(e1x, e1y)
		len2 := math.Hypot(e2x, e2y)
		if len1 < 1e-4 || len2 < 1e-4 {
			continue
		}

		// Inward edge normals.
		n1x := -e1y / len1 * windingSign
		n1y := e1x / len1 * windingSign
		n2x := -e2y / len2 * windingSign
		n2y := e2x / len2 * windingSign

		nx := n1x + n2x
		ny := n1y + n2y
		nlen := math.Hypot(nx, ny)

		if nlen < 1e-4 {
			nx, ny = n1x, n1y
		} else {
			nx /= nlen
			ny /= nlen

			if dot := n1x*nx + n1y*ny; math.Abs(dot) > 0.1 {
				miterScale := math.Min(1/math.Abs(dot), 2.5)
				nx *= miterScale
				ny *= miterScale
			}
		}

		result = append(result, Point{
			X: curr.X + nx*offset,
			Y: curr.Y + ny*offset,
		})
	}
	return result
}

// ringSelfIntersects reports whether any two non-adjacent edges of the
// ring cross. Quadratic, but offset rings are small.
func ringSelfIntersects(ring []Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		i2 := (i + 1) % n
		for j := i + 2; j < n; j++ {
			j2 := (j + 1) % n
			if i == j2 || i2 == j {
				continue
			}
			if _, _, _, ok := segmentIntersection(
				ring[i].X, ring[i].Y, ring[i2].X, ring[i2].Y,
				ring[j].X, ring[j].Y, ring[j2].X, ring[j2].Y,
			); ok {
				return true
			}
		}
	}
	return false
}
