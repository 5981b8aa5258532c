package hatch

// tessellationFill triangulates the outer ring by ear clipping and
// emits the triangle edges. Spacing and angle do not apply; the
// triangulation follows the polygon's own vertices.
func tessellationFill(ctx *patternContext) []Line {
	triangles := triangulateRing(ctx.polygon.Outer)

	lines := make([]Line, 0, len(triangles)*3)
	for _, tri := range triangles {
		lines = append(lines, LineBetween(tri[0], tri[1]))
		lines = append(lines, LineBetween(tri[1], tri[2]))
		lines = append(lines, LineBetween(tri[2], tri[0]))
	}
	// The triangulation only sees the outer ring; clipping drops the
	// diagonal pieces that cross holes.
	return ctx.clip(dedupeLines(lines))
}

// triangulateRing ear-clips a simple ring into triangles. When no ear
// is found (degenerate or self-intersecting input) it clips a vertex
// unconditionally so the loop always terminates.
func triangulateRing(ring []Point) [][3]Point {
	n := len(ring)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return [][3]Point{{ring[0], ring[1], ring[2]}}
	}

	var triangles [][3]Point
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	clockwise := signedArea(ring) < 0

	for len(indices) > 3 {
		earFound := false
		m := len(indices)

		for i := 0; i < m; i++ {
			prev := indices[(i+m-1)%m]
			curr := indices[i]
			next := indices[(i+1)%m]

			a, b, c := ring[prev], ring[curr], ring[next]
			if isEar(a, b, c, indices, ring, clockwise) {
				triangles = append(triangles, [3]Point{a, b, c})
				indices = append(indices[:i], indices[i+1:]...)
				earFound = true
				break
			}
		}

		if !earFound {
			a, b, c := ring[indices[0]], ring[indices[1]], ring[indices[2]]
			triangles = append(triangles, [3]Point{a, b, c})
			indices = append(indices[:1], indices[2:]...)
		}
	}

	triangles = append(triangles, [3]Point{
		ring[indices[0]], ring[indices[1]], ring[indices[2]],
	})
	return triangles
}

// isEar reports whether the corner (a, b, c) is convex and contains no
// other ring vertex.
func isEar(a, b, c Point, indices []int, ring []Point, clockwise bool) bool {
	// A convex corner's turn matches the ring's winding sign.
	cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	if clockwise {
		if cross > 0 {
			return false
		}
	} else if cross < 0 {
		return false
	}

	const eps = 1e-10
	for _, idx := range indices {
		p := ring[idx]
		if p.Approx(a, eps) || p.Approx(b, eps) || p.Approx(c, eps) {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c Point) bool {
	sign := func(p1, p2, p3 Point) float64 {
		return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
	}

	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
