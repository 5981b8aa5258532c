package hatch

import (
	"math"
	"sort"
)

// Epsilon used to merge coincident split points along a clipped line.
const clipEpsilon = 1e-9

// PointInRing reports whether (px, py) is inside the ring using ray
// casting: a ray cast in +x counts edge crossings, odd means inside.
// Upward edges include their lower endpoint but not their upper one, so
// a ray grazing a shared vertex is counted once. Points exactly on an
// edge are classified consistently but callers must not rely on which
// side they land.
func PointInRing(px, py float64, ring []Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := ring[i].X, ring[i].Y
		xj, yj := ring[j].X, ring[j].Y

		if (yi > py) != (yj > py) && px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// intersection is a boundary crossing along a clipped line, with its
// parameter t in [0, 1] along that line.
type intersection struct {
	x, y, t float64
}

// segmentIntersection finds the crossing of segments (x1,y1)-(x2,y2) and
// (x3,y3)-(x4,y4). Returns false for parallel or non-crossing segments.
// The returned t is the parameter along the first segment.
func segmentIntersection(x1, y1, x2, y2, x3, y3, x4, y4 float64) (ix, iy, t float64, ok bool) {
	denom := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if math.Abs(denom) < 1e-10 {
		return 0, 0, 0, false
	}

	ua := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / denom
	ub := ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / denom

	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return 0, 0, 0, false
	}
	return x1 + ua*(x2-x1), y1 + ua*(y2-y1), ua, true
}

// ringIntersections collects every crossing of the segment with the
// ring's edges, sorted by parameter t along the segment.
func ringIntersections(lx1, ly1, lx2, ly2 float64, ring []Point) []intersection {
	n := len(ring)
	if n < 3 {
		return nil
	}

	dx := lx2 - lx1
	dy := ly2 - ly1

	var hits []intersection
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ix, iy, _, ok := segmentIntersection(
			lx1, ly1, lx2, ly2,
			ring[i].X, ring[i].Y, ring[j].X, ring[j].Y,
		)
		if !ok {
			continue
		}

		// Recompute t on the dominant axis for numeric stability.
		var t float64
		switch {
		case math.Abs(dx) > math.Abs(dy):
			t = (ix - lx1) / dx
		case dy != 0:
			t = (iy - ly1) / dy
		}
		hits = append(hits, intersection{x: ix, y: iy, t: t})
	}

	sort.Slice(hits, func(a, b int) bool { return hits[a].t < hits[b].t })
	return hits
}

// ClipLineToPolygon clips a segment against the polygon body (outer ring
// minus holes) and returns the sub-segments that lie inside.
//
// The segment is split at every boundary crossing of the outer ring and
// of each hole; a piece is kept when its midpoint is inside the body.
// Crossings closer together than an absolute epsilon of 1e-9 along the
// segment are merged. Non-finite input produces no output.
func ClipLineToPolygon(line Line, polygon Polygon) []Line {
	if !line.IsFinite() || len(polygon.Outer) < 3 {
		return nil
	}

	// Fast bounding box rejection.
	if bb, ok := polygon.BoundingBox(); ok {
		if math.Max(line.X1, line.X2) < bb.MinX || math.Min(line.X1, line.X2) > bb.MaxX ||
			math.Max(line.Y1, line.Y2) < bb.MinY || math.Min(line.Y1, line.Y2) > bb.MaxY {
			return nil
		}
	}

	// Split points: both endpoints plus every crossing with the outer
	// ring and every hole ring.
	cuts := make([]intersection, 0, 8)
	cuts = append(cuts, intersection{x: line.X1, y: line.Y1, t: 0})
	cuts = append(cuts, ringIntersections(line.X1, line.Y1, line.X2, line.Y2, polygon.Outer)...)
	for _, hole := range polygon.Holes {
		cuts = append(cuts, ringIntersections(line.X1, line.Y1, line.X2, line.Y2, hole)...)
	}
	cuts = append(cuts, intersection{x: line.X2, y: line.Y2, t: 1})

	sort.Slice(cuts, func(a, b int) bool { return cuts[a].t < cuts[b].t })

	var segments []Line
	for i := 1; i < len(cuts); i++ {
		a, b := cuts[i-1], cuts[i]
		if b.t-a.t < clipEpsilon {
			continue
		}

		midX := (a.x + b.x) / 2
		midY := (a.y + b.y) / 2
		if polygon.PointInBody(midX, midY) {
			segments = append(segments, Line{X1: a.x, Y1: a.y, X2: b.x, Y2: b.y})
		}
	}
	return segments
}

// ClipLinesToPolygon clips every segment against the polygon body.
// The union of the output equals the intersection of the input segments
// with the body, modulo epsilon merging of coincident split points.
func ClipLinesToPolygon(lines []Line, polygon Polygon) []Line {
	clipped := make([]Line, 0, len(lines))
	for _, line := range lines {
		clipped = append(clipped, ClipLineToPolygon(line, polygon)...)
	}
	return clipped
}
