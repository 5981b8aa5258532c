package hatch

import "math"

const (
	degToRad   = math.Pi / 180
	rightAngle = math.Pi / 2
)

// normalizeDegrees reduces an angle to [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// patternContext bundles the values almost every generator needs:
// bounding box, center, diagonal, and the rotation for the requested
// angle. It is computed once per (polygon, pattern) invocation.
type patternContext struct {
	polygon  Polygon
	spacing  float64
	angleDeg float64
	angleRad float64
	bounds   Rect
	center   Point
	width    float64
	height   float64
	diagonal float64
	cos, sin float64
}

// newPatternContext validates the inputs and precomputes the shared
// values. Returns false for degenerate polygons (fewer than 3 outer
// vertices, empty or zero-extent bounding box) and invalid parameters
// (non-positive or non-finite spacing, non-finite angle), in which case
// the generator must produce no lines.
func newPatternContext(polygon Polygon, spacing, angleDeg float64) (patternContext, bool) {
	if len(polygon.Outer) < 3 {
		return patternContext{}, false
	}
	if spacing <= 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return patternContext{}, false
	}
	if math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) {
		return patternContext{}, false
	}

	bb, ok := polygon.BoundingBox()
	if !ok {
		return patternContext{}, false
	}
	if bb.Width() <= 0 || bb.Height() <= 0 {
		return patternContext{}, false
	}
	for _, p := range polygon.Outer {
		if !p.IsFinite() {
			return patternContext{}, false
		}
	}

	angleRad := angleDeg * math.Pi / 180
	return patternContext{
		polygon:  polygon,
		spacing:  spacing,
		angleDeg: angleDeg,
		angleRad: angleRad,
		bounds:   bb,
		center:   bb.Center(),
		width:    bb.Width(),
		height:   bb.Height(),
		diagonal: bb.Diagonal(),
		cos:      math.Cos(angleRad),
		sin:      math.Sin(angleRad),
	}, true
}

// withAngle returns a copy of the context with a different angle and its
// derived rotation values recomputed.
func (c *patternContext) withAngle(angleDeg float64) patternContext {
	out := *c
	out.angleDeg = angleDeg
	out.angleRad = angleDeg * degToRad
	out.cos = math.Cos(out.angleRad)
	out.sin = math.Sin(out.angleRad)
	return out
}

// rotate applies the context's rotation to a point, around the bbox center.
func (c *patternContext) rotate(x, y float64) (float64, float64) {
	dx := x - c.center.X
	dy := y - c.center.Y
	return c.center.X + dx*c.cos - dy*c.sin,
		c.center.Y + dx*c.sin + dy*c.cos
}

// rotateLine applies the context's rotation to both endpoints.
func (c *patternContext) rotateLine(l Line) Line {
	x1, y1 := c.rotate(l.X1, l.Y1)
	x2, y2 := c.rotate(l.X2, l.Y2)
	return Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// padding returns how far candidate geometry must extend past the
// bounding box so that rotated patterns still cover the corners.
func (c *patternContext) padding() float64 {
	return c.diagonal/2 + c.spacing
}

// clip clips candidate lines to the polygon body.
func (c *patternContext) clip(lines []Line) []Line {
	return ClipLinesToPolygon(lines, c.polygon)
}

// inside reports whether a point is inside the polygon body.
func (c *patternContext) inside(x, y float64) bool {
	return c.polygon.PointInBody(x, y)
}

// lineDirection holds unit vectors along and perpendicular to a hatch
// direction. Several generators (Lines, Diagonal, Stripe, the waveform
// family) are built on it.
type lineDirection struct {
	dx, dy float64 // along the lines
	px, py float64 // perpendicular, for stepping between lines
}

func directionFromRadians(angleRad float64) lineDirection {
	cos := math.Cos(angleRad)
	sin := math.Sin(angleRad)
	return lineDirection{dx: cos, dy: sin, px: -sin, py: cos}
}

func directionFromDegrees(angleDeg float64) lineDirection {
	return directionFromRadians(angleDeg * math.Pi / 180)
}

// parallelLines generates 2n lines perpendicular to the direction,
// stepped by spacing across the center and offset half a step so the
// family straddles the center line symmetrically. Each line extends
// halfLength both ways along the direction.
func (d lineDirection) parallelLines(center Point, spacing float64, n int, halfLength float64) []Line {
	lines := make([]Line, 0, 2*n)
	for i := -n; i < n; i++ {
		offset := (float64(i) + 0.5) * spacing

		cx := center.X + d.px*offset
		cy := center.Y + d.py*offset

		lines = append(lines, Line{
			X1: cx - d.dx*halfLength, Y1: cy - d.dy*halfLength,
			X2: cx + d.dx*halfLength, Y2: cy + d.dy*halfLength,
		})
	}
	return lines
}

// lineCount returns how many parallel lines are needed on each side of
// the center to span the padded bounding region.
func (c *patternContext) lineCount() int {
	return int(math.Ceil(c.padding()/c.spacing)) + 1
}

// polylineToLines converts consecutive points into line segments.
func polylineToLines(points []Point) []Line {
	if len(points) < 2 {
		return nil
	}
	lines := make([]Line, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		lines = append(lines, LineBetween(points[i-1], points[i]))
	}
	return lines
}

// clipSampledCurve converts a sampled curve into segments kept when both
// endpoints and the midpoint lie inside the polygon body. Generators for
// dense curves (spirals, Lissajous, harmonograph, space-filling curves)
// use this instead of full segment clipping: at chord lengths well below
// the spacing the visual difference is nil and the cost is far lower.
func (c *patternContext) clipSampledCurve(points []Point) []Line {
	var lines []Line
	prevInside := false
	var prev Point

	for i, p := range points {
		curInside := c.inside(p.X, p.Y)
		if i > 0 && prevInside && curInside {
			mid := prev.Lerp(p, 0.5)
			if c.inside(mid.X, mid.Y) {
				lines = append(lines, LineBetween(prev, p))
			}
		}
		prev = p
		prevInside = curInside
	}
	return lines
}
