package svg

import (
	"math"

	"github.com/gogpu/hatch"
)

// Tolerance is the maximum distance between a Bézier curve and its
// polyline approximation. The fill pipeline depends on flattening at
// 0.1 document units or better; coarser flattening visibly distorts
// clipped pattern edges.
const Tolerance = 0.1

// flattenQuadratic appends a polyline approximation of the quadratic
// Bézier (p0, p1, p2) to points, excluding p0.
func flattenQuadratic(p0, p1, p2 hatch.Point, tolerance float64, points *[]hatch.Point) {
	// Distance from the control point to the chord decides flatness.
	if distanceToSegment(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, mid, tolerance, points)
	flattenQuadratic(mid, q1, p2, tolerance, points)
}

// flattenCubic appends a polyline approximation of the cubic Bézier
// (p0, p1, p2, p3) to points, excluding p0. Subdivision follows
// de Casteljau.
func flattenCubic(p0, p1, p2, p3 hatch.Point, tolerance float64, points *[]hatch.Point) {
	d1 := distanceToSegment(p1, p0, p3)
	d2 := distanceToSegment(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

// flattenArc appends a polyline approximation of an SVG endpoint arc to
// points, excluding the start point. Parameters follow the SVG path
// spec: radii, x-axis rotation in degrees, large-arc and sweep flags.
func flattenArc(from hatch.Point, rx, ry, xRotDeg float64, largeArc, sweep bool, to hatch.Point, tolerance float64, points *[]hatch.Point) {
	if from.Approx(to, 1e-12) {
		return
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx < 1e-12 || ry < 1e-12 {
		*points = append(*points, to)
		return
	}

	// Endpoint to center parametrization (SVG implementation notes F.6.5).
	phi := xRotDeg * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale radii up if the endpoints cannot be connected otherwise.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den > 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}

	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	angleOf := func(ux, uy float64) float64 {
		return math.Atan2(uy, ux)
	}
	theta1 := angleOf((x1p-cxp)/rx, (y1p-cyp)/ry)
	theta2 := angleOf((-x1p-cxp)/rx, (-y1p-cyp)/ry)

	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	// Chord-height bound: step so the sagitta stays under tolerance.
	maxR := math.Max(rx, ry)
	step := 2 * math.Acos(math.Max(0, math.Min(1, 1-tolerance/maxR)))
	if step < 1e-3 {
		step = 1e-3
	}
	segments := int(math.Ceil(math.Abs(dTheta) / step))
	if segments < 1 {
		segments = 1
	}

	for i := 1; i <= segments; i++ {
		theta := theta1 + dTheta*float64(i)/float64(segments)
		ex := rx * math.Cos(theta)
		ey := ry * math.Sin(theta)
		*points = append(*points, hatch.Point{
			X: cx + cosPhi*ex - sinPhi*ey,
			Y: cy + sinPhi*ex + cosPhi*ey,
		})
	}
}

// distanceToSegment is the perpendicular distance from p to segment (a, b).
func distanceToSegment(p, a, b hatch.Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
