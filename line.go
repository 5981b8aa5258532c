package hatch

// Line represents a directed line segment between two endpoints.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// L is a convenience function to create a Line.
func L(x1, y1, x2, y2 float64) Line {
	return Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// LineBetween creates a Line from two points.
func LineBetween(p, q Point) Line {
	return Line{X1: p.X, Y1: p.Y, X2: q.X, Y2: q.Y}
}

// Start returns the first endpoint.
func (l Line) Start() Point {
	return Point{X: l.X1, Y: l.Y1}
}

// End returns the second endpoint.
func (l Line) End() Point {
	return Point{X: l.X2, Y: l.Y2}
}

// Midpoint returns the point halfway along the segment.
func (l Line) Midpoint() Point {
	return Point{
		X: (l.X1 + l.X2) / 2,
		Y: (l.Y1 + l.Y2) / 2,
	}
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.Start().Distance(l.End())
}

// Reversed returns the segment with its endpoints swapped.
func (l Line) Reversed() Line {
	return Line{X1: l.X2, Y1: l.Y2, X2: l.X1, Y2: l.Y1}
}

// IsFinite returns true if all four coordinates are finite numbers.
func (l Line) IsFinite() bool {
	return l.Start().IsFinite() && l.End().IsFinite()
}

// TotalLength returns the summed length of a set of segments.
func TotalLength(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.Length()
	}
	return total
}
