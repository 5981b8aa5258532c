package hatch

import "math"

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Diagonal returns the length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 {
	w := r.Width()
	h := r.Height()
	return math.Sqrt(w*w + h*h)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Expanded returns the rectangle grown by pad on every side.
func (r Rect) Expanded(pad float64) Rect {
	return Rect{
		MinX: r.MinX - pad, MinY: r.MinY - pad,
		MaxX: r.MaxX + pad, MaxY: r.MaxY + pad,
	}
}

// Polygon is a closed shape: an outer ring plus optional holes.
//
// Rings are sequences of vertices; closure is implicit (the edge from the
// last vertex back to the first always exists). The outer ring is
// conventionally counter-clockwise and holes clockwise, but all
// point-in-body tests use ray-crossing semantics and do not depend on
// winding. Polygons are constructed once and treated as immutable by the
// fill pipeline.
type Polygon struct {
	// Outer is the boundary ring. Fewer than 3 vertices makes the
	// polygon degenerate: every generator returns no lines for it.
	Outer []Point

	// Holes are interior exclusion rings.
	Holes [][]Point

	// ID is an opaque identifier assigned by the parser, if any.
	ID string

	// GroupID names the parser group this shape came from, if any.
	GroupID string

	// Style carries optional per-shape fill overrides from the source
	// document. The core ignores it; callers may consume it when
	// choosing fill settings.
	Style *ShapeStyle
}

// ShapeStyle holds per-shape fill overrides parsed from data-* attributes
// plus the original stroke appearance of the source element.
type ShapeStyle struct {
	Pattern     string
	Spacing     float64
	Angle       float64
	HasSpacing  bool
	HasAngle    bool
	Color       string
	StrokeWidth float64
}

// NewPolygon creates a polygon with no holes.
func NewPolygon(outer []Point) Polygon {
	return Polygon{Outer: outer}
}

// NewPolygonWithHoles creates a polygon with interior holes.
func NewPolygonWithHoles(outer []Point, holes [][]Point) Polygon {
	return Polygon{Outer: outer, Holes: holes}
}

// BoundingBox returns the axis-aligned bounding box of the outer ring.
// The second return value is false iff the polygon is empty.
func (p Polygon) BoundingBox() (Rect, bool) {
	if len(p.Outer) == 0 {
		return Rect{}, false
	}

	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, pt := range p.Outer {
		r.MinX = math.Min(r.MinX, pt.X)
		r.MinY = math.Min(r.MinY, pt.Y)
		r.MaxX = math.Max(r.MaxX, pt.X)
		r.MaxY = math.Max(r.MaxY, pt.Y)
	}
	return r, true
}

// Center returns the center of the bounding box (not the center of mass).
func (p Polygon) Center() Point {
	bb, ok := p.BoundingBox()
	if !ok {
		return Point{}
	}
	return bb.Center()
}

// Diagonal returns the diagonal length of the bounding box.
func (p Polygon) Diagonal() float64 {
	bb, ok := p.BoundingBox()
	if !ok {
		return 0
	}
	return bb.Diagonal()
}

// SignedArea computes the signed area of the outer ring using the
// shoelace formula. Positive means counter-clockwise winding; the
// absolute value is the enclosed area.
func (p Polygon) SignedArea() float64 {
	return signedArea(p.Outer)
}

// IsClockwise reports whether the outer ring winds clockwise.
// In SVG coordinate space clockwise winding typically marks a hole.
func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// PointInBody reports whether (x, y) is inside the outer ring and
// outside every hole.
func (p Polygon) PointInBody(x, y float64) bool {
	if !PointInRing(x, y, p.Outer) {
		return false
	}
	for _, hole := range p.Holes {
		if PointInRing(x, y, hole) {
			return false
		}
	}
	return true
}

// signedArea computes the shoelace sum of a vertex ring.
func signedArea(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}

	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += ring[i].X * ring[j].Y
		area -= ring[j].X * ring[i].Y
	}
	return area / 2
}
