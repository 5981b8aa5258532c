// Package svg extracts fillable polygons from SVG documents and writes
// fill results back out as SVG.
//
// The extractor handles rect, circle, ellipse, polygon, polyline and
// path elements, nested groups with translate/scale/rotate/matrix
// transforms, and per-shape data-* fill overrides. Bézier curves and
// arcs are flattened to polylines at a tolerance of 0.1 document units.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/gogpu/hatch"
)

// ParseError describes a failure to parse an SVG document. It is
// distinct from an empty result: a well-formed document with no
// fillable shapes yields no polygons and no error.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("svg: %s: %v", e.Msg, e.Err)
	}
	return "svg: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// document mirrors the parts of an SVG file the extractor reads.
type document struct {
	XMLName xml.Name `xml:"svg"`
	ViewBox string   `xml:"viewBox,attr"`
	group
}

// group is a container element; it nests recursively.
type group struct {
	ID        string     `xml:"id,attr"`
	Transform string     `xml:"transform,attr"`
	Groups    []group    `xml:"g"`
	Paths     []pathElem `xml:"path"`
	Rects     []rectElem `xml:"rect"`
	Circles   []circElem `xml:"circle"`
	Ellipses  []ellyElem `xml:"ellipse"`
	Polygons  []polyElem `xml:"polygon"`
	Polylines []polyElem `xml:"polyline"`
}

// shapeAttrs carries the attributes shared by every shape element.
type shapeAttrs struct {
	ID          string  `xml:"id,attr"`
	Transform   string  `xml:"transform,attr"`
	DataPattern string  `xml:"data-pattern,attr"`
	DataSpacing string  `xml:"data-spacing,attr"`
	DataAngle   string  `xml:"data-angle,attr"`
	DataColor   string `xml:"data-color,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
}

type pathElem struct {
	shapeAttrs
	D string `xml:"d,attr"`
}

type rectElem struct {
	shapeAttrs
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

type circElem struct {
	shapeAttrs
	CX float64 `xml:"cx,attr"`
	CY float64 `xml:"cy,attr"`
	R  float64 `xml:"r,attr"`
}

type ellyElem struct {
	shapeAttrs
	CX float64 `xml:"cx,attr"`
	CY float64 `xml:"cy,attr"`
	RX float64 `xml:"rx,attr"`
	RY float64 `xml:"ry,attr"`
}

type polyElem struct {
	shapeAttrs
	Points string `xml:"points,attr"`
}

// ExtractPolygons parses an SVG document and returns its shapes as
// polygons in document order. Group transforms are resolved into the
// coordinates; shapes without an id attribute receive a generated one.
//
// Within a single path element, a subpath winding opposite to the outer
// ring of the most recently started polygon and contained in its
// bounding box becomes a hole of that polygon; every other subpath
// becomes an independent polygon.
func ExtractPolygons(r io.Reader) ([]hatch.Polygon, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ParseError{Msg: "decoding document", Err: err}
	}

	var polygons []hatch.Polygon
	if err := walkGroup(&doc.group, Identity(), "", &polygons); err != nil {
		return nil, err
	}

	hatch.Logger().Debug("extracted polygons", "count", len(polygons))
	return polygons, nil
}

// walkGroup recursively collects shapes, threading the accumulated
// transform and the nearest group id.
func walkGroup(g *group, transform Matrix, groupID string, out *[]hatch.Polygon) error {
	if g.Transform != "" {
		transform = transform.Multiply(ParseTransform(g.Transform))
	}
	if g.ID != "" {
		groupID = g.ID
	}

	emit := func(rings [][]hatch.Point, attrs shapeAttrs) {
		local := transform
		if attrs.Transform != "" {
			local = local.Multiply(ParseTransform(attrs.Transform))
		}
		if !local.IsIdentity() {
			for _, ring := range rings {
				for i := range ring {
					ring[i] = local.Apply(ring[i])
				}
			}
		}
		*out = append(*out, assemblePolygons(rings, attrs, groupID)...)
	}

	for _, rect := range g.Rects {
		if rect.Width <= 0 || rect.Height <= 0 {
			continue
		}
		emit([][]hatch.Point{{
			{X: rect.X, Y: rect.Y},
			{X: rect.X + rect.Width, Y: rect.Y},
			{X: rect.X + rect.Width, Y: rect.Y + rect.Height},
			{X: rect.X, Y: rect.Y + rect.Height},
		}}, rect.shapeAttrs)
	}

	for _, c := range g.Circles {
		if c.R <= 0 {
			continue
		}
		emit([][]hatch.Point{ellipseRing(c.CX, c.CY, c.R, c.R)}, c.shapeAttrs)
	}

	for _, e := range g.Ellipses {
		if e.RX <= 0 || e.RY <= 0 {
			continue
		}
		emit([][]hatch.Point{ellipseRing(e.CX, e.CY, e.RX, e.RY)}, e.shapeAttrs)
	}

	for _, p := range g.Polygons {
		ring := parsePointList(p.Points)
		if len(ring) >= 3 {
			emit([][]hatch.Point{ring}, p.shapeAttrs)
		}
	}

	for _, p := range g.Polylines {
		ring := parsePointList(p.Points)
		if len(ring) >= 3 {
			emit([][]hatch.Point{ring}, p.shapeAttrs)
		}
	}

	for _, p := range g.Paths {
		subpaths, err := parsePath(p.D)
		if err != nil {
			return &ParseError{Msg: fmt.Sprintf("path %q", p.ID), Err: err}
		}
		emit(subpaths, p.shapeAttrs)
	}

	for i := range g.Groups {
		if err := walkGroup(&g.Groups[i], transform, groupID, out); err != nil {
			return err
		}
	}
	return nil
}

// assemblePolygons turns a shape's rings into polygons. The first ring
// anchors a polygon; a later ring winding opposite to the most recently
// started polygon's outer ring, with its bbox nested inside that ring's,
// becomes a hole of that polygon; anything else starts a new polygon.
func assemblePolygons(rings [][]hatch.Point, attrs shapeAttrs, groupID string) []hatch.Polygon {
	var result []hatch.Polygon

	style := styleFrom(attrs)
	newPolygon := func(ring []hatch.Point) hatch.Polygon {
		id := attrs.ID
		if id == "" {
			id = uuid.NewString()
		} else if len(result) > 0 {
			id = fmt.Sprintf("%s-%d", attrs.ID, len(result))
		}
		return hatch.Polygon{Outer: ring, ID: id, GroupID: groupID, Style: style}
	}

	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}

		if len(result) > 0 {
			parent := &result[len(result)-1]
			if oppositeWinding(parent.Outer, ring) && bboxContains(parent.Outer, ring) {
				parent.Holes = append(parent.Holes, ring)
				continue
			}
		}
		result = append(result, newPolygon(ring))
	}
	return result
}

func styleFrom(attrs shapeAttrs) *hatch.ShapeStyle {
	if attrs.DataPattern == "" && attrs.DataSpacing == "" && attrs.DataAngle == "" &&
		attrs.DataColor == "" && attrs.Stroke == "" && attrs.StrokeWidth == "" {
		return nil
	}

	style := &hatch.ShapeStyle{
		Pattern: attrs.DataPattern,
		Color:   attrs.DataColor,
	}
	if v, ok := parseFloat(strings.TrimSuffix(attrs.StrokeWidth, "px")); ok {
		style.StrokeWidth = v
	}
	if style.Color == "" {
		style.Color = attrs.Stroke
	}
	if v, ok := parseFloat(attrs.DataSpacing); ok {
		style.Spacing = v
		style.HasSpacing = true
	}
	if v, ok := parseFloat(attrs.DataAngle); ok {
		style.Angle = v
		style.HasAngle = true
	}
	return style
}

func oppositeWinding(a, b []hatch.Point) bool {
	return (hatch.Polygon{Outer: a}).SignedArea()*(hatch.Polygon{Outer: b}).SignedArea() < 0
}

func bboxContains(outer, inner []hatch.Point) bool {
	ob, ok1 := hatch.Polygon{Outer: outer}.BoundingBox()
	ib, ok2 := hatch.Polygon{Outer: inner}.BoundingBox()
	if !ok1 || !ok2 {
		return false
	}
	return ib.MinX >= ob.MinX && ib.MaxX <= ob.MaxX &&
		ib.MinY >= ob.MinY && ib.MaxY <= ob.MaxY
}

// ellipseRing approximates an ellipse with enough segments to stay
// within the flattening tolerance.
func ellipseRing(cx, cy, rx, ry float64) []hatch.Point {
	maxR := math.Max(rx, ry)
	step := 2 * math.Acos(math.Max(0, math.Min(1, 1-Tolerance/maxR)))
	segments := int(math.Ceil(2 * math.Pi / math.Max(step, 1e-3)))
	if segments < 8 {
		segments = 8
	}

	ring := make([]hatch.Point, segments)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = hatch.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return ring
}

// parsePointList parses a polygon/polyline points attribute.
func parsePointList(s string) []hatch.Point {
	nums := parseNumberList(s)
	points := make([]hatch.Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		points = append(points, hatch.Point{X: nums[i], Y: nums[i+1]})
	}
	// Drop a duplicated closing point.
	if n := len(points); n >= 2 && points[0].Approx(points[n-1], 1e-9) {
		points = points[:n-1]
	}
	return points
}
