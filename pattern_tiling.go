package hatch

import (
	"fmt"
	"math"
)

// dedupeLines removes duplicate segments (same endpoints in either
// order, rounded to 0.01 units). Tilings emit shared edges once.
func dedupeLines(lines []Line) []Line {
	seen := make(map[string]struct{}, len(lines))
	result := make([]Line, 0, len(lines))

	for _, l := range lines {
		k1 := fmt.Sprintf("%.2f,%.2f-%.2f,%.2f", l.X1, l.Y1, l.X2, l.Y2)
		k2 := fmt.Sprintf("%.2f,%.2f-%.2f,%.2f", l.X2, l.Y2, l.X1, l.Y1)

		if _, ok := seen[k1]; ok {
			continue
		}
		if _, ok := seen[k2]; ok {
			continue
		}
		seen[k1] = struct{}{}
		result = append(result, l)
	}
	return result
}

// honeycombFill tiles the padded bounding region with regular hexagons
// of edge length equal to the spacing, rotated by the context angle.
func honeycombFill(ctx *patternContext) []Line {
	hexSize := ctx.spacing
	hexWidth := hexSize * 2
	hexHeight := hexSize * math.Sqrt(3)
	horizSpacing := hexWidth * 1.5
	vertSpacing := hexHeight

	// Flat-top hexagon vertex offsets.
	var offsets [6]Point
	for i := range offsets {
		a := math.Pi / 3 * float64(i)
		offsets[i] = Point{X: hexSize * math.Cos(a), Y: hexSize * math.Sin(a)}
	}

	pad := ctx.padding() + hexSize*2

	var lines []Line
	row := 0
	for y := ctx.bounds.MinY - pad; y <= ctx.bounds.MaxY+pad; y += vertSpacing / 2 {
		xOffset := 0.0
		if row%2 == 1 {
			xOffset = horizSpacing / 2
		}

		for x := ctx.bounds.MinX - pad + xOffset; x <= ctx.bounds.MaxX+pad; x += horizSpacing {
			var verts [6]Point
			for i, o := range offsets {
				rx, ry := ctx.rotate(x+o.X, y+o.Y)
				verts[i] = Point{X: rx, Y: ry}
			}
			if !cellNearBody(ctx, verts[:]) {
				continue
			}
			for i := range verts {
				lines = append(lines, LineBetween(verts[i], verts[(i+1)%6]))
			}
		}
		row++
	}
	return ctx.clip(dedupeLines(lines))
}

// cellNearBody reports whether any vertex or the vertex average of a
// tile cell is inside the polygon body. Cheap overlap filter before
// emitting tile edges.
func cellNearBody(ctx *patternContext, verts []Point) bool {
	var cx, cy float64
	for _, v := range verts {
		if ctx.inside(v.X, v.Y) {
			return true
		}
		cx += v.X
		cy += v.Y
	}
	n := float64(len(verts))
	return ctx.inside(cx/n, cy/n)
}

// brickFill draws running-bond brickwork: horizontal mortar courses with
// vertical joints offset half a brick on alternating rows.
func brickFill(ctx *patternContext) []Line {
	brickHeight := ctx.spacing
	brickWidth := ctx.spacing * 2.5

	pad := ctx.padding() + brickWidth

	var lines []Line
	row := 0
	for y := ctx.bounds.MinY - pad; y <= ctx.bounds.MaxY+pad; y += brickHeight {
		rowOffset := 0.0
		if row%2 == 1 {
			rowOffset = brickWidth / 2
		}

		// Course line across the whole region.
		hx1, hy1 := ctx.rotate(ctx.bounds.MinX-pad, y)
		hx2, hy2 := ctx.rotate(ctx.bounds.MaxX+pad, y)
		lines = append(lines, L(hx1, hy1, hx2, hy2))

		// Head joints for this course.
		for x := ctx.bounds.MinX - pad + rowOffset; x <= ctx.bounds.MaxX+pad; x += brickWidth {
			vx1, vy1 := ctx.rotate(x, y)
			vx2, vy2 := ctx.rotate(x, y+brickHeight)
			lines = append(lines, L(vx1, vy1, vx2, vy2))
		}
		row++
	}
	return ctx.clip(lines)
}

// truchetFill tiles square cells each holding two quarter-circle arcs;
// every cell picks one of the two orientations from the seeded stream.
func truchetFill(ctx *patternContext, seed uint64) []Line {
	cellSize := ctx.spacing
	const arcSegments = 8

	pad := ctx.padding() + cellSize
	rng := NewRand(seed)

	var lines []Line
	for cellY := ctx.bounds.MinY - pad; cellY <= ctx.bounds.MaxY+pad; cellY += cellSize {
		for cellX := ctx.bounds.MinX - pad; cellX <= ctx.bounds.MaxX+pad; cellX += cellSize {
			flip := rng.Bool(0.5)

			// Each tile holds two opposite-corner arcs.
			var arc1C, arc2C Point
			var arc1Start, arc2Start float64
			if flip {
				arc1C = Point{X: cellX, Y: cellY}
				arc2C = Point{X: cellX + cellSize, Y: cellY + cellSize}
				arc1Start = 0
				arc2Start = math.Pi
			} else {
				arc1C = Point{X: cellX + cellSize, Y: cellY}
				arc2C = Point{X: cellX, Y: cellY + cellSize}
				arc1Start = math.Pi / 2
				arc2Start = math.Pi * 3 / 2
			}

			radius := cellSize / 2
			lines = append(lines, quarterArc(ctx, arc1C, radius, arc1Start, arcSegments)...)
			lines = append(lines, quarterArc(ctx, arc2C, radius, arc2Start, arcSegments)...)
		}
	}
	return ctx.clip(lines)
}

// quarterArc emits a 90-degree arc as short segments, rotated by the
// context angle.
func quarterArc(ctx *patternContext, c Point, radius, startAngle float64, segments int) []Line {
	lines := make([]Line, 0, segments)
	for i := 0; i < segments; i++ {
		a1 := startAngle + float64(i)/float64(segments)*rightAngle
		a2 := startAngle + float64(i+1)/float64(segments)*rightAngle

		x1, y1 := ctx.rotate(c.X+radius*math.Cos(a1), c.Y+radius*math.Sin(a1))
		x2, y2 := ctx.rotate(c.X+radius*math.Cos(a2), c.Y+radius*math.Sin(a2))
		lines = append(lines, L(x1, y1, x2, y2))
	}
	return lines
}

// pentagonShape describes a convex pentagon prototile by its interior
// angles and relative edge lengths, plus the lattice that tiles it.
type pentagonShape struct {
	angles     [5]float64 // interior angles, degrees
	sideRatios [5]float64
	gridX      float64 // lattice pitch in units of tile size
	gridY      float64
	// orientation picks the tile rotation for a lattice cell.
	orientation func(row, col int) float64
}

// pentagon14Shape approximates the Rao type 14 pentagon: one right
// angle with the characteristic 145.34/69.32/124.66/110.68 companions.
var pentagon14Shape = pentagonShape{
	angles:     [5]float64{90, 145.34, 69.32, 124.66, 110.68},
	sideRatios: [5]float64{1.0, 0.8, 1.2, 0.9, 1.1},
	gridX:      2.3,
	gridY:      2.0,
	orientation: func(row, col int) float64 {
		switch [2]int{row % 3, col % 2} {
		case [2]int{0, 0}:
			return 0
		case [2]int{0, 1}:
			return math.Pi * 0.6
		case [2]int{1, 0}:
			return math.Pi * 1.2
		case [2]int{1, 1}:
			return math.Pi * 1.8
		case [2]int{2, 0}:
			return math.Pi * 0.3
		default:
			return math.Pi * 0.9
		}
	},
}

// pentagon15Shape approximates the Rao type 15 pentagon with its
// 135/60/150/90/105 angle set and equal edges.
var pentagon15Shape = pentagonShape{
	angles:     [5]float64{135, 60, 150, 90, 105},
	sideRatios: [5]float64{1, 1, 1, 1, 1},
	gridX:      2.5,
	gridY:      2.2,
	orientation: func(row, col int) float64 {
		base := float64(col%3) * 2 * math.Pi / 3
		if row%2 == 1 {
			base += math.Pi
		}
		return base
	},
}

// make walks the pentagon boundary from its interior angles and edge
// ratios, then centers it at (cx, cy).
func (s *pentagonShape) make(cx, cy, size, rotation float64) [5]Point {
	var total float64
	for _, r := range s.sideRatios {
		total += r
	}

	var verts [5]Point
	x, y := 0.0, 0.0
	direction := rotation
	for i := 0; i < 5; i++ {
		verts[i] = Point{X: x, Y: y}

		edge := s.sideRatios[i] / total * 5 * size
		x += edge * math.Cos(direction)
		y += edge * math.Sin(direction)

		interior := s.angles[(i+1)%5] * degToRad
		direction += math.Pi - interior
	}

	var cxSum, cySum float64
	for _, v := range verts {
		cxSum += v.X
		cySum += v.Y
	}
	for i := range verts {
		verts[i].X += cx - cxSum/5
		verts[i].Y += cy - cySum/5
	}
	return verts
}

// pentagonFill tiles the padded bounding region with the prototile on
// its offset lattice, emitting tile edges clipped to the polygon.
func pentagonFill(ctx *patternContext, shape pentagonShape) []Line {
	tileSize := ctx.spacing * 2
	gridX := tileSize * shape.gridX
	gridY := tileSize * shape.gridY

	pad := ctx.padding() + tileSize*3

	var lines []Line
	row := 0
	for y := ctx.bounds.MinY - pad; y <= ctx.bounds.MaxY+pad; y += gridY {
		xOffset := 0.0
		if row%2 == 1 {
			xOffset = gridX / 2
		}

		col := 0
		for x := ctx.bounds.MinX - pad + xOffset; x <= ctx.bounds.MaxX+pad; x += gridX {
			verts := shape.make(x, y, tileSize, shape.orientation(row, col)+ctx.angleRad)

			rotated := make([]Point, 5)
			for i, v := range verts {
				rx, ry := ctx.rotate(v.X, v.Y)
				rotated[i] = Point{X: rx, Y: ry}
			}

			if cellNearBody(ctx, rotated) {
				for i := range rotated {
					lines = append(lines, LineBetween(rotated[i], rotated[(i+1)%5]))
				}
			}
			col++
		}
		row++
	}
	return ctx.clip(dedupeLines(lines))
}
