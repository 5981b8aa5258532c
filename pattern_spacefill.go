package hatch

import (
	"math"

	"github.com/gogpu/hatch/internal/lsystem"
)

// hilbertFill traces a Hilbert curve over the bounding square at a
// recursion depth chosen so the cell size approximates the spacing.
func hilbertFill(ctx *patternContext) []Line {
	size := math.Max(ctx.width, ctx.height)

	depth := int(math.Ceil(math.Log2(size / ctx.spacing)))
	if depth < 1 {
		depth = 1
	}
	if depth > 8 {
		depth = 8
	}
	gridSize := 1 << depth
	cellSize := size / float64(gridSize)

	points := make([]Point, 0, gridSize*gridSize)
	for d := 0; d < gridSize*gridSize; d++ {
		gx, gy := hilbertD2XY(gridSize, d)
		x := ctx.bounds.MinX + (float64(gx)+0.5)*cellSize
		y := ctx.bounds.MinY + (float64(gy)+0.5)*cellSize
		rx, ry := ctx.rotate(x, y)
		points = append(points, Point{X: rx, Y: ry})
	}
	return ctx.clipSampledCurve(points)
}

// hilbertD2XY converts a distance along the Hilbert curve of order n
// (a power of two) into grid coordinates.
func hilbertD2XY(n, d int) (int, int) {
	x, y := 0, 0
	for s := 1; s < n; s *= 2 {
		rx := 1 & (d / 2)
		ry := 1 & (d ^ rx)

		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}

		x += s * rx
		y += s * ry
		d /= 4
	}
	return x, y
}

// peanoFill traces a Peano curve: the 3x3 serpentine analogue of the
// Hilbert curve, at a depth chosen from the spacing.
func peanoFill(ctx *patternContext) []Line {
	size := math.Max(ctx.width, ctx.height)

	depth := int(math.Ceil(math.Log(size/ctx.spacing) / math.Log(3)))
	if depth < 1 {
		depth = 1
	}
	if depth > 5 {
		depth = 5
	}
	gridSize := 1
	for i := 0; i < depth; i++ {
		gridSize *= 3
	}
	cellSize := size / float64(gridSize)

	cells := make([][2]int, 0, gridSize*gridSize)
	peanoRecurse(0, 0, gridSize, false, false, &cells)

	points := make([]Point, 0, len(cells))
	for _, c := range cells {
		x := ctx.bounds.MinX + (float64(c[0])+0.5)*cellSize
		y := ctx.bounds.MinY + (float64(c[1])+0.5)*cellSize
		rx, ry := ctx.rotate(x, y)
		points = append(points, Point{X: rx, Y: ry})
	}
	return ctx.clipSampledCurve(points)
}

// peanoRecurse subdivides a region into a 3x3 block of sub-regions
// visited in serpentine order, flipping traversal direction so adjacent
// sub-curves connect end to end.
func peanoRecurse(x, y, size int, flipX, flipY bool, out *[][2]int) {
	if size == 1 {
		*out = append(*out, [2]int{x, y})
		return
	}

	s := size / 3
	for rowIdx := 0; rowIdx < 3; rowIdx++ {
		row := rowIdx
		if flipY {
			row = 2 - rowIdx
		}

		for colIdx := 0; colIdx < 3; colIdx++ {
			goRight := (rowIdx%2 == 0) != flipX
			col := colIdx
			if !goRight {
				col = 2 - colIdx
			}

			peanoRecurse(
				x+col*s, y+row*s, s,
				flipX != (row == 1),
				flipY != (col == 1),
				out,
			)
		}
	}
}

// sierpinskiFill traces the Sierpinski arrowhead curve, an L-system
// whose limit fills the Sierpinski triangle.
func sierpinskiFill(ctx *patternContext) []Line {
	size := math.Max(ctx.width, ctx.height)

	segmentsNeeded := size / ctx.spacing
	depth := int(math.Ceil(math.Log2(math.Max(segmentsNeeded, 2))))
	if depth < 1 {
		depth = 1
	}
	if depth > 8 {
		depth = 8
	}

	commands := lsystem.Expand("A", lsystem.Rules{
		'A': "B-A-B",
		'B': "A+B+A",
	}, depth)

	numSegments := 1
	for i := 0; i < depth; i++ {
		numSegments *= 3
	}
	step := size / math.Sqrt(float64(numSegments))

	turtle := lsystem.Turtle{
		Step:      step,
		TurnAngle: math.Pi / 3,
		Heading:   ctx.angleRad,
	}
	walked := turtle.Walk(commands, ctx.center.X-size/2, ctx.center.Y-size/2)

	var lines []Line
	for i := 1; i < len(walked); i++ {
		x1, y1 := ctx.rotate(walked[i-1].X, walked[i-1].Y)
		x2, y2 := ctx.rotate(walked[i].X, walked[i].Y)
		lines = append(lines, L(x1, y1, x2, y2))
	}
	return ctx.clip(lines)
}

// gosperFill traces the Gosper "flowsnake" curve, scaled and centered
// over the polygon.
func gosperFill(ctx *patternContext) []Line {
	sqrt7 := math.Sqrt(7)
	baseSize := ctx.spacing * 2
	depth := int(math.Floor(math.Log(ctx.diagonal/baseSize) / math.Log(sqrt7)))
	if depth < 1 {
		depth = 1
	}
	if depth > 5 {
		depth = 5
	}

	commands := lsystem.Expand("A", lsystem.Rules{
		'A': "A-B--B+A++AA+B-",
		'B': "+A-BB--B-A++A+B",
	}, depth)

	turtle := lsystem.Turtle{Step: 1, TurnAngle: math.Pi / 3}
	walked := turtle.Walk(commands, 0, 0)
	if len(walked) < 2 {
		return nil
	}

	minX, minY, maxX, maxY := lsystem.Bounds(walked)
	curveW := maxX - minX
	curveH := maxY - minY
	if curveW < 1e-3 || curveH < 1e-3 {
		return nil
	}

	scale := ctx.diagonal * 1.2 / math.Max(curveW, curveH)
	curveCX := (minX + maxX) / 2
	curveCY := (minY + maxY) / 2

	points := make([]Point, 0, len(walked))
	for _, p := range walked {
		x := (p.X - curveCX) * scale
		y := (p.Y - curveCY) * scale
		rx := x*ctx.cos - y*ctx.sin
		ry := x*ctx.sin + y*ctx.cos
		points = append(points, Point{X: rx + ctx.center.X, Y: ry + ctx.center.Y})
	}
	return ctx.clip(polylineToLines(points))
}
