package hatch

import (
	"math"

	"github.com/gogpu/hatch/internal/marching"
)

// zigzagConfig tunes the zigzag pattern. The zero value is the default
// regular zigzag; wild mode randomizes run offsets and lengths.
type zigzagConfig struct {
	wild     bool
	wildness float64
	seed     uint64
}

// zigzagFill draws a continuous path of parallel runs joined by
// connecting segments, snaking back and forth across the polygon.
func zigzagFill(ctx *patternContext, cfg zigzagConfig) []Line {
	dir := directionFromRadians(ctx.angleRad)
	halfLen := ctx.diagonal * 0.75
	numRows := int(math.Ceil(ctx.diagonal/ctx.spacing)) + 2

	rng := NewRand(cfg.seed)
	jitterOffset := func(base float64) float64 {
		if !cfg.wild {
			return base
		}
		return base + rng.Signed()*cfg.wildness*ctx.spacing*0.3
	}
	jitterLen := func() float64 {
		if !cfg.wild {
			return halfLen
		}
		return halfLen + rng.Signed()*cfg.wildness*halfLen*0.2
	}

	rowEnd := func(offset, length float64, positive bool) (Point, Point) {
		cx := ctx.center.X + dir.px*offset
		cy := ctx.center.Y + dir.py*offset
		a := Point{X: cx - dir.dx*length, Y: cy - dir.dy*length}
		b := Point{X: cx + dir.dx*length, Y: cy + dir.dy*length}
		if positive {
			return a, b
		}
		return b, a
	}

	var lines []Line
	goingPositive := true
	offset := jitterOffset(float64(-numRows) * ctx.spacing)
	length := jitterLen()
	for i := -numRows; i <= numRows; i++ {
		start, end := rowEnd(offset, length, goingPositive)
		lines = append(lines, LineBetween(start, end))

		// Connect the end of this run to the start of the next one.
		if i < numRows {
			nextOffset := jitterOffset(float64(i+1) * ctx.spacing)
			nextLen := jitterLen()
			_, nextEnd := rowEnd(nextOffset, nextLen, goingPositive)
			lines = append(lines, LineBetween(end, nextEnd))
			offset, length = nextOffset, nextLen
		}

		goingPositive = !goingPositive
	}
	return ctx.clip(lines)
}

// GenerateZigzagWild produces a zigzag fill with randomized run offsets
// and lengths. wildness in [0, 1] scales the variation.
func GenerateZigzagWild(polygon Polygon, spacing, angle, wildness float64, seed uint64) []Line {
	ctx, ok := newPatternContext(polygon, spacing, angle)
	if !ok {
		return nil
	}
	return zigzagFill(&ctx, zigzagConfig{
		wild:     true,
		wildness: math.Max(0, math.Min(1, wildness)),
		seed:     seed,
	})
}

// wiggleFill draws parallel rows of sine waves. Amplitude is half the
// row spacing so adjacent rows do not collide.
func wiggleFill(ctx *patternContext) []Line {
	dir := directionFromRadians(ctx.angleRad)
	pad := ctx.padding()
	numRows := ctx.lineCount()

	amplitude := ctx.spacing * 0.5
	wavelength := ctx.spacing * 4
	step := math.Max(wavelength/8, 0.5)
	numSegments := int(math.Ceil(2 * pad / step))

	var lines []Line
	for i := -numRows; i < numRows; i++ {
		offset := (float64(i) + 0.5) * ctx.spacing
		rowX := ctx.center.X + dir.px*offset
		rowY := ctx.center.Y + dir.py*offset

		sample := func(t float64) Point {
			wave := amplitude * math.Sin(t*2*math.Pi/wavelength)
			return Point{
				X: rowX + dir.dx*t + dir.px*wave,
				Y: rowY + dir.dy*t + dir.py*wave,
			}
		}

		for j := 0; j < numSegments; j++ {
			t1 := -pad + float64(j)*step
			t2 := t1 + step
			lines = append(lines, LineBetween(sample(t1), sample(t2)))
		}
	}
	return ctx.clip(lines)
}

// herringboneFill draws short diagonal segments alternating between +45
// and -45 degrees in a brick-like arrangement.
func herringboneFill(ctx *patternContext) []Line {
	rowSpacing := ctx.spacing * 2
	segmentLength := ctx.spacing * 3

	numRows := int(math.Ceil(ctx.diagonal/rowSpacing)) + 1
	numCols := int(math.Ceil(ctx.diagonal/segmentLength)) + 1

	var lines []Line
	for row := -numRows; row <= numRows; row++ {
		yBase := ctx.center.Y + float64(row)*rowSpacing

		for col := -numCols; col <= numCols; col++ {
			xBase := ctx.center.X + float64(col)*segmentLength

			// Alternate chevron direction per cell.
			chevron := math.Pi / 4
			if (row+col)%2 != 0 {
				chevron = -chevron
			}

			halfLen := segmentLength / 2
			cos := math.Cos(chevron)
			sin := math.Sin(chevron)
			lines = append(lines, Line{
				X1: xBase - cos*halfLen, Y1: yBase - sin*halfLen,
				X2: xBase + cos*halfLen, Y2: yBase + sin*halfLen,
			})
		}
	}

	for i := range lines {
		lines[i] = ctx.rotateLine(lines[i])
	}
	return ctx.clip(lines)
}

// meanderFill traces a boustrophedon path over a grid: rows walked left
// to right then right to left, producing one serpentine stroke.
func meanderFill(ctx *patternContext) []Line {
	size := math.Max(ctx.width, ctx.height)
	gridSize := int(math.Ceil(size / ctx.spacing))
	if gridSize < 3 {
		gridSize = 3
	}
	cellSize := size / float64(gridSize)

	points := make([]Point, 0, gridSize*gridSize)
	for row := 0; row < gridSize; row++ {
		if row%2 == 0 {
			for col := 0; col < gridSize; col++ {
				points = append(points, meanderCell(ctx, col, row, cellSize))
			}
		} else {
			for col := gridSize - 1; col >= 0; col-- {
				points = append(points, meanderCell(ctx, col, row, cellSize))
			}
		}
	}
	return ctx.clipSampledCurve(points)
}

func meanderCell(ctx *patternContext, col, row int, cellSize float64) Point {
	x := ctx.bounds.MinX + (float64(col)+0.5)*cellSize
	y := ctx.bounds.MinY + (float64(row)+0.5)*cellSize
	rx, ry := ctx.rotate(x, y)
	return Point{X: rx, Y: ry}
}

// waveFill renders interference contours of three point sources arranged
// around the polygon, extracted with marching squares.
func waveFill(ctx *patternContext) []Line {
	sourceDist := ctx.diagonal * 0.4
	sources := [3]Point{}
	for i := range sources {
		a := ctx.angleRad + float64(i)*2*math.Pi/3
		sources[i] = Point{
			X: ctx.center.X + sourceDist*math.Cos(a),
			Y: ctx.center.Y + sourceDist*math.Sin(a),
		}
	}

	wavelength := ctx.spacing * 2
	resolution := int(math.Ceil(ctx.diagonal / (ctx.spacing * 0.5)))
	if resolution < 8 {
		resolution = 8
	}

	startX := ctx.center.X - ctx.diagonal*0.6
	startY := ctx.center.Y - ctx.diagonal*0.6
	step := ctx.diagonal * 1.2 / float64(resolution)

	field := marching.NewField(resolution+1, resolution+1, startX, startY, step)
	field.Fill(func(x, y float64) float64 {
		var v float64
		for _, s := range sources {
			d := math.Hypot(x-s.X, y-s.Y)
			v += math.Sin(d * 2 * math.Pi / wavelength)
		}
		return v
	})

	var lines []Line
	const numContours = 8
	for level := 0; level < numContours; level++ {
		threshold := -2.5 + float64(level)*5/numContours
		for _, seg := range field.Contour(threshold) {
			lines = append(lines, Line{X1: seg.X1, Y1: seg.Y1, X2: seg.X2, Y2: seg.Y2})
		}
	}
	return ctx.clip(lines)
}
