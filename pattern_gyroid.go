package hatch

import (
	"math"

	"github.com/gogpu/hatch/internal/marching"
)

// gyroidField is the implicit gyroid surface.
func gyroidField(x, y, z float64) float64 {
	return math.Sin(x)*math.Cos(y) + math.Sin(y)*math.Cos(z) + math.Sin(z)*math.Cos(x)
}

// gyroidFill contours 2D slices of the gyroid surface over the bounding
// box: the zero set of gyroidField at a few z values, scaled so the cell
// period tracks the spacing, extracted by marching squares on a grid of
// step spacing/4.
func gyroidFill(ctx *patternContext) []Line {
	scale := 2 * math.Pi / (ctx.spacing * 4)
	resolution := ctx.spacing / 4

	numSlices := int(math.Ceil(ctx.spacing * 2 / 3))
	if numSlices < 3 {
		numSlices = 3
	}
	zBase := ctx.angleRad

	// Sample a square region covering the bbox so one grid step serves
	// both axes.
	size := math.Max(ctx.width, ctx.height)
	n := int(math.Ceil(size/resolution)) + 1
	if n < 10 {
		n = 10
	}
	step := size / float64(n-1)

	var lines []Line
	for slice := 0; slice < numSlices; slice++ {
		z := zBase + float64(slice)/float64(numSlices)*math.Pi

		field := marching.NewField(n, n, ctx.bounds.MinX, ctx.bounds.MinY, step)
		field.Fill(func(x, y float64) float64 {
			return gyroidField(x*scale, y*scale, z)
		})

		for _, seg := range field.Contour(0) {
			lines = append(lines, Line{X1: seg.X1, Y1: seg.Y1, X2: seg.X2, Y2: seg.Y2})
		}
	}
	return ctx.clip(lines)
}
