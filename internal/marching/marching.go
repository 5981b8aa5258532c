// Package marching extracts iso-contours from scalar fields sampled on a
// regular grid, using the marching squares algorithm.
package marching

// Segment is one contour piece inside a single grid cell.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Field is a scalar field sampled on a regular grid. Samples are stored
// row-major; the sample at (i, j) sits at world coordinates
// (originX + i*step, originY + j*step).
type Field struct {
	cols, rows int
	originX    float64
	originY    float64
	step       float64
	values     []float64
}

// NewField allocates a field of cols by rows samples anchored at the
// given origin with the given sample step.
func NewField(cols, rows int, originX, originY, step float64) *Field {
	return &Field{
		cols:    cols,
		rows:    rows,
		originX: originX,
		originY: originY,
		step:    step,
		values:  make([]float64, cols*rows),
	}
}

// Fill evaluates f at every sample position.
func (f *Field) Fill(fn func(x, y float64) float64) {
	for j := 0; j < f.rows; j++ {
		y := f.originY + float64(j)*f.step
		for i := 0; i < f.cols; i++ {
			x := f.originX + float64(i)*f.step
			f.values[j*f.cols+i] = fn(x, y)
		}
	}
}

// at returns the sample at grid position (i, j).
func (f *Field) at(i, j int) float64 {
	return f.values[j*f.cols+i]
}

// Contour extracts the iso-line at the given threshold as a set of
// per-cell segments. Segment order is row-major over cells and
// deterministic for a given field.
func (f *Field) Contour(threshold float64) []Segment {
	var segments []Segment
	for j := 0; j < f.rows-1; j++ {
		for i := 0; i < f.cols-1; i++ {
			segments = append(segments, f.marchCell(i, j, threshold)...)
		}
	}
	return segments
}

// marchCell emits the contour segments crossing one grid cell.
//
// Corner numbering and the resulting 16 cases follow the classic
// marching squares formulation; the ambiguous saddle cases (6 and 9)
// resolve to the two-segment variant without a center-sample tiebreak.
func (f *Field) marchCell(i, j int, threshold float64) []Segment {
	v00 := f.at(i, j) - threshold
	v10 := f.at(i+1, j) - threshold
	v01 := f.at(i, j+1) - threshold
	v11 := f.at(i+1, j+1) - threshold

	x0 := f.originX + float64(i)*f.step
	x1 := x0 + f.step
	y0 := f.originY + float64(j)*f.step
	y1 := y0 + f.step

	var config uint8
	if v00 > 0 {
		config |= 1
	}
	if v10 > 0 {
		config |= 2
	}
	if v01 > 0 {
		config |= 4
	}
	if v11 > 0 {
		config |= 8
	}

	interp := func(a, b, va, vb float64) float64 {
		if d := vb - va; d > 1e-10 || d < -1e-10 {
			return a + (b-a)*(-va)/d
		}
		return (a + b) / 2
	}

	bottomX := interp(x0, x1, v00, v10)
	topX := interp(x0, x1, v01, v11)
	leftY := interp(y0, y1, v00, v01)
	rightY := interp(y0, y1, v10, v11)

	seg := func(ax, ay, bx, by float64) Segment {
		return Segment{X1: ax, Y1: ay, X2: bx, Y2: by}
	}

	switch config {
	case 0, 15:
		return nil
	case 1, 14:
		return []Segment{seg(bottomX, y0, x0, leftY)}
	case 2, 13:
		return []Segment{seg(bottomX, y0, x1, rightY)}
	case 3, 12:
		return []Segment{seg(x0, leftY, x1, rightY)}
	case 4, 11:
		return []Segment{seg(x0, leftY, topX, y1)}
	case 5, 10:
		return []Segment{seg(bottomX, y0, topX, y1)}
	case 6:
		return []Segment{
			seg(bottomX, y0, x1, rightY),
			seg(x0, leftY, topX, y1),
		}
	case 9:
		return []Segment{
			seg(bottomX, y0, x0, leftY),
			seg(topX, y1, x1, rightY),
		}
	case 7, 8:
		return []Segment{seg(topX, y1, x1, rightY)}
	}
	return nil
}
