package svg

import (
	"math"
	"strings"

	"github.com/gogpu/hatch"
)

// Matrix is a 2D affine transformation in row-major 2x3 form:
//
//	| a  b  c |
//	| d  e  f |
//
// representing x' = a*x + b*y + c, y' = d*x + e*y + f.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply multiplies two matrices (m * other): other applies first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p hatch.Point) hatch.Point {
	return hatch.Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether the matrix is (numerically) the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// ParseTransform parses an SVG transform attribute: a whitespace or
// comma separated list of translate/scale/rotate/matrix functions.
// Unknown functions are ignored; a malformed attribute yields the part
// parsed so far composed with identity.
func ParseTransform(attr string) Matrix {
	result := Identity()

	rest := attr
	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], ')')
		if end < 0 {
			break
		}
		end += open

		name := strings.TrimSpace(strings.Trim(rest[:open], ", \t\n"))
		args := parseNumberList(rest[open+1 : end])
		rest = rest[end+1:]

		var m Matrix
		switch {
		case name == "translate" && len(args) >= 1:
			ty := 0.0
			if len(args) >= 2 {
				ty = args[1]
			}
			m = Translate(args[0], ty)
		case name == "scale" && len(args) >= 1:
			sy := args[0]
			if len(args) >= 2 {
				sy = args[1]
			}
			m = Scale(args[0], sy)
		case name == "rotate" && len(args) == 1:
			m = Rotate(args[0] * math.Pi / 180)
		case name == "rotate" && len(args) >= 3:
			// rotate(a cx cy) = translate(cx cy) rotate(a) translate(-cx -cy)
			m = Translate(args[1], args[2]).
				Multiply(Rotate(args[0] * math.Pi / 180)).
				Multiply(Translate(-args[1], -args[2]))
		case name == "matrix" && len(args) >= 6:
			// SVG matrix(a b c d e f) is column-major.
			m = Matrix{A: args[0], B: args[2], C: args[4], D: args[1], E: args[3], F: args[5]}
		default:
			continue
		}
		result = result.Multiply(m)
	}
	return result
}

// parseNumberList splits a string of numbers separated by whitespace
// and/or commas.
func parseNumberList(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		if v, ok := parseFloat(f); ok {
			nums = append(nums, v)
		}
	}
	return nums
}
