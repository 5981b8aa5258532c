// Package lsystem expands Lindenmayer systems and walks them with a
// turtle, producing polylines for space-filling curve fills.
package lsystem

import "math"

// Rules maps a symbol to its replacement string. Symbols without a rule
// are copied through unchanged.
type Rules map[byte]string

// Expand rewrites the axiom depth times under the rules.
func Expand(axiom string, rules Rules, depth int) string {
	current := axiom
	for i := 0; i < depth; i++ {
		var next []byte
		for i := 0; i < len(current); i++ {
			if repl, ok := rules[current[i]]; ok {
				next = append(next, repl...)
			} else {
				next = append(next, current[i])
			}
		}
		current = string(next)
	}
	return current
}

// Point is a turtle position.
type Point struct {
	X, Y float64
}

// Turtle interprets an expanded L-system string. Uppercase letters move
// forward one step; '+' turns left and '-' turns right by TurnAngle.
type Turtle struct {
	// Step is the forward distance per draw symbol.
	Step float64
	// TurnAngle is the rotation per turn symbol, in radians.
	TurnAngle float64
	// Heading is the initial direction, in radians.
	Heading float64
}

// Walk runs the command string from the given start point and returns
// every visited position, starting with the start point itself.
func (t Turtle) Walk(commands string, startX, startY float64) []Point {
	x, y := startX, startY
	angle := t.Heading

	points := make([]Point, 1, len(commands)/2+1)
	points[0] = Point{X: x, Y: y}

	for i := 0; i < len(commands); i++ {
		switch c := commands[i]; {
		case c >= 'A' && c <= 'Z':
			x += t.Step * math.Cos(angle)
			y += t.Step * math.Sin(angle)
			points = append(points, Point{X: x, Y: y})
		case c == '+':
			angle += t.TurnAngle
		case c == '-':
			angle -= t.TurnAngle
		}
	}
	return points
}

// Bounds returns the bounding box of a point set. Returns zeros for an
// empty set.
func Bounds(points []Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
