package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/hatch"
)

// pathScanner tokenizes SVG path data: command letters and numbers
// separated by whitespace and/or commas.
type pathScanner struct {
	data string
	pos  int
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// peekCommand returns the next command letter without consuming it.
func (s *pathScanner) peekCommand() (byte, bool) {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return 0, false
	}
	c := s.data[s.pos]
	if isCommandByte(c) {
		return c, true
	}
	return 0, false
}

func (s *pathScanner) nextCommand() (byte, bool) {
	c, ok := s.peekCommand()
	if ok {
		s.pos++
	}
	return c, ok
}

// number consumes one numeric token. SVG allows compact forms like
// "1.5.5" (= 1.5, 0.5) and "1-2" (= 1, -2).
func (s *pathScanner) number() (float64, bool) {
	s.skipSeparators()
	start := s.pos
	seenDot := false
	seenExp := false

	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case c >= '0' && c <= '9':
			s.pos++
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
			s.pos++
		case (c == '+' || c == '-') && s.pos == start:
			s.pos++
		case (c == 'e' || c == 'E') && s.pos > start && !seenExp:
			seenExp = true
			s.pos++
		case (c == '+' || c == '-') && s.pos > start &&
			(s.data[s.pos-1] == 'e' || s.data[s.pos-1] == 'E'):
			s.pos++
		case c == '.' && seenDot && !seenExp:
			// Second dot starts the next number.
			goto done
		default:
			goto done
		}
	}
done:
	if s.pos == start {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// flag consumes an arc flag, which may be written without separation
// from the following number ("10" = flag 1, then 0...).
func (s *pathScanner) flag() (bool, bool) {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return false, false
	}
	switch s.data[s.pos] {
	case '0':
		s.pos++
		return false, true
	case '1':
		s.pos++
		return true, true
	}
	return false, false
}

func isCommandByte(c byte) bool {
	return strings.IndexByte("MmLlHhVvCcSsQqTtAaZz", c) >= 0
}

// parsePath converts path data into one polyline per subpath. A path
// with multiple Move commands yields multiple subpaths, each later
// treated as an independent polygon ring.
func parsePath(d string) ([][]hatch.Point, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path data")
	}

	s := &pathScanner{data: d}

	var subpaths [][]hatch.Point
	var current []hatch.Point
	var cur, start hatch.Point

	// Reflection state for smooth curve commands.
	var lastCtrl hatch.Point
	var lastCmd byte

	closeSubpath := func() {
		if len(current) >= 2 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	appendPoint := func(p hatch.Point) {
		current = append(current, p)
		cur = p
	}

	var cmd byte
	for {
		if c, ok := s.nextCommand(); ok {
			cmd = c
		} else {
			s.skipSeparators()
			if s.pos >= len(s.data) {
				break
			}
			// Implicit command repetition; M repeats as L.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 'Z', 'z':
				return nil, fmt.Errorf("coordinates after close command")
			case 0:
				return nil, fmt.Errorf("path data must start with a move command")
			}
		}

		relative := cmd >= 'a' && cmd <= 'z'
		abs := func(x, y float64) hatch.Point {
			if relative {
				return hatch.Point{X: cur.X + x, Y: cur.Y + y}
			}
			return hatch.Point{X: x, Y: y}
		}

		switch cmd {
		case 'M', 'm':
			x, ok1 := s.number()
			y, ok2 := s.number()
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("move command needs two coordinates")
			}
			closeSubpath()
			p := abs(x, y)
			current = []hatch.Point{p}
			cur = p
			start = p

		case 'L', 'l':
			x, ok1 := s.number()
			y, ok2 := s.number()
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("line command needs two coordinates")
			}
			appendPoint(abs(x, y))

		case 'H', 'h':
			x, ok := s.number()
			if !ok {
				return nil, fmt.Errorf("horizontal line command needs a coordinate")
			}
			if relative {
				appendPoint(hatch.Point{X: cur.X + x, Y: cur.Y})
			} else {
				appendPoint(hatch.Point{X: x, Y: cur.Y})
			}

		case 'V', 'v':
			y, ok := s.number()
			if !ok {
				return nil, fmt.Errorf("vertical line command needs a coordinate")
			}
			if relative {
				appendPoint(hatch.Point{X: cur.X, Y: cur.Y + y})
			} else {
				appendPoint(hatch.Point{X: cur.X, Y: y})
			}

		case 'C', 'c':
			nums, err := requireNumbers(s, 6, "cubic curve")
			if err != nil {
				return nil, err
			}
			c1 := abs(nums[0], nums[1])
			c2 := abs(nums[2], nums[3])
			end := abs(nums[4], nums[5])
			flattenCubic(cur, c1, c2, end, Tolerance, &current)
			cur = end
			lastCtrl = c2

		case 'S', 's':
			nums, err := requireNumbers(s, 4, "smooth cubic curve")
			if err != nil {
				return nil, err
			}
			c1 := reflectControl(cur, lastCtrl, lastCmd, "CcSs")
			c2 := abs(nums[0], nums[1])
			end := abs(nums[2], nums[3])
			flattenCubic(cur, c1, c2, end, Tolerance, &current)
			cur = end
			lastCtrl = c2

		case 'Q', 'q':
			nums, err := requireNumbers(s, 4, "quadratic curve")
			if err != nil {
				return nil, err
			}
			c1 := abs(nums[0], nums[1])
			end := abs(nums[2], nums[3])
			flattenQuadratic(cur, c1, end, Tolerance, &current)
			cur = end
			lastCtrl = c1

		case 'T', 't':
			nums, err := requireNumbers(s, 2, "smooth quadratic curve")
			if err != nil {
				return nil, err
			}
			c1 := reflectControl(cur, lastCtrl, lastCmd, "QqTt")
			end := abs(nums[0], nums[1])
			flattenQuadratic(cur, c1, end, Tolerance, &current)
			cur = end
			lastCtrl = c1

		case 'A', 'a':
			rx, ok1 := s.number()
			ry, ok2 := s.number()
			rot, ok3 := s.number()
			if !ok1 || !ok2 || !ok3 {
				return nil, fmt.Errorf("arc command needs radii and rotation")
			}
			largeArc, ok4 := s.flag()
			sweep, ok5 := s.flag()
			x, ok6 := s.number()
			y, ok7 := s.number()
			if !ok4 || !ok5 || !ok6 || !ok7 {
				return nil, fmt.Errorf("arc command needs flags and an endpoint")
			}
			end := abs(x, y)
			flattenArc(cur, rx, ry, rot, largeArc, sweep, end, Tolerance, &current)
			cur = end

		case 'Z', 'z':
			if len(current) > 0 {
				// Closure back to the subpath start is implicit in the
				// polygon representation; just reset the pen.
				cur = start
			}

		default:
			return nil, fmt.Errorf("unsupported path command %q", cmd)
		}

		lastCmd = cmd
	}

	closeSubpath()
	if len(subpaths) == 0 {
		return nil, fmt.Errorf("path contains no drawable subpath")
	}
	return subpaths, nil
}

// requireNumbers consumes exactly n numeric tokens.
func requireNumbers(s *pathScanner, n int, what string) ([]float64, error) {
	nums := make([]float64, n)
	for i := range nums {
		v, ok := s.number()
		if !ok {
			return nil, fmt.Errorf("%s needs %d coordinates", what, n)
		}
		nums[i] = v
	}
	return nums, nil
}

// reflectControl reflects the previous control point across the current
// position for smooth curve commands. When the previous command was not
// part of the same curve family, the control point collapses to the
// current position per the SVG spec.
func reflectControl(cur, lastCtrl hatch.Point, lastCmd byte, family string) hatch.Point {
	if lastCmd == 0 || !strings.ContainsRune(family, rune(lastCmd)) {
		return cur
	}
	return hatch.Point{X: 2*cur.X - lastCtrl.X, Y: 2*cur.Y - lastCtrl.Y}
}

// parseFloat parses a float, reporting success instead of an error.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
