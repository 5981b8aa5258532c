package hatch

import (
	"math"
	"sort"
	"testing"
)

// concentricRingBounds collects the bounding boxes of the closed rings in a
// concentric fill by clustering segment endpoints.
func concentricRingBounds(t *testing.T, lines []Line) []Rect {
	t.Helper()

	// Ring edges of an axis-aligned square fill are axis-aligned;
	// connectors are the diagonal leftovers.
	type key struct{ min, max float64 }
	seen := map[key]bool{}
	for _, l := range lines {
		axisAligned := math.Abs(l.X1-l.X2) < 1e-9 || math.Abs(l.Y1-l.Y2) < 1e-9
		if !axisAligned {
			continue
		}
		lo := math.Min(math.Min(l.X1, l.X2), math.Min(l.Y1, l.Y2))
		hi := math.Max(math.Max(l.X1, l.X2), math.Max(l.Y1, l.Y2))
		seen[key{math.Round(lo*1e6) / 1e6, math.Round(hi*1e6) / 1e6}] = true
	}

	var bounds []Rect
	for k := range seen {
		bounds = append(bounds, Rect{MinX: k.min, MinY: k.min, MaxX: k.max, MaxY: k.max})
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i].MinX < bounds[j].MinX })
	return bounds
}

// TestConcentric_UniformInsets pins the uniform-offset behavior: a
// 100x100 square at spacing 10 yields four nested squares inset 10, 20,
// 30 and 40 units.
func TestConcentric_UniformInsets(t *testing.T) {
	lines := Concentric.Generate(square100(), 10, 0)
	if len(lines) == 0 {
		t.Fatal("no lines")
	}

	bounds := concentricRingBounds(t, lines)
	if len(bounds) != 4 {
		t.Fatalf("got %d rings, want 4 (%v)", len(bounds), bounds)
	}

	for i, b := range bounds {
		inset := 10 * float64(i+1)
		if math.Abs(b.MinX-inset) > 1e-6 || math.Abs(b.MaxX-(100-inset)) > 1e-6 {
			t.Errorf("ring %d spans [%v, %v], want [%v, %v]",
				i, b.MinX, b.MaxX, inset, 100-inset)
		}
	}
}

func TestConcentric_RingsAreClosed(t *testing.T) {
	lines := Concentric.Generate(square100(), 10, 0)

	// 4 rings of 4 edges each, plus 3 connectors.
	if len(lines) != 19 {
		t.Errorf("got %d lines, want 19", len(lines))
	}
}

func TestConcentric_TriangleShrinks(t *testing.T) {
	tri := NewPolygon([]Point{{0, 0}, {80, 0}, {40, 70}})
	lines := Concentric.Generate(tri, 8, 0)
	if len(lines) == 0 {
		t.Fatal("no lines for triangle")
	}

	// Every emitted point stays inside the original triangle's bbox.
	for _, l := range lines {
		for _, p := range []Point{l.Start(), l.End()} {
			if p.X < -1e-6 || p.X > 80+1e-6 || p.Y < -1e-6 || p.Y > 70+1e-6 {
				t.Fatalf("point %v escaped the triangle bbox", p)
			}
		}
	}
}

func TestInsetRing_Square(t *testing.T) {
	ring := square100().Outer

	inset := insetRing(ring, 10)
	if len(inset) != 4 {
		t.Fatalf("inset ring has %d vertices, want 4", len(inset))
	}
	want := []Point{{10, 10}, {90, 10}, {90, 90}, {10, 90}}
	for i, p := range inset {
		if !p.Approx(want[i], 1e-9) {
			t.Errorf("vertex %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestInsetRing_CollapseReturnsNothingUseful(t *testing.T) {
	ring := square100().Outer

	// Inset past the center: the miter offset inverts, the fallback
	// either shrinks legitimately or the caller's area check stops the
	// iteration. Either way the result must not exceed the original.
	inset := insetRing(ring, 60)
	if len(inset) >= 3 {
		area := math.Abs(signedArea(inset))
		if area >= 10000 {
			t.Errorf("inset produced area %v >= original", area)
		}
	}
}
