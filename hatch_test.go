package hatch

import (
	"math"
	"sort"
	"testing"
)

// TestLinesFill_UnitSquare pins the canonical hatch layout: a 100x100
// square at spacing 10 gets exactly 10 horizontal lines at odd
// half-steps, each spanning the full width.
func TestLinesFill_UnitSquare(t *testing.T) {
	lines := Lines.Generate(square100(), 10, 0)

	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}

	ys := make([]float64, len(lines))
	for i, l := range lines {
		if math.Abs(l.Y1-l.Y2) > 1e-9 {
			t.Errorf("line %d not horizontal: %v", i, l)
		}
		ys[i] = l.Y1

		lo := math.Min(l.X1, l.X2)
		hi := math.Max(l.X1, l.X2)
		if math.Abs(lo-0) > 1e-9 || math.Abs(hi-100) > 1e-9 {
			t.Errorf("line %d spans [%v, %v], want [0, 100]", i, lo, hi)
		}
	}

	sort.Float64s(ys)
	for i, y := range ys {
		want := 5 + 10*float64(i)
		if math.Abs(y-want) > 1e-9 {
			t.Errorf("line %d at y=%v, want %v", i, y, want)
		}
	}
}

func TestCrosshatch_UnitSquare(t *testing.T) {
	lines := Crosshatch.Generate(square100(), 10, 0)

	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}

	horizontal := 0
	vertical := 0
	for _, l := range lines {
		switch {
		case math.Abs(l.Y1-l.Y2) < 1e-9:
			horizontal++
		case math.Abs(l.X1-l.X2) < 1e-9:
			vertical++
		default:
			t.Errorf("unexpected slanted line %v", l)
		}
	}
	if horizontal != 10 || vertical != 10 {
		t.Errorf("got %d horizontal + %d vertical, want 10 + 10", horizontal, vertical)
	}
}

// TestLinesFill_HoleExclusion pins the hole-splitting behavior: rows
// crossing the hole split into two spans, the rest stay whole.
func TestLinesFill_HoleExclusion(t *testing.T) {
	p := NewPolygonWithHoles(square100().Outer,
		[][]Point{{{40, 40}, {60, 40}, {60, 60}, {40, 60}}})

	lines := Lines.Generate(p, 10, 0)

	byRow := map[float64][]Line{}
	for _, l := range lines {
		byRow[math.Round(l.Y1)] = append(byRow[math.Round(l.Y1)], l)
	}

	for y, row := range byRow {
		if y == 45 || y == 55 {
			if len(row) != 2 {
				t.Errorf("row y=%v has %d segments, want 2", y, len(row))
				continue
			}
			sort.Slice(row, func(i, j int) bool {
				return math.Min(row[i].X1, row[i].X2) < math.Min(row[j].X1, row[j].X2)
			})
			if hi := math.Max(row[0].X1, row[0].X2); math.Abs(hi-40) > 1e-9 {
				t.Errorf("row y=%v first span ends at %v, want 40", y, hi)
			}
			if lo := math.Min(row[1].X1, row[1].X2); math.Abs(lo-60) > 1e-9 {
				t.Errorf("row y=%v second span starts at %v, want 60", y, lo)
			}
		} else if len(row) != 1 {
			t.Errorf("row y=%v has %d segments, want 1", y, len(row))
		}
	}
}

func TestGrid_IsTwoDirections(t *testing.T) {
	lines := Grid.Generate(square100(), 10, 0)

	horizontal, vertical := 0, 0
	for _, l := range lines {
		if math.Abs(l.Y1-l.Y2) < 1e-9 {
			horizontal++
		}
		if math.Abs(l.X1-l.X2) < 1e-9 {
			vertical++
		}
	}
	if horizontal == 0 || vertical == 0 {
		t.Errorf("grid missing a direction: %d horizontal, %d vertical", horizontal, vertical)
	}
}

func TestDiagonal_DefaultsTo45(t *testing.T) {
	def := Diagonal.Generate(square100(), 10, 0)
	explicit := Diagonal.Generate(square100(), 10, 45)

	if len(def) == 0 || len(explicit) == 0 {
		t.Fatal("diagonal produced no lines")
	}
	if len(def) != len(explicit) {
		t.Errorf("default angle produced %d lines, explicit 45 produced %d", len(def), len(explicit))
	}

	for _, l := range def {
		slope := (l.Y2 - l.Y1) / (l.X2 - l.X1)
		if math.Abs(math.Abs(slope)-1) > 1e-6 {
			t.Errorf("line %v is not diagonal", l)
		}
	}
}

func TestStripe_GroupsOfThree(t *testing.T) {
	lines := Stripe.Generate(square100(), 5, 0)
	if len(lines) == 0 {
		t.Fatal("stripe produced no lines")
	}

	// Collect distinct row positions: rows must alternate between the
	// tight in-band gap and the wide inter-band gap.
	ysSet := map[float64]bool{}
	for _, l := range lines {
		ysSet[math.Round(l.Y1*1000)/1000] = true
	}
	ys := make([]float64, 0, len(ysSet))
	for y := range ysSet {
		ys = append(ys, y)
	}
	sort.Float64s(ys)

	sawTight, sawWide := false, false
	for i := 1; i < len(ys); i++ {
		gap := ys[i] - ys[i-1]
		switch {
		case math.Abs(gap-3) < 1e-6:
			sawTight = true
		case gap > 5:
			sawWide = true
		}
	}
	if !sawTight || !sawWide {
		t.Errorf("stripe gaps missing banding: tight=%v wide=%v rows=%v", sawTight, sawWide, ys)
	}
}

func TestRotatedLines_CoverCorners(t *testing.T) {
	// A rotated fill must still reach the polygon's corners; padding
	// guarantees candidate lines span the whole bbox diagonal.
	lines := Lines.Generate(square100(), 5, 30)
	if len(lines) == 0 {
		t.Fatal("no lines")
	}

	var minX, maxX = math.Inf(1), math.Inf(-1)
	for _, l := range lines {
		minX = math.Min(minX, math.Min(l.X1, l.X2))
		maxX = math.Max(maxX, math.Max(l.X1, l.X2))
	}
	if minX > 5 || maxX < 95 {
		t.Errorf("rotated fill spans [%v, %v], corners uncovered", minX, maxX)
	}
}
