package hatch

import (
	"math"
	"testing"
)

func TestNewPatternContext_Validation(t *testing.T) {
	sq := square100()

	tests := []struct {
		name    string
		polygon Polygon
		spacing float64
		angle   float64
		ok      bool
	}{
		{"valid", sq, 10, 0, true},
		{"two points", NewPolygon([]Point{{0, 0}, {1, 1}}), 10, 0, false},
		{"zero spacing", sq, 0, 0, false},
		{"negative spacing", sq, -1, 0, false},
		{"nan spacing", sq, math.NaN(), 0, false},
		{"inf angle", sq, 10, math.Inf(1), false},
		{"zero extent", NewPolygon([]Point{{5, 5}, {5, 5}, {5, 5}}), 10, 0, false},
		{"nan vertex", NewPolygon([]Point{{0, 0}, {10, 0}, {math.NaN(), 10}}), 10, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := newPatternContext(tt.polygon, tt.spacing, tt.angle)
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestPatternContext_Rotate(t *testing.T) {
	ctx, ok := newPatternContext(square100(), 10, 90)
	if !ok {
		t.Fatal("context rejected")
	}

	// 90 degrees around (50, 50): (100, 50) -> (50, 100).
	x, y := ctx.rotate(100, 50)
	if math.Abs(x-50) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("rotate(100, 50) = (%v, %v), want (50, 100)", x, y)
	}
}

func TestParallelLines_Layout(t *testing.T) {
	dir := directionFromDegrees(0)
	lines := dir.parallelLines(Pt(50, 50), 10, 3, 100)

	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}

	// Offsets are half-step aligned: ..., -5, +5, ... around the center.
	for _, l := range lines {
		if math.Abs(l.Y1-l.Y2) > 1e-12 {
			t.Errorf("line %v not horizontal", l)
		}
		frac := math.Mod(math.Abs(l.Y1-50), 10)
		if math.Abs(frac-5) > 1e-9 {
			t.Errorf("line at y=%v is not on a half-step", l.Y1)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{390, 30},
		{-30, 330},
		{720, 0},
	}
	for _, tt := range tests {
		if got := normalizeDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClipSampledCurve_SkipsOutsideRuns(t *testing.T) {
	ctx, ok := newPatternContext(square100(), 10, 0)
	if !ok {
		t.Fatal("context rejected")
	}

	points := []Point{
		{-10, 50}, // outside
		{10, 50},  // inside
		{20, 50},  // inside
		{110, 50}, // outside
	}
	lines := ctx.clipSampledCurve(points)

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0] != L(10, 50, 20, 50) {
		t.Errorf("kept %v, want (10,50)-(20,50)", lines[0])
	}
}
