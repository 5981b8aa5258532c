package hatch

import (
	"math"
	"testing"
)

func TestPointInRing(t *testing.T) {
	square := square100().Outer

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"right of square", 150, 5, false},
		{"left of square", -1, 50, false},
		{"above", 50, -10, false},
		{"near corner inside", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRing(tt.x, tt.y, square); got != tt.want {
				t.Errorf("PointInRing(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if PointInRing(0, 0, []Point{{0, 0}, {1, 1}}) {
		t.Error("degenerate ring should contain nothing")
	}
}

func TestPointInRing_HorizontalEdge(t *testing.T) {
	// A notched shape with a horizontal edge at y=50: rays through the
	// edge's height must not double count.
	ring := []Point{
		{0, 0}, {100, 0}, {100, 50}, {60, 50}, {60, 100}, {0, 100},
	}

	if !PointInRing(30, 60, ring) {
		t.Error("(30, 60) should be inside")
	}
	if PointInRing(80, 60, ring) {
		t.Error("(80, 60) is in the notch, outside")
	}
	if !PointInRing(80, 30, ring) {
		t.Error("(80, 30) should be inside")
	}
}

func TestClipLineToPolygon(t *testing.T) {
	sq := square100()

	tests := []struct {
		name     string
		line     Line
		segments int
	}{
		{"entirely inside", L(20, 50, 80, 50), 1},
		{"entirely outside", L(150, 50, 200, 50), 0},
		{"crossing", L(-50, 50, 150, 50), 1},
		{"parallel outside", L(-50, 150, 150, 150), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipLineToPolygon(tt.line, sq)
			if len(got) != tt.segments {
				t.Fatalf("got %d segments, want %d: %v", len(got), tt.segments, got)
			}
		})
	}
}

func TestClipLineToPolygon_CrossingClips(t *testing.T) {
	sq := square100()
	got := ClipLineToPolygon(L(-50, 50, 150, 50), sq)

	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	if math.Abs(got[0].X1-0) > 1e-9 || math.Abs(got[0].X2-100) > 1e-9 {
		t.Errorf("clipped to [%v, %v], want [0, 100]", got[0].X1, got[0].X2)
	}
}

func TestClipLineToPolygon_HoleSplits(t *testing.T) {
	p := NewPolygonWithHoles(square100().Outer,
		[][]Point{{{40, 40}, {60, 40}, {60, 60}, {40, 60}}})

	got := ClipLineToPolygon(L(-10, 50, 110, 50), p)
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2: %v", len(got), got)
	}

	if math.Abs(got[0].X1-0) > 1e-9 || math.Abs(got[0].X2-40) > 1e-9 {
		t.Errorf("first segment [%v, %v], want [0, 40]", got[0].X1, got[0].X2)
	}
	if math.Abs(got[1].X1-60) > 1e-9 || math.Abs(got[1].X2-100) > 1e-9 {
		t.Errorf("second segment [%v, %v], want [60, 100]", got[1].X1, got[1].X2)
	}
}

func TestClipLineToPolygon_NonFinite(t *testing.T) {
	sq := square100()

	bad := []Line{
		L(math.NaN(), 50, 100, 50),
		L(0, 50, math.Inf(1), 50),
		L(math.Inf(-1), math.NaN(), math.Inf(1), math.NaN()),
	}
	for _, line := range bad {
		if got := ClipLineToPolygon(line, sq); len(got) != 0 {
			t.Errorf("non-finite input produced %v", got)
		}
	}
}

func TestClipLinesToPolygon_Idempotent(t *testing.T) {
	p := NewPolygonWithHoles(square100().Outer,
		[][]Point{{{40, 40}, {60, 40}, {60, 60}, {40, 60}}})

	input := []Line{
		L(-10, 15, 110, 15),
		L(-10, 50, 110, 50),
		L(50, -10, 50, 110),
		L(20, 20, 30, 30),
	}

	once := ClipLinesToPolygon(input, p)
	twice := ClipLinesToPolygon(once, p)

	if len(once) != len(twice) {
		t.Fatalf("idempotence broken: %d then %d segments", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Start().Approx(twice[i].Start(), 1e-6) ||
			!once[i].End().Approx(twice[i].End(), 1e-6) {
			t.Errorf("segment %d changed: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestClipLinesToPolygon_MidpointContainment(t *testing.T) {
	p := NewPolygonWithHoles(
		[]Point{{0, 0}, {100, 0}, {100, 50}, {60, 50}, {60, 100}, {0, 100}},
		[][]Point{{{10, 10}, {30, 10}, {30, 30}, {10, 30}}})

	var input []Line
	for y := -10.0; y <= 110; y += 7 {
		input = append(input, L(-10, y, 110, y))
	}

	for _, seg := range ClipLinesToPolygon(input, p) {
		mid := seg.Midpoint()
		if !p.PointInBody(mid.X, mid.Y) {
			t.Errorf("midpoint %v of clipped segment outside body", mid)
		}
	}
}

func TestSegmentIntersection(t *testing.T) {
	x, y, _, ok := segmentIntersection(0, 0, 10, 10, 0, 10, 10, 0)
	if !ok {
		t.Fatal("expected intersection")
	}
	if math.Abs(x-5) > 1e-9 || math.Abs(y-5) > 1e-9 {
		t.Errorf("intersection at (%v, %v), want (5, 5)", x, y)
	}

	if _, _, _, ok := segmentIntersection(0, 0, 10, 0, 0, 5, 10, 5); ok {
		t.Error("parallel segments should not intersect")
	}

	if _, _, _, ok := segmentIntersection(0, 0, 1, 0, 2, -1, 2, 1); ok {
		t.Error("disjoint segments should not intersect")
	}
}
