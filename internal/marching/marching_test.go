package marching

import (
	"math"
	"testing"
)

func TestContour_VerticalBoundary(t *testing.T) {
	// f(x, y) = x - 5: the zero contour is the vertical line x = 5.
	f := NewField(11, 11, 0, 0, 1)
	f.Fill(func(x, y float64) float64 { return x - 5 })

	segments := f.Contour(0)
	if len(segments) == 0 {
		t.Fatal("no contour segments")
	}

	for _, s := range segments {
		if math.Abs(s.X1-5) > 1e-9 || math.Abs(s.X2-5) > 1e-9 {
			t.Errorf("segment %+v is off the x=5 contour", s)
		}
	}
}

func TestContour_CircleRadius(t *testing.T) {
	// f(x, y) = x^2 + y^2 - r^2: the contour approximates a circle.
	f := NewField(41, 41, -10, -10, 0.5)
	f.Fill(func(x, y float64) float64 { return x*x + y*y - 25 })

	segments := f.Contour(0)
	if len(segments) < 20 {
		t.Fatalf("only %d segments for a circle", len(segments))
	}

	for _, s := range segments {
		for _, r := range []float64{math.Hypot(s.X1, s.Y1), math.Hypot(s.X2, s.Y2)} {
			if math.Abs(r-5) > 0.3 {
				t.Errorf("contour point at radius %v, want ~5", r)
			}
		}
	}
}

func TestContour_EmptyWhenUniform(t *testing.T) {
	f := NewField(5, 5, 0, 0, 1)
	f.Fill(func(x, y float64) float64 { return 1 })

	if segments := f.Contour(0); len(segments) != 0 {
		t.Errorf("uniform field produced %d segments", len(segments))
	}
}

func TestContour_Deterministic(t *testing.T) {
	build := func() []Segment {
		f := NewField(21, 21, 0, 0, 1)
		f.Fill(func(x, y float64) float64 {
			return math.Sin(x/3) + math.Cos(y/2)
		})
		return f.Contour(0.2)
	}

	a := build()
	b := build()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("segment %d differs", i)
		}
	}
}
