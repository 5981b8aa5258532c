package hatch

import (
	"math"
	"sort"
	"testing"
)

func squareAt(x, y, size float64) Polygon {
	return NewPolygon([]Point{
		{x - size/2, y - size/2}, {x + size/2, y - size/2},
		{x + size/2, y + size/2}, {x - size/2, y + size/2},
	})
}

// TestOrderNearestNeighbor_Scenario pins the greedy walk: centers at
// 0, 100, 10 and 90 on a line order as 0 -> 2 -> 3 -> 1, cutting travel
// from 270 to 100.
func TestOrderNearestNeighbor_Scenario(t *testing.T) {
	polygons := []Polygon{
		squareAt(0, 0, 2),
		squareAt(100, 0, 2),
		squareAt(10, 0, 2),
		squareAt(90, 0, 2),
	}

	order := OrderPolygons(polygons, OrderNearestNeighbor)
	want := []int{0, 2, 3, 1}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	if travel := TravelDistance(polygons, order); math.Abs(travel-100) > 1e-9 {
		t.Errorf("NN travel = %v, want 100", travel)
	}

	docOrder := OrderPolygons(polygons, OrderDocument)
	if travel := TravelDistance(polygons, docOrder); math.Abs(travel-270) > 1e-9 {
		t.Errorf("document travel = %v, want 270", travel)
	}

	reduction := TravelReduction(polygons, order)
	if math.Abs(reduction-(1-100.0/270.0)) > 1e-9 {
		t.Errorf("reduction = %v, want ~0.63", reduction)
	}
}

func TestOrderPolygons_IsPermutation(t *testing.T) {
	var polygons []Polygon
	for i := 0; i < 25; i++ {
		polygons = append(polygons, squareAt(float64(i*13%7)*20, float64(i*7%5)*20, 4))
	}

	for _, strategy := range []OrderingStrategy{OrderDocument, OrderNearestNeighbor} {
		order := OrderPolygons(polygons, strategy)
		if len(order) != len(polygons) {
			t.Fatalf("%v: order has %d entries, want %d", strategy, len(order), len(polygons))
		}

		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		for i, idx := range sorted {
			if idx != i {
				t.Fatalf("%v: order %v is not a permutation", strategy, order)
			}
		}
	}
}

func TestOrderPolygons_Edges(t *testing.T) {
	if got := OrderPolygons(nil, OrderNearestNeighbor); len(got) != 0 {
		t.Errorf("empty input gave %v", got)
	}

	single := []Polygon{squareAt(5, 5, 2)}
	if got := OrderPolygons(single, OrderNearestNeighbor); len(got) != 1 || got[0] != 0 {
		t.Errorf("single polygon gave %v, want [0]", got)
	}
}

func TestOrderNearestNeighbor_TieBreaksLowestIndex(t *testing.T) {
	// Polygons 1 and 2 are equidistant from 0; the lower index wins.
	polygons := []Polygon{
		squareAt(0, 0, 2),
		squareAt(10, 0, 2),
		squareAt(-10, 0, 2),
	}

	order := OrderPolygons(polygons, OrderNearestNeighbor)
	if order[1] != 1 {
		t.Errorf("order = %v; tie should pick index 1 first", order)
	}
}

func TestOrderingStrategyFromName(t *testing.T) {
	tests := []struct {
		name string
		want OrderingStrategy
		ok   bool
	}{
		{"document", OrderDocument, true},
		{"doc", OrderDocument, true},
		{"NEAREST", OrderNearestNeighbor, true},
		{"nn", OrderNearestNeighbor, true},
		{"nearest-neighbor", OrderNearestNeighbor, true},
		{"bogus", OrderDocument, false},
	}
	for _, tt := range tests {
		got, ok := OrderingStrategyFromName(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("OrderingStrategyFromName(%q) = %v, %v", tt.name, got, ok)
		}
	}
}
