package hatch

import (
	"math"
	"testing"
)

func TestChainLines_Basic(t *testing.T) {
	tests := []struct {
		name       string
		lines      []Line
		wantChains int
	}{
		{"empty", nil, 0},
		{"single", []Line{L(0, 0, 10, 10)}, 1},
		{"two connected", []Line{L(0, 0, 10, 10), L(10, 10, 20, 10)}, 1},
		{"two disconnected", []Line{L(0, 0, 10, 10), L(100, 100, 110, 110)}, 2},
		{"zigzag of five", []Line{
			L(0, 0, 10, 10), L(10, 10, 20, 0), L(20, 0, 30, 10),
			L(30, 10, 40, 0), L(40, 0, 50, 10),
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chains, stats := ChainLines(tt.lines, DefaultChainConfig())
			if len(chains) != tt.wantChains {
				t.Fatalf("got %d chains, want %d", len(chains), tt.wantChains)
			}
			if stats.InputLines != len(tt.lines) || stats.OutputChains != tt.wantChains {
				t.Errorf("stats = %+v", stats)
			}
		})
	}
}

func TestChainLines_Tolerance(t *testing.T) {
	lines := []Line{
		L(0, 0, 10, 10),
		L(10.05, 10.05, 20, 10), // slightly off the first line's end
	}

	chains, _ := ChainLines(lines, ChainConfig{Tolerance: 0.1})
	if len(chains) != 1 {
		t.Errorf("tolerance 0.1 gave %d chains, want 1", len(chains))
	}

	chains, _ = ChainLines(lines, ChainConfig{Tolerance: 0.01})
	if len(chains) != 2 {
		t.Errorf("tolerance 0.01 gave %d chains, want 2", len(chains))
	}
}

func TestChainLines_OutOfOrder(t *testing.T) {
	lines := []Line{
		L(20, 0, 30, 10), // middle
		L(0, 0, 10, 10),  // start
		L(10, 10, 20, 0), // connects start to middle
	}

	chains, _ := ChainLines(lines, DefaultChainConfig())
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}
	if len(chains[0]) != 4 {
		t.Errorf("chain has %d points, want 4", len(chains[0]))
	}
}

func TestChainLines_ReversesSegments(t *testing.T) {
	// The second line is oriented backwards; chaining must flip it.
	lines := []Line{
		L(0, 0, 10, 0),
		L(20, 0, 10, 0),
	}

	chains, _ := ChainLines(lines, DefaultChainConfig())
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(chains))
	}
	if len(chains[0]) != 3 {
		t.Fatalf("chain has %d points, want 3", len(chains[0]))
	}
	if !chains[0][2].Approx(Pt(20, 0), 1e-9) {
		t.Errorf("chain ends at %v, want (20, 0)", chains[0][2])
	}
}

// TestChainLines_LengthPreserved pins the geometry guarantee: total
// chain length equals total input length within tolerance slack.
func TestChainLines_LengthPreserved(t *testing.T) {
	lines := Crosshatch.Generate(square100(), 10, 15)

	chains, stats := ChainLines(lines, DefaultChainConfig())

	inputLength := TotalLength(lines)
	if math.Abs(stats.TotalLength-inputLength) > float64(len(lines))*0.1 {
		t.Errorf("chained length %v, input length %v", stats.TotalLength, inputLength)
	}

	segs := 0
	for _, c := range chains {
		segs += len(c) - 1
	}
	if segs != len(lines) {
		t.Errorf("segment count changed: %d in, %d out", len(lines), segs)
	}
}

func TestChainLines_ReducesPenLifts(t *testing.T) {
	// A spiral is one continuous curve: chaining should collapse its
	// many segments into very few chains.
	lines := Spiral.Generate(square100(), 10, 0)
	chains, stats := ChainLines(lines, DefaultChainConfig())

	if len(chains) >= len(lines)/2 {
		t.Errorf("chaining barely helped: %d lines -> %d chains", len(lines), len(chains))
	}
	if stats.ReductionRatio <= 0 {
		t.Errorf("reduction ratio = %v", stats.ReductionRatio)
	}
}

func TestChainsToLines_RoundTrip(t *testing.T) {
	chains := []Chain{
		{Pt(0, 0), Pt(10, 0), Pt(10, 10)},
		{Pt(50, 50), Pt(60, 60)},
	}

	lines := ChainsToLines(chains)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != L(10, 0, 10, 10) {
		t.Errorf("second line = %v", lines[1])
	}
}
