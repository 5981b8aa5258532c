package hatch

import "math"

// Chain is an ordered sequence of points forming a connected polyline.
type Chain []Point

// Length returns the total length of the chain.
func (c Chain) Length() float64 {
	var total float64
	for i := 1; i < len(c); i++ {
		total += c[i-1].Distance(c[i])
	}
	return total
}

// ChainConfig configures line chaining.
type ChainConfig struct {
	// Tolerance is the maximum endpoint gap to bridge when joining
	// segments into a chain.
	Tolerance float64
}

// DefaultChainConfig returns the default tolerance of 0.1 units,
// sub-pixel at typical document scales.
func DefaultChainConfig() ChainConfig {
	return ChainConfig{Tolerance: 0.1}
}

// ChainStats summarizes a chaining run.
type ChainStats struct {
	// InputLines is the number of input segments.
	InputLines int
	// OutputChains is the number of chains produced.
	OutputChains int
	// TotalLength is the summed length of all chains.
	TotalLength float64
	// ReductionRatio is 1 - chains/lines: how many pen lifts were
	// saved relative to plotting every segment separately.
	ReductionRatio float64
}

// ChainLines joins segments that share endpoints (within the tolerance)
// into polylines, reducing pen lifts on a plotter.
//
// The algorithm is greedy: each unused segment starts a chain, which is
// grown forward from its end and backward from its start by repeatedly
// attaching the nearest unused segment whose endpoint lies within
// tolerance, reversing segments as needed. The multiset of segment
// geometries is preserved; no new segments are created.
//
// Endpoint lookup uses a spatial hash of cell size tolerance, so
// chaining is O(n) in the typical case.
func ChainLines(lines []Line, cfg ChainConfig) ([]Chain, ChainStats) {
	if len(lines) == 0 {
		return nil, ChainStats{}
	}

	tolerance := cfg.Tolerance
	toleranceSq := tolerance * tolerance
	gridSize := math.Max(tolerance, 0.001)

	type endpoint struct {
		line    int
		isStart bool
	}

	grid := make(map[[2]int64][]endpoint, len(lines)*2)
	cellOf := func(x, y float64) [2]int64 {
		return [2]int64{
			int64(math.Floor(x / gridSize)),
			int64(math.Floor(y / gridSize)),
		}
	}

	for i, l := range lines {
		startCell := cellOf(l.X1, l.Y1)
		endCell := cellOf(l.X2, l.Y2)
		grid[startCell] = append(grid[startCell], endpoint{line: i, isStart: true})
		grid[endCell] = append(grid[endCell], endpoint{line: i, isStart: false})
	}

	used := make([]bool, len(lines))

	// findConnecting locates an unused line with either endpoint within
	// tolerance of (x, y), searching the 3x3 cell neighborhood. The
	// second return value tells which endpoint matched.
	findConnecting := func(x, y float64) (int, bool) {
		cell := cellOf(x, y)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for _, cand := range grid[[2]int64{cell[0] + dx, cell[1] + dy}] {
					if used[cand.line] {
						continue
					}

					l := lines[cand.line]
					px, py := l.X1, l.Y1
					if !cand.isStart {
						px, py = l.X2, l.Y2
					}

					distSq := (px-x)*(px-x) + (py-y)*(py-y)
					if distSq <= toleranceSq {
						return cand.line, cand.isStart
					}
				}
			}
		}
		return -1, false
	}

	var chains []Chain
	for start := range lines {
		if used[start] {
			continue
		}
		used[start] = true

		l := lines[start]
		chain := Chain{l.Start(), l.End()}

		// Grow forward from the chain's end, reversing attached lines
		// when their far endpoint is the one that matched.
		for {
			end := chain[len(chain)-1]
			next, matchedStart := findConnecting(end.X, end.Y)
			if next < 0 {
				break
			}
			used[next] = true
			if matchedStart {
				chain = append(chain, lines[next].End())
			} else {
				chain = append(chain, lines[next].Start())
			}
		}

		// Grow backward from the chain's start.
		for {
			head := chain[0]
			prev, matchedStart := findConnecting(head.X, head.Y)
			if prev < 0 {
				break
			}
			used[prev] = true
			if matchedStart {
				chain = append(Chain{lines[prev].End()}, chain...)
			} else {
				chain = append(Chain{lines[prev].Start()}, chain...)
			}
		}

		chains = append(chains, chain)
	}

	var totalLength float64
	for _, c := range chains {
		totalLength += c.Length()
	}

	stats := ChainStats{
		InputLines:     len(lines),
		OutputChains:   len(chains),
		TotalLength:    totalLength,
		ReductionRatio: 1 - float64(len(chains))/float64(len(lines)),
	}
	return chains, stats
}

// ChainsToLines flattens chains back into individual segments.
func ChainsToLines(chains []Chain) []Line {
	var lines []Line
	for _, chain := range chains {
		for i := 1; i < len(chain); i++ {
			lines = append(lines, LineBetween(chain[i-1], chain[i]))
		}
	}
	return lines
}
