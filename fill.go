package hatch

import (
	"log/slog"

	"github.com/gogpu/hatch/internal/parallel"
)

// FillRequest describes one polygon's fill settings.
type FillRequest struct {
	Polygon Polygon
	Pattern Pattern
	// Spacing in document units; must be positive.
	Spacing float64
	// Angle in degrees.
	Angle float64
	// Options for the generator (seed overrides and so on).
	Options []GenerateOption
}

// FillResult pairs a request's output with its input index, so callers
// can reassemble deterministic cross-polygon order after parallel
// execution.
type FillResult struct {
	// Index is the request's position in the input slice.
	Index int
	Lines []Line
}

// Filler generates fills for batches of polygons, optionally across
// worker goroutines. Polygons are read-only and every generator owns
// its randomness, so per-polygon fills need no coordination.
type Filler struct {
	pool *parallel.WorkerPool
}

// NewFiller creates a filler with the given worker count.
// workers <= 0 uses GOMAXPROCS; workers == 1 is effectively serial.
func NewFiller(workers int) *Filler {
	return &Filler{pool: parallel.NewWorkerPool(workers)}
}

// Close releases the filler's workers.
func (f *Filler) Close() {
	f.pool.Close()
}

// FillAll generates every request and returns results indexed like the
// input: results[i] corresponds to requests[i] regardless of which
// worker produced it. A failing polygon (degenerate input) yields an
// empty result at its slot and does not affect the others.
func (f *Filler) FillAll(requests []FillRequest) []FillResult {
	results := make([]FillResult, len(requests))

	work := make([]func(), len(requests))
	for i := range requests {
		idx := i
		req := requests[i]
		work[idx] = func() {
			lines := req.Pattern.Generate(req.Polygon, req.Spacing, req.Angle, req.Options...)
			results[idx] = FillResult{Index: idx, Lines: lines}
		}
	}
	f.pool.ExecuteAll(work)

	Logger().Debug("filled polygons",
		slog.Int("polygons", len(requests)),
		slog.Int("workers", f.pool.Workers()))
	return results
}

// Fill generates all requests and concatenates the lines in request
// order.
func (f *Filler) Fill(requests []FillRequest) []Line {
	var lines []Line
	for _, r := range f.FillAll(requests) {
		lines = append(lines, r.Lines...)
	}
	return lines
}
