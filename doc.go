// Package hatch fills closed 2D shapes with stroke-based patterns for
// pen plotters.
//
// # Overview
//
// hatch takes polygons (an outer ring plus optional holes, typically
// extracted from vector artwork) and fills them with line work: parallel
// hatching, crosshatch, spirals, space-filling curves, tilings, stipples
// and more. Every pattern produces plain line segments clipped to the
// polygon body, ready for a plotter driver or an SVG emitter.
//
// # Quick Start
//
//	import "github.com/gogpu/hatch"
//
//	square := hatch.NewPolygon([]hatch.Point{
//	    {0, 0}, {100, 0}, {100, 100}, {0, 100},
//	})
//
//	lines := hatch.Crosshatch.Generate(square, 10, 45)
//
// # Pipeline
//
// The typical plotting pipeline is:
//
//   - parse a document into polygons (see the svg subpackage)
//   - reorder polygons to minimize pen travel ([OrderPolygons])
//   - generate fill lines per polygon ([Pattern.Generate] or [Filler])
//   - optionally roughen the result ([Sketchify])
//   - optionally merge touching segments into polylines ([ChainLines])
//
// # Determinism
//
// All generators are deterministic: the same polygon, pattern, spacing,
// angle and seed always produce the same lines. Patterns that use
// randomness (Scribble, Stipple, Truchet, ...) draw from a seeded local
// generator, never from global state, so fills are reproducible and
// polygons can be processed on parallel workers without coordination.
//
// # Coordinate System
//
// Document coordinates with the SVG convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees for the public API, 0 is right
package hatch
