// Command hatch fills SVG artwork with plotter-ready stroke patterns.
//
// Usage:
//
//	hatch fill -in art.svg -out filled.svg [-pattern lines] [-spacing 5]
//	hatch patterns
//	hatch swatches -out swatches.svg
//	hatch preview -in art.svg -out preview.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"

	"github.com/gogpu/hatch"
	"github.com/gogpu/hatch/recipe"
	"github.com/gogpu/hatch/render"
	"github.com/gogpu/hatch/svg"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "fill":
		err = runFill(os.Args[2:])
	case "patterns":
		err = runPatterns()
	case "swatches":
		err = runSwatches(os.Args[2:])
	case "preview":
		err = runPreview(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("hatch %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: hatch <command> [flags]

commands:
  fill      fill an SVG document with patterns
  patterns  list available patterns
  swatches  render one swatch per pattern
  preview   rasterize a fill to PNG`)
}

func runFill(args []string) error {
	fs := flag.NewFlagSet("fill", flag.ExitOnError)
	var (
		in         = fs.String("in", "", "input SVG file")
		out        = fs.String("out", "", "output SVG file (default stdout)")
		recipePath = fs.String("recipe", "", "TOML recipe file")
		pattern    = fs.String("pattern", "lines", "pattern name")
		spacing    = fs.Float64("spacing", 5, "pattern spacing in document units")
		angle      = fs.Float64("angle", 0, "pattern angle in degrees")
		order      = fs.String("order", "document", "polygon order: document or nearest")
		chainTol   = fs.Float64("chain", 0, "chain segments within tolerance (0 disables)")
		sketchy    = fs.Bool("sketchy", false, "apply the hand-drawn filter")
		seed       = fs.Uint64("seed", 0, "seed for random patterns")
		workers    = fs.Int("workers", 0, "fill workers (0 = all cores)")
		watch      = fs.Bool("watch", false, "re-fill whenever the input changes")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("missing -in")
	}
	if *verbose {
		hatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rec, err := buildRecipe(*recipePath, *pattern, *spacing, *angle, *order, *chainTol, *seed, *sketchy)
	if err != nil {
		return err
	}

	if err := fillOnce(*in, *out, rec, *workers); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(*in); err != nil {
		return fmt.Errorf("watching %s: %w", *in, err)
	}
	log.Printf("watching %s", *in)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				if err := fillOnce(*in, *out, rec, *workers); err != nil {
					log.Printf("refill failed: %v", err)
				} else {
					log.Printf("refilled after %s", ev.Op)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// buildRecipe loads the recipe file when one was given, ignoring the
// other flags; otherwise it builds the recipe from the flags.
func buildRecipe(path, pattern string, spacing, angle float64, order string, chainTol float64, seed uint64, sketchy bool) (recipe.Recipe, error) {
	if path != "" {
		return recipe.LoadFile(path)
	}

	if _, ok := hatch.FromName(pattern); !ok {
		return recipe.Recipe{}, fmt.Errorf("unknown pattern %q", pattern)
	}
	rec := recipe.Recipe{
		Default:        recipe.Rule{Pattern: pattern, Spacing: spacing, Angle: angle, Seed: seed},
		Order:          order,
		ChainTolerance: chainTol,
	}
	if sketchy {
		rec.Sketchy = &recipe.SketchyRule{Roughness: 1, Bowing: 1, DoubleStroke: true}
	}
	return rec, rec.Validate()
}

func fillOnce(in, out string, rec recipe.Recipe, workers int) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	polygons, err := svg.ExtractPolygons(f)
	f.Close()
	if err != nil {
		return err
	}
	if len(polygons) == 0 {
		return fmt.Errorf("%s contains no fillable shapes", in)
	}

	strategy, _ := hatch.OrderingStrategyFromName(rec.Order)
	order := hatch.OrderPolygons(polygons, strategy)

	ordered := make([]hatch.Polygon, len(order))
	for i, idx := range order {
		ordered[i] = polygons[idx]
	}
	if strategy == hatch.OrderNearestNeighbor {
		reduction := hatch.TravelReduction(polygons, order)
		log.Printf("travel reduced by %.0f%%", reduction*100)
	}

	filler := hatch.NewFiller(workers)
	defer filler.Close()
	lines := filler.Fill(rec.Requests(ordered))

	if rec.Sketchy != nil {
		lines = hatch.Sketchify(lines, rec.Sketchy.Config())
	}

	w := os.Stdout
	if out != "" {
		w, err = os.Create(out)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	if rec.ChainTolerance > 0 {
		chains, stats := hatch.ChainLines(lines, hatch.ChainConfig{Tolerance: rec.ChainTolerance})
		log.Printf("chained %d lines into %d paths (%.0f%% fewer pen lifts)",
			stats.InputLines, stats.OutputChains, stats.ReductionRatio*100)
		return svg.WriteChains(w, chains, svg.EmitOptions{Margin: 10})
	}
	return svg.WriteLines(w, lines, svg.EmitOptions{Margin: 10})
}

func runPatterns() error {
	out := termenv.NewOutput(os.Stdout)

	for _, p := range hatch.AllPatterns() {
		meta := p.Metadata()
		name := out.String(fmt.Sprintf("%-14s", p.String())).Bold().Foreground(out.Color("6"))
		fmt.Printf("%s %s  (spacing: %s, angle: %s)\n",
			name, meta.Description, meta.SpacingLabel, meta.AngleLabel)
	}
	return nil
}

func runSwatches(args []string) error {
	fs := flag.NewFlagSet("swatches", flag.ExitOnError)
	var (
		out     = fs.String("out", "swatches.svg", "output SVG file")
		size    = fs.Float64("size", 100, "swatch cell size")
		spacing = fs.Float64("spacing", 5, "pattern spacing")
	)
	fs.Parse(args)

	const cols = 6
	gap := *size * 0.2

	var lines []hatch.Line
	for i, p := range hatch.AllPatterns() {
		col := float64(i % cols)
		row := float64(i / cols)
		x := col * (*size + gap)
		y := row * (*size + gap)

		cell := hatch.NewPolygon([]hatch.Point{
			{X: x, Y: y}, {X: x + *size, Y: y},
			{X: x + *size, Y: y + *size}, {X: x, Y: y + *size},
		})
		lines = append(lines, hatch.PolygonOutline(cell)...)
		lines = append(lines, p.Generate(cell, *spacing, 0)...)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	log.Printf("writing %d swatches to %s", len(hatch.AllPatterns()), *out)
	return svg.WriteLines(f, lines, svg.EmitOptions{Margin: 10, StrokeWidth: 0.5})
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	var (
		in      = fs.String("in", "", "input SVG file")
		out     = fs.String("out", "preview.png", "output PNG file")
		pattern = fs.String("pattern", "lines", "pattern name")
		spacing = fs.Float64("spacing", 5, "pattern spacing")
		angle   = fs.Float64("angle", 0, "pattern angle")
		scale   = fs.Float64("scale", 2, "pixels per document unit")
	)
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("missing -in")
	}
	p, ok := hatch.FromName(*pattern)
	if !ok {
		return fmt.Errorf("unknown pattern %q", *pattern)
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	polygons, err := svg.ExtractPolygons(f)
	f.Close()
	if err != nil {
		return err
	}

	var lines []hatch.Line
	for _, poly := range polygons {
		lines = append(lines, hatch.PolygonOutline(poly)...)
		lines = append(lines, p.Generate(poly, *spacing, *angle)...)
	}

	w, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer w.Close()

	log.Printf("rendering %d lines to %s", len(lines), *out)
	return render.WritePNG(w, lines, render.Options{Scale: *scale, StrokeWidth: 0.5})
}
