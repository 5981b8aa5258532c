// Package recipe loads and saves TOML fill recipes: named collections
// of fill settings applied to a document's shapes by group or id.
package recipe

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/hatch"
)

// Recipe maps document shapes to fill settings.
//
// Rules are matched most specific first: an exact shape id wins over a
// group id, which wins over the default rule.
type Recipe struct {
	// Default applies when no rule matches.
	Default Rule `toml:"default"`
	// Groups maps a group id to its rule.
	Groups map[string]Rule `toml:"groups,omitempty"`
	// Shapes maps a shape id to its rule.
	Shapes map[string]Rule `toml:"shapes,omitempty"`
	// Sketchy, when present, is applied to the whole output.
	Sketchy *SketchyRule `toml:"sketchy,omitempty"`
	// Order names the polygon ordering strategy.
	Order string `toml:"order,omitempty"`
	// ChainTolerance enables line chaining when positive.
	ChainTolerance float64 `toml:"chain_tolerance,omitempty"`
}

// Rule is one fill assignment.
type Rule struct {
	Pattern string  `toml:"pattern"`
	Spacing float64 `toml:"spacing"`
	Angle   float64 `toml:"angle"`
	Seed    uint64  `toml:"seed,omitempty"`
	// Skip excludes matching shapes from filling.
	Skip bool `toml:"skip,omitempty"`
}

// SketchyRule mirrors hatch.SketchyConfig in TOML form.
type SketchyRule struct {
	Roughness    float64 `toml:"roughness"`
	Bowing       float64 `toml:"bowing"`
	DoubleStroke bool    `toml:"double_stroke"`
	Seed         uint64  `toml:"seed,omitempty"`
}

// Config converts the rule to a hatch.SketchyConfig.
func (s *SketchyRule) Config() hatch.SketchyConfig {
	return hatch.SketchyConfig{
		Roughness:    s.Roughness,
		Bowing:       s.Bowing,
		DoubleStroke: s.DoubleStroke,
		Seed:         s.Seed,
	}
}

// Default returns the recipe used when none is supplied: lines at
// spacing 5, document order.
func Default() Recipe {
	return Recipe{
		Default: Rule{Pattern: "lines", Spacing: 5},
	}
}

// Load reads a recipe from TOML.
func Load(r io.Reader) (Recipe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Recipe{}, fmt.Errorf("reading recipe: %w", err)
	}

	rec := Default()
	if err := toml.Unmarshal(data, &rec); err != nil {
		return Recipe{}, fmt.Errorf("parsing recipe: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return Recipe{}, err
	}
	return rec, nil
}

// LoadFile reads a recipe from a TOML file.
func LoadFile(path string) (Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("opening recipe: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Save writes the recipe as TOML.
func (r Recipe) Save(w io.Writer) error {
	data, err := toml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding recipe: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Validate checks that every named pattern and the ordering strategy
// exist.
func (r Recipe) Validate() error {
	check := func(where string, rule Rule) error {
		if rule.Skip || rule.Pattern == "" {
			return nil
		}
		if _, ok := hatch.FromName(rule.Pattern); !ok {
			return fmt.Errorf("recipe: unknown pattern %q in %s", rule.Pattern, where)
		}
		if rule.Spacing < 0 {
			return fmt.Errorf("recipe: negative spacing in %s", where)
		}
		return nil
	}

	if err := check("default", r.Default); err != nil {
		return err
	}
	for name, rule := range r.Groups {
		if err := check("groups."+name, rule); err != nil {
			return err
		}
	}
	for name, rule := range r.Shapes {
		if err := check("shapes."+name, rule); err != nil {
			return err
		}
	}
	if r.Order != "" {
		if _, ok := hatch.OrderingStrategyFromName(r.Order); !ok {
			return fmt.Errorf("recipe: unknown ordering strategy %q", r.Order)
		}
	}
	return nil
}

// RuleFor resolves the rule for a polygon: shape id, then group id,
// then the document's data-* overrides, then the default.
func (r Recipe) RuleFor(p hatch.Polygon) Rule {
	if rule, ok := r.Shapes[p.ID]; ok {
		return rule
	}
	if rule, ok := r.Groups[p.GroupID]; ok {
		return rule
	}

	rule := r.Default
	if p.Style != nil {
		if p.Style.Pattern != "" {
			rule.Pattern = p.Style.Pattern
		}
		if p.Style.HasSpacing {
			rule.Spacing = p.Style.Spacing
		}
		if p.Style.HasAngle {
			rule.Angle = p.Style.Angle
		}
	}
	return rule
}

// Requests builds fill requests for the polygons under this recipe.
// Skipped shapes and unknown per-shape pattern names are omitted.
func (r Recipe) Requests(polygons []hatch.Polygon) []hatch.FillRequest {
	requests := make([]hatch.FillRequest, 0, len(polygons))
	for _, p := range polygons {
		rule := r.RuleFor(p)
		if rule.Skip {
			continue
		}

		pattern, ok := hatch.FromName(strings.TrimSpace(rule.Pattern))
		if !ok {
			continue
		}

		var opts []hatch.GenerateOption
		if rule.Seed != 0 {
			opts = append(opts, hatch.WithSeed(rule.Seed))
		}
		requests = append(requests, hatch.FillRequest{
			Polygon: p,
			Pattern: pattern,
			Spacing: rule.Spacing,
			Angle:   rule.Angle,
			Options: opts,
		})
	}
	return requests
}
