package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/hatch"
)

func TestLoad(t *testing.T) {
	doc := `
[default]
pattern = "crosshatch"
spacing = 4.0
angle = 45.0

[groups.walls]
pattern = "brick"
spacing = 6.0

[shapes.logo]
pattern = "spiral"
spacing = 3.0

[sketchy]
roughness = 1.5
bowing = 1.0
double_stroke = true
seed = 42
`

	rec, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "crosshatch", rec.Default.Pattern)
	assert.InDelta(t, 4.0, rec.Default.Spacing, 1e-9)
	assert.Equal(t, "brick", rec.Groups["walls"].Pattern)
	assert.Equal(t, "spiral", rec.Shapes["logo"].Pattern)

	require.NotNil(t, rec.Sketchy)
	cfg := rec.Sketchy.Config()
	assert.InDelta(t, 1.5, cfg.Roughness, 1e-9)
	assert.True(t, cfg.DoubleStroke)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoad_UnknownPattern(t *testing.T) {
	_, err := Load(strings.NewReader(`
[default]
pattern = "plaid"
spacing = 5.0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plaid")
}

func TestLoad_UnknownOrder(t *testing.T) {
	_, err := Load(strings.NewReader(`
order = "shortest-path"

[default]
pattern = "lines"
spacing = 5.0
`))
	require.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	_, err := Load(strings.NewReader(`[default`))
	require.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	rec := Default()
	rec.Groups = map[string]Rule{"hatching": {Pattern: "wiggle", Spacing: 7, Angle: 30}}
	rec.Order = "nearest"
	rec.ChainTolerance = 0.2

	var sb strings.Builder
	require.NoError(t, rec.Save(&sb))

	back, err := Load(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, rec.Default, back.Default)
	assert.Equal(t, rec.Groups, back.Groups)
	assert.Equal(t, rec.Order, back.Order)
	assert.InDelta(t, rec.ChainTolerance, back.ChainTolerance, 1e-9)
}

func TestRuleFor_Precedence(t *testing.T) {
	rec := Recipe{
		Default: Rule{Pattern: "lines", Spacing: 5},
		Groups:  map[string]Rule{"g1": {Pattern: "brick", Spacing: 6}},
		Shapes:  map[string]Rule{"s1": {Pattern: "spiral", Spacing: 3}},
	}

	shape := hatch.Polygon{ID: "s1", GroupID: "g1"}
	assert.Equal(t, "spiral", rec.RuleFor(shape).Pattern, "shape id wins")

	grouped := hatch.Polygon{ID: "other", GroupID: "g1"}
	assert.Equal(t, "brick", rec.RuleFor(grouped).Pattern, "group id next")

	plain := hatch.Polygon{ID: "nope"}
	assert.Equal(t, "lines", rec.RuleFor(plain).Pattern, "default last")
}

func TestRuleFor_DataOverrides(t *testing.T) {
	rec := Recipe{Default: Rule{Pattern: "lines", Spacing: 5, Angle: 0}}

	p := hatch.Polygon{
		ID: "x",
		Style: &hatch.ShapeStyle{
			Pattern:    "honeycomb",
			Spacing:    2,
			HasSpacing: true,
			Angle:      30,
			HasAngle:   true,
		},
	}

	rule := rec.RuleFor(p)
	assert.Equal(t, "honeycomb", rule.Pattern)
	assert.InDelta(t, 2.0, rule.Spacing, 1e-9)
	assert.InDelta(t, 30.0, rule.Angle, 1e-9)
}

func TestRequests(t *testing.T) {
	rec := Recipe{
		Default: Rule{Pattern: "lines", Spacing: 5},
		Shapes: map[string]Rule{
			"skip-me": {Skip: true},
			"seeded":  {Pattern: "truchet", Spacing: 4, Seed: 9},
		},
	}

	square := []hatch.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	polygons := []hatch.Polygon{
		{Outer: square, ID: "a"},
		{Outer: square, ID: "skip-me"},
		{Outer: square, ID: "seeded"},
	}

	requests := rec.Requests(polygons)
	require.Len(t, requests, 2)
	assert.Equal(t, hatch.Lines, requests[0].Pattern)
	assert.Equal(t, hatch.Truchet, requests[1].Pattern)
	assert.Len(t, requests[1].Options, 1)
}
