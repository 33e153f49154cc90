package svg2tikz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svg2tikz/colors"
	"github.com/vasalvit/svg2tikz/numfmt"
)

func newTestTranslator(cfg Config) *Translator {
	return NewTranslator(cfg, colors.NewRegistry(), numfmt.New())
}

func TestTranslatePath(t *testing.T) {
	tr := newTestTranslator(DefaultConfig())

	prim := tr.TranslatePath("M 0,0 L 10,0 L 10,10 Z", StyleAttributes{Stroke: "#000000", Fill: "none"}, "")
	require.Empty(t, prim.Diagnostics)
	assert.Equal(t, DrawCommand, prim.Command)
	assert.Equal(t, "(0,0) -- (10,0) -- (10,-10) -- cycle", prim.Path)
	assert.Equal(t, `line width=1\pt,color=black`, prim.Options.String())
	assert.False(t, prim.Hidden)
	assert.True(t, prim.Transforms.IsZero())
	assert.Len(t, prim.Operations, 4)
}

func TestTranslatePathJoinedQuadratic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ForceQuadraticAsCubic = true
	tr := newTestTranslator(cfg)

	prim := tr.TranslatePath("M0,0 Q5,10 10,0", StyleAttributes{Stroke: "#000000", Fill: "none"}, "")
	require.Empty(t, prim.Diagnostics)
	assert.Equal(t, "(0,0) .. controls (5,-10) and (5,-10) .. (10,0)", prim.Path)
}

func TestTranslatePathBadArity(t *testing.T) {
	tr := newTestTranslator(DefaultConfig())

	prim := tr.TranslatePath("M 0,0 L 5", StyleAttributes{Stroke: "#000000", Fill: "none"}, "")
	assert.Equal(t, "(0,0)", prim.Path)
	require.Equal(t, Diagnostics{{Kind: BadArity, Command: "L", Expected: 2, Got: 1}}, prim.Diagnostics)
}

func TestTranslatePathMultipleSubpaths(t *testing.T) {
	tr := newTestTranslator(DefaultConfig())

	prim := tr.TranslatePath("M 0 0 L 1 1 Z M 2 2 L 3 3", StyleAttributes{Fill: "#ffffff"}, "")
	assert.Equal(t, FillCommand, prim.Command)
	assert.Equal(t, "(0,0) -- (1,-1) -- cycle\n(2,-2) -- (3,-3)", prim.Path)
}

func TestTranslatePathDegenerate(t *testing.T) {
	tr := newTestTranslator(DefaultConfig())

	prim := tr.TranslatePath("M 0 0 L 1 1", StyleAttributes{Stroke: "none", Fill: "none"}, "")
	assert.True(t, prim.Hidden)
	assert.Equal(t, DrawCommand, prim.Command)
	assert.True(t, prim.Diagnostics.Has(DegenerateStyle))
	assert.Equal(t, "(0,0) -- (1,-1)", prim.Path)
}

func TestTranslatePathTransform(t *testing.T) {
	tr := newTestTranslator(DefaultConfig())

	prim := tr.TranslatePath("M 0 0 L 1 1", StyleAttributes{Stroke: "#000000"}, "rotate(-90,722.86,99.03)")
	require.Empty(t, prim.Diagnostics)
	assert.Equal(t, "{90:((722.86,-99.03))}", prim.Transforms.RotateAround)

	prim = tr.TranslatePath("M 0 0 L 1 1", StyleAttributes{Stroke: "#000000"}, "skewX(3)")
	assert.True(t, prim.Transforms.IsZero())
	assert.True(t, prim.Diagnostics.Has(UnparsableTransform))
	assert.Equal(t, "(0,0) -- (1,-1)", prim.Path, "the shape is still emitted")
}

func TestTranslatePathControlPoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowControlPoints = true
	tr := newTestTranslator(cfg)

	prim := tr.TranslatePath("M 0 0 Q 5 10 10 0", StyleAttributes{Stroke: "#000000"}, "")
	require.Equal(t, []string{`\node[shape=circle, draw=green, fill=green] at (5,-10) {};`}, prim.Extra)
	require.Len(t, prim.Markers, 1)
}

func TestTranslatePathNeverPanicsOnGarbage(t *testing.T) {
	tr := newTestTranslator(DefaultConfig())
	for _, raw := range []string{"", "Z", "L 1 1", "M", "M 1", ",,,", "M 1 2 3 4 5", "Q", "é 1 2"} {
		assert.NotPanics(t, func() {
			tr.TranslatePath(raw, StyleAttributes{Stroke: "#000000"}, "")
		}, raw)
	}
}

func TestTranslatorNeedsCollaborators(t *testing.T) {
	tr := &Translator{Config: DefaultConfig()}
	assert.Panics(t, func() {
		tr.TranslatePath("M 0 0", StyleAttributes{}, "")
	})
}
