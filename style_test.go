package svg2tikz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svg2tikz/colors"
	"github.com/vasalvit/svg2tikz/numfmt"
)

type StyleTest struct {
	Description string
	Attrs       StyleAttributes
	Command     Command
	Options     string
	Hidden      bool
}

var styleTests = []StyleTest{
	{
		"stroke only",
		StyleAttributes{Stroke: "#000000", Fill: "none"},
		DrawCommand,
		`line width=1\pt,color=black`,
		false,
	},
	{
		"fill only drops width and dash",
		StyleAttributes{Stroke: "none", Fill: "#ffffff", StrokeWidth: "3", DashArray: "3 3"},
		FillCommand,
		`color=white`,
		false,
	},
	{
		"stroke and fill",
		StyleAttributes{Stroke: "#000000", Fill: "#ffffff", StrokeWidth: "2.5"},
		FillDrawCommand,
		`line width=2.5\pt,draw=black,fill=white`,
		false,
	},
	{
		"neither",
		StyleAttributes{Stroke: "none", Fill: "none"},
		DrawCommand,
		`line width=1\pt,color=black`,
		true,
	},
	{
		"absent attributes count as none",
		StyleAttributes{},
		DrawCommand,
		`line width=1\pt,color=black`,
		true,
	},
	{
		"dash pattern kept for strokes",
		StyleAttributes{Stroke: "#000000", Fill: "none", DashArray: "3 3"},
		DrawCommand,
		`line width=1\pt,dash pattern=on 3\pt off 3\pt,color=black`,
		false,
	},
	{
		"comma separated dash pattern",
		StyleAttributes{Stroke: "#000000", Fill: "none", DashArray: "1.5,4"},
		DrawCommand,
		`line width=1\pt,dash pattern=on 1.5\pt off 4\pt,color=black`,
		false,
	},
	{
		"equal opacities collapse",
		StyleAttributes{Stroke: "#000000", Fill: "#ffffff", StrokeOpacity: "0.5", FillOpacity: "0.5"},
		FillDrawCommand,
		`line width=1\pt,opacity=0.5,draw=black,fill=white`,
		false,
	},
	{
		"different opacities",
		StyleAttributes{Stroke: "#000000", Fill: "#ffffff", StrokeOpacity: "0.5", FillOpacity: "0.2"},
		FillDrawCommand,
		`line width=1\pt,fill opacity=0.2,draw opacity=0.5,draw=black,fill=white`,
		false,
	},
	{
		"stroke opacity only",
		StyleAttributes{Stroke: "#000000", Fill: "none", StrokeOpacity: "0.3"},
		DrawCommand,
		`line width=1\pt,draw opacity=0.3,color=black`,
		false,
	},
	{
		"fill opacity only",
		StyleAttributes{Stroke: "none", Fill: "#000000", FillOpacity: "0.3"},
		FillCommand,
		`fill opacity=0.3,color=black`,
		false,
	},
}

func TestResolveStyle(t *testing.T) {
	for _, test := range styleTests {
		style, diags := ResolveStyle(test.Attrs, colors.NewRegistry(), numfmt.New())
		require.Equal(t, test.Command, style.Command, test.Description)
		require.Equal(t, test.Options, style.Options.String(), test.Description)
		require.Equal(t, test.Hidden, style.Hidden, test.Description)
		require.Equal(t, test.Hidden, diags.Has(DegenerateStyle), test.Description)
	}
}

func TestResolveStyleCustomColors(t *testing.T) {
	reg := colors.NewRegistry()
	style, diags := ResolveStyle(StyleAttributes{Stroke: "#009FE3", Fill: "rgb(0,159,227)"}, reg, numfmt.New())
	require.Empty(t, diags)

	stroke, _ := style.Options.Get("draw")
	fill, _ := style.Options.Get("fill")
	assert.Equal(t, "svg2tikz_c2", stroke)
	assert.Equal(t, stroke, fill)
	assert.Len(t, reg.Definitions(), 1)
}

func TestResolveStyleMalformed(t *testing.T) {
	style, diags := ResolveStyle(StyleAttributes{Stroke: "#000000", StrokeWidth: "thick", DashArray: "dotted"}, colors.NewRegistry(), numfmt.New())
	require.Len(t, diags, 2)
	assert.Equal(t, MalformedStyle, diags[0].Kind)
	assert.Equal(t, MalformedStyle, diags[1].Kind)
	assert.Equal(t, "color=black", style.Options.String())
}
