package svg2tikz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svg2tikz/numfmt"
)

type TransformTest struct {
	Description string
	Attr        string
	Want        Transforms
}

var transformTests = []TransformTest{
	{
		"rotate around a point",
		"rotate(-90,722.86,99.03)",
		Transforms{Rotate: "90", RotateAround: "{90:((722.86,-99.03))}"},
	},
	{
		"rotate with spaces",
		"rotate(45 10 20)",
		Transforms{Rotate: "-45", RotateAround: "{-45:((10,-20))}"},
	},
	{
		"rotate around the origin",
		"rotate(30)",
		Transforms{Rotate: "-30", RotateAround: "{-30:((0,0))}"},
	},
	{
		"translate",
		"translate(10.5,20)",
		Transforms{Shift: "{(10.5,-20)}"},
	},
	{
		"translate x only",
		"translate(7)",
		Transforms{Shift: "{(7,0)}"},
	},
	{
		"translate then rotate",
		"translate(1,2) rotate(90,5,5)",
		Transforms{Rotate: "-90", RotateAround: "{-90:((5,-5))}", Shift: "{(1,-2)}"},
	},
	{
		"only the first of each kind",
		"rotate(10,0,0) rotate(20,0,0) translate(1,1) translate(2,2)",
		Transforms{Rotate: "-10", RotateAround: "{-10:((0,0))}", Shift: "{(1,-1)}"},
	},
	{
		"other calls are ignored",
		"scale(2) translate(3,4)",
		Transforms{Shift: "{(3,-4)}"},
	},
	{
		"empty",
		"",
		Transforms{},
	},
}

func TestParseTransform(t *testing.T) {
	for _, test := range transformTests {
		tr, diags := ParseTransform(test.Attr, numfmt.New())
		require.Empty(t, diags, test.Description)
		require.Equal(t, test.Want, tr, test.Description)
	}
}

func TestParseTransformUnparsable(t *testing.T) {
	for _, attr := range []string{"matrix(1 0 0 1 232.33 107.59)", "scale(2)", "rotate(1,2)"} {
		tr, diags := ParseTransform(attr, numfmt.New())
		require.True(t, tr.IsZero(), attr)
		require.Len(t, diags, 1, attr)
		require.Equal(t, UnparsableTransform, diags[0].Kind, attr)
		require.Equal(t, attr, diags[0].Input)
		require.True(t, errors.Is(diags.Err(), ErrUnparsableTransform))
	}
}
