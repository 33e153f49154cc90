package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svg2tikz"
	"github.com/vasalvit/svg2tikz/colors"
	"github.com/vasalvit/svg2tikz/numfmt"
)

func translate(t *testing.T, doc string) []svg2tikz.DrawingPrimitive {
	t.Helper()
	svg, err := svg2tikz.ParseSvg(doc, "preview")
	require.NoError(t, err)
	tr := svg2tikz.NewTranslator(svg2tikz.DefaultConfig(), colors.NewRegistry(), numfmt.New())
	return svg.Translate(tr, nil)
}

func TestRenderFill(t *testing.T) {
	prims := translate(t, `<svg><rect x="0" y="0" width="10" height="10" fill="#ff0000" stroke="none"/></svg>`)
	img := Render(20, 20, prims)

	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(15, 15))
}

func TestRenderStroke(t *testing.T) {
	prims := translate(t, `<svg><path d="M0 10 L20 10" stroke="#000000" stroke-width="2" fill="none"/></svg>`)
	img := Render(20, 20, prims)

	c := img.RGBAAt(10, 10)
	assert.Less(t, c.R, uint8(0x40))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(10, 2))
}

func TestRenderSkipsHiddenAndNodes(t *testing.T) {
	prims := translate(t, `<svg><rect x="0" y="0" width="10" height="10" fill="none" stroke="none"/><text x="5" y="5">t</text></svg>`)
	require.Len(t, prims, 2)
	img := Render(20, 20, prims)

	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(5, 5))
}

func TestDashes(t *testing.T) {
	assert.Nil(t, dashes(""))
	assert.Nil(t, dashes("none"))
	assert.Equal(t, []float64{3, 1.5}, dashes("3, 1.5"))
	assert.Nil(t, dashes("3 x"))
}

func TestWritePNG(t *testing.T) {
	img := Render(4, 4, nil)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
