// Package preview rasterises translated primitives, so that a conversion
// can be checked without a TeX installation. Paths are drawn from their
// source space operations; nodes are not drawn.
package preview

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/vasalvit/svg2tikz"
	"github.com/vasalvit/svg2tikz/colors"
	"github.com/vasalvit/svg2tikz/numfmt"
)

// Renderer draws primitives on an image. It keeps separate scanners for
// fills and strokes.
type Renderer struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer over a white image of the given size.
func NewRenderer(width, height int) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Renderer{
		img:    img,
		filler: rasterx.NewFiller(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		dasher: rasterx.NewDasher(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
	}
}

// Image returns the image drawn so far.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Render draws every visible primitive in order, fill before stroke.
func Render(width, height int, prims []svg2tikz.DrawingPrimitive) *image.RGBA {
	r := NewRenderer(width, height)
	for _, p := range prims {
		r.Draw(p)
	}
	return r.Image()
}

// Draw draws one primitive. Hidden primitives and nodes are ignored.
func (r *Renderer) Draw(p svg2tikz.DrawingPrimitive) {
	if p.Hidden || p.Command == svg2tikz.NodeCommand || len(p.Operations) == 0 {
		return
	}
	src := p.Source
	shared := 1.0
	if v, ok := p.Options.Get("opacity"); ok {
		shared = number(v, 1)
	}

	if src.HasFill() {
		c, _ := colors.Parse(src.Fill)
		r.filler.Clear()
		r.filler.SetColor(rasterx.ApplyOpacity(c, shared*number(src.FillOpacity, 1)))
		addOperations(r.filler, p.Operations)
		r.filler.Draw()
	}

	if src.HasStroke() {
		c, _ := colors.Parse(src.Stroke)
		width := number(src.StrokeWidth, 1)
		r.dasher.Clear()
		r.dasher.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Round,
			dashes(src.DashArray), 0)
		r.dasher.SetColor(rasterx.ApplyOpacity(c, shared*number(src.StrokeOpacity, 1)))
		addOperations(r.dasher, p.Operations)
		r.dasher.Draw()
	}
}

// addOperations feeds operations to an adder. Quadratics left unjoined
// are drawn as quadratic beziers.
func addOperations(a rasterx.Adder, ops []svg2tikz.Operation) {
	open := false
	for _, op := range ops {
		switch op.Kind {
		case svg2tikz.MoveOperation:
			if open {
				a.Stop(false)
			}
			a.Start(point(op.To))
			open = true
		case svg2tikz.LineOperation:
			a.Line(point(op.To))
		case svg2tikz.CubicOperation:
			a.CubeBezier(point(op.C1), point(op.C2), point(op.To))
		case svg2tikz.QuadraticOperation:
			a.QuadBezier(point(op.C1), point(op.To))
		case svg2tikz.CloseOperation:
			a.Stop(true)
			open = false
		}
	}
	if open {
		a.Stop(false)
	}
}

func point(t svg2tikz.Tuple) fixed.Point26_6 {
	return rasterx.ToFixedP(t[0], t[1])
}

func number(v string, def float64) float64 {
	if v == "" {
		return def
	}
	n, err := numfmt.Parse(v)
	if err != nil {
		return def
	}
	return n
}

func dashes(v string) []float64 {
	if v == "" || v == "none" {
		return nil
	}
	var out []float64
	for _, f := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := numfmt.Parse(f)
		if err != nil {
			return nil
		}
		out = append(out, n)
	}
	return out
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	return nil
}
