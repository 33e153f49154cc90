package svg2tikz

import (
	"strings"

	"github.com/vasalvit/svg2tikz/numfmt"
)

// Rect is an SVG rect element
type Rect struct {
	ID              string `xml:"id,attr"`
	X               string `xml:"x,attr"`
	Y               string `xml:"y,attr"`
	Width           string `xml:"width,attr"`
	Height          string `xml:"height,attr"`
	Rx              string `xml:"rx,attr"`
	Ry              string `xml:"ry,attr"`
	TransformString string `xml:"transform,attr"`
	Presentation

	group *Group
}

// Translate implements the Shape interface. Rounded corners use rx; a
// different ry is reported and ignored.
func (r *Rect) Translate(t *Translator) []DrawingPrimitive {
	t.check()
	pres, diags := r.Presentation.resolve(r.group.inherited())

	x := attrNumber(r.X, &diags)
	y := attrNumber(r.Y, &diags)
	w := attrNumber(r.Width, &diags)
	h := attrNumber(r.Height, &diags)

	prim := t.styled(pres.StyleAttributes(), r.TransformString, &diags)
	prim.ID = r.ID

	if r.Rx != "" {
		rx := attrNumber(r.Rx, &diags)
		prim.Options.Set("rounded corners", t.Numbers.Format(rx*scale(t.Config))+`\pt`)
		if r.Ry != "" && strings.TrimSpace(r.Ry) != strings.TrimSpace(r.Rx) {
			diags = append(diags, Diagnostic{Kind: UnsupportedShape, Input: "rect ry=" + r.Ry})
		}
	}

	s := scale(t.Config)
	prim.Path = FormatPoint(t.Numbers, x*s, y*s) + " rectangle " + FormatPoint(t.Numbers, (x+w)*s, (y+h)*s)
	prim.Operations = []Operation{
		MoveTo(x*s, y*s),
		LineTo((x+w)*s, y*s),
		LineTo((x+w)*s, (y+h)*s),
		LineTo(x*s, (y+h)*s),
		Close(),
	}
	prim.Diagnostics = diags
	return []DrawingPrimitive{prim}
}

// attrNumber parses a numeric attribute. Absent attributes are 0; a
// malformed one is reported and read as 0.
func attrNumber(v string, diags *Diagnostics) float64 {
	if strings.TrimSpace(v) == "" {
		return 0
	}
	n, err := numfmt.Parse(v)
	if err != nil {
		*diags = append(*diags, Diagnostic{Kind: MalformedNumber, Input: v})
		return 0
	}
	return n
}

func scale(cfg Config) float64 {
	if cfg.Scale > 0 {
		return cfg.Scale
	}
	return 1
}
