package svg2tikz

import (
	"strconv"
	"strings"
)

// PolyLine is an SVG polyline or polygon element: a set of connected line
// segments, closed for polygons.
type PolyLine struct {
	ID              string `xml:"id,attr"`
	TransformString string `xml:"transform,attr"`
	Points          string `xml:"points,attr"`
	Presentation

	Closed bool
	group  *Group
}

// PathDescription rewrites the points as a path description. An odd
// trailing value is dropped and reported.
func (p *PolyLine) PathDescription() (string, Diagnostics) {
	tokens, diags := Tokenize(p.Points)

	var values []float64
	for _, tok := range tokens {
		if tok.Kind == NumberToken {
			values = append(values, tok.Value)
		} else {
			diags = append(diags, Diagnostic{Kind: UnsupportedCommand, Command: string(tok.Command)})
		}
	}
	if len(values)%2 != 0 {
		diags = append(diags, Diagnostic{Kind: BadArity, Command: "points", Expected: len(values) + 1, Got: len(values)})
		values = values[:len(values)-1]
	}
	if len(values) == 0 {
		return "", diags
	}

	var b strings.Builder
	for i := 0; i < len(values); i += 2 {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(strconv.FormatFloat(values[i], 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(values[i+1], 'f', -1, 64))
	}
	if p.Closed {
		b.WriteString(" Z")
	}
	return b.String(), diags
}

// Translate implements the Shape interface
func (p *PolyLine) Translate(t *Translator) []DrawingPrimitive {
	pres, diags := p.Presentation.resolve(p.group.inherited())

	d, more := p.PathDescription()
	diags = append(diags, more...)

	prim := t.TranslatePath(d, pres.StyleAttributes(), p.TransformString)
	prim.ID = p.ID
	prim.Diagnostics = append(diags, prim.Diagnostics...)
	return []DrawingPrimitive{prim}
}
