package svg2tikz

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/douceur/parser"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Shape is implemented by every SVG element that translates to TikZ.
type Shape interface {
	Translate(t *Translator) []DrawingPrimitive
}

// Presentation holds the presentation attributes shared by all elements.
// Empty fields are inherited from the enclosing group.
type Presentation struct {
	Stroke        string `xml:"stroke,attr"`
	Fill          string `xml:"fill,attr"`
	StrokeWidth   string `xml:"stroke-width,attr"`
	DashArray     string `xml:"stroke-dasharray,attr"`
	StrokeOpacity string `xml:"stroke-opacity,attr"`
	FillOpacity   string `xml:"fill-opacity,attr"`
	FontFamily    string `xml:"font-family,attr"`
	FontSize      string `xml:"font-size,attr"`
	FontWeight    string `xml:"font-weight,attr"`
	TextAnchor    string `xml:"text-anchor,attr"`
	Style         string `xml:"style,attr"`
}

// field returns the presentation field named by an SVG property.
func (p *Presentation) field(name string) *string {
	switch name {
	case "stroke":
		return &p.Stroke
	case "fill":
		return &p.Fill
	case "stroke-width":
		return &p.StrokeWidth
	case "stroke-dasharray":
		return &p.DashArray
	case "stroke-opacity":
		return &p.StrokeOpacity
	case "fill-opacity":
		return &p.FillOpacity
	case "font-family":
		return &p.FontFamily
	case "font-size":
		return &p.FontSize
	case "font-weight":
		return &p.FontWeight
	case "text-anchor":
		return &p.TextAnchor
	case "style":
		return &p.Style
	}
	return nil
}

// resolve applies the style attribute over the presentation attributes
// and inherits what is still unset from parent.
func (p Presentation) resolve(parent Presentation) (Presentation, Diagnostics) {
	var diags Diagnostics
	if strings.TrimSpace(p.Style) != "" {
		// the last declaration needs its ';' to keep its value
		decls, err := parser.ParseDeclarations(strings.TrimSuffix(strings.TrimSpace(p.Style), ";") + ";")
		if err != nil {
			diags = append(diags, Diagnostic{Kind: MalformedStyle, Input: p.Style})
		}
		for _, d := range decls {
			v := strings.TrimSpace(d.Value)
			if v == "" {
				continue
			}
			if f := p.field(strings.ToLower(d.Property)); f != nil && d.Property != "style" {
				*f = v
			}
		}
	}
	p.Style = ""

	own := []*string{&p.Stroke, &p.Fill, &p.StrokeWidth, &p.DashArray, &p.StrokeOpacity, &p.FillOpacity,
		&p.FontFamily, &p.FontSize, &p.FontWeight, &p.TextAnchor}
	inherited := []string{parent.Stroke, parent.Fill, parent.StrokeWidth, parent.DashArray, parent.StrokeOpacity,
		parent.FillOpacity, parent.FontFamily, parent.FontSize, parent.FontWeight, parent.TextAnchor}
	for i, f := range own {
		if *f == "" {
			*f = inherited[i]
		}
	}
	return p, diags
}

// StyleAttributes returns the part of the presentation the style resolver
// reads.
func (p Presentation) StyleAttributes() StyleAttributes {
	return StyleAttributes{
		Stroke:        p.Stroke,
		Fill:          p.Fill,
		StrokeWidth:   p.StrokeWidth,
		DashArray:     p.DashArray,
		StrokeOpacity: p.StrokeOpacity,
		FillOpacity:   p.FillOpacity,
	}
}

// Svg represents an SVG file. Elements are kept in document order.
type Svg struct {
	Title    string
	Name     string
	Width    string
	Height   string
	Elements []Shape
	// Skipped lists the elements that have no translation.
	Skipped []string
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	Presentation    Presentation
	Opacity         string
	TransformString string
	Elements        []Shape
	Parent          *Group
	Owner           *Svg
}

// inherited returns the presentation children of g inherit.
func (g *Group) inherited() Presentation {
	if g == nil {
		return Presentation{}
	}
	p, _ := g.Presentation.resolve(g.Parent.inherited())
	return p
}

// Translate implements the Shape interface. The group transform replaces
// the transforms of its children and the group opacity is set on each of
// them.
func (g *Group) Translate(t *Translator) []DrawingPrimitive {
	var prims []DrawingPrimitive
	for _, e := range g.Elements {
		prims = append(prims, e.Translate(t)...)
	}
	if len(prims) == 0 {
		return nil
	}

	if g.TransformString != "" {
		tr, diags := parseTransform(g.TransformString, t.Numbers, scale(t.Config))
		if len(diags) > 0 {
			// reported once, on the first child
			prims[0].Diagnostics = append(prims[0].Diagnostics, diags...)
		} else {
			for i := range prims {
				prims[i].Transforms = tr
			}
		}
	}
	if g.Opacity != "" {
		for i := range prims {
			prims[i].SetOpacity(g.Opacity)
		}
	}
	return prims
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "opacity":
			g.Opacity = attr.Value
		case "transform":
			g.TransformString = attr.Value
		default:
			if f := g.Presentation.field(attr.Name.Local); f != nil {
				*f = attr.Value
			}
		}
	}

	elements, err := decodeElements(decoder, g, g.Owner)
	if err != nil {
		return fmt.Errorf("error decoding element of Group: %w", err)
	}
	g.Elements = elements
	return nil
}

// decodeElements decodes the children of the current element up to its
// end tag. parent is nil at the top level.
func decodeElements(decoder *xml.Decoder, parent *Group, owner *Svg) ([]Shape, error) {
	var elements []Shape
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var shape Shape

			switch tok.Name.Local {
			case "g", "switch":
				// a switch keeps the children it can translate, usually
				// the text fallback of a foreignObject
				shape = &Group{Parent: parent, Owner: owner}
			case "path":
				shape = &Path{group: parent}
			case "rect":
				shape = &Rect{group: parent}
			case "circle", "ellipse":
				shape = &Circle{group: parent, Kind: tok.Name.Local}
			case "polyline", "polygon":
				shape = &PolyLine{group: parent, Closed: tok.Name.Local == "polygon"}
			case "text":
				shape = &Text{group: parent}
			case "title":
				if owner != nil && parent == nil {
					var title string
					if err := decoder.DecodeElement(&title, &tok); err != nil {
						return nil, err
					}
					owner.Title = title
					continue
				}
			}

			if shape == nil {
				if owner != nil && tok.Name.Local != "defs" && tok.Name.Local != "title" {
					owner.Skipped = append(owner.Skipped, tok.Name.Local)
				}
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
				continue
			}

			if err := decoder.DecodeElement(shape, &tok); err != nil {
				return nil, fmt.Errorf("error decoding %s element: %w", tok.Name.Local, err)
			}
			elements = append(elements, shape)

		case xml.EndElement:
			return elements, nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		}
	}

	elements, err := decodeElements(decoder, nil, s)
	if err != nil {
		return fmt.Errorf("error decoding element of SVG struct: %w", err)
	}
	s.Elements = elements
	return nil
}

// Translate translates every element in document order. Diagnostics and
// skipped elements are logged as warnings; a nil logger discards them.
func (s *Svg) Translate(t *Translator, logger *zap.Logger) []DrawingPrimitive {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("document", s.Name))

	for _, name := range s.Skipped {
		logger.Warn("element skipped", zap.String("element", name))
	}

	var prims []DrawingPrimitive
	for _, e := range s.Elements {
		prims = append(prims, e.Translate(t)...)
	}
	for _, p := range prims {
		for _, d := range p.Diagnostics {
			logger.Warn("translation", zap.String("id", p.ID), zap.Stringer("kind", d.Kind), zap.Error(d))
		}
	}
	logger.Debug("document translated", zap.Int("primitives", len(prims)))
	return prims
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, name string) (*Svg, error) {
	return ParseSvgFromReader(bytes.NewReader([]byte(str)), name)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader. Documents
// declaring a non UTF-8 encoding are converted on the fly.
func ParseSvgFromReader(r io.Reader, name string) (*Svg, error) {
	svg := Svg{Name: name}

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return &svg, nil
}
