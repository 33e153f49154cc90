package svg2tikz

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	TransformString string `xml:"transform,attr"`
	Presentation

	group *Group
}

// Translate implements the Shape interface
func (p *Path) Translate(t *Translator) []DrawingPrimitive {
	pres, diags := p.Presentation.resolve(p.group.inherited())

	prim := t.TranslatePath(p.D, pres.StyleAttributes(), p.TransformString)
	prim.ID = p.ID
	prim.Diagnostics = append(diags, prim.Diagnostics...)
	return []DrawingPrimitive{prim}
}
