package svg2tikz

// kappa places cubic control points so that four arcs approximate an
// ellipse.
const kappa = 0.5522847498

// Circle is an SVG circle or ellipse element
type Circle struct {
	ID              string `xml:"id,attr"`
	Cx              string `xml:"cx,attr"`
	Cy              string `xml:"cy,attr"`
	Radius          string `xml:"r,attr"`
	Rx              string `xml:"rx,attr"`
	Ry              string `xml:"ry,attr"`
	TransformString string `xml:"transform,attr"`
	Presentation

	// Kind is "circle" or "ellipse".
	Kind  string
	group *Group
}

// Translate implements the Shape interface
func (c *Circle) Translate(t *Translator) []DrawingPrimitive {
	t.check()
	pres, diags := c.Presentation.resolve(c.group.inherited())

	cx := attrNumber(c.Cx, &diags)
	cy := attrNumber(c.Cy, &diags)
	var rx, ry float64
	if c.Kind == "circle" {
		rx = attrNumber(c.Radius, &diags)
		ry = rx
	} else {
		rx = attrNumber(c.Rx, &diags)
		ry = attrNumber(c.Ry, &diags)
	}

	prim := t.styled(pres.StyleAttributes(), c.TransformString, &diags)
	prim.ID = c.ID

	s := scale(t.Config)
	cx, cy, rx, ry = cx*s, cy*s, rx*s, ry*s
	// node units are scaled by the picture, so no \pt here
	prim.Path = FormatPoint(t.Numbers, cx, cy) + " ellipse (" + t.Numbers.Format(rx) + "pt and " + t.Numbers.Format(ry) + "pt)"
	prim.Operations = ellipseOperations(cx, cy, rx, ry)
	prim.Diagnostics = diags
	return []DrawingPrimitive{prim}
}

func ellipseOperations(cx, cy, rx, ry float64) []Operation {
	kx, ky := rx*kappa, ry*kappa
	return []Operation{
		MoveTo(cx+rx, cy),
		CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry),
		CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy),
		CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry),
		CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy),
		Close(),
	}
}
