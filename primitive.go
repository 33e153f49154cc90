package svg2tikz

// DrawingPrimitive is one styled TikZ command ready to be written. The
// caller owns it once returned.
type DrawingPrimitive struct {
	// ID is the id of the source element, if any.
	ID      string
	Command Command
	Options *Options
	// Path is the path text, subpaths separated by newlines. For nodes it
	// holds the "at (x,y)" placement.
	Path string
	// Content is the node text; empty for paths.
	Content    string
	Transforms Transforms
	// Hidden marks primitives that would not be visible in the source.
	Hidden bool
	// Markers are the control points shown on request.
	Markers []Marker
	// Extra holds additional TikZ lines written after the command.
	Extra []string

	// Operations is the source space geometry, used for previews.
	Operations []Operation
	// Source is the style the primitive was resolved from.
	Source StyleAttributes

	Diagnostics Diagnostics
}

// SetOpacity sets a shared opacity, as a group does for its children.
func (p *DrawingPrimitive) SetOpacity(v string) {
	if p.Options == nil {
		p.Options = NewOptions()
	}
	p.Options.Set("opacity", v)
}
