package svg2tikz

import "fmt"

// NumberFormatter renders numbers for TikZ output: no trailing zeros and
// no decimal point for integral values.
type NumberFormatter interface {
	Format(v float64) string
}

// NumberFormatterFunc adapts a function to NumberFormatter.
type NumberFormatterFunc func(v float64) string

// Format calls f(v).
func (f NumberFormatterFunc) Format(v float64) string {
	return f(v)
}

// ColorResolver maps a color specification to a TikZ color name. The same
// specification always yields the same name.
type ColorResolver interface {
	Resolve(spec string) string
}

// ColorResolverFunc adapts a function to ColorResolver.
type ColorResolverFunc func(spec string) string

// Resolve calls f(spec).
func (f ColorResolverFunc) Resolve(spec string) string {
	return f(spec)
}

// Translator turns shapes into drawing primitives. Colors and Numbers are
// required; they are shared by every shape of a document, so they must be
// safe for concurrent use if shapes are translated in parallel.
type Translator struct {
	Config  Config
	Colors  ColorResolver
	Numbers NumberFormatter
}

// NewTranslator returns a Translator using the given collaborators.
func NewTranslator(cfg Config, colors ColorResolver, numbers NumberFormatter) *Translator {
	return &Translator{Config: cfg, Colors: colors, Numbers: numbers}
}

func (t *Translator) check() {
	if t.Colors == nil || t.Numbers == nil {
		panic("svg2tikz: Translator needs a ColorResolver and a NumberFormatter")
	}
}

// TranslatePath translates a path description with its style and an
// optional transform attribute. Malformed input never fails the call: the
// primitive carries whatever could be translated and the problems met on
// the way.
func (t *Translator) TranslatePath(raw string, style StyleAttributes, transform string) DrawingPrimitive {
	t.check()

	tokens, diags := Tokenize(raw)
	ops, more := Interpret(tokens)
	diags = append(diags, more...)

	em, more := EmitPath(ops, t.Config, t.Numbers)
	diags = append(diags, more...)

	prim := t.styled(style, transform, &diags)
	prim.Path = em.Path()
	prim.Operations = em.Operations
	prim.Markers = em.Markers
	for _, m := range em.Markers {
		prim.Extra = append(prim.Extra, t.markerLine(m))
	}
	prim.Diagnostics = diags
	return prim
}

// styled resolves style and transform into an otherwise empty primitive.
func (t *Translator) styled(style StyleAttributes, transform string, diags *Diagnostics) DrawingPrimitive {
	st, more := ResolveStyle(style, t.Colors, t.Numbers)
	*diags = append(*diags, more...)

	tr, more := parseTransform(transform, t.Numbers, scale(t.Config))
	*diags = append(*diags, more...)

	return DrawingPrimitive{
		Command:    st.Command,
		Options:    st.Options,
		Hidden:     st.Hidden,
		Transforms: tr,
		Source:     style,
	}
}

func (t *Translator) markerLine(m Marker) string {
	return fmt.Sprintf(`\node[shape=circle, draw=%s, fill=%s] at %s {};`, m.Color, m.Color,
		FormatPoint(t.Numbers, m.At[0], m.At[1]))
}
