package svg2tikz

import (
	"regexp"
	"strconv"
	"strings"
)

// Command is the TikZ command a primitive is written with.
type Command string

// TikZ commands
const (
	DrawCommand     Command = "draw"
	FillCommand     Command = "fill"
	FillDrawCommand Command = "filldraw"
	NodeCommand     Command = "node"
)

// StyleAttributes is the presentation of a shape as read from the
// document. An empty field is an absent attribute; Stroke and Fill are
// also unset when they hold "none".
type StyleAttributes struct {
	Stroke        string
	Fill          string
	StrokeWidth   string
	DashArray     string
	StrokeOpacity string
	FillOpacity   string
}

// HasStroke reports whether the stroke is painted.
func (a StyleAttributes) HasStroke() bool {
	return painted(a.Stroke)
}

// HasFill reports whether the fill is painted.
func (a StyleAttributes) HasFill() bool {
	return painted(a.Fill)
}

func painted(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "none"
}

// Style is the resolved drawing command and its options. Hidden is set
// for shapes with neither stroke nor fill.
type Style struct {
	Command Command
	Options *Options
	Hidden  bool
}

var dashPattern = regexp.MustCompile(`^([0-9.]+)[ ,]([0-9.]+)`)

// ResolveStyle picks the drawing command for a shape and builds its
// options in a fixed order: line width, opacity, dash pattern, colors.
//
//	stroke  fill   command
//	set     none   draw
//	none    set    fill (no line width, no dash pattern)
//	set     set    filldraw
//	none    none   draw, black, hidden
func ResolveStyle(attrs StyleAttributes, colors ColorResolver, nf NumberFormatter) (Style, Diagnostics) {
	var diags Diagnostics
	opts := NewOptions()

	width := "1"
	if attrs.StrokeWidth != "" {
		w, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(attrs.StrokeWidth), "px"), 64)
		if err != nil {
			diags = append(diags, Diagnostic{Kind: MalformedStyle, Input: attrs.StrokeWidth})
			width = ""
		} else {
			width = nf.Format(w)
		}
	}
	if width != "" {
		opts.Set("line width", width+`\pt`)
	}

	switch {
	case attrs.StrokeOpacity != "" && attrs.FillOpacity != "":
		if attrs.StrokeOpacity == attrs.FillOpacity {
			opts.Set("opacity", attrs.FillOpacity)
		} else {
			opts.Set("fill opacity", attrs.FillOpacity)
			opts.Set("draw opacity", attrs.StrokeOpacity)
		}
	case attrs.StrokeOpacity != "":
		opts.Set("draw opacity", attrs.StrokeOpacity)
	case attrs.FillOpacity != "":
		opts.Set("fill opacity", attrs.FillOpacity)
	}

	if attrs.DashArray != "" && attrs.DashArray != "none" {
		m := dashPattern.FindStringSubmatch(strings.TrimSpace(attrs.DashArray))
		if m == nil {
			diags = append(diags, Diagnostic{Kind: MalformedStyle, Input: attrs.DashArray})
		} else {
			opts.Set("dash pattern", "on "+m[1]+`\pt off `+m[2]+`\pt`)
		}
	}

	style := Style{Options: opts}
	switch stroke, fill := attrs.HasStroke(), attrs.HasFill(); {
	case stroke && !fill:
		style.Command = DrawCommand
		opts.Set("color", colors.Resolve(attrs.Stroke))
	case !stroke && fill:
		style.Command = FillCommand
		opts.Set("color", colors.Resolve(attrs.Fill))
		opts.Delete("line width")
		opts.Delete("dash pattern")
	case stroke && fill:
		style.Command = FillDrawCommand
		opts.Set("draw", colors.Resolve(attrs.Stroke))
		opts.Set("fill", colors.Resolve(attrs.Fill))
	default:
		style.Command = DrawCommand
		style.Hidden = true
		opts.Set("color", "black")
		diags = append(diags, Diagnostic{Kind: DegenerateStyle})
	}

	return style, diags
}
