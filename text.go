package svg2tikz

import (
	"strconv"
	"strings"
)

// Text is a plain SVG text element. Nested tspans are not read.
type Text struct {
	ID              string `xml:"id,attr"`
	X               string `xml:"x,attr"`
	Y               string `xml:"y,attr"`
	TransformString string `xml:"transform,attr"`
	Content         string `xml:",chardata"`
	Presentation

	group *Group
}

// fontSizes are the point sizes with a LaTeX size command, ascending.
var fontSizes = []struct {
	pt  float64
	cmd string
}{
	{6, `\tiny`},
	{8, `\scriptsize`},
	{9, `\footnotesize`},
	{10, `\small`},
	{11, `\normalsize`},
	{12, `\large`},
	{15, `\Large`},
	{16, `\LARGE`},
	{21, `\huge`},
	{25, `\Huge`},
}

var fontFamilies = map[string]string{
	"Courier New": `\ttfamily`,
	"Courier":     `\ttfamily`,
	"monospace":   `\ttfamily`,
}

// FontSizeCommand returns the LaTeX command for a font size in points:
// the command of the largest listed size not above pt, an explicit
// \fontsize above the largest one, and nothing for \normalsize.
func FontSizeCommand(pt float64) string {
	largest := fontSizes[len(fontSizes)-1]
	if pt > largest.pt {
		s := strconv.FormatFloat(pt, 'f', -1, 64)
		return `\fontsize{` + s + `}{` + s + `}\selectfont`
	}
	cmd := fontSizes[0].cmd
	for _, fs := range fontSizes {
		if pt < fs.pt {
			break
		}
		cmd = fs.cmd
	}
	if cmd == `\normalsize` {
		return ""
	}
	return cmd
}

// textAnchor maps SVG text-anchor values to TikZ node anchors.
var textAnchor = map[string]string{
	"start":  "west",
	"middle": "center",
	"end":    "east",
}

var texEscaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
)

// Translate implements the Shape interface. The node is vertically
// shifted by half the font size to match the SVG baseline.
func (tx *Text) Translate(t *Translator) []DrawingPrimitive {
	t.check()
	pres, diags := tx.Presentation.resolve(tx.group.inherited())

	x := attrNumber(tx.X, &diags)
	y := attrNumber(tx.Y, &diags)
	content := strings.TrimSpace(tx.Content)

	opts := NewOptions()
	opts.Set("align", "center")
	if painted(pres.Fill) {
		opts.Set("color", t.Colors.Resolve(pres.Fill))
	}
	if pres.TextAnchor != "" {
		anchor, ok := textAnchor[pres.TextAnchor]
		if !ok {
			diags = append(diags, Diagnostic{Kind: MalformedStyle, Input: "text-anchor: " + pres.TextAnchor})
			anchor = pres.TextAnchor
		}
		opts.Set("anchor", anchor)
	}

	var font []string
	if family, ok := fontFamilies[strings.Trim(pres.FontFamily, `"' `)]; ok {
		font = append(font, family)
	}
	if pres.FontWeight == "bold" || pres.FontWeight == "700" {
		font = append(font, `\bfseries`)
	}
	if strings.HasSuffix(pres.FontSize, "px") {
		size := attrNumber(pres.FontSize, &diags)
		lines := float64(strings.Count(content, `\`))
		y += size / 2 * (lines/2 - 0.8)
		if cmd := FontSizeCommand(size); cmd != "" {
			font = append(font, cmd)
		}
	}
	if len(font) > 0 {
		opts.Set("font", strings.Join(font, ""))
	}

	tr, more := parseTransform(tx.TransformString, t.Numbers, scale(t.Config))
	diags = append(diags, more...)

	s := scale(t.Config)
	return []DrawingPrimitive{{
		ID:          tx.ID,
		Command:     NodeCommand,
		Options:     opts,
		Path:        "at " + FormatPoint(t.Numbers, x*s, y*s),
		Content:     texEscaper.Replace(content),
		Transforms:  tr,
		Operations:  []Operation{MoveTo(x*s, y*s)},
		Source:      pres.StyleAttributes(),
		Diagnostics: diags,
	}}
}
