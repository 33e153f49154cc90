package svg2tikz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TikzOptions controls how a picture is written.
type TikzOptions struct {
	// ColorDefinitions are written before the picture.
	ColorDefinitions []string
	// ScaleFactor is the value of the \scale macro.
	ScaleFactor float64
	// NoScaleDef leaves \scale to the including document.
	NoScaleDef bool
	// PictureOptions are appended to the tikzpicture options.
	PictureOptions []string
	// Tikzset lines are wrapped in a \tikzset block.
	Tikzset []string
	// Standalone wraps the picture in a compilable document; Beamer makes
	// that document a single beamer frame.
	Standalone bool
	Beamer     bool
	// DrawHidden writes primitives that have neither stroke nor fill.
	DrawHidden bool
}

// DefaultTikzOptions returns options for a bare picture at scale 1.
func DefaultTikzOptions() TikzOptions {
	return TikzOptions{ScaleFactor: 1}
}

// Line renders the primitive as a single TikZ command. Transforms become
// options: nodes take rotate, paths rotate around, both take shift.
func (p DrawingPrimitive) Line() string {
	opts := p.Options.Clone()
	if p.Command == NodeCommand {
		if p.Transforms.Rotate != "" {
			opts.Set("rotate", p.Transforms.Rotate)
		}
	} else if p.Transforms.RotateAround != "" {
		opts.Set("rotate around", p.Transforms.RotateAround)
	}
	if p.Transforms.Shift != "" {
		opts.Set("shift", p.Transforms.Shift)
	}

	var b strings.Builder
	b.WriteString(`\` + string(p.Command) + "[" + opts.String() + "] " + p.Path)
	if p.Command == NodeCommand {
		b.WriteString(" {" + p.Content + "}")
	}
	b.WriteString(";")
	return b.String()
}

// WriteTikz writes the primitives as a tikzpicture, each followed by its
// extra lines.
func WriteTikz(w io.Writer, prims []DrawingPrimitive, opts TikzOptions) error {
	bw := bufio.NewWriter(w)

	if opts.Standalone {
		if opts.Beamer {
			fmt.Fprint(bw, "\\documentclass{beamer}\n\\usepackage{tikz}\n\\usepackage[sc]{mathpazo}\n\\begin{document}\n\\begin{frame}\n")
		} else {
			fmt.Fprint(bw, "\\documentclass{standalone}\n\\usepackage{tikz}\n\\usepackage[sc]{mathpazo}\n\\begin{document}\n")
		}
	}

	for _, def := range opts.ColorDefinitions {
		fmt.Fprintln(bw, def)
	}

	if !opts.NoScaleDef {
		factor := opts.ScaleFactor
		if factor <= 0 {
			factor = 1
		}
		fmt.Fprintf(bw, "%% Edit this value to scale the entire picture, including position, nodes and details\n\\def\\scale{%s}\n",
			strconv.FormatFloat(factor, 'f', -1, 64))
	}

	if len(opts.Tikzset) > 0 {
		fmt.Fprintln(bw, `\tikzset{%`)
		for _, l := range opts.Tikzset {
			fmt.Fprintln(bw, l)
		}
		fmt.Fprintln(bw, `}%`)
	}

	pictureOpts := append([]string{`x=1pt,y=1pt,scale=\scale, every node/.style={scale=\scale}`}, opts.PictureOptions...)
	fmt.Fprint(bw, "\\newdimen\\basept\n\\basept=1pt\n\\newdimen\\pt\n\\pt=\\scale\\basept\n")
	fmt.Fprintf(bw, "\\begin{tikzpicture}[%s]\n", strings.Join(pictureOpts, ","))

	for _, p := range prims {
		if p.Hidden && !opts.DrawHidden {
			continue
		}
		fmt.Fprintln(bw, p.Line())
		for _, l := range p.Extra {
			fmt.Fprintln(bw, l)
		}
	}

	fmt.Fprintln(bw, `\end{tikzpicture}`)
	if opts.Standalone {
		if opts.Beamer {
			fmt.Fprintln(bw, `\end{frame}`)
		}
		fmt.Fprintln(bw, `\end{document}`)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing tikz: %w", err)
	}
	return nil
}
