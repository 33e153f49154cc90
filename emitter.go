package svg2tikz

import (
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Marker colors used when control points are shown.
const (
	QuadraticMarkerColor = "green"
	CubicMarkerColor     = "orange"
)

// Marker is a control point to be drawn on top of a path. At is in source
// space.
type Marker struct {
	At    Tuple
	Color string
}

// Emission is the result of folding operations into path text.
type Emission struct {
	// Subpaths holds one fragment per subpath, in source order.
	Subpaths []string
	// Markers is only filled when control points are shown.
	Markers []Marker
	// Operations are the emitted operations in source space, after
	// scaling and quadratic normalization.
	Operations []Operation
}

// Path joins the subpaths the way they are written in a single command.
func (e Emission) Path() string {
	return strings.Join(e.Subpaths, "\n")
}

// pathEmissionState is the fold state of one EmitPath call.
type pathEmissionState struct {
	nf        NumberFormatter
	transform mt.Transform
	joiner    *quadraticJoiner
	markers   bool

	out   Emission
	diags Diagnostics

	current strings.Builder
	open    bool
	start   Tuple
	pen     Tuple
}

// EmitPath folds operations into subpath fragments with the vertical axis
// inverted. Every MoveTo opens a new fragment, Close terminates the
// current one; a fragment left open is terminated at the end of the
// input. Drawing operations found while no fragment is open are dropped
// and reported as MissingMoveTo.
func EmitPath(ops []Operation, cfg Config, nf NumberFormatter) (Emission, Diagnostics) {
	s := &pathEmissionState{
		nf:        nf,
		transform: mt.Identity(),
		joiner:    newQuadraticJoiner(cfg),
		markers:   cfg.ShowControlPoints,
	}
	if k := scale(cfg); k != 1 {
		s.transform.Scale(k, k)
	}

	for _, op := range ops {
		s.step(s.apply(op))
	}
	s.finish()

	return s.out, s.diags
}

func (s *pathEmissionState) apply(op Operation) Operation {
	for _, t := range []*Tuple{&op.C1, &op.C2, &op.To} {
		x, y := s.transform.Apply(t[0], t[1])
		*t = Tuple{x, y}
	}
	return op
}

func (s *pathEmissionState) step(op Operation) {
	if op.Kind != MoveOperation && !s.open {
		s.diags = append(s.diags, Diagnostic{Kind: MissingMoveTo, Command: op.Kind.String()})
		return
	}

	switch op.Kind {
	case MoveOperation:
		s.finish()
		s.open = true
		s.start = op.To
		s.pen = op.To
		s.current.WriteString(s.point(op.To))
		s.out.Operations = append(s.out.Operations, op)

	case LineOperation, CubicOperation:
		s.flush()
		if op.Kind == CubicOperation {
			s.mark(op.C1, CubicMarkerColor)
			s.mark(op.C2, CubicMarkerColor)
		}
		s.write(op)

	case QuadraticOperation:
		s.mark(op.C1, QuadraticMarkerColor)
		for _, out := range s.joiner.push(op, s.pen) {
			s.write(out)
		}
		s.pen = op.To

	case CloseOperation:
		s.flush()
		s.write(op)
		s.pen = s.start
		s.end()
	}
}

// flush writes whatever the quadratic joiner still holds.
func (s *pathEmissionState) flush() {
	for _, out := range s.joiner.flush() {
		s.write(out)
	}
}

// finish terminates the open fragment, if any.
func (s *pathEmissionState) finish() {
	if !s.open {
		return
	}
	s.flush()
	s.end()
}

func (s *pathEmissionState) end() {
	s.out.Subpaths = append(s.out.Subpaths, s.current.String())
	s.current.Reset()
	s.open = false
}

func (s *pathEmissionState) write(op Operation) {
	switch op.Kind {
	case LineOperation:
		s.current.WriteString(" -- " + s.point(op.To))
	case CubicOperation:
		s.current.WriteString(" .. controls " + s.point(op.C1) + " and " + s.point(op.C2) + " .. " + s.point(op.To))
	case QuadraticOperation:
		s.current.WriteString(" .. controls " + s.point(op.C1) + " .. " + s.point(op.To))
	case CloseOperation:
		s.current.WriteString(" -- cycle")
	}
	if op.Kind != CloseOperation {
		s.pen = op.To
	}
	s.out.Operations = append(s.out.Operations, op)
}

func (s *pathEmissionState) mark(at Tuple, color string) {
	if s.markers {
		s.out.Markers = append(s.out.Markers, Marker{At: at, Color: color})
	}
}

func (s *pathEmissionState) point(t Tuple) string {
	return FormatPoint(s.nf, t[0], t[1])
}

// FormatPoint renders a source space point as a target coordinate,
// inverting y. A zero y is written as 0, never -0.
func FormatPoint(nf NumberFormatter, x, y float64) string {
	return "(" + nf.Format(x) + "," + nf.Format(invert(y)) + ")"
}

func invert(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}
