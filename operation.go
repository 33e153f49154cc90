package svg2tikz

// Tuple is an X,Y coordinate
type Tuple [2]float64

// OperationType tells the path emitter which segment it has to write
type OperationType int

// These are the operations a path description is reduced to
const (
	MoveOperation OperationType = iota
	LineOperation
	CubicOperation
	QuadraticOperation
	CloseOperation
)

func (k OperationType) String() string {
	switch k {
	case MoveOperation:
		return "move"
	case LineOperation:
		return "line"
	case CubicOperation:
		return "cubic"
	case QuadraticOperation:
		return "quadratic"
	case CloseOperation:
		return "close"
	}
	return "unknown"
}

// Operation is a single drawing step of a path. To is the end point of
// every kind but CloseOperation. C1 is the control point of a quadratic
// and the first control point of a cubic, C2 the second control point of
// a cubic.
type Operation struct {
	Kind OperationType
	C1   Tuple
	C2   Tuple
	To   Tuple
}

// MoveTo starts a new subpath at (x, y).
func MoveTo(x, y float64) Operation {
	return Operation{Kind: MoveOperation, To: Tuple{x, y}}
}

// LineTo draws a straight line to (x, y).
func LineTo(x, y float64) Operation {
	return Operation{Kind: LineOperation, To: Tuple{x, y}}
}

// CubicTo draws a cubic Bézier curve to (x, y).
func CubicTo(cx1, cy1, cx2, cy2, x, y float64) Operation {
	return Operation{Kind: CubicOperation, C1: Tuple{cx1, cy1}, C2: Tuple{cx2, cy2}, To: Tuple{x, y}}
}

// QuadraticTo draws a quadratic Bézier curve to (x, y).
func QuadraticTo(cx, cy, x, y float64) Operation {
	return Operation{Kind: QuadraticOperation, C1: Tuple{cx, cy}, To: Tuple{x, y}}
}

// Close closes the current subpath.
func Close() Operation {
	return Operation{Kind: CloseOperation}
}
