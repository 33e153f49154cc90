package svg2tikz

// quadraticJoiner normalizes quadratic segments. In direct mode every
// quadratic passes through untouched. In join mode quadratics are
// buffered in pairs and every pair is rewritten as one cubic; a single
// leftover quadratic is converted on flush.
//
// A joiner belongs to one emission pass and must be flushed before the
// subpath it serves is finalized.
type quadraticJoiner struct {
	join    bool
	sx, sy  float64
	single  float64
	pending []Operation
	// pen position before the first pending quadratic
	prev Tuple
}

func newQuadraticJoiner(cfg Config) *quadraticJoiner {
	return &quadraticJoiner{
		join:    cfg.ForceQuadraticAsCubic,
		sx:      cfg.JoinStrengthX / 100,
		sy:      cfg.JoinStrengthY / 100,
		single:  cfg.SingleQuadraticStrength / 100,
		pending: make([]Operation, 0, 2),
	}
}

// push feeds a quadratic operation drawn from pen position from and
// returns the operations ready to be emitted.
func (q *quadraticJoiner) push(op Operation, from Tuple) []Operation {
	if !q.join {
		return []Operation{op}
	}
	if len(q.pending) == 0 {
		q.prev = from
	}
	q.pending = append(q.pending, op)
	if len(q.pending) < 2 {
		return nil
	}
	out := joinQuadratics(q.prev, q.pending[0], q.pending[1], q.sx, q.sy)
	q.pending = q.pending[:0]
	return []Operation{out}
}

// flush empties the buffer. A single pending quadratic is doubled and
// joined at full strength, unless a single-quadratic strength other than
// 100% is configured, in which case its control point is pulled towards
// both ends directly.
func (q *quadraticJoiner) flush() []Operation {
	if len(q.pending) == 0 {
		return nil
	}
	op := q.pending[0]
	q.pending = q.pending[:0]

	if q.single == 1 {
		return []Operation{joinQuadratics(q.prev, op, op, 1, 1)}
	}
	c1 := pull(q.prev, op.C1, q.single, q.single)
	c2 := pull(op.To, op.C1, q.single, q.single)
	return []Operation{CubicTo(c1[0], c1[1], c2[0], c2[1], op.To[0], op.To[1])}
}

// buffered returns the number of quadratics waiting for a partner.
func (q *quadraticJoiner) buffered() int {
	return len(q.pending)
}

// joinQuadratics rewrites q1 followed by q2, starting at p0, as a single
// cubic ending at the end of q2.
func joinQuadratics(p0 Tuple, q1, q2 Operation, sx, sy float64) Operation {
	c1 := pull(p0, q1.C1, sx, sy)
	c2 := pull(q2.To, q2.C1, sx, sy)
	return CubicTo(c1[0], c1[1], c2[0], c2[1], q2.To[0], q2.To[1])
}

// pull returns anchor + (c - anchor) * (sx, sy). Full strength returns c
// unchanged.
func pull(anchor, c Tuple, sx, sy float64) Tuple {
	return Tuple{pullAxis(anchor[0], c[0], sx), pullAxis(anchor[1], c[1], sy)}
}

func pullAxis(anchor, c, s float64) float64 {
	if s == 1 {
		return c
	}
	return anchor + (c-anchor)*s
}
