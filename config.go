package svg2tikz

// Config holds the settings the translation engine reads.
type Config struct {
	// ForceQuadraticAsCubic joins consecutive quadratic segments into
	// cubic ones instead of emitting them with a single control point.
	ForceQuadraticAsCubic bool
	// JoinStrengthX and JoinStrengthY are the control point pull, in
	// percent, used when two quadratics are joined.
	JoinStrengthX float64
	JoinStrengthY float64
	// SingleQuadraticStrength is the pull, in percent, used to convert a
	// quadratic left without a partner. 100 doubles the quadratic.
	SingleQuadraticStrength float64
	// ShowControlPoints adds a marker at every control point.
	ShowControlPoints bool
	// Scale multiplies every source coordinate before emission.
	Scale float64
}

// DefaultConfig returns the engine defaults: direct quadratics, full
// strength joins and no scaling.
func DefaultConfig() Config {
	return Config{
		JoinStrengthX:           100,
		JoinStrengthY:           100,
		SingleQuadraticStrength: 100,
		Scale:                   1,
	}
}
