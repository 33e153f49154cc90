package svg2tikz

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// DiagnosticKind classifies a recoverable anomaly found while translating
// a shape.
type DiagnosticKind int

// Diagnostic kinds. None of them aborts a translation.
const (
	MalformedNumber DiagnosticKind = iota
	BadArity
	UnsupportedCommand
	UnparsableTransform
	DegenerateStyle
	MissingMoveTo
	MalformedStyle
	UnsupportedShape
)

// Sentinel errors matching each DiagnosticKind, usable with errors.Is.
var (
	ErrMalformedNumber     = errors.New("malformed number")
	ErrBadArity            = errors.New("bad arity")
	ErrUnsupportedCommand  = errors.New("unsupported command")
	ErrUnparsableTransform = errors.New("unparsable transform")
	ErrDegenerateStyle     = errors.New("degenerate style")
	ErrMissingMoveTo       = errors.New("draw command without move")
	ErrMalformedStyle      = errors.New("malformed style")
	ErrUnsupportedShape    = errors.New("unsupported shape")
)

var sentinels = [...]error{
	MalformedNumber:     ErrMalformedNumber,
	BadArity:            ErrBadArity,
	UnsupportedCommand:  ErrUnsupportedCommand,
	UnparsableTransform: ErrUnparsableTransform,
	DegenerateStyle:     ErrDegenerateStyle,
	MissingMoveTo:       ErrMissingMoveTo,
	MalformedStyle:      ErrMalformedStyle,
	UnsupportedShape:    ErrUnsupportedShape,
}

func (k DiagnosticKind) String() string {
	if int(k) < 0 || int(k) >= len(sentinels) {
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
	return sentinels[k].Error()
}

// Diagnostic describes one recoverable problem. Command, Expected and Got
// are only meaningful for arity and command problems; Input holds the
// offending source text when there is one.
type Diagnostic struct {
	Kind     DiagnosticKind
	Command  string
	Expected int
	Got      int
	Input    string
}

func (d Diagnostic) Error() string {
	switch d.Kind {
	case BadArity:
		return fmt.Sprintf("%s: command %s expects %d values, got %d", d.Kind, d.Command, d.Expected, d.Got)
	case UnsupportedCommand:
		if d.Command == "" {
			return fmt.Sprintf("%s: values %q before any command", d.Kind, d.Input)
		}
		return fmt.Sprintf("%s: %s", d.Kind, d.Command)
	case MissingMoveTo:
		return fmt.Sprintf("%s: %s", d.Kind, d.Command)
	}
	if d.Input == "" {
		return d.Kind.String()
	}
	return fmt.Sprintf("%s: %q", d.Kind, d.Input)
}

// Unwrap returns the sentinel error of the diagnostic kind.
func (d Diagnostic) Unwrap() error {
	if int(d.Kind) < 0 || int(d.Kind) >= len(sentinels) {
		return nil
	}
	return sentinels[d.Kind]
}

// Diagnostics is an ordered list of recoverable problems.
type Diagnostics []Diagnostic

// Err folds the diagnostics into a single error, or nil if there are none.
func (ds Diagnostics) Err() error {
	var err error
	for _, d := range ds {
		err = multierr.Append(err, d)
	}
	return err
}

// Has reports whether a diagnostic of the given kind is present.
func (ds Diagnostics) Has(kind DiagnosticKind) bool {
	for _, d := range ds {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
