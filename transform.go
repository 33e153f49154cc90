package svg2tikz

import (
	"strconv"
	"strings"
	"unicode"

	gl "github.com/rustyoz/genericlexer"
)

// Transforms holds the TikZ equivalents of a transform attribute. Empty
// fields are absent.
type Transforms struct {
	// Rotate is used by nodes.
	Rotate string
	// RotateAround is used by paths.
	RotateAround string
	Shift        string
}

// IsZero reports whether no transform is set.
func (t Transforms) IsZero() bool {
	return t == Transforms{}
}

// transformCall is one "name(args...)" element of a transform attribute.
type transformCall struct {
	name string
	args []float64
	ok   bool
}

// ParseTransform translates the first rotate and the first translate of
// a transform attribute. Rotation direction and the y axis are inverted.
// Other calls are ignored; when nothing usable is found the attribute is
// reported as UnparsableTransform.
func ParseTransform(attr string, nf NumberFormatter) (Transforms, Diagnostics) {
	return parseTransform(attr, nf, 1)
}

// parseTransform is ParseTransform for geometry scaled by k: the rotation
// center and the shift are scaled too.
func parseTransform(attr string, nf NumberFormatter, k float64) (Transforms, Diagnostics) {
	var tr Transforms
	var rotated, translated bool

	if strings.TrimSpace(attr) == "" {
		return tr, nil
	}

	for _, call := range lexTransform(attr) {
		if !call.ok {
			continue
		}
		switch {
		case call.name == "rotate" && !rotated && (len(call.args) == 1 || len(call.args) == 3):
			rotated = true
			angle := nf.Format(invert(call.args[0]))
			cx, cy := 0.0, 0.0
			if len(call.args) == 3 {
				cx, cy = call.args[1]*k, call.args[2]*k
			}
			tr.Rotate = angle
			tr.RotateAround = "{" + angle + ":(" + FormatPoint(nf, cx, cy) + ")}"

		case call.name == "translate" && !translated && (len(call.args) == 1 || len(call.args) == 2):
			translated = true
			dx, dy := call.args[0]*k, 0.0
			if len(call.args) == 2 {
				dy = call.args[1] * k
			}
			tr.Shift = "{" + FormatPoint(nf, dx, dy) + "}"
		}
	}

	if !rotated && !translated {
		return Transforms{}, Diagnostics{{Kind: UnparsableTransform, Input: attr}}
	}
	return tr, nil
}

// lexTransform splits a transform attribute into calls. A call whose
// arguments do not lex as numbers is returned with ok unset.
func lexTransform(attr string) []transformCall {
	var (
		calls []transformCall
		call  *transformCall
		name  strings.Builder
		neg   bool
	)

	l, _ := gl.Lex("transform", attr)
	for {
		i := l.NextItem()
		if i.Type == gl.ItemEOS || i.Type == gl.ItemError {
			return calls
		}
		v := strings.TrimSpace(i.Value)

		switch {
		case call == nil && isWord(v):
			name.WriteString(v)

		case call == nil && v == "(":
			call = &transformCall{name: name.String(), ok: name.Len() > 0}
			name.Reset()

		case call == nil:
			// stray text between calls
			name.Reset()

		case v == ")":
			if neg {
				call.ok = false
			}
			calls = append(calls, *call)
			call = nil
			neg = false

		case v == "-":
			neg = true

		case i.Type == gl.ItemNumber:
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				call.ok = false
				continue
			}
			if neg {
				n = -n
				neg = false
			}
			call.args = append(call.args, n)

		case v == "" || v == ",":

		default:
			call.ok = false
		}
	}
}

func isWord(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
